package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/EstruturaDados/free-fire/pkg/models"
)

// NamePrompt is a single-line input used to enter a component name for
// removal or binary search
type NamePrompt struct {
	input textinput.Model
	title string
	width int
}

// NewNamePrompt creates a new name prompt
func NewNamePrompt() *NamePrompt {
	ti := textinput.New()
	ti.Placeholder = "component name"
	ti.CharLimit = models.MaxNameLength
	ti.Width = 40

	return &NamePrompt{
		input: ti,
	}
}

// Open resets the prompt with a new title and focuses it
func (p *NamePrompt) Open(title string) tea.Cmd {
	p.title = title
	p.input.SetValue("")
	return p.input.Focus()
}

// Close blurs the prompt
func (p *NamePrompt) Close() {
	p.input.Blur()
}

// SetWidth sets the width for the prompt
func (p *NamePrompt) SetWidth(width int) {
	p.width = width
	if width > 12 {
		p.input.Width = width - 12
	}
}

// Value returns the entered name. Names are matched exactly, so spaces are kept.
func (p *NamePrompt) Value() string {
	return p.input.Value()
}

// SetValue sets the prompt text
func (p *NamePrompt) SetValue(value string) {
	p.input.SetValue(value)
}

// Update handles tea messages for the prompt
func (p *NamePrompt) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return cmd
}

// View renders the prompt
func (p *NamePrompt) View() string {
	title := TitleStyle.Render(p.title)
	box := InputStyle.Render(p.input.View())
	hint := DescriptionStyle.Render("enter to confirm • esc to cancel")
	return lipgloss.JoinVertical(lipgloss.Left, title, box, hint)
}
