package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/EstruturaDados/free-fire/pkg/models"
)

const (
	fieldName = iota
	fieldType
	fieldPriority
	fieldCount
)

// InsertForm collects the three fields of a new component
type InsertForm struct {
	inputs [fieldCount]textinput.Model
	focus  int
	err    string
}

// NewInsertForm creates an empty insert form
func NewInsertForm() *InsertForm {
	f := &InsertForm{}

	name := textinput.New()
	name.Placeholder = "chip central"
	// CharLimit counts runes; Component enforces the byte limit
	name.CharLimit = models.MaxNameLength
	name.Prompt = "Name:     "

	typ := textinput.New()
	typ.Placeholder = "controle / suporte / propulsao"
	typ.CharLimit = models.MaxTypeLength
	typ.Prompt = "Type:     "

	priority := textinput.New()
	priority.Placeholder = "1..10"
	priority.CharLimit = 2
	priority.Prompt = "Priority: "

	f.inputs = [fieldCount]textinput.Model{name, typ, priority}
	return f
}

// Open clears the form and focuses the first field
func (f *InsertForm) Open() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.err = ""
	f.focus = fieldName
	return f.inputs[f.focus].Focus()
}

// Close blurs every field
func (f *InsertForm) Close() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// OnLastField reports whether the priority field has focus
func (f *InsertForm) OnLastField() bool {
	return f.focus == fieldPriority
}

// Next moves focus to the following field, wrapping around
func (f *InsertForm) Next() tea.Cmd {
	return f.setFocus((f.focus + 1) % fieldCount)
}

// Prev moves focus to the previous field, wrapping around
func (f *InsertForm) Prev() tea.Cmd {
	return f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

func (f *InsertForm) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[f.focus].Focus()
}

// SetError shows a validation message under the form
func (f *InsertForm) SetError(msg string) {
	f.err = msg
}

// SetValues fills the three fields
func (f *InsertForm) SetValues(name, typ, priority string) {
	f.inputs[fieldName].SetValue(name)
	f.inputs[fieldType].SetValue(typ)
	f.inputs[fieldPriority].SetValue(priority)
}

// Component parses and validates the entered values
func (f *InsertForm) Component() (models.Component, error) {
	c := models.Component{
		Name: f.inputs[fieldName].Value(),
		Type: f.inputs[fieldType].Value(),
	}

	priority, err := strconv.Atoi(strings.TrimSpace(f.inputs[fieldPriority].Value()))
	if err != nil {
		return c, &models.ValidationError{
			Field:   "priority",
			Message: "priority must be a whole number",
			Err:     models.ErrInvalidPriority,
		}
	}
	c.Priority = priority

	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Update forwards messages to the focused field
func (f *InsertForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// View renders the form
func (f *InsertForm) View() string {
	lines := []string{TitleStyle.Render("Add component")}
	for i := range f.inputs {
		lines = append(lines, f.inputs[i].View())
	}
	if f.err != "" {
		lines = append(lines, ErrorStyle.Render(f.err))
	}
	lines = append(lines, DescriptionStyle.Render("tab/shift+tab to move • enter on priority to add • esc to cancel"))
	return InputStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
