package tui

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/EstruturaDados/free-fire/internal/cli"
	"github.com/EstruturaDados/free-fire/pkg/inventory"
	"github.com/EstruturaDados/free-fire/pkg/sorting"
)

type sessionState int

const (
	menuView sessionState = iota
	insertView
	removeView
	searchView
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

type menuItem struct {
	key   string
	label string
}

var menuItems = buildMenuItems()

func buildMenuItems() []menuItem {
	items := []menuItem{
		{"1", "Add component"},
		{"2", "Remove component (by name)"},
	}
	for i, alg := range sorting.Algorithms() {
		items = append(items, menuItem{strconv.Itoa(3 + i), alg.MenuLabel()})
	}
	return append(items,
		menuItem{"6", "Binary search by NAME"},
		menuItem{"7", "List components"},
		menuItem{"0", "Quit"},
	)
}

// copyToClipboard is replaced in tests
var copyToClipboard = clipboard.WriteAll

// App is the root bubbletea model for the interactive organizer
type App struct {
	state      sessionState
	inv        *inventory.Inventory
	precision  int
	cursor     int
	form       *InsertForm
	prompt     *NamePrompt
	confirm    *ConfirmationModel
	showHelp   bool
	highlight  int
	status     string
	statusKind statusKind
	width      int
	height     int
}

// NewApp creates the UI around inv. precision is the number of decimals
// shown for elapsed seconds.
func NewApp(inv *inventory.Inventory, precision int) *App {
	return &App{
		state:     menuView,
		inv:       inv,
		precision: precision,
		form:      NewInsertForm(),
		prompt:    NewNamePrompt(),
		confirm:   NewConfirmation(),
		highlight: -1,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.prompt.SetWidth(msg.Width)
		return a, nil

	case StatusMsg:
		a.setStatus(statusInfo, string(msg))
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.confirm.Active() {
			return a, a.confirm.Update(msg)
		}

		switch a.state {
		case menuView:
			return a, a.updateMenu(msg)
		case insertView:
			return a, a.updateForm(msg)
		case removeView, searchView:
			return a, a.updatePrompt(msg)
		}
	}

	// Route everything else (cursor blink) to the active input
	switch a.state {
	case insertView:
		return a, a.form.Update(msg)
	case removeView, searchView:
		return a, a.prompt.Update(msg)
	}
	return a, nil
}

func (a *App) updateMenu(msg tea.KeyMsg) tea.Cmd {
	switch key := msg.String(); key {
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(menuItems)-1 {
			a.cursor++
		}
	case "enter":
		return a.runAction(menuItems[a.cursor].key)
	case "q", "esc":
		return a.runAction("0")
	case "?":
		a.showHelp = !a.showHelp
	case "c":
		return a.copyListing()
	case "x":
		a.confirmClear()
	case "0", "1", "2", "3", "4", "5", "6", "7":
		return a.runAction(key)
	}
	return nil
}

func (a *App) runAction(key string) tea.Cmd {
	switch key {
	case "1":
		if a.inv.Len() >= a.inv.Capacity() {
			a.setStatus(statusError, fmt.Sprintf("Maximum capacity (%d) reached", a.inv.Capacity()))
			return nil
		}
		a.state = insertView
		return a.form.Open()

	case "2":
		if a.inv.Len() == 0 {
			a.setStatus(statusError, "Inventory is empty")
			return nil
		}
		a.state = removeView
		return a.prompt.Open("Remove component")

	case "3", "4", "5":
		a.sort(sorting.Algorithms()[int(key[0]-'3')])

	case "6":
		if !a.inv.IsNameSorted() {
			a.setStatus(statusError, "Binary search requires the inventory sorted by name. Press 3 first.")
			return nil
		}
		a.state = searchView
		return a.prompt.Open("Binary search by name")

	case "7":
		a.highlight = -1
		a.setStatus(statusInfo, fmt.Sprintf("%d of %d components", a.inv.Len(), a.inv.Capacity()))

	case "0":
		if a.inv.Len() == 0 {
			return tea.Quit
		}
		a.confirm.Show(fmt.Sprintf("Discard %d components and quit?", a.inv.Len()), true,
			func() tea.Cmd { return tea.Quit }, nil)
	}
	return nil
}

func (a *App) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.form.Close()
		a.state = menuView
		a.setStatus(statusInfo, "Add cancelled")
		return nil
	case "tab", "down":
		return a.form.Next()
	case "shift+tab", "up":
		return a.form.Prev()
	case "enter":
		if !a.form.OnLastField() {
			return a.form.Next()
		}
		return a.submitForm()
	}
	return a.form.Update(msg)
}

func (a *App) submitForm() tea.Cmd {
	c, err := a.form.Component()
	if err != nil {
		a.form.SetError(err.Error())
		return nil
	}
	if err := a.inv.Insert(c); err != nil {
		a.form.SetError(err.Error())
		return nil
	}

	a.form.Close()
	a.state = menuView
	a.highlight = -1
	a.setStatus(statusSuccess, fmt.Sprintf("Added %s", c.Name))
	return nil
}

func (a *App) updatePrompt(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		a.prompt.Close()
		a.state = menuView
		return nil
	case "enter":
		name := a.prompt.Value()
		state := a.state
		a.prompt.Close()
		a.state = menuView
		if state == removeView {
			a.remove(name)
		} else {
			a.search(name)
		}
		return nil
	}
	return a.prompt.Update(msg)
}

func (a *App) sort(alg sorting.Algorithm) {
	a.highlight = -1
	report, err := a.inv.Sort(alg)
	if err != nil {
		if errors.Is(err, inventory.ErrTooFewToSort) {
			a.setStatus(statusError, "Too few components to sort")
			return
		}
		a.setStatus(statusError, err.Error())
		return
	}
	a.setStatus(statusSuccess, fmt.Sprintf("%s -> comparisons: %d | time: %s",
		alg.Label(), report.Comparisons, cli.FormatSeconds(report.Seconds, a.precision)))
}

func (a *App) remove(name string) {
	a.highlight = -1
	if _, err := a.inv.RemoveByName(name); err != nil {
		a.setStatus(statusError, fmt.Sprintf("'%s' not found", name))
		return
	}
	a.setStatus(statusSuccess, fmt.Sprintf("Removed %s", name))
}

func (a *App) search(name string) {
	a.highlight = -1
	result, err := a.inv.SearchByName(name)
	if err != nil {
		a.setStatus(statusError, err.Error())
		return
	}
	if !result.Found {
		a.setStatus(statusError, fmt.Sprintf("'%s' NOT found | comparisons: %d", name, result.Comparisons))
		return
	}
	a.highlight = result.Index
	a.setStatus(statusSuccess, fmt.Sprintf("Found %s at #%02d | comparisons: %d",
		result.Component, result.Index+1, result.Comparisons))
}

func (a *App) copyListing() tea.Cmd {
	items := a.inv.List()
	if len(items) == 0 {
		a.setStatus(statusError, "Nothing to copy")
		return nil
	}
	if err := copyToClipboard(plainInventory(items)); err != nil {
		a.setStatus(statusError, fmt.Sprintf("Clipboard unavailable: %v", err))
		return nil
	}
	return func() tea.Msg {
		return StatusMsg(fmt.Sprintf("%d components → clipboard", len(items)))
	}
}

func (a *App) confirmClear() {
	if a.inv.Len() == 0 {
		return
	}
	a.confirm.Show(fmt.Sprintf("Remove all %d components?", a.inv.Len()), true,
		func() tea.Cmd {
			a.inv.Clear()
			a.highlight = -1
			a.setStatus(statusSuccess, "Inventory cleared")
			return nil
		}, nil)
}

func (a *App) setStatus(kind statusKind, msg string) {
	a.statusKind = kind
	a.status = msg
}

func (a *App) View() string {
	width := a.width
	if width == 0 {
		width = 80
	}

	badge := "UNSORTED"
	if a.inv.IsNameSorted() {
		badge = "NAME ORDER"
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		TitleStyle.Render("Escape Tower · Component Organizer"),
		"  ",
		GetOrderBadgeStyle(a.inv.IsNameSorted()).Render(badge),
		"  ",
		DescriptionStyle.Render(fmt.Sprintf("%d/%d", a.inv.Len(), a.inv.Capacity())),
	)

	menuBorder, tableBorder := ActiveBorderStyle, InactiveBorderStyle
	if a.state != menuView {
		menuBorder = InactiveBorderStyle
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		menuBorder.Render(a.renderMenu()),
		" ",
		tableBorder.Render(renderInventory(a.inv.List(), a.highlight)),
	)

	sections := []string{header, body}

	switch a.state {
	case insertView:
		sections = append(sections, a.form.View())
	case removeView, searchView:
		sections = append(sections, a.prompt.View())
	}

	if a.confirm.Active() {
		sections = append(sections, a.confirm.View())
	}

	if a.status != "" {
		sections = append(sections, a.renderStatus())
	}

	sections = append(sections, renderKeys(width))
	if a.showHelp {
		sections = append(sections, renderHelp(width))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderMenu() string {
	lines := make([]string, 0, len(menuItems))
	for i, item := range menuItems {
		line := fmt.Sprintf(" %s) %s", item.key, item.label)
		if i == a.cursor && a.state == menuView {
			lines = append(lines, SelectedStyle.Render(line))
		} else {
			lines = append(lines, NormalStyle.Render(line))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (a *App) renderStatus() string {
	bg := "62"
	switch a.statusKind {
	case statusSuccess:
		bg = ColorSuccess
	case statusError:
		bg = ColorDanger
	}
	statusStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color("230")).
		Padding(0, 1)
	return statusStyle.Render(a.status)
}

// StatusMsg sets the status bar text
type StatusMsg string
