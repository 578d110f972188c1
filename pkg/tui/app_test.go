package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EstruturaDados/free-fire/pkg/inventory"
	"github.com/EstruturaDados/free-fire/pkg/models"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(a *App, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = a.Update(keyMsg(k))
	}
	return cmd
}

func newTestApp(t *testing.T, opts []inventory.Option, items ...models.Component) *App {
	t.Helper()
	inv := inventory.New(opts...)
	for _, c := range items {
		require.NoError(t, inv.Insert(c))
	}
	return NewApp(inv, 6)
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

var trio = []models.Component{
	{Name: "carol", Type: "suporte", Priority: 2},
	{Name: "alice", Type: "controle", Priority: 1},
	{Name: "bob", Type: "propulsao", Priority: 5},
}

func TestAppInsertFlow(t *testing.T) {
	app := newTestApp(t, nil)

	press(app, "1")
	require.Equal(t, insertView, app.state)

	press(app, "chip central", "enter", "controle", "enter", "1", "enter")

	assert.Equal(t, menuView, app.state)
	require.Equal(t, 1, app.inv.Len())
	assert.Equal(t, models.Component{Name: "chip central", Type: "controle", Priority: 1}, app.inv.List()[0])
	assert.Equal(t, statusSuccess, app.statusKind)
	assert.Contains(t, app.status, "Added chip central")
}

func TestAppInsertRejectsInvalidPriority(t *testing.T) {
	app := newTestApp(t, nil)

	press(app, "1", "antena", "enter", "suporte", "enter", "11", "enter")

	assert.Equal(t, insertView, app.state)
	assert.Equal(t, 0, app.inv.Len())
	assert.Contains(t, app.form.err, "priority")

	press(app, "esc")
	assert.Equal(t, menuView, app.state)
	assert.Equal(t, "Add cancelled", app.status)
}

func TestAppInsertAtCapacity(t *testing.T) {
	app := newTestApp(t, []inventory.Option{inventory.WithCapacity(1)}, trio[0])

	press(app, "1")

	assert.Equal(t, menuView, app.state)
	assert.Equal(t, statusError, app.statusKind)
	assert.Equal(t, "Maximum capacity (1) reached", app.status)
}

func TestAppSortActions(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		label      string
		nameSorted bool
		first      string
	}{
		{name: "by name", key: "3", label: "Bubble Sort (by name)", nameSorted: true, first: "alice"},
		{name: "by type", key: "4", label: "Insertion Sort (by type)", nameSorted: false, first: "alice"},
		{name: "by priority", key: "5", label: "Selection Sort (by priority)", nameSorted: false, first: "alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, nil, trio...)

			press(app, tt.key)

			assert.Equal(t, statusSuccess, app.statusKind)
			assert.Contains(t, app.status, tt.label+" -> comparisons: ")
			assert.Contains(t, app.status, " s")
			assert.Equal(t, tt.nameSorted, app.inv.IsNameSorted())
			assert.Equal(t, tt.first, app.inv.List()[0].Name)
		})
	}
}

func TestAppSortTooFew(t *testing.T) {
	app := newTestApp(t, nil, trio[0])

	press(app, "3")

	assert.Equal(t, statusError, app.statusKind)
	assert.Equal(t, "Too few components to sort", app.status)
	assert.False(t, app.inv.IsNameSorted())
}

func TestAppSearchRequiresNameOrder(t *testing.T) {
	app := newTestApp(t, nil, trio...)

	press(app, "6")

	assert.Equal(t, menuView, app.state)
	assert.Equal(t, statusError, app.statusKind)
	assert.Contains(t, app.status, "Press 3 first")
}

func TestAppSearch(t *testing.T) {
	app := newTestApp(t, nil, trio...)
	press(app, "3")

	press(app, "6")
	require.Equal(t, searchView, app.state)
	press(app, "bob", "enter")

	assert.Equal(t, menuView, app.state)
	assert.Equal(t, 1, app.highlight)
	assert.Equal(t, statusSuccess, app.statusKind)
	assert.Contains(t, app.status, "Found bob (propulsao, priority 5) at #02")

	press(app, "6", "zed", "enter")
	assert.Equal(t, -1, app.highlight)
	assert.Equal(t, statusError, app.statusKind)
	assert.Contains(t, app.status, "'zed' NOT found | comparisons: ")
}

func TestAppRemove(t *testing.T) {
	app := newTestApp(t, nil, trio...)
	press(app, "3")

	press(app, "2", "bob", "enter")
	assert.Equal(t, 2, app.inv.Len())
	assert.Equal(t, "Removed bob", app.status)
	assert.False(t, app.inv.IsNameSorted())

	press(app, "2", "zed", "enter")
	assert.Equal(t, 2, app.inv.Len())
	assert.Equal(t, statusError, app.statusKind)
	assert.Equal(t, "'zed' not found", app.status)
}

func TestAppRemoveEmpty(t *testing.T) {
	app := newTestApp(t, nil)

	press(app, "2")

	assert.Equal(t, menuView, app.state)
	assert.Equal(t, "Inventory is empty", app.status)
}

func TestAppPromptEscape(t *testing.T) {
	app := newTestApp(t, nil, trio...)

	press(app, "2", "bo", "esc")

	assert.Equal(t, menuView, app.state)
	assert.Equal(t, 3, app.inv.Len())
}

func TestAppMenuNavigation(t *testing.T) {
	app := newTestApp(t, nil, trio...)

	press(app, "up")
	assert.Equal(t, 0, app.cursor)

	press(app, "down", "j")
	assert.Equal(t, 2, app.cursor)

	press(app, "enter")
	assert.True(t, app.inv.IsNameSorted())

	press(app, "k")
	assert.Equal(t, 1, app.cursor)

	for range menuItems {
		press(app, "down")
	}
	assert.Equal(t, len(menuItems)-1, app.cursor)
}

func TestAppQuit(t *testing.T) {
	t.Run("empty inventory quits immediately", func(t *testing.T) {
		app := newTestApp(t, nil)
		assert.True(t, isQuit(press(app, "q")))
	})

	t.Run("non-empty inventory asks first", func(t *testing.T) {
		app := newTestApp(t, nil, trio...)

		cmd := press(app, "0")
		assert.False(t, isQuit(cmd))
		assert.True(t, app.confirm.Active())

		assert.True(t, isQuit(press(app, "y")))
	})

	t.Run("declining keeps running", func(t *testing.T) {
		app := newTestApp(t, nil, trio...)

		press(app, "0")
		cmd := press(app, "n")

		assert.False(t, isQuit(cmd))
		assert.False(t, app.confirm.Active())
		assert.Equal(t, 3, app.inv.Len())
	})

	t.Run("ctrl+c always quits", func(t *testing.T) {
		app := newTestApp(t, nil, trio...)
		press(app, "1")
		assert.True(t, isQuit(press(app, "ctrl+c")))
	})
}

func TestAppClear(t *testing.T) {
	app := newTestApp(t, nil, trio...)

	press(app, "x", "n")
	assert.Equal(t, 3, app.inv.Len())

	press(app, "x", "y")
	assert.Equal(t, 0, app.inv.Len())
	assert.Equal(t, "Inventory cleared", app.status)
}

func TestAppCopyListing(t *testing.T) {
	original := copyToClipboard
	defer func() { copyToClipboard = original }()

	var copied string
	copyToClipboard = func(text string) error {
		copied = text
		return nil
	}

	app := newTestApp(t, nil, trio...)
	cmd := press(app, "c")
	require.NotNil(t, cmd)

	app.Update(cmd())
	assert.Contains(t, copied, "#01  Name: carol")
	assert.Equal(t, "3 components → clipboard", app.status)

	copyToClipboard = func(string) error { return errors.New("no display") }
	assert.Nil(t, press(app, "c"))
	assert.Equal(t, statusError, app.statusKind)
	assert.Equal(t, "Clipboard unavailable: no display", app.status)
}

func TestAppCopyEmpty(t *testing.T) {
	app := newTestApp(t, nil)

	assert.Nil(t, press(app, "c"))
	assert.Equal(t, "Nothing to copy", app.status)
}

func TestAppView(t *testing.T) {
	app := newTestApp(t, nil, trio...)
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	view := app.View()
	assert.Contains(t, view, "UNSORTED")
	assert.Contains(t, view, "3/20")
	assert.Contains(t, view, "carol")
	assert.Contains(t, view, "Binary search by NAME")
	assert.Contains(t, view, "Sort by PRIORITY (selection sort)")

	press(app, "3")
	view = app.View()
	assert.Contains(t, view, "NAME ORDER")
	assert.Contains(t, view, "comparisons:")

	press(app, "?")
	assert.True(t, app.showHelp)
	assert.Contains(t, app.View(), "Sorting")

	press(app, "1")
	assert.Contains(t, app.View(), "Add component")
}
