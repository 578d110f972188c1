package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/EstruturaDados/free-fire/pkg/tui"
)

// RunTUI seeds an inventory and runs the interactive UI until the user quits
func RunTUI(from, sample string) error {
	inv, err := loadInventory(from, sample)
	if err != nil {
		return err
	}

	app := tui.NewApp(inv, commandContext().Precision())
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}
