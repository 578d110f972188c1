package tui

import (
	"fmt"
	"strings"

	"github.com/EstruturaDados/free-fire/pkg/models"
)

const (
	colIndex    = 4
	colName     = models.MaxNameLength + 1
	colType     = models.MaxTypeLength + 1
	colPriority = 8
)

// renderInventory draws the component table. highlight is the row found by
// the last search, or -1.
func renderInventory(items []models.Component, highlight int) string {
	var b strings.Builder

	header := fmt.Sprintf("%-*s%-*s%-*s%*s", colIndex, "#", colName, "Name", colType, "Type", colPriority, "Priority")
	b.WriteString(HeaderStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(DescriptionStyle.Render(strings.Repeat("─", colIndex+colName+colType+colPriority)))
	b.WriteString("\n")

	if len(items) == 0 {
		b.WriteString(DescriptionStyle.Render("(empty) press 1 to add a component"))
		return b.String()
	}

	for i, c := range items {
		prefix := fmt.Sprintf("%-*s%-*s%-*s", colIndex, fmt.Sprintf("%02d", i+1), colName, c.Name, colType, c.Type)
		priority := fmt.Sprintf("%*d", colPriority, c.Priority)
		if i == highlight {
			b.WriteString(HighlightStyle.Render(prefix + priority))
		} else {
			b.WriteString(NormalStyle.Render(prefix))
			b.WriteString(GetPriorityStyle(c.Priority).Render(priority))
		}
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// plainInventory renders the listing without styling, for the clipboard
func plainInventory(items []models.Component) string {
	var b strings.Builder
	for i, c := range items {
		fmt.Fprintf(&b, "#%02d  Name: %-*s  Type: %-*s  Priority: %2d\n",
			i+1, models.MaxNameLength, c.Name, models.MaxTypeLength, c.Type, c.Priority)
	}
	return b.String()
}
