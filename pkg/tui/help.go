package tui

import (
	"github.com/muesli/reflow/wordwrap"
)

const helpText = `Sorting by name uses bubble sort and is the only order that allows a binary search. ` +
	`Sorting by type (insertion sort) or priority (selection sort), adding or removing a component ` +
	`all invalidate the name order. Each sort reports how many key comparisons it made and how long it took; ` +
	`each search reports its comparisons. Names and types are compared byte by byte, so uppercase letters ` +
	`sort before lowercase ones.`

const keysText = `1-7 choose an action • ↑/↓ + enter select • c copy listing • x clear • ? toggle help • q quit`

// renderHelp wraps the help text to the given width
func renderHelp(width int) string {
	if width <= 0 {
		width = 80
	}
	return DescriptionStyle.Render(wordwrap.String(helpText, width))
}

func renderKeys(width int) string {
	if width <= 0 {
		width = 80
	}
	return DescriptionStyle.Render(wordwrap.String(keysText, width))
}
