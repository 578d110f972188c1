package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/EstruturaDados/free-fire/pkg/models"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// TableFormatter helps format tabular output
type TableFormatter struct {
	writer *tabwriter.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	return &TableFormatter{writer: tw}
}

// Header writes the table header
func (t *TableFormatter) Header(columns ...string) {
	fmt.Fprintln(t.writer, strings.Join(columns, "\t"))
}

// Row writes a table row
func (t *TableFormatter) Row(values ...string) {
	fmt.Fprintln(t.writer, strings.Join(values, "\t"))
}

// Flush writes the buffered table to output
func (t *TableFormatter) Flush() {
	t.writer.Flush()
}

// OutputResults formats and outputs results based on the specified format
func OutputResults(w io.Writer, format string, data interface{}) error {
	switch OutputFormat(format) {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(data)

	case FormatYAML:
		yamlData, err := yaml.Marshal(data)
		if err != nil {
			return err
		}
		fmt.Fprint(w, string(yamlData))
		return nil

	case FormatText:
		// For text format, we expect the caller to have already formatted
		// the data appropriately. This is a fallback.
		fmt.Fprintf(w, "%v\n", data)
		return nil

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// RenderComponents writes the numbered component listing
func RenderComponents(w io.Writer, items []models.Component) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "COMPONENTS")
	fmt.Fprintln(w, strings.Repeat("-", 60))
	if len(items) == 0 {
		fmt.Fprintln(w, "(empty)")
		fmt.Fprintln(w, strings.Repeat("-", 60))
		return
	}

	table := NewTableFormatter(w)
	table.Header("#", "Name", "Type", "Priority")
	for i, c := range items {
		table.Row(fmt.Sprintf("%02d", i+1), c.Name, c.Type, fmt.Sprintf("%2d", c.Priority))
	}
	table.Flush()
	fmt.Fprintln(w, strings.Repeat("-", 60))
}

// FormatSeconds formats an elapsed time with the given number of decimals
func FormatSeconds(secs float64, precision int) string {
	if precision <= 0 {
		precision = 6
	}
	return fmt.Sprintf("%.*f s", precision, secs)
}
