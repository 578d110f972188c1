package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EstruturaDados/free-fire/internal/cli"
	"github.com/EstruturaDados/free-fire/pkg/inventory"
	"github.com/EstruturaDados/free-fire/pkg/sorting"
)

// SearchOutput is the structured output of the search command
type SearchOutput struct {
	Sort    *inventory.Report        `json:"sort,omitempty" yaml:"sort,omitempty"`
	Results []inventory.SearchResult `json:"results" yaml:"results"`
}

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	var from, sample string

	cmd := &cobra.Command{
		Use:   "search <name>...",
		Short: "Binary search a seeded inventory by name",
		Long: `Seed an inventory, sort it by name with bubble sort and run one binary
search per argument. Names are matched exactly, byte by byte.`,
		Example: `  # Look for two parts of the escape tower
  freefire search "chip central" leme --sample tower`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, from, sample)
		},
	}

	addSeedFlags(cmd, &from, &sample)
	return cmd
}

func runSearch(cmd *cobra.Command, names []string, from, sample string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	inv, err := loadInventory(from, sample)
	if err != nil {
		return err
	}
	if inv.Len() == 0 {
		return fmt.Errorf("nothing to search: %w", inventory.ErrEmpty)
	}

	var output SearchOutput
	report, err := inv.SortByName()
	switch {
	case err == nil:
		output.Sort = &report
	case !errors.Is(err, inventory.ErrTooFewToSort):
		return err
	}

	// A lone component is never name-sorted, so the inventory refuses the search
	for _, name := range names {
		result, err := inv.SearchByName(name)
		if err != nil {
			return fmt.Errorf("search %q: %w", name, err)
		}
		output.Results = append(output.Results, result)
	}

	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, output)
	}

	out := cmd.OutOrStdout()
	if output.Sort != nil {
		fmt.Fprintf(out, "%s -> comparisons: %d | time: %s\n", sorting.ByName.Label(),
			output.Sort.Comparisons, cli.FormatSeconds(output.Sort.Seconds, commandContext().Precision()))
	}
	for _, r := range output.Results {
		if r.Found {
			fmt.Fprintf(out, "Found: %s at position %02d | comparisons: %d\n", r.Component, r.Index+1, r.Comparisons)
		} else {
			fmt.Fprintf(out, "'%s' NOT found | comparisons: %d\n", r.Target, r.Comparisons)
		}
	}
	return nil
}
