package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EstruturaDados/free-fire/internal/cli"
	"github.com/EstruturaDados/free-fire/pkg/inventory"
	"github.com/EstruturaDados/free-fire/pkg/models"
	"github.com/EstruturaDados/free-fire/pkg/sorting"
)

// SortResult is the structured output of the sort command
type SortResult struct {
	Report     inventory.Report   `json:"report" yaml:"report"`
	Components []models.Component `json:"components" yaml:"components"`
}

// NewSortCommand creates the sort command
func NewSortCommand() *cobra.Command {
	var from, sample string

	cmd := &cobra.Command{
		Use:   "sort <name|type|priority>",
		Short: "Sort a seeded inventory and report comparisons and time",
		Long: `Sort a seeded inventory once and print the result.

Keys:
  name      - bubble sort by name
  type      - insertion sort by type
  priority  - selection sort by priority (1 first)`,
		Example: `  # Worst case for bubble sort
  freefire sort name --sample worst-case

  # Sort your own parts list and emit JSON
  freefire sort priority --from parts.yaml -o json`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"name", "type", "priority"},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateSortKey(args[0])
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd, args[0], from, sample)
		},
	}

	addSeedFlags(cmd, &from, &sample)
	return cmd
}

func runSort(cmd *cobra.Command, key, from, sample string) error {
	alg, err := sorting.Lookup(key)
	if err != nil {
		return err
	}

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}

	inv, err := loadInventory(from, sample)
	if err != nil {
		return err
	}

	report, err := inv.Sort(alg)
	if err != nil {
		if errors.Is(err, inventory.ErrTooFewToSort) {
			return fmt.Errorf("need at least 2 components, got %d: %w", inv.Len(), err)
		}
		return err
	}

	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, SortResult{
			Report:     report,
			Components: inv.List(),
		})
	}

	out := cmd.OutOrStdout()
	cli.RenderComponents(out, inv.List())
	fmt.Fprintf(out, "%s -> comparisons: %d | time: %s\n",
		alg.Label(), report.Comparisons, cli.FormatSeconds(report.Seconds, commandContext().Precision()))
	return nil
}
