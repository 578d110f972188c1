package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EstruturaDados/free-fire/internal/cli"
	"github.com/EstruturaDados/free-fire/pkg/models"
	"github.com/EstruturaDados/free-fire/pkg/search"
)

// ListResult is the structured output of the list command
type ListResult struct {
	Filter     string             `json:"filter,omitempty" yaml:"filter,omitempty"`
	Count      int                `json:"count" yaml:"count"`
	Capacity   int                `json:"capacity" yaml:"capacity"`
	Components []models.Component `json:"components" yaml:"components"`
}

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	var from, sample, where string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Validate and list a seed file or sample",
		Example: `  # Check a parts file before using it
  freefire list --from parts.yaml

  # Show a built-in sample as YAML
  freefire list --sample tower -o yaml

  # Only the urgent support parts
  freefire list --sample tower --where "type:suporte priority:<=5"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			query, err := search.NewParser().Parse(where)
			if err != nil {
				return fmt.Errorf("invalid filter: %w", err)
			}

			inv, err := loadInventory(from, sample)
			if err != nil {
				return err
			}
			components := search.Filter(inv.List(), query)

			if format != string(cli.FormatText) {
				return cli.OutputResults(cmd.OutOrStdout(), format, ListResult{
					Filter:     where,
					Count:      len(components),
					Capacity:   inv.Capacity(),
					Components: components,
				})
			}

			cli.RenderComponents(cmd.OutOrStdout(), components)
			if where != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%d of %d components match\n", len(components), inv.Len())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d slots used\n", inv.Len(), inv.Capacity())
			return nil
		},
	}

	addSeedFlags(cmd, &from, &sample)
	cmd.Flags().StringVar(&where, "where", "", "Filter expression, e.g. 'type:suporte priority:<4'")
	return cmd
}
