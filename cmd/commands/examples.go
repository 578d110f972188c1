package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/EstruturaDados/free-fire/pkg/examples"
)

func NewExamplesCommand() *cobra.Command {
	var write string
	var force bool

	cmd := &cobra.Command{
		Use:   "examples [category]",
		Short: "List built-in sample inventories or write one as a seed file",
		Long: `List the built-in sample inventories, or write one to a YAML seed file
that can be edited and passed back with --from.

Categories:
  tower       - the escape tower parts, unsorted
  sorted      - 20 parts already in name, type and priority order
  worst-case  - 20 parts in reverse order
  all         - every category (listing only, default)`,
		Example: `  # List every sample
  freefire examples

  # Write the tower sample to a seed file
  freefire examples tower --write parts.yaml

  # Overwrite an existing seed file
  freefire examples worst-case --write parts.yaml --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := "all"
			if len(args) > 0 {
				category = args[0]
			}

			if !slices.Contains(examples.Categories(), category) {
				return fmt.Errorf("invalid category '%s'. Valid categories: %s",
					category, strings.Join(examples.Categories(), ", "))
			}

			if write == "" {
				return listExamples(cmd, category)
			}
			return writeExample(cmd, category, write, force)
		},
	}

	cmd.Flags().StringVarP(&write, "write", "w", "", "Write the sample to this seed file")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing seed file")

	return cmd
}

func listExamples(cmd *cobra.Command, category string) error {
	out := cmd.OutOrStdout()
	if category == "all" {
		fmt.Fprintf(out, "Available samples (all categories):\n\n")
	} else {
		fmt.Fprintf(out, "Available samples in category '%s':\n\n", category)
	}

	for _, set := range examples.GetExamples(category) {
		fmt.Fprintf(out, "📦 [%s] %s\n", set.Category, set.Name)
		fmt.Fprintf(out, "   %s\n\n", set.Description)
		fmt.Fprintf(out, "   Components (%d):\n", len(set.Components))
		for _, comp := range set.Components {
			fmt.Fprintf(out, "   • %s\n", comp)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "To use a sample, run: freefire menu --sample <category>\n")
	return nil
}

func writeExample(cmd *cobra.Command, category, path string, force bool) error {
	set, err := examples.Find(category)
	if err != nil {
		return err
	}

	if _, err := examples.InstallSet(set, path, force); err != nil {
		if !force && strings.Contains(err.Error(), "already exists") {
			return fmt.Errorf("%w (use --force to overwrite)", err)
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %d components from %s to %s\n", len(set.Components), set.Name, path)
	return nil
}
