package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EstruturaDados/free-fire/internal/cli"
	"github.com/EstruturaDados/free-fire/pkg/examples"
	"github.com/EstruturaDados/free-fire/pkg/files"
	"github.com/EstruturaDados/free-fire/pkg/inventory"
)

var appContext *cli.CommandContext

// SetContext installs the settings and logger resolved by the root command
func SetContext(ctx *cli.CommandContext) {
	appContext = ctx
}

func commandContext() *cli.CommandContext {
	if appContext == nil {
		appContext = cli.NewCommandContext(files.DefaultSettingsFile, nil)
	}
	return appContext
}

// outputFormat resolves the --output flag, falling back to the settings file
func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format = commandContext().LoadSettingsWithDefault().Output.Format
	}
	if err := cli.ValidateOutputFormat(format); err != nil {
		return "", err
	}
	return format, nil
}

func addSeedFlags(cmd *cobra.Command, from, sample *string) {
	cmd.Flags().StringVar(from, "from", "", "Seed the inventory from a YAML file")
	cmd.Flags().StringVar(sample, "sample", "", "Seed the inventory from a built-in sample (tower, sorted, worst-case)")
}

// loadInventory builds the inventory for a one-shot run. With neither a seed
// file nor a sample the inventory starts empty.
func loadInventory(from, sample string) (*inventory.Inventory, error) {
	ctx := commandContext()
	if from != "" && sample != "" {
		return nil, fmt.Errorf("--from and --sample cannot be combined")
	}
	if sample == "" {
		return ctx.SeedInventory(from)
	}

	set, err := examples.Find(sample)
	if err != nil {
		return nil, err
	}
	inv := ctx.NewInventory()
	for _, c := range set.Components {
		if err := inv.Insert(c); err != nil {
			return nil, fmt.Errorf("sample %s: %w", sample, err)
		}
	}
	return inv, nil
}
