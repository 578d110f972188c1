package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/EstruturaDados/free-fire/internal/cli"
)

// setupContext points the commands at a settings file inside a temp dir
func setupContext(t *testing.T, settings string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	if settings != "" {
		require.NoError(t, os.WriteFile(path, []byte(settings), 0644))
	}

	prev := appContext
	SetContext(cli.NewCommandContext(path, nil))
	t.Cleanup(func() { appContext = prev })
	return dir
}

func writeSeed(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "parts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// withOutputFlag adds the root's persistent --output flag to a standalone command
func withOutputFlag(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().StringP("output", "o", "", "Output format")
	return cmd
}

func execute(cmd *cobra.Command, stdin string, args ...string) (string, error) {
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
