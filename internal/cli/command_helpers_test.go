package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EstruturaDados/free-fire/pkg/inventory"
)

func TestSeedInventory(t *testing.T) {
	dir := t.TempDir()
	seed := filepath.Join(dir, "components.yaml")
	require.NoError(t, os.WriteFile(seed, []byte(`- name: motor
  type: propulsao
  priority: 2
- name: antena
  type: suporte
  priority: 6
`), 0644))

	ctx := NewCommandContext(filepath.Join(dir, "missing.yaml"), nil)
	inv, err := ctx.SeedInventory(seed)
	require.NoError(t, err)

	assert.Equal(t, 2, inv.Len())
	assert.False(t, inv.IsNameSorted())
	assert.Equal(t, 6, ctx.Precision())
}

func TestSeedInventoryRespectsCapacity(t *testing.T) {
	dir := t.TempDir()
	settings := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("inventory:\n  capacity: 2\n"), 0644))

	var b strings.Builder
	for i := 0; i < 3; i++ {
		fmt.Fprintf(&b, "- name: part-%d\n  type: suporte\n  priority: 1\n", i)
	}
	seed := filepath.Join(dir, "components.yaml")
	require.NoError(t, os.WriteFile(seed, []byte(b.String()), 0644))

	ctx := NewCommandContext(settings, nil)
	_, err := ctx.SeedInventory(seed)
	assert.ErrorIs(t, err, inventory.ErrCapacityExceeded)
}

func TestSeedInventoryWithoutFile(t *testing.T) {
	ctx := NewCommandContext(filepath.Join(t.TempDir(), "none.yaml"), nil)
	inv, err := ctx.SeedInventory("")
	require.NoError(t, err)
	assert.Equal(t, 0, inv.Len())
	assert.Equal(t, 20, inv.Capacity())
}
