package examples

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EstruturaDados/free-fire/pkg/files"
	"github.com/EstruturaDados/free-fire/pkg/inventory"
	"github.com/EstruturaDados/free-fire/pkg/models"
)

func TestExampleSetsAreValid(t *testing.T) {
	for _, set := range GetExamples("all") {
		t.Run(set.Name, func(t *testing.T) {
			assert.NotEmpty(t, set.Category)
			assert.LessOrEqual(t, len(set.Components), models.MaxComponents)
			for _, c := range set.Components {
				assert.NoError(t, c.Validate(), c.Name)
			}
		})
	}
}

func TestGetExamplesUnknownCategory(t *testing.T) {
	assert.Empty(t, GetExamples("nope"))

	_, err := Find("nope")
	assert.Error(t, err)
	_, err = Find("all")
	assert.Error(t, err)
}

func TestSampleComparisonCounts(t *testing.T) {
	n := int64(models.MaxComponents)

	tests := []struct {
		category string
		want     int64
	}{
		{"sorted", n - 1},
		{"worst-case", n * (n - 1) / 2},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			set, err := Find(tt.category)
			require.NoError(t, err)

			inv := inventory.New()
			for _, c := range set.Components {
				require.NoError(t, inv.Insert(c))
			}
			report, err := inv.SortByName()
			require.NoError(t, err)
			assert.Equal(t, tt.want, report.Comparisons)
		})
	}
}

func TestInstallSet(t *testing.T) {
	set, err := Find("tower")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "tower.yaml")

	installed, err := InstallSet(set, path, false)
	require.NoError(t, err)
	assert.True(t, installed)

	loaded, err := files.LoadComponents(path)
	require.NoError(t, err)
	assert.Equal(t, set.Components, loaded)

	installed, err = InstallSet(set, path, false)
	assert.Error(t, err)
	assert.False(t, installed)

	installed, err = InstallSet(set, path, true)
	require.NoError(t, err)
	assert.True(t, installed)
}
