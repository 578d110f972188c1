package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EstruturaDados/free-fire/pkg/sorting"
)

func TestSortCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  string
		contains []string
	}{
		{
			name:     "bubble sort worst case",
			args:     []string{"name", "--sample", "worst-case"},
			contains: []string{"Bubble Sort (by name) -> comparisons: 190 | time: ", "01  peca-01"},
		},
		{
			name:     "bubble sort best case",
			args:     []string{"name", "--sample", "sorted"},
			contains: []string{"Bubble Sort (by name) -> comparisons: 19 | time: "},
		},
		{
			name:     "insertion sort by algorithm name",
			args:     []string{"insertion", "--sample", "sorted"},
			contains: []string{"Insertion Sort (by type) -> comparisons: 19 | time: "},
		},
		{
			name:     "selection sort",
			args:     []string{"priority", "--sample", "tower"},
			contains: []string{"Selection Sort (by priority) -> comparisons: 28 | time: ", "01  chip central"},
		},
		{
			name:    "unknown key",
			args:    []string{"color", "--sample", "tower"},
			wantErr: "unknown sort key: color",
		},
		{
			name:    "empty inventory",
			args:    []string{"name"},
			wantErr: "need at least 2 components, got 0",
		},
		{
			name:    "missing key",
			args:    []string{},
			wantErr: "accepts 1 arg(s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupContext(t, "")

			out, err := execute(withOutputFlag(NewSortCommand()), "", tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestSortCommandFromFile(t *testing.T) {
	dir := setupContext(t, "output:\n  timing_precision: 3\n")
	seed := writeSeed(t, dir, `components:
  - name: motor
    type: propulsao
    priority: 2
  - name: antena
    type: comunicacao
    priority: 6
  - name: casco
    type: suporte
    priority: 1
`)

	out, err := execute(withOutputFlag(NewSortCommand()), "", "type", "--from", seed)
	require.NoError(t, err)

	assert.Contains(t, out, "Insertion Sort (by type) -> comparisons: 2 | time: ")
	assert.Regexp(t, `time: \d+\.\d{3} s`, out)
	assert.Regexp(t, `01\s+antena`, out)
}

func TestSortCommandJSON(t *testing.T) {
	setupContext(t, "")

	out, err := execute(withOutputFlag(NewSortCommand()), "", "priority", "--sample", "tower", "-o", "json")
	require.NoError(t, err)

	var result SortResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "Selection Sort", result.Report.Algorithm)
	assert.Equal(t, sorting.KeyPriority, result.Report.Key)
	assert.Equal(t, int64(28), result.Report.Comparisons)
	assert.Equal(t, 8, result.Report.Count)
	require.Len(t, result.Components, 8)
	for i := 1; i < len(result.Components); i++ {
		assert.LessOrEqual(t, result.Components[i-1].Priority, result.Components[i].Priority)
	}
}
