package cli

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EstruturaDados/free-fire/pkg/models"
)

func TestReadLine(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"keeps inner spaces", "chip central\n", 0, "chip central"},
		{"strips windows line ending", "motor\r\n", 0, "motor"},
		{"truncates", "abcdefghij\n", 4, "abcd"},
		{"last line without newline", "antena", 0, "antena"},
		{"empty line", "\n", 0, ""},
		{"truncates before a split rune", strings.Repeat("a", 28) + "ção\n", models.MaxNameLength, strings.Repeat("a", 28)},
		{"keeps a rune ending at the limit", strings.Repeat("a", 27) + "ção\n", models.MaxNameLength, strings.Repeat("a", 27) + "ç"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := new(bytes.Buffer)
			p := NewPrompter(strings.NewReader(tt.input), out)

			got, err := p.ReadLine("Name: ", tt.maxLen)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
			assert.Equal(t, "Name: ", out.String())
		})
	}
}

func TestReadLineEOF(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), new(bytes.Buffer))
	_, err := p.ReadLine("> ", 0)
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestReadIntRetries(t *testing.T) {
	out := new(bytes.Buffer)
	p := NewPrompter(strings.NewReader("abc\n\n 7 \n"), out)

	got, err := p.ReadInt("Option: ")
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid input"))
}

func TestReadIntInRange(t *testing.T) {
	out := new(bytes.Buffer)
	p := NewPrompter(strings.NewReader("0\n11\nten\n10\n"), out)

	got, err := p.ReadIntInRange("Priority (1..10): ", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, got)
	assert.Equal(t, 2, strings.Count(out.String(), "Value out of range (1..10)"))
	assert.Equal(t, 1, strings.Count(out.String(), "Invalid input"))
}

func TestReadIntInRangeEOF(t *testing.T) {
	p := NewPrompter(strings.NewReader("99\n"), new(bytes.Buffer))
	_, err := p.ReadIntInRange("> ", 1, 10)
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{"yes", "y\n", false, true},
		{"full yes", "YES\n", false, true},
		{"no", "n\n", true, false},
		{"default no", "\n", false, false},
		{"default yes", "\n", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPrompter(strings.NewReader(tt.input), new(bytes.Buffer))
			got, err := p.Confirm("Exit?", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirmSkipped(t *testing.T) {
	SetGlobalFlags(false, false, true)
	defer SetGlobalFlags(false, false, false)

	p := NewPrompter(strings.NewReader(""), new(bytes.Buffer))
	got, err := p.Confirm("Exit?", false)
	require.NoError(t, err)
	assert.True(t, got)
}
