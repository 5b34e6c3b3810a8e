package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"CSV", FormatCSV, false},
		{" json ", FormatJSON, false},
		{"xlsx", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, DetectFormat("words.JSON"))
	assert.Equal(t, FormatCSV, DetectFormat("words.csv"))
	assert.Equal(t, FormatCSV, DetectFormat("words"))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "words.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("Esperanto,Japanese_Trans,Unified_Level\nhundo,犬,1\n"), 0o644))

	jsonPath := filepath.Join(dir, "words.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"text":"kato","translation":"猫","level":2}]`), 0o644))

	records, err := LoadFile(csvPath, FormatAuto, DefaultColumns)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "hundo", records[0].Text)

	records, err = LoadFile(jsonPath, "", DefaultColumns)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "kato", records[0].Text)

	// An explicit format wins over the extension.
	_, err = LoadFile(csvPath, FormatJSON, DefaultColumns)
	var se *SchemaError
	assert.True(t, errors.As(err, &se))

	_, err = LoadFile(filepath.Join(dir, "missing.csv"), FormatAuto, DefaultColumns)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
