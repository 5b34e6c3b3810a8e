package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/pos"
)

func sampleGroups() []*grouping.Group {
	return []*grouping.Group{{
		ID:           "noun:beginner_1+beginner_2:g1",
		PartOfSpeech: pos.Noun,
		StageLabels:  []string{"beginner_1", "beginner_2"},
		Entries: []*grouping.Entry{
			{Text: "ĉevalo", Translation: "馬 <uma>", Level: 3.5, PartOfSpeech: pos.Noun, AudioKey: "cxevalo"},
			{Text: "hundoj", Translation: "犬", Level: 1, PartOfSpeech: pos.Noun},
		},
	}}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleGroups(), FormatJSON))

	out := buf.String()
	assert.Contains(t, out, "ĉevalo", "non-ASCII must not be escaped")
	assert.Contains(t, out, "<uma>", "HTML must not be escaped")
	assert.Contains(t, out, "\n  {", "output is indented")

	var back []Group
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	require.Len(t, back, 1)
	assert.Equal(t, 2, back[0].Size)
	assert.Equal(t, []string{"beginner_1", "beginner_2"}, back[0].Stages)
	assert.Equal(t, "cxevalo", back[0].Entries[0].AudioKey)
	assert.NotContains(t, out, `"audio_key": ""`)
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleGroups(), FormatYAML))

	assert.True(t, strings.HasPrefix(buf.String(), "- id: "))

	var back []Group
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	require.Len(t, back, 1)
	assert.Equal(t, pos.Noun, back[0].POS)
	assert.Equal(t, 3.5, back[0].Entries[0].Level)
}

func TestWrite_UnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, nil, "xml"))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"groups.json", "groups.yaml", "groups.YML"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteFile(path, sampleGroups()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		if FormatFor(name) == FormatJSON {
			assert.True(t, json.Valid(data), name)
		} else {
			assert.Contains(t, string(data), "stages:", name)
		}
	}
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFor("x.yml"))
	assert.Equal(t, FormatYAML, FormatFor("x.YAML"))
	assert.Equal(t, FormatJSON, FormatFor("x.json"))
	assert.Equal(t, FormatJSON, FormatFor("x"))
}
