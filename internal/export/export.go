// Package export writes built groups to JSON or YAML for inspection and
// for other tools.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/pos"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the format from a file extension, JSON by default.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Group is the exported form of a grouping.Group.
type Group struct {
	ID      string   `json:"id"      yaml:"id"`
	POS     pos.Tag  `json:"pos"     yaml:"pos"`
	Stages  []string `json:"stages"  yaml:"stages"`
	Size    int      `json:"size"    yaml:"size"`
	Entries []Entry  `json:"entries" yaml:"entries"`
}

// Entry is the exported form of a grouping.Entry.
type Entry struct {
	Text        string  `json:"text"               yaml:"text"`
	Translation string  `json:"translation"        yaml:"translation"`
	Level       float64 `json:"level"              yaml:"level"`
	POS         pos.Tag `json:"pos"                yaml:"pos"`
	AudioKey    string  `json:"audio_key,omitempty" yaml:"audio_key,omitempty"`
}

// Convert maps groups to their exported form.
func Convert(groups []*grouping.Group) []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		entries := make([]Entry, len(g.Entries))
		for j, e := range g.Entries {
			entries[j] = Entry{
				Text:        e.Text,
				Translation: e.Translation,
				Level:       e.Level,
				POS:         e.PartOfSpeech,
				AudioKey:    e.AudioKey,
			}
		}
		out[i] = Group{
			ID:      g.ID,
			POS:     g.PartOfSpeech,
			Stages:  g.StageLabels,
			Size:    g.Size(),
			Entries: entries,
		}
	}
	return out
}

// Write encodes groups to w. JSON keeps non-ASCII text as is.
func Write(w io.Writer, groups []*grouping.Group, format Format) error {
	doc := Convert(groups)
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown export format %q", format)
}

// WriteFile writes groups to path in the format its extension implies.
func WriteFile(path string, groups []*grouping.Group) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, groups, FormatFor(path)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
