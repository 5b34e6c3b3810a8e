package config

import (
	"fmt"
	"strings"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/loader"
)

// Validate performs range checks on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json (got %q)", c.Log.Format)
	}

	if c.Source.Path == "" {
		return fmt.Errorf("source.path is required")
	}
	if _, err := loader.ParseFormat(c.Source.Format); err != nil {
		return fmt.Errorf("source.format: %w", err)
	}

	if _, err := grouping.ParseSeedMode(c.Grouping.SeedMode); err != nil {
		return fmt.Errorf("grouping.seed_mode: %w", err)
	}

	if c.Quiz.MinOptions < 2 {
		return fmt.Errorf("quiz.min_options must be >= 2 (got %d)", c.Quiz.MinOptions)
	}
	if c.Quiz.MaxOptions < c.Quiz.MinOptions {
		return fmt.Errorf("quiz.max_options must be >= min_options (got %d < %d)", c.Quiz.MaxOptions, c.Quiz.MinOptions)
	}

	if c.Store.KeepLayouts < 0 {
		return fmt.Errorf("store.keep_layouts must be >= 0 (got %d)", c.Store.KeepLayouts)
	}

	for i, ext := range c.Audio.Extensions {
		ext = strings.TrimSpace(ext)
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Audio.Extensions[i] = ext
	}

	return nil
}

// Columns returns the CSV column mapping.
func (s SourceConfig) Columns() loader.Columns {
	return loader.Columns{
		Text:        s.TextColumn,
		Translation: s.TranslationColumn,
		Level:       s.LevelColumn,
	}
}

// Mode returns the parsed seed mode. Validate has already checked it.
func (g GroupingConfig) Mode() grouping.SeedMode {
	m, _ := grouping.ParseSeedMode(g.SeedMode)
	return m
}
