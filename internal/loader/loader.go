// Package loader reads vocabulary files into grouping records. It checks
// the file shape strictly (required columns, schema) and leaves value
// validation to grouping.Load so errors carry the row number.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
)

// Format is a supported input file format.
type Format string

const (
	FormatAuto Format = "auto"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name. Empty means auto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatCSV, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown source format %q: must be csv, json or auto", s)
}

// DetectFormat picks the format from the file extension, CSV by default.
func DetectFormat(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatCSV
}

// Columns names the CSV header cells holding each field.
type Columns struct {
	Text        string
	Translation string
	Level       string
}

// DefaultColumns matches the merged vocabulary spreadsheet export.
var DefaultColumns = Columns{
	Text:        "Esperanto",
	Translation: "Japanese_Trans",
	Level:       "Unified_Level",
}

// SchemaError reports a file whose shape does not match what the loader
// expects: missing CSV columns or a JSON document failing the schema.
type SchemaError struct {
	Format  Format
	Missing []string
	Err     error
}

func (e *SchemaError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("%s source: missing required columns: %s", e.Format, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("%s source: %v", e.Format, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// LoadFile reads path as format (detected from the extension for auto).
func LoadFile(path string, format Format, cols Columns) ([]grouping.Record, error) {
	if format == "" || format == FormatAuto {
		format = DetectFormat(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary file: %w", err)
	}
	defer f.Close()

	var records []grouping.Record
	switch format {
	case FormatCSV:
		records, err = ReadCSV(f, cols)
	case FormatJSON:
		records, err = ReadJSON(f)
	default:
		return nil, fmt.Errorf("unknown source format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	return records, nil
}
