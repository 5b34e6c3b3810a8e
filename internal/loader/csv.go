package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
)

const utf8BOM = "\ufeff"

// ReadCSV reads a headed CSV. Columns are located by exact header name;
// any other columns are ignored. A row too short to reach a column gets an
// empty value for it, which grouping.Load then rejects with the row number.
func ReadCSV(r io.Reader, cols Columns) ([]grouping.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, &SchemaError{Format: FormatCSV, Missing: []string{cols.Text, cols.Translation, cols.Level}}
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	var missing []string
	pick := func(name string) int {
		i, ok := index[name]
		if !ok {
			missing = append(missing, name)
			return -1
		}
		return i
	}
	textCol, transCol, levelCol := pick(cols.Text), pick(cols.Translation), pick(cols.Level)
	if len(missing) > 0 {
		return nil, &SchemaError{Format: FormatCSV, Missing: missing}
	}

	var records []grouping.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(records), err)
		}
		records = append(records, grouping.Record{
			Text:        field(row, textCol),
			Translation: field(row, transCol),
			Level:       field(row, levelCol),
		})
	}
	return records, nil
}

func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
