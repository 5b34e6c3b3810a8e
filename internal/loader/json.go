package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
)

const wordListSchemaURL = "schema://word-list.json"

// wordListSchema describes a JSON word list: an array of objects with text,
// translation and a level given as a number or numeric string.
const wordListSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["text", "translation", "level"],
    "properties": {
      "text": {"type": "string"},
      "translation": {"type": "string"},
      "level": {"type": ["number", "string"]}
    }
  }
}`

var compiledWordList = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var def any
	if err := json.Unmarshal([]byte(wordListSchema), &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(wordListSchemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(wordListSchemaURL)
})

// ReadJSON reads a word list document and validates it against the word
// list schema before converting it to records.
func ReadJSON(r io.Reader) ([]grouping.Record, error) {
	doc, err := jsonschema.UnmarshalJSON(r)
	if err != nil {
		return nil, &SchemaError{Format: FormatJSON, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiledWordList()
	if err != nil {
		return nil, fmt.Errorf("compile word list schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, &SchemaError{Format: FormatJSON, Err: err}
	}

	items, _ := doc.([]any)
	records := make([]grouping.Record, 0, len(items))
	for _, item := range items {
		obj, _ := item.(map[string]any)
		text, _ := obj["text"].(string)
		translation, _ := obj["translation"].(string)
		records = append(records, grouping.Record{
			Text:        text,
			Translation: translation,
			Level:       levelString(obj["level"]),
		})
	}
	return records, nil
}

func levelString(v any) string {
	switch l := v.(type) {
	case json.Number:
		return l.String()
	case string:
		return l
	case float64:
		return fmt.Sprint(l)
	}
	return ""
}
