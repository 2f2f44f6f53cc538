package config

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "config.schema.json"

// documentSchema pins the on-disk field set and JSON types. Viper decodes
// leniently (case-folded keys, string-to-int casts), so the raw document is
// checked here first.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "host": {"type": "string", "minLength": 1},
    "port": {"type": "integer", "minimum": 1, "maximum": 65535},
    "image_root": {"type": "string", "minLength": 1}
  },
  "required": ["host", "port", "image_root"],
  "additionalProperties": false
}`

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(documentSchema))
	if err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	return c.Compile(schemaURL)
})

// validateDocument checks raw JSON bytes against the document schema.
func validateDocument(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("malformed JSON: %w", err)
	}

	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("schema mismatch: %w", err)
	}
	return nil
}
