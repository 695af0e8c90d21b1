package content

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed seed/roadmaps.yaml
var seedDocument []byte

//go:embed schema/content.schema.json
var schemaDocument []byte

const schemaURL = "schema://sankalan/content.schema.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaDocument))
	if err != nil {
		return nil, fmt.Errorf("parse content schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
})

// defaultTree memoizes the embedded seed so it is loaded once per process.
var defaultTree = sync.OnceValues(func() (*Tree, error) {
	return LoadTree(seedDocument)
})

// Default returns the tree built from the embedded seed document.
func Default() (*Tree, error) {
	return defaultTree()
}

// LoadFile reads a YAML content document from disk and loads it.
func LoadFile(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}
	return LoadTree(data)
}

// LoadTree parses a YAML content document, checks it against the content
// schema and the tree invariants, and builds the indexed tree. Any schema or
// invariant violation is reported as a *DataIntegrityError.
func LoadTree(data []byte) (*Tree, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &DataIntegrityError{Problems: []string{"decode: " + err.Error()}, Err: err}
	}

	if err := validateCategories(doc.Categories); err != nil {
		return nil, err
	}
	return buildTree(doc.Categories), nil
}

// validateSchema checks the raw document against the embedded JSON schema.
// YAML is round-tripped through JSON so the validator sees JSON types.
func validateSchema(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return &DataIntegrityError{Problems: []string{"parse YAML: " + err.Error()}, Err: err}
	}
	asJSON, err := json.Marshal(raw)
	if err != nil {
		return &DataIntegrityError{Problems: []string{"convert to JSON: " + err.Error()}, Err: err}
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(asJSON))
	if err != nil {
		return &DataIntegrityError{Problems: []string{"convert to JSON: " + err.Error()}, Err: err}
	}

	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile content schema: %w", err)
	}
	if err := schema.Validate(inst); err != nil {
		return &DataIntegrityError{Problems: []string{"schema: " + err.Error()}, Err: err}
	}
	return nil
}
