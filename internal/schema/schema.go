// Package schema validates serialized task lists against the published
// JSON Schema for the CLI's output format.
package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed tasklist.schema.json
var rawSchema string

const schemaName = "tasklist.schema.json"

// ValidationError describes the first schema violation found in a
// document.
type ValidationError struct {
	Path    string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// Validate checks a serialized task list document against the embedded
// schema. A nil return means the document conforms.
func Validate(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaName, strings.NewReader(rawSchema)); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := compiler.Compile(schemaName)
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal document: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return mapSchemaError(err)
	}
	return nil
}

// mapSchemaError converts a jsonschema ValidationError to a
// ValidationError pointing at the first failing leaf.
func mapSchemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return &ValidationError{Message: err.Error()}
	}

	var result error
	collectSchemaErrors(ve, &result)
	if result != nil {
		return result
	}
	return &ValidationError{Message: err.Error()}
}

// collectSchemaErrors walks the error tree to its first leaf cause.
func collectSchemaErrors(err *jsonschema.ValidationError, result *error) {
	if err == nil {
		return
	}
	if len(err.Causes) == 0 {
		*result = &ValidationError{
			Path:    pointerToPath(err.InstanceLocation),
			Message: err.Message,
		}
		return
	}
	for _, cause := range err.Causes {
		if *result == nil {
			collectSchemaErrors(cause, result)
		}
	}
}

// pointerToPath converts a JSON pointer like "/0/tags/1/type" to the
// dotted form "0.tags.1.type".
func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}
	return strings.ReplaceAll(ptr, "/", ".")
}
