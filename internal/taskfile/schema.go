package taskfile

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// SchemaURL identifies the bundled schema resource.
const SchemaURL = "tasks.schema.json"

// bundledSchema describes the files Encode produces.
const bundledSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "trackr task file",
  "type": "array",
  "items": {
    "type": "object",
    "additionalProperties": false,
    "required": ["id", "description", "status"],
    "properties": {
      "id": {
        "type": "integer",
        "minimum": 0,
        "maximum": 4294967295
      },
      "description": {
        "type": "string"
      },
      "status": {
        "enum": ["todo", "in-progress", "done"]
      }
    }
  }
}
`

// BundledSchema returns the JSON Schema for task files.
func BundledSchema() []byte {
	return []byte(bundledSchema)
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(SchemaURL, strings.NewReader(bundledSchema)); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile(SchemaURL)
	})
	return compiledSchema, compileErr
}

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // JSON path to the error location
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid    bool
	Errors   []error
	Warnings []string
}

// Validate checks data against the bundled schema. It also warns about
// duplicate ids, which the schema cannot express.
func Validate(data []byte) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("invalid JSON: %w", err),
		})
		return result
	}

	s, err := schema()
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("schema unavailable: %v", err))
		return result
	}

	if err := s.Validate(doc); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
	}

	warnDuplicateIDs(result, doc)
	return result
}

func appendSchemaErrors(result *ValidationResult, err error) {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		result.Errors = append(result.Errors, err)
		return
	}
	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}

func warnDuplicateIDs(result *ValidationResult, doc interface{}) {
	items, ok := doc.([]interface{})
	if !ok {
		return
	}

	first := make(map[float64]int)
	for i, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		id, ok := obj["id"].(float64)
		if !ok {
			continue
		}
		if prev, seen := first[id]; seen {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("[%d].id: duplicate id %s (first used at [%d])", i, strconv.FormatFloat(id, 'f', -1, 64), prev))
			continue
		}
		first[id] = i
	}
}

// jsonPointerToPath converts a JSON Pointer such as "/0/status" to "[0].status".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var path strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&path, "[%d]", idx)
			continue
		}
		if path.Len() > 0 {
			path.WriteByte('.')
		}
		path.WriteString(part)
	}
	return path.String()
}
