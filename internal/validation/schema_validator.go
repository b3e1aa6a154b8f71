// Package validation checks generated config documents against the JSON
// schemas shipped under configs/schemas. It is an optional gate that the
// CLI and tests run after assembly; the assembler's own struct validation
// already guards the invariants the schemas restate.
package validation

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema file names expected under the schema directory.
const (
	SchemaGeneralSettings  = "general_settings.json"
	SchemaCurrencySettings = "currency_settings.json"
	SchemaCategory         = "category.json"
	SchemaProduct          = "product.json"
)

// SchemaValidator validates generated documents against JSON schemas.
type SchemaValidator interface {
	// ValidateBytes validates one JSON document against the named schema.
	ValidateBytes(data []byte, schemaName string) error

	// ValidateFileMap validates every document of a generated file map,
	// picking the schema from the file's place in the output tree.
	ValidateFileMap(files map[string]string) error
}

type validator struct {
	dir     string
	schemas map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a validator reading schemas from dir.
// Compiled schemas are cached per name.
func NewSchemaValidator(dir string) SchemaValidator {
	return &validator{
		dir:     dir,
		schemas: make(map[string]*jsonschema.Schema),
	}
}

func (v *validator) ValidateBytes(data []byte, schemaName string) error {
	schema, err := v.loadSchema(schemaName)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaName, err)
	}

	inst, err := jsonschema.UnmarshalJSON(strings.NewReader(string(data)))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := schema.Validate(inst); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func (v *validator) ValidateFileMap(files map[string]string) error {
	for name, content := range files {
		schemaName, ok := SchemaForPath(name)
		if !ok {
			continue
		}
		if err := v.ValidateBytes([]byte(content), schemaName); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// SchemaForPath maps a generated file path to the schema that governs it.
// Paths outside the known output layout get ok=false.
func SchemaForPath(filePath string) (string, bool) {
	base := path.Base(filePath)
	dir := path.Base(path.Dir(filePath))
	switch {
	case base == "GeneralSettings.json":
		return SchemaGeneralSettings, true
	case base == "CurrencySettings.json":
		return SchemaCurrencySettings, true
	case dir == "Categories":
		return SchemaCategory, true
	case dir == "Products":
		return SchemaProduct, true
	}
	return "", false
}

func (v *validator) loadSchema(schemaName string) (*jsonschema.Schema, error) {
	if schema, ok := v.schemas[schemaName]; ok {
		return schema, nil
	}

	schemaPath := filepath.Join(v.dir, schemaName)
	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[schemaName] = schema
	return schema, nil
}

// formatValidationError flattens a validation error tree into one message
// listing every failing instance location.
func formatValidationError(err error) error {
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("validation error: %w", err)
	}
	var errors []string
	collectErrors(validationErr, &errors)
	return fmt.Errorf("schema validation failed:\n%s", strings.Join(errors, "\n"))
}

func collectErrors(err *jsonschema.ValidationError, errors *[]string) {
	if msg := formatError(err); msg != "" {
		*errors = append(*errors, msg)
	}
	for _, cause := range err.Causes {
		collectErrors(cause, errors)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := strings.Join(err.InstanceLocation, "/")
	if location == "" {
		location = "(root)"
	} else {
		location = "/" + location
	}

	keywords := ""
	if err.ErrorKind != nil {
		keywordPath := err.ErrorKind.KeywordPath()
		if len(keywordPath) > 0 {
			keywords = strings.Join(keywordPath, ".")
		}
	}

	if keywords != "" {
		return fmt.Sprintf("  - at %s: %s validation failed", location, keywords)
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}
