package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/traderx-tools/traderx-convert/internal/domain"
)

// schema-gen reflects JSON schemas from the output document types.
// The hand-maintained schemas under configs/schemas are the source of
// truth for validation; this tool produces a starting point when the
// document types change.

func main() {
	var outDir string
	flag.StringVar(&outDir, "out", "configs/schemas/generated", "directory to write the reflected schemas into")
	flag.Parse()

	targets := []struct {
		name  string
		title string
		value interface{}
	}{
		{"general_settings.json", "GeneralSettings", new(domain.GeneralSettings)},
		{"currency_settings.json", "CurrencySettings", new(domain.CurrencySettings)},
		{"category.json", "Category", new(domain.Category)},
		{"product.json", "Product", new(domain.Product)},
	}

	for _, target := range targets {
		schema := buildSchema(target.title, target.value)
		outPath := filepath.Join(outDir, target.name)
		if err := writeSchema(outPath, schema); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write schema %s: %v\n", target.name, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", outPath)
	}
}

func buildSchema(title string, value interface{}) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := reflector.Reflect(value)
	schema.Title = title
	schema.Description = fmt.Sprintf("Validates generated %s documents", title)
	return schema
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}

	return nil
}
