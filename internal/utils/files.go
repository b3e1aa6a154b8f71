package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFileMap materializes a virtual file map under dir, creating
// intermediate directories as needed. Paths in the map use forward
// slashes.
func WriteFileMap(dir string, files map[string]string) error {
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", rel, err)
		}
	}
	return nil
}
