package utils

import (
	"encoding/json"
	"fmt"
	"os"
)

// outputIndent is the four-space indent of emitted config files.
const outputIndent = "    "

// MarshalPretty renders a document the way the game expects its config
// files: four-space indent, trailing newline.
func MarshalPretty(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", outputIndent)
	if err != nil {
		return "", fmt.Errorf("failed to marshal document: %w", err)
	}
	return string(data) + "\n", nil
}

// LoadJSON reads a JSON file and unmarshals it into the target.
func LoadJSON(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from %s: %w", path, err)
	}
	return nil
}
