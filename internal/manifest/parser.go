package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// ParseProject reads and decodes a project.json file.
func ParseProject(path string) (*ProjectManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseTyped[ProjectManifest](data, path)
}

// ParseModule reads and decodes a module.json file.
func ParseModule(path string) (*ModuleManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseTyped[ModuleManifest](data, path)
}

// parseTyped unmarshals JSON data into a typed manifest struct.
func parseTyped[T any](data []byte, path string) (*T, error) {
	var m T
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
