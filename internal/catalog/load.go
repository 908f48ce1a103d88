package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a signature catalog from a JSON file. The file holds an
// array of signatures in the same shape Signature marshals to; entry
// order in the file becomes catalog order.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var entries []Signature
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}

	c, err := New(entries)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog file %s: %w", path, err)
	}
	return c, nil
}
