package scene

import (
	"encoding/json"
	"fmt"
	"os"
)

// FormatVersion is written into saved documents so older files can be
// migrated if the schema ever changes.
const FormatVersion = "1"

// document is the JSON envelope for a saved scene
type document struct {
	Version string  `json:"version"`
	Bodies  []*Body `json:"bodies"`
}

// Save writes the scene to path as indented JSON
func (s *Scene) Save(path string) error {
	doc := document{Version: FormatVersion, Bodies: s.Bodies}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scene file: %w", err)
	}
	return nil
}

// Load reads a scene document from path
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse scene file: %w", err)
	}

	if doc.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported scene format version: %q", doc.Version)
	}

	return &Scene{Bodies: doc.Bodies}, nil
}
