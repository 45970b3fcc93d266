package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/astargraph/graph"
)

// LoadGraph reads a serialized graph. The format is picked from the file
// extension: .json, .yaml or .yml.
func LoadGraph(path string) (*graph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph: %w", err)
	}

	g := graph.New()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, g)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, g)
	default:
		return nil, fmt.Errorf("unsupported graph format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return g, nil
}
