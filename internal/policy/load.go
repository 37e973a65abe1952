package policy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML policy file and overlays it on the defaults: the file
// only needs to state what it changes. An empty path returns the defaults
// untouched.
func Load(path string) (*Policy, error) {
	p := Default()
	if path == "" {
		return p, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading policy file: %w", err)
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing policy file %s: %w", path, err)
	}
	return p, nil
}
