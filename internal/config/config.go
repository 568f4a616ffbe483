// Package config loads the bar configuration document and the solutions
// catalogue it references.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mj1618/deskbar/internal/bar"
	"github.com/mj1618/deskbar/internal/platform"
	"github.com/mj1618/deskbar/internal/solutions"
)

// Config is a decoded configuration document plus the solutions catalogue
// it points at.
type Config struct {
	Bar       *bar.Bar
	Solutions *solutions.Solutions
}

// rawConfig is the top-level document shape. The solutions field is a path
// to the catalogue file, relative to the document's own directory.
type rawConfig struct {
	Items     []*bar.Item `json:"items"`
	Solutions string      `json:"solutions"`
}

// Load reads and decodes the configuration at path. Documents ending in
// .yaml or .yml are YAML; everything else is JSON. A solutions path in the
// document is resolved relative to the document and loaded too.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if isYAMLPath(path) {
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	cfg, solutionsPath, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if solutionsPath != "" {
		if !filepath.IsAbs(solutionsPath) {
			solutionsPath = filepath.Join(filepath.Dir(path), solutionsPath)
		}
		sols, err := solutions.Load(solutionsPath)
		if err != nil {
			return nil, err
		}
		cfg.Solutions = sols
	}
	return cfg, nil
}

// Parse decodes a JSON configuration document without touching the
// filesystem, so no solutions catalogue reference is followed.
func Parse(data []byte) (*Config, error) {
	cfg, _, err := parse(data)
	return cfg, err
}

func parse(data []byte) (*Config, string, error) {
	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, "", err
	}
	if len(raw.Items) == 0 {
		return nil, "", fmt.Errorf("no items configured")
	}
	seen := make(map[string]bool, len(raw.Items))
	for _, item := range raw.Items {
		if seen[item.ID] {
			return nil, "", fmt.Errorf("duplicate item id %q", item.ID)
		}
		seen[item.ID] = true
	}
	return &Config{Bar: &bar.Bar{Items: raw.Items}}, raw.Solutions, nil
}

// Bind resolves every configured action against the platform.
func (c *Config) Bind(p *platform.Provider) {
	c.Bar.Bind(p, c.Solutions)
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// yamlToJSON re-encodes a YAML document as JSON so the item and action
// decoders, which validate during json.Unmarshal, apply to both formats.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yaml decode: %w", err)
	}
	return json.Marshal(doc)
}
