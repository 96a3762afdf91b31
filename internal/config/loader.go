package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadShipSpec loads a ship spec by name, e.g. "federation/ca".
// Search order: customDir -> ~/.hexfleet/ships -> ./ships -> embedded default
func LoadShipSpec(name, customDir string) (ShipSpec, error) {
	var spec ShipSpec

	if name == "" || strings.Contains(name, "..") {
		return spec, fmt.Errorf("invalid ship spec name %q", name)
	}
	file := filepath.FromSlash(name) + ".yaml"

	candidates := make([]string, 0, 3)
	if customDir != "" {
		candidates = append(candidates, filepath.Join(customDir, file))
	}
	if userDir := userConfigPath("ships"); userDir != "" {
		candidates = append(candidates, filepath.Join(userDir, file))
	}
	candidates = append(candidates, filepath.Join("ships", file))

	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return spec, fmt.Errorf("failed to read ship spec %s: %w", p, err)
		}
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return spec, fmt.Errorf("failed to parse ship spec %s: %w", p, err)
		}
		return spec, spec.Validate()
	}

	data := DefaultShipYAML(name)
	if data == nil {
		return spec, fmt.Errorf("unknown ship spec %q", name)
	}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return spec, fmt.Errorf("failed to parse embedded ship spec %s: %w", name, err)
	}
	return spec, spec.Validate()
}

// LoadScenario loads a scenario.
// Search order: customPath -> ~/.hexfleet/scenarios/<id>.yaml -> ./scenarios/<id>.yaml -> embedded default
func LoadScenario(customPath, id string) (Scenario, error) {
	var sc Scenario

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return sc, fmt.Errorf("failed to read scenario %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &sc); err != nil {
			return sc, fmt.Errorf("failed to parse scenario %s: %w", customPath, err)
		}
		return sc, sc.Validate()
	}

	if id == "" || strings.ContainsAny(id, `/\`) {
		return sc, fmt.Errorf("invalid scenario id %q", id)
	}

	// Try user config directory
	if userDir := userConfigPath("scenarios"); userDir != "" {
		if data, err := os.ReadFile(filepath.Join(userDir, id+".yaml")); err == nil {
			if err := yaml.Unmarshal(data, &sc); err == nil {
				return sc, sc.Validate()
			}
		}
	}

	// Try local scenarios directory
	if data, err := os.ReadFile(filepath.Join("scenarios", id+".yaml")); err == nil {
		if err := yaml.Unmarshal(data, &sc); err == nil {
			return sc, sc.Validate()
		}
	}

	// Use embedded default YAML
	data := DefaultScenarioYAML(id)
	if data == nil {
		return sc, fmt.Errorf("unknown scenario %q", id)
	}
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return sc, fmt.Errorf("failed to parse embedded scenario %s: %w", id, err)
	}
	return sc, sc.Validate()
}

// userConfigPath returns a directory under ~/.hexfleet, or empty if home is unavailable.
func userConfigPath(dir string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hexfleet", dir)
}
