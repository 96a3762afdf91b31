package config

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults
var defaultFS embed.FS

const (
	defaultShipsDir     = "defaults/ships"
	defaultScenariosDir = "defaults/scenarios"
)

// DefaultShipYAML returns the embedded YAML for a ship spec such as
// "federation/ca", or nil if there is none.
func DefaultShipYAML(name string) []byte {
	data, err := defaultFS.ReadFile(path.Join(defaultShipsDir, name+".yaml"))
	if err != nil {
		return nil
	}
	return data
}

// DefaultScenarioYAML returns the embedded YAML for a scenario ID, or nil.
func DefaultScenarioYAML(id string) []byte {
	data, err := defaultFS.ReadFile(path.Join(defaultScenariosDir, id+".yaml"))
	if err != nil {
		return nil
	}
	return data
}

// DefaultScenarios parses every embedded scenario, sorted by ID.
func DefaultScenarios() ([]Scenario, error) {
	entries, err := fs.ReadDir(defaultFS, defaultScenariosDir)
	if err != nil {
		return nil, fmt.Errorf("config: listing embedded scenarios: %w", err)
	}

	var result []Scenario
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		data, err := defaultFS.ReadFile(path.Join(defaultScenariosDir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", e.Name(), err)
		}
		var sc Scenario
		if err := yaml.Unmarshal(data, &sc); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", e.Name(), err)
		}
		result = append(result, sc)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// DefaultShipNames lists the embedded ship specs, e.g. "klingon/d7".
func DefaultShipNames() []string {
	var names []string
	//nolint:errcheck // The embedded tree is fixed at build time
	fs.WalkDir(defaultFS, defaultShipsDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(p, ".yaml") {
			return nil
		}
		rel := strings.TrimPrefix(p, defaultShipsDir+"/")
		names = append(names, strings.TrimSuffix(rel, ".yaml"))
		return nil
	})
	sort.Strings(names)
	return names
}
