// Package registry provides a global registry of playable scenarios.
// Built-in scenarios register themselves in init(), so the CLI and the
// SSH server can list and start them without hardcoded IDs.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/hexfleet/internal/config"
	"github.com/vovakirdan/hexfleet/internal/ship"
)

// ScenarioInfo contains metadata about a registered scenario.
type ScenarioInfo struct {
	ID          string
	Title       string
	Description string
	Ships       int
}

// Factory produces a fresh scenario definition.
type Factory func() (config.Scenario, error)

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]ScenarioInfo)
	mu        sync.RWMutex
)

func init() {
	scenarios, err := config.DefaultScenarios()
	if err != nil {
		panic(fmt.Sprintf("registry: embedded scenarios: %v", err))
	}
	for _, sc := range scenarios {
		id := sc.ID
		// User overrides in ~/.hexfleet/scenarios take effect at load time.
		Register(ScenarioInfo{
			ID:          id,
			Title:       sc.Title,
			Description: sc.Description,
			Ships:       len(sc.Ships),
		}, func() (config.Scenario, error) {
			return config.LoadScenario("", id)
		})
	}
}

// Register adds a scenario factory to the registry.
// Panics if a scenario with the same ID is already registered.
func Register(info ScenarioInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" {
		panic("registry: scenario without id")
	}
	if _, exists := factories[info.ID]; exists {
		panic(fmt.Sprintf("registry: scenario %q already registered", info.ID))
	}

	factories[info.ID] = f
	infos[info.ID] = info
}

// List returns information about all registered scenarios, sorted by ID.
func List() []ScenarioInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ScenarioInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Load returns the scenario definition for an ID.
func Load(id string) (config.Scenario, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return config.Scenario{}, fmt.Errorf("registry: unknown scenario %q", id)
	}
	return f()
}

// Create builds the fleet for a registered scenario. Ship specs are looked
// up in specDir first when it is set.
func Create(id, specDir string) (*ship.Fleet, error) {
	sc, err := Load(id)
	if err != nil {
		return nil, err
	}
	return ship.NewFleet(sc, SpecLoader(specDir))
}

// SpecLoader returns a ship.SpecLoader that searches specDir before the
// user and built-in specs.
func SpecLoader(specDir string) ship.SpecLoader {
	return func(name string) (config.ShipSpec, error) {
		return config.LoadShipSpec(name, specDir)
	}
}

// Exists checks if a scenario with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
