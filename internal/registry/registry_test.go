package registry

import (
	"testing"

	"github.com/vovakirdan/hexfleet/internal/config"
)

func TestBuiltinScenariosRegistered(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	list := List()
	if len(list) < 2 {
		t.Fatalf("expected built-in scenarios, got %v", list)
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Errorf("List() not sorted: %s >= %s", list[i-1].ID, list[i].ID)
		}
	}

	if !Exists("duel") || !Exists("patrol") {
		t.Error("duel and patrol should be registered")
	}
	if Exists("nope") {
		t.Error("Exists(nope) should be false")
	}
}

func TestCreateDuel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	fleet, err := Create("duel", "")
	if err != nil {
		t.Fatalf("Create(duel) failed: %v", err)
	}
	if fleet.Len() != 2 {
		t.Fatalf("expected 2 ships, got %d", fleet.Len())
	}

	enterprise := fleet.Get("Enterprise")
	if enterprise == nil {
		t.Fatal("Enterprise missing from duel")
	}
	if enterprise.Position.String() != "0730A" || enterprise.Spec.Name != "Federation CA" {
		t.Errorf("unexpected Enterprise: %v %s", enterprise.Position, enterprise.Spec.Name)
	}

	// Each Create returns an independent fleet
	other, err := Create("duel", "")
	if err != nil {
		t.Fatalf("Create(duel) failed: %v", err)
	}
	enterprise.TurnRight()
	if other.Get("Enterprise").Position.Facing == enterprise.Position.Facing {
		t.Error("fleets from separate Create calls share state")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("nope", ""); err == nil {
		t.Error("Create(nope) should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(ScenarioInfo{ID: "duel"}, func() (config.Scenario, error) {
		return config.Scenario{}, nil
	})
}

func TestRegisterCustom(t *testing.T) {
	Register(ScenarioInfo{ID: "zz-test", Title: "Test"}, func() (config.Scenario, error) {
		return config.Scenario{
			ID: "zz-test",
			Ships: []config.ScenarioShip{
				{Name: "Solo", Spec: "federation/ca", Hex: "3015", Facing: "D"},
			},
		}, nil
	})

	fleet, err := Create("zz-test", "")
	if err != nil {
		t.Fatalf("Create(zz-test) failed: %v", err)
	}
	if fleet.At(0).Position.String() != "3015D" {
		t.Errorf("unexpected position %v", fleet.At(0).Position)
	}
}
