package engine

import (
	"testing"

	"github.com/lixenwraith/shootbox/component"
	"github.com/lixenwraith/shootbox/config"
	"github.com/lixenwraith/shootbox/event"
)

func newTestWorld() *World {
	return NewWorld(NewResources(config.DefaultCatalog(), config.DefaultSettings()))
}

func TestStoreSetGetRemove(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity()

	w.Components.Bullet.SetComponent(e, component.Bullet{Damage: 25})
	b, ok := w.Components.Bullet.GetComponent(e)
	if !ok {
		t.Fatal("Expected bullet component after set")
	}
	if b.Damage != 25 {
		t.Errorf("Expected damage 25, got %v", b.Damage)
	}

	w.DestroyEntity(e)
	if w.Components.Bullet.HasEntity(e) {
		t.Error("Expected component removed after destroy")
	}
	if w.Components.Bullet.CountEntities() != 0 {
		t.Errorf("Expected empty store, got %d entities", w.Components.Bullet.CountEntities())
	}
}

func TestCreateEntityUnique(t *testing.T) {
	w := newTestWorld()
	seen := make(map[uint64]bool)
	for i := 0; i < 100; i++ {
		e := uint64(w.CreateEntity())
		if e == 0 {
			t.Fatal("Entity 0 is reserved as invalid")
		}
		if seen[e] {
			t.Fatalf("Duplicate entity ID %d", e)
		}
		seen[e] = true
	}
}

// recordingSystem tracks update and event order for scheduling tests
type recordingSystem struct {
	name     string
	priority int
	types    []event.EventType
	updates  *[]string
	events   []event.GameEvent
	inits    int
}

func (s *recordingSystem) Init()                         { s.inits++ }
func (s *recordingSystem) Name() string                  { return s.name }
func (s *recordingSystem) Priority() int                 { return s.priority }
func (s *recordingSystem) EventTypes() []event.EventType { return s.types }
func (s *recordingSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}
	s.events = append(s.events, ev)
}
func (s *recordingSystem) Update() { *s.updates = append(*s.updates, s.name) }

func TestSystemsRunInPriorityOrder(t *testing.T) {
	w := newTestWorld()
	var order []string

	w.AddSystem(&recordingSystem{name: "late", priority: 90, updates: &order})
	w.AddSystem(&recordingSystem{name: "early", priority: 10, updates: &order})
	w.AddSystem(&recordingSystem{name: "middle", priority: 50, updates: &order})

	w.Update()

	want := []string{"early", "middle", "late"}
	if len(order) != len(want) {
		t.Fatalf("Expected %d updates, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Expected position %d to be %s, got %s", i, want[i], order[i])
		}
	}
}

func TestEventDispatchBeforeUpdate(t *testing.T) {
	w := newTestWorld()
	var order []string
	s := &recordingSystem{
		name: "sub", priority: 10, updates: &order,
		types: []event.EventType{event.EventCommandFire},
	}
	w.AddSystem(s)

	w.PushEvent(event.EventCommandFire, nil)
	w.Update()

	if len(s.events) != 1 {
		t.Fatalf("Expected 1 dispatched event, got %d", len(s.events))
	}
	// Event pushed during a frame arrives next frame
	w.PushEvent(event.EventCommandFire, nil)
	if len(s.events) != 1 {
		t.Fatal("Expected dispatch deferred to next update")
	}
	w.Update()
	if len(s.events) != 2 {
		t.Errorf("Expected 2 dispatched events after second update, got %d", len(s.events))
	}
}

func TestResetReachesAllSystems(t *testing.T) {
	w := newTestWorld()
	var order []string
	a := &recordingSystem{name: "a", priority: 10, updates: &order, types: []event.EventType{event.EventGameReset}}
	b := &recordingSystem{name: "b", priority: 20, updates: &order, types: []event.EventType{event.EventGameReset}}
	w.AddSystem(a)
	w.AddSystem(b)

	w.Reset()
	w.Update()
	w.Reset()
	w.Update()

	if a.inits != 2 || b.inits != 2 {
		t.Errorf("Expected both systems re-initialized twice, got %d and %d", a.inits, b.inits)
	}
}
