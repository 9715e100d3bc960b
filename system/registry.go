package system

import (
	"github.com/lixenwraith/shootbox/audio"
	"github.com/lixenwraith/shootbox/engine"
)

// RegisterAll wires the full simulation pipeline into the world.
// Update order follows each system's priority, not registration
// order. A nil sound manager yields a silent game
func RegisterAll(w *engine.World, sm *audio.SoundManager) {
	w.AddSystem(NewAgentSystem(w))
	w.AddSystem(NewCollisionSystem(w))
	w.AddSystem(NewProjectileSystem(w))
	w.AddSystem(NewGrenadeSystem(w))
	w.AddSystem(NewInventorySystem(w))
	w.AddSystem(NewPickupSystem(w))
	w.AddSystem(NewPropSystem(w))
	w.AddSystem(NewAudioSystem(sm))
}
