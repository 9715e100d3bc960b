package render

import (
	"github.com/lixenwraith/shootbox/component"
	"github.com/lixenwraith/shootbox/engine"
)

// Snapshot is the read-only view of one simulation frame handed to
// the renderer. Slices are reused between frames to avoid per-frame
// allocation
type Snapshot struct {
	Frame    int64
	Agent    component.Agent
	Prop     component.Prop
	Bullets  []component.Bullet
	Grenades []component.Grenade
	Points   []component.PickupPoint
	Drops    []component.DroppedWeapon
}

// Build fills the snapshot from the world after an update pass
func Build(w *engine.World, snap *Snapshot) {
	snap.Frame = w.FrameNumber()
	snap.Agent = *w.Resources.Agent
	snap.Prop = *w.Resources.Prop

	snap.Bullets = snap.Bullets[:0]
	for _, e := range w.Components.Bullet.GetAllEntities() {
		if b, ok := w.Components.Bullet.GetComponent(e); ok {
			snap.Bullets = append(snap.Bullets, b)
		}
	}

	snap.Grenades = snap.Grenades[:0]
	for _, e := range w.Components.Grenade.GetAllEntities() {
		if g, ok := w.Components.Grenade.GetComponent(e); ok {
			snap.Grenades = append(snap.Grenades, g)
		}
	}

	snap.Points = snap.Points[:0]
	for _, e := range w.Components.Pickup.GetAllEntities() {
		if p, ok := w.Components.Pickup.GetComponent(e); ok && !p.Picked {
			snap.Points = append(snap.Points, p)
		}
	}

	snap.Drops = snap.Drops[:0]
	for _, e := range w.Components.Dropped.GetAllEntities() {
		if d, ok := w.Components.Dropped.GetComponent(e); ok {
			snap.Drops = append(snap.Drops, d)
		}
	}
}
