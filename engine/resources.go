package engine

import (
	"time"

	"github.com/lixenwraith/shootbox/component"
	"github.com/lixenwraith/shootbox/config"
	"github.com/lixenwraith/shootbox/input"
)

// TimeResource wraps time data for systems. Updated by the frame loop
// at the start of each frame
type TimeResource struct {
	// Now is the wall-clock time of the current frame; absolute
	// deadlines (fire cooldown, bullet expiry, grenade fuse) compare
	// against it
	Now time.Time

	// Delta is the duration since the last update
	Delta time.Duration

	// FrameNumber is the current frame count
	FrameNumber int64
}

// Update modifies TimeResource fields in place
func (tr *TimeResource) Update(now time.Time, delta time.Duration, frame int64) {
	tr.Now = now
	tr.Delta = delta
	tr.FrameNumber = frame
}

// Resources is the set of singleton simulation state shared by systems.
// The world owns one instance; systems receive it by reference and
// mutate it only within their ordered step
type Resources struct {
	Time     *TimeResource
	Agent    *component.Agent
	Prop     *component.Prop
	Catalog  *config.Catalog
	Settings *config.Settings

	// Input is the control intent snapshot for the current frame,
	// drained from the adapter by the frame loop before systems run
	Input *input.Snapshot
}

// NewResources creates the resource set with empty state; systems
// populate agent and prop fields in their Init
func NewResources(catalog *config.Catalog, settings *config.Settings) *Resources {
	return &Resources{
		Time:     &TimeResource{},
		Agent:    &component.Agent{},
		Prop:     &component.Prop{},
		Catalog:  catalog,
		Settings: settings,
		Input:    &input.Snapshot{},
	}
}
