package system

import (
	"time"

	"github.com/lixenwraith/shootbox/config"
	"github.com/lixenwraith/shootbox/engine"
	"github.com/lixenwraith/shootbox/parameter"
)

var testEpoch = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestWorld() (*engine.World, *engine.MockTimeProvider) {
	w := engine.NewWorld(engine.NewResources(config.DefaultCatalog(), config.DefaultSettings()))
	clock := engine.NewMockTimeProvider(testEpoch)
	w.Resources.Time.Update(clock.Now(), 0, 0)
	return w, clock
}

// step advances the mock clock one frame interval and runs one world
// update, mirroring the production frame loop
func step(w *engine.World, clock *engine.MockTimeProvider) {
	clock.Advance(parameter.FrameInterval)
	w.Resources.Time.Update(clock.Now(), parameter.FrameInterval, w.FrameNumber()+1)
	w.Update()
}
