package system

import (
	"github.com/lixenwraith/shootbox/audio"
	"github.com/lixenwraith/shootbox/event"
	"github.com/lixenwraith/shootbox/parameter"
)

// AudioSystem forwards sound requests from the simulation to the
// sound manager. Runs last so every effect queued during the frame
// plays together
type AudioSystem struct {
	manager *audio.SoundManager
}

// NewAudioSystem wraps the given manager; a nil manager is allowed
// and yields a silent system
func NewAudioSystem(manager *audio.SoundManager) *AudioSystem {
	return &AudioSystem{manager: manager}
}

func (s *AudioSystem) Init() {}

func (s *AudioSystem) Name() string { return "audio" }

func (s *AudioSystem) Priority() int { return parameter.PriorityAudio }

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventSoundRequest}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
		s.manager.Play(p.Sound)
	}
}

func (s *AudioSystem) Update() {}
