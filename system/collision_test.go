package system

import (
	"testing"

	"github.com/lixenwraith/shootbox/parameter"
	"github.com/lixenwraith/shootbox/vmath"
)

func TestAgentPropOverlapSeparatesBoth(t *testing.T) {
	w, clock := newTestWorld()
	w.AddSystem(NewCollisionSystem(w))

	agent := w.Resources.Agent
	prop := w.Resources.Prop

	agent.Position = vmath.Vec3{X: 0, Y: 1.7, Z: 0}
	prop.Position = vmath.Vec3{X: 0.5, Y: 0.5, Z: 0}
	prop.Size = parameter.PropSize

	agentBefore := agent.Position
	propBefore := prop.Position

	step(w, clock)

	if agent.Position.X >= agentBefore.X {
		t.Errorf("Expected agent pushed away from prop, got %v", agent.Position.X)
	}
	if prop.Position.X <= propBefore.X {
		t.Errorf("Expected prop pushed away from agent, got %v", prop.Position.X)
	}

	agentShift := agentBefore.X - agent.Position.X
	propShift := prop.Position.X - propBefore.X
	if agentShift != propShift {
		t.Errorf("Expected equal separation shares, got %v and %v", agentShift, propShift)
	}

	if prop.Velocity.X <= 0 {
		t.Errorf("Expected push impulse on prop, got %v", prop.Velocity.X)
	}
	if prop.AngularVel == (vmath.Vec3{}) {
		t.Error("Expected roll torque on pushed prop")
	}
}

func TestNoContactNoForces(t *testing.T) {
	w, clock := newTestWorld()
	w.AddSystem(NewCollisionSystem(w))

	agent := w.Resources.Agent
	prop := w.Resources.Prop

	agent.Position = vmath.Vec3{X: 0, Y: 1.7, Z: 0}
	prop.Position = vmath.Vec3{X: 5, Y: 0.5, Z: 0}
	prop.Size = parameter.PropSize

	step(w, clock)

	if prop.Velocity != (vmath.Vec3{}) || prop.AngularVel != (vmath.Vec3{}) {
		t.Error("Expected untouched prop to stay at rest")
	}
	if agent.Position.X != 0 {
		t.Error("Expected agent position unchanged without contact")
	}
}

func TestCoincidentCentersSkipResolution(t *testing.T) {
	w, clock := newTestWorld()
	w.AddSystem(NewCollisionSystem(w))

	agent := w.Resources.Agent
	prop := w.Resources.Prop

	agent.Position = vmath.Vec3{X: 1, Y: 1.7, Z: 1}
	prop.Position = vmath.Vec3{X: 1, Y: 0.5, Z: 1}
	prop.Size = parameter.PropSize

	step(w, clock)

	if prop.Velocity != (vmath.Vec3{}) {
		t.Error("Expected no impulse for the degenerate coincident case")
	}
}
