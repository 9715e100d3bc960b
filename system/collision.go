package system

import (
	"github.com/lixenwraith/shootbox/engine"
	"github.com/lixenwraith/shootbox/event"
	"github.com/lixenwraith/shootbox/parameter"
	"github.com/lixenwraith/shootbox/physics"
)

// CollisionSystem resolves agent-vs-prop contact on the ground plane:
// positional separation split between both bodies, a push impulse on
// the prop and a tangential torque so pushed cubes roll
type CollisionSystem struct {
	world *engine.World
	res   *engine.Resources
}

func NewCollisionSystem(world *engine.World) *CollisionSystem {
	return &CollisionSystem{world: world, res: world.Resources}
}

func (s *CollisionSystem) Init() {}

func (s *CollisionSystem) Name() string { return "collision" }

func (s *CollisionSystem) Priority() int { return parameter.PriorityCollision }

func (s *CollisionSystem) EventTypes() []event.EventType { return nil }

func (s *CollisionSystem) HandleEvent(ev event.GameEvent) {}

func (s *CollisionSystem) Update() {
	agent := s.res.Agent
	prop := s.res.Prop

	n, depth, ok := physics.CircleOverlap(
		agent.Position, prop.Position,
		parameter.AgentRadius, prop.Size/2,
	)
	if !ok {
		return
	}

	// Split the separation so neither body teleports through a wall
	half := depth * parameter.CollisionSeparateEach
	agent.Position.X -= n.X * half
	agent.Position.Z -= n.Z * half
	prop.Position.X += n.X * half
	prop.Position.Z += n.Z * half

	prop.Velocity.X += n.X * parameter.PropPushImpulse
	prop.Velocity.Z += n.Z * parameter.PropPushImpulse

	// Torque around the horizontal axis perpendicular to the push,
	// so the cube tumbles away rather than sliding
	prop.AngularVel.X += n.Z * parameter.PropPushImpulse * parameter.PropTorqueFactor
	prop.AngularVel.Z -= n.X * parameter.PropPushImpulse * parameter.PropTorqueFactor
}
