package physics

import "github.com/go-gl/mathgl/mgl32"

// Body is the rigid-body collaborator consumed by the delivery tracker. The
// in-repo Ball implements it; tests substitute scripted bodies.
type Body interface {
	// Reset places the body at the given position with the given velocity and
	// clears its bounce history.
	Reset(pos, vel mgl32.Vec3)
	// Step advances the body by the given number of seconds.
	Step(dt float32)

	Position() mgl32.Vec3
	// LastPosition returns the position before the most recent Step, used for
	// swept contact and wicket checks.
	LastPosition() mgl32.Vec3
	Velocity() mgl32.Vec3

	// ApplyImpulse replaces the body's velocity with the given unit direction
	// scaled to the given speed.
	ApplyImpulse(dir mgl32.Vec3, speed float32)

	// BounceCount reports how many times the body has touched the ground
	// since the last Reset.
	BounceCount() int
	// Stopped reports whether the body is grounded and slower than the given
	// speed.
	Stopped(threshold float32) bool
}
