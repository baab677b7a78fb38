package session

import (
	"github.com/SanoKhan22/CricketAR-sub000/tracking"
	"github.com/go-gl/mathgl/mgl32"
)

// BatPose is the bat's world transform for the current tick, derived from the
// latest hand sample. It carries no identity across deliveries.
type BatPose struct {
	// Position is the blade centre in world space.
	Position mgl32.Vec3
	// Angle is the blade rotation about the swing axis, in degrees from
	// vertical.
	Angle float32
}

// BatComponent maps tracked hand samples onto a bat pose. When tracking drops
// out it holds the last known pose.
type BatComponent interface {
	// Update recomputes the pose from the given sanitized sample.
	Update(sample tracking.Sample)

	// Pose returns the current bat pose.
	Pose() BatPose
	// HandVelocity returns the tracked hand velocity in normalised units/s.
	HandVelocity() mgl32.Vec3
	// Speed returns the bat speed in m/s.
	Speed() float32

	// Reset returns the bat to its default stance pose. Called once per
	// delivery.
	Reset()
}

func (s *Session) SetBat(c BatComponent) {
	s.bat = c
}

func (s *Session) Bat() BatComponent {
	return s.bat
}
