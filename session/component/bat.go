// Package component contains the standard implementations of the session's
// component interfaces.
package component

import (
	"github.com/SanoKhan22/CricketAR-sub000/game"
	"github.com/SanoKhan22/CricketAR-sub000/session"
	"github.com/SanoKhan22/CricketAR-sub000/tracking"
	"github.com/go-gl/mathgl/mgl32"
)

// TrackedBatComponent maps the latest hand sample onto the bat's world pose.
// The palm sweeps the hitting area around the crease; tracking dropouts hold
// the last known pose so a noisy feed never snaps the bat around.
type TrackedBatComponent struct {
	mSession *session.Session

	pose    session.BatPose
	handVel mgl32.Vec3
	tracked bool
}

func NewTrackedBatComponent(s *session.Session) *TrackedBatComponent {
	c := &TrackedBatComponent{mSession: s}
	c.Reset()
	return c
}

// Update recomputes the bat pose from a sanitized hand sample.
func (c *TrackedBatComponent) Update(sample tracking.Sample) {
	if !sample.Active {
		// No swing is possible without tracking; the pose persists.
		c.handVel = mgl32.Vec3{}
		c.tracked = false
		return
	}

	bat := c.mSession.Config().Bat
	palm := sample.PalmCenter()

	// Palm coordinates are normalised image space with y growing downward.
	c.pose = session.BatPose{
		Position: mgl32.Vec3{
			(palm.X() - 0.5) * bat.SweepX,
			(1 - palm.Y()) * bat.SweepY,
			game.CreaseZ,
		},
		Angle: sample.AngleFromVertical(),
	}
	c.handVel = sample.Velocity
	c.tracked = true
}

// Pose returns the current bat pose.
func (c *TrackedBatComponent) Pose() session.BatPose {
	return c.pose
}

// HandVelocity returns the tracked hand velocity of the latest sample.
func (c *TrackedBatComponent) HandVelocity() mgl32.Vec3 {
	return c.handVel
}

// Speed converts the hand speed into bat speed in m/s.
func (c *TrackedBatComponent) Speed() float32 {
	return c.handVel.Len() * c.mSession.Config().Bat.SpeedScale
}

// Tracked reports whether the current pose comes from a live sample.
func (c *TrackedBatComponent) Tracked() bool {
	return c.tracked
}

// Reset returns the bat to the default stance pose in front of the stumps.
func (c *TrackedBatComponent) Reset() {
	c.pose = session.BatPose{
		Position: mgl32.Vec3{0, c.mSession.Config().Bat.Length / 2, game.CreaseZ},
	}
	c.handVel = mgl32.Vec3{}
	c.tracked = false
}
