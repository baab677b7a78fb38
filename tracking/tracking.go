package tracking

import (
	"github.com/SanoKhan22/CricketAR-sub000/game"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Landmark indices into Sample.Landmarks. The tracking collaborator reports
// at least 21 points per hand with fixed, meaningful positions.
const (
	LandmarkWrist          = 0
	LandmarkThumbTip       = 4
	LandmarkIndexTip       = 8
	LandmarkMiddleBase     = 9
	LandmarkMiddleTip      = 12
	LandmarkPinkyTip       = 20
	MinLandmarks           = 21
	maxPlausibleCoordinate = 4.0
	maxPlausibleSpeed      = 12.0
)

// Sample is one frame of tracked hand input. It is produced by the external
// tracking collaborator, consumed for one frame and superseded by the next.
type Sample struct {
	Landmarks []mgl32.Vec3
	Velocity  mgl32.Vec3
	Active    bool
}

// Feed supplies the latest known hand pose. Implementations must never block:
// if no fresh sample exists the previous one is returned again.
type Feed interface {
	Latest() (Sample, bool)
}

// FeedFunc adapts a function to the Feed interface.
type FeedFunc func() (Sample, bool)

func (f FeedFunc) Latest() (Sample, bool) {
	return f()
}

// Sanitize clamps every landmark coordinate and the velocity into plausible
// bounds, replacing NaN/Inf from occlusion noise with zero. Sensor garbage
// must never reach a threshold comparison or the physics feed.
func (s Sample) Sanitize() Sample {
	out := Sample{
		Landmarks: make([]mgl32.Vec3, len(s.Landmarks)),
		Active:    s.Active,
	}
	for i, lm := range s.Landmarks {
		lm = game.SanitizeVec32(lm)
		out.Landmarks[i] = mgl32.Vec3{
			game.Clamp32(lm.X(), -maxPlausibleCoordinate, maxPlausibleCoordinate),
			game.Clamp32(lm.Y(), -maxPlausibleCoordinate, maxPlausibleCoordinate),
			game.Clamp32(lm.Z(), -maxPlausibleCoordinate, maxPlausibleCoordinate),
		}
	}
	vel := game.SanitizeVec32(s.Velocity)
	if speed := vel.Len(); speed > maxPlausibleSpeed {
		vel = vel.Mul(maxPlausibleSpeed / speed)
	}
	out.Velocity = vel
	if len(out.Landmarks) < MinLandmarks {
		out.Active = false
	}
	return out
}

// PalmCenter derives the palm position as the midpoint of the wrist and the
// base of the middle finger.
func (s Sample) PalmCenter() mgl32.Vec3 {
	if len(s.Landmarks) <= LandmarkMiddleBase {
		return mgl32.Vec3{}
	}
	wrist := s.Landmarks[LandmarkWrist]
	middle := s.Landmarks[LandmarkMiddleBase]
	return wrist.Add(middle).Mul(0.5)
}

// AngleFromVertical derives the hand angle in degrees from the wrist to the
// middle finger base, where 0 is straight up.
func (s Sample) AngleFromVertical() float32 {
	if len(s.Landmarks) <= LandmarkMiddleBase {
		return 0
	}
	dir := s.Landmarks[LandmarkMiddleBase].Sub(s.Landmarks[LandmarkWrist])
	if dir.Len() < 1e-6 {
		return 0
	}
	hz := game.Vec3HzDist(dir)
	angle := mgl32.RadToDeg(math32.Atan2(hz, dir.Y()))
	return game.Clamp32(game.Sanitize32(angle, 0), 0, 180)
}

// Speed returns the clamped hand speed of the sample.
func (s Sample) Speed() float32 {
	return s.Velocity.Len()
}
