package tracking

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// handSpan is the synthetic wrist-to-knuckle distance in normalised space.
const handSpan = float32(0.2)

// SyntheticSample builds a full hand sample from a palm centre, a hand angle
// from vertical (degrees) and a velocity. It is used by scripted feeds in the
// demo harness and in tests, where no tracking collaborator exists.
func SyntheticSample(palm mgl32.Vec3, angleDeg float32, vel mgl32.Vec3) Sample {
	rad := mgl32.DegToRad(angleDeg)
	dir := mgl32.Vec3{0, math32.Cos(rad), math32.Sin(rad)}.Mul(handSpan)

	landmarks := make([]mgl32.Vec3, MinLandmarks)
	for i := range landmarks {
		landmarks[i] = palm
	}
	landmarks[LandmarkWrist] = palm.Sub(dir.Mul(0.5))
	landmarks[LandmarkMiddleBase] = palm.Add(dir.Mul(0.5))

	return Sample{
		Landmarks: landmarks,
		Velocity:  vel,
		Active:    true,
	}
}
