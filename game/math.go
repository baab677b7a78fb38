package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// Clamp32 clamps val into [min, max].
func Clamp32(val, min, max float32) float32 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Sanitize32 replaces NaN and infinite values with the given fallback.
func Sanitize32(val, fallback float32) float32 {
	if math32.IsNaN(val) || math32.IsInf(val, 0) {
		return fallback
	}
	return val
}

// SanitizeVec32 replaces NaN/Inf components of a vector with zero.
func SanitizeVec32(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{Sanitize32(v.X(), 0), Sanitize32(v.Y(), 0), Sanitize32(v.Z(), 0)}
}

// Vec3HzDist returns the horizontal distance of a vector from the origin.
func Vec3HzDist(vec3 mgl32.Vec3) float32 {
	return math32.Sqrt(vec3.X()*vec3.X() + vec3.Z()*vec3.Z())
}

// HzNormalize returns the horizontal part of a vector scaled to unit length.
// A vector with no horizontal component falls back to +Z.
func HzNormalize(v mgl32.Vec3) mgl32.Vec3 {
	hz := mgl32.Vec3{v.X(), 0, v.Z()}
	if l := hz.Len(); l > 1e-6 {
		return hz.Mul(1 / l)
	}
	return mgl32.Vec3{0, 0, 1}
}

// LaunchVector combines a horizontal direction with a launch angle in degrees
// into a unit velocity direction.
func LaunchVector(hzDir mgl32.Vec3, launchAngleDeg float32) mgl32.Vec3 {
	rad := mgl32.DegToRad(launchAngleDeg)
	hz := HzNormalize(hzDir)
	return mgl32.Vec3{
		hz.X() * math32.Cos(rad),
		math32.Sin(rad),
		hz.Z() * math32.Cos(rad),
	}
}
