package batting

import (
	"github.com/SanoKhan22/CricketAR-sub000/config"
	"github.com/SanoKhan22/CricketAR-sub000/game"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ExitInput carries everything the exit velocity model combines for one
// contact. Handle hits are short-circuited upstream and never reach it.
type ExitInput struct {
	// BatSpeed is the bat speed at impact in m/s, BowlSpeed the incoming
	// delivery speed.
	BatSpeed  float32
	BowlSpeed float32

	Zone   Contact
	Timing TimingResult
	Shot   Shot

	// HandVel is the residual tracked hand velocity at impact; a small share
	// of it perturbs the exit direction.
	HandVel mgl32.Vec3
}

// ResolveExit computes the launch direction and exit speed handed to the
// physics collaborator. The speed model energy-sums a bat term and a rebound
// term, then applies the zone, timing, shot power and control penalties; the
// direction is the shot's base direction perturbed by edge deflection and
// residual hand velocity, re-normalised, with the launch angle lifted by the
// zone's angle modifier.
func ResolveExit(in ExitInput, e config.Exit) (dir mgl32.Vec3, speed float32) {
	raw := math32.Sqrt(e.BatEnergy*in.BatSpeed*in.BatSpeed + e.Rebound*in.BowlSpeed)

	speed = raw *
		in.Zone.Multiplier *
		in.Timing.Multiplier *
		in.Shot.Power *
		e.PowerBoost *
		controlPenalty(in.BowlSpeed, e)

	hz := game.HzNormalize(in.Shot.Direction)
	hz = hz.Add(mgl32.Vec3{in.Zone.Deflection, 0, 0})
	hz = hz.Add(in.HandVel.Mul(e.ResidualVelocity))

	angle := in.Shot.LaunchAngleDegrees + in.Zone.AngleMod
	dir = game.LaunchVector(hz, angle)
	return dir, speed
}

// controlPenalty scales the exit speed down against quicker deliveries, which
// are harder to time cleanly.
func controlPenalty(bowlSpeed float32, e config.Exit) float32 {
	switch {
	case bowlSpeed >= e.FastPaceSpeed:
		return e.FastPacePenalty
	case bowlSpeed >= e.MediumPaceSpeed:
		return e.MediumPacePenalty
	default:
		return 1.0
	}
}
