package physics

import (
	"github.com/SanoKhan22/CricketAR-sub000/game"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Options tunes the ball integrator.
type Options struct {
	// Gravity in m/s², applied downward.
	Gravity float32
	// Restitution is the vertical rebound fraction on a bounce.
	Restitution float32
	// BounceDamping scales horizontal velocity on each bounce.
	BounceDamping float32
	// AirDrag and GroundFriction are per-second exponential decay rates.
	AirDrag        float32
	GroundFriction float32
	// Radius of the ball in metres.
	Radius float32
}

// DefaultOptions returns the outfield ball parameters.
func DefaultOptions() Options {
	return Options{
		Gravity:        game.Gravity,
		Restitution:    0.55,
		BounceDamping:  0.70,
		AirDrag:        0.02,
		GroundFriction: 1.50,
		Radius:         game.BallRadius,
	}
}

// Ball is a projectile over a flat ground plane at y=0. It is the default
// rigid-body collaborator behind the Body port.
type Ball struct {
	opts Options

	pos, lastPos mgl32.Vec3
	vel          mgl32.Vec3

	bounces  int
	onGround bool
}

// NewBall returns a ball with the given options, resting at the origin.
func NewBall(opts Options) *Ball {
	return &Ball{opts: opts}
}

// Reset places the ball at the given position with the given velocity.
func (b *Ball) Reset(pos, vel mgl32.Vec3) {
	b.pos = pos
	b.lastPos = pos
	b.vel = vel
	b.bounces = 0
	b.onGround = false
}

// Step advances the ball by dt seconds, bouncing it off the ground plane.
func (b *Ball) Step(dt float32) {
	b.lastPos = b.pos

	if !b.onGround {
		b.vel[1] -= b.opts.Gravity * dt
		b.vel = b.vel.Mul(math32.Exp(-b.opts.AirDrag * dt))
	} else {
		decay := math32.Exp(-b.opts.GroundFriction * dt)
		b.vel[0] *= decay
		b.vel[2] *= decay
	}

	b.pos = b.pos.Add(b.vel.Mul(dt))

	if b.pos.Y() <= b.opts.Radius {
		b.pos[1] = b.opts.Radius
		if b.vel.Y() < -game.MinBounceSpeed {
			b.vel[1] = -b.vel.Y() * b.opts.Restitution
			b.vel[0] *= b.opts.BounceDamping
			b.vel[2] *= b.opts.BounceDamping
			if !b.onGround {
				b.bounces++
			}
			b.onGround = false
		} else {
			if !b.onGround {
				b.bounces++
			}
			b.vel[1] = 0
			b.onGround = true
		}
	} else if b.pos.Y() > b.opts.Radius+1e-4 {
		b.onGround = false
	}
}

// Position returns the current ball position.
func (b *Ball) Position() mgl32.Vec3 {
	return b.pos
}

// LastPosition returns the ball position before the most recent Step.
func (b *Ball) LastPosition() mgl32.Vec3 {
	return b.lastPos
}

// Velocity returns the current ball velocity.
func (b *Ball) Velocity() mgl32.Vec3 {
	return b.vel
}

// ApplyImpulse replaces the ball velocity with dir scaled to speed.
func (b *Ball) ApplyImpulse(dir mgl32.Vec3, speed float32) {
	if l := dir.Len(); l > 1e-6 {
		dir = dir.Mul(1 / l)
	}
	b.vel = dir.Mul(speed)
	b.onGround = false
}

// BounceCount reports ground contacts since the last Reset.
func (b *Ball) BounceCount() int {
	return b.bounces
}

// Stopped reports whether the ball has come to rest on the ground.
func (b *Ball) Stopped(threshold float32) bool {
	return b.onGround && b.vel.Len() < threshold
}
