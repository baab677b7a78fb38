package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const testDt = float32(1.0 / 60.0)

func step(b *Ball, ticks int) {
	for i := 0; i < ticks; i++ {
		b.Step(testDt)
	}
}

func TestBallFallsAndBounces(t *testing.T) {
	b := NewBall(DefaultOptions())
	b.Reset(mgl32.Vec3{0, 2, 0}, mgl32.Vec3{})

	step(b, 30)
	if b.Position().Y() >= 2 {
		t.Fatalf("ball did not fall: %v", b.Position())
	}
	if b.BounceCount() != 0 {
		t.Fatalf("ball bounced mid-air: %d", b.BounceCount())
	}

	// Two seconds is plenty for a 2 m drop to reach the ground.
	step(b, 120)
	if b.BounceCount() == 0 {
		t.Fatal("ball never bounced")
	}
	if b.Position().Y() < b.opts.Radius-1e-4 {
		t.Fatalf("ball sank below the ground: %v", b.Position())
	}
}

func TestBallComesToRest(t *testing.T) {
	b := NewBall(DefaultOptions())
	b.Reset(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{3, 0, 4})

	if b.Stopped(0.5) {
		t.Fatal("moving ball reported stopped")
	}

	step(b, 60*30)
	if !b.Stopped(0.5) {
		t.Fatalf("ball still moving after 30s: vel %v", b.Velocity())
	}
	if b.Position().Y() > b.opts.Radius+1e-3 {
		t.Fatalf("resting ball floats at %v", b.Position())
	}
}

func TestBallBounceLosesEnergy(t *testing.T) {
	b := NewBall(DefaultOptions())
	b.Reset(mgl32.Vec3{0, 2, 0}, mgl32.Vec3{})

	peak := float32(0)
	bounced := false
	for i := 0; i < 60*5; i++ {
		b.Step(testDt)
		if b.BounceCount() > 0 {
			bounced = true
			if y := b.Position().Y(); y > peak {
				peak = y
			}
		}
	}
	if !bounced {
		t.Fatal("ball never bounced")
	}
	if peak >= 2 {
		t.Fatalf("rebound reached the drop height: %v", peak)
	}
}

func TestBallApplyImpulse(t *testing.T) {
	b := NewBall(DefaultOptions())
	b.Reset(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, -30})

	b.ApplyImpulse(mgl32.Vec3{0, 0, 5}, 20)
	vel := b.Velocity()
	if !mgl32.FloatEqualThreshold(vel.Len(), 20, 1e-3) {
		t.Fatalf("impulse speed not applied: %v", vel)
	}
	if vel.Z() <= 0 {
		t.Fatalf("impulse direction not applied: %v", vel)
	}
}

func TestBallResetClearsState(t *testing.T) {
	b := NewBall(DefaultOptions())
	b.Reset(mgl32.Vec3{0, 2, 0}, mgl32.Vec3{})
	step(b, 60*5)
	if b.BounceCount() == 0 {
		t.Fatal("ball never bounced")
	}

	b.Reset(mgl32.Vec3{1, 3, 1}, mgl32.Vec3{0, 0, -10})
	if b.BounceCount() != 0 {
		t.Fatalf("reset kept bounce count %d", b.BounceCount())
	}
	if b.Position() != (mgl32.Vec3{1, 3, 1}) || b.LastPosition() != b.Position() {
		t.Fatalf("reset pose wrong: %v / %v", b.Position(), b.LastPosition())
	}
}

func TestBallLastPositionTrails(t *testing.T) {
	b := NewBall(DefaultOptions())
	b.Reset(mgl32.Vec3{0, 5, 10}, mgl32.Vec3{0, 0, -30})

	b.Step(testDt)
	if b.LastPosition().Z() != 10 {
		t.Fatalf("last position should hold the pre-step pose, got %v", b.LastPosition())
	}
	if b.Position().Z() >= 10 {
		t.Fatalf("ball did not advance: %v", b.Position())
	}
}
