package batting

import (
	"testing"

	"github.com/SanoKhan22/CricketAR-sub000/config"
	"github.com/SanoKhan22/CricketAR-sub000/game"
	"github.com/go-gl/mathgl/mgl32"
)

func middleContact(cfg config.Config) Contact {
	return ResolveZone(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{}, cfg.Bat, cfg.Zones)
}

func TestResolveExitStraightDrive(t *testing.T) {
	cfg := config.Default()
	shot, _ := ShotByName(ShotStraightDrive)

	dir, speed := ResolveExit(ExitInput{
		BatSpeed:  12,
		BowlSpeed: 30,
		Zone:      middleContact(cfg),
		Timing:    TimingResult{Quality: TimingGood, Multiplier: 1.0},
		Shot:      shot,
	}, cfg.Exit)

	if speed <= 0 {
		t.Fatalf("expected positive exit speed, got %v", speed)
	}
	if dir.Z() <= 0 {
		t.Fatalf("straight drive should head back past the bowler, got %v", dir)
	}
	if dir.Y() <= 0 {
		t.Fatalf("positive launch angle should lift the ball, got %v", dir)
	}
	if !game.Float32ApproxEq(dir.Len(), 1) {
		t.Fatalf("exit direction should be unit length, got %v", dir.Len())
	}
}

func TestResolveExitBatSpeedMonotonic(t *testing.T) {
	cfg := config.Default()
	shot, _ := ShotByName(ShotStraightDrive)

	prev := float32(0)
	for _, batSpeed := range []float32{4, 8, 12, 16} {
		_, speed := ResolveExit(ExitInput{
			BatSpeed:  batSpeed,
			BowlSpeed: 30,
			Zone:      middleContact(cfg),
			Timing:    TimingResult{Multiplier: 1.0},
			Shot:      shot,
		}, cfg.Exit)
		if speed <= prev {
			t.Fatalf("exit speed not increasing with bat speed: %v after %v", speed, prev)
		}
		prev = speed
	}
}

func TestResolveExitControlPenalty(t *testing.T) {
	cfg := config.Default()
	shot, _ := ShotByName(ShotStraightDrive)

	at := func(bowlSpeed float32) float32 {
		_, speed := ResolveExit(ExitInput{
			BatSpeed:  12,
			BowlSpeed: bowlSpeed,
			Zone:      middleContact(cfg),
			Timing:    TimingResult{Multiplier: 1.0},
			Shot:      shot,
		}, cfg.Exit)
		// Strip the rebound term's own speed dependence so only the penalty
		// tiers differ.
		raw := cfg.Exit.BatEnergy*12*12 + cfg.Exit.Rebound*bowlSpeed
		return speed * speed / raw
	}

	spin := at(18)
	medium := at(24)
	fast := at(32)
	if !(fast < medium && medium < spin) {
		t.Fatalf("control penalty should tighten with pace: spin %v, medium %v, fast %v",
			spin, medium, fast)
	}
}

func TestResolveExitEdgeDeflection(t *testing.T) {
	cfg := config.Default()
	shot, _ := ShotByName(ShotStraightDrive)
	half := cfg.Bat.Width / 2

	edge := ResolveZone(mgl32.Vec3{half * 0.95, 0, 0}, mgl32.Vec3{}, cfg.Bat, cfg.Zones)
	dir, _ := ResolveExit(ExitInput{
		BatSpeed:  12,
		BowlSpeed: 30,
		Zone:      edge,
		Timing:    TimingResult{Multiplier: 1.0},
		Shot:      shot,
	}, cfg.Exit)

	if dir.X() <= 0 {
		t.Fatalf("outside edge should push the drive to off, got %v", dir)
	}
}

func TestResolveExitResidualHandVelocity(t *testing.T) {
	cfg := config.Default()
	shot, _ := ShotByName(ShotStraightDrive)

	clean, _ := ResolveExit(ExitInput{
		BatSpeed:  12,
		BowlSpeed: 30,
		Zone:      middleContact(cfg),
		Timing:    TimingResult{Multiplier: 1.0},
		Shot:      shot,
	}, cfg.Exit)
	pushed, _ := ResolveExit(ExitInput{
		BatSpeed:  12,
		BowlSpeed: 30,
		Zone:      middleContact(cfg),
		Timing:    TimingResult{Multiplier: 1.0},
		Shot:      shot,
		HandVel:   mgl32.Vec3{2, 0, 0},
	}, cfg.Exit)

	if pushed.X() <= clean.X() {
		t.Fatalf("residual hand velocity should bias the exit direction: %v vs %v", pushed, clean)
	}
}
