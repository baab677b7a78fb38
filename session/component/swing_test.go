package component

import (
	"io"
	"testing"

	"github.com/SanoKhan22/CricketAR-sub000/config"
	"github.com/SanoKhan22/CricketAR-sub000/session"
	"github.com/SanoKhan22/CricketAR-sub000/tracking"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

// handFeed is a hand-driven feed: tests set the pose before each tick.
type handFeed struct {
	palm  mgl32.Vec3
	angle float32
	vel   mgl32.Vec3

	active bool
}

func (f *handFeed) Latest() (tracking.Sample, bool) {
	if !f.active {
		return tracking.Sample{}, true
	}
	return tracking.SyntheticSample(f.palm, f.angle, f.vel), true
}

func newSwingSession() (*session.Session, *handFeed) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	feed := &handFeed{palm: mgl32.Vec3{0.5, 0.5, 0}}
	s := session.New(logger, config.Default(), feed, nil)
	Register(s)
	return s, feed
}

func TestSwingFullCycle(t *testing.T) {
	s, feed := newSwingSession()
	swing := s.Swing()
	cfg := s.Config().Swing

	feed.active = true
	feed.angle = 20
	s.Tick()
	if swing.Phase() != session.PhaseStance {
		t.Fatalf("expected stance, got %v", swing.Phase())
	}

	// Lifting the hands into the backlift window starts the backlift.
	feed.angle = 45
	s.Tick()
	if swing.Phase() != session.PhaseBacklift {
		t.Fatalf("expected backlift, got %v", swing.Phase())
	}

	// Hold the backlift a few ticks, then bring the hands down.
	for i := 0; i < 5; i++ {
		s.Tick()
	}
	feed.angle = 30
	feed.vel = mgl32.Vec3{0, -0.5, 1.0}
	s.Tick()
	if swing.Phase() != session.PhaseDownswing {
		t.Fatalf("expected downswing, got %v", swing.Phase())
	}
	if !swing.ReadyToHit() {
		t.Fatal("downswing should be ready to hit")
	}
	if swing.BackliftTicks() != 6 {
		t.Fatalf("backlift held for %d ticks, want 6", swing.BackliftTicks())
	}

	// The swing finishes once the bat is low, but not before the minimum
	// downswing window.
	feed.angle = 5
	for i := int64(0); i < cfg.MinDownswingTicks-1; i++ {
		s.Tick()
		if swing.Phase() != session.PhaseDownswing {
			t.Fatalf("downswing ended after %d ticks: %v", i+1, swing.Phase())
		}
	}
	s.Tick()
	if swing.Phase() != session.PhaseFollowThrough {
		t.Fatalf("expected follow through, got %v", swing.Phase())
	}
	if swing.ReadyToHit() {
		t.Fatal("follow through must not be hittable")
	}

	// Follow-through holds for its minimum, then recovery, then back to
	// stance once the hands settle.
	feed.vel = mgl32.Vec3{0, 0, 0.5}
	for i := int64(0); i < cfg.MinFollowTicks; i++ {
		s.Tick()
	}
	if swing.Phase() != session.PhaseRecovery {
		t.Fatalf("expected recovery, got %v", swing.Phase())
	}

	feed.vel = mgl32.Vec3{}
	s.Tick()
	if swing.Phase() != session.PhaseStance {
		t.Fatalf("expected stance after settling, got %v", swing.Phase())
	}
}

func TestSwingQuickShotFromStance(t *testing.T) {
	s, feed := newSwingSession()
	swing := s.Swing()

	feed.active = true
	feed.angle = 10
	s.Tick()
	if swing.Phase() != session.PhaseStance {
		t.Fatalf("expected stance, got %v", swing.Phase())
	}

	// A hard push forward skips the backlift entirely.
	feed.vel = mgl32.Vec3{0, -0.3, 0.9}
	s.Tick()
	if swing.Phase() != session.PhaseDownswing {
		t.Fatalf("expected downswing, got %v", swing.Phase())
	}
	if swing.BackliftTicks() != 0 {
		t.Fatalf("quick shot recorded a backlift of %d ticks", swing.BackliftTicks())
	}
}

func TestSwingTrackingDropout(t *testing.T) {
	s, feed := newSwingSession()
	swing := s.Swing()

	feed.active = true
	feed.angle = 20
	s.Tick()
	feed.angle = 45
	s.Tick()
	if swing.Phase() != session.PhaseBacklift {
		t.Fatalf("expected backlift, got %v", swing.Phase())
	}

	// Losing the hand drops the machine to idle; reacquiring a still hand
	// returns it to stance.
	feed.active = false
	s.Tick()
	if swing.Phase() != session.PhaseIdle {
		t.Fatalf("expected idle on dropout, got %v", swing.Phase())
	}

	feed.active = true
	feed.angle = 20
	feed.vel = mgl32.Vec3{}
	s.Tick()
	if swing.Phase() != session.PhaseStance {
		t.Fatalf("expected stance on reacquire, got %v", swing.Phase())
	}
}

func TestSwingRegisterContact(t *testing.T) {
	s, feed := newSwingSession()
	swing := s.Swing()

	feed.active = true
	feed.angle = 10
	s.Tick()
	feed.vel = mgl32.Vec3{0, -0.3, 0.9}
	s.Tick()
	if !swing.ReadyToHit() {
		t.Fatalf("expected downswing, got %v", swing.Phase())
	}

	swing.RegisterContact()
	if swing.Phase() != session.PhaseContact {
		t.Fatalf("expected contact, got %v", swing.Phase())
	}

	s.Tick()
	if swing.Phase() != session.PhaseFollowThrough {
		t.Fatalf("contact should flow into follow through, got %v", swing.Phase())
	}
}

func TestSwingResetFromAnyPhase(t *testing.T) {
	s, feed := newSwingSession()
	swing := s.Swing()

	feed.active = true
	feed.angle = 10
	s.Tick()
	feed.vel = mgl32.Vec3{0, -0.3, 0.9}
	s.Tick()
	if swing.Phase() != session.PhaseDownswing {
		t.Fatalf("expected downswing, got %v", swing.Phase())
	}

	swing.Reset()
	if swing.Phase() != session.PhaseStance {
		t.Fatalf("reset should return to stance, got %v", swing.Phase())
	}
	if swing.BackliftTicks() != 0 || swing.DownswingSeconds() != 0 {
		t.Fatal("reset kept swing timers")
	}

	// Reset is idempotent.
	swing.Reset()
	if swing.Phase() != session.PhaseStance {
		t.Fatalf("second reset moved to %v", swing.Phase())
	}
}

func TestSwingDownswingSeconds(t *testing.T) {
	s, feed := newSwingSession()
	swing := s.Swing()

	feed.active = true
	feed.angle = 30
	s.Tick()
	feed.vel = mgl32.Vec3{0, -0.5, 1.0}
	s.Tick()
	if swing.Phase() != session.PhaseDownswing {
		t.Fatalf("expected downswing, got %v", swing.Phase())
	}

	start := swing.DownswingSeconds()
	s.Tick()
	s.Tick()
	elapsed := swing.DownswingSeconds() - start
	want := 2 * s.Dt()
	if !mgl32.FloatEqualThreshold(elapsed, want, 1e-5) {
		t.Fatalf("downswing clock advanced %v over two ticks, want %v", elapsed, want)
	}
}
