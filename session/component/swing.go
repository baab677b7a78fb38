package component

import (
	"github.com/SanoKhan22/CricketAR-sub000/replay"
	"github.com/SanoKhan22/CricketAR-sub000/session"
	"github.com/SanoKhan22/CricketAR-sub000/session/event"
	"github.com/SanoKhan22/CricketAR-sub000/tracking"
	"github.com/chewxy/math32"
)

// angleEps is the angular movement under which the hand angle counts as held.
const angleEps = float32(0.5)

// PhaseSwingComponent is the batting-motion state machine. It cycles
// stance → backlift → downswing → contact → follow-through → recovery each
// delivery, falling back to idle whenever tracking drops out. Every
// transition is published as a phase event; no other component reads its
// timers directly.
type PhaseSwingComponent struct {
	mSession *session.Session

	phase          session.Phase
	phaseStartTick int64

	lastAngle float32
	hasLast   bool

	backliftStartTick  int64
	backliftDuration   int64
	downswingStartTick int64
}

func NewPhaseSwingComponent(s *session.Session) *PhaseSwingComponent {
	c := &PhaseSwingComponent{mSession: s, phase: session.PhaseStance}
	c.clearTimers()
	return c
}

// Update advances the machine with one sanitized sample.
func (c *PhaseSwingComponent) Update(sample tracking.Sample) {
	if !sample.Active {
		c.transition(session.PhaseIdle)
		c.hasLast = false
		return
	}

	now := c.mSession.CurrentTick()
	angle := sample.AngleFromVertical()
	speed := sample.Speed()

	angleRising := c.hasLast && angle > c.lastAngle+angleEps
	angleFalling := c.hasLast && angle < c.lastAngle-angleEps
	c.lastAngle = angle
	c.hasLast = true

	// Forward/downward hand speed drives the downswing checks.
	vel := sample.Velocity
	forwardDown := math32.Max(vel.Z(), 0) + math32.Max(-vel.Y(), 0)

	sw := c.mSession.Config().Swing
	switch c.phase {
	case session.PhaseIdle, session.PhaseRecovery:
		if speed < sw.StableSpeed {
			c.transition(session.PhaseStance)
		}
	case session.PhaseStance:
		switch {
		case angle >= sw.BackliftMinAngle && angle <= sw.BackliftMaxAngle && angleRising:
			c.backliftStartTick = now
			c.transition(session.PhaseBacklift)
		case forwardDown > sw.DownswingSpeed:
			// Quick shot played straight from the stance, no backlift.
			c.startDownswing(now)
		}
	case session.PhaseBacklift:
		if angleFalling || (forwardDown > sw.DownswingSpeed && angle < sw.BackliftMaxAngle) {
			c.startDownswing(now)
		}
	case session.PhaseDownswing:
		if now-c.downswingStartTick >= sw.MinDownswingTicks &&
			(angle < sw.LowAngle || speed < sw.DecaySpeed) {
			c.transition(session.PhaseFollowThrough)
		}
	case session.PhaseContact:
		c.transition(session.PhaseFollowThrough)
	case session.PhaseFollowThrough:
		if now-c.phaseStartTick >= sw.MinFollowTicks {
			c.transition(session.PhaseRecovery)
		}
	}
}

// Phase returns the current phase.
func (c *PhaseSwingComponent) Phase() session.Phase {
	return c.phase
}

// ReadyToHit reports whether a contact attempt is legal this tick.
func (c *PhaseSwingComponent) ReadyToHit() bool {
	return c.phase == session.PhaseDownswing
}

// DownswingSeconds returns the elapsed time since the downswing started.
func (c *PhaseSwingComponent) DownswingSeconds() float32 {
	if c.downswingStartTick < 0 {
		return 0
	}
	return float32(c.mSession.CurrentTick()-c.downswingStartTick) * c.mSession.Dt()
}

// BackliftTicks returns how long the backlift preceding the downswing was held.
func (c *PhaseSwingComponent) BackliftTicks() int64 {
	return c.backliftDuration
}

// RegisterContact marks the impact, moving the machine through the contact
// phase.
func (c *PhaseSwingComponent) RegisterContact() {
	if c.phase == session.PhaseDownswing {
		c.transition(session.PhaseContact)
	}
}

// Reset returns the machine to stance and clears all timers, whatever the
// prior state.
func (c *PhaseSwingComponent) Reset() {
	c.clearTimers()
	c.transition(session.PhaseStance)
}

func (c *PhaseSwingComponent) clearTimers() {
	c.phaseStartTick = c.mSession.CurrentTick()
	c.hasLast = false
	c.backliftStartTick = -1
	c.backliftDuration = 0
	c.downswingStartTick = -1
}

func (c *PhaseSwingComponent) startDownswing(now int64) {
	if c.backliftStartTick >= 0 {
		c.backliftDuration = now - c.backliftStartTick
	} else {
		c.backliftDuration = 0
	}
	c.downswingStartTick = now
	c.transition(session.PhaseDownswing)
}

func (c *PhaseSwingComponent) transition(to session.Phase) {
	if c.phase == to {
		return
	}
	from := c.phase
	c.phase = to
	c.phaseStartTick = c.mSession.CurrentTick()

	c.mSession.QueueEvent(event.NewPhaseEvent(string(from), string(to)))
	c.mSession.Record(replay.NewPhaseEvent(c.mSession.CurrentTick(), string(from), string(to)))
}
