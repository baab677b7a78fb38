package session

import "github.com/SanoKhan22/CricketAR-sub000/tracking"

// Phase is one state of the batting motion lifecycle.
type Phase string

const (
	PhaseIdle          Phase = "idle"
	PhaseStance        Phase = "stance"
	PhaseBacklift      Phase = "backlift"
	PhaseDownswing     Phase = "downswing"
	PhaseContact       Phase = "contact"
	PhaseFollowThrough Phase = "follow_through"
	PhaseRecovery      Phase = "recovery"
)

// SwingComponent tracks the batting motion through its phases from hand
// angle, velocity and position. Other components learn of phase changes only
// through the queued phase events; none may poll its internal timers.
type SwingComponent interface {
	// Update advances the phase machine with the given sanitized sample.
	Update(sample tracking.Sample)

	// Phase returns the current phase.
	Phase() Phase
	// ReadyToHit reports whether contact is legal; true only during the
	// downswing.
	ReadyToHit() bool

	// DownswingSeconds returns the time since the downswing started, for the
	// temporal timing judgment.
	DownswingSeconds() float32
	// BackliftTicks returns how long the preceding backlift was held.
	BackliftTicks() int64

	// RegisterContact marks the impact tick, moving the machine through the
	// contact phase.
	RegisterContact()

	// Reset returns the machine to stance and clears all timers, whatever the
	// prior state. Called once per new delivery.
	Reset()
}

func (s *Session) SetSwing(c SwingComponent) {
	s.swing = c
}

func (s *Session) Swing() SwingComponent {
	return s.swing
}
