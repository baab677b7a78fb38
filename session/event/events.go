// Package event contains the notifications the session emits to the
// presentation layer. Events are queued during a tick and flushed in FIFO
// order once the tick's update path has run.
package event

// RemoteEvent is a notification consumed by the presentation collaborator.
type RemoteEvent interface {
	ID() string
}

type PhaseEvent struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func NewPhaseEvent(from, to string) *PhaseEvent {
	return &PhaseEvent{From: from, To: to}
}

func (e *PhaseEvent) ID() string {
	return "cricketar:phase"
}

type DeliveryEvent struct {
	Speed  float32 `json:"speed"`
	Line   string  `json:"line"`
	Length string  `json:"length"`
}

func NewDeliveryEvent(speed float32, line, length string) *DeliveryEvent {
	return &DeliveryEvent{Speed: speed, Line: line, Length: length}
}

func (e *DeliveryEvent) ID() string {
	return "cricketar:delivery"
}

type ContactEvent struct {
	Zone        string  `json:"zone"`
	Timing      string  `json:"timing"`
	Shot        string  `json:"shot"`
	ExitSpeed   float32 `json:"exit_speed"`
	Backlift    string  `json:"backlift"`
	Description string  `json:"description"`
}

func NewContactEvent(zone, timing, shot string, exitSpeed float32, backlift, description string) *ContactEvent {
	return &ContactEvent{
		Zone:        zone,
		Timing:      timing,
		Shot:        shot,
		ExitSpeed:   exitSpeed,
		Backlift:    backlift,
		Description: description,
	}
}

func (e *ContactEvent) ID() string {
	return "cricketar:contact"
}

type OutcomeEvent struct {
	Runs      int     `json:"runs"`
	Dismissed bool    `json:"dismissed"`
	Distance  float32 `json:"distance"`
	Shot      string  `json:"shot"`
	Timing    string  `json:"timing"`
	Message   string  `json:"message"`
}

func NewOutcomeEvent(runs int, dismissed bool, distance float32, shot, timing, message string) *OutcomeEvent {
	return &OutcomeEvent{
		Runs:      runs,
		Dismissed: dismissed,
		Distance:  distance,
		Shot:      shot,
		Timing:    timing,
		Message:   message,
	}
}

func (e *OutcomeEvent) ID() string {
	return "cricketar:outcome"
}

// WicketEvent asks the presentation layer to play the stump-destruction
// effect.
type WicketEvent struct{}

func (e *WicketEvent) ID() string {
	return "cricketar:wicket"
}

type TotalsEvent struct {
	Runs    int   `json:"runs"`
	Balls   int   `json:"balls"`
	Wickets int   `json:"wickets"`
	History []int `json:"history"`
}

func NewTotalsEvent(runs, balls, wickets int, history []int) *TotalsEvent {
	return &TotalsEvent{Runs: runs, Balls: balls, Wickets: wickets, History: history}
}

func (e *TotalsEvent) ID() string {
	return "cricketar:totals"
}

type GameOverEvent struct {
	Runs    int `json:"runs"`
	Balls   int `json:"balls"`
	Wickets int `json:"wickets"`
}

func NewGameOverEvent(runs, balls, wickets int) *GameOverEvent {
	return &GameOverEvent{Runs: runs, Balls: balls, Wickets: wickets}
}

func (e *GameOverEvent) ID() string {
	return "cricketar:game_over"
}
