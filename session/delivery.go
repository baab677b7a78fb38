package session

// DeliveryState is the lifecycle of one bowled ball.
type DeliveryState string

const (
	DeliveryIdle      DeliveryState = "idle"
	DeliveryBowling   DeliveryState = "bowling"
	DeliveryBatting   DeliveryState = "batting"
	DeliveryComplete  DeliveryState = "delivery_complete"
	DeliveryDismissed DeliveryState = "dismissed"
)

// DeliveryParams are the bowl parameters drawn for one delivery.
type DeliveryParams struct {
	// Speed in m/s at release.
	Speed float32
	// Line is "off", "middle" or "leg"; Length is "full", "good" or "short".
	Line   string
	Length string
}

// DeliveryComponent tracks a delivery from bowl release through contact to a
// scored or dismissed outcome, and owns the one-hit-per-delivery latch.
type DeliveryComponent interface {
	// Bowl starts a new delivery. Only legal from the idle state with the
	// innings still open.
	Bowl() error
	// Update runs the per-tick contact and outcome checks.
	Update()

	// State returns the delivery lifecycle state.
	State() DeliveryState
	// BallLive reports whether the ball should be physics-stepped this tick.
	BallLive() bool
	// Params returns the current delivery's bowl parameters.
	Params() DeliveryParams
	// HasHit reports whether a contact has been registered this delivery.
	HasHit() bool

	// Reset aborts any live delivery and returns to idle.
	Reset()
}

func (s *Session) SetDelivery(c DeliveryComponent) {
	s.delivery = c
}

func (s *Session) Delivery() DeliveryComponent {
	return s.delivery
}
