package game

const (
	ErrorDeliveryInProgress = "Error: A delivery is already in progress."
	ErrorInningsOver        = "Error: The innings is over."

	MessageNoShot   = "No shot! Off the handle."
	MessageMiss     = "Missed! The ball goes through to the keeper."
	MessageBowled   = "Bowled! The stumps are shattered."
	MessageSix      = "SIX! Over the rope on the full."
	MessageFour     = "FOUR! Along the ground to the boundary."
	MessageGameOver = "All out! The innings is over."
	MessageDotBall  = "Dot ball."
)
