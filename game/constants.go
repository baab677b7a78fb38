package game

const (
	// Pitch geometry. The stumps at the batting end sit at the origin, the
	// bowler releases from ReleaseZ and the ball travels towards -Z.
	ReleaseZ      = float32(18.0)
	ReleaseHeight = float32(2.0)
	CreaseZ       = float32(1.2)
	MissZ         = float32(-1.2)

	StumpsWidth  = float32(0.22)
	StumpsHeight = float32(0.71)
	StumpsDepth  = float32(0.06)

	BallRadius = float32(0.036)

	Gravity = float32(9.81)

	// MinBounceSpeed is the vertical speed under which a grounded ball settles
	// instead of rebounding.
	MinBounceSpeed = float32(0.75)
)
