package game

// ScoringBands holds the ascending distance thresholds that band a completed
// delivery into a run value. Distances are measured horizontally from the
// stumps at the batting end.
type ScoringBands struct {
	// Single, Two and Three are the minimum distances for 1, 2 and 3 runs.
	// Anything below Single is a dot ball; anything between Three and
	// Boundary also scores 3.
	Single float32
	Two    float32
	Three  float32
	// Boundary is the rope distance. Reaching it on the full scores 6,
	// reaching it after bouncing scores 4.
	Boundary float32
}

// CalculateRuns computes the run value of a delivery from the horizontal
// distance the ball travelled. A defensive or missed shot always scores zero,
// whatever the ball did afterwards.
func CalculateRuns(distance float32, bounced, defensive bool, bands ScoringBands) int {
	if defensive {
		return 0
	}
	if distance >= bands.Boundary {
		if bounced {
			return 4
		}
		return 6
	}
	switch {
	case distance >= bands.Three:
		return 3
	case distance >= bands.Two:
		return 2
	case distance >= bands.Single:
		return 1
	default:
		return 0
	}
}
