package batting

import (
	"github.com/SanoKhan22/CricketAR-sub000/config"
	"github.com/SanoKhan22/CricketAR-sub000/game"
	"github.com/chewxy/math32"
)

// TimingQuality is a discrete rating of how close to optimal a contact was.
type TimingQuality string

const (
	TimingPerfect TimingQuality = "perfect"
	TimingGood    TimingQuality = "good"
	TimingEarly   TimingQuality = "early"
	TimingLate    TimingQuality = "late"
	TimingMishit  TimingQuality = "mishit"
)

// TimingResult pairs a quality with its power multiplier. It is computed
// fresh at each contact and never persisted.
type TimingResult struct {
	Quality    TimingQuality
	Multiplier float32
}

// ClassifySpatial judges a contact by the ball's depth offset from the
// optimal contact depth. A positive offset means the ball was met out in
// front (early), a negative one that it was met deep (late).
func ClassifySpatial(depthOffset float32, t config.Timing) TimingResult {
	offset := depthOffset - t.OptimalDepth
	dist := math32.Abs(offset)

	switch {
	case dist <= t.SpatialPerfect:
		return result(TimingPerfect, t.PerfectMultiplier, t)
	case dist <= t.SpatialGood:
		return result(TimingGood, 1.0, t)
	case dist <= t.SpatialOkay:
		if offset > 0 {
			return result(TimingEarly, t.OkayMultiplier, t)
		}
		return result(TimingLate, t.OkayMultiplier, t)
	default:
		return result(TimingMishit, t.MishitMultiplier, t)
	}
}

// ClassifyTemporal judges a contact by the seconds elapsed between the start
// of the downswing and impact.
func ClassifyTemporal(elapsedSeconds float32, t config.Timing) TimingResult {
	offset := elapsedSeconds - t.OptimalSwingSeconds
	dist := math32.Abs(offset)

	switch {
	case dist <= t.TemporalPerfect:
		return result(TimingPerfect, t.PerfectMultiplier, t)
	case dist <= t.TemporalGood:
		return result(TimingGood, 1.0, t)
	case dist <= t.TemporalOkay:
		if offset < 0 {
			return result(TimingEarly, t.OkayMultiplier, t)
		}
		return result(TimingLate, t.OkayMultiplier, t)
	default:
		return result(TimingMishit, t.MishitMultiplier, t)
	}
}

// CombineTiming merges the spatial and temporal judgments of one contact into
// a single result. The rule is total and deterministic: both perfect wins,
// any mishit loses, perfect mixed with good (or both good) stays good, and
// otherwise early takes precedence over late.
func CombineTiming(spatial, temporal TimingResult, t config.Timing) TimingResult {
	has := func(q TimingQuality) bool {
		return spatial.Quality == q || temporal.Quality == q
	}

	switch {
	case spatial.Quality == TimingPerfect && temporal.Quality == TimingPerfect:
		return result(TimingPerfect, t.PerfectMultiplier, t)
	case has(TimingMishit):
		return result(TimingMishit, t.MishitMultiplier, t)
	case (spatial.Quality == TimingPerfect || spatial.Quality == TimingGood) &&
		(temporal.Quality == TimingPerfect || temporal.Quality == TimingGood):
		return result(TimingGood, 1.0, t)
	case has(TimingEarly):
		return result(TimingEarly, t.OkayMultiplier, t)
	case has(TimingLate):
		return result(TimingLate, t.OkayMultiplier, t)
	default:
		return result(TimingGood, 1.0, t)
	}
}

// result clamps the multiplier into the configured bounds.
func result(q TimingQuality, multiplier float32, t config.Timing) TimingResult {
	return TimingResult{
		Quality:    q,
		Multiplier: game.Clamp32(multiplier, t.MinMultiplier, t.MaxMultiplier),
	}
}
