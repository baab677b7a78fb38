package config

import (
	"fmt"
	"os"

	"github.com/SanoKhan22/CricketAR-sub000/game"
	"github.com/pelletier/go-toml"
)

// Config is the single table of tunable values for the simulator. Every
// threshold, multiplier and band used by the batting pipeline lives here so
// retuning the game never requires touching logic.
type Config struct {
	Seed     int64
	TickRate int

	Bat      Bat
	Zones    Zones
	Timing   Timing
	Swing    Swing
	Shots    Shots
	Exit     Exit
	Scoring  Scoring
	Delivery Delivery
	Match    Match
}

// Bat describes the blade geometry and how tracked hand space maps onto it.
type Bat struct {
	// Length, Width and Depth are the blade dimensions in metres.
	Length float32
	Width  float32
	Depth  float32
	// ContactReach grows the blade box for contact detection, covering the
	// ball radius plus a forgiveness margin.
	ContactReach float32
	// HandleFloor is the multiplier under which a contact counts as a handle
	// hit and scores no shot.
	HandleFloor float32
	// SpeedScale converts tracked hand speed (normalised units/s) into bat
	// speed in m/s.
	SpeedScale float32
	// SweepX and SweepY scale normalised palm coordinates into world metres
	// around the crease.
	SweepX float32
	SweepY float32
}

// Zones configures the vertical and horizontal partition of the blade.
type Zones struct {
	// Vertical bands are evaluated from the handle downward; the first
	// threshold at or below the relative height wins.
	Handle   VerticalBand
	Shoulder VerticalBand
	Middle   VerticalBand
	Lower    VerticalBand
	Toe      VerticalBand

	// EdgeFraction is the share of the half-width counted as edge.
	EdgeFraction float32
	// EdgeMultiplier applies to contacts on either edge.
	EdgeMultiplier float32
	// EdgeDeflection is the lateral bias added to the exit direction on an
	// edge hit; sign follows the edge side.
	EdgeDeflection float32
}

// VerticalBand is one vertical slice of the blade.
type VerticalBand struct {
	// MinRelativeY is the lowest relative blade height (0 toe end, 1 handle
	// end) that still falls inside the band.
	MinRelativeY float32
	Multiplier   float32
	// AngleMod is added to the shot launch angle on contact in this band.
	AngleMod float32
}

// Timing configures the spatial and temporal contact judgments.
type Timing struct {
	// OptimalDepth is the ideal ball depth offset from the bat plane at
	// contact, in metres.
	OptimalDepth float32
	// Spatial tolerance bands in metres from the optimal depth.
	SpatialPerfect float32
	SpatialGood    float32
	SpatialOkay    float32
	// OptimalSwingSeconds is the ideal elapsed time between the start of the
	// downswing and contact.
	OptimalSwingSeconds float32
	// Temporal tolerance bands in seconds around the optimal swing time.
	TemporalPerfect float32
	TemporalGood    float32
	TemporalOkay    float32

	PerfectMultiplier float32
	OkayMultiplier    float32
	MishitMultiplier  float32
	// MinMultiplier and MaxMultiplier clamp every timing multiplier.
	MinMultiplier float32
	MaxMultiplier float32
}

// Swing configures the batting phase state machine.
type Swing struct {
	// StableSpeed is the hand speed under which the batter is considered set.
	StableSpeed float32
	// BackliftMinAngle and BackliftMaxAngle bound the angle-from-vertical
	// range that counts as a backlift.
	BackliftMinAngle float32
	BackliftMaxAngle float32
	// DownswingSpeed is the forward/downward hand speed that starts a
	// downswing.
	DownswingSpeed float32
	// LowAngle is the angle under which a downswing is considered finished.
	LowAngle float32
	// DecaySpeed ends a downswing once the hand slows below it.
	DecaySpeed float32

	MinDownswingTicks int64
	MinFollowTicks    int64
	// FullBackliftTicks is the backlift duration that earns the "full
	// backlift" quality note on contact.
	FullBackliftTicks int64
}

// Shots holds the swing speed tiers and the fixed named-shot table.
type Shots struct {
	// FastSpeed, MediumSpeed and SlowSpeed are the tier thresholds applied to
	// tracked hand speed. Below SlowSpeed no shot is played.
	FastSpeed   float32
	MediumSpeed float32
	SlowSpeed   float32
	// LoftFraction: a vertical hand speed above this fraction of the total
	// speed lofts the shot.
	LoftFraction float32
	// CrossFraction: a lateral hand speed above this fraction of the forward
	// speed plays a cross-bat shot.
	CrossFraction float32
}

// Exit configures the exit velocity model.
type Exit struct {
	// BatEnergy scales the batSpeed² term, Rebound the incoming bowl speed
	// term; the two are energy-summed under a square root.
	BatEnergy float32
	Rebound   float32
	// PowerBoost is the global scale applied after the multipliers.
	PowerBoost float32
	// ResidualVelocity is the contribution of leftover hand velocity to the
	// exit direction.
	ResidualVelocity float32
	// Control penalties by incoming speed: faster deliveries are harder to
	// time cleanly.
	MediumPaceSpeed   float32
	FastPaceSpeed     float32
	MediumPacePenalty float32
	FastPacePenalty   float32
}

// Scoring wraps the distance bands and the stopped-ball threshold.
type Scoring struct {
	Bands game.ScoringBands
	// StopSpeed is the ball speed under which a hit delivery is scored where
	// it lies.
	StopSpeed float32
}

// Delivery configures bowl parameter generation and game-flow pacing.
type Delivery struct {
	// Speed bands per delivery type, in m/s.
	SpinMinSpeed float32
	SpinMaxSpeed float32
	PaceMinSpeed float32
	PaceMaxSpeed float32
	// Line offsets in metres from middle stump.
	OffLineX float32
	LegLineX float32
	// Length targets: the pitch Z coordinate the ball should bounce at.
	FullLengthZ  float32
	GoodLengthZ  float32
	ShortLengthZ float32

	ReleaseDelayTicks int64
	NextDelayTicks    int64
	// AutoNext schedules the following delivery automatically once an
	// outcome is recorded.
	AutoNext bool
}

// Match holds innings-level limits.
type Match struct {
	MaxWickets int
}

// Default returns the canonical configuration table.
func Default() Config {
	c := Config{
		Seed:     1,
		TickRate: 60,
	}

	c.Bat = Bat{
		Length:       0.96,
		Width:        0.108,
		Depth:        0.04,
		ContactReach: 0.25,
		HandleFloor:  0.15,
		SpeedScale:   10.0,
		SweepX:       1.6,
		SweepY:       1.8,
	}

	c.Zones = Zones{
		Handle:   VerticalBand{MinRelativeY: 0.85, Multiplier: 0.08, AngleMod: 40},
		Shoulder: VerticalBand{MinRelativeY: 0.70, Multiplier: 0.30, AngleMod: 25},
		Middle:   VerticalBand{MinRelativeY: 0.30, Multiplier: 1.0, AngleMod: 0},
		Lower:    VerticalBand{MinRelativeY: 0.12, Multiplier: 0.70, AngleMod: -6},
		Toe:      VerticalBand{MinRelativeY: 0, Multiplier: 0.40, AngleMod: -14},

		EdgeFraction:   0.12,
		EdgeMultiplier: 0.40,
		EdgeDeflection: 0.35,
	}

	c.Timing = Timing{
		OptimalDepth:        0,
		SpatialPerfect:      0.15,
		SpatialGood:         0.35,
		SpatialOkay:         0.60,
		OptimalSwingSeconds: 0.25,
		TemporalPerfect:     0.05,
		TemporalGood:        0.12,
		TemporalOkay:        0.22,

		PerfectMultiplier: 1.15,
		OkayMultiplier:    0.75,
		MishitMultiplier:  0.35,
		MinMultiplier:     0.30,
		MaxMultiplier:     1.20,
	}

	c.Swing = Swing{
		StableSpeed:      0.15,
		BackliftMinAngle: 35,
		BackliftMaxAngle: 70,
		DownswingSpeed:   0.80,
		LowAngle:         15,
		DecaySpeed:       0.30,

		MinDownswingTicks: 6,
		MinFollowTicks:    18,
		FullBackliftTicks: 20,
	}

	c.Shots = Shots{
		FastSpeed:     1.0,
		MediumSpeed:   0.5,
		SlowSpeed:     0.2,
		LoftFraction:  0.5,
		CrossFraction: 0.6,
	}

	c.Exit = Exit{
		BatEnergy:        2.2,
		Rebound:          6.0,
		PowerBoost:       1.35,
		ResidualVelocity: 0.08,

		MediumPaceSpeed:   20,
		FastPaceSpeed:     28,
		MediumPacePenalty: 0.95,
		FastPacePenalty:   0.88,
	}

	c.Scoring = Scoring{
		Bands: game.ScoringBands{
			Single:   8,
			Two:      22,
			Three:    40,
			Boundary: 65,
		},
		StopSpeed: 0.5,
	}

	c.Delivery = Delivery{
		SpinMinSpeed: 16,
		SpinMaxSpeed: 22,
		PaceMinSpeed: 26,
		PaceMaxSpeed: 34,

		OffLineX: 0.30,
		LegLineX: -0.30,

		FullLengthZ:  3.0,
		GoodLengthZ:  6.0,
		ShortLengthZ: 9.0,

		ReleaseDelayTicks: 30,
		NextDelayTicks:    120,
		AutoNext:          true,
	}

	c.Match = Match{MaxWickets: 10}

	return c
}

// Load reads the configuration from the given TOML file. If the file does not
// exist, the default table is written there and returned.
func Load(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		c := Default()
		data, err := toml.Marshal(c)
		if err != nil {
			return c, fmt.Errorf("failed encoding default config: %v", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return c, fmt.Errorf("failed creating config file: %v", err)
		}
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config: %v", err)
	}

	c := Default()
	if err = toml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %v", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects tables that would break pipeline invariants.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate must be positive, got %d", c.TickRate)
	}
	if c.Bat.Length <= 0 || c.Bat.Width <= 0 {
		return fmt.Errorf("bat dimensions must be positive")
	}
	if c.Timing.MinMultiplier <= 0 || c.Timing.MaxMultiplier < c.Timing.MinMultiplier {
		return fmt.Errorf("timing multiplier clamp [%v, %v] is invalid",
			c.Timing.MinMultiplier, c.Timing.MaxMultiplier)
	}
	b := c.Scoring.Bands
	if !(b.Single < b.Two && b.Two < b.Three && b.Three < b.Boundary) {
		return fmt.Errorf("scoring bands must ascend, got %v/%v/%v/%v",
			b.Single, b.Two, b.Three, b.Boundary)
	}
	if c.Match.MaxWickets <= 0 {
		return fmt.Errorf("max wickets must be positive, got %d", c.Match.MaxWickets)
	}
	return nil
}

// Dt returns the fixed seconds per simulation tick.
func (c Config) Dt() float32 {
	return 1 / float32(c.TickRate)
}
