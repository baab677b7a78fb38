package batting

import (
	"github.com/SanoKhan22/CricketAR-sub000/config"
	"github.com/chewxy/math32"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// Shot is a named, pre-authored stroke: a base direction over the field, a
// launch angle and a base power. Immutable once selected for a contact.
type Shot struct {
	Name string
	// Direction is the base exit direction over the field. +Z points back
	// past the bowler, +X to the off side.
	Direction mgl32.Vec3
	// LaunchAngleDegrees is the base elevation of the stroke.
	LaunchAngleDegrees float32
	// Power is the base power scaled by measured swing speed, capped at 1.
	Power     float32
	Defensive bool
}

// Miss reports whether the shot is the distinguished no-contact shot.
func (s Shot) Miss() bool {
	return s.Name == ShotMiss
}

// Named shots.
const (
	ShotStraightDrive = "Straight Drive"
	ShotCoverDrive    = "Cover Drive"
	ShotCut           = "Cut"
	ShotPull          = "Pull"
	ShotFlick         = "Flick"
	ShotLofted        = "Lofted Drive"
	ShotDefensive     = "Forward Defensive"
	ShotMiss          = "Miss"
)

// shotTable is the fixed stroke table, in declaration order. Base powers are
// scaled by swing speed at selection time.
var shotTable = func() *orderedmap.OrderedMap[string, Shot] {
	m := orderedmap.NewOrderedMap[string, Shot]()
	for _, s := range []Shot{
		{Name: ShotStraightDrive, Direction: mgl32.Vec3{0, 0, 1}, LaunchAngleDegrees: 10, Power: 0.80},
		{Name: ShotCoverDrive, Direction: mgl32.Vec3{0.55, 0, 0.85}, LaunchAngleDegrees: 12, Power: 0.85},
		{Name: ShotCut, Direction: mgl32.Vec3{0.9, 0, -0.25}, LaunchAngleDegrees: 15, Power: 0.90},
		{Name: ShotPull, Direction: mgl32.Vec3{-0.8, 0, -0.45}, LaunchAngleDegrees: 20, Power: 1.0},
		{Name: ShotFlick, Direction: mgl32.Vec3{-0.55, 0, 0.8}, LaunchAngleDegrees: 15, Power: 0.75},
		{Name: ShotLofted, Direction: mgl32.Vec3{0, 0, 1}, LaunchAngleDegrees: 35, Power: 1.0},
		{Name: ShotDefensive, Direction: mgl32.Vec3{0, 0, 0.4}, LaunchAngleDegrees: -5, Power: 0.15, Defensive: true},
		{Name: ShotMiss},
	} {
		m.Set(s.Name, s)
	}
	return m
}()

// ShotByName looks a shot up in the stroke table.
func ShotByName(name string) (Shot, bool) {
	return shotTable.Get(name)
}

// ShotNames returns the stroke table's shot names in declaration order.
func ShotNames() []string {
	return shotTable.Keys()
}

// SelectShot classifies the hand velocity at contact into one of the named
// shots. Tiers and component fractions come from the configuration table; a
// swing below the slowest tier resolves to the Miss shot.
func SelectShot(handVel mgl32.Vec3, s config.Shots) Shot {
	speed := handVel.Len()

	var name string
	switch {
	case speed >= s.FastSpeed:
		name = classifyFast(handVel, speed, s)
	case speed >= s.MediumSpeed:
		name = classifyMedium(handVel, s)
	case speed >= s.SlowSpeed:
		name = ShotDefensive
	default:
		name = ShotMiss
	}

	shot, _ := shotTable.Get(name)
	if shot.Miss() {
		return shot
	}

	// Base power scales with how hard the swing was relative to the fast
	// tier, capped at full power.
	shot.Power = math32.Min(shot.Power*(speed/s.FastSpeed), 1.0)
	return shot
}

func classifyFast(vel mgl32.Vec3, speed float32, s config.Shots) string {
	if vel.Y() > speed*s.LoftFraction {
		return ShotLofted
	}
	forward := math32.Abs(vel.Z())
	if math32.Abs(vel.X()) > forward*s.CrossFraction {
		if vel.X() > 0 {
			return ShotCut
		}
		return ShotPull
	}
	return ShotStraightDrive
}

func classifyMedium(vel mgl32.Vec3, s config.Shots) string {
	forward := math32.Abs(vel.Z())
	if math32.Abs(vel.X()) > forward*s.CrossFraction {
		if vel.X() > 0 {
			return ShotCoverDrive
		}
		return ShotFlick
	}
	return ShotStraightDrive
}
