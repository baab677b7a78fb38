// Package batting contains the contact pipeline: the blade zone partition,
// the timing judgments, the shot table and the exit velocity model.
package batting

import (
	"github.com/SanoKhan22/CricketAR-sub000/config"
	"github.com/SanoKhan22/CricketAR-sub000/game"
	"github.com/go-gl/mathgl/mgl32"
)

// VerticalZone is a vertical band of the blade, from the handle down to the toe.
type VerticalZone string

const (
	ZoneHandle   VerticalZone = "handle"
	ZoneShoulder VerticalZone = "shoulder"
	ZoneMiddle   VerticalZone = "middle"
	ZoneLower    VerticalZone = "lower"
	ZoneToe      VerticalZone = "toe"
)

// HorizontalZone is a lateral band of the blade.
type HorizontalZone string

const (
	ZoneLeftEdge  HorizontalZone = "left-edge"
	ZoneCenter    HorizontalZone = "center"
	ZoneRightEdge HorizontalZone = "right-edge"
)

// Contact describes where on the blade the ball struck and the multipliers
// that position carries. Values are fixed by the configuration table and
// never mutated after resolution.
type Contact struct {
	Vertical   VerticalZone
	Horizontal HorizontalZone

	// Multiplier is the combined vertical × horizontal power multiplier.
	Multiplier float32
	// Deflection is the signed lateral bias an edge hit adds to the exit
	// direction.
	Deflection float32
	// AngleMod is added to the shot launch angle: top-of-the-bat contacts pop
	// up, toe contacts drive into the ground.
	AngleMod float32
	// Description is a short human-readable account of the contact.
	Description string

	// noShotFloor is the configured handle floor the contact was resolved
	// against.
	noShotFloor float32
}

// NoShot reports whether the contact is too close to the hands to play a
// shot. Such contacts short-circuit the pipeline at zero runs.
func (c Contact) NoShot() bool {
	return c.Multiplier < c.noShotFloor
}

// ResolveZone classifies a ball position against the bat blade. The blade
// origin is its centre; relative height 1 is the handle end and 0 the toe.
// Vertical bands are tested from the handle downward and the first matching
// threshold wins, so boundary ties resolve to the stricter zone. The function
// is total: every position maps to exactly one zone pair.
func ResolveZone(ballPos, batPos mgl32.Vec3, bat config.Bat, zones config.Zones) Contact {
	local := ballPos.Sub(batPos)

	halfWidth := bat.Width / 2
	edgeBand := halfWidth * (1 - zones.EdgeFraction)

	horizontal := ZoneCenter
	hzMultiplier := float32(1.0)
	deflection := float32(0)
	switch {
	case local.X() < -edgeBand:
		horizontal = ZoneLeftEdge
		hzMultiplier = zones.EdgeMultiplier
		deflection = -zones.EdgeDeflection
	case local.X() > edgeBand:
		horizontal = ZoneRightEdge
		hzMultiplier = zones.EdgeMultiplier
		deflection = zones.EdgeDeflection
	}

	batBottom := -bat.Length / 2
	relativeY := game.Clamp32((local.Y()-batBottom)/bat.Length, 0, 1)

	vertical := ZoneToe
	band := zones.Toe
	desc := "off the toe"
	switch {
	case relativeY >= zones.Handle.MinRelativeY:
		vertical, band, desc = ZoneHandle, zones.Handle, "struck the handle"
	case relativeY >= zones.Shoulder.MinRelativeY:
		vertical, band, desc = ZoneShoulder, zones.Shoulder, "high on the shoulder"
	case relativeY >= zones.Middle.MinRelativeY:
		vertical, band, desc = ZoneMiddle, zones.Middle, "out of the middle"
	case relativeY >= zones.Lower.MinRelativeY:
		vertical, band, desc = ZoneLower, zones.Lower, "low on the blade"
	}
	if horizontal != ZoneCenter {
		desc += ", off the edge"
	}

	return Contact{
		Vertical:   vertical,
		Horizontal: horizontal,

		Multiplier:  band.Multiplier * hzMultiplier,
		Deflection:  deflection,
		AngleMod:    band.AngleMod,
		Description: desc,

		noShotFloor: bat.HandleFloor,
	}
}
