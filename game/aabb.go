package game

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// AABBFromDimensions returns a bounding box centred on the origin from the
// given width, height and depth.
func AABBFromDimensions(width, height, depth float32) cube.BBox {
	w, d := width/2, depth/2
	return cube.Box(
		-w, -height/2, -d,
		w, height/2, d,
	)
}

// StumpsBox returns the bounding box of the stump set at the batting end.
func StumpsBox() cube.BBox {
	return cube.Box(
		-StumpsWidth/2, 0, -StumpsDepth/2,
		StumpsWidth/2, StumpsHeight, StumpsDepth/2,
	)
}

// AABBVectorDistance calculates the distance between an AABB and a vector.
func AABBVectorDistance(a cube.BBox, v mgl32.Vec3) float32 {
	x := math32.Max(a.Min().X()-v.X(), math32.Max(0, v.X()-a.Max().X()))
	y := math32.Max(a.Min().Y()-v.Y(), math32.Max(0, v.Y()-a.Max().Y()))
	z := math32.Max(a.Min().Z()-v.Z(), math32.Max(0, v.Z()-a.Max().Z()))

	dist := math32.Sqrt(x*x + y*y + z*z)
	if math32.IsNaN(dist) {
		dist = 0
	}

	return dist
}
