package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAABBFromDimensions(t *testing.T) {
	box := AABBFromDimensions(0.1, 1.0, 0.04)
	if !Float32ApproxEq(box.Max().X()-box.Min().X(), 0.1) {
		t.Fatalf("wrong width: %v", box)
	}
	if !Float32ApproxEq(box.Max().Y()-box.Min().Y(), 1.0) {
		t.Fatalf("wrong height: %v", box)
	}
	if !Float32ApproxEq(box.Min().Y(), -0.5) {
		t.Fatalf("box not centred: %v", box)
	}
}

func TestStumpsBoxAtOrigin(t *testing.T) {
	box := StumpsBox()
	if box.Min().Y() != 0 {
		t.Fatalf("stumps should stand on the ground, got %v", box)
	}
	if !Float32ApproxEq(box.Max().Y(), StumpsHeight) {
		t.Fatalf("wrong stump height: %v", box)
	}
	if !Float32ApproxEq(box.Min().X(), -box.Max().X()) {
		t.Fatalf("stumps not centred on the line: %v", box)
	}
}

func TestAABBVectorDistance(t *testing.T) {
	box := AABBFromDimensions(2, 2, 2)
	if got := AABBVectorDistance(box, mgl32.Vec3{0, 0, 0}); got != 0 {
		t.Fatalf("inside point should be distance 0, got %v", got)
	}
	if got := AABBVectorDistance(box, mgl32.Vec3{4, 0, 0}); !Float32ApproxEq(got, 3) {
		t.Fatalf("expected distance 3, got %v", got)
	}
}
