package geom

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/arbendik/meshprep/pkg/math3"
)

// BBox is an axis-aligned bounding box.
type BBox struct {
	Min math3.Vec3
	Max math3.Vec3
}

// Center returns the midpoint of the box on each axis.
func (b BBox) Center() math3.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the extent of the box on each axis.
func (b BBox) Size() math3.Vec3 {
	return b.Max.Sub(b.Min)
}

// Sphere is a bounding sphere.
type Sphere struct {
	Center math3.Vec3
	Radius float32
}

// ComputeBBox scans positions once and returns their axis-aligned bounding
// box. A single point yields a zero-extent box, which is a valid result.
// Min/max use standard float ordering, so NaN inputs propagate.
func ComputeBBox(positions []math3.Vec3) (BBox, error) {
	if len(positions) == 0 {
		return BBox{}, fmt.Errorf("bbox: %w", ErrEmptyMesh)
	}
	box := BBox{Min: positions[0], Max: positions[0]}
	for _, p := range positions[1:] {
		box.Min = box.Min.Min(p)
		box.Max = box.Max.Max(p)
	}
	return box, nil
}

// ComputeBoundingSphere scans positions once and returns the sphere around
// center that encloses them all: radius is the maximum distance from center
// to any position. A single point at the center yields radius 0.
func ComputeBoundingSphere(positions []math3.Vec3, center math3.Vec3) (Sphere, error) {
	if len(positions) == 0 {
		return Sphere{}, fmt.Errorf("bounding sphere: %w", ErrEmptyMesh)
	}
	var maxSq float32
	for _, p := range positions {
		if d := p.DistanceSquared(center); d > maxSq {
			maxSq = d
		}
	}
	return Sphere{Center: center, Radius: math32.Sqrt(maxSq)}, nil
}
