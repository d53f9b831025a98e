package model

import (
	"fmt"
	"math"
)

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BBox represents an axis-aligned bounding box. The coordinates are the
// box edges as reported by the layout pass, not a corner plus extent:
// reconstruction groups fragments by exact edge values, so the edges are
// stored verbatim rather than derived from a width or height.
//
// Invariant: X0 <= X1 and Y0 <= Y1.
type BBox struct {
	X0 float64 // Left
	Y0 float64 // Bottom (page coordinate system, Y grows upward)
	X1 float64 // Right
	Y1 float64 // Top
}

// NewBBox creates a bounding box, ordering the coordinates so the
// invariant holds.
func NewBBox(x0, y0, x1, y1 float64) BBox {
	return BBox{
		X0: math.Min(x0, x1),
		Y0: math.Min(y0, y1),
		X1: math.Max(x0, x1),
		Y1: math.Max(y0, y1),
	}
}

// NewBBoxFromPoints creates a bounding box spanning two points
func NewBBoxFromPoints(p1, p2 Point) BBox {
	return NewBBox(p1.X, p1.Y, p2.X, p2.Y)
}

// Width returns the horizontal extent
func (b BBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the vertical extent
func (b BBox) Height() float64 {
	return b.Y1 - b.Y0
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: (b.X0 + b.X1) / 2,
		Y: (b.Y0 + b.Y1) / 2,
	}
}

// Contains checks if a point is inside the bounding box
func (b BBox) Contains(p Point) bool {
	return p.X >= b.X0 && p.X <= b.X1 &&
		p.Y >= b.Y0 && p.Y <= b.Y1
}

// Intersects checks if two bounding boxes intersect
func (b BBox) Intersects(other BBox) bool {
	return !(b.X1 < other.X0 ||
		b.X0 > other.X1 ||
		b.Y1 < other.Y0 ||
		b.Y0 > other.Y1)
}

// Intersection returns the intersection of two bounding boxes
func (b BBox) Intersection(other BBox) BBox {
	if !b.Intersects(other) {
		return BBox{}
	}

	return BBox{
		X0: math.Max(b.X0, other.X0),
		Y0: math.Max(b.Y0, other.Y0),
		X1: math.Min(b.X1, other.X1),
		Y1: math.Min(b.Y1, other.Y1),
	}
}

// Union returns the union of two bounding boxes
func (b BBox) Union(other BBox) BBox {
	return BBox{
		X0: math.Min(b.X0, other.X0),
		Y0: math.Min(b.Y0, other.Y0),
		X1: math.Max(b.X1, other.X1),
		Y1: math.Max(b.Y1, other.Y1),
	}
}

// Area returns the area of the bounding box
func (b BBox) Area() float64 {
	return b.Width() * b.Height()
}

// IsEmpty returns true if the bounding box has zero area
func (b BBox) IsEmpty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// IsValid returns true if the edges are correctly ordered
func (b BBox) IsValid() bool {
	return b.X0 <= b.X1 && b.Y0 <= b.Y1
}

// Edge selects one of the four bounding box edges. Grouping, header
// location, and table building are all parameterized over edges, which
// is what lets a single builder serve both row and column tables.
type Edge int

const (
	EdgeX0 Edge = iota // Left
	EdgeY0             // Bottom
	EdgeX1             // Right
	EdgeY1             // Top
)

// Of returns the coordinate of the selected edge.
func (e Edge) Of(b BBox) float64 {
	switch e {
	case EdgeX0:
		return b.X0
	case EdgeY0:
		return b.Y0
	case EdgeX1:
		return b.X1
	case EdgeY1:
		return b.Y1
	default:
		panic(fmt.Sprintf("invalid edge %d", int(e)))
	}
}

func (e Edge) String() string {
	switch e {
	case EdgeX0:
		return "x0"
	case EdgeY0:
		return "y0"
	case EdgeX1:
		return "x1"
	case EdgeY1:
		return "y1"
	default:
		return fmt.Sprintf("Edge(%d)", int(e))
	}
}
