package detection

import (
	"github.com/ironsheep/shape-color-id/internal/geometry"
)

// Shape is the label assigned to a contour by ClassifyShape.
type Shape string

// Shape labels. The set is closed.
const (
	ShapeTriangle     Shape = "Triangle"
	ShapeSquare       Shape = "Square"
	ShapeRectangle    Shape = "Rectangle"
	ShapePentagon     Shape = "Pentagon"
	ShapeCircle       Shape = "Circle"
	ShapeUnidentified Shape = "Unidentified"
)

// Classification thresholds.
const (
	// ApproxEpsilonRatio is the polygon approximation tolerance as a fraction
	// of the contour's perimeter.
	ApproxEpsilonRatio = 0.04

	// SquareAspectMin and SquareAspectMax bound the width/height ratio of a
	// four-vertex polygon that is reported as a square (inclusive).
	SquareAspectMin = 0.95
	SquareAspectMax = 1.05
)

// ShapeResult describes how a contour was classified.
type ShapeResult struct {
	// Shape is the assigned label.
	Shape Shape `json:"shape"`

	// Vertices is the vertex count of the approximated polygon.
	Vertices int `json:"vertices"`

	// AspectRatio is width/height of the approximated polygon's bounding box.
	AspectRatio float64 `json:"aspect_ratio"`

	// Approx is the approximated polygon the decision was based on.
	Approx geometry.Contour `json:"-"`
}

// ClassifyShape approximates the contour with a tolerance of
// ApproxEpsilonRatio of its perimeter and labels it from the resulting vertex
// count.
//
// # Rules
//
//   - 3 vertices: Triangle
//   - 4 vertices: Square when the bounding box aspect ratio lies within
//     [SquareAspectMin, SquareAspectMax], Rectangle otherwise
//   - 5 vertices: Pentagon
//   - 6 or more vertices: Circle
//   - fewer than 3 vertices (points, lines): Unidentified
//
// Anything rounder than a pentagon is treated as a circle, so hexagons and
// other many-sided polygons are reported as circles.
//
// ClassifyShape is deterministic: the same contour always yields the same
// result.
func ClassifyShape(c geometry.Contour) ShapeResult {
	epsilon := ApproxEpsilonRatio * c.ArcLength(true)
	approx := c.Approximate(epsilon)
	aspect := approx.BoundingRect().AspectRatio()

	return ShapeResult{
		Shape:       ShapeForVertices(len(approx), aspect),
		Vertices:    len(approx),
		AspectRatio: aspect,
		Approx:      approx,
	}
}

// ShapeForVertices applies the vertex-count rule used by ClassifyShape.
// aspect is only consulted for four vertices.
func ShapeForVertices(vertices int, aspect float64) Shape {
	switch {
	case vertices < 3:
		return ShapeUnidentified
	case vertices == 3:
		return ShapeTriangle
	case vertices == 4:
		if aspect >= SquareAspectMin && aspect <= SquareAspectMax {
			return ShapeSquare
		}
		return ShapeRectangle
	case vertices == 5:
		return ShapePentagon
	default:
		return ShapeCircle
	}
}
