// Package geometry holds the integer contour type and the polygon arithmetic
// used to classify it: moments, centroid, arc length, bounding box and
// Douglas-Peucker simplification.
//
// Coordinates follow the image convention: origin at the top-left, X grows
// rightward, Y grows downward.
package geometry

import (
	"image"
	"math"
)

// degenerateArea is the |m00| below which a contour is treated as having no area.
const degenerateArea = 1e-9

// Point represents a 2D coordinate in pixel space.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// ImagePoint converts p to an image.Point.
func (p Point) ImagePoint() image.Point {
	return image.Pt(p.X, p.Y)
}

// Rect is an axis-aligned bounding box using the OpenCV convention:
// Width and Height count pixels, so a single point has size 1x1.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AspectRatio returns Width / Height, or 0 for an empty rect.
func (r Rect) AspectRatio() float64 {
	if r.Height == 0 {
		return 0
	}
	return float64(r.Width) / float64(r.Height)
}

// Contains reports whether p lies inside the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Moments are the raw spatial moments of a closed polygon.
type Moments struct {
	M00 float64 // area
	M10 float64
	M01 float64
}

// Contour is an ordered, implicitly closed boundary of a connected region.
// Consumers never modify a contour in place.
type Contour []Point

// Moments computes the polygon moments of the closed contour using Green's
// theorem. The sign is normalized so M00 is never negative, whatever the
// winding direction of the points.
func (c Contour) Moments() Moments {
	var m Moments
	n := len(c)
	if n < 3 {
		return m
	}
	for i := 0; i < n; i++ {
		p := c[i]
		q := c[(i+1)%n]
		cross := float64(p.X*q.Y - q.X*p.Y)
		m.M00 += cross
		m.M10 += float64(p.X+q.X) * cross
		m.M01 += float64(p.Y+q.Y) * cross
	}
	m.M00 /= 2
	m.M10 /= 6
	m.M01 /= 6
	if m.M00 < 0 {
		m.M00, m.M10, m.M01 = -m.M00, -m.M10, -m.M01
	}
	return m
}

// Area returns the enclosed polygon area.
func (c Contour) Area() float64 {
	return c.Moments().M00
}

// Centroid returns the area-weighted center of the contour rounded to the
// nearest pixel.
//
// A degenerate contour (a point, a segment, collinear points) has no area;
// its centroid is the rounded mean of its points instead. An empty contour
// yields (0,0).
func (c Contour) Centroid() Point {
	if len(c) == 0 {
		return Point{}
	}
	m := c.Moments()
	if math.Abs(m.M00) < degenerateArea {
		return c.meanPoint()
	}
	return Point{
		X: int(math.Round(m.M10 / m.M00)),
		Y: int(math.Round(m.M01 / m.M00)),
	}
}

func (c Contour) meanPoint() Point {
	var sx, sy float64
	for _, p := range c {
		sx += float64(p.X)
		sy += float64(p.Y)
	}
	n := float64(len(c))
	return Point{X: int(math.Round(sx / n)), Y: int(math.Round(sy / n))}
}

// ArcLength returns the perimeter of the contour. When closed is true the
// segment from the last point back to the first is included.
func (c Contour) ArcLength(closed bool) float64 {
	if len(c) < 2 {
		return 0
	}
	var length float64
	for i := 1; i < len(c); i++ {
		length += distance(c[i-1], c[i])
	}
	if closed {
		length += distance(c[len(c)-1], c[0])
	}
	return length
}

// BoundingRect returns the smallest upright rectangle containing every point.
func (c Contour) BoundingRect() Rect {
	if len(c) == 0 {
		return Rect{}
	}
	minX, minY := c[0].X, c[0].Y
	maxX, maxY := c[0].X, c[0].Y
	for _, p := range c[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX + 1, Height: maxY - minY + 1}
}

// ImagePoints converts the contour to a slice of image.Point.
func (c Contour) ImagePoints() []image.Point {
	pts := make([]image.Point, len(c))
	for i, p := range c {
		pts[i] = p.ImagePoint()
	}
	return pts
}

// FromImagePoints builds a contour from image points.
func FromImagePoints(pts []image.Point) Contour {
	c := make(Contour, len(pts))
	for i, p := range pts {
		c[i] = Point{X: p.X, Y: p.Y}
	}
	return c
}

func distance(a, b Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}
