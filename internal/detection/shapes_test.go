package detection

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/ironsheep/shape-color-id/internal/geometry"
)

// createTestImage creates a solid color test image
func createTestImage(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// fillRect paints the rectangle [x1,x2) x [y1,y2)
func fillRect(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			img.Set(x, y, c)
		}
	}
}

// fillCircle paints a filled disc
func fillCircle(img *image.RGBA, cx, cy, radius int, c color.Color) {
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= radius*radius {
				img.Set(x, y, c)
			}
		}
	}
}

// fillTriangle paints a filled triangle with a horizontal base
func fillTriangle(img *image.RGBA, apexX, apexY, baseY, halfWidth int, c color.Color) {
	height := baseY - apexY
	for y := apexY; y <= baseY; y++ {
		w := halfWidth * (y - apexY) / height
		for x := apexX - w; x <= apexX+w; x++ {
			img.Set(x, y, c)
		}
	}
}

// polygonContour returns the vertices of a regular polygon with one vertex
// pointing up, densified so that every edge has intermediate points.
func polygonContour(sides int, cx, cy, radius float64) geometry.Contour {
	var out geometry.Contour
	for i := 0; i < sides; i++ {
		a0 := -math.Pi/2 + 2*math.Pi*float64(i)/float64(sides)
		a1 := -math.Pi/2 + 2*math.Pi*float64(i+1)/float64(sides)
		x0, y0 := cx+radius*math.Cos(a0), cy+radius*math.Sin(a0)
		x1, y1 := cx+radius*math.Cos(a1), cy+radius*math.Sin(a1)
		for s := 0; s < 10; s++ {
			t := float64(s) / 10
			out = append(out, geometry.Point{
				X: int(math.Round(x0 + t*(x1-x0))),
				Y: int(math.Round(y0 + t*(y1-y0))),
			})
		}
	}
	return out
}

func rectContour(x, y, w, h int) geometry.Contour {
	return geometry.Contour{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}
}

func TestClassifyShape(t *testing.T) {
	tests := []struct {
		name    string
		contour geometry.Contour
		want    Shape
	}{
		{"triangle", polygonContour(3, 100, 100, 60), ShapeTriangle},
		{"square", rectContour(10, 10, 50, 50), ShapeSquare},
		{"near square", rectContour(10, 10, 51, 50), ShapeSquare},
		{"wide rectangle", rectContour(10, 10, 100, 50), ShapeRectangle},
		{"tall rectangle", rectContour(10, 10, 50, 100), ShapeRectangle},
		{"pentagon", polygonContour(5, 100, 100, 60), ShapePentagon},
		{"circle", polygonContour(40, 100, 100, 60), ShapeCircle},
		{"hexagon reported as circle", polygonContour(6, 100, 100, 60), ShapeCircle},
		{"single point", geometry.Contour{{X: 5, Y: 5}}, ShapeUnidentified},
		{"line", geometry.Contour{{X: 0, Y: 0}, {X: 30, Y: 0}}, ShapeUnidentified},
		{"empty", nil, ShapeUnidentified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyShape(tt.contour)
			if got.Shape != tt.want {
				t.Errorf("ClassifyShape() = %s (%d vertices, aspect %.3f), want %s",
					got.Shape, got.Vertices, got.AspectRatio, tt.want)
			}
			if got.Vertices != len(got.Approx) {
				t.Errorf("Vertices = %d, but Approx has %d points", got.Vertices, len(got.Approx))
			}
		})
	}
}

func TestClassifyShape_Deterministic(t *testing.T) {
	c := polygonContour(5, 80, 80, 40)
	first := ClassifyShape(c)
	for i := 0; i < 5; i++ {
		got := ClassifyShape(c)
		if got.Shape != first.Shape || got.Vertices != first.Vertices {
			t.Fatalf("run %d: got %s/%d, want %s/%d", i, got.Shape, got.Vertices, first.Shape, first.Vertices)
		}
	}
}

func TestShapeForVertices(t *testing.T) {
	tests := []struct {
		vertices int
		aspect   float64
		want     Shape
	}{
		{0, 1, ShapeUnidentified},
		{2, 1, ShapeUnidentified},
		{3, 1, ShapeTriangle},
		{4, 0.95, ShapeSquare},
		{4, 1.0, ShapeSquare},
		{4, 1.05, ShapeSquare},
		{4, 0.94, ShapeRectangle},
		{4, 1.06, ShapeRectangle},
		{5, 1, ShapePentagon},
		{6, 1, ShapeCircle},
		{12, 1, ShapeCircle},
	}

	for _, tt := range tests {
		got := ShapeForVertices(tt.vertices, tt.aspect)
		if got != tt.want {
			t.Errorf("ShapeForVertices(%d, %.2f) = %s, want %s", tt.vertices, tt.aspect, got, tt.want)
		}
	}
}
