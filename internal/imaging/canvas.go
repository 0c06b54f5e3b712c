package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/ironsheep/shape-color-id/internal/geometry"
)

// Canvas is a mutable copy of a source image that annotations are drawn on.
// The source image is never modified.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img *image.NRGBA
}

// NewCanvas copies src into a new canvas. The canvas keeps src's bounds.
func NewCanvas(src image.Image) *Canvas {
	clone := imaging.Clone(src)
	// imaging.Clone returns a zero-origin copy.
	clone.Rect = src.Bounds()
	return &Canvas{img: clone}
}

// Image returns the canvas contents. The returned image aliases the canvas
// and reflects later drawing.
func (c *Canvas) Image() image.Image {
	return c.img
}

// DrawContour draws the closed outline of ct with the given stroke thickness.
// Each edge is stroked as a band of width thickness with square caps and
// rasterized with golang.org/x/image/vector. Pixels at least half covered by
// the stroke take col; the outline is not antialiased. Pixels outside the
// canvas are clipped.
func (c *Canvas) DrawContour(ct geometry.Contour, col color.Color, thickness int) {
	if len(ct) == 0 {
		return
	}
	if thickness < 1 {
		thickness = 1
	}

	// The rasterizer covers the contour's box grown by the stroke.
	rect := ct.BoundingRect()
	origin := image.Pt(rect.X-thickness, rect.Y-thickness)
	w, h := rect.Width+2*thickness, rect.Height+2*thickness
	r := vector.NewRasterizer(w, h)

	// Odd strokes are centered on the pixel center, even strokes on the
	// pixel corner.
	center := float32(0)
	if thickness%2 == 1 {
		center = 0.5
	}
	half := float32(thickness) / 2
	pt := func(p geometry.Point) (float32, float32) {
		return float32(p.X-origin.X) + center, float32(p.Y-origin.Y) + center
	}

	if len(ct) == 1 {
		x, y := pt(ct[0])
		strokeSegment(r, x, y, x, y, half)
	}
	// A two-point contour is a single segment, not a doubled one.
	segments := len(ct)
	if segments == 2 {
		segments = 1
	}
	for i := 0; i < segments; i++ {
		x0, y0 := pt(ct[i])
		x1, y1 := pt(ct[(i+1)%len(ct)])
		strokeSegment(r, x0, y0, x1, y1, half)
	}

	mask := image.NewAlpha(image.Rectangle{Min: origin, Max: origin.Add(image.Pt(w, h))})
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	area := mask.Bounds().Intersect(c.img.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if mask.AlphaAt(x, y).A >= 0x80 {
				c.img.Set(x, y, col)
			}
		}
	}
}

// DrawLabel writes text with its baseline starting at the given point, the
// way OpenCV's putText anchors text at the bottom-left corner.
func (c *Canvas) DrawLabel(text string, at geometry.Point, col color.Color) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(at.X, at.Y),
	}
	d.DrawString(text)
}

// strokeSegment adds the rectangle of half-width half around the segment
// (x0,y0)-(x1,y1), extended by half past both ends. A zero-length segment
// becomes a square. Every rectangle has the same winding.
func strokeSegment(r *vector.Rasterizer, x0, y0, x1, y1, half float32) {
	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))

	// ux,uy runs along the segment, nx,ny across it.
	ux, uy := half, float32(0)
	if length > 0 {
		ux, uy = dx/length*half, dy/length*half
	}
	nx, ny := -uy, ux

	sx, sy := x0-ux, y0-uy
	ex, ey := x1+ux, y1+uy
	r.MoveTo(sx+nx, sy+ny)
	r.LineTo(ex+nx, ey+ny)
	r.LineTo(ex-nx, ey-ny)
	r.LineTo(sx-nx, sy-ny)
	r.ClosePath()
}
