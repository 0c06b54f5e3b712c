package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"
	"gonum.org/v1/gonum/stat"

	"github.com/ironsheep/shape-color-id/internal/geometry"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// MeanColorResult is the average color of a masked region.
type MeanColorResult struct {
	// Color is the mean in sRGB, components in [0, 1].
	Color colorful.Color `json:"-"`

	Hex string   `json:"hex"` // Hex format "#RRGGBB"
	RGB RGBColor `json:"rgb"`
	HSL HSLColor `json:"hsl"`

	// Weight is the total mask coverage that contributed, in pixels.
	Weight float64 `json:"weight"`
}

// FillMask rasterizes the closed contour into an alpha mask covering the
// contour's bounding box. Each pixel's alpha is the fraction of the pixel
// covered by the polygon through the contour's pixel centers, so interior
// pixels are fully opaque and boundary pixels partially so.
//
// Degenerate contours (points, segments) enclose nothing and yield a mask
// with every alpha at zero.
func FillMask(c geometry.Contour) *image.Alpha {
	if len(c) == 0 {
		return image.NewAlpha(image.Rectangle{})
	}

	rect := c.BoundingRect()
	mask := image.NewAlpha(image.Rect(rect.X, rect.Y, rect.X+rect.Width, rect.Y+rect.Height))
	if len(c) < 3 {
		return mask
	}

	r := vector.NewRasterizer(rect.Width, rect.Height)
	px := func(p geometry.Point) (float32, float32) {
		return float32(p.X-rect.X) + 0.5, float32(p.Y-rect.Y) + 0.5
	}
	r.MoveTo(px(c[0]))
	for _, p := range c[1:] {
		r.LineTo(px(p))
	}
	r.ClosePath()
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return mask
}

// PointMask marks exactly the contour's own pixels. It is the fallback mask
// for contours that enclose no area.
func PointMask(c geometry.Contour) *image.Alpha {
	if len(c) == 0 {
		return image.NewAlpha(image.Rectangle{})
	}
	rect := c.BoundingRect()
	mask := image.NewAlpha(image.Rect(rect.X, rect.Y, rect.X+rect.Width, rect.Y+rect.Height))
	for _, p := range c {
		mask.SetAlpha(p.X, p.Y, color.Alpha{A: 0xFF})
	}
	return mask
}

// MeanColor averages the pixels of img under mask, weighting each pixel by
// its mask coverage. Pixels of the mask outside img's bounds are ignored.
//
// The second return value is false when no pixel contributed.
func MeanColor(img image.Image, mask *image.Alpha) (*MeanColorResult, bool) {
	region := mask.Bounds().Intersect(img.Bounds())
	if region.Empty() {
		return nil, false
	}

	n := region.Dx() * region.Dy()
	rs := make([]float64, 0, n)
	gs := make([]float64, 0, n)
	bs := make([]float64, 0, n)
	weights := make([]float64, 0, n)
	total := 0.0

	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			a := mask.AlphaAt(x, y).A
			if a == 0 {
				continue
			}
			w := float64(a) / 255
			r, g, b, _ := img.At(x, y).RGBA()
			rs = append(rs, float64(r>>8))
			gs = append(gs, float64(g>>8))
			bs = append(bs, float64(b>>8))
			weights = append(weights, w)
			total += w
		}
	}

	if total == 0 {
		return nil, false
	}

	mean := colorful.Color{
		R: stat.Mean(rs, weights) / 255,
		G: stat.Mean(gs, weights) / 255,
		B: stat.Mean(bs, weights) / 255,
	}
	return newMeanColorResult(mean, total), true
}

func newMeanColorResult(c colorful.Color, weight float64) *MeanColorResult {
	c = c.Clamped()
	h, s, l := c.Hsl()
	r8, g8, b8 := c.RGB255()
	if math.IsNaN(h) {
		h = 0
	}
	return &MeanColorResult{
		Color:  c,
		Hex:    toUpperHex(c.Hex()),
		RGB:    RGBColor{R: r8, G: g8, B: b8},
		HSL:    HSLColor{H: int(math.Round(h)) % 360, S: int(math.Round(s * 100)), L: int(math.Round(l * 100))},
		Weight: weight,
	}
}

// toUpperHex turns go-colorful's lower-case "#rrggbb" into "#RRGGBB".
func toUpperHex(hex string) string {
	b := []byte(hex)
	for i, ch := range b {
		if ch >= 'a' && ch <= 'f' {
			b[i] = ch - 'a' + 'A'
		}
	}
	return string(b)
}
