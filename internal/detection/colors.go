package detection

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/shape-color-id/internal/geometry"
	"github.com/ironsheep/shape-color-id/internal/imaging"
)

// PaletteEntry is a named reference color.
type PaletteEntry struct {
	Name  string
	Color colorful.Color
}

// DefaultPalette is the fixed set of labels a region's color is mapped to.
// Order matters only for ties, where the earlier entry wins.
var DefaultPalette = []PaletteEntry{
	{Name: "Red", Color: mustHex("#FF0000")},
	{Name: "Green", Color: mustHex("#00FF00")},
	{Name: "Blue", Color: mustHex("#0000FF")},
	{Name: "Yellow", Color: mustHex("#FFFF00")},
	{Name: "Orange", Color: mustHex("#FFA500")},
	{Name: "Purple", Color: mustHex("#800080")},
	{Name: "Cyan", Color: mustHex("#00FFFF")},
	{Name: "Black", Color: mustHex("#000000")},
	{Name: "White", Color: mustHex("#FFFFFF")},
	{Name: "Gray", Color: mustHex("#808080")},
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ColorResult is the outcome of sampling a contour's color.
type ColorResult struct {
	// Name is the nearest palette entry.
	Name string `json:"name"`

	// Mean is the average color inside the contour.
	Mean imaging.MeanColorResult `json:"mean"`

	// Distance is the CIE Lab distance from Mean to the palette entry.
	Distance float64 `json:"distance"`
}

// ColorLabeler maps region colors to the nearest entry of a palette.
type ColorLabeler struct {
	palette []PaletteEntry
}

// NewColorLabeler creates a labeler for palette. An empty palette selects
// DefaultPalette.
func NewColorLabeler(palette []PaletteEntry) *ColorLabeler {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &ColorLabeler{palette: palette}
}

// Label returns the palette entry closest to c by CIE Lab distance together
// with that distance.
func (l *ColorLabeler) Label(c colorful.Color) (string, float64) {
	best := ""
	bestDist := math.Inf(1)
	for _, entry := range l.palette {
		if d := c.DistanceLab(entry.Color); d < bestDist {
			best = entry.Name
			bestDist = d
		}
	}
	return best, bestDist
}

// Sample estimates the color of the region enclosed by c in img.
//
// The contour is filled into a coverage mask and the mean of the masked
// pixels is labeled with the nearest palette color. Contours that enclose no
// area (points, lines) are sampled along their own pixels instead. If no
// pixel of the contour lies inside img the mean is black.
func (l *ColorLabeler) Sample(img image.Image, c geometry.Contour) ColorResult {
	mean, ok := imaging.MeanColor(img, imaging.FillMask(c))
	if !ok {
		mean, ok = imaging.MeanColor(img, imaging.PointMask(c))
	}
	if !ok {
		mean = &imaging.MeanColorResult{Hex: "#000000"}
	}

	name, dist := l.Label(mean.Color)
	return ColorResult{
		Name:     name,
		Mean:     *mean,
		Distance: dist,
	}
}
