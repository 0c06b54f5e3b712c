package imaging

import (
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"
)

// Grayscale converts img to an 8-bit luminance image.
//
// bild returns the luminance replicated into an RGBA image; it is copied into
// a single-channel image with the same bounds.
func Grayscale(img image.Image) *image.Gray {
	rgba := effect.Grayscale(img)
	gray := image.NewGray(rgba.Bounds())
	draw.Draw(gray, gray.Bounds(), rgba, rgba.Bounds().Min, draw.Src)
	return gray
}

// Binarize prepares img for contour extraction.
//
// The pipeline is:
//
//  1. Grayscale conversion
//  2. Gaussian blur with the given radius (radius 2 spans a 5x5 window);
//     a radius of 0 disables blurring
//  3. Binary threshold: pixels strictly brighter than level become 255,
//     every other pixel becomes 0
//
// The returned image has the same bounds as img.
func Binarize(img image.Image, level uint8, blurRadius float64) *image.Gray {
	bounds := img.Bounds()
	if level == 255 {
		return image.NewGray(bounds)
	}

	// bild expects zero-origin images.
	if bounds.Min != (image.Point{}) {
		img = imaging.Clone(img)
	}

	var src image.Image = Grayscale(img)
	if blurRadius > 0 {
		src = blur.Gaussian(src, blurRadius)
	}

	// segment.Threshold keeps values >= its level.
	out := segment.Threshold(src, level+1)
	out.Rect = bounds
	return out
}
