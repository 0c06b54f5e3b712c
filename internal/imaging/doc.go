// Package imaging provides the pixel-level operations behind shape and color
// identification: loading and saving images, binarization, region masks,
// mean color sampling and annotation drawing.
//
// All operations work with standard Go image.Image types and use a coordinate
// system where (0,0) is at the top-left corner, X increases rightward, and Y
// increases downward. Results keep the bounds of their source image, so
// coordinates found on a binarized image can be used directly on the original.
//
// # Binarization
//
// Binarize follows the classic contour-detection preparation:
//
//  1. Grayscale conversion (bild effect.Grayscale)
//  2. Gaussian blur to suppress noise (bild blur.Gaussian)
//  3. Binary threshold (bild segment.Threshold)
//
// # Color Sampling
//
// FillMask rasterizes a contour into an alpha mask with golang.org/x/image/vector.
// MeanColor averages the masked pixels weighted by coverage, so partially
// covered boundary pixels count for less than interior pixels.
//
// Colors are reported in several formats:
//   - Hex: 6-character format "#RRGGBB" (alpha excluded)
//   - RGB: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// # Annotation
//
// Canvas is a private copy of the source image that outlines and labels are
// drawn on. Text uses the fixed 7x13 bitmap face from golang.org/x/image.
//
// # Error Handling
//
// Load wraps every failure in ErrImageLoad so callers can tell a bad input
// path from other errors with errors.Is.
package imaging
