// Package detection finds shapes in an image and labels their shape and color.
//
// It provides three pieces that the pipeline composes:
//
//   - ContourFinder: extracts the external contours of the regions in an
//     image (pure Go, no native dependencies)
//   - ClassifyShape: approximates a contour with a polygon and names it from
//     its vertex count
//   - ColorLabeler: averages the pixels inside a contour and names the
//     nearest palette color
//
// # Contour Extraction
//
// The image is converted to grayscale, blurred with a 5x5 Gaussian window and
// thresholded at ThresholdLevel. Pixels strictly brighter than the level form
// the foreground. When most of the image border is foreground the image is
// assumed to show dark shapes on a light background and the binary image is
// inverted, so a black square on white paper is found the same way as a white
// square on a black table.
//
// Only external contours are returned: holes, and regions nested inside the
// holes of other regions, are ignored. Contours are returned in raster order
// of their top-left-most pixel and are compressed so that straight runs keep
// only their endpoints.
//
// # Shape Labels
//
// The polygon approximation tolerance is ApproxEpsilonRatio of the contour's
// perimeter. Vertex counts map to labels:
//
//	3      Triangle
//	4      Square (aspect ratio 0.95 to 1.05) or Rectangle
//	5      Pentagon
//	6+     Circle
//	< 3    Unidentified
//
// # Color Labels
//
// Colors are compared in CIE Lab space using go-colorful. The default palette
// holds Red, Green, Blue, Yellow, Orange, Purple, Cyan, Black, White and Gray.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
package detection
