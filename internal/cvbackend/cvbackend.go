// Package cvbackend provides an OpenCV implementation of the pipeline's
// contour source and display, backed by gocv.
//
// OpenCV is a native dependency, so the implementation is only compiled with
// the gocv build tag:
//
//	go build -tags gocv ./cmd/shapeid
//
// Without the tag every constructor returns ErrUnavailable and the native
// pure-Go backend must be used instead.
//
// The OpenCV contour source mirrors detection.ContourFinder: grayscale,
// 5x5 Gaussian blur, binary threshold above detection.ThresholdLevel, the
// same border polarity rule, then external contours with simple chain
// approximation, returned in raster order of their first point.
package cvbackend

import "errors"

// ErrUnavailable is returned when the binary was built without OpenCV
// support.
var ErrUnavailable = errors.New("OpenCV backend not available: rebuild with -tags gocv")

// WindowTitle is the title of the display window.
const WindowTitle = "Image"
