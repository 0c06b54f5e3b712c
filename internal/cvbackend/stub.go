//go:build !gocv

package cvbackend

import (
	"image"

	"github.com/ironsheep/shape-color-id/internal/geometry"
)

// ContourSource is a placeholder when OpenCV is not compiled in.
type ContourSource struct{}

// NewContourSource returns ErrUnavailable.
func NewContourSource() (*ContourSource, error) {
	return nil, ErrUnavailable
}

// Contours returns ErrUnavailable.
func (s *ContourSource) Contours(image.Image) ([]geometry.Contour, error) {
	return nil, ErrUnavailable
}

// Window is a placeholder when OpenCV is not compiled in.
type Window struct{}

// NewWindow returns ErrUnavailable.
func NewWindow(string) (*Window, error) {
	return nil, ErrUnavailable
}

// Show returns ErrUnavailable.
func (w *Window) Show(image.Image) error { return ErrUnavailable }

// Wait returns ErrUnavailable.
func (w *Window) Wait() error { return ErrUnavailable }

// Close is a no-op.
func (w *Window) Close() error { return nil }
