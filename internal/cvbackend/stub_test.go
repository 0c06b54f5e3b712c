//go:build !gocv

package cvbackend

import (
	"errors"
	"image"
	"testing"
)

func TestStub_Unavailable(t *testing.T) {
	if _, err := NewContourSource(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("NewContourSource() error = %v, want ErrUnavailable", err)
	}
	if _, err := NewWindow(WindowTitle); !errors.Is(err, ErrUnavailable) {
		t.Errorf("NewWindow() error = %v, want ErrUnavailable", err)
	}

	var s ContourSource
	if _, err := s.Contours(image.NewGray(image.Rect(0, 0, 1, 1))); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Contours() error = %v, want ErrUnavailable", err)
	}
}
