//go:build gocv

package cvbackend

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/shape-color-id/internal/detection"
)

func createTestImage(width, height int, bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, bg)
		}
	}
	return img
}

func fillRect(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			img.Set(x, y, c)
		}
	}
}

func TestContourSource_BlackSquareOnWhite(t *testing.T) {
	img := createTestImage(200, 200, color.White)
	fillRect(img, 70, 70, 130, 130, color.Black)

	src, err := NewContourSource()
	if err != nil {
		t.Fatalf("NewContourSource() error = %v", err)
	}
	contours, err := src.Contours(img)
	if err != nil {
		t.Fatalf("Contours() error = %v", err)
	}
	if len(contours) != 1 {
		t.Fatalf("expected 1 contour, got %d", len(contours))
	}
	if got := detection.ClassifyShape(contours[0]).Shape; got != detection.ShapeSquare {
		t.Errorf("shape = %s, want Square", got)
	}
}

func TestContourSource_MatchesNative(t *testing.T) {
	img := createTestImage(240, 200, color.Black)
	fillRect(img, 20, 40, 120, 90, color.RGBA{0, 255, 0, 255})
	fillRect(img, 150, 120, 210, 180, color.White)

	src, _ := NewContourSource()
	cv, err := src.Contours(img)
	if err != nil {
		t.Fatalf("Contours() error = %v", err)
	}
	native, err := detection.NewContourFinder().Contours(img)
	if err != nil {
		t.Fatalf("native Contours() error = %v", err)
	}

	if len(cv) != len(native) {
		t.Fatalf("OpenCV found %d contours, native found %d", len(cv), len(native))
	}
	for i := range cv {
		a := detection.ClassifyShape(cv[i]).Shape
		b := detection.ClassifyShape(native[i]).Shape
		if a != b {
			t.Errorf("contour %d: OpenCV %s, native %s", i, a, b)
		}
	}
}

func TestContourSource_DarkOnLight(t *testing.T) {
	img := createTestImage(40, 40, color.White)
	fillRect(img, 10, 10, 30, 30, color.Black)

	src, _ := NewContourSource()
	contours, err := src.Contours(img)
	if err != nil {
		t.Fatalf("Contours() error = %v", err)
	}
	if len(contours) != 1 {
		t.Errorf("dark square on light background: expected 1 contour, got %d", len(contours))
	}
}

func TestContourSource_EmptyImage(t *testing.T) {
	src, _ := NewContourSource()
	contours, err := src.Contours(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	if err == nil {
		t.Fatalf("expected an error for an empty image, got %d contours", len(contours))
	}
}
