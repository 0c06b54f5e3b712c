package detection

import (
	"image"
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/shape-color-id/internal/geometry"
)

func TestColorLabeler_Label(t *testing.T) {
	labeler := NewColorLabeler(nil)

	tests := []struct {
		hex  string
		want string
	}{
		{"#FF0000", "Red"},
		{"#00FF00", "Green"},
		{"#0000FF", "Blue"},
		{"#FFFF00", "Yellow"},
		{"#FFA500", "Orange"},
		{"#800080", "Purple"},
		{"#00FFFF", "Cyan"},
		{"#000000", "Black"},
		{"#FFFFFF", "White"},
		{"#808080", "Gray"},
		{"#F01010", "Red"},
		{"#10E010", "Green"},
		{"#202020", "Black"},
		{"#F8F8F8", "White"},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			c, err := colorful.Hex(tt.hex)
			if err != nil {
				t.Fatalf("invalid hex %q: %v", tt.hex, err)
			}
			got, dist := labeler.Label(c)
			if got != tt.want {
				t.Errorf("Label(%s) = %s, want %s", tt.hex, got, tt.want)
			}
			if dist < 0 {
				t.Errorf("distance should not be negative, got %f", dist)
			}
		})
	}
}

func TestColorLabeler_ExactMatchHasZeroDistance(t *testing.T) {
	labeler := NewColorLabeler(nil)
	for _, entry := range DefaultPalette {
		name, dist := labeler.Label(entry.Color)
		if name != entry.Name {
			t.Errorf("Label(%s) = %s", entry.Name, name)
		}
		if dist > 1e-9 {
			t.Errorf("Label(%s) distance = %f, want 0", entry.Name, dist)
		}
	}
}

func TestColorLabeler_CustomPalette(t *testing.T) {
	labeler := NewColorLabeler([]PaletteEntry{
		{Name: "Dark", Color: colorful.Color{R: 0, G: 0, B: 0}},
		{Name: "Light", Color: colorful.Color{R: 1, G: 1, B: 1}},
	})

	got, _ := labeler.Label(colorful.Color{R: 0.9, G: 0.2, B: 0.2})
	if got != "Dark" && got != "Light" {
		t.Errorf("Label returned %q, which is not in the palette", got)
	}
	if got, _ := labeler.Label(colorful.Color{R: 0.95, G: 0.95, B: 0.95}); got != "Light" {
		t.Errorf("near white: got %s, want Light", got)
	}
}

func TestColorLabeler_Sample(t *testing.T) {
	img := createTestImage(100, 100, color.Black)
	fillRect(img, 20, 20, 80, 80, color.RGBA{255, 0, 0, 255})
	labeler := NewColorLabeler(nil)

	t.Run("filled region", func(t *testing.T) {
		got := labeler.Sample(img, rectContour(20, 20, 59, 59))
		if got.Name != "Red" {
			t.Errorf("Sample() = %s (mean %s), want Red", got.Name, got.Mean.Hex)
		}
	})

	t.Run("degenerate contour samples its own pixels", func(t *testing.T) {
		got := labeler.Sample(img, geometry.Contour{{X: 50, Y: 50}})
		if got.Name != "Red" {
			t.Errorf("Sample() = %s, want Red", got.Name)
		}
	})

	t.Run("contour outside the image", func(t *testing.T) {
		got := labeler.Sample(img, geometry.Contour{{X: 500, Y: 500}})
		if got.Name != "Black" {
			t.Errorf("Sample() = %s, want Black", got.Name)
		}
	})

	t.Run("offset image", func(t *testing.T) {
		sub := img.SubImage(image.Rect(20, 20, 80, 80))
		got := labeler.Sample(sub, rectContour(30, 30, 20, 20))
		if got.Name != "Red" {
			t.Errorf("Sample() = %s, want Red", got.Name)
		}
	})
}
