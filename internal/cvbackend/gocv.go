//go:build gocv

package cvbackend

import (
	"fmt"
	"image"
	"sort"

	"gocv.io/x/gocv"

	"github.com/ironsheep/shape-color-id/internal/detection"
	"github.com/ironsheep/shape-color-id/internal/geometry"
)

// ContourSource extracts external contours with OpenCV.
type ContourSource struct{}

// NewContourSource creates an OpenCV contour source.
func NewContourSource() (*ContourSource, error) {
	return &ContourSource{}, nil
}

// Contours returns the external contours of img.
func (s *ContourSource) Contours(img image.Image) ([]geometry.Contour, error) {
	bgr, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image to mat: %w", err)
	}
	defer bgr.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	if err := gocv.CvtColor(bgr, &gray, gocv.ColorBGRToGray); err != nil {
		return nil, fmt.Errorf("failed to convert to grayscale: %w", err)
	}

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(gray, &blurred, image.Point{X: 5, Y: 5}, 0, 0, gocv.BorderDefault)

	binary := gocv.NewMat()
	defer binary.Close()
	gocv.Threshold(blurred, &binary, float32(detection.ThresholdLevel), 255, gocv.ThresholdBinary)
	if binary.Empty() {
		return nil, fmt.Errorf("failed to threshold image: empty result")
	}

	if borderMostlySet(binary) {
		if err := gocv.BitwiseNot(binary, &binary); err != nil {
			return nil, fmt.Errorf("failed to invert binary image: %w", err)
		}
	}

	found := gocv.FindContours(binary, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer found.Close()

	origin := img.Bounds().Min
	contours := make([]geometry.Contour, 0, found.Size())
	for i := 0; i < found.Size(); i++ {
		pts := found.At(i).ToPoints()
		if len(pts) == 0 {
			continue
		}
		c := geometry.FromImagePoints(pts)
		for j := range c {
			c[j].X += origin.X
			c[j].Y += origin.Y
		}
		contours = append(contours, c)
	}

	// OpenCV reports contours in reverse discovery order.
	sort.SliceStable(contours, func(i, j int) bool {
		a, b := contours[i][0], contours[j][0]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	return contours, nil
}

// borderMostlySet reports whether more than half of the outermost pixels of
// the single-channel mat are non-zero.
func borderMostlySet(m gocv.Mat) bool {
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return false
	}

	set, total := 0, 0
	count := func(r, c int) {
		total++
		if m.GetUCharAt(r, c) != 0 {
			set++
		}
	}
	for c := 0; c < cols; c++ {
		count(0, c)
		if rows > 1 {
			count(rows-1, c)
		}
	}
	for r := 1; r < rows-1; r++ {
		count(r, 0)
		if cols > 1 {
			count(r, cols-1)
		}
	}
	return set*2 > total
}

// Window shows frames in an OpenCV HighGUI window.
type Window struct {
	win *gocv.Window
}

// NewWindow opens a window with the given title.
func NewWindow(title string) (*Window, error) {
	return &Window{win: gocv.NewWindow(title)}, nil
}

// Show displays frame.
func (w *Window) Show(frame image.Image) error {
	mat, err := gocv.ImageToMatRGB(frame)
	if err != nil {
		return fmt.Errorf("failed to convert frame to mat: %w", err)
	}
	defer mat.Close()

	if err := w.win.IMShow(mat); err != nil {
		return fmt.Errorf("failed to show frame: %w", err)
	}
	return nil
}

// Wait blocks until a key is pressed in the window.
func (w *Window) Wait() error {
	w.win.WaitKey(0)
	return nil
}

// Close destroys the window.
func (w *Window) Close() error {
	return w.win.Close()
}
