package pipeline

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/shape-color-id/internal/detection"
	"github.com/ironsheep/shape-color-id/internal/geometry"
	"github.com/ironsheep/shape-color-id/internal/imaging"
)

// Annotation styling.
var (
	OutlineColor     = color.RGBA{0, 255, 0, 255}
	LabelColor       = color.RGBA{255, 255, 255, 255}
	OutlineThickness = 2
)

// ContourSource extracts the external contours of the shapes in an image.
type ContourSource interface {
	Contours(img image.Image) ([]geometry.Contour, error)
}

// Compositor draws annotations onto a private copy of the source image.
type Compositor interface {
	DrawContour(c geometry.Contour, col color.Color, thickness int)
	DrawLabel(text string, at geometry.Point, col color.Color)
	Image() image.Image
}

// Display presents the annotated image after each detection.
type Display interface {
	// Show presents the current frame.
	Show(frame image.Image) error

	// Wait blocks until the user acknowledges the frame.
	Wait() error
}

// Pipeline runs detection over one image at a time.
type Pipeline struct {
	// Source extracts contours. Required.
	Source ContourSource

	// Display presents each annotated frame. Nil means NopDisplay.
	Display Display

	// Labeler names region colors. Nil means the default palette.
	Labeler *detection.ColorLabeler

	// NewCompositor creates the annotation canvas. Nil means imaging.NewCanvas.
	NewCompositor func(src image.Image) Compositor

	// Out receives the report lines. Nil means os.Stdout.
	Out io.Writer

	// Log receives diagnostics. Nil means a logger that discards output.
	Log logrus.FieldLogger
}

// New creates a pipeline that reads contours from source, shows frames on
// display and writes report lines to out.
func New(source ContourSource, display Display, out io.Writer) *Pipeline {
	return &Pipeline{
		Source:  source,
		Display: display,
		Out:     out,
	}
}

func (p *Pipeline) display() Display {
	if p.Display == nil {
		return NopDisplay{}
	}
	return p.Display
}

func (p *Pipeline) labeler() *detection.ColorLabeler {
	if p.Labeler == nil {
		return detection.NewColorLabeler(nil)
	}
	return p.Labeler
}

func (p *Pipeline) compositor(src image.Image) Compositor {
	if p.NewCompositor == nil {
		return imaging.NewCanvas(src)
	}
	return p.NewCompositor(src)
}

func (p *Pipeline) out() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

func (p *Pipeline) log() logrus.FieldLogger {
	if p.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		return l
	}
	return p.Log
}

// Run loads the image at imagePath, reports every detected shape and, when
// outputPath is not empty, saves the annotated image there.
//
// A missing or undecodable image is reported as an error wrapping
// imaging.ErrImageLoad before any detection happens.
func (p *Pipeline) Run(imagePath, outputPath string) (*Report, error) {
	img, info, err := imaging.Load(imagePath)
	if err != nil {
		return nil, err
	}
	p.log().WithFields(logrus.Fields{
		"path":   info.Path,
		"width":  info.Width,
		"height": info.Height,
		"format": info.Format,
	}).Debug("Image loaded")

	report, annotated, err := p.Process(img)
	if err != nil {
		return nil, err
	}
	report.Image = info.Path

	if outputPath != "" {
		if err := imaging.Save(annotated, outputPath); err != nil {
			return report, err
		}
		p.log().WithField("path", outputPath).Info("Annotated image saved")
	}

	return report, nil
}

// Process detects, labels and annotates every contour of img in the order the
// contour source returns them. It returns the report and the final annotated
// image. img itself is never modified, and colors are always sampled from it
// rather than from the annotated copy.
//
// For each contour, in order:
//
//  1. Centroid from the contour's moments
//  2. Shape from the approximated polygon
//  3. Color from the mean of the enclosed pixels
//  4. Outline and "<Color> <Shape>" label drawn at the centroid
//  5. Report line "<n>. <Color> <Shape> at (<x>,<y>)" written
//  6. Frame shown and acknowledged on the display
//
// An image without contours produces an empty report and no output lines.
func (p *Pipeline) Process(img image.Image) (*Report, image.Image, error) {
	if p.Source == nil {
		return nil, nil, fmt.Errorf("failed to process image: no contour source configured")
	}

	contours, err := p.Source.Contours(img)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to extract contours: %w", err)
	}

	bounds := img.Bounds()
	report := &Report{
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		Detections: make([]Detection, 0, len(contours)),
	}

	canvas := p.compositor(img)
	labeler := p.labeler()
	display := p.display()
	out := p.out()
	log := p.log()

	log.WithField("contours", len(contours)).Info("Contours extracted")

	for i, c := range contours {
		centroid := c.Centroid()
		shape := detection.ClassifyShape(c)
		col := labeler.Sample(img, c)

		d := Detection{
			Index:    i + 1,
			Shape:    shape.Shape,
			Color:    col.Name,
			Centroid: centroid,
			Vertices: shape.Vertices,
			MeanHex:  col.Mean.Hex,
			Area:     c.Area(),
		}
		report.Detections = append(report.Detections, d)

		log.WithFields(logrus.Fields{
			"index":    d.Index,
			"vertices": shape.Vertices,
			"aspect":   shape.AspectRatio,
			"area":     d.Area,
			"mean":     col.Mean.Hex,
			"distance": col.Distance,
		}).Debug("Contour classified")

		canvas.DrawContour(c, OutlineColor, OutlineThickness)
		canvas.DrawLabel(d.Label(), centroid, LabelColor)

		if _, err := fmt.Fprintln(out, d.String()); err != nil {
			return report, canvas.Image(), fmt.Errorf("failed to write report: %w", err)
		}

		if err := display.Show(canvas.Image()); err != nil {
			return report, canvas.Image(), fmt.Errorf("failed to show frame: %w", err)
		}
		if err := display.Wait(); err != nil {
			return report, canvas.Image(), fmt.Errorf("failed to wait for display: %w", err)
		}
	}

	return report, canvas.Image(), nil
}
