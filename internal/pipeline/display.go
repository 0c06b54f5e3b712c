package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/ironsheep/shape-color-id/internal/imaging"
)

// NopDisplay discards frames and never waits.
type NopDisplay struct{}

// Show implements Display.
func (NopDisplay) Show(image.Image) error { return nil }

// Wait implements Display.
func (NopDisplay) Wait() error { return nil }

// PreviewDisplay writes each frame to an image file and waits for a line on
// its input before the next detection. It stands in for a window on systems
// without a GUI: open the preview file in any viewer that reloads on change.
type PreviewDisplay struct {
	path   string
	prompt io.Writer
	input  *bufio.Reader
}

// NewPreviewDisplay creates a display that saves frames to path, prompts on
// prompt and reads acknowledgements from input. The file format follows the
// extension of path.
func NewPreviewDisplay(path string, input io.Reader, prompt io.Writer) *PreviewDisplay {
	return &PreviewDisplay{
		path:   path,
		prompt: prompt,
		input:  bufio.NewReader(input),
	}
}

// Path returns the preview file location.
func (d *PreviewDisplay) Path() string {
	return d.path
}

// Show saves frame to the preview file.
func (d *PreviewDisplay) Show(frame image.Image) error {
	if err := imaging.Save(frame, d.path); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}
	return nil
}

// Wait prompts and blocks until a full line is read. End of input continues
// without waiting so the tool can run with stdin closed.
func (d *PreviewDisplay) Wait() error {
	fmt.Fprintf(d.prompt, "Preview written to %s. Press Enter to continue...", d.path)
	_, err := d.input.ReadString('\n')
	fmt.Fprintln(d.prompt)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
