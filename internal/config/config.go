// Package config parses the shapeid command line into a validated Config.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ironsheep/shape-color-id/internal/logger"
)

// Backend selects the implementation used for contour extraction and display.
type Backend string

const (
	// BackendNative extracts contours in pure Go and previews frames as PNG
	// files.
	BackendNative Backend = "native"

	// BackendOpenCV uses gocv for contour extraction and an OpenCV window
	// for display. It requires a binary built with the gocv tag.
	BackendOpenCV Backend = "opencv"
)

var (
	// ErrMissingImage is returned when no input image was given.
	ErrMissingImage = errors.New("an input image is required (-i, --image)")

	// ErrUnknownBackend is returned for a --backend value other than
	// native or opencv.
	ErrUnknownBackend = errors.New("unknown backend")
)

// Config holds the run configuration for one invocation.
type Config struct {
	// ImagePath is the image to analyze.
	ImagePath string

	// OutputPath, when set, receives the final annotated image.
	OutputPath string

	// PreviewPath is where the native display writes each frame.
	PreviewPath string

	// Backend selects contour extraction and display.
	Backend Backend

	// NoWait skips the pause after each detection.
	NoWait bool

	// ShowVersion and ShowHelp request informational output instead of a run.
	ShowVersion bool
	ShowHelp    bool
}

// DefaultPreviewPath is the preview frame location when --preview is not set.
func DefaultPreviewPath() string {
	return filepath.Join(os.TempDir(), "shapeid-preview.png")
}

// Parse parses args (without the program name). Flag errors and usage text
// are written to stderr. A help request prints the usage once and returns a
// Config with ShowHelp set; callers print nothing further.
//
// Both single- and double-dash spellings are accepted for every flag.
func Parse(args []string, stderr io.Writer) (*Config, error) {
	cfg := &Config{}
	var backend string

	fs := flag.NewFlagSet("shapeid", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.ImagePath, "image", "", "Path to the input image")
	fs.StringVar(&cfg.ImagePath, "i", "", "Path to the input image (shorthand)")
	fs.StringVar(&cfg.OutputPath, "output", "", "Save the annotated image to this path")
	fs.StringVar(&cfg.OutputPath, "o", "", "Save the annotated image to this path (shorthand)")
	fs.StringVar(&cfg.PreviewPath, "preview", DefaultPreviewPath(), "Preview frame path for the native display")
	fs.StringVar(&backend, "backend", string(BackendNative), "Contour backend: native or opencv")
	fs.BoolVar(&cfg.NoWait, "no-wait", false, "Do not pause after each detection")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Print version information")
	fs.BoolVar(&cfg.ShowVersion, "v", false, "Print version information (shorthand)")
	fs.BoolVar(&cfg.ShowHelp, "help", false, "Print this help message")
	fs.BoolVar(&cfg.ShowHelp, "h", false, "Print this help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "shapeid - identify the shape and color of every object in an image")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Usage: shapeid -i <image> [options]")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Each detected object is outlined and labeled, and a line")
		fmt.Fprintln(stderr, "\"<n>. <Color> <Shape> at (<x>,<y>)\" is printed to stdout.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Environment variables:")
		fmt.Fprintf(stderr, "  %s=debug    Enable debug logging\n", logger.LevelEnv)
	}

	if err := fs.Parse(args); err != nil {
		// flag.ErrHelp is handled as a help request, not a failure.
		if errors.Is(err, flag.ErrHelp) {
			cfg.ShowHelp = true
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to parse arguments: %w", err)
	}

	if cfg.ShowHelp {
		fs.Usage()
		return cfg, nil
	}
	if cfg.ShowVersion {
		return cfg, nil
	}

	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	switch Backend(strings.ToLower(backend)) {
	case BackendNative:
		cfg.Backend = BackendNative
	case BackendOpenCV:
		cfg.Backend = BackendOpenCV
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}

	if strings.TrimSpace(cfg.ImagePath) == "" {
		return nil, ErrMissingImage
	}

	return cfg, nil
}
