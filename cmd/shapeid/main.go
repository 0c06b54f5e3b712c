package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/shape-color-id/internal/config"
	"github.com/ironsheep/shape-color-id/internal/cvbackend"
	"github.com/ironsheep/shape-color-id/internal/detection"
	"github.com/ironsheep/shape-color-id/internal/logger"
	"github.com/ironsheep/shape-color-id/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, logger.Logger))
}

// run is main with its process dependencies injected.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, log *logrus.Logger) int {
	cfg, err := config.Parse(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "shapeid: %v\n", err)
		fmt.Fprintln(stderr, "Run 'shapeid --help' for usage.")
		return exitUsage
	}

	if cfg.ShowHelp {
		return exitOK
	}
	if cfg.ShowVersion {
		fmt.Fprintf(stdout, "shapeid %s\n", Version)
		fmt.Fprintf(stdout, "  Build time: %s\n", BuildTime)
		fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
		return exitOK
	}

	log.WithFields(logrus.Fields{
		"version": Version,
		"backend": cfg.Backend,
		"image":   cfg.ImagePath,
	}).Debug("Starting shapeid")

	p, cleanup, err := newPipeline(cfg, stdin, stdout, stderr)
	if err != nil {
		log.WithError(err).Error("Failed to set up backend")
		return exitError
	}
	defer cleanup()
	p.Log = log

	report, err := p.Run(cfg.ImagePath, cfg.OutputPath)
	if err != nil {
		log.WithError(err).Error("Detection failed")
		return exitError
	}

	log.WithField("detections", len(report.Detections)).Info("Done")
	return exitOK
}

// newPipeline wires the contour source and display selected by cfg.
func newPipeline(cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer) (*pipeline.Pipeline, func(), error) {
	nop := func() {}

	switch cfg.Backend {
	case config.BackendOpenCV:
		source, err := cvbackend.NewContourSource()
		if err != nil {
			return nil, nop, err
		}
		if cfg.NoWait {
			return pipeline.New(source, pipeline.NopDisplay{}, stdout), nop, nil
		}
		win, err := cvbackend.NewWindow(cvbackend.WindowTitle)
		if err != nil {
			return nil, nop, err
		}
		return pipeline.New(source, win, stdout), func() { _ = win.Close() }, nil

	case config.BackendNative, "":
		var display pipeline.Display = pipeline.NopDisplay{}
		if !cfg.NoWait {
			display = pipeline.NewPreviewDisplay(cfg.PreviewPath, stdin, stderr)
		}
		return pipeline.New(detection.NewContourFinder(), display, stdout), nop, nil

	default:
		return nil, nop, errors.New("unsupported backend: " + string(cfg.Backend))
	}
}
