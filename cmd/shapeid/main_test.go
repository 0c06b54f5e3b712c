package main

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/shape-color-id/internal/imaging"
	"github.com/ironsheep/shape-color-id/internal/logger"
)

func writeSquareImage(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 120, 120))
	for y := 0; y < 120; y++ {
		for x := 0; x < 120; x++ {
			c := color.RGBA{0, 0, 0, 255}
			if x >= 40 && x < 80 && y >= 40 && y < 80 {
				c = color.RGBA{255, 255, 0, 255}
			}
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(t.TempDir(), "square.png")
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("failed to save image: %v", err)
	}
	return path
}

func TestRun(t *testing.T) {
	square := writeSquareImage(t)
	preview := filepath.Join(t.TempDir(), "preview.png")

	tests := []struct {
		name       string
		args       []string
		stdin      string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "version",
			args:       []string{"--version"},
			wantCode:   exitOK,
			wantStdout: "shapeid dev",
		},
		{
			name:       "help",
			args:       []string{"-h"},
			wantCode:   exitOK,
			wantStderr: "Usage: shapeid",
		},
		{
			name:       "missing image flag",
			args:       nil,
			wantCode:   exitUsage,
			wantStderr: "input image is required",
		},
		{
			name:     "unreadable image",
			args:     []string{"-i", filepath.Join(t.TempDir(), "nope.png"), "--no-wait"},
			wantCode: exitError,
		},
		{
			name:       "no wait",
			args:       []string{"-i", square, "--no-wait"},
			wantCode:   exitOK,
			wantStdout: "1. Yellow Square at (",
		},
		{
			name:       "preview display",
			args:       []string{"--image", square, "--preview", preview},
			stdin:      "\n",
			wantCode:   exitOK,
			wantStdout: "1. Yellow Square at (",
			wantStderr: "Press Enter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr, logs bytes.Buffer
			code := run(tt.args, strings.NewReader(tt.stdin), &stdout, &stderr, logger.New(&logs, "error"))

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr %q, logs %q)", code, tt.wantCode, stderr.String(), logs.String())
			}
			if !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want it to contain %q", stdout.String(), tt.wantStdout)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestRun_LoadErrorIsLogged(t *testing.T) {
	var stdout, stderr, logs bytes.Buffer
	code := run([]string{"-i", filepath.Join(t.TempDir(), "missing.png"), "--no-wait"},
		strings.NewReader(""), &stdout, &stderr, logger.New(&logs, "info"))

	if code != exitError {
		t.Errorf("exit code = %d, want %d", code, exitError)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", stdout.String())
	}
	if !strings.Contains(logs.String(), "image load failed") {
		t.Errorf("log should report the load failure, got %q", logs.String())
	}
}

func TestRun_HelpPrintedOnce(t *testing.T) {
	for _, arg := range []string{"-h", "--help"} {
		t.Run(arg, func(t *testing.T) {
			var stdout, stderr, logs bytes.Buffer
			code := run([]string{arg}, strings.NewReader(""), &stdout, &stderr, logger.New(&logs, "error"))

			if code != exitOK {
				t.Errorf("exit code = %d, want %d", code, exitOK)
			}
			if n := strings.Count(stderr.String(), "shapeid - identify"); n != 1 {
				t.Errorf("help text printed %d times, want once: %q", n, stderr.String())
			}
			if stdout.Len() != 0 {
				t.Errorf("help should not write to stdout, got %q", stdout.String())
			}
		})
	}
}
