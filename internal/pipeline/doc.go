// Package pipeline drives shape and color identification over one image.
//
// A Pipeline composes three narrow dependencies:
//
//   - ContourSource: finds the external contours (detection.ContourFinder,
//     or the OpenCV backend when built with the gocv tag)
//   - Compositor: draws outlines and labels on a copy of the image
//     (imaging.Canvas)
//   - Display: presents each annotated frame and waits for the user
//     (PreviewDisplay, NopDisplay, or an OpenCV window)
//
// Contours are processed strictly in the order the source returns them. For
// each contour the pipeline computes the centroid, classifies the shape,
// samples the color, annotates the canvas, writes a report line and waits on
// the display. Report lines have the form:
//
//	1. Red Square at (120,84)
//
// Pipeline.Run loads from disk; Pipeline.Process works on an in-memory image.
package pipeline
