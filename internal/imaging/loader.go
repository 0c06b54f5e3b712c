package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	"github.com/disintegration/imaging"
)

// ErrImageLoad is returned (wrapped) whenever the input image cannot be
// turned into a usable, non-empty image.
var ErrImageLoad = errors.New("image load failed")

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Path is the file path the image was loaded from.
	Path string `json:"path"`

	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format implied by the file extension ("PNG", "JPEG", ...)
	// or "unknown".
	Format string `json:"format"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Load opens and decodes the image at path.
//
// The image is decoded with EXIF auto-orientation so that pixel coordinates
// match what an image viewer shows. Load never returns a nil or zero-sized
// image: a missing file, a directory, an undecodable file and a decoded image
// with no pixels all produce an error wrapping ErrImageLoad.
//
// Supported formats are those registered with the image package plus the
// formats disintegration/imaging adds (BMP, TIFF).
func Load(path string) (image.Image, *ImageInfo, error) {
	if path == "" {
		return nil, nil, fmt.Errorf("%w: empty path", ErrImageLoad)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to stat %q: %v", ErrImageLoad, path, err)
	}
	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %q is a directory", ErrImageLoad, path)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to decode %q: %v", ErrImageLoad, path, err)
	}

	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, nil, fmt.Errorf("%w: %q decoded to an empty image", ErrImageLoad, path)
	}

	format := "unknown"
	if f, err := imaging.FormatFromFilename(path); err == nil {
		format = f.String()
	}

	return img, &ImageInfo{
		Path:          path,
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}

// Save encodes img to path. The format is chosen from the file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image to %q: %w", path, err)
	}
	return nil
}
