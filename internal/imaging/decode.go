package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Normalization constraints applied to every decoded raster.
const (
	// MaxAnalysisSide is the longest edge after normalization. Larger
	// uploads are downscaled before feature extraction so the fixed
	// thresholds behave the same regardless of camera resolution.
	MaxAnalysisSide = 256

	// minRasterSide rejects degenerate rasters that cannot carry any
	// usable pixel statistics.
	minRasterSide = 2
)

var (
	// ErrDecode reports bytes that cannot be interpreted as a raster.
	ErrDecode = errors.New("image bytes could not be decoded")

	// ErrUnsupportedFormat reports a decodable image whose channel
	// layout the pipeline cannot analyze (single-channel grayscale).
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Decode interprets raw image bytes and returns a normalized NRGBA
// raster ready for feature extraction and segmentation.
//
// Supported container formats are PNG, JPEG, GIF, and WebP. Rasters
// larger than MaxAnalysisSide on either edge are downscaled with a
// Lanczos filter, preserving aspect ratio. The returned buffer is
// always a fresh copy; the caller owns it exclusively.
//
// Returns:
//   - ErrDecode if the bytes are empty, malformed, or describe a raster
//     smaller than 2x2 pixels.
//   - ErrUnsupportedFormat if the image decodes but has no color
//     channels (grayscale PNG/JPEG), since greenness and color-band
//     damage metrics are undefined for single-channel data.
func Decode(data []byte) (*image.NRGBA, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrDecode)
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	switch src.ColorModel() {
	case color.GrayModel, color.Gray16Model:
		return nil, fmt.Errorf("%w: %s image has no color channels", ErrUnsupportedFormat, format)
	}

	bounds := src.Bounds()
	if bounds.Dx() < minRasterSide || bounds.Dy() < minRasterSide {
		return nil, fmt.Errorf("%w: raster is %dx%d", ErrDecode, bounds.Dx(), bounds.Dy())
	}

	if bounds.Dx() > MaxAnalysisSide || bounds.Dy() > MaxAnalysisSide {
		if bounds.Dx() >= bounds.Dy() {
			return imaging.Resize(src, MaxAnalysisSide, 0, imaging.Lanczos), nil
		}
		return imaging.Resize(src, 0, MaxAnalysisSide, imaging.Lanczos), nil
	}

	return imaging.Clone(src), nil
}
