package imaging

import (
	"image"

	"gonum.org/v1/gonum/stat"
)

// FeatureVector holds the global statistics extracted from a plant
// image. All fields are deterministic functions of the pixel data.
//
// # Field Semantics
//
//   - ColorVariance: population variance over every 8-bit R, G and B
//     sample in the raster. Uniform images score 0.
//   - Brightness: mean BT.601 luma, range 0-255.
//   - Contrast: population standard deviation of the luma plane.
//   - Greenness: share of the green channel in the total channel sum,
//     range 0-1. Pure green scores 1, pure gray scores 1/3, a raster
//     with no light at all scores 0.
//   - EdgeDensity: fraction of pixels classified as edges, range 0-1.
//   - DamagedPixelsRatio: fraction of pixels whose color falls in a
//     necrotic or chlorotic band, range 0-1.
type FeatureVector struct {
	ColorVariance      float64 `json:"color_variance"`
	Brightness         float64 `json:"brightness"`
	Contrast           float64 `json:"contrast"`
	Greenness          float64 `json:"greenness"`
	EdgeDensity        float64 `json:"edge_density"`
	DamagedPixelsRatio float64 `json:"damaged_pixels_ratio"`
}

// Extract computes the feature vector for a decoded raster.
//
// The raster is expected to come from Decode, which guarantees a
// minimum size of 2x2 and a maximum side of MaxAnalysisSide, but
// Extract handles any non-empty NRGBA raster.
func Extract(img *image.NRGBA) FeatureVector {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixelCount := width * height
	if pixelCount == 0 {
		return FeatureVector{}
	}

	samples := make([]float64, 0, pixelCount*3)
	lumas := make([]float64, 0, pixelCount)

	var sumR, sumG, sumB float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := img.NRGBAAt(x, y)
			r := float64(px.R)
			g := float64(px.G)
			b := float64(px.B)

			samples = append(samples, r, g, b)
			lumas = append(lumas, 0.299*r+0.587*g+0.114*b)
			sumR += r
			sumG += g
			sumB += b
		}
	}

	greenness := 0.0
	if channelSum := sumR + sumG + sumB; channelSum > 0 {
		greenness = sumG / channelSum
	}

	edges := edgeMask(img)
	damaged := damagedMask(img)
	full := image.Rect(0, 0, width, height)

	return FeatureVector{
		ColorVariance:      stat.PopVariance(samples, nil),
		Brightness:         stat.Mean(lumas, nil),
		Contrast:           stat.PopStdDev(lumas, nil),
		Greenness:          greenness,
		EdgeDensity:        maskFraction(edges, full),
		DamagedPixelsRatio: maskFraction(damaged, full),
	}
}
