package imaging

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/lucasb-eyer/go-colorful"
)

// Edge classification constants. The gradient pass runs on a
// Gaussian-blurred luma plane so sensor noise does not register as
// texture.
const (
	edgeBlurRadius        = 1.4
	edgeGradientThreshold = 0.25
)

// Necrotic/chlorotic color bands in HSV space (hue in degrees,
// saturation and value in [0,1]). A pixel in any band counts as
// damaged tissue: browns cover necrotic lesions, the yellow band
// covers chlorosis, and the near-black band covers dead tissue where
// hue is meaningless.
const (
	brownHueLo  = 15.0
	brownHueHi  = 45.0
	brownMinSat = 0.25
	brownMaxVal = 0.70

	chloroticHueLo  = 45.0
	chloroticHueHi  = 70.0
	chloroticMinSat = 0.30

	necroticMaxVal = 0.12
)

// lumaPlane converts the raster to BT.601 luma in the 0-255 range.
// The plane is indexed [y][x] relative to the raster origin.
func lumaPlane(img image.Image) [][]float64 {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	plane := make([][]float64, height)
	for y := 0; y < height; y++ {
		plane[y] = make([]float64, width)
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			plane[y][x] = 0.299*float64(r>>8) + 0.587*float64(g>>8) + 0.114*float64(b>>8)
		}
	}
	return plane
}

// edgeMask marks pixels whose Sobel gradient magnitude on the blurred
// luma plane exceeds the fixed threshold. The magnitude is normalized
// by the maximum Sobel response (4x full scale) so the threshold is a
// fraction of the luma range, not an absolute kernel sum.
func edgeMask(img image.Image) [][]bool {
	blurred := blur.Gaussian(img, edgeBlurRadius)
	luma := lumaPlane(blurred)

	height := len(luma)
	if height == 0 {
		return nil
	}
	width := len(luma[0])

	sobelX := [3][3]float64{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY := [3][3]float64{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}

	mask := make([][]bool, height)
	for y := 0; y < height; y++ {
		mask[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			var gx, gy float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					py := clamp(y+ky, 0, height-1)
					px := clamp(x+kx, 0, width-1)
					gx += luma[py][px] * sobelX[ky+1][kx+1]
					gy += luma[py][px] * sobelY[ky+1][kx+1]
				}
			}
			magnitude := math.Sqrt(gx*gx+gy*gy) / (4 * 255)
			mask[y][x] = magnitude > edgeGradientThreshold
		}
	}
	return mask
}

// damagedMask marks pixels whose color falls in a necrotic or
// chlorotic band. Classification runs on the original pixels, not the
// blurred plane, so lesion boundaries stay crisp.
func damagedMask(img image.Image) [][]bool {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	mask := make([][]bool, height)
	for y := 0; y < height; y++ {
		mask[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			c := colorful.Color{
				R: float64(r>>8) / 255.0,
				G: float64(g>>8) / 255.0,
				B: float64(b>>8) / 255.0,
			}
			mask[y][x] = isDamagedColor(c)
		}
	}
	return mask
}

func isDamagedColor(c colorful.Color) bool {
	h, s, v := c.Hsv()

	if v < necroticMaxVal {
		return true
	}
	if h >= brownHueLo && h < brownHueHi && s >= brownMinSat && v <= brownMaxVal {
		return true
	}
	if h >= chloroticHueLo && h <= chloroticHueHi && s >= chloroticMinSat {
		return true
	}
	return false
}

// maskFraction returns the fraction of set pixels inside rect. The
// rect is relative to the mask origin and must lie within it.
func maskFraction(mask [][]bool, rect image.Rectangle) float64 {
	total := rect.Dx() * rect.Dy()
	if total <= 0 {
		return 0
	}
	count := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if mask[y][x] {
				count++
			}
		}
	}
	return float64(count) / float64(total)
}

// clamp constrains an integer value to the range [min, max].
// Used for boundary handling in convolution operations.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
