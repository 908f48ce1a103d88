package imaging

import (
	"image"
	"image/color"
	"math"
	"testing"
)

// Canonical test colors. leafGreen sits in the healthy band,
// lesionBrown in the necrotic brown band (HSV 30deg, sat 0.67,
// val 0.40), necroticBlack below the value floor.
var (
	leafGreen     = color.NRGBA{R: 52, G: 140, B: 49, A: 255}
	lesionBrown   = color.NRGBA{R: 101, G: 67, B: 33, A: 255}
	necroticBlack = color.NRGBA{R: 20, G: 18, B: 16, A: 255}
)

// createLeafImage creates an in-memory test raster filled with one color.
func createLeafImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// createBlotchedLeaf creates a 160x160 raster whose 40x40 blocks
// follow a fixed lesion pattern: 8 brown blocks, 2 near-black blocks
// and 6 green blocks, so exactly 10 of 16 grid cells are damaged and
// the damaged pixel fraction is exactly 0.625.
func createBlotchedLeaf() *image.NRGBA {
	pattern := [4][4]color.NRGBA{
		{lesionBrown, leafGreen, lesionBrown, leafGreen},
		{lesionBrown, necroticBlack, lesionBrown, leafGreen},
		{leafGreen, lesionBrown, lesionBrown, necroticBlack},
		{lesionBrown, leafGreen, lesionBrown, leafGreen},
	}

	img := image.NewNRGBA(image.Rect(0, 0, 160, 160))
	for y := 0; y < 160; y++ {
		for x := 0; x < 160; x++ {
			img.SetNRGBA(x, y, pattern[y/40][x/40])
		}
	}
	return img
}

func TestExtract_UniformGreen(t *testing.T) {
	img := createLeafImage(64, 64, leafGreen)

	fv := Extract(img)

	// Channel samples 52, 140, 49: mean 80.33, population variance 1781.56.
	if math.Abs(fv.ColorVariance-1781.56) > 1.0 {
		t.Errorf("ColorVariance: got %.2f, want 1781.56", fv.ColorVariance)
	}
	// BT.601 luma of (52, 140, 49) is 103.31.
	if math.Abs(fv.Brightness-103.31) > 0.05 {
		t.Errorf("Brightness: got %.2f, want 103.31", fv.Brightness)
	}
	if fv.Contrast > 1e-9 {
		t.Errorf("Contrast: got %.6f, want 0 for a uniform raster", fv.Contrast)
	}
	// Green share 140/241.
	if math.Abs(fv.Greenness-0.5809) > 0.001 {
		t.Errorf("Greenness: got %.4f, want 0.5809", fv.Greenness)
	}
	if fv.EdgeDensity != 0 {
		t.Errorf("EdgeDensity: got %.4f, want 0 for a uniform raster", fv.EdgeDensity)
	}
	if fv.DamagedPixelsRatio != 0 {
		t.Errorf("DamagedPixelsRatio: got %.4f, want 0 for healthy green", fv.DamagedPixelsRatio)
	}
}

func TestExtract_UniformBrown(t *testing.T) {
	img := createLeafImage(64, 64, lesionBrown)

	fv := Extract(img)

	if fv.DamagedPixelsRatio != 1.0 {
		t.Errorf("DamagedPixelsRatio: got %.4f, want 1.0 for necrotic brown", fv.DamagedPixelsRatio)
	}
	// Green share 67/201.
	if math.Abs(fv.Greenness-0.3333) > 0.001 {
		t.Errorf("Greenness: got %.4f, want 0.3333", fv.Greenness)
	}
}

func TestExtract_NearBlackCountsAsDamage(t *testing.T) {
	img := createLeafImage(32, 32, necroticBlack)

	fv := Extract(img)

	// HSV value 20/255 = 0.078 falls below the necrotic floor.
	if fv.DamagedPixelsRatio != 1.0 {
		t.Errorf("DamagedPixelsRatio: got %.4f, want 1.0 for near-black tissue", fv.DamagedPixelsRatio)
	}
}

func TestExtract_BlotchedLeaf(t *testing.T) {
	img := createBlotchedLeaf()

	fv := Extract(img)

	// 10 of 16 blocks are fully damaged tissue.
	if math.Abs(fv.DamagedPixelsRatio-0.625) > 1e-9 {
		t.Errorf("DamagedPixelsRatio: got %.6f, want 0.625", fv.DamagedPixelsRatio)
	}
	// Weighted green share: 8 brown, 2 black, 6 green blocks.
	if math.Abs(fv.Greenness-0.4466) > 0.001 {
		t.Errorf("Greenness: got %.4f, want 0.4466", fv.Greenness)
	}
	if math.Abs(fv.Brightness-77.68) > 0.1 {
		t.Errorf("Brightness: got %.2f, want 77.68", fv.Brightness)
	}
	if fv.Contrast <= 10 {
		t.Errorf("Contrast: got %.2f, want well above 10 for a blotched raster", fv.Contrast)
	}
	if math.Abs(fv.ColorVariance-1419.27) > 1.0 {
		t.Errorf("ColorVariance: got %.2f, want 1419.27", fv.ColorVariance)
	}
}

func TestExtract_HighContrastStripesProduceEdges(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if (x/8)%2 == 0 {
				img.SetNRGBA(x, y, white)
			} else {
				img.SetNRGBA(x, y, black)
			}
		}
	}

	fv := Extract(img)

	if fv.EdgeDensity <= 0.1 {
		t.Errorf("EdgeDensity: got %.4f, want > 0.1 for high-contrast stripes", fv.EdgeDensity)
	}
}

func TestExtract_Deterministic(t *testing.T) {
	img := createBlotchedLeaf()

	first := Extract(img)
	second := Extract(img)

	if first != second {
		t.Errorf("Extract is not deterministic: first %+v, second %+v", first, second)
	}
}
