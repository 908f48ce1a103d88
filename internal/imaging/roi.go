package imaging

import (
	"image"
	"math"
)

// Grid segmentation constants. The raster is split into a fixed
// gridRows x gridCols lattice; cells narrower or shorter than
// minCellSide pixels carry too little signal to score, so rasters
// that cannot fit the lattice produce an empty report.
const (
	gridRows    = 4
	gridCols    = 4
	minCellSide = 8

	damageWeight      = 0.7
	edgeWeight        = 0.3
	affectedThreshold = 0.35
)

// ROI is one scored cell of the segmentation grid.
type ROI struct {
	Rect        image.Rectangle `json:"-"`
	Row         int             `json:"row"`
	Col         int             `json:"col"`
	DamageScore float64         `json:"damage_score"`
	Affected    bool            `json:"affected"`
}

// ROIReport summarizes the segmentation grid. AffectedPercentage is
// AffectedROIs over TotalROIs expressed as a percentage; an empty
// grid reports 0.
type ROIReport struct {
	TotalROIs          int     `json:"total_rois"`
	AffectedROIs       int     `json:"affected_rois"`
	HealthyROIs        int     `json:"healthy_rois"`
	AffectedPercentage float64 `json:"affected_percentage"`
	Regions            []ROI   `json:"-"`
}

// Segment splits the raster into a fixed grid of regions and scores
// each one by how much damaged tissue and edge texture it contains.
//
// A cell scores damageWeight times its damaged-pixel fraction plus
// edgeWeight times its edge fraction, and counts as affected when the
// score exceeds affectedThreshold. Both masks are computed once over
// the full raster and then counted per cell, so cell scores agree
// with the global feature statistics.
//
// Rasters too small to produce cells of at least minCellSide pixels
// per side yield a report with zero regions.
func Segment(img *image.NRGBA) ROIReport {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width/gridCols < minCellSide || height/gridRows < minCellSide {
		return ROIReport{}
	}

	edges := edgeMask(img)
	damaged := damagedMask(img)

	report := ROIReport{
		TotalROIs: gridRows * gridCols,
		Regions:   make([]ROI, 0, gridRows*gridCols),
	}

	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			// Integer cell edges; the last row/column absorbs the
			// remainder so the grid tiles the raster exactly.
			x0 := col * width / gridCols
			x1 := (col + 1) * width / gridCols
			y0 := row * height / gridRows
			y1 := (row + 1) * height / gridRows
			cell := image.Rect(x0, y0, x1, y1)

			score := damageWeight*maskFraction(damaged, cell) + edgeWeight*maskFraction(edges, cell)
			affected := score > affectedThreshold

			report.Regions = append(report.Regions, ROI{
				Rect:        cell.Add(bounds.Min),
				Row:         row,
				Col:         col,
				DamageScore: score,
				Affected:    affected,
			})
			if affected {
				report.AffectedROIs++
			}
		}
	}

	report.HealthyROIs = report.TotalROIs - report.AffectedROIs
	report.AffectedPercentage = math.Round(float64(report.AffectedROIs)/float64(report.TotalROIs)*100*10) / 10
	return report
}
