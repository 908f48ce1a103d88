// Package imaging implements the pixel-level half of the disease
// screening pipeline: decoding and normalizing uploaded photographs,
// extracting the six-metric feature vector, and segmenting the raster
// into scored regions of interest.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left
// corner: X increases rightward, Y increases downward. Grid cells are
// half-open rectangles, inclusive of their top-left edge.
//
// # Determinism
//
// Every function in this package is a pure function of its input
// raster. There is no randomness, no global state, and no I/O: two
// calls with identical input bytes produce identical results, which is
// what makes analysis results reproducible and cacheable upstream.
//
// # Thread Safety
//
// Decoded rasters are never mutated in place; derived buffers are
// copies. Any number of goroutines may run extraction and segmentation
// concurrently on their own rasters.
//
// # Error Handling
//
// Only Decode can fail: ErrDecode for bytes that are not a readable
// raster, ErrUnsupportedFormat for rasters without three color
// channels. Extraction and segmentation never fail for a decoded
// image; degenerate inputs produce zeroed metrics instead.
package imaging
