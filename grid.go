package glyphmask

import "fmt"
import "math"
import "image"

// A GridPlan is the read-only geometry of one generation run: how many
// character cells the output has, which (possibly fractional) region of
// the source each cell samples, and the exact output pixel dimensions.
//
// Grid plans preserve the source aspect ratio in the *character* grid:
// rows are derived so that Rows/Columns tracks the source height/width
// ratio. Output pixel dimensions are exact integer products of the grid
// dimensions and the glyph size, so no rounding error can accumulate
// across cells.
type GridPlan struct {
	Columns int
	Rows    int

	// Source-space cell dimensions, in pixels. May be fractional.
	CellWidth  float64
	CellHeight float64

	OutputWidth  int
	OutputHeight int
}

// Derives the [GridPlan] for a source of the given pixel dimensions.
// Rows are rounded to the nearest integer, with a minimum of one.
// Returns an error wrapping [ErrInvalidDimensions] if the source has
// no pixels or gridWidth/glyphSize fall below one.
func PlanGrid(srcWidth, srcHeight, gridWidth, glyphSize int) (GridPlan, error) {
	if srcWidth < 1 || srcHeight < 1 {
		return GridPlan{}, fmt.Errorf("%w: source image is %dx%d", ErrInvalidDimensions, srcWidth, srcHeight)
	}
	if gridWidth < 1 {
		return GridPlan{}, fmt.Errorf("%w: grid width %d", ErrInvalidDimensions, gridWidth)
	}
	if glyphSize < 1 {
		return GridPlan{}, fmt.Errorf("%w: glyph size %d", ErrInvalidDimensions, glyphSize)
	}

	cellWidth := float64(srcWidth)/float64(gridWidth)
	rows := int(math.Round(float64(srcHeight)/cellWidth))
	if rows < 1 { rows = 1 }
	return GridPlan{
		Columns:      gridWidth,
		Rows:         rows,
		CellWidth:    cellWidth,
		CellHeight:   float64(srcHeight)/float64(rows),
		OutputWidth:  gridWidth*glyphSize,
		OutputHeight: rows*glyphSize,
	}, nil
}

// Returns the source-space pixel rectangle sampled by the cell at
// (row, col), clipped to the given source bounds. Cell boundaries are
// the floors of the fractional cell edges; each rectangle is widened
// to at least one pixel before clipping, so only cells that fall fully
// outside the source (possible when there are more columns than source
// pixels) come back empty.
func (self *GridPlan) CellRegion(row, col int, srcBounds image.Rectangle) image.Rectangle {
	x0 := srcBounds.Min.X + int(float64(col)*self.CellWidth)
	y0 := srcBounds.Min.Y + int(float64(row)*self.CellHeight)
	x1 := srcBounds.Min.X + int(float64(col + 1)*self.CellWidth)
	y1 := srcBounds.Min.Y + int(float64(row + 1)*self.CellHeight)
	if x1 <= x0 { x1 = x0 + 1 }
	if y1 <= y0 { y1 = y0 + 1 }
	return image.Rect(x0, y0, x1, y1).Intersect(srcBounds)
}
