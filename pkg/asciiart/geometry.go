package asciiart

import "fmt"

// ImageDimensions is the size of a source image in pixels.
type ImageDimensions struct {
	Width  int
	Height int
}

func (d ImageDimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Area returns the number of pixels covered by the dimensions
func (d ImageDimensions) Area() int {
	return d.Width * d.Height
}

/*
CellSize is the size in pixels of one rendered glyph cell. For a monospace font it is usually derived with
typeset.CellSize(); both dimensions must be positive for GenerateString() to succeed.
*/
type CellSize struct {
	Width  int
	Height int
}

func (c CellSize) String() string {
	return fmt.Sprintf("%dx%d", c.Width, c.Height)
}

func (c CellSize) valid() bool {
	return c.Width > 0 && c.Height > 0
}

// block is a half-open rectangle [left, right) x [top, bottom) of source pixels
type block struct {
	left, top, right, bottom int
}

// cellBlock returns the block of pixels under the character at column cx and row cy, clipped to dims
func cellBlock(cx, cy int, cell CellSize, dims ImageDimensions) block {
	left, top := cx*cell.Width, cy*cell.Height

	return block{
		left:   left,
		top:    top,
		right:  min(left+cell.Width, dims.Width),
		bottom: min(top+cell.Height, dims.Height),
	}
}

func (b block) empty() bool {
	return b.right <= b.left || b.bottom <= b.top
}
