package asciiart

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
	"sync"

	"golang.org/x/image/font"

	"github.com/nebbyJammin/imagetoascii/pkg/typeset"
)

// Ramp is the greyscale of characters used by the converter, from darkest to lightest
const Ramp = "@%#*+=-:. "

// Converter holds the luminance of one source image and turns it into ascii art on request
type Converter struct {
	// goroutines used to map rows. See WithWorkers()
	workers int
	// written after every row. See WithLineTerminator()
	lineTerminator string

	lum *LuminanceField
}

/*
New extracts the luminance of buf and returns a Converter for it. The buffer is not retained, so callers are free
to reuse it once New returns.

Defaults:

  - workers: 1
  - line terminator: "\n"
*/
func New(buf PixelBuffer, opts ...AsciiOption) (*Converter, error) {
	lum, err := Extract(buf)
	if err != nil {
		return nil, err
	}

	c := &Converter{
		workers:        defaultWorkers,
		lineTerminator: defaultLineTerminator,
		lum:            lum,
	}

	for _, o := range opts {
		o(c)
	}

	return c, nil
}

// NewFromImage encodes img with FromImage() and calls New()
func NewFromImage(img image.Image, opts ...AsciiOption) (*Converter, error) {
	return New(FromImage(img), opts...)
}

// Dimensions returns the size of the source image
func (c *Converter) Dimensions() ImageDimensions {
	return c.lum.Dimensions()
}

// Luminance returns the luminance extracted from the source image
func (c *Converter) Luminance() *LuminanceField {
	return c.lum
}

// GridSize returns how many columns and rows of characters GenerateString() produces for cell
func (c *Converter) GridSize(cell CellSize) (columns, rows int, err error) {
	if !cell.valid() {
		return 0, 0, fmt.Errorf("%w: %s", ErrInvalidCellSize, cell)
	}

	dims := c.lum.Dimensions()
	return dims.Width / cell.Width, dims.Height / cell.Height, nil
}

/*
GenerateString maps the image onto a grid of characters, one per cell of the given size in pixels. Each character
is picked from Ramp by the average brightness of the pixels under the cell. Pixels on the right and bottom edges that
do not fill a whole cell are dropped.

Every row, including the last, is followed by the line terminator.
*/
func (c *Converter) GenerateString(cell CellSize) (string, error) {
	columns, rows, err := c.GridSize(cell)
	if err != nil {
		return "", err
	}

	lines := make([][]byte, rows)
	err = c.forEachRow(rows, func(cy int) error {
		line, err := c.mapRow(cy, columns, cell)
		lines[cy] = line
		return err
	})
	if err != nil {
		return "", err
	}

	var asciiBuilder strings.Builder
	asciiBuilder.Grow(rows * (columns + len(c.lineTerminator)))

	for _, line := range lines {
		asciiBuilder.Write(line)
		asciiBuilder.WriteString(c.lineTerminator)
	}

	return asciiBuilder.String(), nil
}

// GenerateStringForFace calls GenerateString() with the cell size of a monospace face
func (c *Converter) GenerateStringForFace(face font.Face) (string, error) {
	size := typeset.CellSize(face)
	return c.GenerateString(CellSize{Width: size.X, Height: size.Y})
}

/*
GenerateImage renders the ascii art for face back into an image. The canvas is sized exactly to fit the text, filled
with bg, and the text is drawn in fg.
*/
func (c *Converter) GenerateImage(face font.Face, bg, fg color.Color) (*image.RGBA, error) {
	text, err := c.GenerateStringForFace(face)
	if err != nil {
		return nil, err
	}

	return typeset.Rasterize(face, text, bg, fg), nil
}

func (c *Converter) mapRow(cy, columns int, cell CellSize) ([]byte, error) {
	dims := c.lum.Dimensions()
	line := make([]byte, columns)

	for cx := 0; cx < columns; cx++ {
		avg, err := c.lum.blockAverage(cellBlock(cx, cy, cell, dims))
		if err != nil {
			return nil, fmt.Errorf("cell %d,%d: %w", cx, cy, err)
		}

		line[cx] = Ramp[rampIndex(avg)]
	}

	return line, nil
}

// rampIndex maps a brightness in [0, 1] to an index into Ramp. A brightness of exactly 1 maps to the last glyph.
func rampIndex(brightness float64) int {
	i := int(math.Floor(brightness * float64(len(Ramp))))

	return min(max(i, 0), len(Ramp)-1)
}

// forEachRow calls fn for every row in [0, rows), spreading rows over c.workers goroutines
func (c *Converter) forEachRow(rows int, fn func(cy int) error) error {
	workers := min(c.workers, rows)
	if workers <= 1 {
		for cy := 0; cy < rows; cy++ {
			if err := fn(cy); err != nil {
				return err
			}
		}
		return nil
	}

	jobs := make(chan int)
	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cy := range jobs {
				if err := fn(cy); err != nil {
					once.Do(func() { firstErr = err })
				}
			}
		}()
	}

	for cy := 0; cy < rows; cy++ {
		jobs <- cy
	}
	close(jobs)
	wg.Wait()

	return firstErr
}
