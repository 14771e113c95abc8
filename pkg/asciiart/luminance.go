package asciiart

/*
LuminanceField holds the brightness (0-1) of every pixel of an image in a 1D row major array, so that the
brightness at x, y is stored at index x + y * width.

A LuminanceField is never modified after Extract() returns it.
*/
type LuminanceField struct {
	values []float64
	dims   ImageDimensions
}

/*
Extract decodes a PixelBuffer into a LuminanceField. Brightness is the HSL lightness of each pixel. The buffer
is only read during the call and is not retained.

Pixels are addressed by row and column rather than by a flat byte index, so 8 bit buffers advance one byte per
pixel and row padding is skipped for every depth.
*/
func Extract(buf PixelBuffer) (*LuminanceField, error) {
	f, err := buf.validate()
	if err != nil {
		return nil, err
	}

	width, height := buf.Width, buf.Height
	stride := buf.rowStride()
	bpp := f.bytesPerPixel
	values := make([]float64, width*height)

	for y := 0; y < height; y++ {
		row := buf.Pix[y*stride : y*stride+width*bpp]
		out := values[y*width : (y+1)*width]
		for x := 0; x < width; x++ {
			out[x] = f.brightness(row[x*bpp : x*bpp+bpp])
		}
	}

	return &LuminanceField{
		values: values,
		dims:   ImageDimensions{Width: width, Height: height},
	}, nil
}

// At returns the brightness at x, y. It does not check that x and y are within the image.
func (l *LuminanceField) At(x, y int) float64 {
	return l.values[x+y*l.dims.Width]
}

// At1D returns the brightness at some idx in the 1D backing array
func (l *LuminanceField) At1D(idx int) float64 {
	return l.values[idx]
}

// Len returns width * height
func (l *LuminanceField) Len() int {
	return len(l.values)
}

func (l *LuminanceField) Dimensions() ImageDimensions {
	return l.dims
}

// Values returns a copy of the backing array
func (l *LuminanceField) Values() []float64 {
	out := make([]float64, len(l.values))
	copy(out, l.values)
	return out
}

/*
blockAverage returns the mean brightness of the pixels in b, walking the rows of the block directly without
collecting coordinates first.
*/
func (l *LuminanceField) blockAverage(b block) (float64, error) {
	if b.empty() {
		return 0, ErrEmptyBlock
	}

	var sum float64
	count := 0
	for y := b.top; y < b.bottom; y++ {
		row := l.values[y*l.dims.Width:]
		for x := b.left; x < b.right; x++ {
			sum += row[x]
			count++
		}
	}

	return sum / float64(count), nil
}
