package asciiart

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

/*
PixelBuffer is raw decoded image data. Rows are stored top to bottom, Stride bytes apart. Only the first
Width * Depth.BytesPerPixel() bytes of a row hold pixel data; any bytes after that are padding.

A Stride of 0 means the rows are tightly packed.
*/
type PixelBuffer struct {
	Width  int
	Height int
	Stride int
	Depth  Depth
	Pix    []byte
}

// Dimensions returns the size of the buffer in pixels
func (p PixelBuffer) Dimensions() ImageDimensions {
	return ImageDimensions{Width: p.Width, Height: p.Height}
}

func (p PixelBuffer) rowStride() int {
	if p.Stride == 0 {
		return p.Width * p.Depth.BytesPerPixel()
	}

	return p.Stride
}

// validate checks that the buffer can be read by the extractor and returns its pixel format
func (p PixelBuffer) validate() (pixelFormat, error) {
	f, err := p.Depth.format()
	if err != nil {
		return pixelFormat{}, err
	}

	if p.Width <= 0 || p.Height <= 0 {
		return pixelFormat{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, p.Width, p.Height)
	}

	rowBytes := p.Width * f.bytesPerPixel
	stride := p.rowStride()
	if stride < rowBytes {
		return pixelFormat{}, fmt.Errorf("%w: stride %d is less than row width %d", ErrShortBuffer, stride, rowBytes)
	}

	need := (p.Height-1)*stride + rowBytes
	if len(p.Pix) < need {
		return pixelFormat{}, fmt.Errorf("%w: have %d bytes, need %d", ErrShortBuffer, len(p.Pix), need)
	}

	return f, nil
}

// alignedStride rounds a row length up to a multiple of 4 bytes, as device independent bitmaps do
func alignedStride(rowBytes int) int {
	return (rowBytes + 3) &^ 3
}

/*
FromImage encodes any image.Image as a PixelBuffer:

  - Grey images (color.GrayModel or color.Gray16Model) become Depth8.
  - Opaque images become Depth24, stored B, G, R.
  - Everything else becomes Depth32, stored B, G, R, A with straight (non premultiplied) colour.

Rows are padded to a multiple of 4 bytes.
*/
func FromImage(img image.Image) PixelBuffer {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	rect := image.Rect(0, 0, width, height)

	if model := img.ColorModel(); model == color.GrayModel || model == color.Gray16Model {
		gray, ok := img.(*image.Gray)
		if !ok || gray.Rect.Min != (image.Point{}) {
			gray = image.NewGray(rect)
			draw.Draw(gray, rect, img, bounds.Min, draw.Src)
		}

		return grayBuffer(gray)
	}

	nrgba := image.NewNRGBA(rect)
	draw.Draw(nrgba, rect, img, bounds.Min, draw.Src)

	depth := Depth32
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		depth = Depth24
	}

	bpp := depth.BytesPerPixel()
	stride := alignedStride(width * bpp)
	pix := make([]byte, stride*height)

	for y := 0; y < height; y++ {
		src := nrgba.Pix[y*nrgba.Stride:]
		dst := pix[y*stride:]
		for x := 0; x < width; x++ {
			s := src[x*4 : x*4+4]
			d := dst[x*bpp : x*bpp+bpp]
			d[0], d[1], d[2] = s[2], s[1], s[0]
			if bpp == 4 {
				d[3] = s[3]
			}
		}
	}

	return PixelBuffer{
		Width:  width,
		Height: height,
		Stride: stride,
		Depth:  depth,
		Pix:    pix,
	}
}

func grayBuffer(gray *image.Gray) PixelBuffer {
	width, height := gray.Rect.Dx(), gray.Rect.Dy()
	stride := alignedStride(width)
	pix := make([]byte, stride*height)

	for y := 0; y < height; y++ {
		off := y * gray.Stride
		copy(pix[y*stride:], gray.Pix[off:off+width])
	}

	return PixelBuffer{
		Width:  width,
		Height: height,
		Stride: stride,
		Depth:  Depth8,
		Pix:    pix,
	}
}
