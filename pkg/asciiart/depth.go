package asciiart

import "fmt"

/*
Depth is the number of bits used to encode one pixel of a PixelBuffer. Only three layouts are supported:

  - Depth8: one byte per pixel, interpreted as a grey level.
  - Depth24: three bytes per pixel in B, G, R order.
  - Depth32: four bytes per pixel in B, G, R, A order. Alpha does not affect brightness.
*/
type Depth int

const (
	Depth8  Depth = 8
	Depth24 Depth = 24
	Depth32 Depth = 32
)

// pixelFormat describes how to read the brightness of one pixel out of a buffer
type pixelFormat struct {
	bytesPerPixel int
	brightness    func(px []byte) float64
}

// pixelFormats is keyed by depth and never modified
var pixelFormats = map[Depth]pixelFormat{
	Depth8: {
		bytesPerPixel: 1,
		brightness: func(px []byte) float64 {
			return lightness(px[0], px[0], px[0])
		},
	},
	Depth24: {
		bytesPerPixel: 3,
		brightness: func(px []byte) float64 {
			return lightness(px[2], px[1], px[0])
		},
	},
	Depth32: {
		bytesPerPixel: 4,
		brightness: func(px []byte) float64 {
			return lightness(px[2], px[1], px[0])
		},
	},
}

// DepthFromBits returns the Depth for a bits-per-pixel value, or ErrUnsupportedFormat
func DepthFromBits(bits int) (Depth, error) {
	d := Depth(bits)
	if _, ok := pixelFormats[d]; !ok {
		return 0, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedFormat, bits)
	}

	return d, nil
}

// BytesPerPixel returns the number of bytes a pixel occupies, or 0 for an unsupported depth
func (d Depth) BytesPerPixel() int {
	return pixelFormats[d].bytesPerPixel
}

func (d Depth) String() string {
	return fmt.Sprintf("%dbpp", int(d))
}

func (d Depth) format() (pixelFormat, error) {
	f, ok := pixelFormats[d]
	if !ok {
		return pixelFormat{}, fmt.Errorf("%w: %d bits per pixel", ErrUnsupportedFormat, int(d))
	}

	return f, nil
}

/*
lightness returns the HSL lightness of an 8 bit colour normalised to [0, 1]:

	(max(r, g, b) + min(r, g, b)) / 2 / 255
*/
func lightness(r, g, b byte) float64 {
	hi := max(r, g, b)
	lo := min(r, g, b)

	return float64(int(hi)+int(lo)) / 510
}
