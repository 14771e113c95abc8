package asciiart

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

/*
ConvertReader takes an io.Reader that can read the bytes of an image and constructs a Converter from it. Image
formats supported are png, jpeg, gif, bmp, tiff and webp. If you want to support more formats, initialize the
decoder package at the top of any of your go files:

	import (
		... <other imports>

		_ "mycustomdecoder/mycustomformat"

		...
	)

ConvertReader uses image.Decode() under the hood, so it is important to register file formats so the image
module knows how to decode the bytes.
*/
func ConvertReader(r io.Reader, opts ...AsciiOption) (*Converter, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	c, err := NewFromImage(img, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s image: %w", format, err)
	}

	return c, nil
}

// ConvertBytes takes a byte slice representing an image. See ConvertReader() for the supported formats.
func ConvertBytes(b []byte, opts ...AsciiOption) (*Converter, error) {
	return ConvertReader(bytes.NewReader(b), opts...)
}
