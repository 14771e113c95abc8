// The asciiart package implements the logic for generating ascii art from some image.
// By default, the package supports .png, .jpg, .jpeg, .gif, .bmp, .tiff and .webp. See ConvertBytes() and ConvertReader()
// To support other image formats, either use NewFromImage() instead or import your custom decoders like so:
/*
import (
	... <other imports>

	_ "mycustomdecoder/mycustomformat" // Here is your custom file format

	...
)
*/
// Start by calling New() with a decoded PixelBuffer, or NewFromImage() with an image.Image. Pass the options into the
// constructors (see options.go). The luminance of the image is extracted once, at construction time. After that,
// GenerateString() and GenerateImage() can be called as many times as needed with different character cell sizes.
//
// A Converter is immutable after construction and safe to share between goroutines.
package asciiart
