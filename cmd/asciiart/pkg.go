// This package implements the command line tool that uses the API.
// It converts images on the filesystem to ascii art, writing the text to <name>.txt and a rendering of that text to
// <name>.png. The result can also be previewed in the terminal.
//
// By default, the converter is compatible with .png, .jpg, .jpeg, .gif, .bmp, .tiff and .webp file formats
// (See github.com/nebbyJammin/imagetoascii/pkg/asciiart).
package main
