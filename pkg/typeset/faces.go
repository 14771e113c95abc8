package typeset

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	DefaultSize = 12
	DefaultDPI  = 72
)

// ErrInvalidFaceSize is returned when a face is requested with a non positive size or DPI
var ErrInvalidFaceSize = errors.New("invalid font size")

// BasicFace returns the fixed 7x13 bitmap face. It needs no font file and its metrics never change.
func BasicFace() font.Face {
	return basicfont.Face7x13
}

// MonoFace returns the embedded Go Mono face at size points and dpi dots per inch
func MonoFace(size, dpi float64) (font.Face, error) {
	return ParseFace(gomono.TTF, size, dpi)
}

// LoadFace reads a TrueType font file and returns a face at size points and dpi dots per inch
func LoadFace(path string, size, dpi float64) (font.Face, error) {
	ttf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}

	return ParseFace(ttf, size, dpi)
}

// ParseFace parses TrueType font data and returns a face at size points and dpi dots per inch
func ParseFace(ttf []byte, size, dpi float64) (font.Face, error) {
	if size <= 0 || dpi <= 0 {
		return nil, fmt.Errorf("%w: size %g at %g dpi", ErrInvalidFaceSize, size, dpi)
	}

	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	}), nil
}
