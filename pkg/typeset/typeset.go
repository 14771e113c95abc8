// Package typeset measures and rasterises monospace text. It is the font collaborator of the asciiart package:
// it turns a font.Face into the pixel size of one character cell, and turns generated ascii art back into an image.
package typeset

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Lines splits text on line terminators. Both "\n" and "\r\n" are accepted, and a trailing terminator does not
// start a new line.
func Lines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

func measureFixed(face font.Face, text string) fixed.Point26_6 {
	lines := Lines(text)

	var widest fixed.Int26_6
	for _, line := range lines {
		if adv := font.MeasureString(face, line); adv > widest {
			widest = adv
		}
	}

	return fixed.Point26_6{
		X: widest,
		Y: face.Metrics().Height * fixed.Int26_6(len(lines)),
	}
}

// Measure returns the size in pixels of the smallest canvas that fits text drawn with face
func Measure(face font.Face, text string) image.Point {
	p := measureFixed(face, text)
	return image.Pt(p.X.Ceil(), p.Y.Ceil())
}

/*
CellSize returns the pixel width and height of one character of a monospace face. The size is measured as the
difference between a two by two block of glyphs and a single glyph, so that any fixed padding added by the layout
cancels out.
*/
func CellSize(face font.Face) image.Point {
	double := measureFixed(face, "MM\nMM")
	single := measureFixed(face, "M")
	diff := double.Sub(single)

	return image.Pt(diff.X.Round(), diff.Y.Round())
}

/*
Rasterize draws text onto a new canvas sized exactly with Measure(). The canvas is filled with bg, and the text is
drawn in fg with one baseline per line, starting at the face's ascent.
*/
func Rasterize(face font.Face, text string, bg, fg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: Measure(face, text)})
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	m := face.Metrics()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(fg),
		Face: face,
	}

	for i, line := range Lines(text) {
		d.Dot = fixed.Point26_6{
			X: 0,
			Y: m.Ascent + m.Height*fixed.Int26_6(i),
		}
		d.DrawString(line)
	}

	return img
}
