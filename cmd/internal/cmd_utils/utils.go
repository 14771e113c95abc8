package utils

import (
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/font"

	"github.com/nebbyJammin/imagetoascii/pkg/asciiart"
	"github.com/nebbyJammin/imagetoascii/pkg/typeset"
)

// Options controls how files are converted and where the results are written
type Options struct {
	// Face is used to size the character cells and to render the output image
	Face font.Face
	// Cell overrides the cell size measured from Face when non zero
	Cell asciiart.CellSize

	Background color.Color
	Foreground color.Color

	// OutputDir receives <name>.txt and <name>.png for every converted image
	OutputDir string
	// SkipImage only writes the text output
	SkipImage bool

	Converter []asciiart.AsciiOption

	Logger  *log.Logger
	Verbose bool
}

// Result describes one converted file
type Result struct {
	Text      string
	TextPath  string
	ImagePath string
	Elapsed   time.Duration
}

// imageExts are the extensions ConvertImages picks up when walking a directory
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

func (o Options) logf(format string, args ...any) {
	if o.Logger != nil && o.Verbose {
		o.Logger.Printf(format, args...)
	}
}

func (o Options) cell() asciiart.CellSize {
	if o.Cell.Width != 0 || o.Cell.Height != 0 {
		return o.Cell
	}

	size := typeset.CellSize(o.Face)
	return asciiart.CellSize{Width: size.X, Height: size.Y}
}

// ConvertFile converts the image at path and writes its text (and unless SkipImage, its rendering) to OutputDir
func ConvertFile(path string, opts Options) (Result, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	start := time.Now()

	conv, err := asciiart.ConvertBytes(f, opts.Converter...)
	if err != nil {
		return Result{}, fmt.Errorf("converting %s: %w", path, err)
	}

	cell := opts.cell()
	text, err := conv.GenerateString(cell)
	if err != nil {
		return Result{}, fmt.Errorf("converting %s: %w", path, err)
	}

	res := Result{Text: text, Elapsed: time.Since(start)}
	opts.logf("%s: %s image, %s cells, conversion took %dms", path, conv.Dimensions(), cell, res.Elapsed.Milliseconds())

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	res.TextPath = filepath.Join(opts.OutputDir, base+".txt")
	if err := os.WriteFile(res.TextPath, []byte(text), 0o644); err != nil {
		return res, fmt.Errorf("writing %s: %w", res.TextPath, err)
	}

	if opts.SkipImage {
		return res, nil
	}

	res.ImagePath = filepath.Join(opts.OutputDir, base+".png")
	if err := writePNG(res.ImagePath, text, opts); err != nil {
		return res, err
	}
	opts.logf("%s: wrote %s and %s", path, res.TextPath, res.ImagePath)

	return res, nil
}

func writePNG(path, text string, opts Options) error {
	img := typeset.Rasterize(opts.Face, text, opts.Background, opts.Foreground)
	if img.Bounds().Empty() {
		return fmt.Errorf("rendering %s: image is smaller than one character cell", path)
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	return out.Close()
}

/*
ConvertImages walks dir and converts every image it finds. A file that fails to convert does not stop the walk;
the returned error joins every failure.
*/
func ConvertImages(dir string, opts Options) error {
	var errs []error

	err := filepath.Walk(dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || !imageExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		if _, err := ConvertFile(path, opts); err != nil {
			errs = append(errs, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	return errors.Join(errs...)
}

// ParseHexColor parses "rrggbb" or "#rrggbb" into an opaque colour
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: want rrggbb", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}

	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// ParseCellSize parses "WxH" into a cell size. An empty string returns the zero size.
func ParseCellSize(s string) (asciiart.CellSize, error) {
	if s == "" {
		return asciiart.CellSize{}, nil
	}

	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return asciiart.CellSize{}, fmt.Errorf("invalid cell size %q: want WxH", s)
	}

	w, err := strconv.Atoi(ws)
	if err != nil {
		return asciiart.CellSize{}, fmt.Errorf("invalid cell width %q: %w", ws, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return asciiart.CellSize{}, fmt.Errorf("invalid cell height %q: %w", hs, err)
	}

	if w <= 0 || h <= 0 {
		return asciiart.CellSize{}, fmt.Errorf("%w: %dx%d", asciiart.ErrInvalidCellSize, w, h)
	}

	return asciiart.CellSize{Width: w, Height: h}, nil
}
