package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/font"

	utils "github.com/nebbyJammin/imagetoascii/cmd/internal/cmd_utils"
	"github.com/nebbyJammin/imagetoascii/pkg/asciiart"
	"github.com/nebbyJammin/imagetoascii/pkg/preview"
	"github.com/nebbyJammin/imagetoascii/pkg/typeset"
)

const (
	fontUsage    = "Path to a TrueType font. By default the embedded Go Mono face is used."
	basicUsage   = "Use the built in 7x13 bitmap face instead of a TrueType font."
	sizeUsage    = "Font size in points."
	dpiUsage     = "Font resolution in dots per inch."
	cellUsage    = "Overrides the character cell size measured from the font, as WxH pixels (e.g. 7x13)."
	bgUsage      = "Background colour of the rendered image, as rrggbb."
	fgUsage      = "Text colour of the rendered image, as rrggbb."
	outUsage     = "Directory that receives <name>.txt and <name>.png."
	noPNGUsage   = "Only write the text output."
	previewUsage = "Show each result in the terminal. Press q to move on to the next image. Not available with -dir."
	workersUsage = "Number of goroutines used to map rows of characters."
	dirUsage     = "Convert every image found under this directory."
	crlfUsage    = "End lines with \\r\\n instead of \\n."
	verboseUsage = "Log timings and output paths for every image."
)

var errPreviewWithDir = errors.New("-preview cannot be combined with -dir")

func main() {
	var (
		fontPath  string
		useBasic  bool
		fontSize  float64
		dpi       float64
		cellStr   string
		bgStr     string
		fgStr     string
		outDir    string
		noPNG     bool
		doPreview bool
		workers   int
		dir       string
		crlf      bool
		verbose   bool
	)

	flag.StringVar(&fontPath, "font", "", fontUsage)
	flag.BoolVar(&useBasic, "basic", false, basicUsage)
	flag.Float64Var(&fontSize, "size", typeset.DefaultSize, sizeUsage)
	flag.Float64Var(&dpi, "dpi", typeset.DefaultDPI, dpiUsage)
	flag.StringVar(&cellStr, "cell", "", cellUsage)
	flag.StringVar(&bgStr, "bg", "ffffff", bgUsage)
	flag.StringVar(&fgStr, "fg", "000000", fgUsage)
	flag.StringVar(&outDir, "o", ".", outUsage)
	flag.BoolVar(&noPNG, "no-png", false, noPNGUsage)
	flag.BoolVar(&doPreview, "preview", false, previewUsage)
	flag.IntVar(&workers, "workers", 1, workersUsage)
	flag.StringVar(&dir, "dir", "", dirUsage)
	flag.BoolVar(&crlf, "crlf", false, crlfUsage)
	flag.BoolVar(&verbose, "v", false, verboseUsage)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: asciiart [flags] <image-file> [image-file...]\n\n")
		fmt.Fprintf(os.Stderr, "With no image files and no -dir, image paths are read from stdin, one per line.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	// Parse flags
	flag.Parse()

	logger := log.New(os.Stderr, "asciiart: ", 0)

	if err := checkFlags(dir, doPreview); err != nil {
		logger.Fatal(err)
	}

	face, err := loadFace(fontPath, useBasic, fontSize, dpi)
	if err != nil {
		logger.Fatal(err)
	}

	cell, err := utils.ParseCellSize(cellStr)
	if err != nil {
		logger.Fatal(err)
	}

	bg, err := utils.ParseHexColor(bgStr)
	if err != nil {
		logger.Fatal(err)
	}
	fg, err := utils.ParseHexColor(fgStr)
	if err != nil {
		logger.Fatal(err)
	}

	convOpts := []asciiart.AsciiOption{asciiart.WithWorkers(workers)}
	if crlf {
		convOpts = append(convOpts, asciiart.WithCRLF())
	}

	opts := utils.Options{
		Face:       face,
		Cell:       cell,
		Background: bg,
		Foreground: fg,
		OutputDir:  outDir,
		SkipImage:  noPNG,
		Converter:  convOpts,
		Logger:     logger,
		Verbose:    verbose,
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		logger.Fatal(err)
	}

	if dir != "" {
		if err := utils.ConvertImages(dir, opts); err != nil {
			logger.Fatal(err)
		}
		return
	}

	exitCode := 0
	convert := func(path string) {
		res, err := utils.ConvertFile(path, opts)
		if err != nil {
			logger.Printf("%s", err)
			exitCode = 1
			return
		}

		if doPreview {
			if err := showPreview(res.Text, fg, bg); err != nil {
				logger.Printf("preview %s: %s", path, err)
				exitCode = 1
			}
		}
	}

	args := flag.Args()
	if len(args) == 0 {
		if err := readPaths(os.Stdin, convert); err != nil {
			logger.Printf("reading stdin: %s", err)
			exitCode = 1
		}
	} else {
		for _, arg := range args {
			convert(arg)
		}
	}

	os.Exit(exitCode)
}

// checkFlags rejects flag combinations main cannot honour
func checkFlags(dir string, doPreview bool) error {
	if dir != "" && doPreview {
		return errPreviewWithDir
	}
	return nil
}

// readPaths calls fn with every line of r and returns the first read error
func readPaths(r io.Reader, fn func(path string)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fn(scanner.Text())
	}
	return scanner.Err()
}

func loadFace(path string, basic bool, size, dpi float64) (font.Face, error) {
	switch {
	case basic:
		return typeset.BasicFace(), nil
	case path != "":
		return typeset.LoadFace(path, size, dpi)
	default:
		return typeset.MonoFace(size, dpi)
	}
}

func showPreview(text string, fg, bg color.Color) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}

	return preview.Run(screen, text, preview.StyleFor(fg, bg))
}
