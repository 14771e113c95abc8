// Package preview shows generated ascii art on a terminal screen.
package preview

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/nebbyJammin/imagetoascii/pkg/typeset"
)

// StyleFor returns a tcell style drawing fg on bg
func StyleFor(fg, bg color.Color) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(fg)).
		Background(tcellColor(bg))
}

func tcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// Draw clears screen and draws text from the top left corner, clipping anything that falls outside the screen
func Draw(screen tcell.Screen, text string, style tcell.Style) {
	screen.SetStyle(style)
	screen.Clear()

	w, h := screen.Size()
	for y, line := range typeset.Lines(text) {
		if y >= h {
			break
		}

		x := 0
		for _, r := range line {
			if x >= w {
				break
			}
			screen.SetContent(x, y, r, nil, style)
			x++
		}
	}
}

// quit reports whether ev asks the preview to close
func quit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

/*
Run draws text on screen and blocks until the user presses q, Esc or Ctrl+C. The text is redrawn whenever the
terminal is resized. Run initialises the screen and finalises it before returning.
*/
func Run(screen tcell.Screen, text string, style tcell.Style) error {
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	Draw(screen, text, style)
	screen.Show()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			Draw(screen, text, style)
			screen.Show()
		case *tcell.EventKey:
			if quit(ev) {
				return nil
			}
		case nil:
			return nil
		}
	}
}
