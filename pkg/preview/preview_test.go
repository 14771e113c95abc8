package preview

import (
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()

	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

// shownScreen reports every Show so tests can wait for Run to draw
type shownScreen struct {
	tcell.SimulationScreen
	shown chan struct{}
}

func (s *shownScreen) Show() {
	s.SimulationScreen.Show()
	s.shown <- struct{}{}
}

// startRun runs Run on a fresh simulation screen and waits for the first draw
func startRun(t *testing.T, text string) (*shownScreen, <-chan error) {
	t.Helper()

	s := &shownScreen{
		SimulationScreen: tcell.NewSimulationScreen("UTF-8"),
		shown:            make(chan struct{}, 4),
	}
	done := make(chan error, 1)
	go func() {
		done <- Run(s, text, tcell.StyleDefault)
	}()
	waitShown(t, s)
	return s, done
}

func waitShown(t *testing.T, s *shownScreen) {
	t.Helper()

	select {
	case <-s.shown:
	case <-time.After(2 * time.Second):
		t.Fatal("screen was not shown")
	}
}

func waitDone(t *testing.T, done <-chan error) {
	t.Helper()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run failed: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
}

func TestRunQuits(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
	}{
		{"q", tcell.KeyRune, 'q'},
		{"Q", tcell.KeyRune, 'Q'},
		{"Esc", tcell.KeyEscape, 0},
		{"CtrlC", tcell.KeyCtrlC, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, done := startRun(t, "@@\n  \n")
			if got := runeAt(s, 0, 0); got != '@' {
				t.Errorf("(0,0) = %q, want '@'", got)
			}

			s.InjectKey(tt.key, tt.r, tcell.ModNone)
			waitDone(t, done)
		})
	}
}

func TestRunIgnoresOtherKeys(t *testing.T) {
	s, done := startRun(t, "@\n")

	s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	select {
	case <-done:
		t.Fatal("Run returned before a quit key")
	case <-time.After(50 * time.Millisecond):
	}

	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	waitDone(t, done)
}

func TestRunRedrawsOnResize(t *testing.T) {
	// the simulation screen starts at 80x25, so Z is off screen until it grows
	line := strings.Repeat("@", 80) + "Z"
	s, done := startRun(t, line+"\n")

	if got := runeAt(s, 79, 0); got != '@' {
		t.Errorf("(79,0) = %q, want '@'", got)
	}

	s.SetSize(100, 25)
	if err := s.PostEvent(tcell.NewEventResize(100, 25)); err != nil {
		t.Fatalf("PostEvent failed: %v", err)
	}
	waitShown(t, s)

	if got := runeAt(s, 80, 0); got != 'Z' {
		t.Errorf("(80,0) = %q, want 'Z'", got)
	}
	if got := runeAt(s, 81, 0); got != ' ' {
		t.Errorf("(81,0) = %q, want ' '", got)
	}

	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	waitDone(t, done)
}

func TestDrawClipsToScreen(t *testing.T) {
	s := newScreen(t, 4, 2)
	Draw(s, "abcdef\nxy\nzz\n", tcell.StyleDefault)
	s.Show()

	tests := []struct {
		x, y int
		want rune
	}{
		{0, 0, 'a'},
		{3, 0, 'd'},
		{0, 1, 'x'},
		{1, 1, 'y'},
		{2, 1, ' '},
	}
	for _, tt := range tests {
		if got := runeAt(s, tt.x, tt.y); got != tt.want {
			t.Errorf("(%d,%d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDrawClearsPreviousText(t *testing.T) {
	s := newScreen(t, 3, 1)
	Draw(s, "@@@\n", tcell.StyleDefault)
	Draw(s, "@\n", tcell.StyleDefault)

	if got := runeAt(s, 1, 0); got != ' ' {
		t.Errorf("(1,0) = %q, want ' '", got)
	}
}

func TestDrawAcceptsCRLF(t *testing.T) {
	s := newScreen(t, 3, 2)
	Draw(s, "@%\r\n#*\r\n", tcell.StyleDefault)

	if got := runeAt(s, 2, 0); got != ' ' {
		t.Errorf("(2,0) = %q, want ' '", got)
	}
	if got := runeAt(s, 0, 1); got != '#' {
		t.Errorf("(0,1) = %q, want '#'", got)
	}
}

func TestStyleFor(t *testing.T) {
	style := StyleFor(color.Black, color.RGBA{R: 255, G: 128, B: 0, A: 255})
	fg, bg, _ := style.Decompose()

	if r, g, b := fg.RGB(); r != 0 || g != 0 || b != 0 {
		t.Errorf("fg = %d,%d,%d, want 0,0,0", r, g, b)
	}
	if r, g, b := bg.RGB(); r != 255 || g != 128 || b != 0 {
		t.Errorf("bg = %d,%d,%d, want 255,128,0", r, g, b)
	}
}
