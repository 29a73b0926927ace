package ui

import (
	"time"

	"snake-arcade/game"
	"snake-arcade/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

const eventBuffer = 100

// Terminal draws the playfield with tcell, two columns per cell, inside a
// one-character frame. Window position and title are ignored.
type Terminal struct {
	log *logging.Logger
}

func NewTerminal(log *logging.Logger) *Terminal {
	return &Terminal{log: log}
}

func (t *Terminal) CreateWindow(title string, x, y, width, height int) (game.Window, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "tcell: new screen")
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "tcell: init screen")
	}
	screen.HideCursor()

	grid := types.Grid{Width: width, Height: height}
	if sw, sh := screen.Size(); sw < grid.Cols()*2+2 || sh < grid.Rows()+2 {
		t.log.Warningf("terminal %dx%d is smaller than the %dx%d playfield", sw, sh, grid.Cols()*2+2, grid.Rows()+2)
	}

	w := &terminalWindow{
		screen: screen,
		grid:   grid,
		events: make(chan tcell.Event, eventBuffer),
		quit:   make(chan struct{}),
	}
	go w.pump()
	return w, nil
}

// Quit is a no-op: Fini on the window restores the terminal.
func (t *Terminal) Quit() {}

type terminalWindow struct {
	screen tcell.Screen
	grid   types.Grid
	events chan tcell.Event
	quit   chan struct{}
}

// pump moves blocking tcell events onto a buffered channel so PollEvent can drain it
func (w *terminalWindow) pump() {
	for {
		ev := w.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case w.events <- ev:
		case <-w.quit:
			return
		}
	}
}

func (w *terminalWindow) CreateRenderer() (game.Renderer, error) {
	return &terminalRenderer{screen: w.screen, grid: w.grid, style: tcell.StyleDefault}, nil
}

func (w *terminalWindow) PollEvent() (types.Event, bool) {
	for {
		select {
		case ev := <-w.events:
			if e, ok := w.translate(ev); ok {
				return e, true
			}
		default:
			return types.Event{}, false
		}
	}
}

func (w *terminalWindow) translate(ev tcell.Event) (types.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return terminalKey(ev.Key(), ev.Rune()), true
	case *tcell.EventResize:
		w.screen.Sync()
	}
	return types.Event{}, false
}

func terminalKey(key tcell.Key, r rune) types.Event {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return types.QuitEvent()
	case tcell.KeyUp:
		return types.KeyEvent(types.KeyUp)
	case tcell.KeyDown:
		return types.KeyEvent(types.KeyDown)
	case tcell.KeyLeft:
		return types.KeyEvent(types.KeyLeft)
	case tcell.KeyRight:
		return types.KeyEvent(types.KeyRight)
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return types.QuitEvent()
		case 'w', 'W':
			return types.KeyEvent(types.KeyUp)
		case 's', 'S':
			return types.KeyEvent(types.KeyDown)
		case 'a', 'A':
			return types.KeyEvent(types.KeyLeft)
		case 'd', 'D':
			return types.KeyEvent(types.KeyRight)
		}
	}
	return types.KeyEvent(types.KeyUnknown)
}

func (w *terminalWindow) Delay(d time.Duration) {
	time.Sleep(d)
}

func (w *terminalWindow) Destroy() {
	close(w.quit)
	w.screen.Fini()
}

type terminalRenderer struct {
	screen tcell.Screen
	grid   types.Grid
	style  tcell.Style
}

func (r *terminalRenderer) SetDrawColor(c types.Color) {
	r.style = tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// Clear paints the playfield in the current color and redraws the frame
func (r *terminalRenderer) Clear() {
	r.screen.Clear()

	cols, rows := r.grid.Cols()*2, r.grid.Rows()
	for y := 1; y <= rows; y++ {
		for x := 1; x <= cols; x++ {
			r.screen.SetContent(x, y, ' ', nil, r.style)
		}
	}

	frame := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := 1; x <= cols; x++ {
		r.screen.SetContent(x, 0, '─', nil, frame)
		r.screen.SetContent(x, rows+1, '─', nil, frame)
	}
	for y := 1; y <= rows; y++ {
		r.screen.SetContent(0, y, '│', nil, frame)
		r.screen.SetContent(cols+1, y, '│', nil, frame)
	}
	r.screen.SetContent(0, 0, '┌', nil, frame)
	r.screen.SetContent(cols+1, 0, '┐', nil, frame)
	r.screen.SetContent(0, rows+1, '└', nil, frame)
	r.screen.SetContent(cols+1, rows+1, '┘', nil, frame)
}

// FillRect paints every cell the box covers. Cells off the playfield are skipped.
func (r *terminalRenderer) FillRect(b types.Box) {
	for _, c := range coveredCells(b, r.grid) {
		x, y := 1+c.X*2, 1+c.Y
		r.screen.SetContent(x, y, ' ', nil, r.style)
		r.screen.SetContent(x+1, y, ' ', nil, r.style)
	}
}

func (r *terminalRenderer) Present() {
	r.screen.Show()
}

func (r *terminalRenderer) Destroy() {}

// coveredCells returns the column/row indices of the grid cells under b
func coveredCells(b types.Box, grid types.Grid) []types.Point {
	var cells []types.Point
	for y := floorDiv(b.Y, types.Cell); y*types.Cell < b.Y+b.H; y++ {
		for x := floorDiv(b.X, types.Cell); x*types.Cell < b.X+b.W; x++ {
			if x < 0 || y < 0 || x >= grid.Cols() || y >= grid.Rows() {
				continue
			}
			cells = append(cells, types.Point{X: x, Y: y})
		}
	}
	return cells
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
