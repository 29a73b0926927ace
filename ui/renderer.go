package ui

import (
	"time"

	"snake-arcade/game"
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

// Raylib is the desktop backend. raylib keeps one window per process.
type Raylib struct {
	log *logging.Logger
}

func NewRaylib(log *logging.Logger) *Raylib {
	return &Raylib{log: log}
}

func (r *Raylib) CreateWindow(title string, x, y, width, height int) (game.Window, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(width), int32(height), title)
	if !rl.IsWindowReady() {
		return nil, errors.New("raylib: window could not be initialized")
	}
	rl.SetWindowPosition(x, y)

	r.log.Debugf("raylib window %q %dx%d at (%d,%d)", title, width, height, x, y)
	return &raylibWindow{}, nil
}

// Quit is a no-op: CloseWindow already tears raylib down.
func (r *Raylib) Quit() {}

type raylibWindow struct {
	quitSent bool
}

func (w *raylibWindow) CreateRenderer() (game.Renderer, error) {
	return &raylibRenderer{color: rl.Black}, nil
}

// PollEvent reports a close request once, then queued key presses.
// raylib refreshes both when a frame is presented.
func (w *raylibWindow) PollEvent() (types.Event, bool) {
	if !w.quitSent && rl.WindowShouldClose() {
		w.quitSent = true
		return types.QuitEvent(), true
	}

	key := rl.GetKeyPressed()
	if key == 0 {
		return types.Event{}, false
	}
	return types.KeyEvent(raylibKey(key)), true
}

func (w *raylibWindow) Delay(d time.Duration) {
	time.Sleep(d)
}

func (w *raylibWindow) Destroy() {
	rl.CloseWindow()
}

func raylibKey(key int32) types.Key {
	switch key {
	case rl.KeyUp, rl.KeyW:
		return types.KeyUp
	case rl.KeyDown, rl.KeyS:
		return types.KeyDown
	case rl.KeyLeft, rl.KeyA:
		return types.KeyLeft
	case rl.KeyRight, rl.KeyD:
		return types.KeyRight
	default:
		return types.KeyUnknown
	}
}

type raylibRenderer struct {
	color   rl.Color
	drawing bool
}

func (r *raylibRenderer) begin() {
	if !r.drawing {
		rl.BeginDrawing()
		r.drawing = true
	}
}

func (r *raylibRenderer) SetDrawColor(c types.Color) {
	r.color = rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (r *raylibRenderer) Clear() {
	r.begin()
	rl.ClearBackground(r.color)
}

func (r *raylibRenderer) FillRect(b types.Box) {
	r.begin()
	rl.DrawRectangle(int32(b.X), int32(b.Y), int32(b.W), int32(b.H), r.color)
}

func (r *raylibRenderer) Present() {
	r.begin()
	rl.EndDrawing()
	r.drawing = false
}

func (r *raylibRenderer) Destroy() {}
