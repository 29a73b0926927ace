package game

import (
	"time"

	"snake-arcade/game/types"
)

// Backend is the graphics/windowing library the game draws through.
// Quit tears the library down after every window is destroyed.
type Backend interface {
	CreateWindow(title string, x, y, width, height int) (Window, error)
	Quit()
}

// Window owns the input queue of one on-screen playfield
type Window interface {
	CreateRenderer() (Renderer, error)
	// PollEvent returns the next pending event without blocking.
	// ok is false once the queue is empty.
	PollEvent() (ev types.Event, ok bool)
	Delay(d time.Duration)
	Destroy()
}

type Renderer interface {
	SetDrawColor(c types.Color)
	Clear()
	FillRect(b types.Box)
	Present()
	Destroy()
}

// Controller steers the snake in place of, or alongside, the keyboard.
// Its key goes through the same turn rule as a key press.
type Controller interface {
	Steer(v View) types.Key
}

// View is a read-only snapshot of the playfield handed to a Controller
type View struct {
	Grid      types.Grid
	Body      []types.Point
	Direction types.Point
	Foods     []types.Point
}
