package ui

import (
	"time"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

// DrawnRect is one FillRect call recorded by the headless renderer
type DrawnRect struct {
	Box   types.Box
	Color types.Color
}

// Headless is a backend without a display. Events are scripted per frame and
// draw calls of the last presented frame are kept for inspection.
type Headless struct {
	// Sleep makes Delay actually wait; off by default.
	Sleep bool
	// FailWindow and FailRenderer make the corresponding creation fail.
	FailWindow   error
	FailRenderer error

	Window    *HeadlessWindow
	QuitCalls int

	script map[int][]types.Event
}

func NewHeadless() *Headless {
	return &Headless{script: make(map[int][]types.Event)}
}

// Script queues events that become pollable once frame frames have been presented.
// Frame 0 events are seen by the first tick.
func (h *Headless) Script(frame int, events ...types.Event) *Headless {
	h.script[frame] = append(h.script[frame], events...)
	return h
}

func (h *Headless) CreateWindow(title string, x, y, width, height int) (game.Window, error) {
	if h.FailWindow != nil {
		return nil, h.FailWindow
	}
	h.Window = &HeadlessWindow{
		Title:   title,
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		backend: h,
	}
	return h.Window, nil
}

func (h *Headless) Quit() {
	h.QuitCalls++
}

type HeadlessWindow struct {
	Title         string
	X, Y          int
	Width, Height int

	Renderer  *HeadlessRenderer
	Frames    int
	Delays    int
	Slept     time.Duration
	Destroyed bool

	backend *Headless
	pending []types.Event
}

func (w *HeadlessWindow) CreateRenderer() (game.Renderer, error) {
	if w.backend.FailRenderer != nil {
		return nil, w.backend.FailRenderer
	}
	w.Renderer = &HeadlessRenderer{window: w}
	return w.Renderer, nil
}

// Push queues events for the next poll
func (w *HeadlessWindow) Push(events ...types.Event) {
	w.pending = append(w.pending, events...)
}

func (w *HeadlessWindow) PollEvent() (types.Event, bool) {
	if events, ok := w.backend.script[w.Frames]; ok {
		w.pending = append(w.pending, events...)
		delete(w.backend.script, w.Frames)
	}
	if len(w.pending) == 0 {
		return types.Event{}, false
	}
	ev := w.pending[0]
	w.pending = w.pending[1:]
	return ev, true
}

func (w *HeadlessWindow) Delay(d time.Duration) {
	w.Delays++
	w.Slept += d
	if w.backend.Sleep {
		time.Sleep(d)
	}
}

func (w *HeadlessWindow) Destroy() {
	w.Destroyed = true
}

type HeadlessRenderer struct {
	LastFrame []DrawnRect
	Clears    int
	Destroyed bool

	window  *HeadlessWindow
	color   types.Color
	current []DrawnRect
}

func (r *HeadlessRenderer) SetDrawColor(c types.Color) {
	r.color = c
}

func (r *HeadlessRenderer) Clear() {
	r.Clears++
	r.current = nil
}

func (r *HeadlessRenderer) FillRect(b types.Box) {
	r.current = append(r.current, DrawnRect{Box: b, Color: r.color})
}

func (r *HeadlessRenderer) Present() {
	r.LastFrame = r.current
	r.current = nil
	r.window.Frames++
}

func (r *HeadlessRenderer) Destroy() {
	r.Destroyed = true
}
