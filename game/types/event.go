package types

type EventKind int

const (
	EventNone EventKind = iota
	EventQuit
	EventKeyDown
)

// Key is a backend-independent key code. Backends map their own codes onto it.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Event is one input event delivered by a backend
type Event struct {
	Kind EventKind
	Key  Key
}

func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

func KeyEvent(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// Direction returns the heading a key asks for, NONE for unrecognized keys
func (k Key) Direction() Direction {
	switch k {
	case KeyUp:
		return UP
	case KeyDown:
		return DOWN
	case KeyLeft:
		return LEFT
	case KeyRight:
		return RIGHT
	default:
		return NONE
	}
}

// KeyFor returns the key that requests the given heading
func KeyFor(d Direction) Key {
	switch d {
	case UP:
		return KeyUp
	case DOWN:
		return KeyDown
	case LEFT:
		return KeyLeft
	case RIGHT:
		return KeyRight
	default:
		return KeyUnknown
	}
}
