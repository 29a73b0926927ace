package manager

import (
	"snake-arcade/game/types"
)

// RunState is the state of the game loop state machine
type RunState int

const (
	Running RunState = iota
	Stopped
)

func (s RunState) String() string {
	if s == Stopped {
		return "stopped"
	}
	return "running"
}

// StopReason records why the loop left Running
type StopReason int

const (
	ReasonNone StopReason = iota
	ReasonQuit
	ReasonWall
	ReasonSelf
	ReasonTickLimit
)

func (r StopReason) String() string {
	switch r {
	case ReasonQuit:
		return "quit"
	case ReasonWall:
		return "wall collision"
	case ReasonSelf:
		return "self collision"
	case ReasonTickLimit:
		return "tick limit"
	default:
		return "none"
	}
}

// ReasonFor maps a collision onto the stop reason it causes
func ReasonFor(c types.CollisionType) StopReason {
	switch c {
	case types.WallCollision:
		return ReasonWall
	case types.SelfCollision:
		return ReasonSelf
	default:
		return ReasonNone
	}
}

// StateManager tracks the Running/Stopped state and the tick count.
// Stopped is terminal: the first reason given is kept.
type StateManager struct {
	state  RunState
	reason StopReason
	ticks  int
}

func NewStateManager() *StateManager {
	return &StateManager{
		state:  Running,
		reason: ReasonNone,
	}
}

func (sm *StateManager) Stop(reason StopReason) {
	if sm.state == Stopped {
		return
	}
	sm.state = Stopped
	sm.reason = reason
}

func (sm *StateManager) IsRunning() bool {
	return sm.state == Running
}

func (sm *StateManager) State() RunState {
	return sm.state
}

func (sm *StateManager) Reason() StopReason {
	return sm.reason
}

// Tick counts one simulation step and returns the new total
func (sm *StateManager) Tick() int {
	sm.ticks++
	return sm.ticks
}

func (sm *StateManager) Ticks() int {
	return sm.ticks
}
