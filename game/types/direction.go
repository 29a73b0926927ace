package types

// Direction represents a cardinal direction
type Direction int

const (
	NONE  Direction = iota // 0
	UP                     // 1
	RIGHT                  // 2
	DOWN                   // 3
	LEFT                   // 4
)

// ToPoint converts a Direction into a displacement of one cell
func (d Direction) ToPoint() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -Cell}
	case RIGHT:
		return Point{X: Cell, Y: 0}
	case DOWN:
		return Point{X: 0, Y: Cell}
	case LEFT:
		return Point{X: -Cell, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// DirectionOf maps a displacement back to its Direction, NONE if it is not cardinal
func DirectionOf(p Point) Direction {
	switch {
	case p.X == 0 && p.Y < 0:
		return UP
	case p.X > 0 && p.Y == 0:
		return RIGHT
	case p.X == 0 && p.Y > 0:
		return DOWN
	case p.X < 0 && p.Y == 0:
		return LEFT
	default:
		return NONE
	}
}

// TurnLeft returns the direction after a counter-clockwise quarter turn.
func (d Direction) TurnLeft() Direction {
	switch d {
	case UP:
		return LEFT
	case RIGHT:
		return UP
	case DOWN:
		return RIGHT
	case LEFT:
		return DOWN
	default:
		return d
	}
}

// TurnRight returns the direction after a clockwise quarter turn.
func (d Direction) TurnRight() Direction {
	switch d {
	case UP:
		return RIGHT
	case RIGHT:
		return DOWN
	case DOWN:
		return LEFT
	case LEFT:
		return UP
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	default:
		return "none"
	}
}
