package types

import "time"

// Grid represents the playfield extents in world units
type Grid struct {
	Width  int
	Height int
}

// Cols returns the number of cells across
func (g Grid) Cols() int {
	return g.Width / Cell
}

// Rows returns the number of cells down
func (g Grid) Rows() int {
	return g.Height / Cell
}

// Game constants
const (
	Cell            = 20                     // Size of one grid cell and of one movement step
	FoodSpawnCycles = 40                     // Ticks between scheduled food spawns
	TickInterval    = 100 * time.Millisecond // Fixed delay between ticks

	ScreenWidth  = 800
	ScreenHeight = 600
	WindowX      = 400
	WindowY      = 150
	WindowTitle  = "Snake"
)

type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neg returns the point mirrored through the origin
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Box is an axis-aligned rectangle in world units
type Box struct {
	X, Y, W, H int
}

// CellBox returns the Cell x Cell box whose top-left corner is p
func CellBox(p Point) Box {
	return Box{X: p.X, Y: p.Y, W: Cell, H: Cell}
}

type Color struct {
	R, G, B, A uint8
}

var (
	BackgroundColor = Color{R: 0, G: 0, B: 0, A: 255}
	SnakeColor      = Color{R: 0, G: 255, B: 0, A: 255}
	FoodColor       = Color{R: 255, G: 60, B: 0, A: 255}
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}
