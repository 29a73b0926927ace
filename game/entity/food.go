package entity

import (
	"snake-arcade/game/types"
)

// Rand is the random source food placement draws from.
// *golang.org/x/exp/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

type Food struct {
	Position types.Point
}

func NewFood(x, y int) Food {
	return Food{Position: types.Point{X: x, Y: y}}
}

func (f Food) Box() types.Box {
	return types.CellBox(f.Position)
}

// CreateFood places a food on a uniformly random cell of the grid. It does not
// avoid the snake or other food.
func CreateFood(rng Rand, grid types.Grid) Food {
	x := rng.Intn(grid.Cols()) * types.Cell
	y := rng.Intn(grid.Rows()) * types.Cell
	return NewFood(x, y)
}
