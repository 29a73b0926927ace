package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision reports the first losing collision of the snake's head:
// leaving the playfield, then running into its own body
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) types.CollisionType {
	if cm.IsWallCollision(snake.HeadBox()) {
		return types.WallCollision
	}
	if snake.CheckSelfCollision() {
		return types.SelfCollision
	}
	return types.NoCollision
}

// IsWallCollision reports whether any side of b lies outside [0,width]x[0,height]
func (cm *CollisionManager) IsWallCollision(b types.Box) bool {
	return b.X < 0 || b.Y < 0 || b.X+b.W > cm.grid.Width || b.Y+b.H > cm.grid.Height
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// IsDanger reports whether a snake whose head moved onto p would lose there
func (cm *CollisionManager) IsDanger(p types.Point, snake *entity.Snake) bool {
	if cm.IsWallCollision(types.CellBox(p)) {
		return true
	}

	// After a move the old head becomes segment 1 and the tail cell is
	// vacated, so only Body[1:len-1] can be hit.
	for i := 1; i < len(snake.Body)-1; i++ {
		if p == snake.Body[i] {
			return true
		}
	}
	return false
}
