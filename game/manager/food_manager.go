package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// FoodManager owns the active food set and the spawn schedule
type FoodManager struct {
	grid           types.Grid
	foodList       []entity.Food
	spawnTimer     int
	spawnFrequency int
	rng            entity.Rand
	collisionMgr   *CollisionManager
}

func NewFoodManager(grid types.Grid, spawnFrequency int, rng entity.Rand, collisionMgr *CollisionManager) *FoodManager {
	if spawnFrequency <= 0 {
		spawnFrequency = types.FoodSpawnCycles
	}
	return &FoodManager{
		grid:           grid,
		foodList:       make([]entity.Food, 0),
		spawnTimer:     0,
		spawnFrequency: spawnFrequency,
		rng:            rng,
		collisionMgr:   collisionMgr,
	}
}

// Update advances the spawn timer by one tick and spawns when it reaches the
// spawn frequency. Returns the spawned food, if any.
func (fm *FoodManager) Update() (entity.Food, bool) {
	fm.spawnTimer++
	if fm.spawnTimer < fm.spawnFrequency {
		return entity.Food{}, false
	}
	fm.spawnTimer = 0
	return fm.Spawn(), true
}

// Spawn appends one food at a random cell
func (fm *FoodManager) Spawn() entity.Food {
	food := entity.CreateFood(fm.rng, fm.grid)
	fm.foodList = append(fm.foodList, food)
	return food
}

// Consume removes every food under pos and returns how many were removed.
// Remaining food keeps its order.
func (fm *FoodManager) Consume(pos types.Point) int {
	eaten := 0
	kept := fm.foodList[:0]
	for _, food := range fm.foodList {
		if fm.collisionMgr.IsFoodCollision(pos, food.Position) {
			eaten++
			continue
		}
		kept = append(kept, food)
	}
	fm.foodList = kept
	return eaten
}

func (fm *FoodManager) GetFoodList() []entity.Food {
	return fm.foodList
}

func (fm *FoodManager) AddFood(food entity.Food) {
	fm.foodList = append(fm.foodList, food)
}

func (fm *FoodManager) SpawnTimer() int {
	return fm.spawnTimer
}

func (fm *FoodManager) SpawnFrequency() int {
	return fm.spawnFrequency
}
