package ai

import (
	"snake-arcade/game"
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// State is what the pilot sees around the head
type State struct {
	RelativeFoodDir [2]int  // Sign of food offset from head (x, y)
	FoodDistance    int     // Manhattan distance to the nearest food, in cells; -1 without food
	DangerDirs      [4]bool // Danger one step away (up, right, down, left)
}

var headings = [4]types.Direction{types.UP, types.RIGHT, types.DOWN, types.LEFT}

// Pilot is a greedy controller: it heads for the nearest food and never picks
// a step it can see is fatal when another one is safe.
type Pilot struct{}

func NewPilot() *Pilot {
	return &Pilot{}
}

// GetState derives the pilot's state from a view of the playfield
func (p *Pilot) GetState(v game.View) State {
	head := v.Body[0]
	snake := &entity.Snake{Body: v.Body, Direction: v.Direction}
	collisionMgr := manager.NewCollisionManager(v.Grid)

	var state State
	for i, d := range headings {
		state.DangerDirs[i] = collisionMgr.IsDanger(head.Add(d.ToPoint()), snake)
	}

	food, ok := nearestFood(head, v.Foods)
	if !ok {
		state.FoodDistance = -1
		return state
	}
	state.RelativeFoodDir = [2]int{sign(food.X - head.X), sign(food.Y - head.Y)}
	state.FoodDistance = manhattanDistance(head, food) / types.Cell
	return state
}

// Steer picks a key for the current tick. Straight ahead is kept unless a
// turn gets closer to food or avoids danger.
func (p *Pilot) Steer(v game.View) types.Key {
	state := p.GetState(v)
	current := types.DirectionOf(v.Direction)

	best, bestScore := types.NONE, 0
	for i, d := range headings {
		if d == reverse(current) {
			continue
		}
		score := p.score(state, i, d, current)
		if best == types.NONE || score > bestScore {
			best, bestScore = d, score
		}
	}

	if best == current {
		return types.KeyUnknown
	}
	return types.KeyFor(best)
}

func (p *Pilot) score(state State, i int, d, current types.Direction) int {
	score := 0
	if state.DangerDirs[i] {
		score -= 100
	}
	if state.FoodDistance >= 0 {
		step := d.ToPoint()
		if sign(step.X) != 0 && sign(step.X) == state.RelativeFoodDir[0] {
			score += 10
		}
		if sign(step.Y) != 0 && sign(step.Y) == state.RelativeFoodDir[1] {
			score += 10
		}
	}
	if d == current {
		score++
	}
	return score
}

func nearestFood(head types.Point, foods []types.Point) (types.Point, bool) {
	var best types.Point
	bestDist := -1
	for _, f := range foods {
		dist := manhattanDistance(head, f)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = f, dist
		}
	}
	return best, bestDist >= 0
}

func reverse(d types.Direction) types.Direction {
	return d.TurnLeft().TurnLeft()
}

func manhattanDistance(p1, p2 types.Point) int {
	return abs(p2.X-p1.X) + abs(p2.Y-p1.Y)
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
