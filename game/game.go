package game

import (
	"context"
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"github.com/google/uuid"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

// Config holds the fixed parameters of one game session
type Config struct {
	Title          string
	WindowX        int
	WindowY        int
	Width          int
	Height         int
	TickInterval   time.Duration
	SpawnFrequency int
	MaxTicks       int // 0 means no limit
}

func DefaultConfig() Config {
	return Config{
		Title:          types.WindowTitle,
		WindowX:        types.WindowX,
		WindowY:        types.WindowY,
		Width:          types.ScreenWidth,
		Height:         types.ScreenHeight,
		TickInterval:   types.TickInterval,
		SpawnFrequency: types.FoodSpawnCycles,
	}
}

var (
	startPosition  = types.Point{X: 100, Y: 100}
	startDirection = types.RIGHT.ToPoint()
)

type Game struct {
	UUID   string
	Config Config
	Grid   types.Grid

	snake        *entity.Snake
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager

	backend    Backend
	window     Window
	renderer   Renderer
	controller Controller
	closed     bool

	log *logging.Logger
}

// NewGame opens the window and renderer and spawns the first food.
// Any failure here is a setup failure; resources acquired so far are released.
func NewGame(cfg Config, backend Backend, rng entity.Rand, log *logging.Logger) (*Game, error) {
	if cfg.Width < types.Cell || cfg.Height < types.Cell {
		return nil, errors.Errorf("playfield %dx%d is smaller than one cell", cfg.Width, cfg.Height)
	}
	if log == nil {
		log = logging.MustGetLogger("game")
	}

	window, err := backend.CreateWindow(cfg.Title, cfg.WindowX, cfg.WindowY, cfg.Width, cfg.Height)
	if err != nil {
		backend.Quit()
		return nil, errors.Wrap(err, "create window")
	}
	renderer, err := window.CreateRenderer()
	if err != nil {
		window.Destroy()
		backend.Quit()
		return nil, errors.Wrap(err, "create renderer")
	}

	grid := types.Grid{Width: cfg.Width, Height: cfg.Height}
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		UUID:         uuid.New().String(),
		Config:       cfg,
		Grid:         grid,
		snake:        entity.NewSnake(startPosition, startDirection),
		foodMgr:      manager.NewFoodManager(grid, cfg.SpawnFrequency, rng, collisionMgr),
		collisionMgr: collisionMgr,
		stateMgr:     manager.NewStateManager(),
		backend:      backend,
		window:       window,
		renderer:     renderer,
		log:          log,
	}

	food := g.foodMgr.Spawn()
	g.log.Debugf("initial food at %v", food.Position)

	return g, nil
}

// SetController installs a controller consulted once per tick after input is drained
func (g *Game) SetController(c Controller) {
	g.controller = c
}

// Run steps the game at a fixed delay until it stops, then releases the window.
// Cancelling ctx acts as a quit event.
func (g *Game) Run(ctx context.Context) {
	defer g.Close()

	g.log.Infof("session %s started: %dx%d grid, tick %v", g.UUID, g.Grid.Cols(), g.Grid.Rows(), g.Config.TickInterval)

	for g.stateMgr.IsRunning() {
		g.Step(ctx)
		g.window.Delay(g.Config.TickInterval)
	}

	g.log.Infof("session %s over: %s after %d ticks, length %d",
		g.UUID, g.stateMgr.Reason(), g.stateMgr.Ticks(), g.snake.Len())
}

// Step runs one tick: input, simulation, render. The frame is drawn even on
// the tick that stopped the game.
func (g *Game) Step(ctx context.Context) {
	g.HandleEvents(ctx)
	g.Update()
	g.Render()
}

// HandleEvents drains every pending event. After a quit the rest of the
// batch is drained without effect.
func (g *Game) HandleEvents(ctx context.Context) {
	if ctx.Err() != nil {
		g.stateMgr.Stop(manager.ReasonQuit)
	}

	for {
		ev, ok := g.window.PollEvent()
		if !ok {
			break
		}
		if !g.stateMgr.IsRunning() {
			continue
		}

		switch ev.Kind {
		case types.EventQuit:
			g.stateMgr.Stop(manager.ReasonQuit)
		case types.EventKeyDown:
			g.applyKey(ev.Key)
		}
	}

	if g.controller != nil && g.stateMgr.IsRunning() {
		g.applyKey(g.controller.Steer(g.View()))
	}
}

// applyKey turns the snake if the key asks for a perpendicular heading.
// Reversal and unknown keys are ignored.
func (g *Game) applyKey(k types.Key) {
	candidate := k.Direction().ToPoint()
	if canTurn(g.snake.GetDirection(), candidate) {
		g.snake.SetDirection(candidate)
	}
}

func canTurn(current, candidate types.Point) bool {
	return (candidate.X != 0 && current.X == 0) || (candidate.Y != 0 && current.Y == 0)
}

// Update advances the simulation by one grid step
func (g *Game) Update() {
	if !g.stateMgr.IsRunning() {
		return
	}
	tick := g.stateMgr.Tick()

	g.snake.Move()

	head := g.snake.GetHeadPosition()
	if eaten := g.foodMgr.Consume(head); eaten > 0 {
		for i := 0; i < eaten; i++ {
			g.snake.Grow()
		}
		g.log.Debugf("tick %d: ate %d food at %v, length %d", tick, eaten, head, g.snake.Len())
	}

	if collision := g.collisionMgr.CheckCollision(g.snake); collision != types.NoCollision {
		g.log.Debugf("tick %d: %s collision at %v", tick, collision, head)
		g.stateMgr.Stop(manager.ReasonFor(collision))
	}

	if food, spawned := g.foodMgr.Update(); spawned {
		g.log.Debugf("tick %d: spawned food at %v", tick, food.Position)
	}

	if g.Config.MaxTicks > 0 && tick >= g.Config.MaxTicks {
		g.stateMgr.Stop(manager.ReasonTickLimit)
	}
}

// Render draws the snake and all food in one frame
func (g *Game) Render() {
	g.renderer.SetDrawColor(types.BackgroundColor)
	g.renderer.Clear()

	g.renderer.SetDrawColor(types.SnakeColor)
	for _, p := range g.snake.Body {
		g.renderer.FillRect(types.CellBox(p))
	}

	g.renderer.SetDrawColor(types.FoodColor)
	for _, food := range g.foodMgr.GetFoodList() {
		g.renderer.FillRect(food.Box())
	}

	g.renderer.Present()
}

// Close releases the renderer, the window and the backend. Safe to call twice.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.renderer.Destroy()
	g.window.Destroy()
	g.backend.Quit()
}

// View snapshots the playfield for a Controller
func (g *Game) View() View {
	body := make([]types.Point, len(g.snake.Body))
	copy(body, g.snake.Body)

	foods := make([]types.Point, 0, len(g.foodMgr.GetFoodList()))
	for _, food := range g.foodMgr.GetFoodList() {
		foods = append(foods, food.Position)
	}

	return View{
		Grid:      g.Grid,
		Body:      body,
		Direction: g.snake.GetDirection(),
		Foods:     foods,
	}
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFoodList() []entity.Food {
	return g.foodMgr.GetFoodList()
}

func (g *Game) Running() bool {
	return g.stateMgr.IsRunning()
}

func (g *Game) StopReason() manager.StopReason {
	return g.stateMgr.Reason()
}

func (g *Game) Ticks() int {
	return g.stateMgr.Ticks()
}
