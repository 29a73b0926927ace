package game_test

import (
	"context"
	"testing"

	"snake-arcade/game"
	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/ui"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// zeroRand places every food at the origin, away from the snake's path
type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)] % n
	r.i++
	return v
}

func testLogger() *logging.Logger {
	logging.SetLevel(logging.WARNING, "game")
	return logging.MustGetLogger("game")
}

func newTestGame(t *testing.T, cfg game.Config, backend *ui.Headless, rng entity.Rand) *game.Game {
	t.Helper()
	g, err := game.NewGame(cfg, backend, rng, testLogger())
	require.NoError(t, err)
	return g
}

func TestNewGameSetup(t *testing.T) {
	backend := ui.NewHeadless()
	g := newTestGame(t, game.DefaultConfig(), backend, zeroRand{})

	require.NotNil(t, backend.Window)
	assert.Equal(t, "Snake", backend.Window.Title)
	assert.Equal(t, 400, backend.Window.X)
	assert.Equal(t, 150, backend.Window.Y)
	assert.Equal(t, 800, backend.Window.Width)
	assert.Equal(t, 600, backend.Window.Height)
	require.NotNil(t, backend.Window.Renderer)

	assert.True(t, g.Running())
	assert.NotEmpty(t, g.UUID)
	assert.Len(t, g.GetFoodList(), 1)
	assert.Equal(t, []types.Point{{X: 100, Y: 100}}, g.GetSnake().Body)
	assert.Equal(t, types.Point{X: types.Cell, Y: 0}, g.GetSnake().GetDirection())
}

func TestNewGameWindowFailure(t *testing.T) {
	backend := ui.NewHeadless()
	backend.FailWindow = errors.New("no display")

	_, err := game.NewGame(game.DefaultConfig(), backend, zeroRand{}, testLogger())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create window")
	assert.Contains(t, err.Error(), "no display")
	assert.Equal(t, 1, backend.QuitCalls)
}

func TestNewGameRendererFailure(t *testing.T) {
	backend := ui.NewHeadless()
	backend.FailRenderer = errors.New("no renderer")

	_, err := game.NewGame(game.DefaultConfig(), backend, zeroRand{}, testLogger())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "create renderer")
	assert.True(t, backend.Window.Destroyed)
	assert.Equal(t, 1, backend.QuitCalls)
}

func TestNewGameRejectsTinyPlayfield(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Width = 10

	_, err := game.NewGame(cfg, ui.NewHeadless(), zeroRand{}, testLogger())
	assert.Error(t, err)
}

func TestTurnRejection(t *testing.T) {
	backend := ui.NewHeadless().
		Script(0, types.KeyEvent(types.KeyLeft)).
		Script(1, types.KeyEvent(types.KeyDown))
	g := newTestGame(t, game.DefaultConfig(), backend, zeroRand{})
	ctx := context.Background()

	g.Step(ctx)
	assert.Equal(t, types.Point{X: types.Cell, Y: 0}, g.GetSnake().GetDirection())
	assert.Equal(t, types.Point{X: 120, Y: 100}, g.GetSnake().GetHeadPosition())

	g.Step(ctx)
	assert.Equal(t, types.Point{X: 0, Y: types.Cell}, g.GetSnake().GetDirection())
	assert.Equal(t, types.Point{X: 120, Y: 120}, g.GetSnake().GetHeadPosition())
}

func TestUnknownKeyIgnored(t *testing.T) {
	backend := ui.NewHeadless().Script(0, types.KeyEvent(types.KeyUnknown))
	g := newTestGame(t, game.DefaultConfig(), backend, zeroRand{})

	g.Step(context.Background())

	assert.Equal(t, types.Point{X: types.Cell, Y: 0}, g.GetSnake().GetDirection())
	assert.True(t, g.Running())
}

func TestQuitDrainsRemainingEvents(t *testing.T) {
	backend := ui.NewHeadless().Script(0, types.QuitEvent(), types.KeyEvent(types.KeyUp))
	g := newTestGame(t, game.DefaultConfig(), backend, zeroRand{})

	g.Step(context.Background())

	assert.False(t, g.Running())
	assert.Equal(t, manager.ReasonQuit, g.StopReason())
	assert.Equal(t, types.Point{X: types.Cell, Y: 0}, g.GetSnake().GetDirection(), "keys after quit have no effect")
	assert.Equal(t, types.Point{X: 100, Y: 100}, g.GetSnake().GetHeadPosition(), "no simulation after quit")
	assert.Equal(t, 1, backend.Window.Frames, "frame still rendered")

	_, pending := backend.Window.PollEvent()
	assert.False(t, pending)
}

func TestWallCollisionEndsRun(t *testing.T) {
	backend := ui.NewHeadless()
	g := newTestGame(t, game.DefaultConfig(), backend, zeroRand{})

	g.Run(context.Background())

	// From x=100 moving right, the head reaches x=800 on tick 35.
	assert.Equal(t, 35, g.Ticks())
	assert.Equal(t, manager.ReasonWall, g.StopReason())
	assert.Equal(t, 35, backend.Window.Frames)
	assert.Equal(t, 35, backend.Window.Delays)
	assert.Equal(t, 35*types.TickInterval, backend.Window.Slept)

	last := backend.Window.Renderer.LastFrame
	require.Len(t, last, 2)
	assert.Equal(t, ui.DrawnRect{Box: types.CellBox(types.Point{X: 800, Y: 100}), Color: types.SnakeColor}, last[0],
		"final frame shows the losing position")
	assert.Equal(t, ui.DrawnRect{Box: types.CellBox(types.Point{}), Color: types.FoodColor}, last[1])

	assert.True(t, backend.Window.Renderer.Destroyed)
	assert.True(t, backend.Window.Destroyed)
	assert.Equal(t, 1, backend.QuitCalls)

	g.Close()
	assert.Equal(t, 1, backend.QuitCalls, "Close is idempotent")
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g := newTestGame(t, game.DefaultConfig(), ui.NewHeadless(), zeroRand{})
	g.GetSnake().Body = []types.Point{
		{X: 100, Y: 100}, {X: 100, Y: 120}, {X: 120, Y: 120}, {X: 120, Y: 100}, {X: 120, Y: 80},
	}

	g.Step(context.Background())

	assert.False(t, g.Running())
	assert.Equal(t, manager.ReasonSelf, g.StopReason())
}

func TestFoodConsumption(t *testing.T) {
	// First food lands on cell (7,5) = (140,100), two steps ahead of the head.
	g := newTestGame(t, game.DefaultConfig(), ui.NewHeadless(), &seqRand{vals: []int{7, 5}})
	ctx := context.Background()
	require.Equal(t, types.Point{X: 140, Y: 100}, g.GetFoodList()[0].Position)

	g.Step(ctx)
	assert.Equal(t, 1, g.GetSnake().Len())
	assert.Len(t, g.GetFoodList(), 1)

	g.Step(ctx)
	assert.Equal(t, []types.Point{{X: 140, Y: 100}, {X: 120, Y: 100}}, g.GetSnake().Body)
	assert.Empty(t, g.GetFoodList(), "eaten food is not replaced")
	assert.True(t, g.Running())
}

func TestSpawnCadence(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Width = 2000
	g := newTestGame(t, cfg, ui.NewHeadless(), zeroRand{})
	ctx := context.Background()

	for tick := 1; tick <= 2*types.FoodSpawnCycles; tick++ {
		g.Step(ctx)
		require.True(t, g.Running(), "tick %d", tick)
		assert.Len(t, g.GetFoodList(), 1+tick/types.FoodSpawnCycles, "tick %d", tick)
	}
}

func TestMaxTicks(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.MaxTicks = 3
	g := newTestGame(t, cfg, ui.NewHeadless(), zeroRand{})

	g.Run(context.Background())

	assert.Equal(t, 3, g.Ticks())
	assert.Equal(t, manager.ReasonTickLimit, g.StopReason())
}

func TestCancelledContextQuits(t *testing.T) {
	backend := ui.NewHeadless()
	g := newTestGame(t, game.DefaultConfig(), backend, zeroRand{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g.Run(ctx)

	assert.Equal(t, manager.ReasonQuit, g.StopReason())
	assert.Zero(t, g.Ticks())
	assert.Equal(t, 1, backend.Window.Frames)
	assert.True(t, backend.Window.Destroyed)
}

func TestRenderDrawsSnakeThenFood(t *testing.T) {
	backend := ui.NewHeadless()
	g := newTestGame(t, game.DefaultConfig(), backend, zeroRand{})
	g.GetSnake().Grow()

	g.Render()

	r := backend.Window.Renderer
	assert.Equal(t, 1, r.Clears)
	assert.Equal(t, []ui.DrawnRect{
		{Box: types.CellBox(types.Point{X: 100, Y: 100}), Color: types.SnakeColor},
		{Box: types.CellBox(types.Point{X: 80, Y: 100}), Color: types.SnakeColor},
		{Box: types.CellBox(types.Point{}), Color: types.FoodColor},
	}, r.LastFrame)
}

type fixedController struct {
	key   types.Key
	views int
}

func (c *fixedController) Steer(v game.View) types.Key {
	c.views++
	return c.key
}

func TestControllerUsesTurnRule(t *testing.T) {
	ctx := context.Background()

	down := &fixedController{key: types.KeyDown}
	g := newTestGame(t, game.DefaultConfig(), ui.NewHeadless(), zeroRand{})
	g.SetController(down)
	g.Step(ctx)
	assert.Equal(t, types.DOWN.ToPoint(), g.GetSnake().GetDirection())
	assert.Equal(t, 1, down.views)

	left := &fixedController{key: types.KeyLeft}
	g = newTestGame(t, game.DefaultConfig(), ui.NewHeadless(), zeroRand{})
	g.SetController(left)
	g.Step(ctx)
	assert.Equal(t, types.RIGHT.ToPoint(), g.GetSnake().GetDirection(), "reversal rejected")
}

type trace struct {
	bodies [][]types.Point
	foods  [][]types.Point
}

func record(seed uint64) trace {
	backend := ui.NewHeadless().
		Script(3, types.KeyEvent(types.KeyDown)).
		Script(9, types.KeyEvent(types.KeyRight)).
		Script(14, types.KeyEvent(types.KeyUp)).
		Script(20, types.KeyEvent(types.KeyRight)).
		Script(30, types.KeyEvent(types.KeyDown))
	cfg := game.DefaultConfig()
	cfg.MaxTicks = 120
	g, err := game.NewGame(cfg, backend, rand.New(rand.NewSource(seed)), testLogger())
	if err != nil {
		panic(err)
	}

	var tr trace
	for g.Running() {
		g.Step(context.Background())
		tr.bodies = append(tr.bodies, append([]types.Point(nil), g.GetSnake().Body...))
		var foods []types.Point
		for _, f := range g.GetFoodList() {
			foods = append(foods, f.Position)
		}
		tr.foods = append(tr.foods, foods)
	}
	g.Close()
	return tr
}

func TestDeterministicReplay(t *testing.T) {
	a := record(42)
	b := record(42)

	require.NotEmpty(t, a.bodies)
	assert.Equal(t, a.bodies, b.bodies)
	assert.Equal(t, a.foods, b.foods)
}
