package game

import (
	"context"
	"errors"
	"time"

	"classic-snake/game/entity"
	"classic-snake/game/manager"
	"classic-snake/game/types"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

// Input is the set of player signals gathered since the last tick.
type Input struct {
	Direction types.Direction
	Pause     bool
	Confirm   bool
	Click     bool
	AnyKey    bool
	Quit      bool
}

// Merge folds a later poll into in. The earliest direction wins so at most
// one turn is applied per tick.
func (in Input) Merge(later Input) Input {
	if in.Direction == types.None {
		in.Direction = later.Direction
	}
	in.Pause = in.Pause || later.Pause
	in.Confirm = in.Confirm || later.Confirm
	in.Click = in.Click || later.Click
	in.AnyKey = in.AnyKey || later.AnyKey
	in.Quit = in.Quit || later.Quit
	return in
}

// InputSource delivers edge-triggered player input. The current state lets
// the source decide what a pointer click on a menu control means.
type InputSource interface {
	Poll(state types.RunState) Input
}

// View is everything a renderer needs for one frame.
type View struct {
	State        types.RunState
	Body         []types.Point
	Orientation  int
	Food         types.Food
	Score        int
	HighScore    int
	NewHighScore bool
	GamesPlayed  int
	SessionBest  int
	Collision    manager.CollisionType
}

// Renderer draws a View.
type Renderer interface {
	Render(v View)
}

// Options configures a Game.
type Options struct {
	Grid         types.Grid
	BaseTickRate float64
	Rand         *rand.Rand
	Scores       *manager.StateManager
	Logger       zerolog.Logger
	Now          func() time.Time
}

// Game owns all mutable run data and advances it one tick at a time.
type Game struct {
	grid         types.Grid
	snake        *entity.Snake
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	state        types.RunState
	collision    manager.CollisionType
	baseTickRate float64
	log          zerolog.Logger
	metrics      *metrics
	now          func() time.Time
}

func NewGame(opts Options) (*Game, error) {
	if opts.Scores == nil {
		return nil, errors.New("game needs a score tracker")
	}
	if opts.Grid.Cell == 0 {
		opts.Grid = types.DefaultGrid()
	}
	if opts.BaseTickRate <= 0 {
		opts.BaseTickRate = types.BaseTickRate
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	mt, err := newMetrics()
	if err != nil {
		return nil, err
	}

	collisionMgr := manager.NewCollisionManager(opts.Grid)
	return &Game{
		grid:         opts.Grid,
		snake:        entity.NewSnake(opts.Grid.Center(), opts.Grid.Cell),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(opts.Grid, collisionMgr, opts.Rand),
		stateMgr:     opts.Scores,
		state:        types.Start,
		baseTickRate: opts.BaseTickRate,
		log:          opts.Logger,
		metrics:      mt,
		now:          opts.Now,
	}, nil
}

// Tick applies one tick of input. It returns false once the player asked
// to quit.
func (g *Game) Tick(ctx context.Context, in Input) bool {
	if in.Quit {
		g.log.Info().Str("state", g.state.String()).Msg("Quit requested")
		return false
	}

	switch g.state {
	case types.Start:
		if in.Confirm {
			g.reset(ctx)
		}
	case types.Playing:
		if in.Direction != types.None && !g.snake.SetDirection(in.Direction) {
			g.log.Debug().Stringer("direction", in.Direction).Msg("Reversal ignored")
		}
		if in.Pause {
			g.setState(types.Paused)
			return true
		}
		g.step(ctx)
	case types.Paused:
		if in.Click {
			g.setState(types.Playing)
		}
	case types.GameOver:
		if in.AnyKey || in.Click {
			g.reset(ctx)
		}
	}
	return true
}

// step moves the snake, then resolves collisions and food.
func (g *Game) step(ctx context.Context) {
	head := g.snake.Advance()

	if kind := g.collisionMgr.CheckCollision(head, g.snake.Neck()); kind != manager.NoCollision {
		g.metrics.collided(ctx, kind)
		g.gameOver(ctx, kind)
		return
	}

	food := g.foodMgr.GetFood()
	if g.collisionMgr.IsFoodCollision(head, food) {
		score := g.stateMgr.AddFood(food)
		g.metrics.ate(ctx, food.Bonus)
		g.log.Debug().Bool("bonus", food.Bonus).Int("score", score).Msg("Food eaten")

		if _, err := g.foodMgr.Spawn(g.snake.Body); err != nil {
			g.log.Warn().Err(err).Msg("Board is full")
			g.snake.Trim(score)
			g.gameOver(ctx, manager.NoCollision)
			return
		}
	}

	g.snake.Trim(g.stateMgr.GetScore())
}

// reset starts a fresh run and enters Playing.
func (g *Game) reset(ctx context.Context) {
	g.snake = entity.NewSnake(g.grid.Center(), g.grid.Cell)
	g.collision = manager.NoCollision
	g.stateMgr.StartRun(g.now())
	g.foodMgr.Reset()
	if _, err := g.foodMgr.Spawn(g.snake.Body); err != nil {
		g.log.Error().Err(err).Msg("Failed to place food")
	}
	g.metrics.runStarted(ctx)
	g.setState(types.Playing)
	g.log.Info().Str("run", g.stateMgr.GetRunID().String()).Msg("Run started")
}

// gameOver freezes the run. The score is settled exactly once per run.
func (g *Game) gameOver(ctx context.Context, kind manager.CollisionType) {
	g.collision = kind
	g.setState(types.GameOver)
	g.log.Info().
		Stringer("collision", kind).
		Int("score", g.stateMgr.GetScore()).
		Msg("Game over")

	if err := g.stateMgr.FinishRun(ctx, g.now()); err != nil {
		g.log.Error().Err(err).Msg("Failed to settle run")
	}
}

func (g *Game) setState(state types.RunState) {
	if g.state == state {
		return
	}
	g.log.Debug().Stringer("from", g.state).Stringer("to", state).Msg("State change")
	g.state = state
}

// State returns the current run state.
func (g *Game) State() types.RunState {
	return g.state
}

// TickRate is the target ticks per second: the base rate plus one per 50
// points, without an upper bound.
func (g *Game) TickRate() float64 {
	return g.baseTickRate + float64(g.stateMgr.GetScore())/types.ScorePerSpeedup
}

// TickInterval is the time between two simulation ticks.
func (g *Game) TickInterval() time.Duration {
	return time.Duration(float64(time.Second) / g.TickRate())
}

// View snapshots the state for rendering.
func (g *Game) View() View {
	body := make([]types.Point, len(g.snake.Body))
	copy(body, g.snake.Body)

	return View{
		State:        g.state,
		Body:         body,
		Orientation:  g.snake.Direction.Degrees(),
		Food:         g.foodMgr.GetFood(),
		Score:        g.stateMgr.GetScore(),
		HighScore:    g.stateMgr.GetHighScore(),
		NewHighScore: g.stateMgr.IsNewHighScore(),
		GamesPlayed:  g.stateMgr.GetGamesPlayed(),
		SessionBest:  g.stateMgr.GetSessionBest(),
		Collision:    g.collision,
	}
}
