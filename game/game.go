package game

import (
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Command is a control input. Commands act immediately, unlike directions
// which wait for the next tick.
type Command int

const (
	// CommandStart starts a new game from Idle or GameOver.
	CommandStart Command = iota
	// CommandPause toggles between Running and Paused.
	CommandPause
)

// TickResult reports what a single tick did.
type TickResult struct {
	Moved     bool
	Ate       bool
	LevelUp   bool
	HighScore bool
	Collision types.CollisionType
}

// Game is the tick engine. It is not safe for concurrent use: every call
// must come from the one goroutine that owns it.
type Game struct {
	ID        string
	Grid      types.Grid
	StartTime time.Time

	cfg       types.Config
	snake     *entity.Snake
	food      types.Point
	score     int
	status    types.Status
	endReason types.EndReason

	lastTick time.Duration
	primed   bool

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	speedMgr     *manager.SpeedManager
	stateMgr     *manager.StateManager
	inputMgr     *manager.InputManager

	log zerolog.Logger
	now func() time.Time
}

// Option customises a Game at construction.
type Option func(*options)

type options struct {
	log  zerolog.Logger
	seed uint64
	now  func() time.Time
}

// WithLogger sets the logger used for game events.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithSeed fixes the food placement RNG seed.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithClock replaces the wall clock used for game records.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// NewGame builds an Idle game. The high score is loaded from store once,
// here; store may be nil.
func NewGame(cfg types.Config, store storage.Store, opts ...Option) *Game {
	o := options{
		log:  zerolog.Nop(),
		seed: uint64(time.Now().UnixNano()),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	grid := cfg.Grid()
	collisionMgr := manager.NewCollisionManager(grid)
	g := &Game{
		Grid:         grid,
		cfg:          cfg,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, collisionMgr, o.seed),
		speedMgr:     manager.NewSpeedManager(cfg),
		stateMgr:     manager.NewStateManager(store, o.log),
		inputMgr:     manager.NewInputManager(),
		log:          o.log,
		now:          o.now,
	}
	g.Reset()
	g.log.Info().
		Int("columns", grid.Width).
		Int("rows", grid.Height).
		Int("high_score", g.stateMgr.GetHighScore()).
		Msg("game created")
	return g
}

// Reset replaces the game state wholesale and leaves the game Idle.
func (g *Game) Reset() {
	g.ID = uuid.New().String()
	g.StartTime = g.now()
	g.snake = entity.NewSnake(g.cfg.StartBody(), types.Right)
	g.score = 0
	g.status = types.Idle
	g.endReason = types.ReasonNone
	g.lastTick = 0
	g.primed = false
	g.speedMgr.Reset()
	g.placeFood()
}

// OnFrame is called once per presentation frame with the host's monotonic
// time. It runs a tick when the game is Running and at least one interval
// has passed since the previous tick; the first frame after a start ticks
// at once.
func (g *Game) OnFrame(now time.Duration) (TickResult, bool) {
	if g.status != types.Running {
		return TickResult{}, false
	}
	if g.primed && now-g.lastTick < g.speedMgr.Interval() {
		return TickResult{}, false
	}
	g.lastTick = now
	g.primed = true
	return g.Step(), true
}

// Step advances the snake by one cell. It does nothing unless the game is
// Running. A tick either commits fully or ends the game without touching
// the snake.
func (g *Game) Step() TickResult {
	var res TickResult
	if g.status != types.Running {
		return res
	}

	g.snake.CommitDirection()
	newHead := g.snake.Advance()

	if c := g.collisionMgr.CheckCollision(newHead, g.snake); c != types.NoCollision {
		res.Collision = c
		g.endGame(types.ReasonFor(c))
		return res
	}

	g.snake.Move(newHead)
	res.Moved = true

	if !g.collisionMgr.IsFoodCollision(newHead, g.food) {
		g.snake.RemoveTail()
		return res
	}

	g.score++
	res.Ate = true
	if g.stateMgr.UpdateScore(g.score) {
		res.HighScore = true
		g.log.Debug().Int("high_score", g.score).Msg("new high score")
	}
	if g.speedMgr.OnScore(g.score) {
		res.LevelUp = true
		g.log.Debug().
			Int("level", g.speedMgr.Level()).
			Dur("interval", g.speedMgr.Interval()).
			Msg("speed up")
	}
	if !g.placeFood() {
		g.endGame(types.ReasonBoardFull)
	}
	return res
}

// OnDirectionInput queues dir for the next tick. Reversals of the committed
// direction are dropped.
func (g *Game) OnDirectionInput(dir types.Direction) {
	g.snake.SetDirection(dir)
}

// OnControlCommand applies a start or pause command immediately.
func (g *Game) OnControlCommand(cmd Command) {
	switch cmd {
	case CommandStart:
		if g.status != types.Idle && g.status != types.GameOver {
			return
		}
		g.Reset()
		g.status = types.Running
		g.log.Info().Str("game", g.ID).Msg("game started")
	case CommandPause:
		switch g.status {
		case types.Running:
			g.status = types.Paused
		case types.Paused:
			g.status = types.Running
		}
	}
}

// HandleKey translates a logical key and applies it. The action is returned
// so the host can act on ActionQuit.
func (g *Game) HandleKey(key string) manager.Action {
	action := g.inputMgr.Translate(key)
	switch action.Kind {
	case manager.ActionDirection:
		g.OnDirectionInput(action.Direction)
	case manager.ActionStart:
		g.OnControlCommand(CommandStart)
	case manager.ActionPause:
		g.OnControlCommand(CommandPause)
	}
	return action
}

func (g *Game) placeFood() bool {
	food, ok := g.foodMgr.GenerateFood(g.snake)
	if ok {
		g.food = food
	}
	return ok
}

func (g *Game) endGame(reason types.EndReason) {
	g.status = types.GameOver
	g.endReason = reason

	record := manager.GameRecord{
		ID:         g.ID,
		StartTime:  g.StartTime,
		EndTime:    g.now(),
		Score:      g.score,
		SpeedLevel: g.speedMgr.Level(),
		Reason:     reason,
	}
	g.stateMgr.AddToHistory(record)
	g.log.Info().
		Str("game", g.ID).
		Stringer("reason", reason).
		Int("score", g.score).
		Int("level", record.SpeedLevel).
		Dur("duration", record.Duration()).
		Msg("game over")
}

func (g *Game) Status() types.Status {
	return g.status
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) HighScore() int {
	return g.stateMgr.GetHighScore()
}

// History returns the finished games of this session, oldest first.
func (g *Game) History() []manager.GameRecord {
	return g.stateMgr.GetScoreHistory()
}
