package types

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Point is a grid cell. It is also used as a unit delta for directions.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction is one of the four unit vectors the snake can travel along.
type Direction Point

var (
	Up    = Direction{X: 0, Y: -1}
	Down  = Direction{X: 0, Y: 1}
	Left  = Direction{X: -1, Y: 0}
	Right = Direction{X: 1, Y: 0}
)

// Directions lists the four valid directions.
var Directions = [4]Direction{Up, Down, Left, Right}

// Delta returns the direction as a cell offset.
func (d Direction) Delta() Point {
	return Point(d)
}

// Opposite reports whether d and o cancel each other out.
func (d Direction) Opposite(o Direction) bool {
	return d.X+o.X == 0 && d.Y+o.Y == 0
}

// Valid reports whether d is one of the four unit directions.
func (d Direction) Valid() bool {
	for _, v := range Directions {
		if d == v {
			return true
		}
	}
	return false
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

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

// Status is the state of the tick engine.
type Status int

const (
	Idle Status = iota
	Running
	Paused
	GameOver
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game_over"
	default:
		return "idle"
	}
}

// EndReason records why a game reached GameOver.
type EndReason int

const (
	ReasonNone EndReason = iota
	ReasonWall
	ReasonSelf
	// ReasonBoardFull means no free cell was left for food.
	ReasonBoardFull
)

// ReasonFor maps a collision to the reason a game ended.
func ReasonFor(c CollisionType) EndReason {
	switch c {
	case WallCollision:
		return ReasonWall
	case SelfCollision:
		return ReasonSelf
	default:
		return ReasonNone
	}
}

func (r EndReason) String() string {
	switch r {
	case ReasonWall:
		return "wall"
	case ReasonSelf:
		return "self"
	case ReasonBoardFull:
		return "board_full"
	default:
		return "none"
	}
}

// Game constants
const (
	DefaultColumns        = 20
	DefaultRows           = 20
	DefaultBaseTickMs     = 150 // ms per move at speed 1
	DefaultSpeedStepMs    = 8   // ms faster per speed level
	DefaultMinTickMs      = 50
	DefaultPointsPerLevel = 5
	DefaultStartLength    = 3
)

// Config holds the construction-time parameters of the engine.
type Config struct {
	Columns        int `toml:"columns" validate:"min=4,max=256"`
	Rows           int `toml:"rows" validate:"min=4,max=256"`
	BaseTickMs     int `toml:"base_tick_ms" validate:"gt=0"`
	SpeedStepMs    int `toml:"speed_step_ms" validate:"gte=0"`
	MinTickMs      int `toml:"min_tick_ms" validate:"gt=0,ltefield=BaseTickMs"`
	PointsPerLevel int `toml:"points_per_level" validate:"gt=0"`
	StartLength    int `toml:"start_length" validate:"gt=0"`
}

// Grid returns the grid described by the config.
func (c Config) Grid() Grid {
	return Grid{Width: c.Columns, Height: c.Rows}
}

// StartBody returns the initial snake, head first, centred on the grid and
// extending to the left.
func (c Config) StartBody() []Point {
	head := Point{X: c.Columns / 2, Y: c.Rows / 2}
	body := make([]Point, c.StartLength)
	for i := range body {
		body[i] = Point{X: head.X - i, Y: head.Y}
	}
	return body
}
