package game

import (
	"fmt"
	"time"

	"snake-arcade/game/types"
)

// Snapshot is a read-only copy of the game for renderers. Mutating it has
// no effect on the engine.
type Snapshot struct {
	ID           string
	Grid         types.Grid
	Snake        []types.Point // head first
	Food         types.Point
	Direction    types.Direction
	Score        int
	HighScore    int
	SpeedLevel   int
	TickInterval time.Duration
	Status       types.Status
	Running      bool
	Paused       bool
	GameOver     bool
	EndReason    types.EndReason
	Session      SessionStats
}

// SessionStats summarises the games finished since the process started.
type SessionStats struct {
	GamesPlayed  int
	AverageScore float64
	MedianScore  float64
	MaxScore     int
	Scores       []int // oldest first, capped at manager.MaxHistory
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		ID:           g.ID,
		Grid:         g.Grid,
		Snake:        g.snake.Cells(),
		Food:         g.food,
		Direction:    g.snake.Direction,
		Score:        g.score,
		HighScore:    g.stateMgr.GetHighScore(),
		SpeedLevel:   g.speedMgr.Level(),
		TickInterval: g.speedMgr.Interval(),
		Status:       g.status,
		Running:      g.status == types.Running || g.status == types.Paused,
		Paused:       g.status == types.Paused,
		GameOver:     g.status == types.GameOver,
		EndReason:    g.endReason,
		Session: SessionStats{
			GamesPlayed:  g.stateMgr.GamesPlayed(),
			AverageScore: g.stateMgr.GetAverageScore(),
			MedianScore:  g.stateMgr.GetMedianScore(),
			MaxScore:     g.stateMgr.GetMaxScore(),
			Scores:       g.sessionScores(),
		},
	}
}

func (g *Game) sessionScores() []int {
	history := g.stateMgr.GetScoreHistory()
	scores := make([]int, len(history))
	for i, r := range history {
		scores[i] = r.Score
	}
	return scores
}

// Overlay returns the title and message a renderer shows over the board,
// or empty strings while the game is running.
func (s Snapshot) Overlay() (title, message string) {
	switch s.Status {
	case types.Idle:
		return "SNAKE", "Press SPACE to start"
	case types.Paused:
		return "PAUSED", "Press P to resume"
	case types.GameOver:
		return "GAME OVER", fmt.Sprintf("Score: %d - Press SPACE to retry", s.Score)
	default:
		return "", ""
	}
}
