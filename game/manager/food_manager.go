package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

// samplesPerCell bounds rejection sampling before falling back to a scan.
const samplesPerCell = 4

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// GenerateFood picks a free cell uniformly at random. It samples both axes
// independently and rejects occupied cells; after samplesPerCell*cells
// misses it scans for the remaining free cells and picks one of those.
// ok is false only when the snake covers the whole grid.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (food types.Point, ok bool) {
	attempts := samplesPerCell * fm.grid.Cells()
	for i := 0; i < attempts; i++ {
		food = types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, true
		}
	}
	return fm.scanFreeCell(snake)
}

func (fm *FoodManager) scanFreeCell(snake *entity.Snake) (types.Point, bool) {
	occupied := make(map[types.Point]struct{}, snake.Len())
	for _, p := range snake.Body {
		occupied[p] = struct{}{}
	}
	free := make([]types.Point, 0, max(0, fm.grid.Cells()-len(occupied)))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}
