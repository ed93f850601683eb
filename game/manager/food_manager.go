package manager

import (
	"errors"

	"classic-snake/game/types"

	"golang.org/x/exp/rand"
)

// maxSpawnAttempts bounds the random draws before falling back to a scan of
// every legal cell.
const maxSpawnAttempts = 1000

// ErrNoFreeCell is returned when no cell can legally hold the next food.
var ErrNoFreeCell = errors.New("no free cell for food")

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
	food         types.Food
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// Reset forgets the current food so the next spawn has no row or column to
// avoid other than the origin.
func (fm *FoodManager) Reset() {
	fm.food = types.Food{}
}

// GetFood returns the food currently on the board.
func (fm *FoodManager) GetFood() types.Food {
	return fm.food
}

// PlaceFood puts food at a known cell, bypassing the placement rules.
func (fm *FoodManager) PlaceFood(food types.Food) {
	fm.food = food
}

// Spawn replaces the current food with a freshly generated one.
func (fm *FoodManager) Spawn(body []types.Point) (types.Food, error) {
	food, err := fm.GenerateFood(body, fm.food.Pos)
	if err != nil {
		return fm.food, err
	}
	fm.food = food
	return food, nil
}

// GenerateFood draws a cell uniformly inside the spawn area, re-drawing
// while it lands on the snake, in the score box, or on the row or column of
// previous. The bonus flag is drawn independently of the position.
func (fm *FoodManager) GenerateFood(body []types.Point, previous types.Point) (types.Food, error) {
	bonus := fm.rng.Intn(types.BonusOdds) == 0

	for i := 0; i < maxSpawnAttempts; i++ {
		pos := fm.randomCell()
		if fm.collisionMgr.ValidateSpawnPosition(pos, body, previous) {
			return types.Food{Pos: pos, Bonus: bonus}, nil
		}
	}

	free := fm.freeCells(body, previous)
	if len(free) == 0 {
		return types.Food{}, ErrNoFreeCell
	}
	return types.Food{Pos: free[fm.rng.Intn(len(free))], Bonus: bonus}, nil
}

// spawnArea returns the inclusive cell index range food may be drawn from:
// two cells from the top-left edge and four cells short of the far bounds.
// Re-draws use the same range. Shrinking it on re-draw to keep clear of the
// score box would skew placement toward the top-left and can leave no legal
// cell on a crowded board; ValidateSpawnPosition rejects score box cells
// instead.
func (fm *FoodManager) spawnArea() (minCol, maxCol, minRow, maxRow int) {
	c := fm.grid.Cell
	return 2, (fm.grid.BoundX() - 4*c) / c, 2, (fm.grid.BoundY() - 4*c) / c
}

func (fm *FoodManager) randomCell() types.Point {
	minCol, maxCol, minRow, maxRow := fm.spawnArea()
	return types.Point{
		X: (minCol + fm.rng.Intn(maxCol-minCol+1)) * fm.grid.Cell,
		Y: (minRow + fm.rng.Intn(maxRow-minRow+1)) * fm.grid.Cell,
	}
}

func (fm *FoodManager) freeCells(body []types.Point, previous types.Point) []types.Point {
	minCol, maxCol, minRow, maxRow := fm.spawnArea()
	free := make([]types.Point, 0)
	for col := minCol; col <= maxCol; col++ {
		for row := minRow; row <= maxRow; row++ {
			pos := types.Point{X: col * fm.grid.Cell, Y: row * fm.grid.Cell}
			if fm.collisionMgr.ValidateSpawnPosition(pos, body, previous) {
				free = append(free, pos)
			}
		}
	}
	return free
}
