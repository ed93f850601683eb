package types

// Point is a pixel position on the board. Positions used by the game are
// always multiples of the cell size.
type Point struct {
	X, Y int
}

// Add returns p shifted by o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Direction represents a cardinal direction
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// ToPoint converts a Direction into a movement vector of one cell.
func (d Direction) ToPoint(cell int) Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -cell}
	case Right:
		return Point{X: cell, Y: 0}
	case Down:
		return Point{X: 0, Y: cell}
	case Left:
		return Point{X: -cell, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the 180° reversal of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// Degrees is the head sprite rotation for d. Only renderers care about it.
func (d Direction) Degrees() int {
	switch d {
	case Left:
		return 90
	case Down:
		return 180
	case Right:
		return 270
	default:
		return 0
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// Food is the single item on the board. Bonus food is worth more points.
type Food struct {
	Pos   Point
	Bonus bool
}

// Points awarded when the food is eaten.
func (f Food) Points() int {
	if f.Bonus {
		return BonusFoodPoints
	}
	return FoodPoints
}

// RunState is the top-level state of the game.
type RunState int

const (
	Start RunState = iota
	Playing
	Paused
	GameOver
)

func (s RunState) String() string {
	switch s {
	case Start:
		return "start"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game constants
const (
	CellSize      = 20
	DisplayWidth  = 800
	DisplayHeight = 600

	HudWidth  = 180 // Width of the score box in the top-right corner
	HudHeight = 100

	BaseTickRate    = 9.0 // Ticks per second with an empty score
	ScorePerSpeedup = 50  // Every 50 points add one tick per second

	BonusOdds       = 15 // One in 15 foods is a bonus
	FoodPoints      = 1
	BonusFoodPoints = 3
)
