package manager

import (
	"classic-snake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	SelfCollision
	WallCollision
	HudCollision
)

func (c CollisionType) String() string {
	switch c {
	case SelfCollision:
		return "self"
	case WallCollision:
		return "wall"
	case HudCollision:
		return "hud"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision checks all types of collisions for a freshly moved head.
// body must not contain the head itself.
func (cm *CollisionManager) CheckCollision(head types.Point, body []types.Point) CollisionType {
	if cm.IsSelfCollision(head, body) {
		return SelfCollision
	}
	if cm.IsWallCollision(head) {
		return WallCollision
	}
	if cm.IsHudCollision(head) {
		return HudCollision
	}
	return NoCollision
}

// IsSelfCollision checks whether head lands on a body cell
func (cm *CollisionManager) IsSelfCollision(head types.Point, body []types.Point) bool {
	for _, part := range body {
		if head == part {
			return true
		}
	}
	return false
}

// IsWallCollision checks if a position is outside the playfield
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.IsInsidePlayfield(pos)
}

// IsHudCollision checks if a position is inside the score box
func (cm *CollisionManager) IsHudCollision(pos types.Point) bool {
	return cm.grid.IsInsideHud(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Food) bool {
	return pos == food.Pos
}

// ValidateSpawnPosition checks if a position is valid for placing food.
// The candidate must sit on a cell and not share a row or column with the
// previous food.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, body []types.Point, previous types.Point) bool {
	if !cm.grid.IsAligned(pos) || pos.X == previous.X || pos.Y == previous.Y {
		return false
	}
	if cm.IsHudCollision(pos) || cm.IsWallCollision(pos) {
		return false
	}
	return !cm.IsSelfCollision(pos, body)
}
