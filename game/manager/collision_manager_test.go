package manager

import (
	"testing"

	"classic-snake/game/entity"
	"classic-snake/game/types"

	"github.com/stretchr/testify/assert"
)

func TestCheckCollisionSelf(t *testing.T) {
	cm := NewCollisionManager(types.DefaultGrid())
	s := &entity.Snake{
		Body:      []types.Point{{X: 40, Y: 40}, {X: 60, Y: 40}, {X: 60, Y: 60}, {X: 40, Y: 60}},
		Direction: types.Left,
	}

	s.SetDirection(types.Up)
	head := s.Advance()

	assert.Equal(t, types.Point{X: 40, Y: 40}, head)
	assert.Equal(t, SelfCollision, cm.CheckCollision(head, s.Neck()))
}

func TestCheckCollisionWall(t *testing.T) {
	cm := NewCollisionManager(types.DefaultGrid())

	tests := []struct {
		name string
		head types.Point
		want CollisionType
	}{
		{"left of playfield", types.Point{X: 0, Y: 300}, WallCollision},
		{"above playfield", types.Point{X: 300, Y: 0}, WallCollision},
		{"right of playfield", types.Point{X: 780, Y: 300}, WallCollision},
		{"below playfield", types.Point{X: 300, Y: 580}, WallCollision},
		{"inside score box", types.Point{X: 640, Y: 40}, HudCollision},
		{"free cell", types.Point{X: 300, Y: 300}, NoCollision},
		{"lowest legal x", types.Point{X: 20, Y: 300}, NoCollision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cm.CheckCollision(tt.head, nil))
		})
	}
}

func TestCheckCollisionUsesExactCells(t *testing.T) {
	cm := NewCollisionManager(types.DefaultGrid())
	body := []types.Point{{X: 100, Y: 100}}

	assert.Equal(t, NoCollision, cm.CheckCollision(types.Point{X: 120, Y: 100}, body))
	assert.Equal(t, SelfCollision, cm.CheckCollision(types.Point{X: 100, Y: 100}, body))
}

func TestIsFoodCollision(t *testing.T) {
	cm := NewCollisionManager(types.DefaultGrid())
	food := types.Food{Pos: types.Point{X: 200, Y: 200}}

	assert.True(t, cm.IsFoodCollision(types.Point{X: 200, Y: 200}, food))
	assert.False(t, cm.IsFoodCollision(types.Point{X: 200, Y: 220}, food))
}

func TestValidateSpawnPosition(t *testing.T) {
	cm := NewCollisionManager(types.DefaultGrid())
	body := []types.Point{{X: 100, Y: 100}}
	prev := types.Point{X: 200, Y: 200}

	assert.True(t, cm.ValidateSpawnPosition(types.Point{X: 120, Y: 140}, body, prev))
	assert.False(t, cm.ValidateSpawnPosition(types.Point{X: 100, Y: 100}, body, prev), "on the snake")
	assert.False(t, cm.ValidateSpawnPosition(types.Point{X: 200, Y: 140}, body, prev), "same column")
	assert.False(t, cm.ValidateSpawnPosition(types.Point{X: 120, Y: 200}, body, prev), "same row")
	assert.False(t, cm.ValidateSpawnPosition(types.Point{X: 640, Y: 40}, body, prev), "score box")
	assert.False(t, cm.ValidateSpawnPosition(types.Point{X: 125, Y: 140}, body, prev), "off the cell grid")
}
