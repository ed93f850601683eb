package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultGridBounds(t *testing.T) {
	g := DefaultGrid()

	assert.Equal(t, 760, g.BoundX())
	assert.Equal(t, 560, g.BoundY())
	assert.Equal(t, 620, g.HudX())
	assert.Equal(t, 80, g.HudY())
	assert.Equal(t, Point{X: 400, Y: 300}, g.Center())
}

func TestIsInsidePlayfield(t *testing.T) {
	g := DefaultGrid()

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"top-left corner", Point{20, 20}, true},
		{"bottom-right corner", Point{760, 560}, true},
		{"left border", Point{0, 100}, false},
		{"top border", Point{100, 0}, false},
		{"right border", Point{780, 100}, false},
		{"bottom border", Point{100, 580}, false},
		{"center", Point{400, 300}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.IsInsidePlayfield(tt.p))
		})
	}
}

func TestIsInsideHud(t *testing.T) {
	g := DefaultGrid()

	assert.True(t, g.IsInsideHud(Point{620, 20}))
	assert.True(t, g.IsInsideHud(Point{760, 80}))
	assert.False(t, g.IsInsideHud(Point{600, 20}))
	assert.False(t, g.IsInsideHud(Point{620, 100}))
}

func TestIsAligned(t *testing.T) {
	g := DefaultGrid()

	assert.True(t, g.IsAligned(Point{40, 60}))
	assert.False(t, g.IsAligned(Point{41, 60}))
}
