package entity

import (
	"classic-snake/game/types"
)

// Snake is the player's body. Body is ordered tail to head; the last
// element is the head.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
	cell      int
	lead      types.Point // Head position while Body is still empty
}

// NewSnake returns an empty snake whose first step starts from startPos,
// moving right.
func NewSnake(startPos types.Point, cell int) *Snake {
	return &Snake{
		Body:      make([]types.Point, 0),
		Direction: types.Right,
		cell:      cell,
		lead:      startPos,
	}
}

func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, newHead)
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[1:]
	}
}

func (s *Snake) GetHead() types.Point {
	if len(s.Body) == 0 {
		return s.lead
	}
	return s.Body[len(s.Body)-1]
}

// Neck returns every body cell except the head.
func (s *Snake) Neck() []types.Point {
	if len(s.Body) == 0 {
		return nil
	}
	return s.Body[:len(s.Body)-1]
}

// SetDirection changes the heading unless it would reverse a snake of two
// or more cells straight into itself. It reports whether the change was
// applied.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == types.None {
		return false
	}
	if len(s.Body) >= 2 && dir == s.Direction.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}

// Advance appends a new head one cell ahead in the current direction and
// returns it. The tail is left in place so collisions can be checked
// against the untrimmed body; call Trim afterwards.
func (s *Snake) Advance() types.Point {
	cell := s.cell
	if cell == 0 {
		cell = types.CellSize
	}
	newHead := s.GetHead().Add(s.Direction.ToPoint(cell))
	s.Move(newHead)
	return newHead
}

// Trim drops the oldest cell when the body is longer than score. The head
// is always kept, so with no score the snake is a single moving cell.
func (s *Snake) Trim(score int) {
	limit := score
	if limit < 1 {
		limit = 1
	}
	if len(s.Body) > limit {
		s.RemoveTail()
	}
}

// Len is the number of body cells.
func (s *Snake) Len() int {
	return len(s.Body)
}
