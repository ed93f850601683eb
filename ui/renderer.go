package ui

import (
	"fmt"

	"classic-snake/game"
	"classic-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const borderPadding = 10 // Inset of text from the screen edges

var (
	backgroundColor = rl.NewColor(0, 0, 128, 255)
	playfieldColor  = rl.RayWhite
	snakeColor      = rl.NewColor(0, 160, 60, 255)
	hudColor        = rl.NewColor(20, 20, 60, 255)
)

type Renderer struct {
	grid     types.Grid
	menu     *Menu
	fontSize int32
}

func NewRenderer(grid types.Grid, menu *Menu) *Renderer {
	return &Renderer{
		grid:     grid,
		menu:     menu,
		fontSize: int32(grid.Height / 30),
	}
}

// Render implements game.Renderer. raylib paces frames through
// SetTargetFPS, so EndDrawing is where the frame wait happens.
func (r *Renderer) Render(v game.View) {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(backgroundColor)

	if v.State == types.Start {
		r.drawWelcome(v)
		return
	}
	rl.SetMouseCursor(rl.MouseCursorDefault)

	r.drawPlayfield()
	r.drawFood(v.Food)
	r.drawSnake(v.Body, v.Orientation)
	r.drawHud(v)

	switch v.State {
	case types.Paused:
		r.drawPaused()
	case types.GameOver:
		r.drawGameOver(v)
	}
}

func (r *Renderer) drawPlayfield() {
	c := int32(r.grid.Cell)
	rl.DrawRectangle(c, c, int32(r.grid.BoundX()), int32(r.grid.BoundY()), playfieldColor)
}

func (r *Renderer) drawFood(food types.Food) {
	color := rl.Red
	if food.Bonus {
		color = rl.Gold
	}
	c := int32(r.grid.Cell)
	rl.DrawRectangle(int32(food.Pos.X), int32(food.Pos.Y), c, c, color)
}

func (r *Renderer) drawSnake(body []types.Point, orientation int) {
	c := int32(r.grid.Cell)
	for j, p := range body {
		color := snakeColor
		if j == len(body)-1 {
			color = rl.NewColor(
				uint8(float32(snakeColor.R)*1.3),
				uint8(float32(snakeColor.G)*1.3),
				uint8(float32(snakeColor.B)*1.3),
				255)
		}
		rl.DrawRectangle(int32(p.X), int32(p.Y), c, c, color)
	}

	if len(body) > 0 {
		head := body[len(body)-1]
		tri := headTriangle(float32(head.X), float32(head.Y), float32(c), orientation)
		rl.DrawTriangle(tri[0], tri[1], tri[2], rl.Yellow)
	}
}

// headTriangle returns the direction indicator for a head cell at x, y,
// wound counter-clockwise as raylib expects.
func headTriangle(x, y, cell float32, orientation int) [3]rl.Vector2 {
	half := cell / 2
	switch orientation {
	case 270: // Right
		return [3]rl.Vector2{{X: x + cell, Y: y + half}, {X: x + half, Y: y}, {X: x + half, Y: y + cell}}
	case 90: // Left
		return [3]rl.Vector2{{X: x, Y: y + half}, {X: x + half, Y: y + cell}, {X: x + half, Y: y}}
	case 180: // Down
		return [3]rl.Vector2{{X: x + half, Y: y + cell}, {X: x + cell, Y: y + half}, {X: x, Y: y + half}}
	default: // Up
		return [3]rl.Vector2{{X: x + half, Y: y}, {X: x, Y: y + half}, {X: x + cell, Y: y + half}}
	}
}

func (r *Renderer) drawHud(v game.View) {
	x := int32(r.grid.HudX())
	lineHeight := r.fontSize + 4

	rl.DrawRectangle(x, 0, int32(types.HudWidth), int32(types.HudHeight), hudColor)
	rl.DrawRectangleLines(x, 0, int32(types.HudWidth), int32(types.HudHeight), rl.White)

	y := int32(borderPadding)
	rl.DrawText(fmt.Sprintf("Score: %d", v.Score), x+borderPadding, y, r.fontSize, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("High Score: %d", v.HighScore), x+borderPadding, y, r.fontSize, rl.Green)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("Games: %d  Best: %d", v.GamesPlayed, v.SessionBest), x+borderPadding, y, r.fontSize, rl.LightGray)
	y += lineHeight
	if v.NewHighScore {
		rl.DrawText("New High Score!", x+borderPadding, y, r.fontSize, rl.Gold)
	}
}

func (r *Renderer) drawWelcome(v game.View) {
	title := "Snake"
	titleSize := r.fontSize * 3
	r.drawCentered(title, int32(r.grid.Height)/4, titleSize, rl.White)
	r.drawCentered("Press Enter or click Start", int32(r.grid.Height)/4+titleSize+borderPadding, r.fontSize, rl.LightGray)
	r.drawCentered(fmt.Sprintf("High Score: %d", v.HighScore), int32(r.grid.Height)/4+titleSize+r.fontSize+2*borderPadding, r.fontSize, rl.Green)

	r.menu.Start.Draw(r.fontSize)
	r.menu.Quit.Draw(r.fontSize)

	if r.menu.AnyHovered() {
		rl.SetMouseCursor(rl.MouseCursorPointingHand)
	} else {
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}

func (r *Renderer) drawPaused() {
	rl.DrawRectangle(0, 0, int32(r.grid.Width), int32(r.grid.Height), rl.Fade(rl.Black, 0.5))
	r.drawCentered("Paused", int32(r.grid.Height)/2-r.fontSize, r.fontSize*2, rl.White)
	r.drawCentered("Click to resume", int32(r.grid.Height)/2+r.fontSize+borderPadding, r.fontSize, rl.LightGray)
}

func (r *Renderer) drawGameOver(v game.View) {
	r.drawCentered("Game Over!", int32(r.grid.Height)/2-r.fontSize*2, r.fontSize*2, rl.Red)
	r.drawCentered(fmt.Sprintf("Score: %d", v.Score), int32(r.grid.Height)/2+borderPadding, r.fontSize, rl.DarkGray)
	r.drawCentered("Press any key or click to play again", int32(r.grid.Height)/2+r.fontSize+2*borderPadding, r.fontSize, rl.DarkGray)
}

func (r *Renderer) drawCentered(text string, y, fontSize int32, color rl.Color) {
	textWidth := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (int32(r.grid.Width)-textWidth)/2, y, fontSize, color)
}
