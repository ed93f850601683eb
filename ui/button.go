package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Button is a labelled rectangle that highlights while the pointer is over it.
type Button struct {
	Bounds rl.Rectangle
	Label  string
	Color  rl.Color
	Hover  rl.Color
}

// Hovered reports whether the pointer is over the button.
func (b Button) Hovered() bool {
	return rl.CheckCollisionPointRec(rl.GetMousePosition(), b.Bounds)
}

// Clicked reports whether the left mouse button went down over the button this frame.
func (b Button) Clicked() bool {
	return rl.IsMouseButtonPressed(rl.MouseButtonLeft) && b.Hovered()
}

func (b Button) Draw(fontSize int32) {
	color := b.Color
	if b.Hovered() {
		color = b.Hover
	}
	rl.DrawRectangleRec(b.Bounds, color)
	rl.DrawRectangleLinesEx(b.Bounds, 2, rl.White)

	textWidth := rl.MeasureText(b.Label, fontSize)
	rl.DrawText(b.Label,
		int32(b.Bounds.X)+(int32(b.Bounds.Width)-textWidth)/2,
		int32(b.Bounds.Y)+(int32(b.Bounds.Height)-fontSize)/2,
		fontSize, rl.White)
}

// Menu holds the welcome screen controls. Input and Renderer share one so
// hit-testing and drawing agree on the layout.
type Menu struct {
	Start Button
	Quit  Button
}

const (
	buttonWidth  = 200
	buttonHeight = 50
	buttonGap    = 20
)

// NewMenu lays out the start and quit buttons centred below the title.
func NewMenu(screenWidth, screenHeight int32) *Menu {
	x := float32(screenWidth-buttonWidth) / 2
	y := float32(screenHeight) / 2

	return &Menu{
		Start: Button{
			Bounds: rl.NewRectangle(x, y, buttonWidth, buttonHeight),
			Label:  "Start",
			Color:  rl.DarkGreen,
			Hover:  rl.Lime,
		},
		Quit: Button{
			Bounds: rl.NewRectangle(x, y+buttonHeight+buttonGap, buttonWidth, buttonHeight),
			Label:  "Quit",
			Color:  rl.Maroon,
			Hover:  rl.Red,
		},
	}
}

// AnyHovered reports whether the pointer is over a menu control.
func (m *Menu) AnyHovered() bool {
	return m.Start.Hovered() || m.Quit.Hovered()
}
