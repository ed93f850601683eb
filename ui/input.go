package ui

import (
	"classic-snake/game"
	"classic-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var directionKeys = []struct {
	keys []int32
	dir  types.Direction
}{
	{[]int32{rl.KeyUp, rl.KeyW}, types.Up},
	{[]int32{rl.KeyDown, rl.KeyS}, types.Down},
	{[]int32{rl.KeyLeft, rl.KeyA}, types.Left},
	{[]int32{rl.KeyRight, rl.KeyD}, types.Right},
}

// Input polls the raylib keyboard and mouse once per frame.
type Input struct {
	menu *Menu
}

func NewInput(menu *Menu) *Input {
	return &Input{menu: menu}
}

// Poll implements game.InputSource. On the welcome screen a click on the
// start button confirms and a click on the quit button quits.
func (i *Input) Poll(state types.RunState) game.Input {
	var in game.Input

	for _, dk := range directionKeys {
		for _, key := range dk.keys {
			if in.Direction == types.None && rl.IsKeyPressed(key) {
				in.Direction = dk.dir
			}
		}
	}

	in.Pause = rl.IsKeyPressed(rl.KeyP)
	in.Confirm = rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)
	in.Click = rl.IsMouseButtonPressed(rl.MouseButtonLeft)
	in.AnyKey = rl.GetKeyPressed() != 0
	in.Quit = rl.WindowShouldClose() || rl.IsKeyPressed(rl.KeyQ)

	if state == types.Start {
		in.Confirm = in.Confirm || i.menu.Start.Clicked()
		in.Quit = in.Quit || i.menu.Quit.Clicked()
	}
	return in
}
