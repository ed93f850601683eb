package game

import (
	"context"
	"time"

	"classic-snake/game/types"
)

// Loop drives a Game from an input source to a renderer. The renderer is
// expected to pace frames; the simulation only ticks when the tick interval
// has elapsed, while menus and pauses react on every frame.
type Loop struct {
	game     *Game
	input    InputSource
	renderer Renderer
	now      func() time.Time
}

func NewLoop(g *Game, input InputSource, renderer Renderer) *Loop {
	return &Loop{
		game:     g,
		input:    input,
		renderer: renderer,
		now:      g.now,
	}
}

// Run loops until quit is requested or ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	var pending Input
	last := l.now()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		state := l.game.State()
		pending = pending.Merge(l.input.Poll(state))

		if state != types.Playing || pending.Quit || l.now().Sub(last) >= l.game.TickInterval() {
			if !l.game.Tick(ctx, pending) {
				return nil
			}
			pending = Input{}
			last = l.now()
		}

		l.renderer.Render(l.game.View())
	}
}
