// Package loop drives the game at a fixed tick: poll input, update, render,
// then sleep out whatever is left of the tick.
package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/golang/glog"

	"github.com/trytobebee/snake_term/pkg/config"
	"github.com/trytobebee/snake_term/pkg/game"
)

// Input applies at most one pending key to the game without blocking
type Input interface {
	Apply(g *game.Game) (quit bool, err error)
}

// Renderer draws a frame of the game
type Renderer interface {
	Render(g *game.Game) error
}

// Clock is the loop's time source
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Result summarises a finished run
type Result struct {
	Score  int
	Ticks  int
	Quit   bool           // Player asked to leave
	Reason game.EndReason // Set when the game itself ended
}

// Loop owns the per-tick sequencing
type Loop struct {
	Clock   Clock
	Tick    time.Duration
	Session string

	game   *game.Game
	input  Input
	render Renderer
	ticks  int
}

// New creates a loop running on the system clock at config.TickDuration
func New(g *game.Game, input Input, render Renderer) *Loop {
	return &Loop{
		Clock:  systemClock{},
		Tick:   config.TickDuration,
		game:   g,
		input:  input,
		render: render,
	}
}

// Run blocks until the game ends, a quit key is pressed or ctx is done.
// Errors come only from terminal I/O and stop the loop at once.
func (l *Loop) Run(ctx context.Context) (Result, error) {
	glog.Infof("[%s] loop started, tick %v, board %dx%d", l.Session, l.Tick, l.game.Width, l.game.Height)

	for {
		select {
		case <-ctx.Done():
			glog.Infof("[%s] loop cancelled: %v", l.Session, ctx.Err())
			return l.result(true), nil
		default:
		}

		start := l.Clock.Now()

		quit, err := l.input.Apply(l.game)
		if err != nil {
			return l.result(false), fmt.Errorf("poll input: %w", err)
		}
		if quit {
			glog.Infof("[%s] quit requested after %d ticks", l.Session, l.ticks)
			return l.result(true), nil
		}

		l.game.Update()
		if err := l.render.Render(l.game); err != nil {
			return l.result(false), fmt.Errorf("render: %w", err)
		}
		l.ticks++

		if l.game.IsOver() {
			return l.result(false), nil
		}

		// Overruns are not caught up; the next tick starts right away.
		if elapsed := l.Clock.Now().Sub(start); elapsed < l.Tick {
			l.Clock.Sleep(l.Tick - elapsed)
		} else {
			glog.V(1).Infof("[%s] tick %d overran by %v", l.Session, l.ticks, elapsed-l.Tick)
		}
	}
}

func (l *Loop) result(quit bool) Result {
	return Result{
		Score:  l.game.Score,
		Ticks:  l.ticks,
		Quit:   quit,
		Reason: l.game.Reason(),
	}
}
