package game

import (
	"errors"
	"math/rand"

	"github.com/golang/glog"
)

// NewGame creates a new game instance on a width x height board.
// rng drives food placement; nil seeds from the clock.
func NewGame(width, height int, rng *rand.Rand) *Game {
	g := &Game{
		Snake:   NewSnake(),
		Width:   width,
		Height:  height,
		status:  Running,
		spawner: NewSpawner(rng),
	}
	g.spawnFood()
	return g
}

// Status returns Running or Over
func (g *Game) Status() Status {
	return g.status
}

// IsOver reports whether the game reached its terminal state
func (g *Game) IsOver() bool {
	return g.status == Over
}

// Reason returns why the game ended, or ReasonNone while running
func (g *Game) Reason() EndReason {
	return g.reason
}

// Turn requests a new heading. Reversing into the neck is refused.
func (g *Game) Turn(d Direction) bool {
	if g.IsOver() {
		return false
	}
	changed := g.Snake.Turn(d)
	if changed {
		glog.V(2).Infof("turn %s", d)
	}
	return changed
}

// Update advances the game by one tick
func (g *Game) Update() {
	if g.IsOver() {
		return
	}

	next := g.Snake.NextHead()

	if g.hitsWall(next) {
		g.end(ReasonWall, next)
		return
	}

	grow := next == g.Food
	if g.hitsBody(next, grow) {
		g.end(ReasonSelf, next)
		return
	}

	if !grow {
		g.Snake.Advance(false)
		return
	}

	g.Score++
	g.Snake.Advance(true)
	g.spawnFood()
}

func (g *Game) hitsWall(p Point) bool {
	return p.X <= 0 || p.X >= g.Width || p.Y <= 0 || p.Y >= g.Height
}

// hitsBody checks p against the pre-move body. The tail only counts when the
// snake grows, since otherwise it leaves its cell on this same tick.
func (g *Game) hitsBody(p Point, grow bool) bool {
	body := g.Snake.Body
	if !grow {
		body = body[:len(body)-1]
	}
	for _, s := range body {
		if s == p {
			return true
		}
	}
	return false
}

func (g *Game) spawnFood() {
	pos, err := g.spawner.Spawn(g.Width, g.Height, g.Snake.Occupies)
	if errors.Is(err, ErrNoSpace) {
		g.end(ReasonBoardFull, g.Snake.Head())
		return
	}
	g.Food = pos
	glog.V(2).Infof("food spawned at (%d,%d)", pos.X, pos.Y)
}

func (g *Game) end(reason EndReason, at Point) {
	g.status = Over
	g.reason = reason
	glog.Infof("game over: %s at (%d,%d), score %d, length %d", reason, at.X, at.Y, g.Score, g.Snake.Len())
}
