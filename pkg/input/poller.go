package input

import (
	"fmt"

	"github.com/eiannone/keyboard"

	"github.com/trytobebee/snake_term/pkg/game"
)

// Poller performs the per-tick non-blocking key check
type Poller struct {
	events <-chan keyboard.KeyEvent
}

// NewPoller creates a poller reading from events
func NewPoller(events <-chan keyboard.KeyEvent) *Poller {
	return &Poller{events: events}
}

// Poll returns the next pending key without waiting. ok is false when
// nothing is pending.
func (p *Poller) Poll() (input KeyInput, ok bool, err error) {
	select {
	case ev, open := <-p.events:
		if !open {
			return KeyInput{}, false, ErrClosed
		}
		if ev.Err != nil {
			return KeyInput{}, false, fmt.Errorf("read key: %w", ev.Err)
		}
		return KeyInput{Char: ev.Rune, Key: ev.Key}, true, nil
	default:
		return KeyInput{}, false, nil
	}
}

// Apply polls once and feeds the result to g. Directions go through
// Game.Turn, which refuses reversals. quit reports a quit key; it does not
// end the game itself.
func (p *Poller) Apply(g *game.Game) (quit bool, err error) {
	input, ok, err := p.Poll()
	if err != nil || !ok {
		return false, err
	}
	if IsQuit(input) {
		return true, nil
	}
	if dir, valid := ParseDirection(input); valid {
		g.Turn(dir)
	}
	return false, nil
}
