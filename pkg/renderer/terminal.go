package renderer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/trytobebee/snake_term/pkg/config"
	"github.com/trytobebee/snake_term/pkg/game"
)

// ANSI control sequences
const (
	seqClear       = "\033[2J"
	seqHideCursor  = "\033[?25l"
	seqShowCursor  = "\033[?25h"
	seqEnterScreen = "\033[?1049h"
	seqLeaveScreen = "\033[?1049l"
)

// TerminalRenderer handles terminal-based rendering
type TerminalRenderer struct {
	out    *bufio.Writer
	buffer strings.Builder
}

// NewTerminalRenderer creates a renderer writing frames to out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{out: bufio.NewWriterSize(out, 16*1024)}
}

// Enter switches to the alternate screen and hides the cursor (call on start)
func (r *TerminalRenderer) Enter() error {
	return r.emit(seqEnterScreen + seqHideCursor)
}

// Leave shows the cursor and returns to the primary screen (call on exit)
func (r *TerminalRenderer) Leave() error {
	return r.emit(seqShowCursor + seqLeaveScreen)
}

// Render draws one full frame of g. The frame is assembled in memory and
// written out in one flush.
func (r *TerminalRenderer) Render(g *game.Game) error {
	r.buffer.Reset()
	r.buffer.WriteString(seqClear)
	r.buffer.WriteString(seqHideCursor)

	// Food
	r.cell(g.Food.X, g.Food.Y, config.StyleFood, config.CharFood)

	// Walls, corners are drawn twice
	for x := 0; x <= g.Width; x++ {
		r.cell(x, 0, config.StyleWall, config.CharWall)
		r.cell(x, g.Height, config.StyleWall, config.CharWall)
	}
	for y := 0; y <= g.Height; y++ {
		r.cell(0, y, config.StyleWall, config.CharWall)
		r.cell(g.Width, y, config.StyleWall, config.CharWall)
	}

	// Snake
	for i, p := range g.Snake.Body {
		if i == 0 {
			r.cell(p.X, p.Y, config.StyleSnake, config.CharHead)
		} else {
			r.cell(p.X, p.Y, config.StyleSnake, config.CharBody)
		}
	}

	moveTo(&r.buffer, 0, g.Height+3)
	fmt.Fprintf(&r.buffer, "Score: %d\r\n", g.Score)

	return r.emit(r.buffer.String())
}

func (r *TerminalRenderer) cell(x, y int, style, char string) {
	moveTo(&r.buffer, x, y)
	r.buffer.WriteString(style)
	r.buffer.WriteString(char)
	r.buffer.WriteString(config.StyleReset)
}

func (r *TerminalRenderer) emit(s string) error {
	if _, err := r.out.WriteString(s); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	if err := r.out.Flush(); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}

// moveTo positions the cursor at board cell (x, y). ANSI rows and columns are 1-based.
func moveTo(b *strings.Builder, x, y int) {
	fmt.Fprintf(b, "\033[%d;%dH", y+1, x+1)
}
