package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/trytobebee/snake_term/pkg/config"
	"github.com/trytobebee/snake_term/pkg/game"
	"github.com/trytobebee/snake_term/pkg/input"
	"github.com/trytobebee/snake_term/pkg/loop"
	"github.com/trytobebee/snake_term/pkg/renderer"
)

func main() {
	flag.Parse()

	score, err := run()
	if err != nil {
		glog.Errorf("snake: %v", err)
		glog.Flush()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	glog.Flush()
	fmt.Printf("game over scored %d\n", score)
}

// run owns the terminal for the duration of one game. Raw mode and the
// alternate screen are released by defers, so every return and panic
// restores the terminal before main prints anything.
func run() (score int, err error) {
	session := uuid.NewString()
	glog.Infof("[%s] starting snake on a %dx%d board", session, config.Width, config.Height)
	checkTerminalSize(session)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	keys := input.NewKeyboardHandler()
	if err := keys.Start(); err != nil {
		return 0, err
	}
	defer func() {
		if stopErr := keys.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}()

	screen := renderer.NewTerminalRenderer(os.Stdout)
	defer func() {
		if leaveErr := screen.Leave(); leaveErr != nil && err == nil {
			err = fmt.Errorf("leave alternate screen: %w", leaveErr)
		}
	}()
	if err := screen.Enter(); err != nil {
		return 0, fmt.Errorf("enter alternate screen: %w", err)
	}

	g := game.NewGame(config.Width, config.Height, nil)
	l := loop.New(g, input.NewPoller(keys.Events()), screen)
	l.Session = session

	res, err := l.Run(ctx)
	if err != nil {
		return res.Score, err
	}

	if res.Quit {
		glog.Infof("[%s] player quit after %d ticks, score %d", session, res.Ticks, res.Score)
	} else {
		glog.Infof("[%s] game ended (%s) after %d ticks, score %d", session, res.Reason, res.Ticks, res.Score)
	}
	return res.Score, nil
}

// checkTerminalSize warns when the window is too small to show the board
func checkTerminalSize(session string) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		glog.Warningf("[%s] cannot read terminal size: %v", session, err)
		return
	}
	// Board cells 0..Width and 0..Height plus the score line below.
	needCols, needRows := config.Width+1, config.Height+4
	if cols < needCols || rows < needRows {
		glog.Warningf("[%s] terminal is %dx%d, board needs %dx%d", session, cols, rows, needCols, needRows)
	}
}
