package input

import (
	"errors"
	"fmt"
	"os"

	"github.com/eiannone/keyboard"
	"golang.org/x/term"

	"github.com/trytobebee/snake_term/pkg/config"
	"github.com/trytobebee/snake_term/pkg/game"
)

var (
	// ErrNotTerminal is returned when stdin cannot be put into raw mode
	ErrNotTerminal = errors.New("stdin is not a terminal")
	// ErrClosed is returned when the key event stream ends
	ErrClosed = errors.New("keyboard closed")
)

// KeyboardHandler owns raw-mode keyboard input
type KeyboardHandler struct {
	events <-chan keyboard.KeyEvent
}

// KeyInput represents a keyboard input event
type KeyInput struct {
	Char rune
	Key  keyboard.Key
}

// NewKeyboardHandler creates a new keyboard input handler
func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Start switches the terminal to raw mode and begins reading keys in the
// background. Every successful Start must be paired with Stop.
func (h *KeyboardHandler) Start() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrNotTerminal
	}
	events, err := keyboard.GetKeys(config.KeyBuffer)
	if err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	h.events = events
	return nil
}

// Stop restores the terminal mode
func (h *KeyboardHandler) Stop() error {
	if err := keyboard.Close(); err != nil {
		return fmt.Errorf("close keyboard: %w", err)
	}
	return nil
}

// Events returns the key event channel, nil before Start
func (h *KeyboardHandler) Events() <-chan keyboard.KeyEvent {
	return h.events
}

// ParseDirection parses a key input into a direction
func ParseDirection(input KeyInput) (dir game.Direction, isValid bool) {
	// Handle arrow keys
	switch input.Key {
	case keyboard.KeyArrowUp:
		return game.Up, true
	case keyboard.KeyArrowDown:
		return game.Down, true
	case keyboard.KeyArrowLeft:
		return game.Left, true
	case keyboard.KeyArrowRight:
		return game.Right, true
	}

	// Handle WASD keys
	switch input.Char {
	case 'w', 'W':
		return game.Up, true
	case 's', 'S':
		return game.Down, true
	case 'a', 'A':
		return game.Left, true
	case 'd', 'D':
		return game.Right, true
	}

	return game.Up, false
}

// IsQuit checks if the input is a quit command
func IsQuit(input KeyInput) bool {
	switch input.Key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return true
	}
	return input.Char == 'q' || input.Char == 'Q'
}
