package config

import "time"

// Game board dimensions. The wall ring sits on x=0, x=Width, y=0 and y=Height.
const (
	Width  = 20
	Height = 20
)

// Loop timing
const (
	TickDuration = 150 * time.Millisecond // Fixed budget per tick
	KeyBuffer    = 10                     // Pending key events kept by the keyboard reader
)

// Starting snake, head first
const (
	StartX      = 10
	StartY      = 8
	StartLength = 3
)

// Characters for rendering
const (
	CharWall = "#"
	CharFood = "*"
	CharHead = "*"
	CharBody = "●"
)

// ANSI styles
const (
	StyleWall  = "\033[90m"   // Dark grey
	StyleFood  = "\033[33m"   // Yellow
	StyleSnake = "\033[1;32m" // Bold green
	StyleReset = "\033[0m"
)
