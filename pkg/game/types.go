package game

// Point represents a coordinate on the game board
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Direction is the heading of the snake
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Opposite returns the direction pointing the other way
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Status is the state of the game state machine. Over is absorbing.
type Status int

const (
	Running Status = iota
	Over
)

// EndReason records why a game reached Over
type EndReason int

const (
	ReasonNone      EndReason = iota
	ReasonWall                // Head ran into the boundary ring
	ReasonSelf                // Head ran into its own body
	ReasonBoardFull           // No free cell left for food
)

func (r EndReason) String() string {
	switch r {
	case ReasonWall:
		return "wall"
	case ReasonSelf:
		return "self"
	case ReasonBoardFull:
		return "board full"
	}
	return "none"
}

// Game represents the main game state
type Game struct {
	Snake  *Snake
	Food   Point
	Score  int
	Width  int
	Height int

	status  Status
	reason  EndReason
	spawner *Spawner
}
