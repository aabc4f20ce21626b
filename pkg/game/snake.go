package game

import "github.com/trytobebee/snake_term/pkg/config"

// Snake is an ordered body, head first, with its current heading
type Snake struct {
	Body      []Point
	Direction Direction
}

// NewSnake creates the starting snake: a horizontal line heading right
func NewSnake() *Snake {
	body := make([]Point, config.StartLength)
	for i := range body {
		body[i] = Point{X: config.StartX - i, Y: config.StartY}
	}
	return &Snake{Body: body, Direction: Right}
}

// Head returns the first segment
func (s *Snake) Head() Point {
	return s.Body[0]
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment sits on p
func (s *Snake) Occupies(p Point) bool {
	for _, b := range s.Body {
		if b == p {
			return true
		}
	}
	return false
}

// NextHead computes the candidate head one step along the heading.
// Decrements stop at 0.
func (s *Snake) NextHead() Point {
	head := s.Body[0]
	switch s.Direction {
	case Up:
		head.Y = max(head.Y-1, 0)
	case Down:
		head.Y++
	case Left:
		head.X = max(head.X-1, 0)
	case Right:
		head.X++
	}
	return head
}

// Advance moves the snake one step. Without grow the tail is dropped so the
// length stays the same.
func (s *Snake) Advance(grow bool) {
	newHead := s.NextHead()
	if grow {
		s.Body = append(s.Body, Point{})
	}
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead
}

// Turn sets the heading unless d is the exact opposite of the current one.
// It returns whether the heading changed.
func (s *Snake) Turn(d Direction) bool {
	if d == s.Direction.Opposite() {
		return false
	}
	changed := s.Direction != d
	s.Direction = d
	return changed
}
