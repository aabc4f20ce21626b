package game

import (
	"errors"
	"math/rand"
	"time"
)

// ErrNoSpace is returned when every interior cell is occupied
var ErrNoSpace = errors.New("no free cell for food")

// Spawner places food on random free interior cells
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates a spawner drawing from rng. A nil rng is seeded from the clock.
func NewSpawner(rng *rand.Rand) *Spawner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Spawner{rng: rng}
}

// Spawn picks a uniformly random cell with x in [1, width) and y in [1, height)
// that is not occupied. It retries until a free cell comes up, after first
// making sure one exists.
func (s *Spawner) Spawn(width, height int, occupied func(Point) bool) (Point, error) {
	if freeCells(width, height, occupied) == 0 {
		return Point{}, ErrNoSpace
	}
	for {
		pos := Point{
			X: s.rng.Intn(width-1) + 1,
			Y: s.rng.Intn(height-1) + 1,
		}
		if !occupied(pos) {
			return pos, nil
		}
	}
}

func freeCells(width, height int, occupied func(Point) bool) int {
	free := 0
	for y := 1; y < height; y++ {
		for x := 1; x < width; x++ {
			if !occupied(Point{X: x, Y: y}) {
				free++
			}
		}
	}
	return free
}
