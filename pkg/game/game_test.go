package game

import (
	"math/rand"
	"reflect"
	"testing"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame(20, 20, rand.New(rand.NewSource(1)))
	if g.IsOver() {
		t.Fatalf("new game should be running, reason %s", g.Reason())
	}
	return g
}

func TestNewGameInitialState(t *testing.T) {
	g := newTestGame(t)

	want := []Point{{X: 10, Y: 8}, {X: 9, Y: 8}, {X: 8, Y: 8}}
	if !reflect.DeepEqual(g.Snake.Body, want) {
		t.Fatalf("initial body = %v, want %v", g.Snake.Body, want)
	}
	if g.Snake.Direction != Right {
		t.Errorf("initial heading = %s, want right", g.Snake.Direction)
	}
	if g.Score != 0 || g.Status() != Running || g.Reason() != ReasonNone {
		t.Errorf("unexpected start: score=%d status=%d reason=%s", g.Score, g.Status(), g.Reason())
	}
	if g.Snake.Occupies(g.Food) {
		t.Errorf("food %v spawned on the snake", g.Food)
	}
}

func TestUpdatePlainMove(t *testing.T) {
	g := newTestGame(t)
	g.Food = Point{X: 2, Y: 2}

	g.Update()

	want := []Point{{X: 11, Y: 8}, {X: 10, Y: 8}, {X: 9, Y: 8}}
	if !reflect.DeepEqual(g.Snake.Body, want) {
		t.Fatalf("body after tick = %v, want %v", g.Snake.Body, want)
	}
	if g.Score != 0 {
		t.Errorf("score = %d, want 0", g.Score)
	}
	if g.IsOver() {
		t.Error("game should still be running")
	}
}

func TestUpdateWallCollision(t *testing.T) {
	tests := []struct {
		name string
		head Point
		dir  Direction
	}{
		{"right wall", Point{X: 19, Y: 8}, Right},
		{"left wall", Point{X: 1, Y: 8}, Left},
		{"top wall", Point{X: 8, Y: 1}, Up},
		{"bottom wall", Point{X: 8, Y: 19}, Down},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			g.Food = Point{X: 5, Y: 5}
			g.Score = 4
			g.Snake = &Snake{Body: []Point{tt.head}, Direction: tt.dir}

			g.Update()

			if !g.IsOver() || g.Reason() != ReasonWall {
				t.Fatalf("expected wall game over, got status=%d reason=%s", g.Status(), g.Reason())
			}
			if g.Score != 4 {
				t.Errorf("score changed on collision: %d", g.Score)
			}
			if g.Snake.Head() != tt.head {
				t.Errorf("snake moved into the wall: head %v", g.Snake.Head())
			}
		})
	}
}

func TestUpdateSelfCollision(t *testing.T) {
	g := newTestGame(t)
	g.Food = Point{X: 1, Y: 1}
	// Head at (5,5) turning down into (5,6), which is not the tail.
	g.Snake = &Snake{
		Body:      []Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6}},
		Direction: Down,
	}

	g.Update()

	if !g.IsOver() || g.Reason() != ReasonSelf {
		t.Fatalf("expected self collision, got status=%d reason=%s", g.Status(), g.Reason())
	}
	if g.Snake.Len() != 5 {
		t.Errorf("body changed on collision: %v", g.Snake.Body)
	}
}

func TestUpdateFollowsOwnTail(t *testing.T) {
	g := newTestGame(t)
	g.Food = Point{X: 1, Y: 1}
	// A closed 2x2 loop: the head moves into the cell the tail is leaving.
	g.Snake = &Snake{
		Body:      []Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}},
		Direction: Down,
	}

	g.Update()

	if g.IsOver() {
		t.Fatalf("moving into the vacated tail cell should be allowed, reason %s", g.Reason())
	}
	want := []Point{{X: 5, Y: 6}, {X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}}
	if !reflect.DeepEqual(g.Snake.Body, want) {
		t.Errorf("body = %v, want %v", g.Snake.Body, want)
	}
}

func TestUpdateEatsFood(t *testing.T) {
	g := newTestGame(t)
	g.Food = Point{X: 11, Y: 8}

	g.Update()

	if g.Score != 1 {
		t.Fatalf("score = %d, want 1", g.Score)
	}
	want := []Point{{X: 11, Y: 8}, {X: 10, Y: 8}, {X: 9, Y: 8}, {X: 8, Y: 8}}
	if !reflect.DeepEqual(g.Snake.Body, want) {
		t.Errorf("body = %v, want %v", g.Snake.Body, want)
	}
	if g.Snake.Occupies(g.Food) {
		t.Errorf("respawned food %v overlaps the grown body", g.Food)
	}
	if g.Food.X < 1 || g.Food.X >= g.Width || g.Food.Y < 1 || g.Food.Y >= g.Height {
		t.Errorf("respawned food %v outside the interior", g.Food)
	}
}

func TestUpdateBoardFull(t *testing.T) {
	// 3x3 board: the interior is the 2x2 block from (1,1) to (2,2).
	g := NewGame(3, 3, rand.New(rand.NewSource(1)))
	g.status = Running
	g.reason = ReasonNone
	g.Snake = &Snake{Body: []Point{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 1}}, Direction: Up}
	g.Food = Point{X: 1, Y: 1}

	g.Update()

	if g.Score != 1 {
		t.Errorf("score = %d, want 1", g.Score)
	}
	if !g.IsOver() || g.Reason() != ReasonBoardFull {
		t.Fatalf("expected board-full game over, got status=%d reason=%s", g.Status(), g.Reason())
	}
}

func TestUpdateIsNoopWhenOver(t *testing.T) {
	g := newTestGame(t)
	g.Snake = &Snake{Body: []Point{{X: 19, Y: 3}}, Direction: Right}
	g.Update()
	if !g.IsOver() {
		t.Fatal("expected game over")
	}

	before := append([]Point(nil), g.Snake.Body...)
	food, score := g.Food, g.Score
	g.Snake.Direction = Left
	for i := 0; i < 3; i++ {
		g.Update()
	}

	if !reflect.DeepEqual(g.Snake.Body, before) || g.Food != food || g.Score != score {
		t.Error("update mutated state after game over")
	}
	if g.Reason() != ReasonWall {
		t.Errorf("reason changed to %s", g.Reason())
	}
}

func TestTurnRejectedAfterGameOver(t *testing.T) {
	g := newTestGame(t)
	g.Snake = &Snake{Body: []Point{{X: 19, Y: 3}}, Direction: Right}
	g.Update()

	if g.Turn(Up) {
		t.Error("turn accepted after game over")
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	g := newTestGame(t)
	last := g.Score
	turns := []Direction{Down, Left, Up, Right}
	for i := 0; i < 200 && !g.IsOver(); i++ {
		if i%5 == 0 {
			g.Turn(turns[(i/5)%len(turns)])
		}
		g.Update()
		if g.Score < last {
			t.Fatalf("score went from %d to %d at tick %d", last, g.Score, i)
		}
		last = g.Score
		if !g.IsOver() && g.Snake.Occupies(g.Food) {
			t.Fatalf("food %v under the snake at tick %d", g.Food, i)
		}
	}
}
