package life

import (
	"errors"
	"testing"
)

func TestBoundingBoxTight(t *testing.T) {
	w := NewWorld([]Coord{
		{X: -3, Y: 2},
		{X: 5, Y: -1},
		{X: 0, Y: 7},
		{X: 1, Y: 1},
	}, 0)

	box, err := w.BoundingBox()
	if err != nil {
		t.Fatalf("BoundingBox: %v", err)
	}
	if box.Min != (Coord{X: -3, Y: -1}) || box.Max != (Coord{X: 5, Y: 7}) {
		t.Fatalf("box = %+v", box)
	}

	for c := range w.Live {
		if c.X < box.Min.X || c.X > box.Max.X || c.Y < box.Min.Y || c.Y > box.Max.Y {
			t.Fatalf("live cell %+v outside box %+v", c, box)
		}
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	w := NewWorld(nil, 4)
	if _, err := w.BoundingBox(); !errors.Is(err, ErrEmptyWorld) {
		t.Fatalf("err = %v, want ErrEmptyWorld", err)
	}
}

func TestRecenterIdempotent(t *testing.T) {
	w := NewWorld([]Coord{
		{X: 10, Y: 10},
		{X: 11, Y: 10},
		{X: 12, Y: 11},
	}, 9)

	once := w.Recenter(Coord{})
	twice := once.Recenter(Coord{})

	if !once.Equal(twice) {
		t.Fatal("recentering a centered world changed the live set")
	}
	if once.Gen != 9 {
		t.Fatalf("recenter changed generation to %d", once.Gen)
	}

	box, err := once.BoundingBox()
	if err != nil {
		t.Fatalf("BoundingBox: %v", err)
	}
	if c := box.Center(); c != (Coord{}) {
		t.Fatalf("center = %+v after recentering to origin", c)
	}
}

func TestRecenterTruncatesMidpoint(t *testing.T) {
	// A 2-wide box has no exact integer center; both worlds must land on
	// the same cells after recentering or cycle detection breaks.
	a := NewWorld([]Coord{{X: 0, Y: 0}, {X: 1, Y: 0}}, 0)
	b := NewWorld([]Coord{{X: 100, Y: -7}, {X: 101, Y: -7}}, 0)

	if !a.Recenter(Coord{}).Equal(b.Recenter(Coord{})) {
		t.Fatal("translated copies recentered to different live sets")
	}
}

func TestWorldEqualIgnoresGeneration(t *testing.T) {
	a := NewWorld([]Coord{{X: 1, Y: 2}}, 0)
	b := NewWorld([]Coord{{X: 1, Y: 2}}, 17)
	c := NewWorld([]Coord{{X: 2, Y: 1}}, 0)

	if !a.Equal(b) {
		t.Fatal("same live sets not equal")
	}
	if a.Equal(c) {
		t.Fatal("different live sets reported equal")
	}
}
