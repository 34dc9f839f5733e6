package life

import "errors"

// ErrEmptyWorld reports an operation that is undefined when no cells are
// alive.
var ErrEmptyWorld = errors.New("life: empty world")

// World is one generation of the simulation: a set of live coordinates plus
// the generation index. Worlds are values; advancing builds a new one, so a
// history can retain many generations at once.
type World struct {
	Live map[Coord]struct{}
	Gen  int
}

// NewWorld builds a world from the given live coordinates.
func NewWorld(live []Coord, gen int) World {
	set := make(map[Coord]struct{}, len(live))
	for _, c := range live {
		set[c] = struct{}{}
	}
	return World{Live: set, Gen: gen}
}

// Population returns the number of live cells.
func (w World) Population() int { return len(w.Live) }

// Alive reports whether the cell at c is live.
func (w World) Alive(c Coord) bool {
	_, ok := w.Live[c]
	return ok
}

// Equal reports whether two worlds have identical live sets. Generation
// indices are ignored.
func (w World) Equal(o World) bool {
	if len(w.Live) != len(o.Live) {
		return false
	}
	for c := range w.Live {
		if _, ok := o.Live[c]; !ok {
			return false
		}
	}
	return true
}

// Rect is an axis-aligned bounding box given by its min and max corners.
type Rect struct {
	Min, Max Coord
}

// Center returns the midpoint of the box. Integer division truncates
// toward zero; cycle detection relies on the reference and every candidate
// going through the same rounding.
func (r Rect) Center() Coord {
	return Coord{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// BoundingBox computes the tight bounding box of the live set. A bounding
// box of nothing is undefined, so callers must rule out extinction first.
func (w World) BoundingBox() (Rect, error) {
	if len(w.Live) == 0 {
		return Rect{}, ErrEmptyWorld
	}
	var r Rect
	first := true
	for c := range w.Live {
		if first {
			r = Rect{Min: c, Max: c}
			first = false
			continue
		}
		if c.X < r.Min.X {
			r.Min.X = c.X
		}
		if c.X > r.Max.X {
			r.Max.X = c.X
		}
		if c.Y < r.Min.Y {
			r.Min.Y = c.Y
		}
		if c.Y > r.Max.Y {
			r.Max.Y = c.Y
		}
	}
	return r, nil
}

// Recenter translates the live set so its bounding-box center lands on
// target. The generation index is unchanged. An empty world is returned as
// is.
func (w World) Recenter(target Coord) World {
	box, err := w.BoundingBox()
	if err != nil {
		return w
	}
	center := box.Center()
	dx, dy := target.X-center.X, target.Y-center.Y
	live := make(map[Coord]struct{}, len(w.Live))
	for c := range w.Live {
		live[c.Translate(dx, dy)] = struct{}{}
	}
	return World{Live: live, Gen: w.Gen}
}
