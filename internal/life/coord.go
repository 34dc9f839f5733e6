package life

// Coord is an immutable 2D integer position on the unbounded grid.
type Coord struct {
	X, Y int
}

// Translate returns the coordinate shifted by (dx, dy).
func (c Coord) Translate(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}
