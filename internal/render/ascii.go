// Package render draws worlds as text grids.
package render

import (
	"fmt"
	"io"

	"sparselife/internal/life"
)

// Renderer writes a world one text row per line, lowest y first.
type Renderer struct {
	// Live and Dead are the glyphs used for the two cell states.
	Live byte
	Dead byte

	// Viewport fixes the drawn region. When nil each world is drawn over
	// its own tight bounding box.
	Viewport *life.Rect
}

// New returns a renderer with the conventional 'O'/'.' glyphs.
func New() *Renderer {
	return &Renderer{Live: 'O', Dead: '.'}
}

// Render writes w to out with a generation/population caption. An extinct
// world with no fixed viewport renders as the caption alone.
func (r *Renderer) Render(out io.Writer, w life.World) error {
	if _, err := fmt.Fprintf(out, "generation %d, population %d\n", w.Gen, w.Population()); err != nil {
		return err
	}

	box := r.Viewport
	if box == nil {
		tight, err := w.BoundingBox()
		if err != nil {
			return nil
		}
		box = &tight
	}

	width := box.Max.X - box.Min.X + 1
	row := make([]byte, width+1)
	row[width] = '\n'
	for y := box.Min.Y; y <= box.Max.Y; y++ {
		for x := box.Min.X; x <= box.Max.X; x++ {
			glyph := r.Dead
			if w.Alive(life.Coord{X: x, Y: y}) {
				glyph = r.Live
			}
			row[x-box.Min.X] = glyph
		}
		if _, err := out.Write(row); err != nil {
			return err
		}
	}
	return nil
}
