// Package pattern turns external pattern notations and generated soups
// into initial live-cell sets.
package pattern

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"sparselife/internal/life"
)

// ParsePlaintext reads the .cells plaintext notation: lines starting with
// '!' are comments, 'O' (or '*') marks a live cell, '.' a dead one.
func ParsePlaintext(r io.Reader) (life.World, error) {
	var live []life.Coord
	y := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "!") {
			continue
		}
		for x, ch := range line {
			switch ch {
			case 'O', 'o', '*':
				live = append(live, life.Coord{X: x, Y: y})
			case '.', ' ', '\t':
			default:
				return life.World{}, fmt.Errorf("plaintext: unexpected %q on row %d", ch, y)
			}
		}
		y++
	}
	if err := sc.Err(); err != nil {
		return life.World{}, fmt.Errorf("plaintext: %w", err)
	}
	return life.NewWorld(live, 0), nil
}
