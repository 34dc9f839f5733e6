package pattern

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"sparselife/internal/life"
)

// ParseRLE reads the Run Length Encoded pattern format: '#' lines are
// comments, the header line carries the extent and an optional rule, then
// runs of 'b' (dead), 'o' (live) and '$' (end of row) up to '!'. Returns
// the pattern and the header's rule string, empty when the header names
// none.
func ParseRLE(r io.Reader) (life.World, string, error) {
	var live []life.Coord
	var ruleStr string
	headerSeen := false
	x, y, run := 0, 0, 0

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !headerSeen {
			headerSeen = true
			for _, field := range strings.Split(line, ",") {
				kv := strings.SplitN(field, "=", 2)
				if len(kv) != 2 {
					continue
				}
				if strings.TrimSpace(strings.ToLower(kv[0])) == "rule" {
					ruleStr = strings.TrimSpace(kv[1])
				}
			}
			continue
		}
		for _, ch := range line {
			switch {
			case ch >= '0' && ch <= '9':
				run = run*10 + int(ch-'0')
			case ch == 'b' || ch == 'B':
				x += runLen(run)
				run = 0
			case ch == 'o' || ch == 'O':
				for i := 0; i < runLen(run); i++ {
					live = append(live, life.Coord{X: x, Y: y})
					x++
				}
				run = 0
			case ch == '$':
				y += runLen(run)
				x, run = 0, 0
			case ch == '!':
				return life.NewWorld(live, 0), ruleStr, nil
			default:
				return life.World{}, "", fmt.Errorf("rle: unexpected %q on row %d", ch, y)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return life.World{}, "", fmt.Errorf("rle: %w", err)
	}
	if !headerSeen {
		return life.World{}, "", fmt.Errorf("rle: missing header line")
	}
	return life.World{}, "", fmt.Errorf("rle: missing terminating '!'")
}

func runLen(run int) int {
	if run == 0 {
		return 1
	}
	return run
}
