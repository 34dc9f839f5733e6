package sim

import (
	"math"
	"runtime"
	"sync"

	"sparselife/internal/life"
)

// Advance computes the successor of w under rule. Only live coordinates are
// tracked, so the grid is unbounded: the Moore neighborhoods of all live
// cells are counted, dead neighbors whose count lands in the birth set come
// alive, and live cells whose count lands in the survival set persist.
// Every coordinate touched is interned through cache with the new
// generation index.
//
// Counting is commutative, so the live set is split across workers and the
// partial counts merged; the result does not depend on the split.
func Advance(cache *life.Cache, w life.World, rule life.Rule) life.World {
	if w.Gen == math.MaxInt {
		panic("sim: generation index overflow")
	}
	gen := w.Gen + 1

	cells := make([]life.Coord, 0, len(w.Live))
	for c := range w.Live {
		cells = append(cells, c)
	}

	counts := countNeighbors(cache, gen, cells)

	next := make(map[life.Coord]struct{}, len(w.Live))
	for c, n := range counts {
		if !w.Alive(c) && rule.Born(n) {
			next[c] = struct{}{}
		}
	}
	for _, c := range cells {
		if rule.Survives(counts[c]) {
			next[cache.Intern(c.X, c.Y, gen)] = struct{}{}
		}
	}
	return life.World{Live: next, Gen: gen}
}

// countNeighbors fans the neighbor enumeration out over disjoint slices of
// the live set and merges the per-worker counts.
func countNeighbors(cache *life.Cache, gen int, cells []life.Coord) map[life.Coord]int {
	workers := runtime.NumCPU()
	if workers > len(cells) {
		workers = len(cells)
	}
	if workers <= 1 {
		return countSlice(cache, gen, cells)
	}

	partials := make([]map[life.Coord]int, workers)
	chunk := (len(cells) + workers - 1) / workers
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		lo := i * chunk
		hi := lo + chunk
		if hi > len(cells) {
			hi = len(cells)
		}
		wg.Add(1)
		go func(i, lo, hi int) {
			defer wg.Done()
			partials[i] = countSlice(cache, gen, cells[lo:hi])
		}(i, lo, hi)
	}
	wg.Wait()

	merged := partials[0]
	for _, p := range partials[1:] {
		for c, n := range p {
			merged[c] += n
		}
	}
	return merged
}

func countSlice(cache *life.Cache, gen int, cells []life.Coord) map[life.Coord]int {
	counts := make(map[life.Coord]int, len(cells)*3)
	for _, c := range cells {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				counts[cache.Intern(c.X+dx, c.Y+dy, gen)]++
			}
		}
	}
	return counts
}
