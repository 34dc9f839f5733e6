package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"sparselife/internal/life"
	"sparselife/internal/pattern"
	"sparselife/internal/render"
	"sparselife/internal/sim"
)

func main() {
	patternPath := flag.String("pattern", "", "pattern file (.rle or plaintext); empty generates a soup")
	ruleArg := flag.String("rule", "life", "named rule or B/S notation, e.g. B36/S23")
	window := flag.Int("window", 10, "sliding window size for stabilization detection")
	maxGens := flag.Int("max-gens", 0, "stop after N generations (0 = run until a termination condition)")
	flushEvery := flag.Int("flush-every", 64, "flush the coordinate cache every N generations (0 = never)")
	flushRetain := flag.Int("flush-retain", 0, "cache retain threshold; 0 picks one covering the history window")
	width := flag.Int("w", 48, "soup width")
	height := flag.Int("h", 48, "soup height")
	seed := flag.Int64("seed", 1337, "soup seed")
	fill := flag.Float64("fill", 0.35, "soup live fraction")
	quiet := flag.Bool("quiet", false, "print only the final generation")
	flag.Parse()

	ruleSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "rule" {
			ruleSet = true
		}
	})

	seedWorld, headerRule, err := loadSeed(*patternPath, *width, *height, *seed, *fill)
	if err != nil {
		log.Fatal(err)
	}
	if headerRule != "" && !ruleSet {
		*ruleArg = headerRule
	}

	rule, err := resolveRule(*ruleArg)
	if err != nil {
		log.Fatal(err)
	}

	cfg := sim.DefaultConfig()
	cfg.Rule = rule
	cfg.Window = *window
	cfg.FlushEvery = *flushEvery
	cfg.FlushRetain = *flushRetain
	if *maxGens > 0 {
		base := seedWorld.Gen
		limit := *maxGens
		cfg.Stop = func(_ []life.World, gen, _ int) bool {
			return gen-base >= limit
		}
	}

	runner := sim.NewRunner(life.NewCache(), cfg)
	worlds := runner.Run(seedWorld)
	if *quiet && len(worlds) > 0 {
		worlds = worlds[len(worlds)-1:]
	}

	r := render.New()
	for _, w := range worlds {
		if err := r.Render(os.Stdout, w); err != nil {
			log.Fatal(err)
		}
		fmt.Println()
	}
}

// resolveRule accepts either a registry name or B/S notation.
func resolveRule(arg string) (life.Rule, error) {
	if r, ok := life.Rules()[strings.ToLower(arg)]; ok {
		return r, nil
	}
	return life.ParseRule(arg)
}

// loadSeed reads the pattern file, or generates a soup when no file was
// given. The second return value is the rule an RLE header named, if any.
func loadSeed(path string, w, h int, seed int64, fill float64) (life.World, string, error) {
	if path == "" {
		cfg := pattern.DefaultSoupConfig()
		cfg.Width = w
		cfg.Height = h
		cfg.Seed = seed
		cfg.Fill = fill
		return pattern.Soup(cfg), "", nil
	}

	f, err := os.Open(path)
	if err != nil {
		return life.World{}, "", err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".rle") {
		return pattern.ParseRLE(f)
	}
	world, err := pattern.ParsePlaintext(f)
	return world, "", err
}
