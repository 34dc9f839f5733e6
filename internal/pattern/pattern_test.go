package pattern

import (
	"strings"
	"testing"

	"sparselife/internal/life"
)

func gliderCoords() []life.Coord {
	return []life.Coord{
		{X: 1, Y: 0},
		{X: 2, Y: 1},
		{X: 0, Y: 2},
		{X: 1, Y: 2},
		{X: 2, Y: 2},
	}
}

func TestParsePlaintextGlider(t *testing.T) {
	src := "!Name: Glider\n!\n.O.\n..O\nOOO\n"

	world, err := ParsePlaintext(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParsePlaintext: %v", err)
	}
	if !world.Equal(life.NewWorld(gliderCoords(), 0)) {
		t.Fatalf("live set = %v", world.Live)
	}
	if world.Gen != 0 {
		t.Fatalf("generation = %d, want 0", world.Gen)
	}
}

func TestParsePlaintextRejectsUnknownGlyph(t *testing.T) {
	if _, err := ParsePlaintext(strings.NewReader(".O.\n.X.\n")); err == nil {
		t.Fatal("unknown glyph accepted")
	}
}

func TestParseRLEGlider(t *testing.T) {
	src := "#C classic glider\nx = 3, y = 3, rule = B3/S23\nbob$2bo$3o!\n"

	world, rule, err := ParseRLE(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseRLE: %v", err)
	}
	if rule != "B3/S23" {
		t.Fatalf("header rule = %q", rule)
	}
	if !world.Equal(life.NewWorld(gliderCoords(), 0)) {
		t.Fatalf("live set = %v", world.Live)
	}
}

func TestParseRLEMultiRowJumpsAndRuns(t *testing.T) {
	// Two cells on the first row, a two-row jump, then a run of three.
	src := "x = 3, y = 3\n2o2$3o!"

	world, rule, err := ParseRLE(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseRLE: %v", err)
	}
	if rule != "" {
		t.Fatalf("header rule = %q, want none", rule)
	}
	want := life.NewWorld([]life.Coord{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 0, Y: 2},
		{X: 1, Y: 2},
		{X: 2, Y: 2},
	}, 0)
	if !world.Equal(want) {
		t.Fatalf("live set = %v", world.Live)
	}
}

func TestParseRLEMissingTerminator(t *testing.T) {
	if _, _, err := ParseRLE(strings.NewReader("x = 1, y = 1\no")); err == nil {
		t.Fatal("missing '!' accepted")
	}
}

func TestSoupDeterministic(t *testing.T) {
	cfg := DefaultSoupConfig()
	cfg.Width = 32
	cfg.Height = 20
	cfg.Seed = 42
	cfg.Fill = 0.4

	a := Soup(cfg)
	b := Soup(cfg)
	if !a.Equal(b) {
		t.Fatal("same config produced different soups")
	}
	if a.Population() == 0 {
		t.Fatal("soup came out empty at fill 0.4")
	}

	for c := range a.Live {
		if c.X < 0 || c.X >= cfg.Width || c.Y < 0 || c.Y >= cfg.Height {
			t.Fatalf("cell %+v outside the %dx%d soup", c, cfg.Width, cfg.Height)
		}
	}
}

func TestSoupSeedChangesResult(t *testing.T) {
	cfg := DefaultSoupConfig()
	cfg.Width = 32
	cfg.Height = 32
	cfg.Fill = 0.4

	a := Soup(cfg)
	cfg.Seed++
	b := Soup(cfg)
	if a.Equal(b) {
		t.Fatal("different seeds produced identical soups")
	}
}
