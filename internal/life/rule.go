package life

import (
	"fmt"
	"sort"
	"strings"
)

// Rule is a birth/survival pair: the neighbor counts that create a cell and
// the counts that keep a live one alive. Empty sets are legal; an empty
// survival set kills everything, an empty birth set grows nothing.
type Rule struct {
	birth    map[int]bool
	survival map[int]bool
}

// NewRule builds a rule from explicit neighbor-count sets. Counts must be
// non-negative.
func NewRule(birth, survival []int) Rule {
	r := Rule{birth: make(map[int]bool, len(birth)), survival: make(map[int]bool, len(survival))}
	for _, n := range birth {
		r.birth[n] = true
	}
	for _, n := range survival {
		r.survival[n] = true
	}
	return r
}

// Born reports whether a dead cell with the given live-neighbor count comes
// alive.
func (r Rule) Born(neighbors int) bool { return r.birth[neighbors] }

// Survives reports whether a live cell with the given live-neighbor count
// stays alive.
func (r Rule) Survives(neighbors int) bool { return r.survival[neighbors] }

// String renders the rule in B/S notation, counts sorted ascending.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	writeCounts(&b, r.birth)
	b.WriteString("/S")
	writeCounts(&b, r.survival)
	return b.String()
}

func writeCounts(b *strings.Builder, set map[int]bool) {
	counts := make([]int, 0, len(set))
	for n := range set {
		counts = append(counts, n)
	}
	sort.Ints(counts)
	for _, n := range counts {
		fmt.Fprintf(b, "%d", n)
	}
}

// ParseRule reads B/S notation such as "B3/S23". Neighbor counts are single
// digits 0-8.
func ParseRule(s string) (Rule, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("rule %q: want B<counts>/S<counts>", s)
	}
	bPart := strings.TrimSpace(parts[0])
	sPart := strings.TrimSpace(parts[1])
	if len(bPart) == 0 || (bPart[0] != 'B' && bPart[0] != 'b') {
		return Rule{}, fmt.Errorf("rule %q: birth half must start with B", s)
	}
	if len(sPart) == 0 || (sPart[0] != 'S' && sPart[0] != 's') {
		return Rule{}, fmt.Errorf("rule %q: survival half must start with S", s)
	}
	birth, err := parseCounts(bPart[1:])
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: %w", s, err)
	}
	survival, err := parseCounts(sPart[1:])
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: %w", s, err)
	}
	return Rule{birth: birth, survival: survival}, nil
}

func parseCounts(digits string) (map[int]bool, error) {
	set := make(map[int]bool, len(digits))
	for _, ch := range digits {
		if ch < '0' || ch > '8' {
			return nil, fmt.Errorf("neighbor count %q out of range", ch)
		}
		set[int(ch-'0')] = true
	}
	return set, nil
}

// MustParseRule is ParseRule for known-good literals.
func MustParseRule(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

var rules = map[string]Rule{}

// Register adds a named rule variant.
func Register(name string, r Rule) {
	if name == "" {
		return
	}
	rules[name] = r
}

// Rules exposes the registry of named rule variants.
func Rules() map[string]Rule { return rules }

func init() {
	Register("life", MustParseRule("B3/S23"))
	Register("highlife", MustParseRule("B36/S23"))
	Register("seeds", MustParseRule("B2/S"))
	Register("daynight", MustParseRule("B3678/S34678"))
	Register("maze", MustParseRule("B3/S12345"))
}
