package naming

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// counterSuffixPattern matches the trailing "_NNN" of an already-minted ID.
var counterSuffixPattern = regexp.MustCompile(`_(\d{3})$`)

// Generator mints unique IDs of the form "<prefix>_<slug>_<counter>" with
// a zero-padded three-digit counter scoped per slug. Counters are
// monotonically increasing and never reused within one generator.
//
// A Generator holds per-conversion state and must not be shared across
// independent conversion invocations.
type Generator struct {
	prefix   string
	counters map[string]int // slug -> next counter value
}

// NewGenerator creates a Generator for the given ID prefix ("cat", "prod").
func NewGenerator(prefix string) *Generator {
	return &Generator{
		prefix:   prefix,
		counters: make(map[string]int),
	}
}

// Next mints the next ID for the given slug.
func (g *Generator) Next(slug string) string {
	n := g.counters[slug]
	g.counters[slug] = n + 1
	return fmt.Sprintf("%s_%s_%03d", g.prefix, slug, n)
}

// Seed advances the per-slug counters past any already-minted IDs so that
// re-importing ID'd entities never regenerates or collides with their IDs.
// IDs that do not carry this generator's prefix or a three-digit counter
// suffix are ignored.
func (g *Generator) Seed(existingIDs []string) {
	for _, id := range existingIDs {
		slug, n, ok := g.split(id)
		if !ok {
			continue
		}
		if n+1 > g.counters[slug] {
			g.counters[slug] = n + 1
		}
	}
}

// split decomposes "<prefix>_<slug>_<counter>" into its slug and counter.
func (g *Generator) split(id string) (slug string, counter int, ok bool) {
	if !strings.HasPrefix(id, g.prefix+"_") {
		return "", 0, false
	}
	m := counterSuffixPattern.FindStringSubmatchIndex(id)
	if m == nil {
		return "", 0, false
	}
	slug = id[len(g.prefix)+1 : m[0]]
	if slug == "" {
		return "", 0, false
	}
	n, err := strconv.Atoi(id[m[2]:m[3]])
	if err != nil {
		return "", 0, false
	}
	return slug, n, true
}
