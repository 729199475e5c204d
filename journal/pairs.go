package journal

import "strings"

// DefaultPairs seeds the registry on first run.
var DefaultPairs = []string{
	"EUR/USD", "USD/JPY", "GBP/USD", "USD/CHF",
	"AUD/USD", "USD/CAD", "NZD/USD", "Gold",
}

// Registry is the ordered set of instrument names offered by the entry form.
// Names added by the user are normalized to upper case; seeded defaults keep
// the casing they shipped with.
type Registry struct {
	pairs []string
}

func NewRegistry(pairs []string) *Registry {
	r := &Registry{pairs: make([]string, len(pairs))}
	copy(r.pairs, pairs)
	return r
}

// Pairs returns the registered names in order.
func (g *Registry) Pairs() []string {
	out := make([]string, len(g.pairs))
	copy(out, g.pairs)
	return out
}

func (g *Registry) Has(name string) bool {
	for _, p := range g.pairs {
		if p == name {
			return true
		}
	}
	return false
}

func (g *Registry) Len() int {
	return len(g.pairs)
}

// Add normalizes name (trim, upper case) and appends it when new. It reports
// whether the registry changed; empty and duplicate names are no-ops.
func (g *Registry) Add(name string) bool {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" || g.Has(name) {
		return false
	}
	g.pairs = append(g.pairs, name)
	return true
}

// Remove deletes name from the registry, reporting whether it was present.
// The match is exact; removal takes the name as listed, not a normalized
// form.
func (g *Registry) Remove(name string) bool {
	for i, p := range g.pairs {
		if p == name {
			g.pairs = append(g.pairs[:i], g.pairs[i+1:]...)
			return true
		}
	}
	return false
}
