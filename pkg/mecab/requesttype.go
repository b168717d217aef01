package mecab

import "strings"

// RequestType is the set of flags selecting what information a parse
// populates in a Lattice. Flags combine with the usual bitwise operators.
type RequestType int

const (
	// OneBest requests the single best segmentation (the default).
	OneBest RequestType = 1 << iota
	// NBest enables successive next-best enumeration via Lattice.NextNBest.
	NBest
	// Partial enables partial parsing driven by boundary and feature
	// constraints.
	Partial
	// MarginalProb makes the parse compute forward/backward sums and
	// per-node marginal probabilities (Node.Alpha/Beta/Prob).
	MarginalProb
	// Alternative includes alternative candidates reachable through the
	// ENext/BNext node links.
	Alternative
	// AllMorphs emits every morpheme in the lattice, not only those on
	// the best path.
	AllMorphs
	// AllocateSentence makes the native library keep its own copy of the
	// sentence buffer.
	AllocateSentence
)

// Has reports whether every flag in f is set in r.
func (r RequestType) Has(f RequestType) bool {
	return r&f == f
}

var requestTypeNames = []struct {
	flag RequestType
	name string
}{
	{OneBest, "OneBest"},
	{NBest, "NBest"},
	{Partial, "Partial"},
	{MarginalProb, "MarginalProb"},
	{Alternative, "Alternative"},
	{AllMorphs, "AllMorphs"},
	{AllocateSentence, "AllocateSentence"},
}

func (r RequestType) String() string {
	if r == 0 {
		return "RequestType(0)"
	}
	var parts []string
	for _, e := range requestTypeNames {
		if r.Has(e.flag) {
			parts = append(parts, e.name)
			r &^= e.flag
		}
	}
	if r != 0 {
		parts = append(parts, "?")
	}
	return strings.Join(parts, "|")
}
