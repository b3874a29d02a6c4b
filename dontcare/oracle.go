package dontcare

import (
	"github.com/katalvlaran/aigopt/aig"
	"github.com/katalvlaran/aigopt/simulate"
)

// Oracle computes the care set for node v's function over leaves, expressed
// as a simulate.Row over the 2^len(leaves)-point domain in the same leaf
// order the caller simulated against. Implementations may consult g's
// structure (e.g. an ODC sweep bounded by some level horizon) but must not
// mutate it.
type Oracle func(g *aig.Graph, v uint32, leaves []uint32) simulate.Row

// AllCared is the default Oracle: every assignment of leaves is considered
// observable, i.e. no don't-care is ever exploited. Resubstitution and
// refactoring both fall back to this when no sharper oracle is configured,
// which keeps them correct (never accepts a functionally-unsound swap) at
// the cost of missing the care-set-only simplifications a real ODC sweep
// would find.
func AllCared(g *aig.Graph, v uint32, leaves []uint32) simulate.Row {
	return simulate.AllOnesCare(len(leaves))
}
