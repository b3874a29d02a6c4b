package orchestrate

// Transform identifies one of the three local-rewriting transforms a
// policy chooses among.
type Transform int

const (
	Rewrite Transform = iota
	Resub
	Refactor
)

func (t Transform) String() string {
	switch t {
	case Rewrite:
		return "rewrite"
	case Resub:
		return "resub"
	case Refactor:
		return "refactor"
	default:
		return "unknown"
	}
}

// Order is a priority permutation of the three transforms: the first
// entry is tried first. There are exactly six, indexed 0..5 in the same
// order the per-node policy vector and the -random/-order CLI variants
// reference them.
type Order [3]Transform

// Orders lists the six priority permutations, in the canonical index
// order used throughout the CLI surface (policy-mask vectors and the
// order selector both index into this slice).
var Orders = [6]Order{
	{Rewrite, Resub, Refactor},
	{Rewrite, Refactor, Resub},
	{Resub, Rewrite, Refactor},
	{Resub, Refactor, Rewrite},
	{Refactor, Rewrite, Resub},
	{Refactor, Resub, Rewrite},
}

// Kind selects which policy Select uses to pick a winner.
type Kind int

const (
	// KindPriority applies a single fixed Order to every node.
	KindPriority Kind = iota
	// KindLocalGreedy picks the maximum qualifying gain, breaking ties
	// by Orders[0].
	KindLocalGreedy
	// KindPerNode looks up a per-node Order index (0..5) from a caller
	// supplied mask, defaulting to Orders[0] for unmapped node ids.
	KindPerNode
	// KindRandom picks uniformly among the qualifying transforms for
	// the node, using the pass's seeded PRNG.
	KindRandom
)

// candidate bundles one transform's proposal with whether it qualifies
// for selection under the active zero-gain flags.
type candidate struct {
	transform Transform
	gain      int
	ok        bool
	qualifies bool
}

// qualifies reports whether gain/ok clears t's acceptance bar: resub
// must strictly improve; rewrite and refactor may also be accepted at
// gain == 0 when their respective fUseZeros flag is set.
func qualifies(t Transform, gain int, ok bool, cfg *Config) bool {
	if !ok {
		return false
	}
	switch t {
	case Rewrite:
		return gain > 0 || (gain == 0 && cfg.UseZerosRwr)
	case Resub:
		return gain > 0
	case Refactor:
		return gain > 0 || (gain == 0 && cfg.UseZerosRef)
	default:
		return false
	}
}

// selectWinner applies the active policy over three already-qualified
// candidates (one per transform, ok=false for whichever wasn't run or
// returned nothing) and returns the winning transform, or ok=false if
// none qualifies.
func selectWinner(cfg *Config, nodeID uint32, cands [3]candidate, prng *rng) (Transform, bool) {
	switch cfg.Policy {
	case KindPriority:
		return pickByOrder(cfg.Order, cands)
	case KindPerNode:
		order := Orders[0]
		if idx, ok := cfg.PolicyMask[nodeID]; ok && idx >= 0 && idx < len(Orders) {
			order = Orders[idx]
		}
		return pickByOrder(order, cands)
	case KindLocalGreedy:
		return pickGreedy(cands)
	case KindRandom:
		return pickRandom(cands, prng)
	default:
		return pickByOrder(Orders[0], cands)
	}
}

func pickByOrder(order Order, cands [3]candidate) (Transform, bool) {
	for _, t := range order {
		if cands[t].qualifies {
			return t, true
		}
	}
	return 0, false
}

func pickGreedy(cands [3]candidate) (Transform, bool) {
	best := -1
	bestGain := 0
	for _, t := range Orders[0] {
		c := cands[t]
		if !c.qualifies {
			continue
		}
		if best == -1 || c.gain > bestGain {
			best = int(t)
			bestGain = c.gain
		}
	}
	if best == -1 {
		return 0, false
	}
	return Transform(best), true
}

func pickRandom(cands [3]candidate, rnd *rng) (Transform, bool) {
	var qualifying []Transform
	for _, t := range Orders[0] {
		if cands[t].qualifies {
			qualifying = append(qualifying, t)
		}
	}
	if len(qualifying) == 0 {
		return 0, false
	}
	return qualifying[rnd.intn(len(qualifying))], true
}
