package cut

import (
	"sort"

	"github.com/katalvlaran/aigopt/aig"
)

// DefaultK is the standard k-feasible cut size the rewrite library
// matches against.
const DefaultK = 4

// DefaultMaxCutsPerNode bounds how many cuts Engine keeps per node before
// the cheaper ones are dropped.
const DefaultMaxCutsPerNode = 250

// Cut is a k-feasible cut: a sorted, deduplicated set of leaf node ids and
// the function of the cut's root expressed over those leaves, one
// variable per leaf in Leaves order (Leaves[0] is bit 0, etc).
//
// Truth is only meaningful for len(Leaves) ≤ 4 — bits beyond 2^len(Leaves)
// are always zero and must be ignored by callers.
type Cut struct {
	Leaves []uint32
	Truth  uint16
}

// trivialCut is the single-leaf cut {id}: its truth table is the
// elementary one-variable function (bit 1 of a 1-bit domain).
func trivialCut(id uint32) *Cut {
	return &Cut{Leaves: []uint32{id}, Truth: 0b10}
}

func fullMask(n int) uint16 {
	if n >= 16 {
		return 0xFFFF
	}
	return uint16(1<<uint(1<<uint(n))) - 1
}

func complement(truth uint16, n int) uint16 {
	return truth ^ fullMask(n)
}

// unionSorted merges two sorted, duplicate-free id slices into a sorted,
// duplicate-free result.
func unionSorted(a, b []uint32) []uint32 {
	out := make([]uint32, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// buildIndexMap returns, for each entry of orig (which must be a subset
// of target, both sorted), the position of that entry within target.
func buildIndexMap(orig, target []uint32) []int {
	idx := make([]int, len(orig))
	ti := 0
	for oi, leaf := range orig {
		for target[ti] != leaf {
			ti++
		}
		idx[oi] = ti
	}
	return idx
}

// expandTruth re-expresses truth (a function of len(idxMap) variables)
// as a function of targetSize variables, via the position mapping in
// idxMap: bit i of the original domain corresponds to bit idxMap[i] of
// the target domain.
func expandTruth(truth uint16, idxMap []int, targetSize int) uint16 {
	var out uint16
	total := 1 << uint(targetSize)
	for m := 0; m < total; m++ {
		origBits := 0
		for i, pos := range idxMap {
			if (m>>uint(pos))&1 == 1 {
				origBits |= 1 << uint(i)
			}
		}
		if (truth>>uint(origBits))&1 == 1 {
			out |= 1 << uint(m)
		}
	}
	return out
}

func leafKey(leaves []uint32) string {
	b := make([]byte, 0, len(leaves)*5)
	for _, l := range leaves {
		b = append(b, byte(l), byte(l>>8), byte(l>>16), byte(l>>24), ',')
	}
	return string(b)
}

// dominates reports whether a's leaf set is a proper subset of b's (a is
// strictly smaller and every one of its leaves appears in b).
func dominates(a, b *Cut) bool {
	if len(a.Leaves) >= len(b.Leaves) {
		return false
	}
	set := make(map[uint32]bool, len(b.Leaves))
	for _, l := range b.Leaves {
		set[l] = true
	}
	for _, l := range a.Leaves {
		if !set[l] {
			return false
		}
	}
	return true
}

// pruneDominated drops every cut that has a strictly smaller dominator in
// the list, then truncates to maxCuts, keeping the smallest cuts first.
func pruneDominated(cuts []*Cut, maxCuts int) []*Cut {
	sort.SliceStable(cuts, func(i, j int) bool { return len(cuts[i].Leaves) < len(cuts[j].Leaves) })
	kept := make([]*Cut, 0, len(cuts))
	for i, c := range cuts {
		dominated := false
		for j := 0; j < i; j++ {
			if dominates(cuts[j], c) {
				dominated = true
				break
			}
		}
		if !dominated {
			kept = append(kept, c)
		}
	}
	if maxCuts > 0 && len(kept) > maxCuts {
		kept = kept[:maxCuts]
	}
	return kept
}

// Engine enumerates and caches k-feasible cuts over one AIG. It is not
// safe for concurrent use; the orchestrator owns one Engine per pass.
type Engine struct {
	g              *aig.Graph
	k              int
	maxCutsPerNode int
	cuts           map[uint32][]*Cut
}

// NewEngine returns a cut engine over g with leaf budget k and per-node
// cut cap maxCutsPerNode. Pass k ≤ 0 or maxCutsPerNode ≤ 0 to use the
// package defaults.
func NewEngine(g *aig.Graph, k, maxCutsPerNode int) *Engine {
	if k <= 0 {
		k = DefaultK
	}
	if maxCutsPerNode <= 0 {
		maxCutsPerNode = DefaultMaxCutsPerNode
	}
	return &Engine{g: g, k: k, maxCutsPerNode: maxCutsPerNode, cuts: make(map[uint32][]*Cut)}
}

// Invalidate drops id's cached cuts — call after any structural change
// that could affect them (a Replace touching id or one of its
// descendants). Stale entries left uninvalidated would make rewrite
// propose substitutions against nodes that no longer exist.
func (e *Engine) Invalidate(id uint32) { delete(e.cuts, id) }

// InvalidateAll drops every cached entry, e.g. between orchestrator
// passes.
func (e *Engine) InvalidateAll() { e.cuts = make(map[uint32][]*Cut) }

// cutsForNode returns id's cut list: cached AND-node cuts, or the trivial
// single-leaf cut for anything else (inputs, latches, const).
func (e *Engine) cutsForNode(id uint32) []*Cut {
	if c, ok := e.cuts[id]; ok {
		return c
	}
	return []*Cut{trivialCut(id)}
}

// CutsOf returns v's k-feasible cuts, computing and caching them (and
// those of every AND-node ancestor on the path to v's fanins) on first
// use. v must currently be a live KindAnd node.
func (e *Engine) CutsOf(v uint32) []*Cut {
	e.ensure(v)
	return e.cuts[v]
}

func (e *Engine) ensure(id uint32) {
	if _, ok := e.cuts[id]; ok {
		return
	}
	nd := e.g.Node(id)
	if nd == nil || nd.Kind != aig.KindAnd {
		return
	}
	x, y := nd.Fanin0, nd.Fanin1
	e.ensure(x.Node())
	e.ensure(y.Node())

	cutsX := e.cutsForNode(x.Node())
	cutsY := e.cutsForNode(y.Node())

	merged := make([]*Cut, 0, len(cutsX)*len(cutsY)+1)
	merged = append(merged, trivialCut(id))
	for _, a := range cutsX {
		for _, b := range cutsY {
			leaves := unionSorted(a.Leaves, b.Leaves)
			if len(leaves) > e.k {
				continue
			}
			ta := expandTruth(a.Truth, buildIndexMap(a.Leaves, leaves), len(leaves))
			tb := expandTruth(b.Truth, buildIndexMap(b.Leaves, leaves), len(leaves))
			if x.IsInverted() {
				ta = complement(ta, len(leaves))
			}
			if y.IsInverted() {
				tb = complement(tb, len(leaves))
			}
			truth := ta & tb & fullMask(len(leaves))
			merged = append(merged, &Cut{Leaves: leaves, Truth: truth})
		}
	}

	seen := make(map[string]bool, len(merged))
	deduped := merged[:0]
	for _, c := range merged {
		key := leafKey(c.Leaves)
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, c)
	}

	e.cuts[id] = pruneDominated(deduped, e.maxCutsPerNode)
}

// EnumerateAll eagerly computes cuts for every live and-node, in
// topological order — a convenience for callers that want a full
// prepass instead of lazy per-node computation.
func (e *Engine) EnumerateAll() {
	for _, id := range e.g.TopoOrder() {
		e.ensure(id)
	}
}
