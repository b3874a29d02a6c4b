package factoring

import (
	"github.com/katalvlaran/aigopt/decomp"
	"github.com/katalvlaran/aigopt/simulate"
)

// Factorer turns a node's local function, given as a simulate.Row over the
// 2^nvars-point domain, into a decomposition graph computing that function
// exactly. It returns ok=false if it cannot (or chooses not to) produce a
// candidate, in which case refactor leaves the node untouched.
type Factorer func(truth simulate.Row, nvars int) (g *decomp.Graph, ok bool)

func getBit(row simulate.Row, i int) bool {
	return (row[i/64]>>uint(i%64))&1 == 1
}

func buildRow(domain, numWords int, fn func(i int) bool) simulate.Row {
	row := make(simulate.Row, numWords)
	for i := 0; i < domain; i++ {
		if fn(i) {
			row[i/64] |= uint64(1) << uint(i%64)
		}
	}
	return row
}

// restrict returns truth's cofactor with variable v forced to b, still
// expressed over the full domain (duplicated across the don't-cared
// assignments of v) so the caller can keep recursing over the same
// variable ordering regardless of how many variables have been fixed so
// far.
func restrict(truth simulate.Row, v, domain, numWords int, b bool) simulate.Row {
	return buildRow(domain, numWords, func(m int) bool {
		mm := m
		if b {
			mm |= 1 << uint(v)
		} else {
			mm &^= 1 << uint(v)
		}
		return getBit(truth, mm)
	})
}

func rowsEqual(a, b simulate.Row) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// synthesize builds a decomposition graph computing truth exactly via
// recursive Shannon cofactor expansion (multiplexer form), the same
// construction npn.Candidate synthesis uses for its fixed 4-variable
// classes, generalized to an arbitrary variable count. A variable both
// cofactors agree on (truth-table equality, never graph-edge identity —
// each recursive call mints fresh nodes) is elided rather than wired into
// a trivial mux.
func synthesize(g *decomp.Graph, truth simulate.Row, domain, numWords int, remaining []int) decomp.Edge {
	if len(remaining) == 0 {
		return g.AddConst(getBit(truth, 0))
	}
	v := remaining[0]
	rest := remaining[1:]
	cof0 := restrict(truth, v, domain, numWords, false)
	cof1 := restrict(truth, v, domain, numWords, true)
	if rowsEqual(cof0, cof1) {
		return synthesize(g, cof0, domain, numWords, rest)
	}
	f0 := synthesize(g, cof0, domain, numWords, rest)
	f1 := synthesize(g, cof1, domain, numWords, rest)
	xv := g.AddInput(v)
	onTrue := g.AddAnd(xv, f1)
	onFalse := g.AddAnd(xv.Not(), f0)
	return g.AddAnd(onTrue.Not(), onFalse.Not()).Not() // De Morgan: a∨b = ¬(¬a∧¬b)
}

// Default is the always-available Factorer fallback: exact Shannon
// cofactor synthesis with no algebraic sharing search. It stands in for a
// real quick-factor/good-factor implementation, which would search for
// common sub-expressions across the cofactor tree instead of expanding it
// in full; refactor's cost evaluation still rejects the result when it is
// not actually smaller than the node it would replace.
func Default(truth simulate.Row, nvars int) (*decomp.Graph, bool) {
	if nvars <= 0 || len(truth) == 0 {
		return nil, false
	}
	domain := 1 << uint(nvars)
	numWords := simulate.NumWords(nvars)
	remaining := make([]int, nvars)
	for i := range remaining {
		remaining[i] = i
	}
	g := decomp.NewGraph()
	root := synthesize(g, truth, domain, numWords, remaining)
	g.SetRoot(root)
	return g, true
}
