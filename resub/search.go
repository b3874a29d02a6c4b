package resub

import (
	"github.com/katalvlaran/aigopt/aig"
	"github.com/katalvlaran/aigopt/decomp"
	"github.com/katalvlaran/aigopt/simulate"
)

// maxUnateScan bounds how many candidates from a unate class are actually
// tried in the triple/double/quad stages: nDivsMax already bounds the
// overall divisor count, but the combinatorial stages would otherwise
// scan a cubic or quartic number of tuples over it.
const maxUnateScan = 24

func rowAnd(a, b simulate.Row) simulate.Row {
	out := make(simulate.Row, len(a))
	for i := range a {
		out[i] = a[i] & b[i]
	}
	return out
}

func rowOr(a, b simulate.Row) simulate.Row {
	out := make(simulate.Row, len(a))
	for i := range a {
		out[i] = a[i] | b[i]
	}
	return out
}

func rowNot(a simulate.Row) simulate.Row {
	out := make(simulate.Row, len(a))
	for i := range a {
		out[i] = ^a[i]
	}
	return out
}

func allZero(a, care simulate.Row) bool {
	for i := range a {
		if a[i]&care[i] != 0 {
			return false
		}
	}
	return true
}

// classify partitions every candidate divisor of d into positive-unate
// (d_i ⇒ target on the care set), negative-unate (d_i ⇒ ¬target) and
// binate (neither) with respect to d's target row.
func (d *divisorSet) classify() (posUnate, negUnate, binate []int) {
	target := d.rows[d.target]
	for _, i := range d.candidates {
		r := d.rows[i]
		switch {
		case allZero(rowAnd(r, rowNot(target)), d.care):
			posUnate = append(posUnate, i)
		case allZero(rowAnd(r, target), d.care):
			negUnate = append(negUnate, i)
		default:
			binate = append(binate, i)
		}
	}
	return
}

// fitsLevel reports whether the chain of len(ids)-1 new and-nodes that
// combines ids, whose top sits len(ids)-1 levels above the deepest of
// ids, would still respect d's required-level bound (no bound when
// maxLevel is negative).
func (d *divisorSet) fitsLevel(ids ...int) bool {
	if d.maxLevel < 0 {
		return true
	}
	max := uint32(0)
	for _, i := range ids {
		if d.levels[i] > max {
			max = d.levels[i]
		}
	}
	return int(max)+len(ids)-1 <= d.maxLevel
}

func capSlice(s []int, n int) []int {
	if len(s) > n {
		return s[:n]
	}
	return s
}

// pinner assigns compact, densely-packed pin numbers to divisors as a
// single candidate graph references them, so the resulting
// decomp.Proposal.LeafEdges never carries slots for divisors the
// candidate didn't actually use.
type pinner struct {
	d      *divisorSet
	g      *decomp.Graph
	slotOf map[int]int
	edges  []aig.Edge
}

func newPinner(g *decomp.Graph, d *divisorSet) *pinner {
	return &pinner{d: d, g: g, slotOf: make(map[int]int)}
}

func (p *pinner) pin(divIdx int) decomp.Edge {
	slot, ok := p.slotOf[divIdx]
	if !ok {
		slot = len(p.edges)
		p.slotOf[divIdx] = slot
		p.edges = append(p.edges, p.d.edgeOf(divIdx))
	}
	return p.g.AddInput(slot)
}

func buildOr(pins []decomp.Edge, g *decomp.Graph) decomp.Edge {
	acc := pins[0]
	for _, p := range pins[1:] {
		acc = g.AddAnd(acc.Not(), p.Not()).Not() // De Morgan: a∨b = ¬(¬a∧¬b)
	}
	return acc
}

func buildAnd(pins []decomp.Edge, g *decomp.Graph) decomp.Edge {
	acc := pins[0]
	for _, p := range pins[1:] {
		acc = g.AddAnd(acc, p)
	}
	return acc
}

func (d *divisorSet) result(pn *pinner, root decomp.Edge, gain int) *decomp.Proposal {
	pn.g.SetRoot(root)
	return &decomp.Proposal{
		Graph:      pn.g,
		LeafEdges:  pn.edges,
		Complement: d.phase[d.target],
		Gain:       gain,
	}
}

// searchConst tries the 0-step constant substitution: target is constant
// under care.
func (d *divisorSet) searchConst() (*decomp.Proposal, bool) {
	val, isConst := simulate.IsConst(d.rows[d.target], d.care)
	if !isConst {
		return nil, false
	}
	g := decomp.NewGraph()
	root := g.AddConst(val)
	return d.result(newPinner(g, d), root, d.mffcSize), true
}

// searchEqual tries the 0-step divisor substitution, including its own
// complement (a free inverter, still zero and-nodes added).
func (d *divisorSet) searchEqual() (*decomp.Proposal, bool) {
	target := d.rows[d.target]
	for _, i := range d.candidates {
		if simulate.Equal(d.rows[i], target, d.care) {
			g := decomp.NewGraph()
			pn := newPinner(g, d)
			root := pn.pin(i)
			return d.result(pn, root, d.mffcSize), true
		}
		if simulate.Equal(rowNot(d.rows[i]), target, d.care) {
			g := decomp.NewGraph()
			pn := newPinner(g, d)
			root := pn.pin(i).Not()
			return d.result(pn, root, d.mffcSize), true
		}
	}
	return nil, false
}

// searchSingle tries the 1-step OR-of-positive-unate-pair and
// AND-of-negative-unate-pair substitutions.
func (d *divisorSet) searchSingle() (*decomp.Proposal, bool) {
	if d.mffcSize <= 1 {
		return nil, false
	}
	target := d.rows[d.target]
	pos, neg, _ := d.classify()
	if p, ok := find2(pos, func(i, j int) bool {
		return d.fitsLevel(i, j) && simulate.Equal(rowOr(d.rows[i], d.rows[j]), target, d.care)
	}); ok {
		g := decomp.NewGraph()
		pn := newPinner(g, d)
		root := buildOr([]decomp.Edge{pn.pin(p[0]), pn.pin(p[1])}, g)
		return d.result(pn, root, d.mffcSize-1), true
	}
	if p, ok := find2(neg, func(i, j int) bool {
		return d.fitsLevel(i, j) && simulate.Equal(rowAnd(d.rows[i], d.rows[j]), target, d.care)
	}); ok {
		g := decomp.NewGraph()
		pn := newPinner(g, d)
		root := buildAnd([]decomp.Edge{pn.pin(p[0]), pn.pin(p[1])}, g)
		return d.result(pn, root, d.mffcSize-1), true
	}
	return nil, false
}

func find2(set []int, match func(i, j int) bool) ([]int, bool) {
	set = capSlice(set, maxUnateScan)
	for a := 0; a < len(set); a++ {
		for b := a + 1; b < len(set); b++ {
			if match(set[a], set[b]) {
				return []int{set[a], set[b]}, true
			}
		}
	}
	return nil, false
}

func find3(set []int, match func(i, j, l int) bool) ([]int, bool) {
	set = capSlice(set, maxUnateScan)
	for a := 0; a < len(set); a++ {
		for b := a + 1; b < len(set); b++ {
			for c := b + 1; c < len(set); c++ {
				if match(set[a], set[b], set[c]) {
					return []int{set[a], set[b], set[c]}, true
				}
			}
		}
	}
	return nil, false
}

// searchTriple tries the 1-and-2-step OR3/AND3 substitutions.
func (d *divisorSet) searchTriple() (*decomp.Proposal, bool) {
	if d.mffcSize <= 2 {
		return nil, false
	}
	target := d.rows[d.target]
	pos, neg, _ := d.classify()
	if p, ok := find3(pos, func(i, j, l int) bool {
		return d.fitsLevel(i, j, l) && simulate.Equal(rowOr(rowOr(d.rows[i], d.rows[j]), d.rows[l]), target, d.care)
	}); ok {
		g := decomp.NewGraph()
		pn := newPinner(g, d)
		root := buildOr([]decomp.Edge{pn.pin(p[0]), pn.pin(p[1]), pn.pin(p[2])}, g)
		return d.result(pn, root, d.mffcSize-2), true
	}
	if p, ok := find3(neg, func(i, j, l int) bool {
		return d.fitsLevel(i, j, l) && simulate.Equal(rowAnd(rowAnd(d.rows[i], d.rows[j]), d.rows[l]), target, d.care)
	}); ok {
		g := decomp.NewGraph()
		pn := newPinner(g, d)
		root := buildAnd([]decomp.Edge{pn.pin(p[0]), pn.pin(p[1]), pn.pin(p[2])}, g)
		return d.result(pn, root, d.mffcSize-2), true
	}
	return nil, false
}

// doublePair is one product-or-sum of two binate divisors, pre-built so
// searchDouble/searchQuad can scan them without re-deriving the pairing.
type doublePair struct {
	idx       []int
	row       simulate.Row
	isProduct bool // true: row = d[i] & d[j]; false: row = d[i] | d[j]
}

// buildDoubles derives double-node unate divisors from the binate set: one
// product and one sum per pair, capped at maxDoubles per polarity.
func buildDoubles(d *divisorSet, binate []int, maxDoubles int) []doublePair {
	binate = capSlice(binate, maxUnateScan)
	var out []doublePair
	for a := 0; a < len(binate) && len(out) < 2*maxDoubles; a++ {
		for b := a + 1; b < len(binate) && len(out) < 2*maxDoubles; b++ {
			i, j := binate[a], binate[b]
			out = append(out,
				doublePair{idx: []int{i, j}, row: rowAnd(d.rows[i], d.rows[j]), isProduct: true},
				doublePair{idx: []int{i, j}, row: rowOr(d.rows[i], d.rows[j]), isProduct: false},
			)
		}
	}
	return out
}

func (p doublePair) materialize(pn *pinner) decomp.Edge {
	a := pn.pin(p.idx[0])
	b := pn.pin(p.idx[1])
	if p.isProduct {
		return buildAnd([]decomp.Edge{a, b}, pn.g)
	}
	return buildOr([]decomp.Edge{a, b}, pn.g)
}

// searchDouble tries the 2-step (single unate) · (double unate)
// combinations: OR-AND and AND-OR patterns.
func (d *divisorSet) searchDouble() (*decomp.Proposal, bool) {
	const maxDoublesPerPolarity = 500
	if d.mffcSize <= 2 {
		return nil, false
	}
	target := d.rows[d.target]
	pos, neg, binate := d.classify()
	doubles := buildDoubles(d, binate, maxDoublesPerPolarity)

	for _, single := range capSlice(pos, maxUnateScan) {
		for _, dp := range doubles {
			if contains(dp.idx, single) {
				continue
			}
			if simulate.Equal(rowOr(d.rows[single], dp.row), target, d.care) {
				g := decomp.NewGraph()
				pn := newPinner(g, d)
				a := pn.pin(single)
				b := dp.materialize(pn)
				root := buildOr([]decomp.Edge{a, b}, g)
				return d.result(pn, root, d.mffcSize-2), true
			}
		}
	}
	for _, single := range capSlice(neg, maxUnateScan) {
		for _, dp := range doubles {
			if contains(dp.idx, single) {
				continue
			}
			if simulate.Equal(rowAnd(d.rows[single], dp.row), target, d.care) {
				g := decomp.NewGraph()
				pn := newPinner(g, d)
				a := pn.pin(single)
				b := dp.materialize(pn)
				root := buildAnd([]decomp.Edge{a, b}, g)
				return d.result(pn, root, d.mffcSize-2), true
			}
		}
	}
	return nil, false
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// searchQuad tries the 3-step combination: all polarity pairings of two
// double-node unate divisors drawn from the binate set (AND/OR of the two
// doubles, each itself an AND or OR of a binate pair).
func (d *divisorSet) searchQuad() (*decomp.Proposal, bool) {
	const maxDoublesPerPolarity = 500
	if d.mffcSize <= 3 {
		return nil, false
	}
	target := d.rows[d.target]
	_, _, binate := d.classify()
	doubles := buildDoubles(d, binate, maxDoublesPerPolarity)

	for a := 0; a < len(doubles); a++ {
		for b := a + 1; b < len(doubles); b++ {
			d1, d2 := doubles[a], doubles[b]
			if overlap(d1.idx, d2.idx) {
				continue
			}
			if simulate.Equal(rowAnd(d1.row, d2.row), target, d.care) {
				g := decomp.NewGraph()
				pn := newPinner(g, d)
				root := buildAnd([]decomp.Edge{d1.materialize(pn), d2.materialize(pn)}, g)
				return d.result(pn, root, d.mffcSize-3), true
			}
			if simulate.Equal(rowOr(d1.row, d2.row), target, d.care) {
				g := decomp.NewGraph()
				pn := newPinner(g, d)
				root := buildOr([]decomp.Edge{d1.materialize(pn), d2.materialize(pn)}, g)
				return d.result(pn, root, d.mffcSize-3), true
			}
		}
	}
	return nil, false
}

func overlap(a, b []int) bool {
	for _, x := range a {
		if contains(b, x) {
			return true
		}
	}
	return false
}
