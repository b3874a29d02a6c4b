package npn

import (
	"github.com/katalvlaran/aigopt/aig"
	"github.com/katalvlaran/aigopt/decomp"
)

// Candidate is one pre-tabulated sub-AIG realizing a class's canonical
// truth table, annotated so rewrite can rank candidates without
// re-walking the graph.
type Candidate struct {
	Graph     *decomp.Graph
	NodeCount int
	Level     int
}

// Class is one of the (up to 222) NPN equivalence classes of 4-variable
// functions: its canonical truth table and the candidates realizing it,
// in the order AddCandidate registered them; rewrite keeps the earlier
// entry on a gain tie.
type Class struct {
	Truth      uint16
	Candidates []*Candidate
}

// Library maps a canonical truth table to its Class. Library is read-only
// once built: no operation in this package mutates an existing entry.
type Library struct {
	classes map[uint16]*Class
}

// NewLibrary returns an empty library; use AddCandidate to populate it
// (e.g. when loading a pre-built forest) or call DefaultLibrary for a
// small bundled seed set.
func NewLibrary() *Library { return &Library{classes: make(map[uint16]*Class)} }

// Lookup returns the class for a canonical truth table, or nil if the
// library has no entry for it (the rewrite transform treats a miss as
// "no candidate", never an error).
func (l *Library) Lookup(canon uint16) *Class { return l.classes[canon] }

// AddCandidate registers graph as a realization of canon's class with the
// caller-supplied nodeCount and level; it computes neither. DefaultLibrary
// measures both against a scratch AIG holding only the pins, so they
// reflect the candidate's intrinsic size — rewrite re-evaluates the real
// added-cost against the live network per cut.
func (l *Library) AddCandidate(canon uint16, graph *decomp.Graph, nodeCount, level int) {
	cls := l.classes[canon]
	if cls == nil {
		cls = &Class{Truth: canon}
		l.classes[canon] = cls
	}
	cls.Candidates = append(cls.Candidates, &Candidate{Graph: graph, NodeCount: nodeCount, Level: level})
}

// Size returns the number of distinct classes currently loaded.
func (l *Library) Size() int { return len(l.classes) }

// restrict returns the cofactor of truth obtained by forcing variable v
// to b, still expressed as a full 4-variable table (duplicated across the
// don't-cared assignments of v).
func restrict(truth uint16, v int, b bool) uint16 {
	var out uint16
	for m := 0; m < 16; m++ {
		mm := m
		if b {
			mm |= 1 << uint(v)
		} else {
			mm &^= 1 << uint(v)
		}
		if (truth>>uint(mm))&1 == 1 {
			out |= 1 << uint(m)
		}
	}
	return out
}

// synthesizeFromTruth builds a decomposition graph computing truth
// exactly via recursive Shannon cofactor expansion (multiplexer form):
// F = (v ∧ F|v=1) ∨ (¬v ∧ F|v=0), with ∨ built from ∧/¬ by De Morgan. A
// variable the cofactors agree on (truth table equality, not graph
// identity — synthesize is deterministic but each recursive call mints
// fresh nodes) is elided entirely rather than wired into a trivial mux.
//
// This stands in for the external, offline-built candidate forest:
// DefaultLibrary uses it to seed a small set of classes the rest of the
// package can be exercised against.
func synthesizeFromTruth(g *decomp.Graph, truth uint16, remaining []int) decomp.Edge {
	if len(remaining) == 0 {
		return g.AddConst(truth&1 == 1)
	}
	v := remaining[0]
	rest := remaining[1:]
	cof0 := restrict(truth, v, false)
	cof1 := restrict(truth, v, true)
	if cof0 == cof1 {
		return synthesizeFromTruth(g, cof0, rest)
	}
	f0 := synthesizeFromTruth(g, cof0, rest)
	f1 := synthesizeFromTruth(g, cof1, rest)
	xv := g.AddInput(v)
	onTrue := g.AddAnd(xv, f1)
	onFalse := g.AddAnd(xv.Not(), f0)
	return g.AddAnd(onTrue.Not(), onFalse.Not()).Not() // De Morgan: a∨b = ¬(¬a∧¬b)
}

// buildCandidateGraph synthesizes and seats truth as a class candidate,
// returning the graph with its root already set.
func buildCandidateGraph(truth uint16) *decomp.Graph {
	g := decomp.NewGraph()
	root := synthesizeFromTruth(g, truth, []int{0, 1, 2, 3})
	g.SetRoot(root)
	return g
}

// truthOf evaluates fn over all 16 assignments of 4 boolean variables to
// build its raw (pre-canonicalization) truth table.
func truthOf(fn func(v [NumVars]bool) bool) uint16 {
	var out uint16
	for m := 0; m < 16; m++ {
		var v [NumVars]bool
		for i := 0; i < NumVars; i++ {
			v[i] = (m>>uint(i))&1 == 1
		}
		if fn(v) {
			out |= 1 << uint(m)
		}
	}
	return out
}

// sizeCandidate measures a freshly synthesized candidate's intrinsic cost
// against a scratch AIG with one fresh primary input per pin, so the
// measurement reflects the candidate's own shape rather than whatever
// sharing happens to exist in a caller's live network.
func sizeCandidate(g *decomp.Graph) (nodeCount, level int) {
	scratch := aig.New()
	leaves := make([]aig.Edge, g.PinCount())
	for i := range leaves {
		leaves[i] = scratch.CreateInput()
	}
	added, _ := g.EvaluateNodeCount(scratch, nil, leaves, 1<<30, -1)
	root := g.Materialize(scratch, leaves)
	return added, int(scratch.LevelOf(root.Node()))
}

// DefaultLibrary builds a small, real library covering the function
// families a demo/test network is most likely to exercise: the constant,
// the single-variable projection, 2-input AND/OR/XOR, a 2:1 multiplexer,
// 3-input majority and 4-input AND. Every class is reached by
// canonicalizing a concrete truth table and synthesizing its candidate
// directly in canonical-pin space, so Candidate.Graph already computes
// exactly Class.Truth.
func DefaultLibrary() *Library {
	l := NewLibrary()
	seeds := []uint16{
		truthOf(func(v [NumVars]bool) bool { return false }),                    // constant 0
		truthOf(func(v [NumVars]bool) bool { return v[0] }),                     // projection
		truthOf(func(v [NumVars]bool) bool { return v[0] && v[1] }),             // AND2
		truthOf(func(v [NumVars]bool) bool { return v[0] || v[1] }),             // OR2
		truthOf(func(v [NumVars]bool) bool { return v[0] != v[1] }),             // XOR2
		truthOf(func(v [NumVars]bool) bool { return v[0] && v[1] && v[2] && v[3] }), // AND4
		truthOf(func(v [NumVars]bool) bool { // MUX(v0; v1,v2)
			if v[0] {
				return v[2]
			}
			return v[1]
		}),
		truthOf(func(v [NumVars]bool) bool { // MAJ3
			count := 0
			for _, b := range [3]bool{v[0], v[1], v[2]} {
				if b {
					count++
				}
			}
			return count >= 2
		}),
	}
	seen := make(map[uint16]bool)
	for _, raw := range seeds {
		canon, _ := Canonicalize(raw)
		if seen[canon] {
			continue
		}
		seen[canon] = true
		g := buildCandidateGraph(canon)
		added, level := sizeCandidate(g)
		l.AddCandidate(canon, g, added, level)
	}
	return l
}
