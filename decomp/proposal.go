package decomp

import "github.com/katalvlaran/aigopt/aig"

// Proposal is the common output contract every local-rewriting transform
// (rewrite, resubstitute, refactor) returns: a decomposition graph, its
// binding to real cut-leaf edges, whether the materialized root must be
// complemented to match the target node's original function, and the
// reported node-count gain. The network updater (C11) is the only
// consumer that turns a Proposal into an actual graph mutation.
type Proposal struct {
	Graph      *Graph
	LeafEdges  []aig.Edge
	Complement bool
	Gain       int
}

// Materialize commits Graph into aigGraph (structural hashing transparently
// reuses whatever already exists) and returns the edge realizing the
// proposal's target function — including the top-level complement, if
// any — without touching the node the proposal is meant to replace.
func (p *Proposal) Materialize(aigGraph *aig.Graph) aig.Edge {
	root := p.Graph.Materialize(aigGraph, p.LeafEdges)
	if p.Complement {
		root = root.Not()
	}
	return root
}
