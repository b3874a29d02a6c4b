package netupdate

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aigopt/aig"
	"github.com/katalvlaran/aigopt/decomp"
)

// ErrGainMismatch is returned when the committed node-count delta does
// not match the proposal's reported gain — the post-condition C11 is
// required to check.
var ErrGainMismatch = errors.New("netupdate: committed gain does not match proposal")

func leavesOf(edges []aig.Edge) []uint32 {
	seen := make(map[uint32]bool, len(edges))
	out := make([]uint32, 0, len(edges))
	for _, e := range edges {
		id := e.Node()
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// Apply commits p in place of v: v's every current fanout is rewired to
// p's materialized root (via aig.Graph.Replace), cascading through any
// ancestor whose fanin pair actually changes and garbage-collecting
// whatever becomes unreachable.
//
// Returns ErrGainMismatch if the live and-node count did not drop by
// exactly p.Gain — the graph has already been mutated at that point, so
// the error is diagnostic (the caller should treat it as a fatal
// invariant violation for the pass), not a signal that nothing happened.
func Apply(g *aig.Graph, v uint32, p *decomp.Proposal) error {
	leaves := leavesOf(p.LeafEdges)
	for _, l := range leaves {
		g.Pin(l)
	}

	before := g.NumLiveAndNodes()
	newEdge := p.Materialize(g)
	g.Replace(v, newEdge)

	for _, l := range leaves {
		g.Unpin(l)
	}

	after := g.NumLiveAndNodes()
	delta := before - after
	if delta != p.Gain {
		return fmt.Errorf("%w: expected delta %d, got %d", ErrGainMismatch, p.Gain, delta)
	}
	return nil
}
