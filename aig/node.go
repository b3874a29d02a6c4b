package aig

// Kind identifies what role a Node plays in the network.
type Kind uint8

const (
	// KindConst is the single constant-0 node, always id 0.
	KindConst Kind = iota
	// KindInput is a primary input. Latch outputs are KindLatch nodes.
	KindInput
	// KindAnd is a two-input AND node, the only kind CreateAnd produces.
	KindAnd
	// KindLatch is a sequential element: behaves like an input for
	// fanin purposes (level 0, never garbage collected) but also owns
	// an Input edge recorded in Graph.latches, preserved untouched by
	// every transform.
	KindLatch
	// KindDead marks a tombstoned node: its id is retired and must
	// never again be referenced by a live edge.
	KindDead
)

// NoLevelLimit is the sentinel RequiredLevel meaning "no level bound".
const NoLevelLimit = ^uint32(0)

// ParentRef names one referrer of a node: either another and-node by id,
// or a primary output by its index in Graph.outputs.
type ParentRef struct {
	IsPO bool
	ID   uint32
}

// Node is one entry of the dense, id-indexed node table.
//
// Fanin0/Fanin1 are meaningful only for KindAnd. fanout is an unordered
// multiset of ParentRef, represented as reference counts since the same
// parent can reach a node through both fanins (e.g. after a rewrite that
// collapses a cut) and PO lists may repeat a node too.
//
// TravID, MarkA/B/C and Scratch are scratch fields: any routine that sets
// them must restore them before returning control to its caller.
type Node struct {
	ID     uint32
	Kind   Kind
	Fanin0 Edge
	Fanin1 Edge

	Level    uint32
	ReqLevel uint32 // NoLevelLimit when no required-level bound is active

	Persistent bool

	fanout      map[ParentRef]int
	fanoutTotal int

	TravID uint64
	MarkA  bool
	MarkB  bool
	MarkC  bool
	Scratch interface{}
}

// FanoutCount returns the total fanout multiplicity (sum of ref counts).
func (n *Node) FanoutCount() int { return n.fanoutTotal }

// FanoutRefs returns a defensive copy of the referrers as a flat list in
// which each referrer appears once per unit of its multiplicity (order
// is not defined). Callers that mutate the graph while
// iterating (e.g. Replace) must use this copy, not a live view.
func (n *Node) FanoutRefs() []ParentRef {
	out := make([]ParentRef, 0, len(n.fanout))
	for ref, mult := range n.fanout {
		for i := 0; i < mult; i++ {
			out = append(out, ref)
		}
	}
	return out
}

func (n *Node) addFanout(ref ParentRef) {
	if n.fanout == nil {
		n.fanout = make(map[ParentRef]int)
	}
	n.fanout[ref]++
	n.fanoutTotal++
}

func (n *Node) removeFanout(ref ParentRef) {
	if n.fanout == nil {
		return
	}
	if c := n.fanout[ref]; c > 0 {
		if c == 1 {
			delete(n.fanout, ref)
		} else {
			n.fanout[ref] = c - 1
		}
		n.fanoutTotal--
	}
}
