package gnnexport

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/aigopt/aig"
	"github.com/katalvlaran/aigopt/orchestrate"
)

// WriteEdgeList emits one "child_id parent_id" line per fanin edge of
// every live and-node in g, in ascending node-id order. A two-input
// and-node contributes two lines, one per fanin.
func WriteEdgeList(g *aig.Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for id := uint32(0); int(id) < g.NumNodes(); id++ {
		nd := g.Node(id)
		if nd == nil || nd.Kind != aig.KindAnd {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%d %d\n", nd.Fanin0.Node(), nd.ID); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, "%d %d\n", nd.Fanin1.Node(), nd.ID); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteEdgeListFile is WriteEdgeList's convenience form for the CLI's
// edge-list-file flag.
func WriteEdgeListFile(g *aig.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteEdgeList(g, f)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// WriteFeatures emits one line per live and-node in g, in ascending
// node-id order: fanin0's complement bit, fanin1's complement bit, then
// each transform's {ok, gain} pair as stats reports it. A node absent
// from stats (orchestrate.Run never visited it, e.g. it was skipped)
// gets the all-sentinel row the format reserves for skipped nodes: -1 in
// all six transform columns.
func WriteFeatures(g *aig.Graph, stats map[uint32]orchestrate.NodeStats, w io.Writer) error {
	bw := bufio.NewWriter(w)
	skipped := orchestrate.NodeStats{RewriteGain: -1, ResubGain: -1, RefactorGain: -1}
	for id := uint32(0); int(id) < g.NumNodes(); id++ {
		nd := g.Node(id)
		if nd == nil || nd.Kind != aig.KindAnd {
			continue
		}
		st, ok := stats[id]
		rwrOK, resOK, refOK := boolToInt(st.RewriteOK), boolToInt(st.ResubOK), boolToInt(st.RefactorOK)
		if !ok {
			st = skipped
			rwrOK, resOK, refOK = -1, -1, -1
		}
		_, err := fmt.Fprintf(bw, "%d, %d, %d, %d, %d, %d, %d, %d\n",
			boolToInt(nd.Fanin0.IsInverted()), boolToInt(nd.Fanin1.IsInverted()),
			rwrOK, st.RewriteGain,
			resOK, st.ResubGain,
			refOK, st.RefactorGain,
		)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFeaturesFile is WriteFeatures's convenience form for the CLI's
// features-file flag.
func WriteFeaturesFile(g *aig.Graph, stats map[uint32]orchestrate.NodeStats, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteFeatures(g, stats, f)
}
