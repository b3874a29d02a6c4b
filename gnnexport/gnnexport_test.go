package gnnexport_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aigopt/aig"
	"github.com/katalvlaran/aigopt/gnnexport"
	"github.com/katalvlaran/aigopt/orchestrate"
)

func TestWriteEdgeList_EmitsTwoLinesPerAndNode(t *testing.T) {
	g := aig.New()
	a := g.CreateInput()
	b := g.CreateInput()
	n := g.CreateAnd(a, b.Not())
	g.AddOutput("o", n)

	var buf strings.Builder
	require.NoError(t, gnnexport.WriteEdgeList(g, &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "1 3", lines[0])
	require.Equal(t, "2 3", lines[1])
}

func TestWriteFeatures_SkippedNodeGetsAllSentinelRow(t *testing.T) {
	g := aig.New()
	a := g.CreateInput()
	b := g.CreateInput()
	n := g.CreateAnd(a, b.Not())
	g.AddOutput("o", n)

	var buf strings.Builder
	require.NoError(t, gnnexport.WriteFeatures(g, map[uint32]orchestrate.NodeStats{}, &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	require.Equal(t, "0, 1, -1, -1, -1, -1, -1, -1", lines[0])
}

func TestWriteFeatures_ReflectsOrchestrateStats(t *testing.T) {
	g := aig.New()
	a := g.CreateInput()
	b := g.CreateInput()
	n := g.CreateAnd(a, b)
	g.AddOutput("o", n)

	res, err := orchestrate.Run(g, orchestrate.DefaultConfig())
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, gnnexport.WriteFeatures(g, res.Stats, &buf))
	require.NotEmpty(t, buf.String())
}

// TestWriteFeatures_StatsSurviveCompactionRemap builds a circuit where the
// pass removes a whole constant-collapsing cone (ids 3,4,5) while a later,
// untouched node survives and is renumbered downward by Compact. Before the
// fix, Result.Stats stayed keyed by the pre-compaction id (7) while
// WriteFeatures looked the survivor up by its new, post-compaction id (4),
// so its real stats were silently replaced by the skipped-sentinel row.
func TestWriteFeatures_StatsSurviveCompactionRemap(t *testing.T) {
	g := aig.New()
	a := g.CreateInput()
	b := g.CreateInput()
	p := g.CreateAnd(a, b)
	q := g.CreateAnd(a, b.Not())
	v := g.CreateAnd(p, q) // constant 0; collapses and removes p, q, v
	g.AddOutput("o", v)

	c := g.CreateInput()
	w := g.CreateAnd(a, c) // untouched; survives, renumbered by Compact
	g.AddOutput("w_out", w)

	res, err := orchestrate.Run(g, orchestrate.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, 1, g.NumLiveAndNodes(), "only w should remain")

	wNewID := g.Outputs()[1].Fanin.Node()
	_, ok := res.Stats[wNewID]
	require.True(t, ok, "w's stats must be reachable under its post-compaction id, not its stale pre-compaction one")

	var buf strings.Builder
	require.NoError(t, gnnexport.WriteFeatures(g, res.Stats, &buf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1, "only w should remain live")
}
