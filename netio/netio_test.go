package netio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aigopt/aig"
	"github.com/katalvlaran/aigopt/netio"
)

func buildSample() *aig.Graph {
	g := aig.New()
	a := g.CreateInput()
	b := g.CreateInput()
	n := g.CreateAnd(a, b.Not())
	g.AddOutput("o", n.Not())
	return g
}

func TestWriteRead_RoundTripsStructureAndPolarity(t *testing.T) {
	g := buildSample()

	var buf strings.Builder
	require.NoError(t, netio.Write(g, &buf))

	g2, err := netio.Read(strings.NewReader(buf.String()))
	require.NoError(t, err)

	require.Equal(t, g.NumLiveAndNodes(), g2.NumLiveAndNodes())
	require.Len(t, g2.Outputs(), 1)

	out := g2.Outputs()[0]
	require.Equal(t, "o", out.Name)
	nd := g2.Node(out.Fanin.Node())
	require.NotNil(t, nd)
	require.Equal(t, aig.KindAnd, nd.Kind)
	require.True(t, out.Fanin.IsInverted())
	require.NoError(t, g2.CheckInvariants())
}

func TestRead_RejectsUndeclaredReference(t *testing.T) {
	_, err := netio.Read(strings.NewReader("and 3 2 4\n"))
	require.Error(t, err)
}

func TestRead_SkipsBlankLinesAndComments(t *testing.T) {
	src := "# a trivial one-input passthrough\n\ninput 1\noutput passthrough 2\n"
	g, err := netio.Read(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, g.Outputs(), 1)
	require.Equal(t, "passthrough", g.Outputs()[0].Name)
}
