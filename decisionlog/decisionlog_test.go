package decisionlog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aigopt/aig"
	"github.com/katalvlaran/aigopt/decisionlog"
	"github.com/katalvlaran/aigopt/orchestrate"
)

func TestWrite_EmitsOneLinePerNodeInPassOrder(t *testing.T) {
	g := aig.New()
	a := g.CreateInput()
	b := g.CreateInput()
	n := g.CreateAnd(a, b)
	g.AddOutput("o", n)

	res, err := orchestrate.Run(g, orchestrate.DefaultConfig())
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, decisionlog.Write(res.Log, &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(res.Log.Order()))
}
