package dontcare_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aigopt/aig"
	"github.com/katalvlaran/aigopt/dontcare"
)

func TestAllCared_ReturnsEveryPointCared(t *testing.T) {
	g := aig.New()
	a := g.CreateInput()
	b := g.CreateInput()
	care := dontcare.AllCared(g, a.Node(), []uint32{a.Node(), b.Node()})
	require.Len(t, care, 1)
	require.Equal(t, uint64(0xF), care[0]&0xF, "4-point domain must be fully cared")
}
