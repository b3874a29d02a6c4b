package npn_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aigopt/npn"
)

// truth4 builds a raw truth table the same way library.go does, so tests
// can construct inputs without depending on unexported helpers.
func truth4(fn func(v [4]bool) bool) uint16 {
	var out uint16
	for m := 0; m < 16; m++ {
		var v [4]bool
		for i := 0; i < 4; i++ {
			v[i] = (m>>uint(i))&1 == 1
		}
		if fn(v) {
			out |= 1 << uint(m)
		}
	}
	return out
}

func TestCanonicalize_Idempotent(t *testing.T) {
	and2 := truth4(func(v [4]bool) bool { return v[0] && v[1] })
	canon, _ := npn.Canonicalize(and2)
	canon2, sig2 := npn.Canonicalize(canon)
	require.Equal(t, canon, canon2, "canonicalizing an already-canonical truth table must be a fixed point")
	require.Equal(t, false, sig2.OutputNegate)
}

func TestCanonicalize_SameClassForPermutedInputs(t *testing.T) {
	and01 := truth4(func(v [4]bool) bool { return v[0] && v[1] })
	and12 := truth4(func(v [4]bool) bool { return v[1] && v[2] })

	c1, _ := npn.Canonicalize(and01)
	c2, _ := npn.Canonicalize(and12)
	require.Equal(t, c1, c2, "relabeling inputs must not change the NPN class")
}

func TestCanonicalize_AndOrShareClass(t *testing.T) {
	and2 := truth4(func(v [4]bool) bool { return v[0] && v[1] })
	or2 := truth4(func(v [4]bool) bool { return v[0] || v[1] })

	c1, _ := npn.Canonicalize(and2)
	c2, _ := npn.Canonicalize(or2)
	require.Equal(t, c1, c2, "OR is AND with both inputs and the output complemented, same NPN class")
}

func TestCanonicalize_ConstantIsItsOwnClass(t *testing.T) {
	zero := truth4(func(v [4]bool) bool { return false })
	canon, _ := npn.Canonicalize(zero)
	require.Equal(t, uint16(0), canon)
}

func TestDefaultLibrary_HasCandidatesForSeedFunctions(t *testing.T) {
	lib := npn.DefaultLibrary()
	require.Greater(t, lib.Size(), 0)

	and2 := truth4(func(v [4]bool) bool { return v[0] && v[1] })
	canon, _ := npn.Canonicalize(and2)
	cls := lib.Lookup(canon)
	require.NotNil(t, cls, "AND2's class must be seeded")
	require.NotEmpty(t, cls.Candidates)
	require.LessOrEqual(t, cls.Candidates[0].NodeCount, 1, "AND2 should synthesize to a single AND node")
}

func TestDefaultLibrary_MissReturnsNil(t *testing.T) {
	lib := npn.DefaultLibrary()
	require.Nil(t, lib.Lookup(0xDEAD))
}
