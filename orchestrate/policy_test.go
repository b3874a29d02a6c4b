package orchestrate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQualifies_ResubNeverAcceptsZeroGain(t *testing.T) {
	cfg := &Config{UseZerosRwr: true, UseZerosRef: true}
	require.False(t, qualifies(Resub, 0, true, cfg))
	require.True(t, qualifies(Resub, 1, true, cfg))
	require.False(t, qualifies(Rewrite, 0, true, &Config{}))
	require.True(t, qualifies(Rewrite, 0, true, cfg))
	require.False(t, qualifies(Refactor, 0, true, &Config{}))
	require.True(t, qualifies(Refactor, 0, true, cfg))
	require.False(t, qualifies(Rewrite, 5, false, cfg), "ok=false always disqualifies regardless of gain")
}

func TestSelectWinner_PolicyMaskOverridesGreedyGain(t *testing.T) {
	// Mirrors the spec's own policy-mask scenario: policy[n] = 3 means
	// order (res, ref, rwr); with gains rwr=2, res=1, ref=0 and
	// fUseZeros_ref=false, resub must win despite rewrite's higher gain.
	cfg := &Config{
		Policy:     KindPerNode,
		PolicyMask: map[uint32]int{42: 3},
		UseZerosRef: false,
	}
	cands := [3]candidate{
		Rewrite:  {Rewrite, 2, true, qualifies(Rewrite, 2, true, cfg)},
		Resub:    {Resub, 1, true, qualifies(Resub, 1, true, cfg)},
		Refactor: {Refactor, 0, true, qualifies(Refactor, 0, true, cfg)},
	}
	winner, ok := selectWinner(cfg, 42, cands, newRNG(1))
	require.True(t, ok)
	require.Equal(t, Resub, winner)
}

func TestSelectWinner_LocalGreedyPicksMaxGain(t *testing.T) {
	cfg := &Config{Policy: KindLocalGreedy}
	cands := [3]candidate{
		Rewrite:  {Rewrite, 2, true, qualifies(Rewrite, 2, true, cfg)},
		Resub:    {Resub, 5, true, qualifies(Resub, 5, true, cfg)},
		Refactor: {Refactor, 1, true, qualifies(Refactor, 1, true, cfg)},
	}
	winner, ok := selectWinner(cfg, 1, cands, newRNG(1))
	require.True(t, ok)
	require.Equal(t, Resub, winner)
}

func TestSelectWinner_NoneQualifies(t *testing.T) {
	cfg := &Config{Policy: KindPriority, Order: Orders[0]}
	var cands [3]candidate
	_, ok := selectWinner(cfg, 1, cands, newRNG(1))
	require.False(t, ok)
}
