package orchestrate

import (
	"github.com/katalvlaran/aigopt/dontcare"
	"github.com/katalvlaran/aigopt/factoring"
)

// FanoutCap is the orchestrator's hard skip threshold: any node with
// fanout above this is left untouched regardless of policy.
const FanoutCap = 1000

// Config bundles every per-pass knob the CLI surface exposes. The zero
// Config is not ready to use — call DefaultConfig and override from
// there, since several fields (Order, Policy) need non-zero-value
// defaults that differ from Go's zero value.
type Config struct {
	// UseZerosRwr/UseZerosRef let rewrite/refactor qualify at gain == 0.
	// Resub never does, regardless of these flags.
	UseZerosRwr bool
	UseZerosRef bool

	// PlaceEnable is accepted for CLI-surface parity but never consulted:
	// timing-driven placement is out of scope for this package.
	PlaceEnable bool

	// NSteps bounds resub's search escalation (its own n_steps knob).
	NSteps int
	// ReconvergenceCutMax is resub's cut_max (reconvergence cut leaf bound).
	ReconvergenceCutMax int
	// FactorCutMax is refactor's node_size_max (factor cut leaf bound).
	FactorCutMax int
	// ResubDivsMax is resub's cone_size_max (divisor-set budget per cone).
	ResubDivsMax int

	// OdcLevels is carried for parity with the CLI surface. Run does not
	// read it and Oracle is called without a level bound, so it has no
	// effect on a pass.
	OdcLevels int
	// UseDCs gates whether Oracle is consulted at all; when false every
	// node's care set is dontcare.AllCared regardless of Oracle.
	UseDCs bool
	// Oracle narrows resub's care set when UseDCs is true. Nil falls
	// back to dontcare.AllCared.
	Oracle dontcare.Oracle
	// Factorer is refactor's algebraic-factoring oracle. Nil falls back
	// to factoring.Default.
	Factorer factoring.Factorer

	// UpdateLevel enables the post-pass level rebuild; when false levels
	// are left stale (a caller doing a single untimed pass may skip it).
	UpdateLevel bool
	// Verbose enables the per-pass summary the CLI prints.
	Verbose bool

	// Policy selects the selection algorithm; Order/PolicyMask/Seed are
	// only consulted by the policies that use them.
	Policy     Kind
	Order      Order
	PolicyMask map[uint32]int
	Seed       int64
}

// DefaultConfig returns the constants named in the external-interfaces
// section: reconvergence cut 8, factor cut 10, 150 single-node divisors,
// priority order σ0 = (rwr, res, ref), no don't-care narrowing.
func DefaultConfig() *Config {
	return &Config{
		NSteps:               3,
		ReconvergenceCutMax:  8,
		FactorCutMax:         10,
		ResubDivsMax:         150,
		Policy:               KindPriority,
		Order:                Orders[0],
		Seed:                 -1,
	}
}
