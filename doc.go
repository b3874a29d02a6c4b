// Package aigopt is a technology-independent logic optimizer for
// And-Inverter Graphs.
//
// It orchestrates three local rewriting transforms — rewrite,
// resubstitute, and refactor — across every internal node of a
// combinational circuit, picking at most one winning transform per node
// under a configurable policy and committing it in place.
//
// Subpackages:
//
//	aig/         — the AIG graph store: nodes, edges, strashing, fanout, levels
//	cut/         — k-feasible and reconvergence-driven cut enumeration
//	mffc/        — maximum fanout-free cone labeling via reference counting
//	simulate/    — bit-parallel divisor simulation over a cut's assignments
//	npn/         — 4-variable NPN canonicalization and subgraph library
//	decomp/      — the small decomposition-graph type transforms propose
//	rewrite/     — the rewrite transform (C7)
//	resub/       — the resubstitute transform (C8)
//	refactor/    — the refactor transform (C9)
//	factoring/   — the algebraic-factoring oracle refactor consults
//	dontcare/    — the observability don't-care oracle resub/refactor consult
//	netupdate/   — commits a winning decomposition graph into the AIG
//	orchestrate/ — the per-pass node loop and transform-selection policies
//	decisionlog/ — renders a pass's per-node decisions to disk
//	gnnexport/   — renders a post-pass network as GNN training inputs
//	netio/       — reads and writes this module's own network file format
//	config/      — layered CLI configuration (defaults, YAML, env, flags)
//	cmd/aigopt/  — the optimize command-line front end
package aigopt
