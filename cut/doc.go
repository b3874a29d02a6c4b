// Package cut implements the AIG cut engine (C4): k-feasible cut
// enumeration with cached truth tables, plus the reconvergence-driven and
// factor-cut variants used by resubstitution and refactoring.
//
// A k-feasible cut of node v is a set of at most k nodes ("leaves") such
// that v's function can be expressed purely in terms of those leaves.
// Engine enumerates them bottom-up: v's cuts are the trivial cut {v} plus
// every union of a fanin0 cut and a fanin1 cut that stays within the leaf
// budget, deduplicated and pruned by dominance (a cut whose leaf set is a
// superset of another's carries no information the smaller cut doesn't
// already have, so it is dropped).
//
// Engine caches per-node cut lists and must be invalidated (Invalidate)
// whenever the underlying AIG structure changes under it — a stale cut
// silently referencing a garbage-collected node is the "stale cut"
// scenario rewrite is required to detect and skip.
package cut
