// Package orchestrate runs one optimization pass over an AIG: for every
// internal node (in topological order) it asks rewrite, resub and
// refactor for a candidate, picks a winner under a configurable policy,
// and commits it through netupdate. It owns the pass-level shared state
// (cut cache, decision log, scratch) so none of the three transforms
// need to know about each other.
package orchestrate
