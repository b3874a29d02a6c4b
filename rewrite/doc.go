// Package rewrite implements the rewrite local-rewriting transform (C7):
// per node, enumerate its 4-feasible cuts, match each against the NPN
// candidate library, and keep the candidate realizing the largest
// (MFFC size − nodes added). Transform never mutates the AIG; it returns
// a decomp.Proposal for the caller (ultimately the network updater) to
// commit, or ok=false when no cut yields any fitting candidate.
package rewrite
