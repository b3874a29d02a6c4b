// Package netupdate implements the network updater (C11): committing a
// decomp.Proposal in place of a node's MFFC and verifying the resulting
// node-count delta matches the proposal's reported gain.
//
// Apply pins the proposal's leaves before materializing (so a leaf that
// happens to also be inside the replaced node's own fanin cone is never
// garbage collected out from under the commit), calls aig.Graph.Replace,
// then unpins. The reported gain is checked against the actual
// before/after live and-node count; a mismatch is returned as an error
// rather than rolled back — by the time it is detected the graph has
// already been mutated (and structurally hashed against), so undoing
// would mean reconstructing pre-commit state rather than a simple
// pointer restore. Callers that require strict transactional commit
// should snapshot externally (e.g. before a pass) and abort the whole
// pass on error.
package netupdate
