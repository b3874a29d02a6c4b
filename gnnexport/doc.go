// Package gnnexport renders a post-pass network, together with the
// per-node per-transform stats an orchestrate.Run call produced, as the
// two flat files a graph-neural-network training pipeline consumes: an
// edge list and a per-node feature table. Neither format is read back
// by this module; both are one-way dumps for external tooling.
package gnnexport
