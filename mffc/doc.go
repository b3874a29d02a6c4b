// Package mffc computes the Maximum Fanout-Free Cone of a node relative
// to a cut (C5): the set of nodes that become removable once the root is
// removed, because every path from them to a primary output passes
// through the root.
//
// Collect/Label walk a scratch reference-count copy seeded from the live
// graph's real fanout counts — the cut's leaves and anything outside the
// cut's support act as a hard boundary the walk never crosses or
// dereferences past. Nothing in this package mutates aig.Graph state, so
// the "leave fanout counts exactly as found" contract holds by
// construction rather than by explicit restoration.
package mffc
