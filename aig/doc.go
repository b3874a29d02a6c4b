// Package aig implements the And-Inverter Graph graph store: nodes, edges
// with inversion bits, fanout multisets, levels, traversal ids and the
// structural-hash table that gives the graph its strashed invariant.
//
// A Graph holds a dense, append-only slice of Nodes addressed by their
// 32-bit id. Every and-node is the unique representative of its ordered
// (Fanin0, Fanin1) pair: CreateAnd never returns two different ids for the
// same pair, and Replace re-hashes every ancestor whose pair actually
// changes so the invariant survives in-place rewriting.
//
// Edges are plain uint32 values: the low bit is the inversion bit, the
// remaining bits are the node id. There is no pointer tagging; Not, and
// Regular are pure bit operations on the value.
//
// This package also owns the network-updater contract (committing a
// replacement for a node's fanout-free cone): Replace walks the chain of
// ancestors whose fanin pair must be re-struck, reusing existing nodes
// through the same hash table used at construction time, and garbage
// collects anything left with no referrer.
package aig
