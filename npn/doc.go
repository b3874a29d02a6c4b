// Package npn implements NPN canonicalization for 4-variable Boolean
// functions and the subgraph library rewrite matches against (C3).
//
// Canonicalize brute-forces the orbit of a 16-bit truth table under input
// negation, input permutation and output negation (2 × 4! × 16 = 768
// transforms — trivially cheap for 4 variables) and returns the
// lexicographically smallest truth table in the orbit together with the
// (permutation, input-negation mask, output-negation) triple that reaches
// it. Rewrite uses the triple to map a candidate's canonical pins back
// onto the real cut leaves.
//
// Library maps a canonical truth table to the set of candidate
// decomposition graphs realizing it, each annotated with node count and
// level so rewrite can pick the cheapest/shallowest. Building the real,
// exhaustive 222-class forest is an offline step outside this package's
// scope (§1); DefaultLibrary instead synthesizes a small, useful seed set
// on the fly from known truth tables via Shannon cofactor expansion, so
// the matching machinery has something real to exercise. A pre-built
// forest is loaded by populating a NewLibrary through AddCandidate.
package npn
