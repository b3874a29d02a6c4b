// Package resub implements resubstitution (C8): re-expressing a node's
// maximum fanout-free cone as a 0-, 1-, 2- or 3-step Boolean function of
// existing divisors drawn from its reconvergence-driven cut, guided by
// bit-parallel simulation under an (optionally externally supplied)
// observability don't-care set.
//
// The search tries, in order, a constant, an equal divisor, a pair of
// unate divisors, a triple, a unate divisor combined with a double-node
// divisor and finally a pair of double-node divisors, returning the
// first that reproduces the node's function on
// every cared-for point of its cut's domain. Unlike rewrite, resub never
// accepts a zero-gain candidate: spending a divisor search only pays off
// when it actually shrinks the network.
package resub
