// Package dontcare defines the external care-set oracle resubstitution and
// refactoring consult before accepting a zero-gain or marginal candidate: a
// function from a node's cut to the assignments of that cut's inputs the
// rest of the network can actually produce (its observability don't-cares
// union satisfiability don't-cares).
//
// The oracle is pluggable because computing a tight care set in general
// requires a SAT sweep or ODC levels beyond this package's scope. Oracle
// supplies a conservative default (every assignment is cared about) so
// callers that never configure a sharper oracle still get correct,
// if less aggressive, behavior.
package dontcare
