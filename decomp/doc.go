// Package decomp implements the decomposition graph (C2): the small DAG
// of 2-input AND/XOR leaves every local transform (rewrite, resubstitute,
// refactor) uses to describe its proposed replacement, before the network
// updater commits it into the real AIG.
//
// A Graph is built bottom-up with AddInput/AddConst/AddAnd/AddXor, each
// returning an Edge local to the graph (an index into Graph's own node
// table, not the AIG's). SetRoot designates which edge realizes the
// target function; Complement flips its polarity.
//
// EvaluateNodeCount is the cost oracle every transform calls before
// accepting a candidate: it walks the graph bottom-up and, for each
// internal node, asks the AIG (via aig.Graph.LookupAnd) whether that exact
// AND already exists outside the set of nodes being replaced. Existing
// nodes are free; new ones cost one each. A level bound and a node-count
// budget can reject the candidate outright.
package decomp
