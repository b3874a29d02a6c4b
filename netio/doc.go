// Package netio reads and writes this module's own flat-text rendering
// of an And-Inverter Graph. It is not an external interchange format:
// the sole purpose is giving the command-line surface something to load
// networks from and dump optimized networks back to.
//
// Format: one statement per line, comments start with '#'.
//
//	input <id>
//	and <id> <lit0> <lit1>
//	latch <id> <input-lit> <init>
//	output <name> <lit>
//
// A literal is 2*node_id + polarity (0 = non-inverted, 1 = inverted),
// matching aig.Edge's own bit layout; node id 0 is always the constant.
// ids are whatever the writer's source graph used; the reader only needs
// every id an "and"/"latch"/"output" line references to have appeared in
// an earlier "input", "and" or "latch" line (a topological dump, which
// is what Write always produces).
package netio
