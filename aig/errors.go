package aig

import "errors"

// Sentinel errors surfaced by Graph operations.
var (
	// ErrUnknownNode is returned when an operation is given a node id
	// that is out of range or has been garbage collected.
	ErrUnknownNode = errors.New("aig: unknown or dead node id")

	// ErrNotAndNode is returned when an operation that requires an
	// and-node (e.g. reading Fanin0/Fanin1) is given a PI, const or
	// latch node.
	ErrNotAndNode = errors.New("aig: node is not an and-node")

	// ErrCommitMismatch names a commit whose node-count delta differs from
	// the expected gain. No Graph operation returns it; netupdate reports
	// that case with its own netupdate.ErrGainMismatch.
	ErrCommitMismatch = errors.New("aig: commit violates expected gain")

	// ErrPersistentNode is returned when an operation tries to remove
	// or rewire a node flagged Persistent in a way that is not allowed.
	ErrPersistentNode = errors.New("aig: node is persistent")
)
