// Package decisionlog writes an orchestrate.Log out in the plain-text
// decision log format the external-interfaces section describes: one
// line per node id in original order, holding just the Decision value.
package decisionlog
