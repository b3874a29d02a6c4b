// Package factoring defines the external algebraic-factoring oracle
// refactor consults to turn a node's local function into a new, hopefully
// smaller, sub-AIG. The real algorithm (quick-factor / good-factor style
// algebraic division) is out of scope here; this package fixes the
// contract and supplies a correct, always-available fallback built on the
// same Shannon-cofactor synthesis the npn package seeds its library with.
package factoring
