// Package refactor implements algebraic node refactoring: it derives a
// node's exact function over its factor cut, hands that function to a
// factoring oracle, and proposes the result when it is cheap enough to
// replace the node's own MFFC.
//
// Unlike resub, refactor never searches divisors — it only ever asks
// "can this function be built more cheaply from its own cut leaves",
// so the whole transform is a single factor-and-cost-check rather than
// an escalating multi-stage search.
package refactor
