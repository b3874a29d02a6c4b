// Package simulate implements exact bit-parallel Boolean simulation over
// a small divisor sequence (C6): given k cut variables and a word width
// of 64, every divisor's truth table over the full 2^k-point domain is
// computed in O(2^k/64) words per AND combination, for O(n·2^k/64) total.
//
// The first k entries of a sequence must be leaves (the elementary
// one-variable functions); every later entry is an AND of two earlier
// entries' rows, each optionally complemented. After computing a row it
// is normalized: if its first bit is 1 the row is complemented and a
// phase flag recorded, so two functionally-equal-up-to-complement
// divisors compare byte-for-byte equal with differing phase.
package simulate
