package lzw

import "math/bits"

// wordBits bounds the bit depth: codes travel as non-negative ints, so a
// depth of wordBits or more cannot be represented.
const wordBits = 64

// log2Floor returns log2(x) rounded down. Requires x > 0.
func log2Floor(x int) int {
	return bits.Len(uint(x)) - 1
}

// log2Ceil returns the number of bits needed to encode x distinct values.
// Note the contract at the edges: log2Ceil(1) == 1, log2Ceil(2^k) == k,
// log2Ceil(2^k+1) == k+1.
func log2Ceil(x int) int {
	if x <= 1 {
		return 1
	}
	return log2Floor(x-1) + 1
}
