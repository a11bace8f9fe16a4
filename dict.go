package lzw

import (
	"fmt"
	"unicode/utf8"
)

// compress runs the greedy longest-match LZW pass over src. It returns the
// emitted code sequence and the smallest bit depth that fits every emitted
// code. Requires len(src) > 0.
//
// Phrases are keyed by their UTF-8 encoding, which gives structural equality
// of symbol sequences for free.
func (c *Codec) compress(src []rune) ([]int, int, error) {
	dict := c.encodeDict()
	nextCode := len(dict)
	maxCode := 0
	codes := make([]int, 0, len(src)/2+1)

	emit := func(phrase string) {
		code := dict[phrase]
		if code > maxCode {
			maxCode = code
		}
		codes = append(codes, code)
	}

	if _, err := c.input.IndexOf(src[0]); err != nil {
		return nil, 0, err
	}
	phrase := string(src[0])

	for _, sym := range src[1:] {
		if _, err := c.input.IndexOf(sym); err != nil {
			return nil, 0, err
		}
		candidate := phrase + string(sym)
		if _, ok := dict[candidate]; ok {
			// greedy extension, nothing emitted
			phrase = candidate
			continue
		}
		dict[candidate] = nextCode
		nextCode++
		emit(phrase)
		phrase = string(sym)
	}
	// the final phrase is emitted unconditionally
	emit(phrase)

	bitDepth := log2Ceil(maxCode + 1)
	if bitDepth >= wordBits {
		return nil, 0, fmt.Errorf("%w: bit depth %d exceeds native code width", ErrCapacityExceeded, bitDepth)
	}
	// bitDepth itself travels as a single pack symbol index
	if bitDepth >= c.pack.Len() {
		return nil, 0, fmt.Errorf("%w: bit depth %d, pack alphabet size %d", ErrCapacityExceeded, bitDepth, c.pack.Len())
	}
	return codes, bitDepth, nil
}

// decompress rebuilds the symbol sequence from codes, reconstructing the
// dictionary the encoder grew. The walk is symmetric to compress: entry k of
// the decode dictionary is the phrase the encoder assigned code k.
func (c *Codec) decompress(codes []int) ([]rune, error) {
	if len(codes) == 0 {
		return nil, fmt.Errorf("%w: empty code sequence", ErrMalformedStream)
	}
	dict := c.decodeDict()

	first := codes[0]
	if first < 0 || first >= len(dict) {
		return nil, fmt.Errorf("%w: leading code %d outside base dictionary of %d", ErrMalformedStream, first, len(dict))
	}
	prev := dict[first]
	out := []rune(prev)

	for _, code := range codes[1:] {
		var entry string
		switch {
		case code >= 0 && code < len(dict):
			entry = dict[code]
			r, _ := utf8.DecodeRuneInString(entry)
			dict = append(dict, prev+string(r))
		case code == len(dict):
			// Self-referential code: the encoder emitted the entry it was
			// defining. It can only be the previous phrase extended by its
			// own first symbol.
			r, _ := utf8.DecodeRuneInString(prev)
			entry = prev + string(r)
			dict = append(dict, entry)
		default:
			return nil, fmt.Errorf("%w: code %d ahead of dictionary size %d", ErrMalformedStream, code, len(dict))
		}
		out = append(out, []rune(entry)...)
		prev = entry
	}
	return out, nil
}
