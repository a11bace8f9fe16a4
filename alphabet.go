package lzw

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrOutOfRange indicates a symbol or index outside every range of an Alphabet.
var ErrOutOfRange = errors.New("lzw: symbol out of range")

// Range is a non-empty contiguous run of symbols [Lo, Hi], both inclusive.
type Range struct {
	Lo, Hi rune
}

func (r Range) size() int { return int(r.Hi) - int(r.Lo) + 1 }

// Alphabet maps between a dense index space [0, Len) and symbol values drawn
// from one or more disjoint ranges. Ranges keep their construction order:
// indices cover the first range, then the second, and so on.
//
// An Alphabet is immutable after construction and safe for concurrent use.
type Alphabet struct {
	ranges  []Range
	offsets []int // offsets[i] is the index of ranges[i].Lo
	length  int
}

// Surrogate code points have no UTF-8 encoding and cannot act as symbols.
const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// NewAlphabet builds an Alphabet from the given ranges. It fails if no range
// is given, any range has Lo > Hi, or a range leaves the Unicode scalar value
// space (negative, beyond utf8.MaxRune, or covering the surrogate block).
// Ranges are not reordered or merged; the caller is expected to pass disjoint
// ranges.
func NewAlphabet(ranges ...Range) (*Alphabet, error) {
	if len(ranges) == 0 {
		return nil, fmt.Errorf("%w: alphabet needs at least one range", ErrConfig)
	}
	a := &Alphabet{
		ranges:  make([]Range, len(ranges)),
		offsets: make([]int, len(ranges)),
	}
	for i, r := range ranges {
		if r.Lo > r.Hi {
			return nil, fmt.Errorf("%w: range %d has lo %q > hi %q", ErrConfig, i, r.Lo, r.Hi)
		}
		if r.Lo < 0 || r.Hi > utf8.MaxRune {
			return nil, fmt.Errorf("%w: range %d outside the Unicode scalar value space", ErrConfig, i)
		}
		if r.Lo <= surrogateMax && r.Hi >= surrogateMin {
			return nil, fmt.Errorf("%w: range %d covers surrogate code points %#x..%#x", ErrConfig, i, surrogateMin, surrogateMax)
		}
		a.ranges[i] = r
		a.offsets[i] = a.length
		a.length += r.size()
	}
	return a, nil
}

// Len returns the number of symbols in the alphabet.
func (a *Alphabet) Len() int { return a.length }

// SymbolByIndex returns the symbol at index idx.
func (a *Alphabet) SymbolByIndex(idx int) (rune, error) {
	if idx < 0 || idx >= a.length {
		return 0, fmt.Errorf("%w: index %d, alphabet size %d", ErrOutOfRange, idx, a.length)
	}
	for i, r := range a.ranges {
		if idx < a.offsets[i]+r.size() {
			return r.Lo + rune(idx-a.offsets[i]), nil
		}
	}
	// unreachable: idx < length implies a covering range
	return 0, fmt.Errorf("%w: index %d", ErrOutOfRange, idx)
}

// IndexOf returns the index of symbol sym.
func (a *Alphabet) IndexOf(sym rune) (int, error) {
	for i, r := range a.ranges {
		if r.Lo <= sym && sym <= r.Hi {
			return a.offsets[i] + int(sym-r.Lo), nil
		}
	}
	return 0, fmt.Errorf("%w: symbol %q (%#x)", ErrOutOfRange, sym, sym)
}

// Contains reports whether sym belongs to the alphabet.
func (a *Alphabet) Contains(sym rune) bool {
	for _, r := range a.ranges {
		if r.Lo <= sym && sym <= r.Hi {
			return true
		}
	}
	return false
}
