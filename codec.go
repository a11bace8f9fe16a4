package lzw

import (
	"errors"
	"fmt"
	"maps"
	"sync"
)

var (
	// ErrConfig indicates an alphabet pair that cannot form a working codec.
	ErrConfig = errors.New("lzw: invalid codec configuration")

	// ErrCapacityExceeded indicates an encode pass whose dictionary grew past
	// what the pack alphabet can describe. The encode is aborted whole.
	ErrCapacityExceeded = errors.New("lzw: code space exceeds pack capacity")
)

// Codec binds an input alphabet to a pack alphabet and compresses sequences
// of input symbols into sequences of pack symbols.
//
// All per-call dictionary state is local, so one Codec may serve concurrent
// Encode and Decode calls on independent streams.
type Codec struct {
	input *Alphabet
	pack  *Alphabet

	// packCapacity is the payload bits one pack symbol carries:
	// floor(log2(pack.Len())).
	packCapacity int

	// Base single-symbol dictionaries depend only on the input alphabet.
	// Built once on first use, then read-only; per-call dictionaries start
	// as copies of these.
	baseOnce sync.Once
	baseEnc  map[string]int // single-symbol phrase -> code
	baseDec  []string       // code -> single-symbol phrase
}

// NewCodec validates the alphabet pair and returns a codec over it.
// The pack alphabet must hold at least two symbols (one payload bit), and
// must be able to express the bit depth of the unextended base dictionary,
// otherwise even a one-symbol input could not be encoded.
func NewCodec(input, pack *Alphabet) (*Codec, error) {
	if input == nil || pack == nil {
		return nil, fmt.Errorf("%w: nil alphabet", ErrConfig)
	}
	if input.Len() < 1 {
		return nil, fmt.Errorf("%w: empty input alphabet", ErrConfig)
	}
	if pack.Len() < 2 {
		return nil, fmt.Errorf("%w: pack alphabet of %d symbols carries no bits", ErrConfig, pack.Len())
	}
	capacity := log2Floor(pack.Len())
	if capacity > wordBits {
		return nil, fmt.Errorf("%w: pack capacity %d exceeds %d-bit codes", ErrConfig, capacity, wordBits)
	}
	if pack.Len() < log2Ceil(input.Len()) {
		return nil, fmt.Errorf("%w: pack alphabet of %d symbols cannot express bit depth %d of the base alphabet",
			ErrConfig, pack.Len(), log2Ceil(input.Len()))
	}
	return &Codec{input: input, pack: pack, packCapacity: capacity}, nil
}

// InputAlphabet returns the alphabet uncompressed symbols are drawn from.
func (c *Codec) InputAlphabet() *Alphabet { return c.input }

// PackAlphabet returns the alphabet compressed symbols are drawn from.
func (c *Codec) PackAlphabet() *Alphabet { return c.pack }

// PackCapacity returns the payload bits carried by one pack symbol.
func (c *Codec) PackCapacity() int { return c.packCapacity }

func (c *Codec) buildBase() {
	n := c.input.Len()
	enc := make(map[string]int, n)
	dec := make([]string, n)
	for i := 0; i < n; i++ {
		sym, _ := c.input.SymbolByIndex(i)
		s := string(sym)
		enc[s] = i
		dec[i] = s
	}
	c.baseEnc, c.baseDec = enc, dec
}

// encodeDict returns a fresh encode dictionary seeded with the base
// single-symbol phrases.
func (c *Codec) encodeDict() map[string]int {
	c.baseOnce.Do(c.buildBase)
	return maps.Clone(c.baseEnc)
}

// decodeDict returns a fresh decode dictionary seeded identically to the
// encode side.
func (c *Codec) decodeDict() []string {
	c.baseOnce.Do(c.buildBase)
	dict := make([]string, len(c.baseDec), 2*len(c.baseDec))
	copy(dict, c.baseDec)
	return dict
}

// Encode compresses src into a sequence of pack-alphabet symbols.
// An empty input yields an empty output. On error nothing partial is
// returned: the input contained a symbol outside the input alphabet
// (ErrOutOfRange), or the dictionary outgrew the pack alphabet
// (ErrCapacityExceeded).
func (c *Codec) Encode(src []rune) ([]rune, error) {
	if len(src) == 0 {
		return []rune{}, nil
	}
	codes, bitDepth, err := c.compress(src)
	if err != nil {
		return nil, err
	}
	return c.packBits(codes, bitDepth)
}

// Decode decompresses a packed symbol sequence produced by Encode.
// An empty input yields an empty output. Streams that do not correspond to
// a valid encode output fail with ErrMalformedStream.
func (c *Codec) Decode(src []rune) ([]rune, error) {
	if len(src) == 0 {
		return []rune{}, nil
	}
	codes, err := c.unpackBits(src)
	if err != nil {
		return nil, err
	}
	return c.decompress(codes)
}

// EncodeString compresses s and returns the packed stream as a string.
func (c *Codec) EncodeString(s string) (string, error) {
	packed, err := c.Encode([]rune(s))
	if err != nil {
		return "", err
	}
	return string(packed), nil
}

// DecodeString decompresses a packed stream previously returned by
// EncodeString.
func (c *Codec) DecodeString(s string) (string, error) {
	out, err := c.Decode([]rune(s))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// EncodeBytes compresses b, treating each byte as one input symbol. The pack
// alphabet must be byte-valued (all symbols below 0x100), as with the
// BinaryToBinary preset.
func (c *Codec) EncodeBytes(b []byte) ([]byte, error) {
	src := make([]rune, len(b))
	for i, v := range b {
		src[i] = rune(v)
	}
	packed, err := c.Encode(src)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(packed))
	for i, sym := range packed {
		if sym > 0xFF {
			return nil, fmt.Errorf("%w: pack symbol %#x does not fit a byte", ErrConfig, sym)
		}
		out[i] = byte(sym)
	}
	return out, nil
}

// DecodeBytes decompresses a packed byte stream previously returned by
// EncodeBytes.
func (c *Codec) DecodeBytes(b []byte) ([]byte, error) {
	src := make([]rune, len(b))
	for i, v := range b {
		src[i] = rune(v)
	}
	out, err := c.Decode(src)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, len(out))
	for i, sym := range out {
		if sym > 0xFF {
			return nil, fmt.Errorf("%w: input symbol %#x does not fit a byte", ErrConfig, sym)
		}
		dst[i] = byte(sym)
	}
	return dst, nil
}
