package lzw

import "sync"

// Preset alphabets and codec pairings for the common cases. Each is built
// lazily at most once and shared; alphabets and codecs are immutable.

// Binary is the full byte alphabet, 0x00 through 0xFF.
func Binary() *Alphabet { return binaryAlphabet() }

// ASCII is the 7-bit character alphabet, 0x00 through 0x7F.
func ASCII() *Alphabet { return asciiAlphabet() }

// UTF16Printable covers the printable UTF-16 code units: 0x0020 through
// 0xD7FF and 0xE000 through 0xFFFF, skipping controls and surrogates.
func UTF16Printable() *Alphabet { return utf16Alphabet() }

// URISafe covers the unreserved alphanumerics 0-9, A-Z and a-z.
func URISafe() *Alphabet { return uriAlphabet() }

// BinaryToBinary compresses bytes into bytes.
func BinaryToBinary() *Codec { return binaryCodec() }

// StringToString compresses ASCII text into ASCII text.
func StringToString() *Codec { return stringCodec() }

// StringToUTF16 compresses ASCII text into printable UTF-16, carrying close
// to 16 payload bits per packed character.
func StringToUTF16() *Codec { return utf16Codec() }

// StringToURI compresses ASCII text into the URI-safe alphanumerics, for
// packed streams embedded in URLs.
func StringToURI() *Codec { return uriCodec() }

var (
	binaryAlphabet = sync.OnceValue(func() *Alphabet {
		return mustAlphabet(Range{0x00, 0xFF})
	})
	asciiAlphabet = sync.OnceValue(func() *Alphabet {
		return mustAlphabet(Range{0x00, 0x7F})
	})
	utf16Alphabet = sync.OnceValue(func() *Alphabet {
		return mustAlphabet(Range{0x0020, 0xD7FF}, Range{0xE000, 0xFFFF})
	})
	uriAlphabet = sync.OnceValue(func() *Alphabet {
		return mustAlphabet(Range{'0', '9'}, Range{'A', 'Z'}, Range{'a', 'z'})
	})

	binaryCodec = sync.OnceValue(func() *Codec { return mustCodec(Binary(), Binary()) })
	stringCodec = sync.OnceValue(func() *Codec { return mustCodec(ASCII(), ASCII()) })
	utf16Codec  = sync.OnceValue(func() *Codec { return mustCodec(ASCII(), UTF16Printable()) })
	uriCodec    = sync.OnceValue(func() *Codec { return mustCodec(ASCII(), URISafe()) })
)

func mustAlphabet(ranges ...Range) *Alphabet {
	a, err := NewAlphabet(ranges...)
	if err != nil {
		panic(err)
	}
	return a
}

func mustCodec(input, pack *Alphabet) *Codec {
	c, err := NewCodec(input, pack)
	if err != nil {
		panic(err)
	}
	return c
}
