// Package lzw provides dictionary compression over arbitrary symbol alphabets.
//
// # Overview
//
// This is a generic LZW (Lempel–Ziv–Welch) codec parameterized over two
// alphabets: the input alphabet the uncompressed data is drawn from, and the
// pack alphabet the compressed stream is expressed in. Separating the two lets
// compressed data live safely in restricted character sets: a URI-safe subset
// of ASCII, the printable range of UTF-16, or plain bytes.
//
// Encoding is two-pass over an in-memory sequence: the phrase dictionary first
// turns the input into integer codes, then the bit packer serializes the codes
// into fixed-width pack symbols at the smallest bit width that fits the
// largest emitted code. The width and the padding of the final symbol travel
// in a two-symbol header, so the stream is self-describing.
//
// # When to Use This Codec
//
// It works well for:
//   - Text with repeated substrings: logs, markup, generated identifiers
//   - Embedding compressed payloads in URLs, JSON strings, or other places
//     where raw binary is not welcome
//   - Small to medium payloads that fit comfortably in memory
//
// # When NOT to Use This Codec
//
// It is not suitable for:
//   - Unbounded or streaming input (the whole code sequence is held in
//     memory before the bit width can be fixed)
//   - Random or already-compressed data (the dictionary never pays off)
//   - Raw byte streams where gzip/zstd interoperability matters
//
// # Basic Usage
//
//	codec := lzw.StringToURI()
//
//	packed, err := codec.EncodeString("TOBEORNOTTOBEORNOTTOBEORNOT")
//	if err != nil {
//		// handle err
//	}
//	// packed contains only [0-9A-Za-z]
//
//	original, err := codec.DecodeString(packed)
//
// Custom alphabets compose from ordered, disjoint symbol ranges:
//
//	hex, _ := lzw.NewAlphabet(lzw.Range{'0', '9'}, lzw.Range{'a', 'f'})
//	codec, _ := lzw.NewCodec(lzw.ASCII(), hex)
//
// # Wire Format
//
// A packed stream is a sequence of pack-alphabet symbols: one symbol carrying
// the bit depth, one carrying the dead (padding) bit count of the final
// symbol, then the codes packed LSB-first at floor(log2(packAlphabetSize))
// bits per symbol, crossing symbol boundaries as needed. An empty input
// produces an empty stream with no header.
//
// # Concurrency
//
// A Codec is safe for concurrent use: per-call dictionary state is local, and
// the shared base dictionary is built once and then only read. Encode and
// decode calls on different streams may run in parallel.
package lzw
