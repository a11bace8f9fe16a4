package lzw

import (
	"errors"
	"math/rand"
	"strings"
	"sync"
	"testing"
)

// randomSymbols draws length symbols uniformly from the alphabet.
func randomSymbols(t testing.TB, rng *rand.Rand, a *Alphabet, length int) []rune {
	t.Helper()
	out := make([]rune, length)
	for i := range out {
		sym, err := a.SymbolByIndex(rng.Intn(a.Len()))
		if err != nil {
			t.Fatalf("SymbolByIndex: %v", err)
		}
		out[i] = sym
	}
	return out
}

func TestRoundTripPresets(t *testing.T) {
	codecs := []struct {
		name  string
		codec *Codec
	}{
		{"binary", BinaryToBinary()},
		{"string", StringToString()},
		{"uri", StringToURI()},
		{"utf16", StringToUTF16()},
	}
	rng := rand.New(rand.NewSource(20190218))
	for _, tc := range codecs {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				src := randomSymbols(t, rng, tc.codec.InputAlphabet(), 1+rng.Intn(1+i))
				packed, err := tc.codec.Encode(src)
				if err != nil {
					t.Fatalf("encode: %v", err)
				}
				for _, sym := range packed {
					if !tc.codec.PackAlphabet().Contains(sym) {
						t.Fatalf("packed symbol %#x outside pack alphabet", sym)
					}
				}
				got, err := tc.codec.Decode(packed)
				if err != nil {
					t.Fatalf("decode: %v", err)
				}
				if string(got) != string(src) {
					t.Fatalf("round trip mismatch: got %q want %q", string(got), string(src))
				}
			}
		})
	}
}

func TestRoundTripRepeatingChunks(t *testing.T) {
	// original data with long repeated substrings, the case LZW exists for
	rng := rand.New(rand.NewSource(1))
	codec := BinaryToBinary()
	src := randomSymbols(t, rng, codec.InputAlphabet(), 1024)
	const chunk = 16
	for i := 0; i < len(src)/chunk-1; i++ {
		copy(src[(i+1)*chunk:(i+2)*chunk], src[i*chunk:(i+1)*chunk])
	}
	packed, err := codec.Encode(src)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := codec.Decode(packed)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(got) != string(src) {
		t.Fatalf("round trip mismatch")
	}
}

func TestEmptyInput(t *testing.T) {
	codec := StringToURI()
	packed, err := codec.Encode(nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(packed) != 0 {
		t.Fatalf("encode(empty) len=%d", len(packed))
	}
	out, err := codec.Decode(nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("decode(empty) len=%d", len(out))
	}
}

func TestCompressionOnRepetition(t *testing.T) {
	codec := StringToURI()
	input := "TOBEORNOTTOBEORNOTTOBEORNOT"
	packed, err := codec.EncodeString(input)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// naive per-symbol packing: every input symbol at base width, plus header
	naiveBits := log2Ceil(codec.InputAlphabet().Len()) * len(input)
	naive := 2 + (naiveBits-1)/codec.PackCapacity() + 1
	if len(packed) >= naive {
		t.Fatalf("packed %d symbols, naive packing needs %d", len(packed), naive)
	}
	got, err := codec.DecodeString(packed)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != input {
		t.Fatalf("got %q want %q", got, input)
	}
}

func TestEncodeOutOfRange(t *testing.T) {
	codec := StringToString()
	if _, err := codec.EncodeString("café"); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("err=%v", err)
	}
	// leading symbol out of range too
	if _, err := codec.Encode([]rune{0x2603}); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("leading err=%v", err)
	}
}

func TestDecodeMalformed(t *testing.T) {
	codec := StringToURI()
	for _, src := range []string{"A", "AB", "!!badstream"} {
		if _, err := codec.DecodeString(src); !errors.Is(err, ErrMalformedStream) {
			t.Fatalf("DecodeString(%q) err=%v", src, err)
		}
	}

	// a packed stream whose codes skip ahead of the dictionary
	packed, err := codec.packBits([]int{'A', 130}, 8)
	if err != nil {
		t.Fatalf("pack: %v", err)
	}
	if _, err := codec.Decode(packed); !errors.Is(err, ErrMalformedStream) {
		t.Fatalf("code gap err=%v", err)
	}
}

func TestNewCodecValidation(t *testing.T) {
	if _, err := NewCodec(nil, URISafe()); !errors.Is(err, ErrConfig) {
		t.Fatalf("nil input err=%v", err)
	}
	if _, err := NewCodec(ASCII(), nil); !errors.Is(err, ErrConfig) {
		t.Fatalf("nil pack err=%v", err)
	}

	one, err := NewAlphabet(Range{'x', 'x'})
	if err != nil {
		t.Fatalf("alphabet: %v", err)
	}
	if _, err := NewCodec(ASCII(), one); !errors.Is(err, ErrConfig) {
		t.Fatalf("one-symbol pack err=%v", err)
	}

	// 4 pack symbols cannot carry the depth header for a 128-symbol base
	small, err := NewAlphabet(Range{0, 3})
	if err != nil {
		t.Fatalf("alphabet: %v", err)
	}
	if _, err := NewCodec(ASCII(), small); !errors.Is(err, ErrConfig) {
		t.Fatalf("small pack err=%v", err)
	}

	// the same 4-symbol alphabet is fine for a small input alphabet
	if _, err := NewCodec(small, small); err != nil {
		t.Fatalf("small/small: %v", err)
	}
}

func TestEncodeBytesRoundTrip(t *testing.T) {
	codec := BinaryToBinary()
	input := make([]byte, 512)
	rng := rand.New(rand.NewSource(7))
	rng.Read(input)
	copy(input[256:], input[:256])

	packed, err := codec.EncodeBytes(input)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := codec.DecodeBytes(packed)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(got) != string(input) {
		t.Fatalf("round trip mismatch")
	}
}

func TestCodecConcurrent(t *testing.T) {
	// base dictionaries are built once on first use; hammer that path
	codec, err := NewCodec(ASCII(), URISafe())
	if err != nil {
		t.Fatalf("codec: %v", err)
	}
	input := strings.Repeat("concurrent streams are independent. ", 8)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			packed, err := codec.EncodeString(input)
			if err != nil {
				t.Errorf("encode: %v", err)
				return
			}
			got, err := codec.DecodeString(packed)
			if err != nil {
				t.Errorf("decode: %v", err)
				return
			}
			if got != input {
				t.Errorf("round trip mismatch")
			}
		}()
	}
	wg.Wait()
}

func BenchmarkEncode(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	inputs := []struct {
		name string
		data []rune
	}{
		{"random_1KB", randomSymbols(b, rng, ASCII(), 1024)},
		{"repetitive_1KB", []rune(strings.Repeat("TOBEORNOTTOBEORNOT", 57))[:1024]},
		{"uniform_1KB", []rune(strings.Repeat("a", 1024))},
	}
	codecs := []struct {
		name  string
		codec *Codec
	}{
		{"string", StringToString()},
		{"uri", StringToURI()},
		{"utf16", StringToUTF16()},
	}
	for _, c := range codecs {
		for _, input := range inputs {
			b.Run(c.name+"/"+input.name, func(b *testing.B) {
				b.SetBytes(int64(len(input.data)))
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := c.codec.Encode(input.data); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	inputs := []struct {
		name string
		data []rune
	}{
		{"random_1KB", randomSymbols(b, rng, ASCII(), 1024)},
		{"repetitive_1KB", []rune(strings.Repeat("TOBEORNOTTOBEORNOT", 57))[:1024]},
		{"uniform_1KB", []rune(strings.Repeat("a", 1024))},
	}
	codecs := []struct {
		name  string
		codec *Codec
	}{
		{"string", StringToString()},
		{"uri", StringToURI()},
		{"utf16", StringToUTF16()},
	}
	for _, c := range codecs {
		for _, input := range inputs {
			packed, err := c.codec.Encode(input.data)
			if err != nil {
				b.Fatal(err)
			}
			b.Run(c.name+"/"+input.name, func(b *testing.B) {
				b.SetBytes(int64(len(input.data)))
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := c.codec.Decode(packed); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
