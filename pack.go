package lzw

import (
	"errors"
	"fmt"
)

// ErrMalformedStream indicates decode input that no encode pass could have
// produced: a truncated header, symbols outside the pack alphabet, or codes
// that never correspond to dictionary entries.
var ErrMalformedStream = errors.New("lzw: malformed stream")

// packBits serializes codes at bitDepth bits each into pack-alphabet symbols.
// The first two output symbols carry bitDepth and the dead (padding) bit
// count of the final symbol; codes follow LSB-first, crossing symbol
// boundaries as needed.
//
// Example layout for bitDepth=11, packCapacity=8:
//
//	[11111111][11122222][22222233][33333333][3.......]
func (c *Codec) packBits(codes []int, bitDepth int) ([]rune, error) {
	bitsNeeded := bitDepth * len(codes)
	outSymbols := (bitsNeeded-1)/c.packCapacity + 1
	deadBits := outSymbols*c.packCapacity - bitsNeeded

	out := make([]rune, 0, outSymbols+2)
	sym, err := c.pack.SymbolByIndex(bitDepth)
	if err != nil {
		return nil, err
	}
	out = append(out, sym)
	sym, err = c.pack.SymbolByIndex(deadBits)
	if err != nil {
		return nil, err
	}
	out = append(out, sym)

	var (
		acc     uint64 // pack symbol index under construction
		accDone int    // filled bits of acc
	)
	for _, code := range codes {
		cv := uint64(code)
		for codeDone := 0; codeDone < bitDepth; {
			n := min(c.packCapacity-accDone, bitDepth-codeDone)
			chunk := (cv >> codeDone) & (1<<uint(n) - 1)
			acc |= chunk << accDone
			codeDone += n
			accDone += n
			if accDone == c.packCapacity {
				sym, err = c.pack.SymbolByIndex(int(acc))
				if err != nil {
					return nil, err
				}
				out = append(out, sym)
				acc, accDone = 0, 0
			}
		}
	}
	// no codes left, flush the zero-padded tail
	if accDone != 0 {
		sym, err = c.pack.SymbolByIndex(int(acc))
		if err != nil {
			return nil, err
		}
		out = append(out, sym)
	}
	return out, nil
}

// unpackBits reverses packBits. The authoritative stop condition is the dead
// bits rule: at a code boundary, exactly deadBits unread bits left in the
// final symbol. The code count derived from the stream length serves as a
// cross-check; a mismatch means the header and payload disagree.
func (c *Codec) unpackBits(src []rune) ([]int, error) {
	if len(src) < 3 {
		return nil, fmt.Errorf("%w: %d symbols, need a 2-symbol header plus payload", ErrMalformedStream, len(src))
	}
	bitDepth, err := c.pack.IndexOf(src[0])
	if err != nil {
		return nil, fmt.Errorf("%w: bit depth header: %w", ErrMalformedStream, err)
	}
	deadBits, err := c.pack.IndexOf(src[1])
	if err != nil {
		return nil, fmt.Errorf("%w: dead bits header: %w", ErrMalformedStream, err)
	}
	// a depth of wordBits would set the sign bit of reconstructed codes
	if bitDepth < 1 || bitDepth >= wordBits {
		return nil, fmt.Errorf("%w: bit depth %d", ErrMalformedStream, bitDepth)
	}
	if deadBits >= c.packCapacity {
		return nil, fmt.Errorf("%w: dead bits %d, pack capacity %d", ErrMalformedStream, deadBits, c.packCapacity)
	}

	payloadBits := c.packCapacity * (len(src) - 2)
	outLen := (payloadBits - deadBits) / bitDepth
	codes := make([]int, 0, outLen)

	pos := 2
	chunk, err := c.pack.IndexOf(src[pos])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedStream, err)
	}
	pos++
	chunkDone := 0 // consumed bits of chunk

	done := false
	for !done {
		var codeAcc uint64
		codeDone := 0
		for codeDone < bitDepth {
			// at a code boundary, deadBits unread bits in the last loaded
			// symbol means the previous code was the final one
			if codeDone == 0 && pos == len(src) && c.packCapacity-chunkDone == deadBits {
				done = true
				break
			}
			n := min(c.packCapacity-chunkDone, bitDepth-codeDone)
			bitsChunk := (uint64(chunk) >> uint(chunkDone)) & (1<<uint(n) - 1)
			codeAcc |= bitsChunk << uint(codeDone)
			codeDone += n
			chunkDone += n
			if chunkDone == c.packCapacity {
				if pos == len(src) {
					done = true
					break
				}
				chunk, err = c.pack.IndexOf(src[pos])
				if err != nil {
					return nil, fmt.Errorf("%w: %w", ErrMalformedStream, err)
				}
				pos++
				chunkDone = 0
			}
		}
		if codeDone == bitDepth {
			codes = append(codes, int(codeAcc))
		}
		// a partially read code at termination is padding, not data
	}

	if len(codes) != outLen {
		return nil, fmt.Errorf("%w: decoded %d codes, stream length describes %d", ErrMalformedStream, len(codes), outLen)
	}
	return codes, nil
}
