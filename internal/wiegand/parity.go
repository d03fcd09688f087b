package wiegand

import (
	"fmt"
	"math/bits"
)

// The two parity bits each cover half of the 24-bit payload:
//
//	P1 (bit 25): even parity over the upper 12 payload bits
//	P2 (bit 0):  odd parity over the lower 12 payload bits
//
// Even parity means the span plus its parity bit holds an even number
// of ones, odd parity an odd number. The assignment of even to the
// leading half and odd to the trailing half is fixed by the format.
const paritySpanBits = 12

// PopCount returns the number of set bits in v.
func PopCount(v uint32) int { return bits.OnesCount32(v) }

// expectedParity computes the parity bits the payload demands. P1 is
// set when the upper span holds an odd number of ones, P2 when the
// lower span holds an even number.
func expectedParity(payload uint32) (p1, p2 uint8) {
	upper := payload >> paritySpanBits
	lower := payload & (1<<paritySpanBits - 1)

	p1 = uint8(PopCount(upper) & 1)
	p2 = uint8(PopCount(lower)&1) ^ 1
	return p1, p2
}

// ParityBits returns the parity bits stored in the word.
func (w Word) ParityBits() (p1, p2 uint8) {
	return uint8(w >> p1Shift & 1), uint8(w & 1)
}

// ExpectedParity recomputes the parity bits from the word's payload.
func (w Word) ExpectedParity() (p1, p2 uint8) {
	return expectedParity(w.Payload())
}

// ParityOK reports whether both stored parity bits match the payload.
func (w Word) ParityOK() bool {
	ap1, ap2 := w.ParityBits()
	ep1, ep2 := w.ExpectedParity()
	return ap1 == ep1 && ap2 == ep2
}

// CheckParity is the strict form of ParityOK. It returns a
// KindParityCheckFailed error naming the mismatched bits, or nil.
func (w Word) CheckParity() error {
	ap1, ap2 := w.ParityBits()
	ep1, ep2 := w.ExpectedParity()
	if ap1 == ep1 && ap2 == ep2 {
		return nil
	}
	return &CodecError{
		Op:    "check_parity",
		Kind:  KindParityCheckFailed,
		Field: "word",
		Err: fmt.Errorf("word %s: P1 got %d want %d, P2 got %d want %d: %w",
			w.Hex(), ap1, ep1, ap2, ep2, ErrParityCheckFailed),
	}
}
