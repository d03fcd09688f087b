package wiegand

import "fmt"

// Bit layout of a 26-bit Wiegand word, bits numbered from the LSB:
//
//	bit 25      bits 24..17       bits 16..1      bit 0
//	  P1     | facility (8)  |   card (16)    |    P2
//
// Facility and card together form a 24-bit payload, shifted left by
// one to make room for the trailing parity bit.
const (
	// WordBits is the width of a Wiegand word.
	WordBits = 26

	// MaxWord is the largest value a 26-bit word can hold.
	MaxWord = 1<<WordBits - 1

	// MaxFacility and MaxCard bound the two payload fields.
	MaxFacility = 1<<facilityBits - 1
	MaxCard     = 1<<cardBits - 1

	facilityBits = 8
	cardBits     = 16

	payloadBits = facilityBits + cardBits
	payloadMask = 1<<payloadBits - 1

	p1Shift      = 25
	payloadShift = 1
)

// FacilityCode is the 8-bit site identifier shared by a batch of cards.
type FacilityCode uint8

// CardNumber is the 16-bit per-card identifier, unique within a
// facility.
type CardNumber uint16

// Word is a 26-bit Wiegand word. The zero value is in range but not
// parity-valid; words built with Encode always are.
type Word uint32

// Encode assembles the word for the given facility and card, computing
// both parity bits. Every (facility, card) pair yields a parity-valid
// word: the field types make out-of-range inputs unrepresentable.
func Encode(facility FacilityCode, card CardNumber) Word {
	payload := uint32(facility)<<cardBits | uint32(card)
	p1, p2 := expectedParity(payload)
	return Word(uint32(p1)<<p1Shift | payload<<payloadShift | uint32(p2))
}

// Decode splits a word into its facility and card fields and reports
// whether the stored parity bits match the payload. It accepts any
// 26-bit value; parityOK is informational. Callers that want a parity
// mismatch surfaced as an error use CheckParity.
func Decode(w Word) (facility FacilityCode, card CardNumber, parityOK bool) {
	return w.Facility(), w.Card(), w.ParityOK()
}

// New checks that v fits in 26 bits and returns it as a Word.
func New(v uint32) (Word, error) {
	if v > MaxWord {
		return 0, outOfRange("new_word", "word",
			fmt.Sprintf("%d exceeds the 26-bit maximum %d", v, MaxWord))
	}
	return Word(v), nil
}

// NewFacilityCode checks that v fits in the 8-bit facility field.
func NewFacilityCode(v uint64) (FacilityCode, error) {
	if v > MaxFacility {
		return 0, outOfRange("new_facility", "facility",
			fmt.Sprintf("%d is outside 0-%d", v, MaxFacility))
	}
	return FacilityCode(v), nil
}

// NewCardNumber checks that v fits in the 16-bit card field.
func NewCardNumber(v uint64) (CardNumber, error) {
	if v > MaxCard {
		return 0, outOfRange("new_card", "card",
			fmt.Sprintf("%d is outside 0-%d", v, MaxCard))
	}
	return CardNumber(v), nil
}

// Payload returns the 24 non-parity bits: facility in the upper 8,
// card in the lower 16.
func (w Word) Payload() uint32 {
	return uint32(w) >> payloadShift & payloadMask
}

// Facility extracts the 8-bit facility code.
func (w Word) Facility() FacilityCode {
	return FacilityCode(w.Payload() >> cardBits)
}

// Card extracts the 16-bit card number.
func (w Word) Card() CardNumber {
	return CardNumber(w.Payload() & (1<<cardBits - 1))
}

// Uint32 returns the word as its plain integer value.
func (w Word) Uint32() uint32 { return uint32(w) }

// Hex renders the word as exactly 8 zero-padded lowercase hex digits.
func (w Word) Hex() string { return fmt.Sprintf("%08x", uint32(w)) }

// HexUpper is Hex with uppercase digits.
func (w Word) HexUpper() string { return fmt.Sprintf("%08X", uint32(w)) }

// Binary renders the word as exactly 26 binary digits, MSB first.
func (w Word) Binary() string { return fmt.Sprintf("%026b", uint32(w)) }

// String renders the word in its canonical hex form.
func (w Word) String() string { return w.Hex() }
