// Package convert dispatches the accepted badge word input forms onto
// the wiegand codec and gathers every representation of the word into
// a single result.
package convert

import (
	"fmt"

	"github.com/atrelio/badgewire/internal/wiegand"
)

// Source tags which input form produced a Result.
type Source string

const (
	SourceHex          Source = "hex"
	SourceDecimal      Source = "decimal"
	SourceFacilityCard Source = "facility-card"
)

// Input is the closed set of input forms a conversion accepts. Exactly
// one form is supplied per call; the sealed interface keeps the forms
// mutually exclusive at compile time.
type Input interface {
	source() Source
}

// HexInput is a badge word as 1-8 hex digits, already stripped of any
// prefix or whitespace.
type HexInput string

// DecimalInput is a badge word as its plain integer value.
type DecimalInput uint32

// FacilityCardInput is a facility text (optionally FC-prefixed) plus a
// card number to encode.
type FacilityCardInput struct {
	Facility string
	Card     uint32
}

func (HexInput) source() Source          { return SourceHex }
func (DecimalInput) source() Source      { return SourceDecimal }
func (FacilityCardInput) source() Source { return SourceFacilityCard }

// Options controls conversion behavior. Presentation concerns such as
// uppercase hex stay with the caller.
type Options struct {
	// Strict turns a parity mismatch into an error instead of a
	// ParityOK=false result.
	Strict bool

	// WithBinary includes the 26-character binary rendering.
	WithBinary bool
}

// Result is the outcome of one conversion.
type Result struct {
	Source   Source `json:"source"`
	Hex      string `json:"hex"`
	Decimal  uint32 `json:"decimal"`
	Facility uint8  `json:"facility"`
	Card     uint16 `json:"card"`
	ParityOK bool   `json:"parity_ok"`
	Binary   string `json:"binary,omitempty"`
}

// Convert resolves the input form to a word and decodes it. Inputs
// that encode (facility plus card) always produce parity-valid words;
// inputs that name a word directly carry whatever parity they carry.
func Convert(in Input, opts Options) (Result, error) {
	word, err := wordFromInput(in)
	if err != nil {
		return Result{}, err
	}

	if opts.Strict {
		if err := word.CheckParity(); err != nil {
			return Result{}, err
		}
	}

	res := Result{
		Source:   in.source(),
		Hex:      word.Hex(),
		Decimal:  word.Uint32(),
		Facility: uint8(word.Facility()),
		Card:     uint16(word.Card()),
		ParityOK: word.ParityOK(),
	}
	if opts.WithBinary {
		res.Binary = word.Binary()
	}
	return res, nil
}

func wordFromInput(in Input) (wiegand.Word, error) {
	switch v := in.(type) {
	case HexInput:
		return wiegand.ParseHex(string(v))
	case DecimalInput:
		return wiegand.New(uint32(v))
	case FacilityCardInput:
		facility, err := wiegand.ParseFacilityText(v.Facility)
		if err != nil {
			return 0, err
		}
		card, err := wiegand.NewCardNumber(uint64(v.Card))
		if err != nil {
			return 0, err
		}
		return wiegand.Encode(facility, card), nil
	default:
		return 0, fmt.Errorf("unsupported input form %T", in)
	}
}
