package tui

import (
	"errors"
	"fmt"

	"github.com/atrelio/badgewire/internal/wiegand"
)

// userMessage flattens a conversion error into one short line for the
// error card. Codec errors carry op/kind/field context that belongs in
// the log, not on screen; everything else is already written for the
// user.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var ce *wiegand.CodecError
	if !errors.As(err, &ce) {
		return err.Error()
	}

	switch ce.Kind {
	case wiegand.KindEmptyInput:
		return "Enter a " + fieldLabel(ce.Field)

	case wiegand.KindInvalidFormat:
		switch ce.Op {
		case "parse_hex":
			return "Hex wants 1-8 hex digits, like 03409ee9"
		case "parse_decimal":
			return "Decimal wants plain digits, like 54566633"
		case "parse_facility":
			return "Facility wants digits with an optional FC prefix, like FC160"
		case "parse_card":
			return "Card wants plain digits, like 20340"
		}
		return "Input not recognized"

	case wiegand.KindOutOfRange:
		switch ce.Field {
		case "facility":
			return fmt.Sprintf("Facility codes run 0-%d", wiegand.MaxFacility)
		case "card":
			return fmt.Sprintf("Card numbers run 0-%d", wiegand.MaxCard)
		}
		return fmt.Sprintf("Badge words top out at %d (hex 3ffffff)", uint32(wiegand.MaxWord))

	case wiegand.KindParityCheckFailed:
		return "Parity check failed (strict is on)"

	default:
		return "Unexpected error (see logs)"
	}
}

func fieldLabel(field string) string {
	switch field {
	case "facility":
		return "facility code"
	case "card":
		return "card number"
	default:
		return "badge word"
	}
}
