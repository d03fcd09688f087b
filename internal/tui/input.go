package tui

import (
	"fmt"
	"strings"

	"github.com/atrelio/badgewire/internal/convert"
	"github.com/atrelio/badgewire/internal/wiegand"
)

// inputMode selects how the input line is interpreted. Tab cycles
// through the modes in declaration order.
type inputMode int

const (
	modeHex inputMode = iota
	modeDecimal
	modeFacilityCard
	modeCount
)

func (m inputMode) String() string {
	switch m {
	case modeHex:
		return "hex"
	case modeDecimal:
		return "decimal"
	case modeFacilityCard:
		return "facility/card"
	default:
		return "unknown"
	}
}

func (m inputMode) placeholder() string {
	switch m {
	case modeHex:
		return "03409ee9"
	case modeDecimal:
		return "54566633"
	case modeFacilityCard:
		return "FC160 20340"
	default:
		return ""
	}
}

func (m inputMode) next() inputMode {
	return (m + 1) % modeCount
}

func (m inputMode) prev() inputMode {
	return (m + modeCount - 1) % modeCount
}

// convertLine parses one non-empty input line according to the active
// mode and converts it.
func convertLine(mode inputMode, line string, opts convert.Options) (convert.Result, error) {
	text := strings.TrimSpace(line)

	switch mode {
	case modeHex:
		return convert.Convert(convert.HexInput(stripHexPrefix(text)), opts)

	case modeDecimal:
		w, err := wiegand.ParseDecimal(text)
		if err != nil {
			return convert.Result{}, err
		}
		return convert.Convert(convert.DecimalInput(w.Uint32()), opts)

	case modeFacilityCard:
		facilityText, cardText, err := splitFacilityCard(text)
		if err != nil {
			return convert.Result{}, err
		}
		card, err := wiegand.ParseCardText(cardText)
		if err != nil {
			return convert.Result{}, err
		}
		return convert.Convert(convert.FacilityCardInput{
			Facility: facilityText,
			Card:     uint32(card),
		}, opts)

	default:
		return convert.Result{}, fmt.Errorf("unknown input mode %d", mode)
	}
}

// splitFacilityCard accepts "FC160 20340", "160,20340", "160/20340".
func splitFacilityCard(text string) (facility, card string, err error) {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ',' || r == '/'
	})
	if len(parts) != 2 {
		return "", "", fmt.Errorf("facility/card input wants two fields, e.g. %q", "FC160 20340")
	}
	return parts[0], parts[1], nil
}

func stripHexPrefix(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
