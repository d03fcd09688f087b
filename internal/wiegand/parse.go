package wiegand

import (
	"fmt"
	"strconv"
	"strings"
)

// facilityPrefix is the optional case-insensitive marker accepted in
// facility text, as in "FC160".
const facilityPrefix = "fc"

// ParseHex parses a badge word from 1-8 case-insensitive hex digits.
// No prefix or whitespace is accepted; surfaces strip those before
// calling. Values above MaxWord are rejected as out of range.
func ParseHex(s string) (Word, error) {
	if len(s) == 0 || len(s) > 8 || !isHex(s) {
		return 0, invalidFormat("parse_hex", "word",
			fmt.Sprintf("%q is not 1-8 hex digits", s))
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, invalidFormat("parse_hex", "word", err.Error())
	}
	if v > MaxWord {
		return 0, outOfRange("parse_hex", "word",
			fmt.Sprintf("%#x exceeds the 26-bit maximum %#x", v, uint32(MaxWord)))
	}
	return Word(v), nil
}

// ParseDecimal parses a badge word from unsigned decimal text.
func ParseDecimal(s string) (Word, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, emptyInput("parse_decimal", "word")
	}
	if !isDigits(t) {
		return 0, invalidFormat("parse_decimal", "word",
			fmt.Sprintf("%q is not an unsigned decimal integer", t))
	}
	v, err := strconv.ParseUint(t, 10, 64)
	if err != nil || v > MaxWord {
		return 0, outOfRange("parse_decimal", "word",
			fmt.Sprintf("%s exceeds the 26-bit maximum %d", t, MaxWord))
	}
	return Word(v), nil
}

// ParseFacilityText parses a facility code from text such as "160",
// "FC160", or "fc160". The prefix is optional; the digits are not.
func ParseFacilityText(s string) (FacilityCode, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, emptyInput("parse_facility", "facility")
	}
	if len(t) >= len(facilityPrefix) && strings.EqualFold(t[:len(facilityPrefix)], facilityPrefix) {
		t = t[len(facilityPrefix):]
	}
	if !isDigits(t) {
		return 0, invalidFormat("parse_facility", "facility",
			fmt.Sprintf("%q is not an optional FC prefix followed by digits", s))
	}
	v, err := strconv.ParseUint(t, 10, 64)
	if err != nil {
		return 0, outOfRange("parse_facility", "facility",
			fmt.Sprintf("%s is outside 0-%d", t, MaxFacility))
	}
	return NewFacilityCode(v)
}

// ParseCardText parses a card number from unsigned decimal text.
func ParseCardText(s string) (CardNumber, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, emptyInput("parse_card", "card")
	}
	if !isDigits(t) {
		return 0, invalidFormat("parse_card", "card",
			fmt.Sprintf("%q is not an unsigned decimal integer", t))
	}
	v, err := strconv.ParseUint(t, 10, 64)
	if err != nil {
		return 0, outOfRange("parse_card", "card",
			fmt.Sprintf("%s is outside 0-%d", t, MaxCard))
	}
	return NewCardNumber(v)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return len(s) > 0
}
