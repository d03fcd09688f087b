package tui

import (
	"testing"

	"github.com/atrelio/badgewire/internal/convert"
	"github.com/atrelio/badgewire/internal/wiegand"
)

func TestConvertLine_PerMode(t *testing.T) {
	cases := []struct {
		name string
		mode inputMode
		line string
	}{
		{name: "hex", mode: modeHex, line: "3409ee9"},
		{name: "hex with prefix", mode: modeHex, line: "0x03409ee9"},
		{name: "decimal", mode: modeDecimal, line: "54566633"},
		{name: "facility card space", mode: modeFacilityCard, line: "FC160 20340"},
		{name: "facility card comma", mode: modeFacilityCard, line: "160,20340"},
		{name: "facility card slash", mode: modeFacilityCard, line: "fc160/20340"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := convertLine(tc.mode, tc.line, convert.Options{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Hex != "03409ee9" {
				t.Fatalf("expected hex 03409ee9, got %q", res.Hex)
			}
			if res.Facility != 160 || res.Card != 20340 {
				t.Fatalf("expected fields (160, 20340), got (%d, %d)", res.Facility, res.Card)
			}
		})
	}
}

func TestConvertLine_Errors(t *testing.T) {
	cases := []struct {
		name string
		mode inputMode
		line string
	}{
		{name: "bad hex", mode: modeHex, line: "xyz"},
		{name: "bad decimal", mode: modeDecimal, line: "12ab"},
		{name: "missing card field", mode: modeFacilityCard, line: "FC160"},
		{name: "too many fields", mode: modeFacilityCard, line: "160 20340 7"},
		{name: "card out of range", mode: modeFacilityCard, line: "160 70000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := convertLine(tc.mode, tc.line, convert.Options{}); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestConvertLine_StrictPropagates(t *testing.T) {
	_, err := convertLine(modeHex, "03409ee8", convert.Options{Strict: true})
	if !wiegand.IsKind(err, wiegand.KindParityCheckFailed) {
		t.Fatalf("expected parity_check_failed, got %v", err)
	}
}

func TestInputMode_Cycle(t *testing.T) {
	m := modeHex
	seen := map[inputMode]bool{}
	for i := 0; i < int(modeCount); i++ {
		seen[m] = true
		m = m.next()
	}
	if m != modeHex {
		t.Fatalf("expected cycle to return to hex, got %s", m)
	}
	if len(seen) != int(modeCount) {
		t.Fatalf("expected %d distinct modes, saw %d", modeCount, len(seen))
	}

	if modeHex.prev() != modeFacilityCard {
		t.Fatalf("expected prev from hex to wrap to facility/card, got %s", modeHex.prev())
	}
}

func TestInputMode_Labels(t *testing.T) {
	for m := inputMode(0); m < modeCount; m++ {
		if m.String() == "unknown" {
			t.Fatalf("mode %d has no label", m)
		}
		if m.placeholder() == "" {
			t.Fatalf("mode %d has no placeholder", m)
		}
	}
}

func TestRefresh_EmptyLineClearsState(t *testing.T) {
	m := newModel(Deps{})
	m.input.SetValue("zzz")
	m.refresh()
	if m.convErr == nil {
		t.Fatal("expected conversion error for bad input")
	}

	m.input.SetValue("")
	m.refresh()
	if m.convErr != nil || m.result != nil {
		t.Fatal("expected empty line to clear result and error")
	}
}
