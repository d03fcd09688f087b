package config

import "testing"

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{in: "pretty", want: FormatPretty},
		{in: "json", want: FormatJSON},
		{in: "JSON", want: FormatJSON},
		{in: " pretty ", want: FormatPretty},
		{in: "xml", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseFormat(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("expected %q to be rejected, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestApplyConfigKeepsDefaultsForAbsentKeys(t *testing.T) {
	cfg := DefaultConfig()
	var y yamlConfig

	if err := applyConfig(&cfg, "badgewire.yaml", y); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("expected untouched defaults, got %+v", cfg)
	}
}

func TestApplyConfigExplicitFalseOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Uppercase = true

	var y yamlConfig
	off := false
	y.Badgewire.Output.Uppercase = &off

	if err := applyConfig(&cfg, "badgewire.yaml", y); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output.Uppercase {
		t.Fatalf("expected explicit false to override")
	}
}
