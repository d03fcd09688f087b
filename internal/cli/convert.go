package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atrelio/badgewire/internal/convert"
	"github.com/atrelio/badgewire/internal/infra/config"
	"github.com/atrelio/badgewire/internal/wiegand"
)

func convertCmd() *cobra.Command {
	var (
		hexText    string
		decText    string
		facility   string
		card       uint32
		upper      bool
		raw        bool
		withBinary bool
		strict     bool
		format     string
		configPath string
	)

	c := &cobra.Command{
		Use:   "convert",
		Short: "Convert a badge word between hex, decimal, and facility/card forms",
		Long: `Convert resolves one badge word from a single input form and prints
every representation: hex, decimal, facility code, card number, and
the parity verdict.

Exactly one input form is accepted per invocation: --hex, --decimal,
or --facility together with --card.`,
		Example: `  badgewire convert --hex 0x03409ee9
  badgewire convert --decimal 54566633 --binary
  badgewire convert --facility FC160 --card 20340 --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Resolve(configPath)
			if err != nil {
				return err
			}
			applyOutputDefaults(cmd, cfg, &upper, &withBinary, &strict, &format)

			outputFormat, err := config.ParseFormat(format)
			if err != nil {
				return err
			}

			in, err := inputFromFlags(cmd, hexText, decText, facility, card)
			if err != nil {
				return err
			}

			res, err := convert.Convert(in, convert.Options{Strict: strict, WithBinary: withBinary})
			if err != nil {
				return err
			}

			return printResult(cmd.OutOrStdout(), res, printOptions{
				Upper:  upper,
				Raw:    raw,
				Format: outputFormat,
			})
		},
	}

	c.Flags().StringVarP(&hexText, "hex", "x", "", "Badge word as 1-8 hex digits (optional 0x prefix)")
	c.Flags().StringVarP(&decText, "decimal", "d", "", "Badge word as an unsigned decimal integer")
	c.Flags().StringVarP(&facility, "facility", "f", "", "Facility code, optionally FC-prefixed (e.g. 160 or FC160)")
	c.Flags().Uint32VarP(&card, "card", "c", 0, "Card number in 0-65535 (requires --facility)")
	c.Flags().BoolVarP(&upper, "upper", "u", false, "Render hex digits in uppercase")
	c.Flags().BoolVar(&raw, "raw", false, "Print only the 8-character hex word")
	c.Flags().BoolVarP(&withBinary, "binary", "b", false, "Include the 26-character binary rendering")
	c.Flags().BoolVarP(&strict, "strict", "s", false, "Fail when the stored parity bits do not match the payload")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().StringVar(&configPath, "config", "", "Path to badgewire.yaml (optional; defaults to the user config dir)")

	c.MarkFlagsMutuallyExclusive("hex", "decimal", "facility")
	c.MarkFlagsMutuallyExclusive("hex", "decimal", "card")
	c.MarkFlagsOneRequired("hex", "decimal", "facility")
	c.MarkFlagsRequiredTogether("facility", "card")

	return c
}

// applyOutputDefaults lets badgewire.yaml fill in any output flag the
// user did not set on the command line.
func applyOutputDefaults(cmd *cobra.Command, cfg config.Config, upper, withBinary, strict *bool, format *string) {
	flags := cmd.Flags()
	if !flags.Changed("upper") {
		*upper = cfg.Output.Uppercase
	}
	if !flags.Changed("binary") {
		*withBinary = cfg.Output.Binary
	}
	if !flags.Changed("strict") {
		*strict = cfg.Strict
	}
	if !flags.Changed("format") {
		*format = string(cfg.Output.Format)
	}
}

func inputFromFlags(cmd *cobra.Command, hexText, decText, facility string, card uint32) (convert.Input, error) {
	flags := cmd.Flags()
	switch {
	case flags.Changed("hex"):
		return convert.HexInput(stripHexPrefix(hexText)), nil
	case flags.Changed("decimal"):
		w, err := wiegand.ParseDecimal(decText)
		if err != nil {
			return nil, err
		}
		return convert.DecimalInput(w.Uint32()), nil
	case flags.Changed("facility") || flags.Changed("card"):
		return convert.FacilityCardInput{Facility: facility, Card: card}, nil
	default:
		return nil, fmt.Errorf("one of --hex, --decimal, or --facility with --card is required")
	}
}

// stripHexPrefix removes surrounding whitespace and an optional 0x/0X
// marker; the digits themselves stay untouched.
func stripHexPrefix(s string) string {
	t := strings.TrimSpace(s)
	if len(t) >= 2 && t[0] == '0' && (t[1] == 'x' || t[1] == 'X') {
		t = t[2:]
	}
	return t
}

type printOptions struct {
	Upper  bool
	Raw    bool
	Format config.OutputFormat
}

func printResult(w io.Writer, res convert.Result, opts printOptions) error {
	hexText := res.Hex
	if opts.Upper {
		hexText = strings.ToUpper(hexText)
	}

	if opts.Raw {
		fmt.Fprintln(w, hexText)
		return nil
	}

	switch opts.Format {
	case config.FormatJSON:
		res.Hex = hexText
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case config.FormatPretty, "":
		printPrettyResult(w, res, hexText)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", opts.Format)
	}
}

func printPrettyResult(w io.Writer, res convert.Result, hexText string) {
	fmt.Fprintf(w, "Hex:      %s\n", hexText)
	fmt.Fprintf(w, "Decimal:  %d\n", res.Decimal)
	fmt.Fprintf(w, "Facility: %d\n", res.Facility)
	fmt.Fprintf(w, "Card:     %d\n", res.Card)
	if res.Binary != "" {
		fmt.Fprintf(w, "Binary:   %s\n", res.Binary)
	}

	parity := "OK"
	if !res.ParityOK {
		parity = "FAIL"
	}
	fmt.Fprintf(w, "Parity:   %s\n", parity)
	fmt.Fprintf(w, "Source:   %s\n", res.Source)
}
