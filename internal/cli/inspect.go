package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atrelio/badgewire/internal/wiegand"
)

func inspectCmd() *cobra.Command {
	var upper bool

	c := &cobra.Command{
		Use:   "inspect <word>",
		Short: "Show the bit-level breakdown of a badge word",
		Long: `Inspect prints the full layout of one badge word: payload fields,
the stored and expected parity bits per span, and the binary form.

The word is read as decimal when it is all digits, and as hex
otherwise. Prefix with 0x to force hex.`,
		Example: `  badgewire inspect 0x03409ee9
  badgewire inspect 54566633`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word, err := parseWordArg(args[0])
			if err != nil {
				return err
			}
			printInspect(cmd.OutOrStdout(), word, upper)
			return nil
		},
	}

	c.Flags().BoolVarP(&upper, "upper", "u", false, "Render hex digits in uppercase")
	return c
}

// parseWordArg reads a word given as decimal digits, hex digits, or
// 0x-prefixed hex.
func parseWordArg(arg string) (wiegand.Word, error) {
	t := strings.TrimSpace(arg)
	if hasHexPrefix(t) {
		return wiegand.ParseHex(t[2:])
	}
	if isAllDigits(t) {
		return wiegand.ParseDecimal(t)
	}
	return wiegand.ParseHex(t)
}

func hasHexPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func printInspect(w io.Writer, word wiegand.Word, upper bool) {
	hexText := word.Hex()
	if upper {
		hexText = word.HexUpper()
	}

	ap1, ap2 := word.ParityBits()
	ep1, ep2 := word.ExpectedParity()

	fmt.Fprintf(w, "Word:     %s (%d)\n", hexText, word.Uint32())
	fmt.Fprintf(w, "Binary:   %s\n", word.Binary())
	fmt.Fprintf(w, "Layout:   P1=%d facility=%08b card=%016b P2=%d\n",
		ap1, uint8(word.Facility()), uint16(word.Card()), ap2)
	fmt.Fprintf(w, "Facility: %d\n", word.Facility())
	fmt.Fprintf(w, "Card:     %d\n", word.Card())
	fmt.Fprintf(w, "P1:       got %d, want %d (even parity, upper 12 payload bits) %s\n",
		ap1, ep1, parityMark(ap1 == ep1))
	fmt.Fprintf(w, "P2:       got %d, want %d (odd parity, lower 12 payload bits) %s\n",
		ap2, ep2, parityMark(ap2 == ep2))

	verdict := "parity OK"
	if !word.ParityOK() {
		verdict = "parity FAIL"
	}
	fmt.Fprintf(w, "Verdict:  %s\n", verdict)
}

func parityMark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}
