package layout

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var frPrinter = message.NewPrinter(language.French)

// FormatXOF renders an amount in francs CFA with French digit grouping. The
// locale data separates groups with no-break spaces (U+00A0 or U+202F), code
// points the embedded base font cannot encode, so they are replaced with
// ordinary spaces.
func FormatXOF(amount int64) string {
	grouped := frPrinter.Sprintf("%d", amount)
	grouped = strings.Map(func(r rune) rune {
		if r == ' ' || r == ' ' {
			return ' '
		}
		return r
	}, grouped)
	return grouped + " FCFA"
}
