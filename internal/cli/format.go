package cli

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/xroche/enhancedminmax/internal/literal"
	"github.com/xroche/enhancedminmax/minmax"
)

var groupPrinter = message.NewPrinter(language.English)

// formatValue renders v as a literal. With group set, integer digits are
// grouped in thousands ("1,000u16"); the result is for display only and
// does not parse back.
func formatValue(v minmax.Value, group bool) string {
	if !group || !v.Kind().Integral() {
		return literal.Format(v)
	}

	var digits string
	if v.Kind().IsSigned() {
		digits = groupPrinter.Sprintf("%d", v.Int64())
	} else {
		digits = groupPrinter.Sprintf("%d", v.Uint64())
	}

	prefix := ""
	if v.IsRef() {
		prefix = "&"
	}
	return prefix + digits + literal.Suffix(v.Kind(), v.String())
}
