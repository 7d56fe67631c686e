package cleaner

import (
	"strings"

	"github.com/carthworks/cleartext/internal/classifier"
)

const (
	noBreakSpace   = ' '
	zeroWidthSpace = '​'
)

// dashVariants maps the dash-like code points normalized to HYPHEN-MINUS.
var dashVariants = map[rune]struct{}{
	'‐': {}, // HYPHEN
	'‑': {}, // NON-BREAKING HYPHEN
	'‒': {}, // FIGURE DASH
	'–': {}, // EN DASH
	'—': {}, // EM DASH
	'−': {}, // MINUS SIGN
}

// quoteVariants maps smart quotes to their straight ASCII equivalents.
var quoteVariants = map[rune]rune{
	'‘': '\'', // LEFT SINGLE QUOTATION MARK
	'’': '\'', // RIGHT SINGLE QUOTATION MARK
	'‚': '\'', // SINGLE LOW-9 QUOTATION MARK
	'‛': '\'', // SINGLE HIGH-REVERSED-9 QUOTATION MARK
	'′': '\'', // PRIME
	'“': '"',  // LEFT DOUBLE QUOTATION MARK
	'”': '"',  // RIGHT DOUBLE QUOTATION MARK
	'„': '"',  // DOUBLE LOW-9 QUOTATION MARK
	'‟': '"',  // DOUBLE HIGH-REVERSED-9 QUOTATION MARK
	'″': '"',  // DOUBLE PRIME
}

// Clean rewrites text under opts, applying the first matching rule per
// code point:
//
//  1. NBSP to space
//  2. dash normalization
//  3. quote normalization
//  4. ZERO WIDTH SPACE removal
//  5. category removal for non-printables, after the TAB/LF/CR
//     preservation overrides
//  6. pass-through
//
// Every rule maps one code point to zero or one code points, so the output
// never exceeds the input in code-point count. Clean is a pure function of
// (text, opts) and safe for concurrent use.
func Clean(text string, opts Options) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		switch {
		case opts.NBSPToSpace && r == noBreakSpace:
			b.WriteByte(' ')
		case opts.NormalizeDashes && isDashVariant(r):
			b.WriteByte('-')
		case opts.NormalizeQuotes && quoteVariants[r] != 0:
			b.WriteRune(quoteVariants[r])
		case opts.RemoveZWSP && r == zeroWidthSpace:
			// dropped
		case classifier.IsNonPrintable(r):
			if keepNonPrintable(r, opts) {
				b.WriteRune(r)
			}
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// isDashVariant reports whether r is one of the normalized dash variants.
func isDashVariant(r rune) bool {
	_, ok := dashVariants[r]
	return ok
}

// keepNonPrintable decides whether a non-printable code point survives the
// category rules. Preservation overrides win over category removal.
func keepNonPrintable(r rune, opts Options) bool {
	switch {
	case r == '\t' && opts.PreserveTab:
		return true
	case r == '\n' && opts.PreserveLF:
		return true
	case r == '\r' && opts.PreserveCR:
		return true
	}

	switch classifier.Category(r) {
	case classifier.CategoryControl:
		return !opts.RemoveControl
	case classifier.CategoryFormat:
		return !opts.RemoveFormat
	case classifier.CategorySurrogate:
		return !opts.RemoveSurrogate
	case classifier.CategoryPrivateUse:
		return !opts.RemovePrivateUse
	case classifier.CategoryUnassigned:
		return !opts.RemoveUnassigned
	default:
		return true
	}
}
