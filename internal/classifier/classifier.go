package classifier

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/runenames"
)

// Unicode general-category labels used throughout the tool.
// Only the five "invisible" categories are of interest here; everything
// else is considered printable.
const (
	CategoryControl    = "Cc"
	CategoryFormat     = "Cf"
	CategorySurrogate  = "Cs"
	CategoryPrivateUse = "Co"
	CategoryUnassigned = "Cn"

	// CategoryUnknown is the placeholder label for code points that do not
	// belong to any of the invisible categories but are described anyway.
	CategoryUnknown = "C*"
)

// Info describes a single code point. It is derived on demand and never
// stored; callers copy the fields they need into their own structures.
type Info struct {
	// Name is the human-readable character name, either from the curated
	// table, the Unicode Name property, or the U+XXXX hex form.
	Name string

	// Category is the Unicode general-category label (Cc, Cf, Cs, Co, Cn),
	// or CategoryUnknown for printable code points.
	Category string
}

// IsNonPrintable reports whether r belongs to one of the invisible/control
// general categories: Cc, Cf, Cs, Co, or Cn. Unassigned code points carry
// their own range table (unicode.Cn), so membership is tested directly
// rather than as the complement of the assigned categories.
//
// The function is total over all rune values. Values outside the code-point
// space [0, 0x10FFFF] are treated as unassigned and report true; surrogate
// halves report true through the Cs table. Use ValidateCodePoint when the
// caller needs the strict error instead. This choice (classify rather than
// reject) keeps scanning total over any decoded text.
func IsNonPrintable(r rune) bool {
	if r < 0 || r > unicode.MaxRune {
		return true
	}
	return unicode.In(r, unicode.Cc, unicode.Cf, unicode.Cs, unicode.Co, unicode.Cn)
}

// Category returns the general-category label for r. Non-printable code
// points map to one of Cc, Cf, Cs, Co, or Cn; printable code points map to
// CategoryUnknown since the scanner never asks about them.
func Category(r rune) string {
	switch {
	case r < 0 || r > unicode.MaxRune:
		return CategoryUnassigned
	case unicode.Is(unicode.Cc, r):
		return CategoryControl
	case unicode.Is(unicode.Cf, r):
		return CategoryFormat
	case unicode.Is(unicode.Cs, r):
		return CategorySurrogate
	case unicode.Is(unicode.Co, r):
		return CategoryPrivateUse
	case unicode.Is(unicode.Cn, r):
		return CategoryUnassigned
	default:
		return CategoryUnknown
	}
}

// Describe returns the Info for r.
//
// Lookup order: the curated table of well-known hidden characters first,
// then the Unicode Name property via x/text/unicode/runenames, and finally
// the U+XXXX hex form for code points that carry no name (unassigned,
// private-use, surrogates, and most controls outside the curated set).
func Describe(r rune) Info {
	if info, ok := wellKnown[r]; ok {
		return info
	}

	name := ""
	if r >= 0 && r <= unicode.MaxRune {
		name = runenames.Name(r)
	}
	// runenames reports "<control>"-style placeholders for code points
	// without a Name property; those get the hex form instead.
	if name == "" || strings.HasPrefix(name, "<") {
		name = HexLabel(r)
	}

	return Info{Name: name, Category: Category(r)}
}

// HexLabel formats r in U+XXXX notation: uppercase hex, zero-padded to at
// least four digits. Values outside the code-point space have no hex
// notation and are labeled as the replacement character.
func HexLabel(r rune) string {
	if r < 0 || r > unicode.MaxRune {
		r = unicode.ReplacementChar
	}
	return fmt.Sprintf("U+%04X", r)
}
