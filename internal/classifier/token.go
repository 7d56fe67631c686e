package classifier

// TokenClass is a presentation-level grouping of hidden code points.
// It is finer grained than the general category so renderers can style
// the classic offenders (zero-width characters, bidi controls) distinctly.
//
// Design decision: We use iota-based constants with a String method, the
// same shape as severity levels elsewhere, because the class is compared
// and switched on far more often than it is printed.
type TokenClass int

const (
	// ClassFormat covers Cf code points without a more specific class.
	// It is also the fallback for unrecognized categories.
	ClassFormat TokenClass = iota

	// ClassControl covers Cc code points (C0/C1 controls).
	ClassControl

	// ClassSurrogate covers Cs code points (unpaired surrogate halves).
	ClassSurrogate

	// ClassPrivateUse covers Co code points.
	ClassPrivateUse

	// ClassUnassigned covers Cn code points.
	ClassUnassigned

	// ClassZeroWidth is the special case for ZERO WIDTH SPACE.
	ClassZeroWidth

	// ClassNoBreakSpace is the special case for NO-BREAK SPACE.
	ClassNoBreakSpace

	// ClassSoftHyphen is the special case for SOFT HYPHEN.
	ClassSoftHyphen

	// ClassBidi covers the eleven bidirectional control code points.
	ClassBidi
)

// String returns the lowercase class tag used in rendered markup.
func (c TokenClass) String() string {
	switch c {
	case ClassControl:
		return "control"
	case ClassSurrogate:
		return "surrogate"
	case ClassPrivateUse:
		return "private-use"
	case ClassUnassigned:
		return "unassigned"
	case ClassZeroWidth:
		return "zero-width"
	case ClassNoBreakSpace:
		return "nbsp"
	case ClassSoftHyphen:
		return "soft-hyphen"
	case ClassBidi:
		return "bidi"
	default:
		return "format"
	}
}

// ClassifyToken maps a code point and its category label to a TokenClass.
// The special cases take precedence over the category-derived classes;
// unrecognized categories fall back to ClassFormat.
func ClassifyToken(r rune, category string) TokenClass {
	switch r {
	case 0x200B:
		return ClassZeroWidth
	case 0x00A0:
		return ClassNoBreakSpace
	case 0x00AD:
		return ClassSoftHyphen
	}
	if _, ok := bidiControls[r]; ok {
		return ClassBidi
	}

	switch category {
	case CategoryControl:
		return ClassControl
	case CategorySurrogate:
		return ClassSurrogate
	case CategoryPrivateUse:
		return ClassPrivateUse
	case CategoryUnassigned:
		return ClassUnassigned
	default:
		return ClassFormat
	}
}
