package classifier

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf16"
)

// ErrInvalidCodePoint is returned by ValidateCodePoint for numeric values
// that are not Unicode scalar values: anything outside [0, 0x10FFFF] or a
// surrogate half.
//
// Design decision: Classification itself never returns this error; it stays
// total by treating invalid values as unassigned (see IsNonPrintable). The
// sentinel exists for callers that accept numeric code points from user
// input and want to reject rather than normalize.
var ErrInvalidCodePoint = errors.New("invalid code point: outside [0, 0x10FFFF] or a surrogate half")

// ValidateCodePoint checks that r is a Unicode scalar value.
// It returns ErrInvalidCodePoint (wrapped with the offending value) for
// out-of-range values and surrogate halves.
func ValidateCodePoint(r rune) error {
	if r < 0 || r > unicode.MaxRune {
		return fmt.Errorf("%w: %#x", ErrInvalidCodePoint, int64(r))
	}
	if utf16.IsSurrogate(r) {
		return fmt.Errorf("%w: %s", ErrInvalidCodePoint, HexLabel(r))
	}
	return nil
}
