package scanner

import (
	"unicode/utf8"

	"github.com/carthworks/cleartext/internal/classifier"
	"github.com/carthworks/cleartext/internal/model"
)

// Line-break code points recognized by the position tracker.
// CR immediately followed by LF counts as a single break.
const (
	carriageReturn     = '\r'
	lineFeed           = '\n'
	lineSeparator      = ' '
	paragraphSeparator = ' '
)

// Scan walks text by code point and returns every non-printable code point
// as a positioned occurrence, in input order. The result is a finite slice;
// the aggregator derives its views from it without re-scanning.
//
// Offsets are byte offsets into the UTF-8 input. Line and column start at 1;
// CR, LF, CRLF, LINE SEPARATOR, and PARAGRAPH SEPARATOR each advance the
// line and reset the column. A CRLF pair is consumed as one step, so the
// pair produces a single occurrence (the CR) rather than two. A lone
// trailing CR at end of input still counts as a line break.
//
// Invalid UTF-8 bytes decode to U+FFFD and advance by one byte, matching
// the standard library's decoding behavior. Scan is a pure function; it is
// safe to call concurrently.
func Scan(text string) []model.PositionedOccurrence {
	var occs []model.PositionedOccurrence

	line, column := 1, 1
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])

		if classifier.IsNonPrintable(r) {
			info := classifier.Describe(r)
			occs = append(occs, model.PositionedOccurrence{
				Occurrence: model.Occurrence{
					Offset:    i,
					Char:      text[i : i+size],
					CodePoint: r,
					Name:      info.Name,
					Category:  info.Category,
				},
				Line:   line,
				Column: column,
			})
		}

		switch r {
		case carriageReturn:
			// CRLF is a single line break; consume the LF as well.
			if i+size < len(text) && text[i+size] == lineFeed {
				size++
			}
			line++
			column = 1
		case lineFeed, lineSeparator, paragraphSeparator:
			line++
			column = 1
		default:
			column++
		}
		i += size
	}

	return occs
}
