package scanner

import "unicode/utf8"

// OffsetAt maps a 1-based (line, column) position to a byte offset in text.
// It uses the same line-break semantics as Scan so positions reported by a
// scan round-trip exactly.
//
// Out-of-range positions clamp rather than fail: a line beyond the last
// line maps to len(text), and a column beyond the end of its line maps to
// the offset of the line break (or end of input). Lines and columns below 1
// clamp to 1.
func OffsetAt(text string, line, column int) int {
	if line < 1 {
		line = 1
	}
	if column < 1 {
		column = 1
	}

	// Advance to the start of the requested line.
	i := 0
	for cur := 1; cur < line && i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch r {
		case carriageReturn:
			if i+size < len(text) && text[i+size] == lineFeed {
				size++
			}
			cur++
		case lineFeed, lineSeparator, paragraphSeparator:
			cur++
		}
		i += size
	}

	// Advance column-1 code points without crossing a line break.
	for col := 1; col < column && i < len(text); col++ {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch r {
		case carriageReturn, lineFeed, lineSeparator, paragraphSeparator:
			return i
		}
		i += size
	}

	return i
}
