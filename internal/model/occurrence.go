package model

import "fmt"

// Occurrence is one detected hidden character in the input text.
// Instances are produced fresh per scan and never mutated afterwards.
type Occurrence struct {
	// Offset is the byte offset of the code point in the UTF-8 input.
	// Callers can slice the original text with [Offset, Offset+Width())
	// to select the exact matched span.
	Offset int `json:"offset"`

	// Char is the matched code point as a string (1-4 bytes).
	Char string `json:"character"`

	// CodePoint is the Unicode scalar value of the match.
	CodePoint rune `json:"code_point"`

	// Name is the human-readable character name.
	Name string `json:"name"`

	// Category is the Unicode general-category label (Cc, Cf, Cs, Co, Cn).
	Category string `json:"category"`
}

// Width returns the number of bytes the code point occupies in the input.
func (o Occurrence) Width() int {
	return len(o.Char)
}

// Label returns the code point in U+XXXX notation.
func (o Occurrence) Label() string {
	return fmt.Sprintf("U+%04X", o.CodePoint)
}

// PositionedOccurrence is an Occurrence with its 1-based line and column.
// Column counts code points, not grapheme clusters, since the start of the
// line; combining marks therefore advance the column. This code-point
// semantic is deliberate and must match the reverse mapping in the scanner.
type PositionedOccurrence struct {
	Occurrence

	// Line is the 1-based line number, counting CR, LF, CRLF, LINE
	// SEPARATOR, and PARAGRAPH SEPARATOR as line breaks.
	Line int `json:"line"`

	// Column is the 1-based code-point column within the line.
	Column int `json:"column"`
}

// FrequencyEntry counts the occurrences of one distinct code point across
// the whole input. The sum of Count over all entries equals the total
// occurrence count of the scan.
type FrequencyEntry struct {
	// CodePoint is the Unicode scalar value.
	CodePoint rune `json:"code_point"`

	// Name is the human-readable character name.
	Name string `json:"name"`

	// Category is the Unicode general-category label.
	Category string `json:"category"`

	// Count is the number of occurrences, always >= 1.
	Count int `json:"count"`
}

// Label returns the code point in U+XXXX notation.
func (f FrequencyEntry) Label() string {
	return fmt.Sprintf("U+%04X", f.CodePoint)
}
