package classifier

// wellKnown maps frequently encountered hidden code points to their names.
// The table is read-only after initialization and safe for concurrent use.
//
// Entries follow the official Unicode character names. Code points outside
// this table fall back to the Unicode Name property and then to the hex
// form; the curated table exists so the most common findings always carry
// a recognizable name regardless of the Unicode data version.
var wellKnown = map[rune]Info{
	// C0 controls that appear in ordinary text.
	0x0000: {Name: "NULL", Category: CategoryControl},
	0x0009: {Name: "CHARACTER TABULATION", Category: CategoryControl},
	0x000A: {Name: "LINE FEED", Category: CategoryControl},
	0x000D: {Name: "CARRIAGE RETURN", Category: CategoryControl},
	0x001B: {Name: "ESCAPE", Category: CategoryControl},
	0x007F: {Name: "DELETE", Category: CategoryControl},
	0x0085: {Name: "NEXT LINE", Category: CategoryControl},

	// Spaces and joiners that render as nothing or near-nothing.
	0x00A0: {Name: "NO-BREAK SPACE", Category: "Zs"},
	0x00AD: {Name: "SOFT HYPHEN", Category: CategoryFormat},
	0x200B: {Name: "ZERO WIDTH SPACE", Category: CategoryFormat},
	0x200C: {Name: "ZERO WIDTH NON-JOINER", Category: CategoryFormat},
	0x200D: {Name: "ZERO WIDTH JOINER", Category: CategoryFormat},
	0x2028: {Name: "LINE SEPARATOR", Category: "Zl"},
	0x2029: {Name: "PARAGRAPH SEPARATOR", Category: "Zp"},
	0x2060: {Name: "WORD JOINER", Category: CategoryFormat},
	0xFEFF: {Name: "ZERO WIDTH NO-BREAK SPACE", Category: CategoryFormat},

	// The eleven bidirectional control code points.
	0x200E: {Name: "LEFT-TO-RIGHT MARK", Category: CategoryFormat},
	0x200F: {Name: "RIGHT-TO-LEFT MARK", Category: CategoryFormat},
	0x202A: {Name: "LEFT-TO-RIGHT EMBEDDING", Category: CategoryFormat},
	0x202B: {Name: "RIGHT-TO-LEFT EMBEDDING", Category: CategoryFormat},
	0x202C: {Name: "POP DIRECTIONAL FORMATTING", Category: CategoryFormat},
	0x202D: {Name: "LEFT-TO-RIGHT OVERRIDE", Category: CategoryFormat},
	0x202E: {Name: "RIGHT-TO-LEFT OVERRIDE", Category: CategoryFormat},
	0x2066: {Name: "LEFT-TO-RIGHT ISOLATE", Category: CategoryFormat},
	0x2067: {Name: "RIGHT-TO-LEFT ISOLATE", Category: CategoryFormat},
	0x2068: {Name: "FIRST STRONG ISOLATE", Category: CategoryFormat},
	0x2069: {Name: "POP DIRECTIONAL ISOLATE", Category: CategoryFormat},
}

// bidiControls is the set of the eleven bidirectional control code points.
// Used by token classification; membership here means the code point can
// reorder surrounding text, the classic trojan-source vector.
var bidiControls = map[rune]struct{}{
	0x200E: {}, 0x200F: {},
	0x202A: {}, 0x202B: {}, 0x202C: {}, 0x202D: {}, 0x202E: {},
	0x2066: {}, 0x2067: {}, 0x2068: {}, 0x2069: {},
}
