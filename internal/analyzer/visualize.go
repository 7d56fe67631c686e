package analyzer

import (
	"fmt"
	"strings"

	"github.com/carthworks/cleartext/internal/classifier"
	"github.com/carthworks/cleartext/internal/model"
	"github.com/carthworks/cleartext/internal/scanner"
)

// placeholderGlyph is the single visible stand-in rendered for each hidden
// character. OPEN BOX (U+2423) reads as "something is here" without being
// confusable with ordinary text.
const placeholderGlyph = "␣"

// markupEscaper rewrites the characters that are unsafe in markup.
var markupEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// Visualize renders text as HTML markup in which every printable run is
// copied through escaped and every hidden character is replaced by a
// placeholder glyph. The returned count is the total number of occurrences.
//
// Each placeholder carries a class tag derived from the token class and a
// tooltip of the form "<name> (U+XXXX) — Category <category> — at
// <line>:<column>". Positions come from the same scan pass as the flat
// occurrence list, so the three views never disagree.
func Visualize(text string) (string, int) {
	occs := scanner.Scan(text)
	return VisualizeOccurrences(text, occs), len(occs)
}

// VisualizeOccurrences renders text using an existing scan result.
// The occurrences must have been produced by scanning the same text.
func VisualizeOccurrences(text string, occs []model.PositionedOccurrence) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text) + len(occs)*64)

	i := 0
	for _, occ := range occs {
		if occ.Offset > i {
			b.WriteString(markupEscaper.Replace(text[i:occ.Offset]))
		}
		writePlaceholder(&b, occ)
		i = occ.Offset + occ.Width()
		// A CR occurrence stands for the whole CRLF pair; the LF was
		// consumed by the scan and must not reappear as printable text.
		if occ.CodePoint == '\r' && i < len(text) && text[i] == '\n' {
			i++
		}
	}
	if i < len(text) {
		b.WriteString(markupEscaper.Replace(text[i:]))
	}

	return b.String()
}

// writePlaceholder emits the placeholder span for one occurrence.
func writePlaceholder(b *strings.Builder, occ model.PositionedOccurrence) {
	class := classifier.ClassifyToken(occ.CodePoint, occ.Category)
	tooltip := fmt.Sprintf("%s (%s) — Category %s — at %d:%d",
		occ.Name, occ.Label(), occ.Category, occ.Line, occ.Column)

	b.WriteString(`<span class="hidden-char hidden-char-`)
	b.WriteString(class.String())
	b.WriteString(`" title="`)
	b.WriteString(markupEscaper.Replace(tooltip))
	b.WriteString(`">`)
	b.WriteString(placeholderGlyph)
	b.WriteString(`</span>`)
}
