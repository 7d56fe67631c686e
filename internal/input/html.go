package input

import (
	"strings"

	"golang.org/x/net/html"
)

// ExtractText returns the text content of an HTML document: the data of
// every text node outside <script> and <style> elements, in document
// order. Markup itself is discarded; hidden characters inside text nodes
// survive untouched so a subsequent scan sees them.
//
// Design decision: We use golang.org/x/net/html rather than regex because
// it correctly handles malformed HTML and entity decoding; the tokenizer
// decodes entities, so a literal "&#8203;" in the source is reported as
// the ZERO WIDTH SPACE it renders as.
func ExtractText(src string) string {
	z := html.NewTokenizer(strings.NewReader(src))

	var b strings.Builder
	skipDepth := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or malformed input; return what was collected.
			return b.String()
		case html.StartTagToken:
			name, _ := z.TagName()
			if isSkippedElement(string(name)) {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if isSkippedElement(string(name)) && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				b.WriteString(string(z.Text()))
			}
		}
	}
}

// isSkippedElement reports whether text inside the element is code rather
// than content.
func isSkippedElement(name string) bool {
	return name == "script" || name == "style"
}
