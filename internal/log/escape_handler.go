package log

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/carthworks/cleartext/internal/classifier"
)

// EscapeHandler wraps an slog.Handler and rewrites every string attribute
// so non-printable runes appear as visible <U+XXXX> escapes. TAB, LF, and
// CR are escaped too: a log line must stay a single line.
//
// Design decision: A handler wrapper rather than a custom logger because
// it composes with standard slog APIs and works in front of any underlying
// handler (text, JSON, or another wrapper).
type EscapeHandler struct {
	// handler is the underlying slog handler that receives escaped records.
	handler slog.Handler
}

// NewEscapeHandler creates a new EscapeHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
func NewEscapeHandler(handler slog.Handler) *EscapeHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &EscapeHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *EscapeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle escapes the record's message and attributes and passes the result
// to the underlying handler.
func (h *EscapeHandler) Handle(ctx context.Context, r slog.Record) error {
	escaped := slog.NewRecord(r.Time, r.Level, EscapeString(r.Message), r.PC)

	r.Attrs(func(a slog.Attr) bool {
		escaped.AddAttrs(h.escapeAttr(a))
		return true
	})

	return h.handler.Handle(ctx, escaped)
}

// WithAttrs returns a new handler with the given attributes added,
// escaped before being passed down.
func (h *EscapeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	escapedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		escapedAttrs[i] = h.escapeAttr(a)
	}
	return &EscapeHandler{handler: h.handler.WithAttrs(escapedAttrs)}
}

// WithGroup returns a new handler with the given group name.
func (h *EscapeHandler) WithGroup(name string) slog.Handler {
	return &EscapeHandler{handler: h.handler.WithGroup(name)}
}

// escapeAttr escapes a single attribute, recursively handling groups.
func (h *EscapeHandler) escapeAttr(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		escapedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			escapedAttrs[i] = h.escapeAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(escapedAttrs...)}
	}

	if a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, EscapeString(a.Value.String()))
	}

	return a
}

// EscapeString replaces every non-printable rune in s, plus TAB/LF/CR,
// with its <U+XXXX> form. Strings without such runes are returned as-is
// without allocation.
func EscapeString(s string) string {
	if !needsEscaping(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		if classifier.IsNonPrintable(r) {
			b.WriteByte('<')
			b.WriteString(classifier.HexLabel(r))
			b.WriteByte('>')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// needsEscaping reports whether s contains any rune EscapeString rewrites.
func needsEscaping(s string) bool {
	for _, r := range s {
		if classifier.IsNonPrintable(r) {
			return true
		}
	}
	return false
}

// NewLogger creates a *slog.Logger writing text records to w through an
// EscapeHandler. Verbose selects slog.LevelDebug; otherwise LevelWarn.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	base := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(NewEscapeHandler(base))
}
