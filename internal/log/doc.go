// Package log provides a slog.Handler wrapper that escapes non-printable
// runes in log attribute values. Scanned inputs flow into log attributes
// (target names, snippets), and hidden characters in them could otherwise
// reorder or spoof log lines in a terminal.
package log
