// Package scanner walks input text by code point, tracks 1-based
// line/column positions with multi-unit line-break handling, and yields
// every hidden character as a positioned occurrence. It also provides the
// reverse mapping from a (line, column) position back to a byte offset,
// with identical line-break semantics, for cursor placement by callers.
package scanner
