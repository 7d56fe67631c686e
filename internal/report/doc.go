// Package report renders scan results for humans and tools. It defines the
// Writer interface and implementations for plain text, JSON, Markdown, and
// PDF output, plus a MultiWriter for writing several formats at once.
package report
