// Package main provides the entry point for the cleartext CLI.
//
// cleartext detects, classifies, and removes hidden or visually-ambiguous
// Unicode code points in text: zero-width characters, bidi controls,
// smart quotes, and other invisible characters.
//
// Usage:
//
//	cleartext scan <file>
//	cleartext clean --write <file>
//
// See --help for all available options.
package main

// main is the entry point for cleartext.
func main() {
	Execute()
}
