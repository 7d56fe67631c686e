// Package input reads scan targets from files or stdin. It transparently
// decodes UTF-16 inputs (BOM-sensed, both endiannesses) to UTF-8 and can
// extract the text content of HTML documents so hidden characters inside
// markup text nodes are scannable.
package input
