// Package cleaner rewrites text one code point at a time under a
// prioritized rule set: smart replacements (NBSP, dashes, quotes), zero
// width space removal, and category-based removal with control-character
// preservation overrides. Each code point is judged independently; the
// cleaner never looks at neighbors and never merges adjacent characters.
package cleaner
