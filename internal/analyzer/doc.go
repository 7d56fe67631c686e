// Package analyzer derives the aggregate views of a scan: the per-code-point
// frequency table and the inline-annotated HTML rendering. Both views are
// computed from a single scanner pass so line/column positions stay
// consistent with the flat occurrence list.
package analyzer
