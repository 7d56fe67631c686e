// Package classifier identifies non-printable Unicode code points and
// describes them with human-readable names and general-category labels.
// It is the leaf of the scanning engine: every other component defers to
// this package to decide whether a code point is hidden.
package classifier
