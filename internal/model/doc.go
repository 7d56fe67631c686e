// Package model defines the value types shared across the scanning engine:
// detected occurrences, frequency entries, and the aggregate scan report.
// Everything here is plain data; the packages that produce and consume these
// types never share mutable state through them.
package model
