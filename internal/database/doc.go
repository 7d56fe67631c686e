// Package database provides SQLite-backed storage for scan history.
// Only reduced scan summaries are stored (code points, names, counts, and
// a content fingerprint); the scanned text itself is never persisted.
package database
