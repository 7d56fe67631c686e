package config

import "errors"

// Configuration validation errors.
//
// Design decision: Package-level sentinel errors rather than error values
// created inside Validate() let callers use errors.Is for programmatic
// handling while keeping the messages human readable.
var (
	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when more than one of
	// --json, --markdown, and --pdf is specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json, --markdown, and --pdf are mutually exclusive")

	// ErrInPlaceWithoutFile is returned when --write is used with stdin
	// input; there is no file to rewrite.
	ErrInPlaceWithoutFile = errors.New("in-place cleaning requires file arguments, not stdin")

	// ErrInPlaceWithOutput is returned when --write and --output are
	// combined; the destination would be ambiguous.
	ErrInPlaceWithOutput = errors.New("in-place cleaning and --output cannot be used together")

	// ErrUnknownProfile is returned when --profile names a profile the
	// configuration file does not define.
	ErrUnknownProfile = errors.New("unknown cleaning profile")
)
