package cleaner

// Options configures one cleaning pass. All flags are independent; the
// fixed rule priority in Clean decides which flag wins when several could
// apply to the same code point. An Options value is immutable for the
// duration of a single Clean call.
//
// The yaml tags allow profiles in the .cleartext configuration file to
// spell out options with the same names the CLI flags use.
type Options struct {
	// Category-removal flags. When set, code points of the matching
	// Unicode general category are dropped unless a preservation flag
	// below keeps them.
	RemoveControl    bool `yaml:"removeControl"`    // Cc
	RemoveFormat     bool `yaml:"removeFormat"`     // Cf
	RemoveSurrogate  bool `yaml:"removeSurrogate"`  // Cs
	RemovePrivateUse bool `yaml:"removePrivateUse"` // Co
	RemoveUnassigned bool `yaml:"removeUnassigned"` // Cn

	// Control-preservation flags. These override category removal for the
	// three controls that legitimately appear in plain text.
	PreserveTab bool `yaml:"preserveTab"`
	PreserveLF  bool `yaml:"preserveLF"`
	PreserveCR  bool `yaml:"preserveCR"`

	// Smart-replace flags. These fire before classification, so the
	// characters they target are rewritten even though the classifier
	// does not consider them non-printable (except ZWSP).
	NBSPToSpace     bool `yaml:"nbspToSpace"`     // NO-BREAK SPACE -> space
	NormalizeDashes bool `yaml:"normalizeDashes"` // dash variants -> '-'
	NormalizeQuotes bool `yaml:"normalizeQuotes"` // quote variants -> ' or "
	RemoveZWSP      bool `yaml:"removeZWSP"`      // drop ZERO WIDTH SPACE
}

// DefaultOptions returns the default cleaning configuration: remove all
// five invisible categories, preserve TAB and LF but not CR, and enable
// every smart replacement.
func DefaultOptions() Options {
	return Options{
		RemoveControl:    true,
		RemoveFormat:     true,
		RemoveSurrogate:  true,
		RemovePrivateUse: true,
		RemoveUnassigned: true,
		PreserveTab:      true,
		PreserveLF:       true,
		PreserveCR:       false,
		NBSPToSpace:      true,
		NormalizeDashes:  true,
		NormalizeQuotes:  true,
		RemoveZWSP:       true,
	}
}
