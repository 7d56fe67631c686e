package config

import "github.com/carthworks/cleartext/internal/cleaner"

// Profile is a partial cleaning configuration from the .cleartext file.
// Every field is a pointer so an omitted key means "inherit" rather than
// "false"; Apply resolves a profile against a base Options value.
type Profile struct {
	RemoveControl    *bool `yaml:"removeControl,omitempty"`
	RemoveFormat     *bool `yaml:"removeFormat,omitempty"`
	RemoveSurrogate  *bool `yaml:"removeSurrogate,omitempty"`
	RemovePrivateUse *bool `yaml:"removePrivateUse,omitempty"`
	RemoveUnassigned *bool `yaml:"removeUnassigned,omitempty"`

	PreserveTab *bool `yaml:"preserveTab,omitempty"`
	PreserveLF  *bool `yaml:"preserveLF,omitempty"`
	PreserveCR  *bool `yaml:"preserveCR,omitempty"`

	NBSPToSpace     *bool `yaml:"nbspToSpace,omitempty"`
	NormalizeDashes *bool `yaml:"normalizeDashes,omitempty"`
	NormalizeQuotes *bool `yaml:"normalizeQuotes,omitempty"`
	RemoveZWSP      *bool `yaml:"removeZWSP,omitempty"`
}

// Apply overlays the profile's set fields onto base and returns the result.
func (p Profile) Apply(base cleaner.Options) cleaner.Options {
	assign := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}

	assign(&base.RemoveControl, p.RemoveControl)
	assign(&base.RemoveFormat, p.RemoveFormat)
	assign(&base.RemoveSurrogate, p.RemoveSurrogate)
	assign(&base.RemovePrivateUse, p.RemovePrivateUse)
	assign(&base.RemoveUnassigned, p.RemoveUnassigned)
	assign(&base.PreserveTab, p.PreserveTab)
	assign(&base.PreserveLF, p.PreserveLF)
	assign(&base.PreserveCR, p.PreserveCR)
	assign(&base.NBSPToSpace, p.NBSPToSpace)
	assign(&base.NormalizeDashes, p.NormalizeDashes)
	assign(&base.NormalizeQuotes, p.NormalizeQuotes)
	assign(&base.RemoveZWSP, p.RemoveZWSP)

	return base
}

// File represents the structure of the .cleartext configuration file.
type File struct {
	// Defaults is applied to every run before any named profile.
	Defaults Profile `yaml:"defaults,omitempty"`

	// Profiles maps profile names to their cleaning overrides.
	Profiles map[string]Profile `yaml:"profiles,omitempty"`
}

// Resolve returns the cleaning options for the named profile: built-in
// defaults, overlaid with the file's defaults, overlaid with the profile.
// An empty name resolves to defaults only. The boolean reports whether the
// name was found (always true for the empty name).
func (cf *File) Resolve(name string) (cleaner.Options, bool) {
	opts := cf.Defaults.Apply(cleaner.DefaultOptions())
	if name == "" {
		return opts, true
	}

	profile, ok := cf.Profiles[name]
	if !ok {
		return opts, false
	}
	return profile.Apply(opts), true
}
