// Package config provides configuration structures and utilities for
// cleartext. It defines the options driving scanning, cleaning, and report
// generation, and loads named cleaning profiles from the .cleartext file.
package config
