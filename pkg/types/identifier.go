package types

import "unicode"

// IsName returns true if the string can be used as a document name: it
// starts with a letter, digit or underscore and otherwise contains only
// letters, digits, underscores, hyphens and dots. A name can never address
// a path outside of its directory.
func IsName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			continue
		case i > 0 && (r == '-' || r == '.'):
			continue
		}
		return false
	}
	return true
}
