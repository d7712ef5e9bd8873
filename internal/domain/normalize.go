package domain

import "strings"

// NormalizeEmail prepares an email address for use as a lookup key:
// trims surrounding whitespace and lowercases. Addresses are stored
// lowercased by the platform; no well-formedness validation is done here.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
