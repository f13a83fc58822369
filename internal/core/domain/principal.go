package domain

import "regexp"

// Principals are opaque ledger addresses; the service never derives
// anything from their structure beyond well-formedness.
const (
	MaxPrincipalLen = 64
	MaxCategoryLen  = 32
)

var labelRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)

// ValidPrincipal reports whether s is a well-formed principal identity.
func ValidPrincipal(s string) bool {
	return s != "" && len(s) <= MaxPrincipalLen && labelRe.MatchString(s)
}

// ValidCategory reports whether s is a well-formed category label.
func ValidCategory(s string) bool {
	return s != "" && len(s) <= MaxCategoryLen && labelRe.MatchString(s)
}
