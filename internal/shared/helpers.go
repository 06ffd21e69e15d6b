// Package shared provides common utility functions used across multiple
// packages in the crate-resolver codebase.
package shared

import "strings"

// SanitizeCrateName rewrites a crate name into a valid identifier by
// replacing every `-` with `_`. Only the local identifier half of a
// resolution is sanitized; canonical lookup keys stay untouched.
func SanitizeCrateName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}
