package worktree

import "strings"

// SanitizeName maps an arbitrary name to a filesystem-safe path segment by
// replacing path separators, shell-special characters, and spaces with '-'.
// Idempotent. Distinct inputs differing only in replaced characters can
// collapse to the same result; there is no collision detection.
func SanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '-'
		}
		return r
	}, name)
}
