package utils

import (
	"regexp"
	"strings"
)

// Punctuation ignored when comparing names and titles
var namePunctuation = regexp.MustCompile(`[.!?]`)

// SanitizeName normalizes a free-text name or title into the key used for
// uniqueness checks and searches: ".", "!" and "?" are removed everywhere,
// runs of whitespace collapse to one space, edges are trimmed and the result
// is lowercased.
//
// Punctuation goes first so that removing it can never leave a double space
// behind, which keeps the function idempotent.
func SanitizeName(name string) string {
	name = namePunctuation.ReplaceAllString(name, "")

	// strings.Fields splits on any Unicode whitespace and drops the edges
	name = strings.Join(strings.Fields(name), " ")

	return strings.ToLower(name)
}
