// Package query builds GitHub code-search request URLs.
package query

import (
	"strings"
)

const (
	// DefaultTerm is searched when the caller supplies nothing.
	DefaultTerm = "dfs"
	// DefaultRepo is the repository every search is scoped to.
	DefaultRepo = "OpenGenus/cosmos"
	// DefaultBaseURL is the public GitHub API.
	DefaultBaseURL = "https://api.github.com"
)

// Sanitize applies the default term and escapes hyphens.
// The search backend reads '-' as negation, so every literal '-' becomes '+'.
func Sanitize(searchString string) string {
	if searchString == "" {
		searchString = DefaultTerm
	}
	return strings.ReplaceAll(searchString, "-", "+")
}

// Build returns the code-search URL for searchString against the public API.
func Build(searchString, repo string) string {
	return BuildWithBase(DefaultBaseURL, searchString, repo)
}

// BuildWithBase returns the code-search URL rooted at baseURL.
// The query searches file contents of a single repository.
func BuildWithBase(baseURL, searchString, repo string) string {
	if repo == "" {
		repo = DefaultRepo
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	var b strings.Builder
	b.WriteString(baseURL)
	b.WriteString("/search/code?q=")
	b.WriteString(EncodeComponent(Sanitize(searchString)))
	b.WriteString("+in:file+repo:")
	b.WriteString(repo)
	return b.String()
}

// EncodeComponent percent-encodes s the way browsers encode a URI component:
// only ASCII letters, digits and -_.!~*'() are left as-is.
func EncodeComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
