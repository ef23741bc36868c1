// Package pathfilter drops search results by path glob or file extension.
package pathfilter

import (
	"regexp"
	"strings"

	"github.com/taigrr/rikimaru/internal/types"
)

// PathFilter filters result paths. The zero configuration allows everything.
type PathFilter struct {
	excluded          []*regexp.Regexp
	allowedExtensions []string
}

// New creates a PathFilter. excluded holds globs where ** matches across
// directories, * and ? within one. An empty extensions list allows any file.
func New(excluded, extensions []string) *PathFilter {
	pf := &PathFilter{}
	for _, pattern := range excluded {
		if re, err := compileGlob(pattern); err == nil {
			pf.excluded = append(pf.excluded, re)
		}
	}
	for _, ext := range extensions {
		ext = strings.ToLower(ext)
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		pf.allowedExtensions = append(pf.allowedExtensions, ext)
	}
	return pf
}

// compileGlob converts a glob pattern to an anchored regex.
func compileGlob(pattern string) (*regexp.Regexp, error) {
	normalized := strings.ReplaceAll(pattern, "\\", "/")

	re := regexp.QuoteMeta(normalized)
	re = strings.ReplaceAll(re, `\*\*`, ".*")
	re = strings.ReplaceAll(re, `\*`, "[^/]*")
	re = strings.ReplaceAll(re, `\?`, "[^/]")

	return regexp.Compile("^" + re + "$")
}

// IsAllowed reports whether path passes the exclusion and extension rules.
func (pf *PathFilter) IsAllowed(path string) bool {
	normalized := strings.ReplaceAll(path, "\\", "/")

	for _, re := range pf.excluded {
		if re.MatchString(normalized) {
			return false
		}
	}

	if len(pf.allowedExtensions) == 0 {
		return true
	}
	lower := strings.ToLower(normalized)
	for _, ext := range pf.allowedExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Filter returns the items of set whose path is allowed, keeping order.
func (pf *PathFilter) Filter(set types.ResultSet) types.ResultSet {
	if len(pf.excluded) == 0 && len(pf.allowedExtensions) == 0 {
		return set
	}
	allowed := make(types.ResultSet, 0, len(set))
	for _, item := range set {
		if pf.IsAllowed(item.Path) {
			allowed = append(allowed, item)
		}
	}
	return allowed
}
