package present

import (
	"path"
	"strings"

	"github.com/taigrr/rikimaru/internal/types"
)

// Separator joins a file name and its location in a label.
const Separator = " located at: "

// Label renders item as "<name> located at: <root>/<path>".
func Label(item types.SearchResultItem, root string) string {
	return item.Name + Separator + path.Join(root, item.Path)
}

// Labels renders every item of set, in order.
func Labels(set types.ResultSet, root string) []string {
	labels := make([]string, len(set))
	for i, item := range set {
		labels[i] = Label(item, root)
	}
	return labels
}

// ParseLabel splits a label back into the file name and the path relative
// to the repository root. The located path must have at least two segments.
func ParseLabel(label string) (name, relPath string, err error) {
	name, located, ok := strings.Cut(label, Separator)
	if !ok {
		return "", "", &ResolutionError{Label: label, Err: ErrResolutionMiss}
	}

	segments := strings.Split(located, "/")
	if len(segments) < 2 {
		return "", "", &ResolutionError{Label: label, Err: ErrResolutionMiss}
	}
	return name, strings.Join(segments[1:], "/"), nil
}

// Resolve maps a chosen label to the single item of set with the same path.
func Resolve(label string, set types.ResultSet) (types.SearchResultItem, error) {
	_, relPath, err := ParseLabel(label)
	if err != nil {
		return types.SearchResultItem{}, err
	}

	var matches []types.SearchResultItem
	for _, item := range set {
		if item.Path == relPath {
			matches = append(matches, item)
		}
	}

	switch len(matches) {
	case 0:
		return types.SearchResultItem{}, &ResolutionError{Label: label, Path: relPath, Err: ErrResolutionMiss}
	case 1:
		return matches[0], nil
	default:
		return types.SearchResultItem{}, &ResolutionError{Label: label, Path: relPath, Matches: len(matches), Err: ErrResolutionAmbiguous}
	}
}
