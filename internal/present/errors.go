package present

import (
	"errors"
	"fmt"
)

var (
	// ErrResolutionMiss means no result matches the chosen label.
	ErrResolutionMiss = errors.New("selection matches no result")
	// ErrResolutionAmbiguous means several results share the chosen path.
	ErrResolutionAmbiguous = errors.New("selection matches more than one result")
	// ErrContentUnavailable means the file has no downloadable content.
	ErrContentUnavailable = errors.New("no content found")
)

// ResolutionError describes a label that could not be mapped to one result.
type ResolutionError struct {
	Label   string
	Path    string
	Matches int
	Err     error
}

func (e *ResolutionError) Error() string {
	if e.Matches > 1 {
		return fmt.Sprintf("resolve %q: %v (%d matches for %q)", e.Label, e.Err, e.Matches, e.Path)
	}
	return fmt.Sprintf("resolve %q: %v", e.Label, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
