// Package results turns a raw code-search response into a ResultSet.
package results

import (
	"encoding/json"
	"errors"

	"github.com/taigrr/rikimaru/internal/types"
)

// ErrNoResults reports a well-formed response without items. It ends the
// search successfully; it is not a failure.
var ErrNoResults = errors.New("no items to display")

// ParseError reports a body that is not valid JSON.
type ParseError struct {
	Body string
	Err  error
}

func (e *ParseError) Error() string {
	return "malformed search response: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Summary carries the response counters GitHub reports alongside items.
type Summary struct {
	TotalCount        int
	IncompleteResults bool
}

// Process parses body and projects each item to a SearchResultItem, keeping
// upstream order. Only invalid JSON fails. Any other shape is read as far as
// it goes: a document without an items array has no results, and item fields
// that are missing or not strings become empty or their literal text.
func Process(body string) (types.ResultSet, Summary, error) {
	var doc any
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, Summary{}, &ParseError{Body: body, Err: err}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &fields); err != nil {
		return nil, Summary{}, ErrNoResults
	}

	var summary Summary
	_ = json.Unmarshal(fields["total_count"], &summary.TotalCount)
	_ = json.Unmarshal(fields["incomplete_results"], &summary.IncompleteResults)

	var items []json.RawMessage
	if err := json.Unmarshal(fields["items"], &items); err != nil || len(items) == 0 {
		return nil, summary, ErrNoResults
	}

	set := make(types.ResultSet, 0, len(items))
	for _, raw := range items {
		var hit types.SearchHit
		_ = json.Unmarshal(raw, &hit)
		set = append(set, types.SearchResultItem{
			Name:   string(hit.Name),
			Path:   string(hit.Path),
			URL:    string(hit.HTMLURL),
			APIURL: string(hit.URL),
		})
	}
	return set, summary, nil
}
