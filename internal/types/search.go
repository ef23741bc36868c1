// Package types defines the data structures shared across the search pipeline.
package types

import "encoding/json"

type (
	// SearchResultItem is the minimal projection of one upstream code-search hit.
	// Path is unique within a ResultSet, Name is not.
	SearchResultItem struct {
		Name   string `json:"name"`
		Path   string `json:"path"`
		URL    string `json:"url"`     // html_url
		APIURL string `json:"api_url"` // contents API url
	}

	// ResultSet is ordered by upstream ranking.
	ResultSet []SearchResultItem

	// SearchHit is a raw item from the code-search response.
	SearchHit struct {
		Name    LooseString `json:"name"`
		Path    LooseString `json:"path"`
		HTMLURL LooseString `json:"html_url"`
		URL     LooseString `json:"url"`
	}

	// LooseString decodes any JSON value. Strings keep their value, numbers
	// and booleans keep their literal text, everything else is empty.
	LooseString string

	// FileMetadata is the subset of the contents API response used to reach the raw file.
	FileMetadata struct {
		Name        string `json:"name"`
		Path        string `json:"path"`
		DownloadURL string `json:"download_url"`
	}
)

func (s *LooseString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = LooseString(str)
		return nil
	}
	switch data[0] {
	case '{', '[', 'n':
		*s = ""
	default:
		*s = LooseString(data)
	}
	return nil
}
