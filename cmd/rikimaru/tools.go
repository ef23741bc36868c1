package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// SearchInput contains parameters for searching cosmos.
	SearchInput struct {
		Query string `json:"query" jsonschema:"Search terms; '-' is treated as a literal hyphen"`
	}

	// SearchResultItem is one matching file.
	SearchResultItem struct {
		Label  string `json:"label"`
		Name   string `json:"name"`
		Path   string `json:"path"`
		URL    string `json:"url"`
		APIURL string `json:"apiUrl"`
	}

	// SearchOutput contains the matching files in ranking order. Total is
	// the number of matches upstream reported, before filtering and paging.
	SearchOutput struct {
		Results []SearchResultItem `json:"results"`
		Total   int                `json:"total"`
	}

	// OpenInput selects one result of a search.
	OpenInput struct {
		Query     string `json:"query" jsonschema:"Search terms, as passed to search"`
		Selection string `json:"selection" jsonschema:"Label of the result to open, as returned by search"`
	}

	// OpenOutput contains the rendered file.
	OpenOutput struct {
		Title   string `json:"title"`
		Found   bool   `json:"found"`
		Path    string `json:"path,omitempty"`
		URL     string `json:"url,omitempty"`
		Content string `json:"content,omitempty"`
		HTML    string `json:"html,omitempty"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search",
		Description: "Search file contents of the OpenGenus/cosmos repository with GitHub code search. Returns matching files in ranking order, each with a label to pass to open.",
	}, handleSearch)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "open",
		Description: "Run a search and return the raw content of the result whose label equals selection. found=false means GitHub had no downloadable content for it.",
	}, handleOpen)
}
