package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/rikimaru/internal/host"
	"github.com/taigrr/rikimaru/internal/pipeline"
	"github.com/taigrr/rikimaru/internal/present"
	"github.com/taigrr/rikimaru/internal/render"
	"github.com/taigrr/rikimaru/internal/results"
)

func handleSearch(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, SearchOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return &mcp.CallToolResult{IsError: true}, SearchOutput{}, fmt.Errorf("query cannot be empty")
	}

	p := pipeline.New(serverConfig, host.NewScripted(""), fetcher, serverLog)
	set, summary, err := p.Find(ctx, query)
	if errors.Is(err, results.ErrNoResults) {
		return nil, SearchOutput{Results: []SearchResultItem{}}, nil
	}
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, SearchOutput{}, err
	}

	items := make([]SearchResultItem, 0, len(set))
	for _, r := range set {
		items = append(items, SearchResultItem{
			Label:  present.Label(r, serverConfig.Search.Root),
			Name:   r.Name,
			Path:   r.Path,
			URL:    r.URL,
			APIURL: r.APIURL,
		})
	}

	return nil, SearchOutput{
		Results: items,
		Total:   summary.TotalCount,
	}, nil
}

func handleOpen(ctx context.Context, req *mcp.CallToolRequest, input OpenInput) (*mcp.CallToolResult, OpenOutput, error) {
	query := strings.TrimSpace(input.Query)
	selection := strings.TrimSpace(input.Selection)
	if query == "" {
		return &mcp.CallToolResult{IsError: true}, OpenOutput{}, fmt.Errorf("query cannot be empty")
	}
	if selection == "" {
		return &mcp.CallToolResult{IsError: true}, OpenOutput{}, fmt.Errorf("selection cannot be empty")
	}

	h := host.NewScripted(selection)
	out, err := pipeline.New(serverConfig, h, fetcher, serverLog).Search(ctx, query)

	switch {
	case errors.Is(err, results.ErrNoResults):
		return nil, OpenOutput{Title: render.NoResultsTitle, Found: false}, nil
	case errors.Is(err, present.ErrContentUnavailable):
		return nil, OpenOutput{
			Title: render.FoundTitle(out.Selected.Name),
			Found: false,
			Path:  out.Selected.Path,
			URL:   out.Selected.URL,
		}, nil
	case err != nil:
		return &mcp.CallToolResult{IsError: true}, OpenOutput{}, err
	case out.Selected == nil:
		return &mcp.CallToolResult{IsError: true}, OpenOutput{},
			fmt.Errorf("selection %q is not among the results for %q", selection, query)
	}

	result := OpenOutput{
		Found:   out.Found,
		Path:    out.Selected.Path,
		URL:     out.Selected.URL,
		Content: out.Content,
	}
	if out.Panel != nil {
		result.Title = out.Panel.Title
		result.HTML = out.Panel.HTML
	}
	return nil, result, nil
}
