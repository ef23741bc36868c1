// Package present lets the user pick a search result and renders the chosen file.
package present

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/taigrr/rikimaru/internal/render"
	"github.com/taigrr/rikimaru/internal/types"
)

// ContentFetcher reaches a file through its contents API entry.
type ContentFetcher interface {
	FetchMetadata(ctx context.Context, apiURL string) string
	FetchRaw(ctx context.Context, downloadURL string) string
}

// Presenter drives Selecting -> Resolving -> Rendering for one ResultSet.
type Presenter struct {
	host    types.Host
	fetcher ContentFetcher
	root    string
	log     zerolog.Logger
}

// New creates a Presenter. root is the path segment prefixed to every label.
func New(host types.Host, fetcher ContentFetcher, root string, log zerolog.Logger) *Presenter {
	return &Presenter{
		host:    host,
		fetcher: fetcher,
		root:    root,
		log:     log,
	}
}

// Present runs the presenter to Done. A dismissed picker ends with no error.
// Resolution failures return a *ResolutionError without showing anything;
// missing content shows the not-found panel and returns ErrContentUnavailable.
func (p *Presenter) Present(ctx context.Context, set types.ResultSet) (types.Outcome, error) {
	out := types.Outcome{Reached: types.StateSelecting}

	label, ok, err := p.host.Pick(ctx, Labels(set, p.root))
	if err != nil {
		return out, fmt.Errorf("pick result: %w", err)
	}
	if !ok || label == "" {
		p.log.Debug().Msg("selection dismissed")
		return out, nil
	}

	out.Reached = types.StateResolving
	item, err := Resolve(label, set)
	if err != nil {
		return out, err
	}
	out.Selected = &item

	out.Reached = types.StateRendering
	panel, content, err := p.render(ctx, item)
	if showErr := p.host.Show(ctx, panel); showErr != nil {
		return out, fmt.Errorf("show panel: %w", showErr)
	}
	out.Panel = &panel
	if err != nil {
		return out, err
	}

	out.Content = content
	out.Found = true
	return out, nil
}

func (p *Presenter) render(ctx context.Context, item types.SearchResultItem) (types.Panel, string, error) {
	body := p.fetcher.FetchMetadata(ctx, item.APIURL)
	if body == "" {
		p.log.Info().Str("name", item.Name).Msg("no content found for the file")
		return render.NotFound(item.Name), "", ErrContentUnavailable
	}

	var meta types.FileMetadata
	if err := json.Unmarshal([]byte(body), &meta); err != nil {
		p.log.Warn().Err(err).Str("name", item.Name).Msg("malformed file metadata")
		return render.NotFound(item.Name), "", fmt.Errorf("%w: %v", ErrContentUnavailable, err)
	}
	if meta.DownloadURL == "" {
		p.log.Info().Str("name", item.Name).Msg("no content found for the file")
		return render.NotFound(item.Name), "", ErrContentUnavailable
	}

	raw := p.fetcher.FetchRaw(ctx, meta.DownloadURL)
	return render.Content(item.Name, raw), raw, nil
}
