// Package pipeline runs one search invocation: build the query, fetch and
// process results, then hand them to the presenter.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/taigrr/rikimaru/internal/config"
	"github.com/taigrr/rikimaru/internal/pathfilter"
	"github.com/taigrr/rikimaru/internal/present"
	"github.com/taigrr/rikimaru/internal/query"
	"github.com/taigrr/rikimaru/internal/render"
	"github.com/taigrr/rikimaru/internal/results"
	"github.com/taigrr/rikimaru/internal/types"
)

//go:generate mockgen -destination=../mocks/fetcher.go -package=mocks github.com/taigrr/rikimaru/internal/pipeline Fetcher
//go:generate mockgen -destination=../mocks/host.go -package=mocks github.com/taigrr/rikimaru/internal/types Host

// ErrEmptyQuery rejects an invocation without a search string.
var ErrEmptyQuery = errors.New("no search string was entered")

// EmptyQueryMessage is shown to the user for ErrEmptyQuery.
const EmptyQueryMessage = "No search string was entered."

// Fetcher performs the three upstream GETs.
type Fetcher interface {
	present.ContentFetcher
	FetchResults(ctx context.Context, url string) string
}

// Pipeline sequences the stages of a search. Invocations share only the
// read-only configuration; each runs its stages strictly one after another.
type Pipeline struct {
	cfg     *config.Config
	host    types.Host
	fetcher Fetcher
	filter  *pathfilter.PathFilter
	log     zerolog.Logger
}

// New creates a Pipeline.
func New(cfg *config.Config, host types.Host, fetcher Fetcher, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		host:    host,
		fetcher: fetcher,
		filter:  pathfilter.New(cfg.Search.Exclude, cfg.Search.Extensions),
		log:     log,
	}
}

// Find runs the query, fetch and process stages and returns the ResultSet
// with the upstream counters. It returns results.ErrNoResults when nothing
// matched or every match was filtered out.
func (p *Pipeline) Find(ctx context.Context, searchString string) (types.ResultSet, results.Summary, error) {
	return p.find(ctx, p.log, searchString)
}

func (p *Pipeline) find(ctx context.Context, log zerolog.Logger, searchString string) (types.ResultSet, results.Summary, error) {
	url := query.BuildWithBase(p.cfg.API.BaseURL, searchString, p.cfg.Search.Repo)
	log.Debug().Str("url", url).Msg("searching")

	body := p.fetcher.FetchResults(ctx, url)

	set, summary, err := results.Process(body)
	if err != nil {
		return nil, summary, err
	}

	allowed := p.filter.Filter(set)
	log.Debug().
		Int("total_count", summary.TotalCount).
		Bool("incomplete", summary.IncompleteResults).
		Int("items", len(set)).
		Int("allowed", len(allowed)).
		Msg("processed results")

	if len(allowed) == 0 {
		return nil, summary, results.ErrNoResults
	}
	return allowed, summary, nil
}

// Search runs a full invocation to Done. The returned error is the terminal
// outcome; results.ErrNoResults and present.ErrContentUnavailable have
// already been shown to the user as panels.
func (p *Pipeline) Search(ctx context.Context, searchString string) (out types.Outcome, err error) {
	log := p.log.With().
		Str("invocation", uuid.NewString()).
		Str("query", searchString).
		Logger()

	defer func() {
		p.finish(ctx, log, out, err)
	}()

	if searchString == "" {
		if nerr := p.host.Notify(ctx, EmptyQueryMessage); nerr != nil {
			log.Warn().Err(nerr).Msg("failed to notify")
		}
		return out, ErrEmptyQuery
	}

	set, _, err := p.find(ctx, log, searchString)
	if errors.Is(err, results.ErrNoResults) {
		if serr := p.host.Show(ctx, render.NoResults()); serr != nil {
			return out, fmt.Errorf("show panel: %w", serr)
		}
		return out, err
	}
	if err != nil {
		return out, err
	}

	presenter := present.New(p.host, p.fetcher, p.cfg.Search.Root, log)
	return presenter.Present(ctx, set)
}

// finish writes the terminal log line and, in notify mode, surfaces
// failures that have no dedicated panel.
func (p *Pipeline) finish(ctx context.Context, log zerolog.Logger, out types.Outcome, err error) {
	event := log.Info()
	if err != nil && !Visible(err) {
		event = log.Error()
	}
	event.Err(err).
		Str("reached", string(out.Reached)).
		Bool("found", out.Found).
		Msg("search finished")

	if err == nil || Visible(err) || p.cfg.Feedback != config.FeedbackNotify {
		return
	}
	if nerr := p.host.Notify(ctx, Message(err)); nerr != nil {
		log.Warn().Err(nerr).Msg("failed to notify")
	}
}

// Visible reports whether err was already shown to the user.
func Visible(err error) bool {
	return errors.Is(err, ErrEmptyQuery) ||
		errors.Is(err, results.ErrNoResults) ||
		errors.Is(err, present.ErrContentUnavailable)
}

// Message is the generic user-facing text for a failure without a panel.
func Message(err error) string {
	var perr *results.ParseError
	switch {
	case errors.As(err, &perr):
		return "Rikimaru could not read GitHub's search response."
	case errors.Is(err, present.ErrResolutionMiss), errors.Is(err, present.ErrResolutionAmbiguous):
		return "Rikimaru could not match your selection to a search result."
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "Search cancelled."
	default:
		return "Search failed: " + err.Error()
	}
}
