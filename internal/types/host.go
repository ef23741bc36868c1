package types

import "context"

type (
	// Panel is a display surface: a title and the rendered body.
	// HTML is the canonical rendering; Text is the same body for plain-text hosts.
	Panel struct {
		Title string `json:"title"`
		HTML  string `json:"html"`
		Text  string `json:"text"`
	}

	// Host is the UI collaborator that renders pickers and panels.
	Host interface {
		// Pick offers labels in order and returns the chosen one.
		// ok is false when the user dismissed the prompt.
		Pick(ctx context.Context, labels []string) (label string, ok bool, err error)
		// Show creates a new display surface.
		Show(ctx context.Context, panel Panel) error
		// Notify shows a short user-visible error message.
		Notify(ctx context.Context, message string) error
	}
)

// State is a Presenter state.
type State string

const (
	StateSelecting State = "selecting"
	StateResolving State = "resolving"
	StateRendering State = "rendering"
	StateDone      State = "done"
)

// Outcome describes how one invocation ended.
type Outcome struct {
	// Reached is the last state entered before Done.
	Reached  State             `json:"reached"`
	Selected *SearchResultItem `json:"selected,omitempty"`
	Panel    *Panel            `json:"panel,omitempty"`
	// Content is the raw file text when rendering succeeded.
	Content string `json:"content,omitempty"`
	Found   bool   `json:"found"`
}
