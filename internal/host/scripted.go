// Package host provides non-interactive Host implementations.
package host

import (
	"context"
	"slices"
	"sync"

	"github.com/taigrr/rikimaru/internal/types"
)

// Scripted picks a predetermined label and records everything it is asked
// to display. An empty Selection dismisses the picker.
type Scripted struct {
	Selection string

	mu       sync.Mutex
	offered  []string
	panels   []types.Panel
	messages []string
}

// NewScripted returns a Scripted host that picks selection.
func NewScripted(selection string) *Scripted {
	return &Scripted{Selection: selection}
}

// Pick returns Selection when it is one of the offered labels.
func (s *Scripted) Pick(ctx context.Context, labels []string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	s.mu.Lock()
	s.offered = slices.Clone(labels)
	s.mu.Unlock()

	if s.Selection == "" || !slices.Contains(labels, s.Selection) {
		return "", false, nil
	}
	return s.Selection, true, nil
}

// Show records panel.
func (s *Scripted) Show(_ context.Context, panel types.Panel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.panels = append(s.panels, panel)
	return nil
}

// Notify records message.
func (s *Scripted) Notify(_ context.Context, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, message)
	return nil
}

// Offered returns the labels of the last Pick.
func (s *Scripted) Offered() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.offered)
}

// Panels returns every panel shown so far.
func (s *Scripted) Panels() []types.Panel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.panels)
}

// Messages returns every notification so far.
func (s *Scripted) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.messages)
}
