// Package tui is the terminal host: a filterable picker for search results
// and a scrollable panel for file content.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/taigrr/rikimaru/internal/types"
)

// Host renders pickers and panels on a terminal.
type Host struct {
	in    io.Reader
	out   io.Writer
	errW  io.Writer
	plain bool
}

// Option configures a Host.
type Option func(*Host)

// WithIO replaces stdin, stdout and stderr.
func WithIO(in io.Reader, out, errW io.Writer) Option {
	return func(h *Host) {
		h.in = in
		h.out = out
		h.errW = errW
	}
}

// WithPlainPanels prints panels to the output instead of opening a pager.
func WithPlainPanels(plain bool) Option {
	return func(h *Host) {
		h.plain = plain
	}
}

// New creates a terminal Host on the process's standard streams.
func New(opts ...Option) *Host {
	h := &Host{
		in:   os.Stdin,
		out:  os.Stdout,
		errW: os.Stderr,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Pick shows labels in a filterable list.
func (h *Host) Pick(ctx context.Context, labels []string) (string, bool, error) {
	final, err := h.run(ctx, newPicker(labels, 80, 20))
	if err != nil {
		return "", false, err
	}
	m, ok := final.(pickerModel)
	if !ok || m.choice == "" {
		return "", false, nil
	}
	return m.choice, true, nil
}

// Show opens panel in a pager, or prints it in plain mode.
func (h *Host) Show(ctx context.Context, panel types.Panel) error {
	if h.plain {
		_, err := fmt.Fprintf(h.out, "%s\n\n%s\n", titleStyle.Render(panel.Title), panel.Text)
		return err
	}
	_, err := h.run(ctx, newPanel(panel.Title, panel.Text))
	return err
}

// Notify prints message as an error line.
func (h *Host) Notify(_ context.Context, message string) error {
	_, err := fmt.Fprintln(h.errW, errorStyle.Render(message))
	return err
}

func (h *Host) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(h.in),
		tea.WithOutput(h.out),
		tea.WithAltScreen(),
	)
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("terminal ui: %w", err)
	}
	return final, nil
}
