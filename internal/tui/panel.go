package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// panelModel is a scrollable, word-wrapped display surface.
type panelModel struct {
	title    string
	text     string
	viewport viewport.Model
	ready    bool
}

func newPanel(title, text string) panelModel {
	return panelModel{title: title, text: text}
}

func (m panelModel) Init() tea.Cmd {
	return nil
}

func (m panelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		header := lipgloss.Height(m.headerView())
		footer := lipgloss.Height(m.footerView())
		height := max(msg.Height-header-footer, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.viewport.SetContent(wrap(m.text, msg.Width))
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m panelModel) View() string {
	if !m.ready {
		return "\n  Loading..."
	}
	return m.headerView() + "\n" + m.viewport.View() + "\n" + m.footerView()
}

func (m panelModel) headerView() string {
	return titleStyle.Render(m.title)
}

func (m panelModel) footerView() string {
	pct := 100.0
	if m.ready {
		pct = m.viewport.ScrollPercent() * 100
	}
	return scrollStyle.Render(fmt.Sprintf("%3.f%%", pct)) + "  " + helpStyle.Render("↑/↓ scroll • q quit")
}

// wrap breaks lines longer than width, keeping existing line breaks.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}
