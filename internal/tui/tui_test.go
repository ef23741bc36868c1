package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/rikimaru/internal/types"
)

var labels = []string{
	"a.cpp located at: cosmos/code/x/a.cpp",
	"b.py located at: cosmos/code/y/b.py",
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m tea.Model, keys ...string) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(key(k))
	}
	return m, cmd
}

func TestPicker_EnterSelectsFirst(t *testing.T) {
	m, cmd := press(newPicker(labels, 80, 20), "enter")

	require.NotNil(t, cmd)
	assert.Equal(t, labels[0], m.(pickerModel).choice)
}

func TestPicker_MoveThenSelect(t *testing.T) {
	m, _ := press(newPicker(labels, 80, 20), "down", "enter")

	assert.Equal(t, labels[1], m.(pickerModel).choice)
}

func TestPicker_Dismiss(t *testing.T) {
	for _, k := range []string{"esc", "q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m, cmd := press(newPicker(labels, 80, 20), k)
			require.NotNil(t, cmd)
			assert.Empty(t, m.(pickerModel).choice)
		})
	}
}

func TestPicker_ViewListsLabels(t *testing.T) {
	m, _ := newPicker(labels, 120, 20).Update(tea.WindowSizeMsg{Width: 120, Height: 20})
	view := m.View()
	assert.Contains(t, view, "a.cpp located at: cosmos/code/x/a.cpp")
}

func TestPanel_ShowsTitleAndText(t *testing.T) {
	m, _ := newPanel("Rikimaru found a.cpp", "int main() {}").Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	view := m.View()

	assert.Contains(t, view, "Rikimaru found a.cpp")
	assert.Contains(t, view, "int main() {}")
}

func TestPanel_Quit(t *testing.T) {
	_, cmd := press(newPanel("t", "x"), "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWrap(t *testing.T) {
	long := strings.Repeat("x", 30)
	wrapped := wrap(long, 10)
	assert.Equal(t, 30, strings.Count(wrapped, "x"))
	assert.Greater(t, strings.Count(wrapped, "\n"), 0)
	assert.Equal(t, long, wrap(long, 0))
}

func TestHost_PlainShow(t *testing.T) {
	var out bytes.Buffer
	h := New(WithIO(strings.NewReader(""), &out, &bytes.Buffer{}), WithPlainPanels(true))

	err := h.Show(context.Background(), types.Panel{Title: "Rikimaru found a.cpp", Text: "int main() {}"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Rikimaru found a.cpp")
	assert.Contains(t, out.String(), "int main() {}")
}

func TestHost_Notify(t *testing.T) {
	var errOut bytes.Buffer
	h := New(WithIO(strings.NewReader(""), &bytes.Buffer{}, &errOut))

	require.NoError(t, h.Notify(context.Background(), "No search string was entered."))
	assert.Contains(t, errOut.String(), "No search string was entered.")
}
