package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// labelItem is one search result in the picker.
type labelItem string

func (i labelItem) Title() string       { return string(i) }
func (i labelItem) Description() string { return "" }
func (i labelItem) FilterValue() string { return string(i) }

type pickerModel struct {
	list   list.Model
	choice string
}

func newPicker(labels []string, width, height int) pickerModel {
	items := make([]list.Item, len(labels))
	for i, label := range labels {
		items[i] = labelItem(label)
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(items, delegate, width, height)
	l.Title = "Select a file"
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(true)
	l.DisableQuitKeybindings()

	return pickerModel{list: l}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.choice = ""
			return m, tea.Quit
		}
		// While typing a filter, keys belong to the filter input.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(labelItem); ok {
				m.choice = string(item)
			}
			return m, tea.Quit
		case "esc", "q":
			if m.list.FilterState() == list.FilterApplied && msg.String() == "esc" {
				break
			}
			m.choice = ""
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	return docStyle.Render(m.list.View())
}
