package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pickerItem implements list.Item for one catalog entry.
type pickerItem struct {
	line  string
	index int
}

func (i pickerItem) Title() string       { return i.line }
func (i pickerItem) Description() string { return "" }
func (i pickerItem) FilterValue() string { return i.line }

// pickerKeyMap defines key bindings for the instance picker.
type pickerKeyMap struct {
	Enter key.Binding
	Quit  key.Binding
}

var pickerKeys = pickerKeyMap{
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "cancel"),
	),
}

// PickerModel is a Bubble Tea model for selecting one line from a catalog.
type PickerModel struct {
	list     list.Model
	selected int
	chosen   bool
	quitting bool
}

// NewPickerModel creates a picker over the given display lines.
func NewPickerModel(title string, lines []string) PickerModel {
	items := make([]list.Item, len(lines))
	for i, line := range lines {
		items[i] = pickerItem{line: line, index: i}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color(string(ColorPrimary))).
		BorderForeground(lipgloss.Color(string(ColorSecondary)))

	l := list.New(items, delegate, 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(ColorPrimary))).
		Bold(true).
		Padding(0, 0, 1, 0)
	l.Styles.HelpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(ColorMuted)))

	return PickerModel{list: l, selected: -1}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Don't intercept keys while the user is typing a filter.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, pickerKeys.Enter):
			if item, ok := m.list.SelectedItem().(pickerItem); ok {
				m.selected = item.index
				m.chosen = true
			}
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, pickerKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}
	return m.list.View()
}

// Selection returns the chosen index and whether a choice was made.
func (m PickerModel) Selection() (int, bool) {
	return m.selected, m.chosen
}

// InstancePicker selects from display lines with a full-screen list.
// It satisfies the workflow's prompter contract.
type InstancePicker struct {
	Title  string
	Output io.Writer
	Input  io.Reader
}

// Pick shows the picker and returns the selected index. ok is false when
// the user cancelled.
func (p *InstancePicker) Pick(lines []string) (int, bool, error) {
	model := NewPickerModel(p.Title, lines)

	opts := []tea.ProgramOption{}
	if p.Output != nil {
		opts = append(opts, tea.WithOutput(p.Output))
	}
	if p.Input != nil {
		opts = append(opts, tea.WithInput(p.Input))
	}

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return 0, false, err
	}

	if m, ok := final.(PickerModel); ok {
		index, chosen := m.Selection()
		return index, chosen, nil
	}
	return 0, false, nil
}

// IsTerminal returns true if the file descriptor is a terminal.
func IsTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
