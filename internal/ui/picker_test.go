package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickerItem(t *testing.T) {
	item := pickerItem{line: "worker-1 (zone: us-central1-a) - IP: 34.1.2.3", index: 3}

	assert.Contains(t, item.Title(), "worker-1")
	assert.Contains(t, item.FilterValue(), "us-central1-a")
	assert.Empty(t, item.Description())
}

func TestNewPickerModel(t *testing.T) {
	model := NewPickerModel("Select a VM", []string{"a", "b"})

	_, chosen := model.Selection()
	assert.False(t, chosen)
	assert.False(t, model.quitting)
	assert.Len(t, model.list.Items(), 2)
}

func TestPickerModelEnterSelects(t *testing.T) {
	model := NewPickerModel("Select a VM", []string{"a", "b", "c"})
	model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	final, ok := updated.(PickerModel)
	require.True(t, ok)

	index, chosen := final.Selection()
	assert.True(t, chosen)
	assert.Equal(t, 0, index)
	assert.True(t, final.quitting)
}

func TestPickerModelEscapeCancels(t *testing.T) {
	model := NewPickerModel("Select a VM", []string{"a", "b"})

	updated, _ := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	final, ok := updated.(PickerModel)
	require.True(t, ok)

	_, chosen := final.Selection()
	assert.False(t, chosen)
	assert.True(t, final.quitting)
	assert.Empty(t, final.View(), "view clears after quitting")
}
