package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/styles"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewView(t *testing.T) {
	view := NewView(styles.DefaultStyles(), nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.keymap)
	assert.Len(t, view.items, 5)
	assert.Equal(t, 0, view.Selected())
	assert.False(t, view.ready)
	assert.Nil(t, view.Init())
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil, nil)

	updated, cmd := view.Update(tea.WindowSizeMsg{Width: 100, Height: 50})

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.True(t, view.ready)
	assert.Equal(t, 100, view.width)
	assert.Equal(t, 50, view.height)
}

func TestView_Navigation(t *testing.T) {
	view := NewView(nil, nil)

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.Selected())

	for range 10 {
		view.Update(keyRune('j'))
	}
	assert.Equal(t, 4, view.Selected(), "stops at the last item")

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 3, view.Selected())

	for range 10 {
		view.Update(keyRune('k'))
	}
	assert.Equal(t, 0, view.Selected(), "stops at the first item")
}

func TestView_Select(t *testing.T) {
	tests := []struct {
		index int
		want  messages.ViewType
	}{
		{0, messages.ViewSearch},
		{1, messages.ViewIndex},
		{2, messages.ViewSettings},
		{3, messages.ViewHelp},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			view := NewView(nil, nil)
			view.selected = tt.index

			_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

			require.NotNil(t, cmd)
			assert.Equal(t, messages.ViewChanged{View: tt.want}, cmd())
		})
	}
}

func TestView_SelectQuit(t *testing.T) {
	view := NewView(nil, nil)
	view.selected = 4

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_QuitKey(t *testing.T) {
	view := NewView(nil, nil)

	_, cmd := view.Update(keyRune('q'))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_HelpKey(t *testing.T) {
	view := NewView(nil, nil)

	_, cmd := view.Update(keyRune('?'))

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewHelp}, cmd())
}

func TestView_View(t *testing.T) {
	view := NewView(nil, nil)
	assert.Contains(t, view.View(), "Initialising")

	view.SetDimensions(80, 24)
	output := view.View()

	assert.Contains(t, output, "Sercha Remote")
	assert.Contains(t, output, "Remote Document Search")
	for _, item := range DefaultItems() {
		assert.Contains(t, output, item.Label)
	}
	assert.Contains(t, output, "> ")
}

func TestView_ViewShowsBaseURL(t *testing.T) {
	view := NewView(nil, nil).WithBaseURL("http://search.internal:8080")
	view.SetDimensions(80, 24)

	assert.Contains(t, view.View(), "http://search.internal:8080")
}

func TestView_SelectedItem(t *testing.T) {
	view := NewView(nil, nil)
	view.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.Equal(t, "Index Document", view.SelectedItem().Label)
	assert.Equal(t, messages.ViewIndex, view.SelectedItem().View)
}

func TestDefaultItems(t *testing.T) {
	items := DefaultItems()

	require.Len(t, items, 5)
	assert.True(t, items[4].Quit)
	for _, item := range items[:4] {
		assert.False(t, item.Quit, item.Label)
	}
}
