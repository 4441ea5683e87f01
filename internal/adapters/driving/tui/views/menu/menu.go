// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/styles"
)

// Item represents a single menu option.
type Item struct {
	Label string
	View  messages.ViewType
	Quit  bool // selecting this item quits the app
}

// DefaultItems returns the top-level navigation entries.
func DefaultItems() []Item {
	return []Item{
		{Label: "Search", View: messages.ViewSearch},
		{Label: "Index Document", View: messages.ViewIndex},
		{Label: "Settings", View: messages.ViewSettings},
		{Label: "Help", View: messages.ViewHelp},
		{Label: "Quit", Quit: true},
	}
}

// View represents the main menu view.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	items    []Item
	selected int
	baseURL  string
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles: s,
		keymap: km,
		items:  DefaultItems(),
		width:  80,
		height: 24,
	}
}

// WithBaseURL shows which service the session talks to.
func (v *View) WithBaseURL(baseURL string) *View {
	v.baseURL = baseURL
	return v
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		keyStr := msg.String()
		switch {
		case keymap.Matches(keyStr, v.keymap.Up):
			if v.selected > 0 {
				v.selected--
			}
		case keymap.Matches(keyStr, v.keymap.Down):
			if v.selected < len(v.items)-1 {
				v.selected++
			}
		case keymap.Matches(keyStr, v.keymap.Select):
			return v, v.choose(v.items[v.selected])
		case keymap.Matches(keyStr, v.keymap.Help):
			return v, changeView(messages.ViewHelp)
		case keymap.Matches(keyStr, v.keymap.Quit):
			return v, tea.Quit
		}
	}

	return v, nil
}

func (v *View) choose(item Item) tea.Cmd {
	if item.Quit {
		return tea.Quit
	}
	return changeView(item.View)
}

func changeView(view messages.ViewType) tea.Cmd {
	return func() tea.Msg {
		return messages.ViewChanged{View: view}
	}
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Sercha Remote"))
	b.WriteString("\n\n")

	subtitle := "Remote Document Search"
	if v.baseURL != "" {
		subtitle += " @ " + v.baseURL
	}
	b.WriteString(v.styles.Subtitle.Render(subtitle))
	b.WriteString("\n\n")

	for i, item := range v.items {
		if i == v.selected {
			b.WriteString("> " + v.styles.Selected.Render(item.Label))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(item.Label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [Enter] Select  [?] Help  [q] Quit"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// SelectedItem returns the currently highlighted item.
func (v *View) SelectedItem() Item {
	return v.items[v.selected]
}
