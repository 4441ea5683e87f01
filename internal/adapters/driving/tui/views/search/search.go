// Package search provides the search view for the TUI: query input,
// live suggestions and the result list.
package search

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-remote/internal/core/domain"
	"github.com/custodia-labs/sercha-remote/internal/core/ports/driving"
)

// View is the search view. The query, suggestions and results live in the
// session; the view mirrors them and forwards user input.
type View struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	input       *input.Field
	suggestions *list.StringList
	results     *list.StringList
	statusbar   *status.Bar
	spinner     spinner.Model

	session driving.SessionService
	ctx     context.Context

	width      int
	height     int
	ready      bool
	searching  bool
	err        error
	focusInput bool // true = typing a query, false = browsing results
}

// NewView creates a new search view.
func NewView(s *styles.Styles, km *keymap.KeyMap, session driving.SessionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Subtitle

	return &View{
		styles:      s,
		keymap:      km,
		input:       input.NewField(s, "Search", "Enter search query"),
		suggestions: list.NewStringList(s, "Suggestions", "").WithItemStyle(s.Suggestion),
		results:     list.NewStringList(s, "Results", "No results found"),
		statusbar:   status.NewBar(s, km.ShortHelp()),
		spinner:     sp,
		session:     session,
		ctx:         context.Background(),
		width:       80,
		height:      24,
		focusInput:  true,
	}
}

// WithContext sets the context used for query execution.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the search view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.StateChanged:
		v.sync()
		return v, nil

	case messages.SearchCompleted:
		v.handleSearchCompleted(msg)
		return v, nil

	case messages.NotificationRaised:
		if msg.Notification.Kind == domain.NotificationSearchFailed {
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Notification.Message)
		}
		return v, nil

	case messages.ErrorOccurred:
		v.searching = false
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil

	case spinner.TickMsg:
		if !v.searching {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	}

	if !v.focusInput {
		return v.handleResultsKey(msg)
	}

	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEnter:
		return v, v.startSearch()

	case tea.KeyTab:
		if first := firstOf(v.suggestions.Items()); first != "" {
			v.input.SetValue(first)
			v.setQuery(first)
		}
		return v, nil

	case tea.KeyDown:
		if !v.results.IsEmpty() {
			v.browseResults()
		}
		return v, nil
	}

	before := v.input.Value()
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	if after := v.input.Value(); after != before {
		v.setQuery(after)
	}
	return v, cmd
}

// handleResultsKey processes keys while browsing results.
func (v *View) handleResultsKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), v.keymap.Up):
		v.results.MoveUp()
	case keymap.Matches(msg.String(), v.keymap.Down):
		v.results.MoveDown()
	case keymap.Matches(msg.String(), v.keymap.NewSearch), msg.Type == tea.KeyEnter:
		return v, v.focusQuery()
	}
	return v, nil
}

// setQuery forwards a changed query to the session.
func (v *View) setQuery(query string) {
	if v.session == nil {
		return
	}
	v.session.SetQueryText(query)
}

// startSearch runs the current query. Empty queries are sent as-is.
func (v *View) startSearch() tea.Cmd {
	if v.session == nil {
		return func() tea.Msg {
			return messages.ErrorOccurred{Err: ErrNoSession}
		}
	}

	v.searching = true
	v.err = nil
	v.statusbar.SetState(status.StateSearching)

	session, ctx := v.session, v.ctx
	return tea.Batch(v.spinner.Tick, func() tea.Msg {
		return messages.SearchCompleted{Err: session.ExecuteSearch(ctx)}
	})
}

// handleSearchCompleted updates the view after a query finished.
func (v *View) handleSearchCompleted(msg messages.SearchCompleted) {
	v.searching = false
	v.sync()

	if msg.Err != nil {
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(domain.MessageSearchFailed)
		return
	}

	v.err = nil
	v.statusbar.SetState(status.StateResults)
	v.statusbar.SetResultCount(v.results.Count())
	if !v.results.IsEmpty() {
		v.browseResults()
	}
}

// sync copies the session state into the lists.
func (v *View) sync() {
	if v.session == nil {
		return
	}
	snap := v.session.Snapshot()
	v.suggestions.SetItems(snap.Suggestions)
	v.results.SetItems(snap.Results)
}

func (v *View) browseResults() {
	v.focusInput = false
	v.input.Blur()
	v.results.ShowCursor(true)
	v.statusbar.SetHints(v.keymap.ResultsHelp())
}

func (v *View) focusQuery() tea.Cmd {
	v.focusInput = true
	v.results.ShowCursor(false)
	v.statusbar.SetHints(v.keymap.ShortHelp())
	return v.input.Focus()
}

// View renders the search view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 12)
	sections = append(sections, v.styles.Title.Render("Document Search"), "", v.input.View(), "")

	// Suggestions only take up space when there are some.
	if !v.suggestions.IsEmpty() {
		sections = append(sections, v.suggestions.View(), "")
	}

	if v.searching {
		sections = append(sections, v.spinner.View()+" "+v.styles.Muted.Render("Searching..."), "")
	}

	sections = append(sections, v.results.View(), "", v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.suggestions.SetDimensions(width, 7)
	v.results.SetDimensions(width, height-17)
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the text in the query input.
func (v *View) Query() string {
	return v.input.Value()
}

// Results returns the displayed result set.
func (v *View) Results() []string {
	return v.results.Items()
}

// Suggestions returns the displayed suggestion set.
func (v *View) Suggestions() []string {
	return v.suggestions.Items()
}

// SelectedResult returns the highlighted result.
func (v *View) SelectedResult() string {
	return v.results.SelectedItem()
}

// Searching reports whether a query is in flight.
func (v *View) Searching() bool {
	return v.searching
}

// Err returns the last error, if any.
func (v *View) Err() error {
	return v.err
}

// InputFocused returns whether the query input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}

// Status returns the status bar state.
func (v *View) Status() status.State {
	return v.statusbar.State()
}

// StatusMessage returns the status bar message.
func (v *View) StatusMessage() string {
	return v.statusbar.Message()
}

// Reset returns to query input, restoring the session's query text.
func (v *View) Reset() {
	v.err = nil
	v.searching = false
	v.statusbar.Clear()
	v.focusQuery()
	if v.session != nil {
		v.input.SetValue(v.session.Snapshot().Query)
	}
	v.sync()
}

func firstOf(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[0]
}
