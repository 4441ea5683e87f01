// Package index provides the document indexing form for the TUI.
package index

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-remote/internal/core/domain"
	"github.com/custodia-labs/sercha-remote/internal/core/ports/driving"
)

// ErrNoSession indicates that no session was provided.
var ErrNoSession = errors.New("index session is required")

// Field identifies the focused form field.
type Field int

const (
	FieldID Field = iota
	FieldContent
)

// View is the indexing form. Field edits are forwarded to the session draft.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	idInput   *input.Field
	content   textarea.Model
	statusbar *status.Bar
	spinner   spinner.Model

	session driving.SessionService
	ctx     context.Context

	focus      Field
	submitting bool
	width      int
	height     int
	ready      bool
}

// NewView creates a new indexing view.
func NewView(s *styles.Styles, km *keymap.KeyMap, session driving.SessionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	ta := textarea.New()
	ta.Placeholder = "Document content"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(8)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Subtitle

	return &View{
		styles:    s,
		keymap:    km,
		idInput:   input.NewField(s, "Document ID", "Document ID"),
		content:   ta,
		statusbar: status.NewBar(s, km.IndexHelp()),
		spinner:   sp,
		session:   session,
		ctx:       context.Background(),
		focus:     FieldID,
		width:     80,
		height:    24,
	}
}

// WithContext sets the context used for submissions.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.idInput.Init()
}

// Update handles messages for the indexing view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SubmitCompleted:
		v.submitting = false
		v.syncFromSession()
		if msg.Err != nil {
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(domain.MessageIndexFailed)
		}
		return v, nil

	case messages.NotificationRaised:
		v.showNotification(msg.Notification)
		return v, nil

	case messages.ErrorOccurred:
		v.submitting = false
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil

	case spinner.TickMsg:
		if !v.submitting {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}

	return v, v.updateFocused(msg)
}

// handleKeyMsg processes keyboard input.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case keymap.Matches(msg.String(), v.keymap.Submit):
		return v, v.submit()

	case keymap.Matches(msg.String(), v.keymap.NextField):
		return v, v.toggleFocus()

	case msg.Type == tea.KeyEnter && v.focus == FieldID:
		return v, v.toggleFocus()
	}

	if v.submitting {
		return v, nil
	}

	id, content := v.idInput.Value(), v.content.Value()
	cmd := v.updateFocused(msg)

	if v.session != nil {
		if newID := v.idInput.Value(); newID != id {
			v.session.SetDraftID(newID)
		}
		if newContent := v.content.Value(); newContent != content {
			v.session.SetDraftContent(newContent)
		}
	}
	return v, cmd
}

func (v *View) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if v.focus == FieldID {
		v.idInput, cmd = v.idInput.Update(msg)
	} else {
		v.content, cmd = v.content.Update(msg)
	}
	return cmd
}

func (v *View) toggleFocus() tea.Cmd {
	if v.focus == FieldID {
		v.focus = FieldContent
		v.idInput.Blur()
		return v.content.Focus()
	}
	v.focus = FieldID
	v.content.Blur()
	return v.idInput.Focus()
}

// submit sends the session draft. There is no client-side validation;
// the service decides what it accepts.
func (v *View) submit() tea.Cmd {
	if v.submitting {
		return nil
	}
	if v.session == nil {
		return func() tea.Msg {
			return messages.ErrorOccurred{Err: ErrNoSession}
		}
	}

	v.submitting = true
	v.statusbar.SetState(status.StateIndexing)

	session, ctx := v.session, v.ctx
	return tea.Batch(v.spinner.Tick, func() tea.Msg {
		return messages.SubmitCompleted{Err: session.SubmitDraft(ctx)}
	})
}

func (v *View) showNotification(n domain.Notification) {
	switch n.Kind {
	case domain.NotificationIndexed:
		v.statusbar.SetState(status.StateSuccess)
		v.statusbar.SetMessage(n.Message)
	case domain.NotificationIndexFailed:
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(n.Message)
	case domain.NotificationSearchFailed:
	}
}

// syncFromSession mirrors the session draft, which may have been cleared
// after a successful submission.
func (v *View) syncFromSession() {
	if v.session == nil {
		return
	}
	draft := v.session.Snapshot().Draft
	if v.idInput.Value() != draft.ID {
		v.idInput.SetValue(draft.ID)
	}
	if v.content.Value() != draft.Content {
		v.content.SetValue(draft.Content)
	}
}

// View renders the indexing form.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	contentLabel := v.styles.Title.Render("Content:")
	contentBox := v.styles.InputField.Render(v.content.View())

	sections := []string{
		v.styles.Title.Render("Index New Document"),
		"",
		v.idInput.View(),
		"",
		contentLabel,
		contentBox,
		"",
	}
	if v.submitting {
		sections = append(sections, v.spinner.View()+" "+v.styles.Muted.Render("Indexing..."), "")
	}
	sections = append(sections, v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.idInput.SetWidth(width)
	contentWidth := width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}
	v.content.SetWidth(contentWidth)
	contentHeight := height - 14
	if contentHeight < 3 {
		contentHeight = 3
	}
	v.content.SetHeight(contentHeight)
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Focus returns the focused field.
func (v *View) Focus() Field {
	return v.focus
}

// DocID returns the text in the document ID field.
func (v *View) DocID() string {
	return v.idInput.Value()
}

// Content returns the text in the content field.
func (v *View) Content() string {
	return v.content.Value()
}

// Submitting reports whether a submission is in flight.
func (v *View) Submitting() bool {
	return v.submitting
}

// Status returns the status bar state.
func (v *View) Status() status.State {
	return v.statusbar.State()
}

// StatusMessage returns the status bar message.
func (v *View) StatusMessage() string {
	return v.statusbar.Message()
}

// Reset focuses the ID field and restores the session draft.
func (v *View) Reset() {
	v.submitting = false
	v.statusbar.Clear()
	v.focus = FieldID
	v.content.Blur()
	v.idInput.Focus()
	v.syncFromSession()
}
