// Package settings provides the settings view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-remote/internal/core/domain"
	"github.com/custodia-labs/sercha-remote/internal/core/ports/driving"
)

// ErrNoSettingsService indicates that no settings service was provided.
var ErrNoSettingsService = errors.New("settings service not available")

// RestartHint is shown after a value was saved. The running session keeps
// the settings it was started with.
const RestartHint = "changes apply on next start"

// View lists the effective settings and edits one value at a time.
type View struct {
	styles          *styles.Styles
	keymap          *keymap.KeyMap
	settingsService driving.SettingsService
	statusbar       *status.Bar

	settings *domain.AppSettings
	path     string
	keys     []string
	err      error
	invalid  error

	selected int
	editing  bool
	editor   textinput.Model

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, km *keymap.KeyMap, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	editor := textinput.New()
	editor.CharLimit = 512
	editor.Width = 50

	v := &View{
		styles:          s,
		keymap:          km,
		settingsService: settingsService,
		statusbar:       status.NewBar(s, []key.Binding{km.Up, km.Down, km.Select, km.Back}),
		editor:          editor,
		width:           80,
		height:          24,
	}
	if settingsService != nil {
		v.keys = settingsService.Keys()
	}
	return v
}

// Init loads the current settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

func (v *View) loadSettings() tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsLoaded{Err: ErrNoSettingsService}
		}
		settings, err := svc.Get()
		return messages.SettingsLoaded{Settings: settings, Path: svc.ConfigPath(), Err: err}
	}
}

func (v *View) saveSetting(name, value string) tea.Cmd {
	svc := v.settingsService
	return func() tea.Msg {
		if svc == nil {
			return messages.SettingsSaved{Key: name, Err: ErrNoSettingsService}
		}
		return messages.SettingsSaved{Key: name, Err: svc.Set(name, value)}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.err = nil
		v.settings = msg.Settings
		v.path = msg.Path
		v.invalid = nil
		if msg.Settings != nil {
			v.invalid = msg.Settings.Validate()
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.err = nil
		v.statusbar.SetState(status.StateSuccess)
		v.statusbar.SetMessage(fmt.Sprintf("Saved %s (%s)", msg.Key, RestartHint))
		return v, v.loadSettings()

	case tea.KeyMsg:
		if v.editing {
			return v.handleEditKey(msg)
		}
		return v.handleListKey(msg)
	}

	return v, nil
}

func (v *View) handleListKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(msg.String(), v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(msg.String(), v.keymap.Down):
		if v.selected < len(v.keys)-1 {
			v.selected++
		}
	case keymap.Matches(msg.String(), v.keymap.Select):
		return v, v.startEditing()
	}
	return v, nil
}

func (v *View) handleEditKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // remaining keys go to the editor
	switch msg.Type {
	case tea.KeyEsc:
		v.stopEditing()
		return v, nil
	case tea.KeyEnter:
		name, value := v.SelectedKey(), v.editor.Value()
		v.stopEditing()
		return v, v.saveSetting(name, value)
	}

	var cmd tea.Cmd
	v.editor, cmd = v.editor.Update(msg)
	return v, cmd
}

func (v *View) startEditing() tea.Cmd {
	name := v.SelectedKey()
	if name == "" {
		return nil
	}
	v.editing = true
	v.editor.SetValue(v.valueOf(name))
	v.editor.CursorEnd()
	return v.editor.Focus()
}

func (v *View) stopEditing() {
	v.editing = false
	v.editor.Blur()
	v.editor.Reset()
}

func (v *View) valueOf(name string) string {
	if v.settings == nil {
		return ""
	}
	value, _ := v.settings.Value(name)
	return value
}

// View renders the settings list.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n")
	if v.path != "" {
		b.WriteString(v.styles.Muted.Render(v.path))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(v.keys) == 0 {
		b.WriteString(v.styles.Muted.Render("No settings available"))
		b.WriteString("\n")
	}

	keyWidth := 0
	for _, k := range v.keys {
		keyWidth = max(keyWidth, len(k))
	}

	for i, k := range v.keys {
		cursor := "  "
		label := v.styles.Label.Render(fmt.Sprintf("%-*s", keyWidth, k))
		if i == v.selected {
			cursor = "> "
			label = v.styles.Selected.Render(fmt.Sprintf("%-*s", keyWidth, k))
		}

		value := v.styles.Normal.Render(v.valueOf(k))
		if v.editing && i == v.selected {
			value = v.editor.View()
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cursor, label, "  ", value))
		b.WriteString("\n")
	}

	if v.invalid != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Warning.Render("Warning: " + v.invalid.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.statusbar.View())
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Settings returns the last loaded settings.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// SelectedKey returns the highlighted setting key.
func (v *View) SelectedKey() string {
	if v.selected < 0 || v.selected >= len(v.keys) {
		return ""
	}
	return v.keys[v.selected]
}

// Editing reports whether a value is being edited.
func (v *View) Editing() bool {
	return v.editing
}

// EditorValue returns the text in the value editor.
func (v *View) EditorValue() string {
	return v.editor.Value()
}

// Err returns the last load or save error.
func (v *View) Err() error {
	return v.err
}

// Invalid returns why the loaded settings fail validation, or nil.
func (v *View) Invalid() error {
	return v.invalid
}

// StatusMessage returns the status bar message.
func (v *View) StatusMessage() string {
	return v.statusbar.Message()
}

// Reset leaves edit mode and reloads the settings.
func (v *View) Reset() tea.Cmd {
	v.stopEditing()
	v.statusbar.Clear()
	return v.loadSettings()
}
