package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/views/index"
	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/views/search"
	"github.com/custodia-labs/sercha-remote/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/sercha-remote/internal/core/domain"
	"github.com/custodia-labs/sercha-remote/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports    *Ports
	ctx      context.Context
	notifier *Notifier

	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	menuView     *menu.View
	searchView   *search.View
	indexView    *index.View
	settingsView *settings.View

	currentView messages.ViewType
	err         error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	menuView := menu.NewView(s, km)
	if ports.Settings != nil {
		if current, err := ports.Settings.Get(); err == nil {
			menuView.WithBaseURL(current.Service.BaseURL)
		}
	}

	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		help:         help.New(),
		menuView:     menuView,
		searchView:   search.NewView(s, km, ports.Session),
		indexView:    index.NewView(s, km, ports.Session),
		settingsView: settings.NewView(s, km, ports.Settings),
		currentView:  messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app. Searches and submissions
// started from the views run under it.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	a.indexView.WithContext(ctx)
	return a
}

// WithNotifier attaches the notifier the session reports through, so that
// Run can connect it to the program.
func (a *App) WithNotifier(n *Notifier) *App {
	a.notifier = n
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("sercha-remote"),
		a.menuView.Init(),
	)
}

// Update implements tea.Model.
//
//nolint:gocyclo // central message router
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		return a, a.routeKey(msg)

	case messages.StateChanged, messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.SubmitCompleted:
		a.indexView, cmd = a.indexView.Update(msg)
		return a, cmd

	case messages.NotificationRaised:
		var indexCmd tea.Cmd
		a.searchView, cmd = a.searchView.Update(msg)
		a.indexView, indexCmd = a.indexView.Update(msg)
		return a, tea.Batch(cmd, indexCmd)

	case messages.SettingsLoaded, messages.SettingsSaved:
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		return a, a.switchView(msg.View)

	case messages.ErrorOccurred:
		a.err = msg.Err
		logger.Warn("tui: %v", msg.Err)
		switch a.currentView {
		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
		case messages.ViewIndex:
			a.indexView, cmd = a.indexView.Update(msg)
		case messages.ViewMenu, messages.ViewSettings, messages.ViewHelp:
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Spinner ticks, cursor blinks and the like go to the active view.
	return a, a.updateActive(msg)
}

func (a *App) routeKey(msg tea.KeyMsg) tea.Cmd {
	if a.currentView == messages.ViewHelp {
		switch {
		case msg.Type == tea.KeyEsc:
			return func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case keymap.Matches(msg.String(), a.keymap.Quit):
			return tea.Quit
		}
		return nil
	}
	return a.updateActive(msg)
}

func (a *App) updateActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = a.searchView.Err()
	case messages.ViewIndex:
		a.indexView, cmd = a.indexView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
	}
	return cmd
}

func (a *App) switchView(view messages.ViewType) tea.Cmd {
	a.currentView = view

	switch view {
	case messages.ViewSearch:
		a.searchView.Reset()
		return a.searchView.Init()
	case messages.ViewIndex:
		a.indexView.Reset()
		return a.indexView.Init()
	case messages.ViewSettings:
		return a.settingsView.Reset()
	case messages.ViewMenu, messages.ViewHelp:
	}
	return nil
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewIndex:
		return a.indexView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewMenu:
	}
	return a.menuView.View()
}

func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + "\n\n" +
		a.help.FullHelpView(a.keymap.FullHelp()) + "\n\n" +
		a.styles.Help.Render("Typing in the search view fetches suggestions after a short pause.\n"+
			"[esc] back to menu")
}

// Run starts the TUI and blocks until it exits or the context is cancelled.
// Session changes that happen outside Update, such as debounced suggestions
// arriving, are delivered to the program as messages.StateChanged.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))

	if a.notifier != nil {
		a.notifier.Attach(p)
		defer a.notifier.Detach()
	}

	unsubscribe := a.ports.Session.Subscribe(func(domain.Snapshot) {
		go p.Send(messages.StateChanged{})
	})
	defer unsubscribe()

	logger.Debug("tui: starting")
	_, err := p.Run()
	logger.Debug("tui: stopped")
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.help.Width = width

	a.menuView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.indexView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
