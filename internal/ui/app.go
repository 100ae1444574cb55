package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/five82/newtab/internal/config"
	"github.com/five82/newtab/internal/menu"
	"github.com/five82/newtab/internal/overlay"
	"github.com/five82/newtab/internal/prefs"
	"github.com/five82/newtab/internal/state"
	"github.com/five82/newtab/internal/weather"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Weather   weather.Fetcher // optional; enables manual refresh
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string // empty disables persistence
	Sink      menu.Sink
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	fetcher   weather.Fetcher
	config    config.Config
	prefs     prefs.Prefs
	prefsPath string
	sink      menu.Sink

	// Engine
	session *session
	keys    keyMap
	help    help.Model
	zoneID  string

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool
	clock  time.Time
	status string

	// Overlay that owned focus after the last reconcile; see syncFocus.
	focused    overlay.Surface
	hasFocused bool

	// Overlay state
	launcherInput textinput.Model
	searchInput   textinput.Model
	settingsRow   int
	spinner       spinner.Model
	refreshing    bool

	// Data state
	snapshot state.Snapshot

	// Gesture surface of the drag in progress, empty when the button is up.
	dragging string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	zone.NewGlobal()

	launcherInput := textinput.New()
	launcherInput.Prompt = "› "
	launcherInput.Placeholder = "Filter sites"
	launcherInput.CharLimit = 64

	searchInput := textinput.New()
	searchInput.Prompt = "⌕ "
	searchInput.Placeholder = "Search the web"
	searchInput.CharLimit = 256

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := Model{
		ctx:           ctx,
		store:         opts.Store,
		fetcher:       opts.Weather,
		config:        opts.Config,
		prefs:         opts.Prefs,
		prefsPath:     opts.PrefsPath,
		sink:          opts.Sink,
		session:       newSession(opts.Config, opts.Sink, opts.Prefs.Compact),
		keys:          DefaultKeyMap(),
		help:          help.New(),
		zoneID:        zone.NewPrefix(),
		clock:         time.Now(),
		launcherInput: launcherInput,
		searchInput:   searchInput,
		spinner:       spin,
	}
	m.applyTheme(GetTheme(opts.Prefs.Theme))
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("newtab"),
		tickCmd(DefaultUIInterval),
		m.spinner.Tick,
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.session.nav.Resize(msg.Width)
		return m, nil

	case tea.BlurMsg:
		m.session.router.Reset()
		return m, nil

	case tickMsg:
		m.clock = time.Time(msg)
		cmds := []tea.Cmd{tickCmd(DefaultUIInterval)}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil

	case weatherRefreshedMsg:
		m.refreshing = false
		m.snapshot = state.Snapshot(msg)
		return m, nil

	case animationDoneMsg:
		m.session.guard.End()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var body string
	if current, ok := m.session.overlays.Current(); ok {
		body = m.renderOverlay(current)
	} else {
		body = m.renderBase()
	}
	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter()))
}

// applyTheme switches palettes, including the help component's styles.
func (m *Model) applyTheme(theme Theme) {
	m.theme = theme
	styles := theme.Styles()
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.AccentText
	m.help.Styles.FullDesc = styles.MutedText
	m.help.Styles.FullSeparator = styles.FaintText
	m.spinner.Style = styles.AccentText
}

// bodyHeight is the height left for the base layer or overlay.
func (m Model) bodyHeight() int {
	if m.height <= 1 {
		return m.height
	}
	return m.height - 1
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type weatherRefreshedMsg state.Snapshot

type animationDoneMsg struct{}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func refreshWeatherCmd(ctx context.Context, fetcher weather.Fetcher, store *state.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, WeatherRefreshTimeout)
		defer cancel()
		report, err := fetcher.Fetch(ctx)
		if err != nil {
			store.Update(nil, err)
		} else {
			store.Update(&report, nil)
		}
		return weatherRefreshedMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithContext(m.ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
