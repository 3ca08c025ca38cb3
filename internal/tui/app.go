package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/soratobu/tempo/internal/app"
	"github.com/soratobu/tempo/internal/domain"
	"github.com/soratobu/tempo/internal/infra/config"
	"github.com/soratobu/tempo/internal/sched"
)

// Tick intervals requested from the scheduler. The stopwatch shows
// centiseconds so it redraws fast; the others only need seconds.
const (
	tickFast = 100 * time.Millisecond
	tickSlow = time.Second
)

// Model is the main bubbletea model: it orchestrates which clock is active,
// reacts to scheduler ticks and focus changes, and drives phase transitions
// and expiry alerts. All clock mutation happens here, on the single Bubble
// Tea goroutine; the scheduler only ever delivers wake-ups over a channel.
type Model struct {
	// Ports (interfaces bound by the container; fakes in tests)
	settingsStore  domain.SettingsStore
	countdownStore domain.CountdownStore
	history        domain.HistoryStore
	alerter        domain.Alerter
	logger         domain.Logger

	// External event sources
	scheduler *sched.Scheduler
	watcher   *config.Watcher

	// State
	settings   *domain.Settings
	err        error
	notice     string
	pomodoro   domain.Pomodoro
	stopwatch  domain.Stopwatch
	countdowns domain.CountdownList

	// Components
	keys      KeyMap
	styles    Styles
	help      help.Model
	progress  progress.Model
	nameInput textinput.Model
	durInput  textinput.Model

	// Injectable clock for tests
	now func() time.Time

	// Numeric state
	mode           Mode
	inputStage     InputStage
	modeCursor     int
	settingsCursor int
	menuCursor     int
	width          int
	height         int

	// Overlay flags, checked in priority order help > confirmExit > menu
	helpVisible bool
	confirmExit bool
	menuVisible bool

	focused bool
	pumping bool
}

// New creates the TUI model wired to the container's ports.
func New(c *app.Container) *Model {
	settings := domain.DefaultSettings()

	ni := textinput.New()
	ni.Placeholder = "Timer name"
	ni.CharLimit = domain.MaxCountdownNameLen

	di := textinput.New()
	di.Placeholder = "05:00"
	di.CharLimit = 8

	return &Model{
		settingsStore:  c.Settings,
		countdownStore: c.Countdowns,
		history:        c.History,
		alerter:        c.Alerter,
		logger:         c.Logger,
		scheduler:      sched.New(),
		watcher:        c.SettingsWatcher(),
		settings:       settings,
		pomodoro:       domain.NewPomodoro(settings.Pomodoro),
		stopwatch:      domain.NewStopwatch(),
		countdowns:     domain.NewCountdownList(),
		keys:           DefaultKeyMap(),
		styles:         DefaultStyles(),
		help:           help.New(),
		progress:       progress.New(progress.WithDefaultGradient()),
		nameInput:      ni,
		durInput:       di,
		now:            time.Now,
		mode:           ModeSelect,
		focused:        true,
	}
}

// Init initializes the model and returns the initial commands.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.loadSettings(),
		m.loadCountdowns(),
		m.waitForTick(),
	}
	if cmd := m.waitForSettingsChange(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// loadSettings returns a command that loads settings from the store.
func (m *Model) loadSettings() tea.Cmd {
	return func() tea.Msg {
		s, err := m.settingsStore.Load()
		if err != nil {
			// I/O trouble still yields usable defaults.
			s = domain.DefaultSettings()
		}
		return MsgSettingsLoaded{Settings: s}
	}
}

// loadCountdowns returns a command that loads the persisted countdown list.
func (m *Model) loadCountdowns() tea.Cmd {
	return func() tea.Msg {
		entries, err := m.countdownStore.Load()
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgCountdownsLoaded{Entries: entries}
	}
}

// saveCountdowns returns a command that persists the countdown list.
func (m *Model) saveCountdowns() tea.Cmd {
	entries := make([]domain.CountdownEntry, len(m.countdowns.Entries))
	copy(entries, m.countdowns.Entries)
	return func() tea.Msg {
		if err := m.countdownStore.Save(entries); err != nil {
			return MsgError{Err: err}
		}
		return nil
	}
}

// saveSettings returns a command that persists the settings.
func (m *Model) saveSettings() tea.Cmd {
	s := *m.settings
	return func() tea.Msg {
		if err := m.settingsStore.Save(&s); err != nil {
			return MsgError{Err: err}
		}
		return nil
	}
}

// recordSession returns a command that appends a finished session to the
// history store. Failures are logged, never surfaced: history is advisory.
func (m *Model) recordSession(sess domain.Session) tea.Cmd {
	return func() tea.Msg {
		if m.history == nil {
			return nil
		}
		if err := m.history.Record(sess); err != nil {
			m.logger.Warn("history", "record failed: "+err.Error())
		}
		return nil
	}
}

// waitForTick returns a command that blocks for the next scheduler tick.
// Re-armed after every MsgTick so exactly one reader pends on the channel.
func (m *Model) waitForTick() tea.Cmd {
	if m.scheduler == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-m.scheduler.Ticks():
			return MsgTick{}
		case <-m.scheduler.Done():
			return nil
		}
	}
}

// waitForSettingsChange returns a command that blocks for the next settings
// file change, or nil when watching is unavailable.
func (m *Model) waitForSettingsChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-m.watcher.Events(); !ok {
			return nil
		}
		return MsgSettingsChanged{}
	}
}

// startPump asks the scheduler for periodic ticks at the given interval.
func (m *Model) startPump(interval time.Duration) {
	if m.scheduler != nil {
		m.scheduler.Start(interval)
	}
	m.pumping = true
}

// stopPump suspends tick delivery. A tick already in flight is tolerated;
// the MsgTick handler checks pumping before acting.
func (m *Model) stopPump() {
	if !m.pumping {
		return
	}
	if m.scheduler != nil {
		m.scheduler.Stop()
	}
	m.pumping = false
}

// Shutdown releases the model's event sources. Called after the program
// loop has exited.
func (m *Model) Shutdown() {
	if m.scheduler != nil {
		m.scheduler.Quit()
	}
}

// fireAlert delivers an alert and surfaces it as an on-screen notice.
func (m *Model) fireAlert(message string) {
	m.notice = message
	if m.alerter != nil {
		m.alerter.Fire(m.settings.Alerts, message)
	}
}
