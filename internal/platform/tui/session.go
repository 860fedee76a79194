package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/meteor-ascent/internal/shooter"
)

type sessionScreen int

const (
	screenHangar sessionScreen = iota
	screenGame
	screenScoreboard
)

// SessionModel manages the full session flow: hangar -> game -> hangar,
// with the scoreboard reachable from the hangar. It is the top-level model
// for local play and for every SSH session.
type SessionModel struct {
	opts     Options
	progress shooter.Progress
	screen   sessionScreen
	hangar   HangarModel
	game     *GameModel
	board    *ScoreboardModel
	quitting bool
}

// NewSessionModel creates a new session model, loading the profile's
// progress record.
func NewSessionModel(opts Options) SessionModel {
	opts = opts.withDefaults()

	progress, err := LoadProgress(opts.Store, opts.Profile)
	if err != nil {
		opts.Logger.Warn("could not load progress, using defaults", "profile", opts.Profile, "error", err)
	}

	return SessionModel{
		opts:     opts,
		progress: progress,
		hangar:   NewHangarModel(progress, opts),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.hangar.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		logSaved(m.opts.Logger, msg)
		return m, nil
	case tea.WindowSizeMsg:
		// Handle window resize globally
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateHangar(msg)
	}
}

// updateHangar handles updates when in the hangar.
func (m SessionModel) updateHangar(msg tea.Msg) (tea.Model, tea.Cmd) {
	newHangar, cmd := m.hangar.Update(msg)
	if hangar, ok := newHangar.(HangarModel); ok {
		m.hangar = hangar
	}

	switch {
	case m.hangar.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.hangar.WantsScoreboard():
		board := NewScoreboardModel(m.opts)
		m.board = &board
		m.screen = screenScoreboard
		return m, m.board.Init()

	case m.hangar.Selected() >= 0:
		opts := m.opts
		opts.Ship = m.hangar.Selected()
		m.opts.Ship = opts.Ship

		game := NewGameModel(opts, m.progress)
		m.game = &game
		m.screen = screenGame
		m.opts.Logger.Info("run started", "profile", opts.Profile, "ship", shooter.Ships[opts.Ship].Name)
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if game, ok := newModel.(GameModel); ok {
		m.game = &game
	}

	// The quit command carries the final save
	if m.game.IsQuitting() {
		m.quitting = true
		return m, cmd
	}

	if m.game.BackToHangar() {
		m.progress = m.game.Progress()
		m.game = nil
		m.screen = screenHangar
		m.hangar = NewHangarModel(m.progress, m.opts)
		return m, tea.Batch(cmd, m.hangar.Init())
	}

	return m, cmd
}

// updateScoreboard handles updates when showing scores.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.board.Update(msg)
	if board, ok := newBoard.(ScoreboardModel); ok {
		m.board = &board
	}

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.board.IsGoingBack() {
		m.board = nil
		m.screen = screenHangar
		m.hangar = NewHangarModel(m.progress, m.opts)
		return m, m.hangar.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScoreboard:
		return m.board.View()
	default:
		return m.hangar.View()
	}
}

// Run starts a local session on the current terminal.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
