package tui

import (
	"crypto/subtle"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/meteor-ascent/internal/config"
	"github.com/vovakirdan/meteor-ascent/internal/core"
	"github.com/vovakirdan/meteor-ascent/internal/logging"
	"github.com/vovakirdan/meteor-ascent/internal/shooter"
	"github.com/vovakirdan/meteor-ascent/internal/storage"
)

const (
	holdWindow     = 150 * time.Millisecond
	noticeDuration = 2 * time.Second
)

// Options are the collaborators shared by every screen of a session.
type Options struct {
	Store   *storage.Store // may be nil, nothing is persisted then
	Config  config.ShooterConfig
	Logger  *log.Logger
	Profile string
	Runtime core.RuntimeConfig

	// Ship is the 0-based slot the run starts with.
	Ship int
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	if o.Profile == "" {
		o.Profile = storage.DefaultProfile
	}
	if o.Runtime.TickRate <= 0 {
		o.Runtime.TickRate = 60
	}
	if o.Runtime.Seed == 0 {
		o.Runtime.Seed = time.Now().UnixNano()
	}
	return o
}

// GameModel is the Bubble Tea model for one game screen.
type GameModel struct {
	game       *shooter.Game
	screen     *core.Screen
	opts       Options
	keyMapper  *KeyMapper
	keys       GameKeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState

	// held records when each move key was last reported.
	held map[core.Action]time.Time

	// Admin code prompt, open while promptSlot > 0
	prompt     textinput.Model
	promptSlot int

	notice      string
	noticeUntil time.Time

	quitting     bool
	backToHangar bool
	scoreSaved   bool // Whether score has been saved for current game over
}

// NewGameModel creates a game screen seeded with the player's progress.
func NewGameModel(opts Options, progress shooter.Progress) GameModel {
	opts = opts.withDefaults()

	game := shooter.New(opts.Config,
		shooter.WithLogger(opts.Logger),
		shooter.WithProgress(progress),
	)
	game.Reset(opts.Runtime)

	ti := textinput.New()
	ti.Placeholder = "code"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '*'
	ti.CharLimit = 32
	ti.Width = 20

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 1)),
		opts:       opts,
		keyMapper:  NewKeyMapper(),
		keys:       DefaultGameKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		held:       make(map[core.Action]time.Time),
		prompt:     ti,
	}

	// Starting ship, applied on the first tick
	if opts.Ship > 0 {
		m.selectShip(opts.Ship + 1)
	}
	m.gameState = game.State()

	return m
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.promptSlot > 0 {
		return m.handlePromptKey(msg)
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// Ship selection
	if slot := m.keyMapper.MapShipKey(msg); slot > 0 {
		m.selectShip(slot)
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Sequence(m.saveCmd(), tea.Quit)
	}

	switch {
	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToHangar = true
			return m, m.saveCmd()
		}
		// Esc doubles as pause while playing
		m.inputFrame.Set(core.ActionPause)
	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case isMove(action):
		m.held[action] = time.Now()
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handlePromptKey routes keys to the admin code prompt.
func (m GameModel) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Sequence(m.saveCmd(), tea.Quit)
	case tea.KeyEsc:
		m.closePrompt()
		return m, nil
	case tea.KeyEnter:
		slot, code := m.promptSlot, m.prompt.Value()
		m.closePrompt()

		if !verifyAdminCode(m.opts.Config.Admin.Codes, slot, code) {
			m.opts.Logger.Warn("admin code rejected", "profile", m.opts.Profile, "slot", slot)
			m.setNotice("wrong code")
			return m, nil
		}
		if err := m.game.SwitchShip(slot-1, true); err != nil {
			m.setNotice(err.Error())
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// selectShip queues a ship switch, or opens the code prompt for an admin
// ship this profile has not unlocked yet.
func (m *GameModel) selectShip(slot int) {
	s, err := shooter.ShipAt(slot - 1)
	if err != nil {
		m.setNotice(err.Error())
		return
	}
	if s.Admin() && !m.game.Progress().Unlocked[slot-1] {
		m.promptSlot = slot
		m.prompt.Reset()
		m.prompt.Focus()
		return
	}
	m.inputFrame.SelectShip = slot
}

func (m *GameModel) closePrompt() {
	m.promptSlot = 0
	m.prompt.Reset()
	m.prompt.Blur()
}

func (m *GameModel) setNotice(msg string) {
	m.notice = msg
	m.noticeUntil = time.Now().Add(noticeDuration)
}

// verifyAdminCode checks a code against the configured one for a 1-based
// slot.
func verifyAdminCode(codes map[int]string, slot int, input string) bool {
	want, ok := codes[slot]
	if !ok || want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(input), []byte(want)) == 1
}

// handleResize processes window resize events. The field is logical, so
// the run continues at the new size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	// The simulation waits while the code prompt is open
	if m.promptSlot > 0 {
		return m, tickCmd(m.opts.Runtime.TickRate)
	}

	// Held movement
	for a, at := range m.held {
		if now.Sub(at) < holdWindow {
			m.inputFrame.Set(a)
		} else {
			delete(m.held, a)
		}
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	cmds := []tea.Cmd{tickCmd(m.opts.Runtime.TickRate)}

	if result.SaveRequested {
		cmds = append(cmds, m.saveCmd())
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.scoreSaved = true
		if m.gameState.Score > 0 {
			cmds = append(cmds, saveScoreCmd(m.opts.Store, storage.ScoreEntry{
				Profile: m.opts.Profile,
				Score:   m.gameState.Score,
				Level:   m.gameState.Level,
				Ship:    m.game.Ship().Name,
			}))
		}
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	return m, tea.Batch(cmds...)
}

func (m GameModel) saveCmd() tea.Cmd {
	return saveProgressCmd(m.opts.Store, m.opts.Profile, m.game.Progress())
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".ascent", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "error", err)
		return
	}
	m.setNotice("screenshot saved")
}

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the field and a bottom line with the prompt, a notice or
// the key help.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var bottom string
	switch {
	case m.promptSlot > 0:
		name := shooter.Ships[m.promptSlot-1].Name
		bottom = promptStyle.Render(fmt.Sprintf("Code for %s: ", name)) + m.prompt.View()
	case m.notice != "" && time.Now().Before(m.noticeUntil):
		bottom = noticeStyle.Render(m.notice)
	default:
		bottom = helpStyle.Render(m.help.View(m.keys))
	}

	return RenderScreen(m.screen) + "\n" + bottom
}

// Progress returns the record including the current run.
func (m GameModel) Progress() shooter.Progress {
	return m.game.Progress()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToHangar returns true if user requested to go back to the hangar.
func (m GameModel) BackToHangar() bool {
	return m.backToHangar
}
