package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/meteor-ascent/internal/shooter"
)

// HangarKeyMap defines the key bindings for the hangar.
type HangarKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Launch key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HangarKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Launch, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HangarKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultHangarKeyMap returns default key bindings.
func DefaultHangarKeyMap() HangarKeyMap {
	return HangarKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "prev ship"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "next ship"),
		),
		Launch: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "launch"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HangarModel is the Bubble Tea model for the ship picker.
type HangarModel struct {
	progress       shooter.Progress
	unlockScores   []int
	profile        string
	cursor         int
	width          int
	height         int
	keyMapper      *KeyMapper
	keys           HangarKeyMap
	help           help.Model
	notice         string
	quitting       bool
	selected       int  // 0-based slot, -1 until the user launches
	openScoreboard bool // True if user pressed Tab for scoreboard
}

// NewHangarModel creates a new hangar model.
func NewHangarModel(progress shooter.Progress, opts Options) HangarModel {
	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return HangarModel{
		progress:     progress,
		unlockScores: opts.Config.Ships.UnlockScores,
		profile:      opts.Profile,
		cursor:       opts.Ship,
		width:        opts.Runtime.ScreenW,
		height:       opts.Runtime.ScreenH,
		keyMapper:    NewKeyMapper(),
		keys:         DefaultHangarKeyMap(),
		help:         h,
		selected:     -1,
	}
}

// Init initializes the hangar model.
func (m HangarModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the hangar.
func (m HangarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for ship navigation.
func (m HangarModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Digits jump straight to a slot
	if slot := m.keyMapper.MapShipKey(msg); slot > 0 {
		m.cursor = slot - 1
		m.notice = ""
		return m, nil
	}

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
		m.notice = ""

	case MenuActionDown:
		if m.cursor < len(shooter.Ships)-1 {
			m.cursor++
		}
		m.notice = ""

	case MenuActionSelect:
		s := shooter.Ships[m.cursor]
		// Admin ships ask for their code in the game screen
		if !s.Admin() && !m.progress.Unlocked[m.cursor] {
			m.notice = fmt.Sprintf("%s unlocks at %s points", s.Name, humanize.Comma(int64(m.unlockScore(m.cursor))))
			return m, nil
		}
		m.selected = m.cursor

	case MenuActionScoreboard:
		m.openScoreboard = true
	}

	return m, nil
}

func (m HangarModel) unlockScore(slot int) int {
	if slot < len(m.unlockScores) {
		return m.unlockScores[slot]
	}
	return 0
}

var (
	hangarTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hangarCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hangarLockedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the hangar.
func (m HangarModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Title
	b.WriteString("\n")
	b.WriteString(centerText(hangarTitleStyle.Render("  M E T E O R   A S C E N T  "), m.width))
	b.WriteString("\n\n")

	// Pilot record
	record := fmt.Sprintf("pilot %s  |  best %s  |  level %d  |  last %s",
		m.profile,
		humanize.Comma(int64(m.progress.BestScore)),
		m.progress.BestLevel,
		humanize.Comma(int64(m.progress.LastScore)),
	)
	b.WriteString(centerText(record, m.width))
	b.WriteString("\n\n")

	// Ship list
	for i, s := range shooter.Ships {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%d  %-10s %-9s %s", cursor, i+1, s.Name, s.Ability, m.lockLabel(i))
		switch {
		case i == m.cursor:
			line = hangarCursorStyle.Render(line)
		case !m.progress.Unlocked[i]:
			line = hangarLockedStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(centerText(noticeStyle.Render(m.notice), m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m HangarModel) lockLabel(slot int) string {
	switch {
	case m.progress.Unlocked[slot]:
		return "ready"
	case shooter.Ships[slot].Admin():
		return "code"
	default:
		return humanize.Comma(int64(m.unlockScore(slot))) + " pts"
	}
}

// Selected returns the launched slot, or -1 if none.
func (m HangarModel) Selected() int {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m HangarModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m HangarModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
