package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/meteor-ascent/internal/config"
	"github.com/vovakirdan/meteor-ascent/internal/core"
	"github.com/vovakirdan/meteor-ascent/internal/shooter"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testOptions() Options {
	return Options{
		Config:  config.DefaultShooterConfig(),
		Profile: "tester",
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: 7},
	}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{runeKey('w'), core.ActionUp, false},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{runeKey('a'), core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{runeKey('e'), core.ActionAbility, false},
		{runeKey('l'), core.ActionBeam, false},
		{runeKey('p'), core.ActionPause, false},
		{runeKey('r'), core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{runeKey('q'), core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		got, isQuit := km.MapKey(tt.msg)
		if got != tt.want || isQuit != tt.isQuit {
			t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tt.msg.String(), got, isQuit, tt.want, tt.isQuit)
		}
	}
}

func TestMapShipKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want int
	}{
		{runeKey('1'), 1},
		{runeKey('6'), 6},
		{runeKey('9'), 9},
		{runeKey('0'), 0},
		{runeKey('x'), 0},
		{tea.KeyMsg{Type: tea.KeyEnter}, 0},
	}

	for _, tt := range tests {
		if got := km.MapShipKey(tt.msg); got != tt.want {
			t.Errorf("MapShipKey(%q) = %d, expected %d", tt.msg.String(), got, tt.want)
		}
	}
}

func TestVerifyAdminCode(t *testing.T) {
	codes := map[int]string{7: "alpha", 8: ""}

	tests := []struct {
		name  string
		slot  int
		input string
		want  bool
	}{
		{"match", 7, "alpha", true},
		{"wrong", 7, "alphA", false},
		{"prefix", 7, "alp", false},
		{"empty code configured", 8, "", false},
		{"no code configured", 9, "alpha", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := verifyAdminCode(codes, tt.slot, tt.input); got != tt.want {
				t.Errorf("verifyAdminCode(%d, %q) = %v, expected %v", tt.slot, tt.input, got, tt.want)
			}
		})
	}
}

func typeText(m GameModel, text string) GameModel {
	for _, r := range text {
		next, _ := m.Update(runeKey(r))
		m = next.(GameModel)
	}
	return m
}

func TestGameModelAdminPrompt(t *testing.T) {
	opts := testOptions()
	m := NewGameModel(opts, shooter.DefaultProgress())

	next, _ := m.Update(runeKey('7'))
	m = next.(GameModel)
	if m.promptSlot != 7 {
		t.Fatalf("promptSlot = %d, expected 7", m.promptSlot)
	}

	// The simulation waits while the prompt is open
	before := m.game.Now()
	next, _ = m.Update(TickMsg(time.Now()))
	m = next.(GameModel)
	if m.game.Now() != before {
		t.Error("game should not advance while the prompt is open")
	}

	m = typeText(m, opts.Config.Admin.Codes[7])
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(GameModel)

	if m.promptSlot != 0 {
		t.Error("prompt should close after enter")
	}
	if got := m.game.Ship().Name; got != "Admin I" {
		t.Errorf("Ship() = %s, expected Admin I", got)
	}
	if !m.Progress().Unlocked[6] {
		t.Error("admin ship should be unlocked in progress")
	}

	// Unlocked admin ships switch without the prompt
	next, _ = m.Update(runeKey('1'))
	m = next.(GameModel)
	next, _ = m.Update(runeKey('7'))
	m = next.(GameModel)
	if m.promptSlot != 0 {
		t.Error("unlocked admin ship should not prompt again")
	}
}

func TestGameModelWrongAdminCode(t *testing.T) {
	m := NewGameModel(testOptions(), shooter.DefaultProgress())

	next, _ := m.Update(runeKey('8'))
	m = next.(GameModel)
	m = typeText(m, "guess")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(GameModel)

	if got := m.game.Ship().Name; got != "Falcon" {
		t.Errorf("Ship() = %s, expected Falcon", got)
	}
	if m.notice != "wrong code" {
		t.Errorf("notice = %q, expected wrong code", m.notice)
	}
	if m.Progress().Unlocked[7] {
		t.Error("wrong code must not unlock the ship")
	}
}

func TestGameModelHeldMovement(t *testing.T) {
	m := NewGameModel(testOptions(), shooter.DefaultProgress())
	startX := m.game.Player().X

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(GameModel)

	next, _ = m.Update(TickMsg(time.Now()))
	m = next.(GameModel)
	moved := m.game.Player().X
	if moved <= startX {
		t.Fatalf("Player().X = %v, expected more than %v", moved, startX)
	}

	// Past the hold window the ship stops
	next, _ = m.Update(TickMsg(time.Now().Add(time.Second)))
	m = next.(GameModel)
	if got := m.game.Player().X; got != moved {
		t.Errorf("Player().X = %v after release, expected %v", got, moved)
	}
}

func TestGameModelView(t *testing.T) {
	m := NewGameModel(testOptions(), shooter.DefaultProgress())
	next, _ := m.Update(TickMsg(time.Now()))
	m = next.(GameModel)

	view := m.View()
	if lines := strings.Count(view, "\n") + 1; lines != 30 {
		t.Errorf("View() has %d lines, expected 30", lines)
	}
	if !strings.Contains(view, "fire") {
		t.Error("View() should end with the key help")
	}
}

func TestHangarLockedShip(t *testing.T) {
	h := NewHangarModel(shooter.DefaultProgress(), testOptions())

	next, _ := h.Update(runeKey('2'))
	h = next.(HangarModel)
	next, _ = h.Update(tea.KeyMsg{Type: tea.KeyEnter})
	h = next.(HangarModel)

	if h.Selected() != -1 {
		t.Errorf("Selected() = %d, expected -1 for a locked ship", h.Selected())
	}
	if !strings.Contains(h.notice, "1,500") {
		t.Errorf("notice = %q, expected the unlock score", h.notice)
	}

	// Admin ships launch and ask for the code in game
	next, _ = h.Update(runeKey('9'))
	h = next.(HangarModel)
	next, _ = h.Update(tea.KeyMsg{Type: tea.KeyEnter})
	h = next.(HangarModel)
	if h.Selected() != 8 {
		t.Errorf("Selected() = %d, expected 8", h.Selected())
	}
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel(testOptions())

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	// Launch the first ship
	step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame {
		t.Fatalf("screen = %v, expected game", s.screen)
	}

	// Pause, then back to the hangar
	step(runeKey('p'))
	step(TickMsg(time.Now()))
	step(runeKey('b'))
	if s.screen != screenHangar {
		t.Fatalf("screen = %v, expected hangar", s.screen)
	}

	// Scoreboard and back
	step(tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenScoreboard {
		t.Fatalf("screen = %v, expected scoreboard", s.screen)
	}
	if !strings.Contains(s.View(), "No runs recorded yet") {
		t.Error("scoreboard without storage should be empty")
	}
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenHangar {
		t.Errorf("screen = %v, expected hangar", s.screen)
	}

	step(runeKey('q'))
	if !s.quitting {
		t.Error("q in the hangar should quit")
	}
}

func TestRenderScreenKeepsLayout(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "plain", core.ColorDefault)
	s.DrawText(2, 1, "red", core.ColorRed)
	s.DrawText(6, 1, "hot", core.ColorBrightYellow)
	s.SetColor(11, 2, '@', core.ColorPurple)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("RenderScreen() has %d lines, expected 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 12 {
			t.Errorf("line %d width = %d, expected 12", i, w)
		}
	}
	if !strings.HasPrefix(lines[0], "plain") {
		t.Errorf("default colored text should be unstyled, got %q", lines[0])
	}
}
