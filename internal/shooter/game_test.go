package shooter

import (
	"testing"
	"time"

	"github.com/vovakirdan/meteor-ascent/internal/config"
	"github.com/vovakirdan/meteor-ascent/internal/core"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New(config.DefaultShooterConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40, TickRate: 60, Seed: 42})
	return g
}

func TestReset(t *testing.T) {
	g := newTestGame(t)
	state := g.State()

	if state.Score != 0 {
		t.Errorf("Score = %d, expected 0", state.Score)
	}
	if state.Level != 1 {
		t.Errorf("Level = %d, expected 1", state.Level)
	}
	if state.Health != 3 {
		t.Errorf("Health = %d, expected 3", state.Health)
	}
	if g.Ship().Name != "Falcon" {
		t.Errorf("Ship() = %s, expected Falcon", g.Ship().Name)
	}
	if rounds, reloading := g.Ammo(); rounds != 10 || reloading {
		t.Errorf("Ammo() = (%d, %v), expected (10, false)", rounds, reloading)
	}
}

func TestStepAdvancesClock(t *testing.T) {
	g := newTestGame(t)
	in := core.NewInputFrame()

	for i := 0; i < 60; i++ {
		g.Step(in)
	}
	if got, want := g.Now(), 60*(time.Second/60); got != want {
		t.Errorf("Now() = %v, expected %v", got, want)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("expected paused state after pause action")
	}

	before := g.Now()
	g.Step(core.NewInputFrame())
	if g.Now() != before {
		t.Error("clock advanced while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause action should resume")
	}
}

func TestPlayerMovementClamped(t *testing.T) {
	g := newTestGame(t)
	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Set(core.ActionDown)

	for i := 0; i < 200; i++ {
		g.movePlayer(in)
	}
	p := g.Player()
	if p.X != 0 {
		t.Errorf("player X = %v, expected 0", p.X)
	}
	if p.Bottom() != g.field.H {
		t.Errorf("player bottom = %v, expected %v", p.Bottom(), g.field.H)
	}
}

func TestGameOverRequestsSave(t *testing.T) {
	g := newTestGame(t)
	g.score = 1200
	g.health = 0

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("expected game over at zero health")
	}
	if !res.SaveRequested {
		t.Error("game over should request a save")
	}

	p := g.Progress()
	if p.BestScore < 1200 || p.LastScore < 1200 {
		t.Errorf("Progress() = %+v, expected best and last score of at least 1200", p)
	}

	// Further steps do nothing until restart.
	before := g.Now()
	g.Step(core.NewInputFrame())
	if g.Now() != before {
		t.Error("clock advanced after game over")
	}
}

func TestRestartClearsRun(t *testing.T) {
	g := newTestGame(t)
	g.meteors = append(g.meteors, NewMeteor(1, SizeSmall, 10, 10, 0, 3, 0))
	g.spawnEncounter(standardTier)
	g.score = 700
	g.health = 0
	g.Step(core.NewInputFrame())

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.State().GameOver {
		t.Error("restart should clear game over")
	}
	if len(g.Meteors()) != 0 || len(g.Bosses()) != 0 {
		t.Errorf("restart left %d meteors and %d bosses", len(g.Meteors()), len(g.Bosses()))
	}
	if g.State().Score != 0 || g.Now() != 0 {
		t.Errorf("restart left score %d at %v", g.State().Score, g.Now())
	}
	if g.Progress().BestScore != 700 {
		t.Errorf("BestScore = %d, expected 700 to survive restart", g.Progress().BestScore)
	}
}

func TestPeriodicSave(t *testing.T) {
	g := newTestGame(t)
	in := core.NewInputFrame()

	saves := 0
	ticks := int(65 * time.Second / g.dt)
	for i := 0; i < ticks; i++ {
		// Keep the player alive and out of the way.
		g.health = g.maxHealth
		if g.Step(in).SaveRequested {
			saves++
		}
	}
	if saves < 2 {
		t.Errorf("got %d periodic saves in 65s, expected at least 2", saves)
	}
}

func TestDeterministicRuns(t *testing.T) {
	run := func(seed int64) uint64 {
		g := New(config.DefaultShooterConfig())
		g.Reset(core.RuntimeConfig{TickRate: 60, Seed: seed})
		for i := 0; i < 900; i++ {
			in := core.NewInputFrame()
			if i%8 == 0 {
				in.Set(core.ActionFire)
			}
			if i/60%2 == 0 {
				in.Set(core.ActionLeft)
			} else {
				in.Set(core.ActionRight)
			}
			g.Step(in)
		}
		h, err := g.Snapshot().Hash()
		if err != nil {
			t.Fatalf("Hash() error = %v", err)
		}
		return h
	}

	if a, b := run(7), run(7); a != b {
		t.Errorf("same seed produced different hashes: %x != %x", a, b)
	}
}

func TestFrameIncludesEntities(t *testing.T) {
	g := newTestGame(t)
	g.meteors = append(g.meteors, NewMeteor(1, SizeLarge, 10, 10, 0, 3, 0))
	g.spawnEncounter(standardTier)

	counts := make(map[DrawKind]int)
	for _, c := range g.Frame().Commands {
		counts[c.Kind]++
	}
	expected := map[DrawKind]int{DrawPlayer: 1, DrawMeteor: 1, DrawBoss: 1}
	for kind, n := range expected {
		if counts[kind] != n {
			t.Errorf("Frame() has %d commands of kind %d, expected %d", counts[kind], kind, n)
		}
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t)
	g.meteors = append(g.meteors, NewMeteor(1, SizeHuge, 150, 200, 0, 3, 0))
	screen := core.NewScreen(60, 30)

	g.Render(screen)

	if screen.Get(0, 2) != '┌' {
		t.Errorf("expected field border at (0, 2), got %q", screen.Get(0, 2))
	}
	found := false
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if screen.Get(x, y) == '@' {
				found = true
			}
		}
	}
	if !found {
		t.Error("huge meteor was not rasterized")
	}
}
