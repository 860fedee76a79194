// Package shooter implements Meteor Ascent: a vertical arcade shooter in
// which the player climbs levels through meteor showers and boss encounters.
//
// The package is pure simulation. A Game is advanced one fixed tick at a
// time with Step, emits a Frame of draw commands, and leaves rendering,
// input mapping and persistence to the platform.
package shooter

import (
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/meteor-ascent/internal/config"
	"github.com/vovakirdan/meteor-ascent/internal/core"
	"github.com/vovakirdan/meteor-ascent/internal/timing"
)

// Timer names in the game's registry.
const (
	timerCooldown     timing.Name = "ability.cooldown"
	timerWindow       timing.Name = "ability.window"
	timerShield       timing.Name = "ability.shield"
	timerSpeed        timing.Name = "ability.speed"
	timerTriple       timing.Name = "ability.triple"
	timerFreeze       timing.Name = "ability.freeze"
	timerBeam         timing.Name = "beam"
	timerBeamCooldown timing.Name = "beam.cooldown"
	timerReload       timing.Name = "ammo.reload"
	timerRegen        timing.Name = "ammo.regen"
	timerHeart        timing.Name = "spawn.heart"
	timerPortal       timing.Name = "spawn.portal"
	timerSave         timing.Name = "save"
	timerMessage      timing.Name = "message"
)

var abilityTimers = []timing.Name{
	timerCooldown, timerWindow, timerShield, timerSpeed, timerTriple,
	timerFreeze, timerBeam, timerBeamCooldown,
}

const messageDuration = 2 * time.Second

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. By default the game logs nowhere.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithProgress seeds the game with a loaded progress record.
func WithProgress(p Progress) Option {
	return func(g *Game) {
		g.progress = DefaultProgress().Merge(p)
	}
}

// Game owns every store and timer of a run. Nothing is shared between
// games, so several can run side by side (one per SSH session).
type Game struct {
	cfg        config.ShooterConfig
	runtime    core.RuntimeConfig
	log        *log.Logger
	rng        *rand.Rand
	clock      *timing.Clock
	timers     *timing.Timers
	difficulty *config.DifficultyManager
	dt         time.Duration
	field      core.Rect
	nextID     uint64
	tick       uint64

	// Player
	player     core.Rect
	ship       int
	health     int
	maxHealth  int
	ammo       int
	adminBuff  bool
	lastEffect AbilityKind

	// Run state
	score     int
	level     int
	levelUps  int
	gameOver  bool
	paused    bool
	encounter int
	defeated  map[int]bool

	// Entity stores
	meteors   []*Meteor
	pending   []*Meteor
	shots     []*PlayerShot
	bossShots []*BossShot
	hearts    []*Pickup
	portals   []*Pickup
	drones    []*Drone
	bosses    []Boss

	effects []Effect
	message string

	progress      Progress
	saveRequested bool
}

// New creates a game with the given configuration. Call Reset before the
// first Step.
func New(cfg config.ShooterConfig, opts ...Option) *Game {
	g := &Game{
		cfg:      cfg,
		log:      log.New(io.Discard),
		progress: DefaultProgress(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.clock = timing.NewClock(0)
	g.timers = timing.NewTimers(g.clock)
	g.difficulty = config.NewDifficultyManager(cfg.Progression)
	g.field = core.NewRect(0, 0, cfg.Field.Width, cfg.Field.Height)
	return g
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "ascent"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Meteor Ascent"
}

// Reset starts a fresh run on the first ship. Progress survives.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.dt = timing.TickDuration(runtime.TickRate)
	g.clock.Reset()
	g.timers.Reset()
	g.nextID = 0
	g.tick = 0

	g.player = core.NewRect(g.cfg.Player.X, g.cfg.Player.Y, g.cfg.Player.Width, g.cfg.Player.Height)
	g.ship = 0
	g.maxHealth = g.cfg.Player.MaxHealth
	g.health = min(g.cfg.Player.StartHealth, g.maxHealth)
	g.ammo = g.cfg.Ammo.Max
	g.adminBuff = false
	g.lastEffect = AbilityAdmin

	g.score = 0
	g.level = 1
	g.levelUps = 0
	g.gameOver = false
	g.paused = false
	g.encounter = 0
	g.defeated = make(map[int]bool)

	g.meteors = nil
	g.pending = nil
	g.shots = nil
	g.bossShots = nil
	g.hearts = nil
	g.portals = nil
	g.drones = nil
	g.bosses = nil
	g.effects = nil
	g.message = ""
}

// Restart records the current run and starts over.
func (g *Game) Restart() {
	if !g.gameOver {
		g.recordRun()
	}
	g.saveRequested = true
	g.Reset(g.runtime)
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && g.gameOver {
		g.Restart()
		return g.result()
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused || g.gameOver {
		return g.result()
	}

	// Ship selection
	if in.SelectShip > 0 {
		if err := g.SwitchShip(in.SelectShip-1, false); err != nil {
			g.notify(err.Error())
		}
	}

	g.clock.Advance(g.dt)
	g.tick++

	if g.timers.Expired(timerMessage) {
		g.message = ""
	}
	g.updateAmmo()

	// Player intents
	g.movePlayer(in)
	if in.Has(core.ActionFire) {
		g.Fire()
	}
	if in.Has(core.ActionAbility) {
		g.ActivateAbility()
	}
	if in.Has(core.ActionBeam) {
		g.ActivateBeam()
	}

	g.spawnMeteors()
	g.spawnPickups()

	g.moveEntities()
	g.resolveCollisions()
	g.flushPending()

	g.updateLevel()
	if g.health <= 0 {
		g.endRun()
	}

	if g.timers.Every(timerSave, g.cfg.Persistence.SaveInterval) {
		g.saveRequested = true
	}
	g.pruneEffects()

	return g.result()
}

func (g *Game) result() core.StepResult {
	res := core.StepResult{
		State:         g.State(),
		SaveRequested: g.saveRequested,
		Message:       g.message,
	}
	g.saveRequested = false
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		Health:   g.health,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

func (g *Game) movePlayer(in core.InputFrame) {
	speed := g.cfg.Player.Speed
	if g.speedActive() {
		speed *= g.cfg.Player.BoostMultiplier
	}

	var dx, dy float64
	if in.Has(core.ActionLeft) {
		dx -= speed
	}
	if in.Has(core.ActionRight) {
		dx += speed
	}
	if in.Has(core.ActionUp) {
		dy -= speed
	}
	if in.Has(core.ActionDown) {
		dy += speed
	}
	g.player = g.player.Translate(dx, dy).ClampInto(g.field)
}

// moveEntities advances every store by one tick and retires whatever left
// the field. Frozen entities are skipped here and nowhere else.
func (g *Game) moveEntities() {
	now := g.clock.Now()

	a := &arena{
		now:    now,
		dt:     g.dt,
		field:  g.field,
		player: g.player,
		rng:    g.rng,
		cfg:    &g.cfg,
		drones: len(g.drones),
		nextID: g.newID,
	}
	for _, b := range g.bosses {
		if b.Frozen(now) {
			continue
		}
		b.Update(a)
		b.TryAttack(a)
	}
	g.bossShots = append(g.bossShots, a.shots...)
	g.bosses = append(g.bosses, a.bosses...)
	g.drones = append(g.drones, a.spawn...)

	for _, m := range g.meteors {
		if !m.Frozen(now) {
			m.update(g.field.W)
		}
	}
	for _, d := range g.drones {
		if !d.Frozen(now) {
			d.update(g.dt, g.player, g.field)
		}
	}
	for _, s := range g.shots {
		s.update()
	}
	for _, s := range g.bossShots {
		s.update()
	}
	for _, p := range g.hearts {
		p.update()
	}
	for _, p := range g.portals {
		p.update()
	}

	h := g.field.H
	g.meteors = slices.DeleteFunc(g.meteors, func(m *Meteor) bool { return m.Rect.Y > h })
	g.shots = slices.DeleteFunc(g.shots, func(s *PlayerShot) bool { return s.Rect.Bottom() < 0 })
	g.bossShots = slices.DeleteFunc(g.bossShots, func(s *BossShot) bool { return !s.Rect.Intersects(g.field) })
	g.hearts = slices.DeleteFunc(g.hearts, func(p *Pickup) bool { return p.Rect.Y > h })
	g.portals = slices.DeleteFunc(g.portals, func(p *Pickup) bool { return p.Rect.Y > h })
}

// endRun is the game-over edge.
func (g *Game) endRun() {
	g.gameOver = true
	g.recordRun()
	g.log.Info("game over", "score", g.score, "level", g.level, "ship", g.Ship().Name)
}

// recordRun folds the run into the progress record and asks for a save.
func (g *Game) recordRun() {
	g.checkUnlocks()
	g.progress = g.Progress()
	g.progress.LastScore = g.score
	g.saveRequested = true
}

// Progress returns the progress record including the current run.
func (g *Game) Progress() Progress {
	p := g.progress
	p.BestScore = max(p.BestScore, g.score)
	p.BestLevel = max(p.BestLevel, g.level)
	return p
}

// RequestSave asks the platform to persist progress after the next step.
func (g *Game) RequestSave() {
	g.saveRequested = true
}

// Now returns the simulation time of the run.
func (g *Game) Now() time.Duration {
	return g.clock.Now()
}

// Player returns the player's hitbox.
func (g *Game) Player() core.Rect {
	return g.player
}

// Bosses returns the live bosses.
func (g *Game) Bosses() []Boss {
	return g.bosses
}

// Meteors returns the live meteors.
func (g *Game) Meteors() []*Meteor {
	return g.meteors
}

// Drones returns the live drones.
func (g *Game) Drones() []*Drone {
	return g.drones
}

// Encounter returns the tier of the running boss encounter, 0 if none.
func (g *Game) Encounter() int {
	return g.encounter
}

func (g *Game) newID() uint64 {
	g.nextID++
	return g.nextID
}

func (g *Game) notify(msg string) {
	g.message = msg
	g.timers.Start(timerMessage, messageDuration)
}
