package shooter

import (
	"time"

	"github.com/vovakirdan/meteor-ascent/internal/core"
)

// DrawKind says what a draw command depicts.
type DrawKind int

const (
	DrawPlayer DrawKind = iota
	DrawMeteor
	DrawShot
	DrawBossShot
	DrawHeart
	DrawPortal
	DrawDrone
	DrawBoss
	DrawBossBeam
	DrawPulse
	DrawPlayerBeam
)

// DrawCommand is one thing for the renderer to draw. Fields that do not
// apply to a kind are left zero.
type DrawCommand struct {
	Kind     DrawKind
	Rect     core.Rect
	Rotation float64

	// Fraction is a health bar (bosses) or the time left of a timed
	// attack (beams), from 0 to 1.
	Fraction float64

	// Variant is the size class of a meteor or the kind of a boss.
	Variant int

	Frozen   bool
	Shielded bool

	// Blink marks the cosmetic off phase of a beam about to expire.
	Blink bool

	Text string
}

// EffectKind is a one-shot visual event.
type EffectKind int

const (
	EffectExplosion EffectKind = iota
	EffectBeamTrail
	EffectTeleport
)

// Effect is a visual event emitted by the simulation.
type Effect struct {
	Kind EffectKind
	Rect core.Rect
	At   time.Duration
}

func (k EffectKind) ttl() time.Duration {
	switch k {
	case EffectBeamTrail:
		return 50 * time.Millisecond
	case EffectTeleport:
		return 300 * time.Millisecond
	default:
		return 400 * time.Millisecond
	}
}

// Frame is everything the renderer needs for one tick.
type Frame struct {
	Commands []DrawCommand
	Effects  []Effect
	HUD      HUD
}

// HUD is the status line content.
type HUD struct {
	Score     int
	Level     int
	Health    int
	MaxHealth int
	Ammo      int
	MaxAmmo   int
	Reloading bool
	Ship      string
	Ability   AbilityKind
	Admin     bool

	Cooldown     time.Duration
	Window       time.Duration
	BeamCooldown time.Duration
	Shield       time.Duration
	Freeze       time.Duration

	Boss     string
	BossHP   float64
	Message  string
	Paused   bool
	GameOver bool
}

func (g *Game) emit(kind EffectKind, r core.Rect) {
	g.effects = append(g.effects, Effect{Kind: kind, Rect: r, At: g.clock.Now()})
}

func (g *Game) pruneEffects() {
	now := g.clock.Now()
	n := 0
	for _, e := range g.effects {
		if now-e.At < e.Kind.ttl() {
			g.effects[n] = e
			n++
		}
	}
	g.effects = g.effects[:n]
}

// HUD returns the status line content.
func (g *Game) HUD() HUD {
	s := g.Ship()
	h := HUD{
		Score:        g.score,
		Level:        g.level,
		Health:       g.health,
		MaxHealth:    g.maxHealth,
		Ammo:         g.ammo,
		MaxAmmo:      g.cfg.Ammo.Max,
		Reloading:    g.timers.Active(timerReload),
		Ship:         s.Name,
		Ability:      s.Ability,
		Admin:        g.adminBuff,
		Cooldown:     g.timers.Remaining(timerCooldown),
		Window:       g.timers.Remaining(timerWindow),
		BeamCooldown: g.timers.Remaining(timerBeamCooldown),
		Shield:       g.timers.Remaining(timerShield),
		Freeze:       g.timers.Remaining(timerFreeze),
		Message:      g.message,
		Paused:       g.paused,
		GameOver:     g.gameOver,
	}

	var hp, maxHP int
	for _, b := range g.bosses {
		cur, m := b.Health()
		hp += cur
		maxHP += m
	}
	if maxHP > 0 {
		h.Boss = g.bosses[0].Kind().String()
		h.BossHP = float64(hp) / float64(maxHP)
	}
	return h
}

// Frame builds the draw list for the current state, back to front.
func (g *Game) Frame() Frame {
	now := g.clock.Now()
	cmds := make([]DrawCommand, 0, len(g.meteors)+len(g.shots)+len(g.bossShots)+16)

	if beam, ok := g.beamRect(); ok {
		frac := float64(g.timers.Remaining(timerBeam)) / float64(g.cfg.Beam.Duration)
		cmds = append(cmds, DrawCommand{Kind: DrawPlayerBeam, Rect: beam, Fraction: frac})
	}

	for _, p := range g.hearts {
		cmds = append(cmds, DrawCommand{Kind: DrawHeart, Rect: p.Rect})
	}
	for _, p := range g.portals {
		cmds = append(cmds, DrawCommand{Kind: DrawPortal, Rect: p.Rect})
	}
	for _, m := range g.meteors {
		cmds = append(cmds, DrawCommand{
			Kind:     DrawMeteor,
			Rect:     m.Rect,
			Rotation: m.Rotation,
			Fraction: float64(m.HP) / float64(m.Class.HitPoints()),
			Variant:  int(m.Class),
			Frozen:   m.Frozen(now),
		})
	}

	for _, b := range g.bosses {
		frozen := b.Frozen(now)
		beams, left := b.Beams()
		for _, r := range beams {
			cmds = append(cmds, DrawCommand{
				Kind:     DrawBossBeam,
				Rect:     r,
				Fraction: left,
				Frozen:   frozen,
				Blink:    left < 0.2 && g.tick/4%2 == 0,
			})
		}
		if p, ok := b.(pulser); ok {
			if x, y, r, active := p.Pulse(); active {
				cmds = append(cmds, DrawCommand{
					Kind:   DrawPulse,
					Rect:   core.NewRect(x-r, y-r, 2*r, 2*r),
					Frozen: frozen,
				})
			}
		}
		hp, maxHP := b.Health()
		cmds = append(cmds, DrawCommand{
			Kind:     DrawBoss,
			Rect:     b.Rect(),
			Fraction: float64(hp) / float64(max(maxHP, 1)),
			Variant:  int(b.Kind()),
			Frozen:   frozen,
			Shielded: b.Shielded(),
		})
	}

	for _, d := range g.drones {
		cmds = append(cmds, DrawCommand{
			Kind:     DrawDrone,
			Rect:     d.Rect,
			Fraction: float64(d.HP) / droneHP,
			Frozen:   d.Frozen(now),
			Shielded: d.Shielded(),
		})
	}
	for _, s := range g.shots {
		cmds = append(cmds, DrawCommand{Kind: DrawShot, Rect: s.Rect, Rotation: s.Rotation})
	}
	for _, s := range g.bossShots {
		cmds = append(cmds, DrawCommand{Kind: DrawBossShot, Rect: s.Rect})
	}

	cmds = append(cmds, DrawCommand{
		Kind:     DrawPlayer,
		Rect:     g.player,
		Fraction: float64(g.health) / float64(max(g.maxHealth, 1)),
		Variant:  g.ship,
		Shielded: g.shieldActive(),
		Text:     g.Ship().Name,
	})

	effects := make([]Effect, len(g.effects))
	copy(effects, g.effects)
	return Frame{Commands: cmds, Effects: effects, HUD: g.HUD()}
}
