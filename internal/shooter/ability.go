package shooter

import (
	"math"
	"time"

	"github.com/vovakirdan/meteor-ascent/internal/core"
)

// ActivateAbility triggers the active ship's ability and reports whether
// anything happened.
//
// Admin ships have no cooldown. Their first activation grants a permanent
// buff (shield, speed, triple shot, infinite ammo) and raises health to the
// admin ceiling; later activations freeze every enemy or teleport, with even
// odds. Other ships are rejected while the shared cooldown runs and, on
// success, open the ability window and restart the cooldown.
func (g *Game) ActivateAbility() bool {
	s := g.Ship()
	if s.Admin() {
		return g.activateAdmin()
	}

	if !g.timers.Ready(timerCooldown) {
		g.log.Debug("ability on cooldown", "ship", s.Name, "remaining", g.timers.Remaining(timerCooldown))
		return false
	}

	ab := g.cfg.Abilities
	switch s.Ability {
	case AbilityFreeze:
		g.freezeAll(ab.Freeze)
	case AbilityShield:
		g.timers.Start(timerShield, ab.Shield)
	case AbilitySpeed:
		g.timers.Start(timerSpeed, ab.Speed)
	case AbilityTriple:
		g.timers.Start(timerTriple, ab.Triple)
	case AbilityBeam:
		if !g.startBeam() {
			return false
		}
	case AbilityTeleport:
		if !g.teleport() {
			return false
		}
	}

	g.timers.Start(timerWindow, ab.Window)
	g.timers.Start(timerCooldown, ab.Cooldown)
	g.log.Debug("ability activated", "ship", s.Name, "ability", s.Ability)
	return true
}

func (g *Game) activateAdmin() bool {
	if !g.adminBuff {
		g.adminBuff = true
		g.maxHealth = g.cfg.Player.AdminMaxHealth
		g.health = g.maxHealth
		g.ammo = g.cfg.Ammo.Max
		g.timers.Clear(timerReload)
		g.notify("admin systems online")
		return true
	}

	if g.rng.Float64() < g.cfg.Abilities.AdminFreezeChance {
		g.lastEffect = AbilityFreeze
		g.freezeAll(g.cfg.Abilities.AdminFreeze)
		return true
	}
	g.lastEffect = AbilityTeleport
	return g.teleport()
}

// LastAdminEffect returns the effect picked by the latest admin activation
// after the buff was granted.
func (g *Game) LastAdminEffect() AbilityKind {
	return g.lastEffect
}

// ActivateBeam starts the player beam. It is available to every ship and
// has its own cooldown.
func (g *Game) ActivateBeam() bool {
	if !g.timers.Ready(timerBeamCooldown) {
		return false
	}
	if !g.startBeam() {
		return false
	}
	g.timers.Start(timerBeamCooldown, g.cfg.Beam.Cooldown)
	return true
}

func (g *Game) startBeam() bool {
	if g.timers.Active(timerBeam) {
		return false
	}
	g.timers.Start(timerBeam, g.cfg.Beam.Duration)
	return true
}

// beamRect returns the player beam's hit area. It runs from the top of the
// field to the ship and narrows linearly to nothing over its duration.
func (g *Game) beamRect() (core.Rect, bool) {
	if !g.timers.Active(timerBeam) || g.cfg.Beam.Duration <= 0 {
		return core.Rect{}, false
	}
	frac := float64(g.timers.Remaining(timerBeam)) / float64(g.cfg.Beam.Duration)
	w := g.cfg.Beam.Width * frac
	if w <= 0 {
		return core.Rect{}, false
	}
	cx, _ := g.player.Center()
	return core.NewRect(cx-w/2, 0, w, g.player.Y), true
}

// freezeAll freezes every live meteor, boss and drone for d. Entities
// spawned afterwards are not affected.
func (g *Game) freezeAll(d time.Duration) {
	until := g.clock.Now() + d
	for _, m := range g.meteors {
		m.Freeze(until)
	}
	for _, b := range g.bosses {
		b.Freeze(until)
	}
	for _, dr := range g.drones {
		dr.Freeze(until)
	}
	g.timers.Start(timerFreeze, d)
	g.log.Debug("enemies frozen", "duration", d)
}

func (g *Game) thawAll() {
	for _, m := range g.meteors {
		m.Thaw()
	}
	for _, b := range g.bosses {
		b.Thaw()
	}
	for _, dr := range g.drones {
		dr.Thaw()
	}
	g.timers.Clear(timerFreeze)
}

// teleport moves the player to the free cell nearest to it. Cells are laid
// out on a fixed grid away from the top and bottom edges; a cell is free if
// no meteor, boss or drone overlaps it.
func (g *Game) teleport() bool {
	ab := g.cfg.Abilities
	cell := ab.TeleportCell
	if cell <= 0 {
		return false
	}

	px, py := g.player.Center()
	best := math.Inf(1)
	var target core.Rect
	found := false

	for y := ab.TeleportTop; y < g.field.H-ab.TeleportBottom; y += cell {
		for x := 0.0; x < g.field.W-cell; x += cell {
			r := core.NewRect(x, y, cell, cell)
			if g.occupied(r) {
				continue
			}
			cx, cy := r.Center()
			if d := core.Distance(px, py, cx, cy); d < best {
				best = d
				target = r
				found = true
			}
		}
	}

	if !found {
		g.log.Info("teleport failed", "reason", "no free cell")
		return false
	}

	from := g.player
	cx, cy := target.Center()
	g.player = g.player.CenteredAt(cx, cy).ClampInto(g.field)
	g.emit(EffectTeleport, from)
	g.emit(EffectTeleport, g.player)
	return true
}

func (g *Game) occupied(r core.Rect) bool {
	for _, m := range g.meteors {
		if m.Rect.Intersects(r) {
			return true
		}
	}
	for _, b := range g.bosses {
		if b.Rect().Intersects(r) {
			return true
		}
	}
	for _, d := range g.drones {
		if d.Rect.Intersects(r) {
			return true
		}
	}
	return false
}

// resetAbilities drops every running effect, the admin buff and both
// cooldowns.
func (g *Game) resetAbilities() {
	for _, name := range abilityTimers {
		g.timers.Clear(name)
	}
	g.adminBuff = false
	g.lastEffect = AbilityAdmin
}

func (g *Game) shieldActive() bool {
	return g.adminBuff || g.timers.Active(timerShield)
}

func (g *Game) speedActive() bool {
	return g.adminBuff || g.timers.Active(timerSpeed)
}

func (g *Game) tripleActive() bool {
	return g.adminBuff || g.timers.Active(timerTriple)
}
