package shooter

import "slices"

// resolveCollisions runs every pairing once, after all movement, in a fixed
// order. Anything destroyed is removed on the spot, so later pairings in the
// same pass never see it.
func (g *Game) resolveCollisions() {
	g.collideDrones()
	g.collideBossAttacks()
	g.collideMeteors()
	g.collideHearts()
	g.collidePortals()
	g.collidePlayerShots()
	g.collidePlayerBeam()
	g.collideBossShots()
	g.settleEncounter()
}

// hurt applies damage to the player, or turns it into reward while the
// shield is up.
func (g *Game) hurt(damage, reward int) {
	if g.shieldActive() {
		g.score += reward
		return
	}
	g.health = max(0, g.health-damage)
}

func (g *Game) collideDrones() {
	g.drones = slices.DeleteFunc(g.drones, func(d *Drone) bool {
		if !d.Rect.Intersects(g.player) {
			return false
		}
		g.hurt(g.cfg.Damage.Contact, g.cfg.Scoring.ShieldDrone)
		g.emit(EffectExplosion, d.Rect)
		return true
	})
}

// collideBossAttacks tests beams and the pulse. A frozen boss's attacks are
// paused with it and do not hit.
func (g *Game) collideBossAttacks() {
	now := g.clock.Now()
	for _, b := range g.bosses {
		if b.Frozen(now) {
			continue
		}
		if dmg, hit := b.BeamHitTest(g.player); hit {
			g.hurt(dmg, g.cfg.Scoring.ShieldBeam)
		}
		if p, ok := b.(pulser); ok {
			if dmg, hit := p.PulseHitTest(g.player); hit {
				g.hurt(dmg, g.cfg.Scoring.ShieldBeam)
			}
		}
	}
}

func (g *Game) collideMeteors() {
	g.meteors = slices.DeleteFunc(g.meteors, func(m *Meteor) bool {
		if !m.Rect.Intersects(g.player) {
			return false
		}
		g.hurt(g.cfg.Damage.Contact, g.cfg.Scoring.ShieldMeteor)
		g.emit(EffectExplosion, m.Rect)
		return true
	})
}

func (g *Game) collideHearts() {
	g.hearts = slices.DeleteFunc(g.hearts, func(p *Pickup) bool {
		return p.Rect.Intersects(g.player) && g.collectHeart()
	})
}

// collidePortals removes the touched portals before collecting them, since
// collecting may start an encounter that clears the portal store.
func (g *Game) collidePortals() {
	var taken int
	g.portals = slices.DeleteFunc(g.portals, func(p *Pickup) bool {
		if !p.Rect.Intersects(g.player) {
			return false
		}
		taken++
		return true
	})
	for i := 0; i < taken; i++ {
		g.collectPortal()
	}
}

// collidePlayerShots lets each shot hit the first meteor, boss or drone it
// overlaps, in that order. The shot is spent even on a shielded target.
func (g *Game) collidePlayerShots() {
	g.shots = slices.DeleteFunc(g.shots, func(s *PlayerShot) bool {
		return g.shotHitsMeteor(s) || g.shotHitsBoss(s) || g.shotHitsDrone(s)
	})
}

func (g *Game) shotHitsMeteor(s *PlayerShot) bool {
	i := slices.IndexFunc(g.meteors, func(m *Meteor) bool { return m.Rect.Intersects(s.Rect) })
	if i < 0 {
		return false
	}
	m := g.meteors[i]
	if m.HP > 1 {
		m.HP--
		g.score += g.cfg.Scoring.MeteorHit
		return true
	}
	g.destroyMeteor(m)
	g.meteors = slices.Delete(g.meteors, i, i+1)
	return true
}

func (g *Game) shotHitsBoss(s *PlayerShot) bool {
	i := slices.IndexFunc(g.bosses, func(b Boss) bool { return b.Rect().Intersects(s.Rect) })
	if i < 0 {
		return false
	}
	b := g.bosses[i]
	if b.TakeDamage(g.cfg.Bosses.ProjectileDamage) {
		g.onBossDefeated(b)
		g.bosses = slices.Delete(g.bosses, i, i+1)
	}
	return true
}

func (g *Game) shotHitsDrone(s *PlayerShot) bool {
	i := slices.IndexFunc(g.drones, func(d *Drone) bool { return d.Rect.Intersects(s.Rect) })
	if i < 0 {
		return false
	}
	d := g.drones[i]
	if d.TakeDamage(1) {
		g.score += g.cfg.Scoring.DroneDefeat
		g.emit(EffectExplosion, d.Rect)
		g.drones = slices.Delete(g.drones, i, i+1)
	}
	return true
}

// collidePlayerBeam applies beam damage for this tick. Meteors it touches
// are destroyed outright; their fragments join after the pass.
func (g *Game) collidePlayerBeam() {
	beam, ok := g.beamRect()
	if !ok {
		return
	}
	g.emit(EffectBeamTrail, beam)

	g.meteors = slices.DeleteFunc(g.meteors, func(m *Meteor) bool {
		if !m.Rect.Intersects(beam) {
			return false
		}
		g.destroyMeteor(m)
		return true
	})
	g.bosses = slices.DeleteFunc(g.bosses, func(b Boss) bool {
		if !b.Rect().Intersects(beam) || !b.TakeDamage(g.cfg.Beam.BossDamage) {
			return false
		}
		g.onBossDefeated(b)
		return true
	})
	g.drones = slices.DeleteFunc(g.drones, func(d *Drone) bool {
		if !d.Rect.Intersects(beam) || !d.TakeDamage(g.cfg.Beam.DroneDamage) {
			return false
		}
		g.score += g.cfg.Scoring.DroneDefeat
		g.emit(EffectExplosion, d.Rect)
		return true
	})
}

func (g *Game) collideBossShots() {
	g.bossShots = slices.DeleteFunc(g.bossShots, func(s *BossShot) bool {
		if !s.Rect.Intersects(g.player) {
			return false
		}
		g.hurt(g.cfg.Damage.Contact, g.cfg.Scoring.ShieldProjectile)
		return true
	})
}
