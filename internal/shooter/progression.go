package shooter

// Encounter tiers. A tier is the level at which its encounter starts.
const (
	standardTier = 5
	twinTier     = 10
	heavyTier    = 15
	finalTier    = 20
)

// updateLevel raises the level to match the score. The level never drops,
// so a portal's bonus levels are kept until the score catches up.
func (g *Game) updateLevel() {
	g.raiseLevel(g.difficulty.LevelForScore(g.score))
}

// raiseLevel moves the level up to `to`. Any increase is one level-up event,
// however many levels it skips.
func (g *Game) raiseLevel(to int) bool {
	if to <= g.level {
		return false
	}
	from := g.level
	g.level = to
	g.levelUps++
	g.log.Debug("level up", "from", from, "to", to)

	g.checkBossSpawn()
	g.checkUnlocks()
	return true
}

// LevelUps returns how many level-up events fired this run.
func (g *Game) LevelUps() int {
	return g.levelUps
}

// checkBossSpawn starts the encounter for the current level, if any. Only
// one encounter runs at a time and a defeated tier never returns.
func (g *Game) checkBossSpawn() {
	if len(g.bosses) > 0 {
		return
	}
	if g.level >= finalTier {
		if !g.defeated[finalTier] {
			g.spawnEncounter(finalTier)
		}
		return
	}

	tier := g.level / 5 * 5
	switch tier {
	case standardTier, twinTier, heavyTier:
		if !g.defeated[tier] {
			g.spawnEncounter(tier)
		}
	}
}

// spawnEncounter puts the bosses for tier on the field. Drones left over
// from an earlier encounter are cleared; so are falling portals, unless
// this is the final encounter.
func (g *Game) spawnEncounter(tier int) {
	g.drones = g.drones[:0]
	w := g.field.W
	cfg := &g.cfg

	switch tier {
	case standardTier:
		g.bosses = append(g.bosses, newStandardBoss(g.newID(), cfg, tier, w/2, true))
	case twinTier:
		g.bosses = append(g.bosses,
			newTwinBoss(g.newID(), cfg, tier, w/3-bossSize/2, bossSpawnY, bossSize, false),
			newTwinBoss(g.newID(), cfg, tier, 2*w/3-25, bossSpawnY, 50, true),
		)
	case heavyTier:
		g.bosses = append(g.bosses, newHeavyBoss(g.newID(), cfg))
	case finalTier:
		g.bosses = append(g.bosses, newFinalBoss(g.newID(), cfg))
	default:
		return
	}

	if tier != finalTier {
		g.portals = g.portals[:0]
	}
	g.encounter = tier
	g.notify("warning: boss approaching")
	g.log.Info("boss encounter", "tier", tier, "level", g.level, "bosses", len(g.bosses))
}

// onBossDefeated scores a kill. When the last boss of the encounter falls
// the tier is recorded as defeated. The caller removes b from the store.
func (g *Game) onBossDefeated(b Boss) {
	g.score += g.cfg.Scoring.BossDefeat
	g.emit(EffectExplosion, b.Rect())
	g.log.Info("boss defeated", "kind", b.Kind(), "tier", b.Tier())
}

// settleEncounter closes the encounter once no boss is left.
func (g *Game) settleEncounter() {
	if g.encounter == 0 || len(g.bosses) > 0 {
		return
	}
	g.defeated[g.encounter] = true
	g.log.Info("encounter cleared", "tier", g.encounter)
	g.notify("boss defeated")
	g.encounter = 0
	g.saveRequested = true
}

// Defeated reports whether the encounter for tier was cleared this run.
func (g *Game) Defeated(tier int) bool {
	return g.defeated[tier]
}
