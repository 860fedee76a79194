package shooter

import (
	"math"

	"github.com/vovakirdan/meteor-ascent/internal/core"
)

// portalsAllowed reports whether portals may spawn. They stay away while a
// boss other than the final one is on the field.
func (g *Game) portalsAllowed() bool {
	return len(g.bosses) == 0 || g.encounter == finalTier
}

// spawnPickups drops hearts and portals on their intervals, up to the
// configured count on the field.
func (g *Game) spawnPickups() {
	pc := g.cfg.Pickups

	if g.timers.Every(timerHeart, pc.HeartInterval) && len(g.hearts) < pc.MaxHearts {
		g.hearts = append(g.hearts, g.newPickup(PickupHeart, pc.HeartSize, pc.HeartSpeed))
	}
	if g.timers.Every(timerPortal, pc.PortalInterval) && len(g.portals) < pc.MaxPortals && g.portalsAllowed() {
		g.portals = append(g.portals, g.newPickup(PickupPortal, pc.PortalSize, pc.PortalSpeed))
	}
}

func (g *Game) newPickup(kind PickupKind, size, speed float64) *Pickup {
	x := g.rng.Float64() * math.Max(0, g.field.W-size)
	return &Pickup{
		ID:    g.newID(),
		Kind:  kind,
		Rect:  core.NewRect(x, -size, size, size),
		Speed: speed,
	}
}

// collectHeart heals one point. At full health the heart is not consumed.
func (g *Game) collectHeart() bool {
	if g.health >= g.maxHealth {
		return false
	}
	g.health++
	return true
}

// collectPortal jumps ahead a few levels and awards the portal bonus.
func (g *Game) collectPortal() {
	g.score += g.cfg.Scoring.Portal
	g.raiseLevel(g.level + g.cfg.Pickups.PortalLevels)
	g.notify("warp!")
}
