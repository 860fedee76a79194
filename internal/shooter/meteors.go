package shooter

import (
	"math"

	"github.com/vovakirdan/meteor-ascent/internal/core"
)

// meteorsAllowed reports whether the spawner may run: never during a boss
// encounter, except the final one.
func (g *Game) meteorsAllowed() bool {
	return len(g.bosses) == 0 || g.encounter == finalTier
}

// spawnMeteors rolls the per-tick 1-in-N spawn chance for the current level.
func (g *Game) spawnMeteors() {
	if !g.meteorsAllowed() {
		return
	}
	if g.rng.Intn(g.difficulty.SpawnChance(g.level)) != 0 {
		return
	}
	class := g.rollSizeClass()
	x := g.rng.Float64() * math.Max(0, g.field.W-class.Size())
	g.meteors = append(g.meteors, g.spawnMeteor(class, x))
}

// rollSizeClass picks a size tier. Each tier the level allows gets its own
// roll, biggest first.
func (g *Game) rollSizeClass() SizeClass {
	m := g.cfg.Meteors
	switch {
	case g.level >= m.HugeLevel && g.rng.Float64() < m.HugeChance:
		return SizeHuge
	case g.level >= m.LargeLevel && g.rng.Float64() < m.LargeChance:
		return SizeLarge
	case g.level >= m.MediumLevel && g.rng.Float64() < m.MediumChance:
		return SizeMedium
	default:
		return SizeSmall
	}
}

// spawnMeteor creates a meteor just above the field at x. Its fall speed is
// the time-based base speed plus a level bonus scaled by size.
func (g *Game) spawnMeteor(class SizeClass, x float64) *Meteor {
	vy := g.difficulty.FallSpeed(g.clock.Now()) + float64(g.level)*class.speedFactor()
	vx := class.drift()
	if vx != 0 && g.rng.Intn(2) == 0 {
		vx = -vx
	}
	spin := (g.rng.Float64()*2 - 1) * g.cfg.Meteors.MaxSpin
	return NewMeteor(g.newID(), class, x, -class.Size(), vx, vy, spin)
}

// fragment queues the children of a destroyed meteor. They are spread
// horizontally around the parent's center and join the field after the
// collision pass.
func (g *Game) fragment(m *Meteor) {
	child, count, spacing, ok := m.Class.fragments()
	if !ok {
		return
	}
	cx, cy := m.Rect.Center()
	size := child.Size()
	for i := 0; i < count; i++ {
		off := (float64(i) - float64(count-1)/2) * spacing
		x := core.ClampF(cx+off-size/2, 0, math.Max(0, g.field.W-size))
		vx := 0.0
		if off != 0 {
			vx = math.Copysign(math.Max(child.drift(), 1), off)
		}
		spin := (g.rng.Float64()*2 - 1) * g.cfg.Meteors.MaxSpin
		g.pending = append(g.pending, NewMeteor(g.newID(), child, x, cy-size/2, vx, m.VY, spin))
	}
}

// destroyMeteor awards the kill, emits the explosion and fragments.
// The caller removes m from the store.
func (g *Game) destroyMeteor(m *Meteor) {
	g.score += g.cfg.Scoring.MeteorDestroy
	g.emit(EffectExplosion, m.Rect)
	g.fragment(m)
}

// flushPending moves queued fragments into the meteor store.
func (g *Game) flushPending() {
	if len(g.pending) == 0 {
		return
	}
	g.meteors = append(g.meteors, g.pending...)
	g.pending = g.pending[:0]
}
