package shooter

import "github.com/vovakirdan/meteor-ascent/internal/core"

// tripleSpread is the left-edge offset from the ship's center and the
// cosmetic tilt of each shot in a triple volley.
var tripleSpread = [...]struct{ dx, rot float64 }{
	{-20, -10},
	{-7, 0},
	{6, 10},
}

// Fire shoots one round, or a triple volley while the triple buff is up.
// A volley costs a single round. It reports false when the magazine is
// empty or reloading.
func (g *Game) Fire() bool {
	if !g.adminBuff && (g.ammo <= 0 || g.timers.Active(timerReload)) {
		return false
	}

	p := g.cfg.Projectiles
	speed := p.Speed
	if g.speedActive() {
		speed = p.BoostedSpeed
	}
	cx, _ := g.player.Center()
	top := g.player.Y - p.Height

	if g.tripleActive() {
		for _, s := range tripleSpread {
			g.shots = append(g.shots, &PlayerShot{
				ID:       g.newID(),
				Rect:     core.NewRect(cx+s.dx, top, p.Width, p.Height),
				Speed:    speed,
				Rotation: s.rot,
				Spin:     p.Spin,
			})
		}
	} else {
		g.shots = append(g.shots, &PlayerShot{
			ID:    g.newID(),
			Rect:  core.NewRect(cx-p.Width/2, top, p.Width, p.Height),
			Speed: speed,
			Spin:  p.Spin,
		})
	}

	if g.adminBuff {
		return true
	}
	g.ammo--
	if g.ammo == 0 {
		g.timers.Start(timerReload, g.cfg.Ammo.Reload)
		g.timers.Clear(timerRegen)
	}
	return true
}

// Ammo returns the rounds left and whether the magazine is reloading.
func (g *Game) Ammo() (rounds int, reloading bool) {
	return g.ammo, g.timers.Active(timerReload)
}

// updateAmmo runs the reload and the trickle regeneration.
func (g *Game) updateAmmo() {
	full := g.cfg.Ammo.Max
	if g.adminBuff {
		g.ammo = full
		g.timers.Clear(timerReload)
		g.timers.Clear(timerRegen)
		return
	}

	if g.timers.Expired(timerReload) {
		g.ammo = full
		return
	}
	if g.timers.Active(timerReload) {
		return
	}

	if g.ammo >= full {
		g.timers.Clear(timerRegen)
		return
	}
	if g.timers.Every(timerRegen, g.cfg.Ammo.Regen) {
		g.ammo++
	}
}
