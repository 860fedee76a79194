package shooter

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/meteor-ascent/internal/core"
)

// Glyphs used by the rasterizer.
var (
	meteorGlyphs = [...]rune{'*', 'o', 'O', '@'}
	bossGlyphs   = [...]rune{'W', 'M', '#', '&'}
	bossColors   = [...]core.Color{core.ColorRed, core.ColorMagenta, core.ColorOrange, core.ColorPurple}
)

// viewport maps field coordinates to screen cells. Rows 0 and 1 are the
// HUD; the field fills a box below them.
type viewport struct {
	ox, oy int
	sx, sy float64
	w, h   int
}

func newViewport(dst *core.Screen, field core.Rect) viewport {
	w := max(dst.Width()-2, 1)
	h := max(dst.Height()-4, 1)
	return viewport{
		ox: 1,
		oy: 3,
		sx: float64(w) / field.W,
		sy: float64(h) / field.H,
		w:  w,
		h:  h,
	}
}

// cells returns the cell rectangle covering r, at least one cell.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x0 := int(math.Floor(r.X * v.sx))
	y0 := int(math.Floor(r.Y * v.sy))
	x1 := int(math.Ceil(r.Right() * v.sx))
	y1 := int(math.Ceil(r.Bottom() * v.sy))
	x0, x1 = max(x0, 0), min(x1, v.w)
	y0, y1 = max(y0, 0), min(y1, v.h)
	return v.ox + x0, v.oy + y0, max(x1-x0, 1), max(y1-y0, 1)
}

func (v viewport) fill(dst *core.Screen, r core.Rect, glyph rune, c core.Color) {
	if r.Bottom() < 0 || r.Right() < 0 {
		return
	}
	x, y, w, h := v.cells(r)
	if y >= v.oy+v.h || x >= v.ox+v.w {
		return
	}
	dst.FillRect(x, y, w, h, glyph, c)
}

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	f := g.Frame()
	v := newViewport(dst, g.field)

	renderHUD(dst, f.HUD)
	dst.DrawBox(v.ox-1, v.oy-1, v.w+2, v.h+2, core.ColorGray)

	for _, c := range f.Commands {
		renderCommand(dst, v, c)
	}
	for _, e := range f.Effects {
		renderEffect(dst, v, e)
	}

	switch {
	case f.HUD.GameOver:
		dst.DrawTextCentered(v.oy+v.h/2-1, " GAME OVER ", core.ColorBrightRed)
		dst.DrawTextCentered(v.oy+v.h/2+1, fmt.Sprintf(" score %d  level %d ", f.HUD.Score, f.HUD.Level), core.ColorWhite)
		dst.DrawTextCentered(v.oy+v.h/2+2, " r restart  q quit ", core.ColorGray)
	case f.HUD.Paused:
		dst.DrawTextCentered(v.oy+v.h/2, " PAUSED ", core.ColorBrightYellow)
	}
}

func renderCommand(dst *core.Screen, v viewport, c DrawCommand) {
	switch c.Kind {
	case DrawPlayerBeam:
		v.fill(dst, c.Rect, '║', core.ColorBrightCyan)
	case DrawHeart:
		v.fill(dst, c.Rect, '♥', core.ColorBrightRed)
	case DrawPortal:
		v.fill(dst, c.Rect, '◎', core.ColorBrightMagenta)
	case DrawMeteor:
		col := core.ColorYellow
		if c.Frozen {
			col = core.ColorCyan
		} else if c.Fraction < 1 {
			col = core.ColorOrange
		}
		v.fill(dst, c.Rect, meteorGlyphs[core.Clamp(c.Variant, 0, len(meteorGlyphs)-1)], col)
	case DrawBossBeam:
		if c.Blink {
			return
		}
		v.fill(dst, c.Rect, '┃', core.ColorBrightRed)
	case DrawPulse:
		x, y, w, h := v.cells(c.Rect)
		dst.DrawBox(x, y, w, h, core.ColorBrightMagenta)
	case DrawBoss:
		i := core.Clamp(c.Variant, 0, len(bossGlyphs)-1)
		col := bossColors[i]
		if c.Frozen {
			col = core.ColorCyan
		}
		v.fill(dst, c.Rect, bossGlyphs[i], col)
		x, y, w, _ := v.cells(c.Rect)
		if c.Shielded {
			dst.DrawBox(x-1, y-1, w+2, 2, core.ColorBrightBlue)
		}
		renderBar(dst, x, y-1, w, c.Fraction, core.ColorBrightRed)
	case DrawDrone:
		col := core.ColorBrightGreen
		if c.Frozen {
			col = core.ColorCyan
		} else if c.Shielded {
			col = core.ColorBrightBlue
		}
		v.fill(dst, c.Rect, '¤', col)
	case DrawShot:
		v.fill(dst, c.Rect, '|', core.ColorBrightYellow)
	case DrawBossShot:
		v.fill(dst, c.Rect, '•', core.ColorRed)
	case DrawPlayer:
		col := core.ColorBrightWhite
		if c.Shielded {
			col = core.ColorBrightBlue
		}
		v.fill(dst, c.Rect, '▲', col)
	}
}

func renderEffect(dst *core.Screen, v viewport, e Effect) {
	switch e.Kind {
	case EffectExplosion:
		x, y, w, h := v.cells(e.Rect)
		dst.SetColor(x+w/2, y+h/2, '✶', core.ColorBrightYellow)
	case EffectTeleport:
		x, y, w, h := v.cells(e.Rect)
		dst.SetColor(x+w/2, y+h/2, '✧', core.ColorBrightCyan)
	}
}

// renderBar draws a horizontal bar w cells wide, filled to frac.
func renderBar(dst *core.Screen, x, y, w int, frac float64, c core.Color) {
	filled := int(math.Round(core.ClampF(frac, 0, 1) * float64(w)))
	for i := 0; i < w; i++ {
		if i < filled {
			dst.SetColor(x+i, y, '━', c)
		} else {
			dst.SetColor(x+i, y, '─', core.ColorGray)
		}
	}
}

func renderHUD(dst *core.Screen, h HUD) {
	hearts := strings.Repeat("♥", max(h.Health, 0)) + strings.Repeat("·", max(h.MaxHealth-h.Health, 0))
	ammo := fmt.Sprintf("%d/%d", h.Ammo, h.MaxAmmo)
	if h.Reloading {
		ammo = "reload"
	}
	if h.Admin {
		ammo = "∞"
	}

	x := 0
	put := func(text string, c core.Color) {
		dst.DrawText(x, 0, text, c)
		x += len([]rune(text)) + 2
	}
	put(fmt.Sprintf("SCORE %d", h.Score), core.ColorBrightWhite)
	put(fmt.Sprintf("LV %d", h.Level), core.ColorBrightYellow)
	put(hearts, core.ColorBrightRed)
	put("AMMO "+ammo, core.ColorWhite)
	put(fmt.Sprintf("%s/%s", h.Ship, h.Ability), core.ColorCyan)

	var status []string
	if h.Window > 0 {
		status = append(status, fmt.Sprintf("active %.1fs", h.Window.Seconds()))
	}
	if h.Cooldown > 0 {
		status = append(status, fmt.Sprintf("cd %.0fs", math.Ceil(h.Cooldown.Seconds())))
	}
	if h.BeamCooldown > 0 {
		status = append(status, fmt.Sprintf("beam %.0fs", math.Ceil(h.BeamCooldown.Seconds())))
	}
	if h.Freeze > 0 {
		status = append(status, fmt.Sprintf("freeze %.1fs", h.Freeze.Seconds()))
	}
	if len(status) > 0 {
		put(strings.Join(status, " "), core.ColorGray)
	}

	if h.Boss != "" {
		dst.DrawText(0, 1, "BOSS "+h.Boss, core.ColorRed)
		renderBar(dst, 12, 1, 20, h.BossHP, core.ColorBrightRed)
	}
	if h.Message != "" {
		dst.DrawText(max(dst.Width()-len([]rune(h.Message))-1, 34), 1, h.Message, core.ColorBrightYellow)
	}
}
