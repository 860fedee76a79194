package shooter

import (
	"time"

	"github.com/vovakirdan/meteor-ascent/internal/config"
	"github.com/vovakirdan/meteor-ascent/internal/core"
)

// TwinBoss tracks passively most of the time. On a low per-tick roll it
// turns aggressive: shield up and direct pursuit of the player for a fixed
// window.
type TwinBoss struct {
	bossCore

	shots      int
	aggroUntil time.Duration
}

func newTwinBoss(id uint64, cfg *config.ShooterConfig, tier int, x, y, size float64, beam bool) *TwinBoss {
	t := tier / 5
	return &TwinBoss{
		bossCore: bossCore{
			id:           id,
			kind:         BossTwin,
			tier:         tier,
			rect:         core.NewRect(x, y, size, size),
			hp:           80 + 40*t,
			maxHP:        80 + 40*t,
			speed:        1.5 + 0.3*float64(t),
			fieldH:       cfg.Field.Height,
			fireInterval: max(300*time.Millisecond, 800*time.Millisecond-time.Duration(t)*80*time.Millisecond),
			beam: beamState{
				enabled:    beam,
				duration:   1500 * time.Millisecond,
				cooldown:   cfg.Bosses.BeamCooldown,
				readyAt:    cfg.Bosses.BeamCooldown,
				width:      bossBeamWidth,
				damage:     cfg.Damage.BossBeam,
				postShield: cfg.Bosses.PostBeamShield,
			},
		},
		shots: 2 + t,
	}
}

// Aggressive reports whether the twin is in its pursuit window.
func (b *TwinBoss) Aggressive() bool {
	return b.age < b.aggroUntil
}

func (b *TwinBoss) Update(a *arena) {
	b.tick(a.dt)

	if !b.Aggressive() && a.rng.Float64() < a.cfg.Bosses.AggroChance {
		b.aggroUntil = b.age + a.cfg.Bosses.AggroDuration
		b.shield(a.cfg.Bosses.AggroDuration)
	}

	px, py := a.player.Center()
	if b.Aggressive() {
		b.pursue(px, py, b.speed*0.7, 1)
	} else {
		b.trackX(px)
	}
	b.confine(a.field, a.field.H/2)
}

func (b *TwinBoss) TryAttack(a *arena) {
	if b.canFire() {
		b.volley(a, b.shots)
		b.markFired()
	}
	if b.beamReady() && a.rng.Float64() < a.cfg.Bosses.BeamChance {
		b.startBeam()
	}
}
