package shooter

import (
	"time"

	"github.com/vovakirdan/meteor-ascent/internal/config"
	"github.com/vovakirdan/meteor-ascent/internal/core"
)

const (
	bossSize      = 70
	bossSpawnY    = 50
	bossBeamWidth = 25
)

// StandardBoss tracks the player horizontally and fires volleys whose size
// and rate scale with its tier.
type StandardBoss struct {
	bossCore

	shots int
}

func newStandardBoss(id uint64, cfg *config.ShooterConfig, tier int, cx float64, beam bool) *StandardBoss {
	t := tier / 5
	return &StandardBoss{
		bossCore: bossCore{
			id:           id,
			kind:         BossStandard,
			tier:         tier,
			rect:         core.NewRect(cx-bossSize/2, bossSpawnY, bossSize, bossSize),
			hp:           80 + 40*t,
			maxHP:        80 + 40*t,
			speed:        2 + 0.5*float64(t),
			fieldH:       cfg.Field.Height,
			fireInterval: max(400*time.Millisecond, 1000*time.Millisecond-time.Duration(t)*120*time.Millisecond),
			beam: beamState{
				enabled:    beam,
				duration:   2 * time.Second,
				cooldown:   cfg.Bosses.BeamCooldown,
				readyAt:    cfg.Bosses.BeamCooldown,
				width:      bossBeamWidth,
				damage:     cfg.Damage.BossBeam,
				postShield: cfg.Bosses.PostBeamShield,
			},
		},
		shots: 1 + t,
	}
}

func (b *StandardBoss) Update(a *arena) {
	b.tick(a.dt)
	px, _ := a.player.Center()
	b.trackX(px)
	b.confine(a.field, a.field.H/2)
}

func (b *StandardBoss) TryAttack(a *arena) {
	if b.canFire() {
		b.volley(a, b.shots)
		b.markFired()
	}
	if b.beamReady() && a.rng.Float64() < a.cfg.Bosses.BeamChance {
		b.startBeam()
	}
}
