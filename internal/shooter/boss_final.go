package shooter

import (
	"math"
	"time"

	"github.com/vovakirdan/meteor-ascent/internal/config"
	"github.com/vovakirdan/meteor-ascent/internal/core"
)

const (
	finalSize       = 150
	finalHP         = 300
	finalSpawnY     = 30
	finalBeamWidth  = 20
	finalBeamGap    = 40
	finalPulseTime  = 5 * time.Second
	finalPulseBase  = 100
	finalPulseSwing = 50
)

// FinalBoss is the tier 20 encounter. Below half health it enters a second
// phase: faster, a rotating spiral instead of the aimed fan, and an area
// pulse.
type FinalBoss struct {
	bossCore

	phaseTwo bool
	spiral   float64 // degrees

	pulseUntil   time.Duration
	pulseClaimed bool
	pulseDamage  int
}

func newFinalBoss(id uint64, cfg *config.ShooterConfig) *FinalBoss {
	return &FinalBoss{
		bossCore: bossCore{
			id:           id,
			kind:         BossFinal,
			tier:         20,
			rect:         core.NewRect(cfg.Field.Width/2-finalSize/2, finalSpawnY, finalSize, finalSize),
			hp:           finalHP,
			maxHP:        finalHP,
			speed:        2,
			fieldH:       cfg.Field.Height,
			fireInterval: 800 * time.Millisecond,
			beam: beamState{
				enabled:    true,
				duration:   1500 * time.Millisecond,
				cooldown:   4 * time.Second,
				readyAt:    4 * time.Second,
				width:      finalBeamWidth,
				damage:     cfg.Damage.FinalBeam,
				postShield: 2500 * time.Millisecond,
			},
		},
		pulseDamage: cfg.Damage.Pulse,
	}
}

// PhaseTwo reports whether the boss has dropped to half health.
func (b *FinalBoss) PhaseTwo() bool {
	return b.phaseTwo
}

func (b *FinalBoss) Update(a *arena) {
	b.tick(a.dt)

	if !b.phaseTwo && b.hp <= b.maxHP/2 {
		b.phaseTwo = true
		b.speed = 2.5
		b.fireInterval = 600 * time.Millisecond
	}

	px, py := a.player.Center()
	b.pursue(px, py, b.speed, 0.5)
	b.confine(a.field, a.field.H/3)

	if b.phaseTwo {
		b.spiral += 1
		if !b.pulseActive() && a.rng.Float64() < a.cfg.Bosses.SpecialChance {
			b.pulseUntil = b.age + finalPulseTime
			b.pulseClaimed = false
		}
	}
}

func (b *FinalBoss) TryAttack(a *arena) {
	if b.beamReady() {
		b.startBeam()
	}
	if !b.canFire() {
		return
	}

	cx, cy := b.rect.Center()
	if b.phaseTwo {
		for i := 0; i < 8; i++ {
			rad := (b.spiral + float64(i)*45) * math.Pi / 180
			a.fire(cx, cy, math.Sin(rad)*5, math.Cos(rad)*6)
		}
	} else {
		for i := 0; i < 5; i++ {
			rad := (-30 + float64(i)*15) * math.Pi / 180
			a.fire(cx, b.rect.Bottom(), math.Sin(rad)*4, math.Cos(rad)*7)
		}
	}
	b.markFired()
}

func (b *FinalBoss) beamRects() []core.Rect {
	if !b.beam.active {
		return nil
	}
	cx, _ := b.rect.Center()
	return []core.Rect{
		b.beamAt(cx-finalBeamGap, b.fieldH),
		b.beamAt(cx, b.fieldH),
		b.beamAt(cx+finalBeamGap, b.fieldH),
	}
}

// BeamHitTest checks all three beam columns. The activation still hits at
// most once.
func (b *FinalBoss) BeamHitTest(target core.Rect) (int, bool) {
	return b.claimBeamHit(b.beamRects(), target)
}

func (b *FinalBoss) Beams() ([]core.Rect, float64) {
	return b.beamRects(), b.beamRemaining()
}

func (b *FinalBoss) pulseActive() bool {
	return b.age < b.pulseUntil
}

// Pulse returns the pulse circle. The radius oscillates with the boss's age.
func (b *FinalBoss) Pulse() (x, y, radius float64, active bool) {
	if !b.pulseActive() {
		return 0, 0, 0, false
	}
	x, y = b.rect.Center()
	ms := float64(b.age.Milliseconds())
	return x, y, finalPulseBase + finalPulseSwing*math.Sin(ms*0.01), true
}

func (b *FinalBoss) PulseHitTest(target core.Rect) (int, bool) {
	if b.pulseClaimed {
		return 0, false
	}
	x, y, r, ok := b.Pulse()
	if !ok || !circleIntersects(x, y, r, target) {
		return 0, false
	}
	b.pulseClaimed = true
	return b.pulseDamage, true
}

// circleIntersects reports whether the circle overlaps the rectangle.
func circleIntersects(cx, cy, radius float64, r core.Rect) bool {
	nx := core.ClampF(cx, r.X, r.Right())
	ny := core.ClampF(cy, r.Y, r.Bottom())
	return core.Distance(cx, cy, nx, ny) < radius
}
