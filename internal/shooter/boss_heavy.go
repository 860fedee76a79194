package shooter

import (
	"time"

	"github.com/vovakirdan/meteor-ascent/internal/config"
	"github.com/vovakirdan/meteor-ascent/internal/core"
)

const (
	heavySize           = 120
	heavyHP             = 200
	heavySpeed          = 1.5
	heavyVolleysPerBeam = 5
	heavyBeamWidth      = 30
	heavyTwinTier       = 10
)

var heavyShotOffsets = [...]float64{-20, 0, 20}

// HeavyBoss is the tier 15 encounter. It alternates volleys with a beam,
// splits off a pair of twins once at half health and launches drone pairs
// on a fixed interval.
type HeavyBoss struct {
	bossCore

	volleys      int
	twinsSpawned bool
	nextDrone    time.Duration
}

func newHeavyBoss(id uint64, cfg *config.ShooterConfig) *HeavyBoss {
	return &HeavyBoss{
		bossCore: bossCore{
			id:           id,
			kind:         BossHeavy,
			tier:         15,
			rect:         core.NewRect(cfg.Field.Width/2-heavySize/2, bossSpawnY, heavySize, heavySize),
			hp:           heavyHP,
			maxHP:        heavyHP,
			speed:        heavySpeed,
			fieldH:       cfg.Field.Height,
			fireInterval: time.Second,
			beam: beamState{
				enabled:    true,
				duration:   2 * time.Second,
				width:      heavyBeamWidth,
				damage:     cfg.Damage.BossBeam,
				postShield: 3 * time.Second,
			},
		},
		nextDrone: cfg.Bosses.DroneInterval,
	}
}

// TwinsSpawned reports whether the half-health split already happened.
func (b *HeavyBoss) TwinsSpawned() bool {
	return b.twinsSpawned
}

func (b *HeavyBoss) Update(a *arena) {
	b.tick(a.dt)
	px, _ := a.player.Center()
	b.trackX(px)
	b.confine(a.field, a.field.H/2)

	if !b.twinsSpawned && b.hp > 0 && b.hp <= b.maxHP/2 {
		b.twinsSpawned = true
		b.spawnTwins(a)
	}

	if b.age >= b.nextDrone {
		b.nextDrone = b.age + a.cfg.Bosses.DroneInterval
		if a.drones+2 <= a.cfg.Bosses.DroneCap {
			_, cy := b.rect.Center()
			a.spawn = append(a.spawn,
				newDrone(a.nextID(), b.rect.X-40, cy, -1),
				newDrone(a.nextID(), b.rect.Right()+10, cy, 1),
			)
			a.drones += 2
		}
	}
}

func (b *HeavyBoss) spawnTwins(a *arena) {
	w := a.field.W
	a.bosses = append(a.bosses,
		newTwinBoss(a.nextID(), a.cfg, heavyTwinTier, w/4-bossSize/2, 100, bossSize, false),
		newTwinBoss(a.nextID(), a.cfg, heavyTwinTier, 3*w/4-bossSize/2, 100, bossSize, true),
	)
}

func (b *HeavyBoss) TryAttack(a *arena) {
	if b.beam.active || !b.canFire() {
		return
	}
	if b.volleys >= heavyVolleysPerBeam {
		b.volleys = 0
		b.startBeam()
		return
	}

	cx, _ := b.rect.Center()
	for _, off := range heavyShotOffsets {
		a.fire(cx+off, b.rect.Bottom(), 0, a.cfg.Projectiles.BossSpeed)
	}
	b.volleys++
	b.markFired()
}
