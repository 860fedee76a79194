package shooter

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/meteor-ascent/internal/config"
	"github.com/vovakirdan/meteor-ascent/internal/core"
)

// BossKind identifies a boss variant.
type BossKind int

const (
	BossStandard BossKind = iota
	BossTwin
	BossHeavy
	BossFinal
)

// String returns the variant name.
func (k BossKind) String() string {
	switch k {
	case BossStandard:
		return "standard"
	case BossTwin:
		return "twin"
	case BossHeavy:
		return "heavy"
	case BossFinal:
		return "final"
	default:
		return "unknown"
	}
}

// BossPhase is the observable state of a boss state machine.
type BossPhase int

const (
	PhaseTracking BossPhase = iota
	PhaseAttacking
	PhaseBeam
	PhaseShielded
	PhaseFrozen
)

// String returns the phase name.
func (p BossPhase) String() string {
	switch p {
	case PhaseTracking:
		return "tracking"
	case PhaseAttacking:
		return "attacking"
	case PhaseBeam:
		return "beam"
	case PhaseShielded:
		return "shielded"
	case PhaseFrozen:
		return "frozen"
	default:
		return "unknown"
	}
}

// Boss is implemented by every boss variant.
//
// Update and TryAttack are only called while the boss is not frozen; the
// orchestrator enforces that, so variants never check it themselves.
type Boss interface {
	ID() uint64
	Kind() BossKind
	Tier() int
	Rect() core.Rect
	Health() (hp, maxHP int)
	Phase(now time.Duration) BossPhase

	Frozen(now time.Duration) bool
	Freeze(until time.Duration)
	Thaw()

	// Update advances local timers and moves the boss.
	Update(a *arena)
	// TryAttack fires volleys and starts beams when their timers allow.
	TryAttack(a *arena)
	// TakeDamage applies damage and reports whether the boss was
	// destroyed. It is a no-op while shielded.
	TakeDamage(n int) bool
	Shielded() bool
	// BeamHitTest reports beam damage against target. A beam activation
	// reports at most one hit.
	BeamHitTest(target core.Rect) (damage int, hit bool)

	// Beams returns the active beam rectangles and the fraction of the
	// beam window remaining, for drawing.
	Beams() ([]core.Rect, float64)

	base() *bossCore
}

// pulser is implemented by bosses with an area attack.
type pulser interface {
	// PulseHitTest reports area damage against target, at most once per
	// activation.
	PulseHitTest(target core.Rect) (damage int, hit bool)
	// Pulse returns the active pulse center and radius.
	Pulse() (x, y, radius float64, active bool)
}

// arena is what a boss sees of the world during one tick. Bosses never
// touch the game's stores directly; they queue spawns here and the
// orchestrator flushes them after the boss pass.
type arena struct {
	now    time.Duration
	dt     time.Duration
	field  core.Rect
	player core.Rect
	rng    *rand.Rand
	cfg    *config.ShooterConfig
	drones int

	shots  []*BossShot
	bosses []Boss
	spawn  []*Drone
	nextID func() uint64
}

func (a *arena) fire(x, y, vx, vy float64) {
	w, h := a.cfg.Projectiles.BossWidth, a.cfg.Projectiles.BossHeight
	a.shots = append(a.shots, &BossShot{
		ID:   a.nextID(),
		Rect: core.NewRect(x-w/2, y, w, h),
		VX:   vx,
		VY:   vy,
	})
}

// beamState is the beam sub-machine shared by all variants.
type beamState struct {
	enabled    bool
	active     bool
	start      time.Duration
	duration   time.Duration
	cooldown   time.Duration
	readyAt    time.Duration
	width      float64
	damage     int
	postShield time.Duration
	hitClaimed bool
}

// bossCore is the timer bundle and common state embedded by every variant.
// All of its times are on the boss's own clock (age), which only advances
// while the boss is updated, so a frozen boss's timers stand still.
type bossCore struct {
	freeze

	id    uint64
	kind  BossKind
	tier  int
	rect  core.Rect
	hp    int
	maxHP int
	speed float64

	// fieldH is the playfield height; beams run down to it.
	fieldH float64

	age          time.Duration
	shieldUntil  time.Duration
	fireInterval time.Duration
	lastShot     time.Duration
	fired        bool

	beam beamState
}

func (c *bossCore) ID() uint64 { return c.id }
func (c *bossCore) Kind() BossKind { return c.kind }
func (c *bossCore) Tier() int { return c.tier }
func (c *bossCore) Rect() core.Rect { return c.rect }
func (c *bossCore) Health() (int, int) { return c.hp, c.maxHP }
func (c *bossCore) Age() time.Duration { return c.age }
func (c *bossCore) Shielded() bool { return c.age < c.shieldUntil }
func (c *bossCore) base() *bossCore { return c }
func (c *bossCore) BeamActive() bool { return c.beam.active }

// Phase derives the current state from the timers.
func (c *bossCore) Phase(now time.Duration) BossPhase {
	switch {
	case c.Frozen(now):
		return PhaseFrozen
	case c.beam.active:
		return PhaseBeam
	case c.Shielded():
		return PhaseShielded
	case c.fired && c.age-c.lastShot < 250*time.Millisecond:
		return PhaseAttacking
	default:
		return PhaseTracking
	}
}

// TakeDamage applies n damage, clamped at zero health. Shielded bosses take
// nothing.
func (c *bossCore) TakeDamage(n int) bool {
	if c.Shielded() {
		return false
	}
	c.hp = max(0, c.hp-n)
	return c.hp == 0
}

func (c *bossCore) tick(dt time.Duration) {
	c.age += dt
	if c.beam.active && c.age-c.beam.start >= c.beam.duration {
		c.beam.active = false
		c.beam.readyAt = c.age + c.beam.cooldown
		c.shield(c.beam.postShield)
	}
}

func (c *bossCore) shield(d time.Duration) {
	if until := c.age + d; until > c.shieldUntil {
		c.shieldUntil = until
	}
}

func (c *bossCore) beamReady() bool {
	return c.beam.enabled && !c.beam.active && c.age >= c.beam.readyAt
}

func (c *bossCore) startBeam() {
	c.beam.active = true
	c.beam.start = c.age
	c.beam.hitClaimed = false
}

func (c *bossCore) canFire() bool {
	return !c.fired || c.age-c.lastShot >= c.fireInterval
}

func (c *bossCore) markFired() {
	c.fired = true
	c.lastShot = c.age
}

// beamRemaining is the fraction of the beam window left, 0 when inactive.
func (c *bossCore) beamRemaining() float64 {
	if !c.beam.active || c.beam.duration <= 0 {
		return 0
	}
	left := c.beam.duration - (c.age - c.beam.start)
	return core.ClampF(float64(left)/float64(c.beam.duration), 0, 1)
}

// beamAt returns a beam column centered on x, from the boss's bottom down to
// the field bottom.
func (c *bossCore) beamAt(x, fieldH float64) core.Rect {
	top := c.rect.Bottom()
	return core.NewRect(x-c.beam.width/2, top, c.beam.width, math.Max(0, fieldH-top))
}

// beamRects returns the single centered beam column while it is active.
func (c *bossCore) beamRects() []core.Rect {
	if !c.beam.active {
		return nil
	}
	cx, _ := c.rect.Center()
	return []core.Rect{c.beamAt(cx, c.fieldH)}
}

// BeamHitTest checks the centered beam column.
func (c *bossCore) BeamHitTest(target core.Rect) (int, bool) {
	return c.claimBeamHit(c.beamRects(), target)
}

// Beams returns the active beam columns for drawing.
func (c *bossCore) Beams() ([]core.Rect, float64) {
	return c.beamRects(), c.beamRemaining()
}

// claimBeamHit tests rects against target and claims the activation's
// single hit.
func (c *bossCore) claimBeamHit(rects []core.Rect, target core.Rect) (int, bool) {
	if c.beam.hitClaimed {
		return 0, false
	}
	for _, r := range rects {
		if r.Intersects(target) {
			c.beam.hitClaimed = true
			return c.beam.damage, true
		}
	}
	return 0, false
}

// trackX moves horizontally toward the target x by at most speed.
func (c *bossCore) trackX(targetX float64) {
	cx, _ := c.rect.Center()
	dx := targetX - cx
	step := math.Min(math.Abs(dx), c.speed)
	c.rect.X += math.Copysign(step, dx)
}

// pursue moves toward the target point, scaling vertical speed by yScale.
func (c *bossCore) pursue(tx, ty, speed, yScale float64) {
	cx, cy := c.rect.Center()
	dx, dy := tx-cx, ty-cy
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	step := math.Min(speed, dist)
	c.rect.X += dx / dist * step
	c.rect.Y += dy / dist * step * yScale
}

// confine keeps the boss inside the field and above maxBottom.
func (c *bossCore) confine(field core.Rect, maxBottom float64) {
	bounds := core.NewRect(field.X, field.Y, field.W, maxBottom-field.Y)
	c.rect = c.rect.ClampInto(bounds)
}

// volley fires n shots spread 15 units apart below the boss's center.
func (c *bossCore) volley(a *arena, n int) {
	cx, _ := c.rect.Center()
	speed := a.cfg.Projectiles.BossSpeed
	for i := 0; i < n; i++ {
		offset := (float64(i) - float64(n-1)/2) * 15
		a.fire(cx+offset, c.rect.Bottom(), 0, speed)
	}
}
