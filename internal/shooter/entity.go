package shooter

import (
	"time"

	"github.com/vovakirdan/meteor-ascent/internal/core"
)

// SizeClass is a meteor tier. It fixes the meteor's size, hit points and
// what it breaks into.
type SizeClass int

const (
	SizeSmall SizeClass = iota
	SizeMedium
	SizeLarge
	SizeHuge
)

// String returns the class name.
func (c SizeClass) String() string {
	switch c {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	case SizeHuge:
		return "huge"
	default:
		return "unknown"
	}
}

// Size returns the side length of the meteor's square hitbox.
func (c SizeClass) Size() float64 {
	switch c {
	case SizeMedium:
		return 60
	case SizeLarge:
		return 80
	case SizeHuge:
		return 100
	default:
		return 40
	}
}

// HitPoints returns the hit points a fresh meteor of this class has.
func (c SizeClass) HitPoints() int {
	switch c {
	case SizeLarge:
		return 2
	case SizeHuge:
		return 3
	default:
		return 1
	}
}

// speedFactor scales the level's contribution to fall speed.
// Bigger meteors fall slower.
func (c SizeClass) speedFactor() float64 {
	switch c {
	case SizeMedium:
		return 1.2
	case SizeLarge:
		return 1.0
	case SizeHuge:
		return 0.8
	default:
		return 1.5
	}
}

// drift is the magnitude of horizontal speed.
func (c SizeClass) drift() float64 {
	switch c {
	case SizeMedium:
		return 2
	case SizeLarge:
		return 1.5
	case SizeHuge:
		return 1
	default:
		return 0
	}
}

// fragments describes what a destroyed meteor breaks into: the child class,
// how many children, and the horizontal spacing between them.
func (c SizeClass) fragments() (child SizeClass, count int, spacing float64, ok bool) {
	switch c {
	case SizeLarge:
		return SizeSmall, 2, 40, true
	case SizeHuge:
		return SizeMedium, 3, 30, true
	default:
		return 0, 0, 0, false
	}
}

// freeze is the Frozen state shared by every enemy. An entity is frozen
// while the simulation clock is before its expiry. The orchestrator checks
// it once per tick and skips the entity's update entirely.
type freeze struct {
	until time.Duration
}

// Frozen reports whether the entity is frozen at now.
func (f *freeze) Frozen(now time.Duration) bool {
	return now < f.until
}

// FrozenUntil returns the freeze expiry, zero if never frozen.
func (f *freeze) FrozenUntil() time.Duration {
	return f.until
}

// Freeze keeps the entity frozen until the given time. An existing longer
// freeze is kept.
func (f *freeze) Freeze(until time.Duration) {
	if until > f.until {
		f.until = until
	}
}

// Thaw ends any freeze immediately.
func (f *freeze) Thaw() {
	f.until = 0
}

// Meteor is a falling rock.
type Meteor struct {
	freeze

	ID       uint64
	Rect     core.Rect
	VX, VY   float64
	Rotation float64
	Spin     float64
	Class    SizeClass
	HP       int
}

// NewMeteor creates a meteor of the given class with its top-left corner at
// (x, y). Hit points always come from the class.
func NewMeteor(id uint64, class SizeClass, x, y, vx, vy, spin float64) *Meteor {
	size := class.Size()
	return &Meteor{
		ID:    id,
		Rect:  core.NewRect(x, y, size, size),
		VX:    vx,
		VY:    vy,
		Spin:  spin,
		Class: class,
		HP:    class.HitPoints(),
	}
}

// update moves the meteor one tick and bounces it off the side walls.
func (m *Meteor) update(fieldW float64) {
	m.Rect.X += m.VX
	m.Rect.Y += m.VY
	m.Rotation += m.Spin

	if m.Rect.X <= 0 || m.Rect.Right() >= fieldW {
		m.VX = -m.VX
		m.Rect.X = core.ClampF(m.Rect.X, 0, fieldW-m.Rect.W)
	}
}

// PlayerShot is a projectile fired by the player. It flies straight up.
type PlayerShot struct {
	ID       uint64
	Rect     core.Rect
	Speed    float64
	Rotation float64 // cosmetic
	Spin     float64
}

func (s *PlayerShot) update() {
	s.Rect.Y -= s.Speed
	s.Rotation += s.Spin
}

// BossShot is a projectile fired by a boss.
type BossShot struct {
	ID     uint64
	Rect   core.Rect
	VX, VY float64
}

func (s *BossShot) update() {
	s.Rect.X += s.VX
	s.Rect.Y += s.VY
}

// PickupKind distinguishes falling pickups.
type PickupKind int

const (
	PickupHeart PickupKind = iota
	PickupPortal
)

// Pickup is a falling collectible.
type Pickup struct {
	ID    uint64
	Kind  PickupKind
	Rect  core.Rect
	Speed float64
}

func (p *Pickup) update() {
	p.Rect.Y += p.Speed
}
