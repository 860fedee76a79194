package shooter

import (
	"math"
	"time"

	"github.com/vovakirdan/meteor-ascent/internal/core"
)

const (
	droneSize           = 30
	droneHP             = 3
	droneSpeed          = 1.5
	droneShieldEvery    = 8 * time.Second
	droneShieldDuration = 3 * time.Second
	droneOffsetX        = 60
	droneOffsetY        = -40
)

// Drone is a small companion that hovers near the player. Its shield cycle
// runs on its own clock, independent of the boss that launched it.
type Drone struct {
	freeze

	ID   uint64
	Rect core.Rect
	HP   int

	// side is -1 for a drone that hovers left of the player, +1 for right.
	side        float64
	age         time.Duration
	shieldUntil time.Duration
	nextShield  time.Duration
}

func newDrone(id uint64, x, y, side float64) *Drone {
	return &Drone{
		ID:         id,
		Rect:       core.NewRect(x, y, droneSize, droneSize),
		HP:         droneHP,
		side:       side,
		nextShield: droneShieldEvery,
	}
}

// Shielded reports whether the drone currently ignores damage.
func (d *Drone) Shielded() bool {
	return d.age < d.shieldUntil
}

// Age returns how long the drone has been active, excluding frozen time.
func (d *Drone) Age() time.Duration {
	return d.age
}

// TakeDamage applies damage unless shielded and reports whether the drone
// was destroyed.
func (d *Drone) TakeDamage(n int) bool {
	if d.Shielded() {
		return false
	}
	d.HP = max(0, d.HP-n)
	return d.HP == 0
}

// update advances the shield cycle and steers toward the player offset.
func (d *Drone) update(dt time.Duration, player core.Rect, field core.Rect) {
	d.age += dt
	if d.age >= d.nextShield {
		d.shieldUntil = d.age + droneShieldDuration
		d.nextShield = d.age + droneShieldEvery
	}

	px, py := player.Center()
	tx := px + d.side*droneOffsetX
	ty := py + droneOffsetY
	cx, cy := d.Rect.Center()

	dx, dy := tx-cx, ty-cy
	dist := math.Hypot(dx, dy)
	if dist > 0 {
		step := math.Min(droneSpeed, dist)
		d.Rect.X += dx / dist * step
		d.Rect.Y += dy / dist * step
	}
	d.Rect = d.Rect.ClampInto(field)
}
