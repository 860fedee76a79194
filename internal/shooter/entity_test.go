package shooter

import (
	"math"
	"testing"
	"time"
)

func TestNewMeteorHitPoints(t *testing.T) {
	tests := []struct {
		class SizeClass
		size  float64
		hp    int
	}{
		{SizeSmall, 40, 1},
		{SizeMedium, 60, 1},
		{SizeLarge, 80, 2},
		{SizeHuge, 100, 3},
	}

	for _, tc := range tests {
		t.Run(tc.class.String(), func(t *testing.T) {
			m := NewMeteor(1, tc.class, 0, 0, 0, 0, 0)
			if m.HP != tc.hp {
				t.Errorf("HP = %d, expected %d", m.HP, tc.hp)
			}
			if m.Rect.W != tc.size || m.Rect.H != tc.size {
				t.Errorf("size = %vx%v, expected %v", m.Rect.W, m.Rect.H, tc.size)
			}
		})
	}
}

func TestSpawnedMeteorFirstTick(t *testing.T) {
	g := newTestGame(t)

	m := g.spawnMeteor(SizeSmall, 100)
	g.meteors = append(g.meteors, m)

	wantVY := g.difficulty.FallSpeed(g.Now()) + 1.5
	if m.VY != wantVY {
		t.Fatalf("VY = %v, expected %v", m.VY, wantVY)
	}
	if m.Rect.Y != -40 {
		t.Fatalf("spawn Y = %v, expected -40", m.Rect.Y)
	}

	g.moveEntities()

	if got, want := m.Rect.Y, -40+wantVY; got != want {
		t.Errorf("Y after one tick = %v, expected %v", got, want)
	}
	if m.Rect.X != 100 {
		t.Errorf("small meteors should not drift, X = %v", m.Rect.X)
	}
}

func TestMeteorBouncesOffWalls(t *testing.T) {
	m := NewMeteor(1, SizeMedium, 2, 100, -3, 1, 0)
	m.update(400)

	if m.VX != 3 {
		t.Errorf("VX after wall hit = %v, expected 3", m.VX)
	}
	if m.Rect.X < 0 {
		t.Errorf("X = %v, expected inside the field", m.Rect.X)
	}
}

func TestFragmentation(t *testing.T) {
	tests := []struct {
		parent SizeClass
		child  SizeClass
		count  int
	}{
		{SizeLarge, SizeSmall, 2},
		{SizeHuge, SizeMedium, 3},
		{SizeMedium, 0, 0},
		{SizeSmall, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.parent.String(), func(t *testing.T) {
			g := newTestGame(t)
			parent := NewMeteor(1, tc.parent, 150, 200, 0, 4, 0)
			pcx, pcy := parent.Rect.Center()

			g.fragment(parent)

			if len(g.pending) != tc.count {
				t.Fatalf("got %d fragments, expected %d", len(g.pending), tc.count)
			}
			for _, c := range g.pending {
				if c.Class != tc.child {
					t.Errorf("fragment class = %s, expected %s", c.Class, tc.child)
				}
				if c.Class >= tc.parent {
					t.Errorf("fragment %s is not smaller than parent %s", c.Class, tc.parent)
				}
				if c.HP != tc.child.HitPoints() {
					t.Errorf("fragment HP = %d, expected %d", c.HP, tc.child.HitPoints())
				}
				cx, cy := c.Rect.Center()
				if math.Abs(cx-pcx) > 40 || math.Abs(cy-pcy) > 1 {
					t.Errorf("fragment center (%v, %v) too far from parent (%v, %v)", cx, cy, pcx, pcy)
				}
			}

			g.flushPending()
			if len(g.meteors) != tc.count {
				t.Errorf("after flush %d meteors, expected %d", len(g.meteors), tc.count)
			}
		})
	}
}

func TestFreezeKeepsLongest(t *testing.T) {
	var f freeze
	f.Freeze(5 * time.Second)
	f.Freeze(2 * time.Second)

	if f.FrozenUntil() != 5*time.Second {
		t.Errorf("FrozenUntil() = %v, expected 5s", f.FrozenUntil())
	}
	if !f.Frozen(4 * time.Second) {
		t.Error("expected frozen before expiry")
	}
	if f.Frozen(5 * time.Second) {
		t.Error("expected thawed at expiry")
	}

	f.Thaw()
	if f.Frozen(0) {
		t.Error("Thaw() should end the freeze")
	}
}

func TestDroneShieldCycle(t *testing.T) {
	d := newDrone(1, 100, 100, 1)
	player := d.Rect
	field := d.Rect
	field.X, field.Y, field.W, field.H = 0, 0, 400, 600

	if d.Shielded() {
		t.Fatal("fresh drone should not be shielded")
	}
	d.update(droneShieldEvery, player, field)
	if !d.Shielded() {
		t.Error("drone should raise its shield after the interval")
	}
	if d.TakeDamage(droneHP) {
		t.Error("shielded drone must not be destroyed")
	}

	d.update(droneShieldDuration, player, field)
	if d.Shielded() {
		t.Error("shield should drop after its duration")
	}
	if !d.TakeDamage(droneHP) {
		t.Error("unshielded drone should be destroyed by full damage")
	}
}
