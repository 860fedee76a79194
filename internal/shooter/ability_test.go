package shooter

import (
	"errors"
	"testing"
	"time"
)

func unlockAll(g *Game) {
	for i := range g.progress.Unlocked {
		g.progress.Unlocked[i] = true
	}
}

func TestSwitchShipErrors(t *testing.T) {
	tests := []struct {
		name       string
		index      int
		authorized bool
		want       error
	}{
		{"negative", -1, false, ErrShipOutOfRange},
		{"past end", len(Ships), true, ErrShipOutOfRange},
		{"locked", 3, false, ErrShipLocked},
		{"admin without password", 7, false, ErrUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			health := g.health

			err := g.SwitchShip(tc.index, tc.authorized)
			if !errors.Is(err, tc.want) {
				t.Errorf("SwitchShip() error = %v, expected %v", err, tc.want)
			}
			if g.ship != 0 || g.health != health {
				t.Error("rejected selection changed state")
			}
		})
	}
}

func TestSwitchShipResetsState(t *testing.T) {
	g := newTestGame(t)
	unlockAll(g)
	g.meteors = append(g.meteors, NewMeteor(1, SizeSmall, 10, 10, 0, 3, 0))
	g.timers.Start(timerShield, 5*time.Second)
	g.timers.Start(timerCooldown, 15*time.Second)
	g.freezeAll(5 * time.Second)
	g.health = 1

	if err := g.SwitchShip(1, false); err != nil {
		t.Fatalf("SwitchShip() error = %v", err)
	}

	if g.Ship().Ability != AbilityShield {
		t.Errorf("Ship().Ability = %s, expected shield", g.Ship().Ability)
	}
	if g.shieldActive() || !g.timers.Ready(timerCooldown) {
		t.Error("switching ships should reset abilities and cooldown")
	}
	if g.meteors[0].Frozen(g.Now()) {
		t.Error("switching ships should thaw every entity")
	}
	if g.health != g.cfg.Player.MaxHealth {
		t.Errorf("health = %d, expected %d", g.health, g.cfg.Player.MaxHealth)
	}
}

func TestAdminUnlockRequestsSave(t *testing.T) {
	g := newTestGame(t)

	if err := g.SwitchShip(6, true); err != nil {
		t.Fatalf("SwitchShip() error = %v", err)
	}
	if !g.Progress().Unlocked[6] {
		t.Error("authorized admin ship should be recorded as unlocked")
	}
	if !g.result().SaveRequested {
		t.Error("admin unlock should request a save")
	}

	// Once unlocked, no password is needed.
	if err := g.SwitchShip(0, false); err != nil {
		t.Fatal(err)
	}
	if err := g.SwitchShip(6, false); err != nil {
		t.Errorf("SwitchShip() on unlocked admin ship error = %v", err)
	}
}

func TestAbilityCooldown(t *testing.T) {
	g := newTestGame(t)
	unlockAll(g)
	if err := g.SwitchShip(1, false); err != nil {
		t.Fatal(err)
	}

	if !g.ActivateAbility() {
		t.Fatal("first activation should succeed")
	}
	if !g.shieldActive() {
		t.Error("shield ability should raise the shield")
	}
	if g.ActivateAbility() {
		t.Error("activation during cooldown should be rejected")
	}

	g.clock.Advance(g.cfg.Abilities.Cooldown)
	if !g.ActivateAbility() {
		t.Error("activation after cooldown should succeed")
	}
}

func TestAbilityEffects(t *testing.T) {
	tests := []struct {
		ship  int
		check func(g *Game) bool
	}{
		{0, func(g *Game) bool { return g.meteors[0].Frozen(g.Now()) }},
		{1, func(g *Game) bool { return g.shieldActive() }},
		{2, func(g *Game) bool { return g.speedActive() }},
		{3, func(g *Game) bool { return g.tripleActive() }},
		{4, func(g *Game) bool { _, ok := g.beamRect(); return ok }},
		{5, func(g *Game) bool { return g.player.Y != g.cfg.Player.Y }},
	}

	for _, tc := range tests {
		t.Run(Ships[tc.ship].Name, func(t *testing.T) {
			g := newTestGame(t)
			unlockAll(g)
			if err := g.SwitchShip(tc.ship, false); err != nil {
				t.Fatal(err)
			}
			g.meteors = append(g.meteors, NewMeteor(1, SizeSmall, 10, 10, 0, 3, 0))

			if !g.ActivateAbility() {
				t.Fatal("ActivateAbility() = false")
			}
			if !tc.check(g) {
				t.Errorf("%s ability had no effect", Ships[tc.ship].Ability)
			}
			if g.timers.Remaining(timerWindow) != g.cfg.Abilities.Window {
				t.Errorf("ability window = %v, expected %v", g.timers.Remaining(timerWindow), g.cfg.Abilities.Window)
			}
		})
	}
}

func TestAdminAbility(t *testing.T) {
	g := newTestGame(t)
	if err := g.SwitchShip(6, true); err != nil {
		t.Fatal(err)
	}

	if !g.ActivateAbility() {
		t.Fatal("first admin activation failed")
	}
	if !g.shieldActive() || !g.speedActive() || !g.tripleActive() {
		t.Error("admin buff should enable shield, speed and triple shot")
	}
	if g.maxHealth != 10 || g.health != 10 {
		t.Errorf("health = %d/%d, expected 10/10", g.health, g.maxHealth)
	}

	const n = 2000
	freezes := 0
	for i := 0; i < n; i++ {
		if !g.ActivateAbility() {
			t.Fatalf("admin activation %d failed", i)
		}
		switch g.LastAdminEffect() {
		case AbilityFreeze:
			freezes++
		case AbilityTeleport:
		default:
			t.Fatalf("unexpected admin effect %s", g.LastAdminEffect())
		}
	}

	if freezes < n*40/100 || freezes > n*60/100 {
		t.Errorf("freeze chosen %d of %d times, expected roughly half", freezes, n)
	}
}

func TestAdminInfiniteAmmo(t *testing.T) {
	g := newTestGame(t)
	if err := g.SwitchShip(6, true); err != nil {
		t.Fatal(err)
	}
	g.ActivateAbility()

	for i := 0; i < 50; i++ {
		if !g.Fire() {
			t.Fatalf("Fire() failed on shot %d with infinite ammo", i)
		}
	}
	if rounds, _ := g.Ammo(); rounds != g.cfg.Ammo.Max {
		t.Errorf("Ammo() = %d, expected a full magazine", rounds)
	}
	if len(g.shots) != 150 {
		t.Errorf("got %d shots, expected 150 from triple volleys", len(g.shots))
	}
}

func TestTeleportNearestCell(t *testing.T) {
	g := newTestGame(t)

	if !g.teleport() {
		t.Fatal("teleport() on an empty field failed")
	}
	cx, cy := g.player.Center()
	if cx != 180 || cy != 480 {
		t.Errorf("player center = (%v, %v), expected (180, 480)", cx, cy)
	}
}

func TestTeleportNoFreeCell(t *testing.T) {
	g := newTestGame(t)
	unlockAll(g)
	if err := g.SwitchShip(5, false); err != nil {
		t.Fatal(err)
	}

	var id uint64
	for x := 0.0; x < g.field.W; x += 100 {
		for y := 0.0; y < g.field.H; y += 100 {
			id++
			g.meteors = append(g.meteors, NewMeteor(id, SizeHuge, x, y, 0, 0, 0))
		}
	}
	before := g.player

	if g.ActivateAbility() {
		t.Error("ActivateAbility() = true with no free cell")
	}
	if g.player != before {
		t.Errorf("player moved from %+v to %+v", before, g.player)
	}
	if !g.timers.Ready(timerCooldown) {
		t.Error("failed teleport should not start the cooldown")
	}
}

func TestPlayerBeam(t *testing.T) {
	g := newTestGame(t)

	if !g.ActivateBeam() {
		t.Fatal("ActivateBeam() failed")
	}
	r, ok := g.beamRect()
	if !ok || r.W != g.cfg.Beam.Width {
		t.Fatalf("beamRect() = (%+v, %v), expected full width", r, ok)
	}
	if r.Y != 0 || r.Bottom() != g.player.Y {
		t.Errorf("beam spans %v..%v, expected 0..%v", r.Y, r.Bottom(), g.player.Y)
	}

	g.clock.Advance(g.cfg.Beam.Duration / 2)
	if r, _ := g.beamRect(); r.W != g.cfg.Beam.Width/2 {
		t.Errorf("beam width at half time = %v, expected %v", r.W, g.cfg.Beam.Width/2)
	}

	g.clock.Advance(g.cfg.Beam.Duration)
	if g.ActivateBeam() {
		t.Error("beam reactivated during its cooldown")
	}
	g.clock.Advance(g.cfg.Beam.Cooldown)
	if !g.ActivateBeam() {
		t.Error("beam should be available after its cooldown")
	}
}
