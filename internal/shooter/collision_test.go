package shooter

import (
	"testing"
	"time"

	"github.com/vovakirdan/meteor-ascent/internal/core"
)

func meteorOnPlayer(g *Game, class SizeClass) *Meteor {
	cx, cy := g.player.Center()
	size := class.Size()
	return NewMeteor(g.newID(), class, cx-size/2, cy-size/2, 0, 0, 0)
}

func TestMeteorContact(t *testing.T) {
	tests := []struct {
		name      string
		shielded  bool
		wantScore int
		wantLoss  int
	}{
		{"shielded", true, 25, 0},
		{"unshielded", false, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			if tc.shielded {
				g.timers.Start(timerShield, 5*time.Second)
			}
			g.meteors = append(g.meteors, meteorOnPlayer(g, SizeSmall))
			health := g.health

			g.resolveCollisions()

			if len(g.meteors) != 0 {
				t.Error("meteor should be destroyed on contact")
			}
			if g.score != tc.wantScore {
				t.Errorf("score = %d, expected %d", g.score, tc.wantScore)
			}
			if g.health != health-tc.wantLoss {
				t.Errorf("health = %d, expected %d", g.health, health-tc.wantLoss)
			}
		})
	}
}

func TestShieldedContactRewards(t *testing.T) {
	g := newTestGame(t)
	g.timers.Start(timerShield, 5*time.Second)
	health := g.health

	cx, cy := g.player.Center()
	g.drones = append(g.drones, newDrone(g.newID(), cx-15, cy-15, 1))
	g.bossShots = append(g.bossShots, &BossShot{ID: g.newID(), Rect: core.NewRect(cx-5, cy-10, 10, 20)})

	g.resolveCollisions()

	want := g.cfg.Scoring.ShieldDrone + g.cfg.Scoring.ShieldProjectile
	if g.score != want {
		t.Errorf("score = %d, expected %d", g.score, want)
	}
	if g.health != health {
		t.Errorf("health = %d, expected %d", g.health, health)
	}
	if len(g.drones) != 0 || len(g.bossShots) != 0 {
		t.Error("drone and boss shot should be removed on contact")
	}
}

func TestBossBeamAgainstPlayer(t *testing.T) {
	tests := []struct {
		name      string
		shielded  bool
		frozen    bool
		wantLoss  int
		wantScore int
	}{
		{"unshielded", false, false, 2, 0},
		{"shielded", true, false, 0, 10},
		{"frozen boss", false, true, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			g.spawnEncounter(standardTier)
			b := g.bosses[0]
			b.base().startBeam()
			if tc.shielded {
				g.timers.Start(timerShield, 5*time.Second)
			}
			if tc.frozen {
				g.freezeAll(time.Second)
			}
			health := g.health

			g.collideBossAttacks()
			g.collideBossAttacks()

			if g.health != health-tc.wantLoss {
				t.Errorf("health = %d, expected %d", g.health, health-tc.wantLoss)
			}
			if g.score != tc.wantScore {
				t.Errorf("score = %d, expected %d", g.score, tc.wantScore)
			}
		})
	}
}

func TestShotHitsMeteor(t *testing.T) {
	g := newTestGame(t)
	m := NewMeteor(g.newID(), SizeLarge, 100, 100, 0, 0, 0)
	g.meteors = append(g.meteors, m)

	fire := func() {
		g.shots = append(g.shots, &PlayerShot{ID: g.newID(), Rect: core.NewRect(130, 150, 15, 25)})
		g.collidePlayerShots()
	}

	fire()
	if m.HP != 1 || g.score != 25 || len(g.shots) != 0 {
		t.Fatalf("after first hit HP=%d score=%d shots=%d, expected 1 25 0", m.HP, g.score, len(g.shots))
	}

	fire()
	if len(g.meteors) != 0 {
		t.Fatal("large meteor should be destroyed by the second hit")
	}
	if g.score != 75 {
		t.Errorf("score = %d, expected 75", g.score)
	}
	if len(g.pending) != 2 {
		t.Errorf("got %d fragments, expected 2", len(g.pending))
	}
}

func TestShotHitsBoss(t *testing.T) {
	g := newTestGame(t)
	g.spawnEncounter(standardTier)
	b := g.bosses[0]
	hp, _ := b.Health()
	r := b.Rect()

	g.shots = append(g.shots, &PlayerShot{ID: g.newID(), Rect: core.NewRect(r.X+10, r.Y+10, 15, 25)})
	g.collidePlayerShots()

	if got, _ := b.Health(); got != hp-g.cfg.Bosses.ProjectileDamage {
		t.Errorf("boss health = %d, expected %d", got, hp-g.cfg.Bosses.ProjectileDamage)
	}
	if len(g.shots) != 0 {
		t.Error("shot should be spent on the boss")
	}
}

func TestBossDefeatClosesEncounter(t *testing.T) {
	g := newTestGame(t)
	g.spawnEncounter(standardTier)
	b := g.bosses[0]
	b.TakeDamage(b.base().maxHP - 5)
	r := b.Rect()

	g.shots = append(g.shots, &PlayerShot{ID: g.newID(), Rect: core.NewRect(r.X+10, r.Y+10, 15, 25)})
	g.resolveCollisions()

	if len(g.bosses) != 0 {
		t.Fatal("boss should be removed at zero health")
	}
	if g.score != g.cfg.Scoring.BossDefeat {
		t.Errorf("score = %d, expected %d", g.score, g.cfg.Scoring.BossDefeat)
	}
	if !g.Defeated(standardTier) || g.Encounter() != 0 {
		t.Errorf("Defeated(5) = %v, Encounter() = %d, expected true and 0", g.Defeated(standardTier), g.Encounter())
	}
}

func TestTwinEncounterNeedsBothDefeated(t *testing.T) {
	g := newTestGame(t)
	g.spawnEncounter(twinTier)
	if len(g.bosses) != 2 {
		t.Fatalf("twin encounter spawned %d bosses, expected 2", len(g.bosses))
	}

	first := g.bosses[0]
	first.TakeDamage(first.base().maxHP - 1)
	r := first.Rect()
	g.shots = append(g.shots, &PlayerShot{ID: g.newID(), Rect: core.NewRect(r.X+5, r.Y+5, 15, 25)})
	g.resolveCollisions()

	if len(g.bosses) != 1 {
		t.Fatalf("%d bosses left, expected 1", len(g.bosses))
	}
	if g.Defeated(twinTier) {
		t.Error("encounter recorded as defeated with a twin still alive")
	}
}

func TestPlayerBeamDamage(t *testing.T) {
	g := newTestGame(t)
	cx, _ := g.player.Center()
	g.meteors = append(g.meteors, NewMeteor(g.newID(), SizeHuge, cx-50, 100, 0, 0, 0))
	g.drones = append(g.drones, newDrone(g.newID(), cx-15, 300, 1))
	g.ActivateBeam()

	g.collidePlayerBeam()

	if len(g.meteors) != 0 {
		t.Error("beam should destroy meteors outright")
	}
	if len(g.pending) != 3 {
		t.Errorf("got %d fragments, expected 3", len(g.pending))
	}
	if len(g.drones) != 0 {
		t.Error("beam damage should destroy a fresh drone")
	}
	want := g.cfg.Scoring.MeteorDestroy + g.cfg.Scoring.DroneDefeat
	if g.score != want {
		t.Errorf("score = %d, expected %d", g.score, want)
	}
}

func TestHeartPickup(t *testing.T) {
	g := newTestGame(t)
	heart := func() *Pickup {
		cx, cy := g.player.Center()
		return &Pickup{ID: g.newID(), Kind: PickupHeart, Rect: core.NewRect(cx-15, cy-15, 30, 30)}
	}

	g.health = g.maxHealth - 1
	g.hearts = append(g.hearts, heart())
	g.resolveCollisions()
	if g.health != g.maxHealth || len(g.hearts) != 0 {
		t.Errorf("health = %d, hearts = %d, expected %d and 0", g.health, len(g.hearts), g.maxHealth)
	}

	g.hearts = append(g.hearts, heart())
	g.resolveCollisions()
	if g.health != g.maxHealth {
		t.Errorf("health = %d exceeded max", g.health)
	}
	if len(g.hearts) != 1 {
		t.Error("heart should pass through at full health")
	}
}
