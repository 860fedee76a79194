package shooter

import (
	"fmt"
	"hash/fnv"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is the observable state of a run, flattened to primitives.
// Two runs with the same seed and inputs produce equal snapshots.
type Snapshot struct {
	Tick      uint64 `msgpack:"tick"`
	NowMS     int64  `msgpack:"now_ms"`
	Score     int    `msgpack:"score"`
	Level     int    `msgpack:"level"`
	Health    int    `msgpack:"health"`
	Ammo      int    `msgpack:"ammo"`
	Ship      int    `msgpack:"ship"`
	GameOver  bool   `msgpack:"game_over"`
	Encounter int    `msgpack:"encounter"`

	Player    [4]float64   `msgpack:"player"`
	Meteors   [][6]float64 `msgpack:"meteors"` // x, y, vx, vy, class, hp
	Shots     [][2]float64 `msgpack:"shots"`
	BossShots [][4]float64 `msgpack:"boss_shots"`
	Drones    [][3]float64 `msgpack:"drones"` // x, y, hp
	Bosses    [][4]float64 `msgpack:"bosses"` // kind, x, y, hp
	Pickups   [][3]float64 `msgpack:"pickups"`
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      g.tick,
		NowMS:     g.clock.Now().Milliseconds(),
		Score:     g.score,
		Level:     g.level,
		Health:    g.health,
		Ammo:      g.ammo,
		Ship:      g.ship,
		GameOver:  g.gameOver,
		Encounter: g.encounter,
		Player:    [4]float64{g.player.X, g.player.Y, g.player.W, g.player.H},
	}
	for _, m := range g.meteors {
		s.Meteors = append(s.Meteors, [6]float64{m.Rect.X, m.Rect.Y, m.VX, m.VY, float64(m.Class), float64(m.HP)})
	}
	for _, p := range g.shots {
		s.Shots = append(s.Shots, [2]float64{p.Rect.X, p.Rect.Y})
	}
	for _, p := range g.bossShots {
		s.BossShots = append(s.BossShots, [4]float64{p.Rect.X, p.Rect.Y, p.VX, p.VY})
	}
	for _, d := range g.drones {
		s.Drones = append(s.Drones, [3]float64{d.Rect.X, d.Rect.Y, float64(d.HP)})
	}
	for _, b := range g.bosses {
		hp, _ := b.Health()
		r := b.Rect()
		s.Bosses = append(s.Bosses, [4]float64{float64(b.Kind()), r.X, r.Y, float64(hp)})
	}
	for _, p := range append(append([]*Pickup(nil), g.hearts...), g.portals...) {
		s.Pickups = append(s.Pickups, [3]float64{float64(p.Kind), p.Rect.X, p.Rect.Y})
	}
	return s
}

// Hash returns a digest of the snapshot's msgpack encoding.
func (s Snapshot) Hash() (uint64, error) {
	b, err := msgpack.Marshal(s)
	if err != nil {
		return 0, fmt.Errorf("snapshot: cannot encode: %w", err)
	}
	h := fnv.New64a()
	h.Write(b)
	return h.Sum64(), nil
}
