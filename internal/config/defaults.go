package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in shooter configuration.
// It mirrors defaults/shooter.yaml and is the last fallback of the loader.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Field: FieldConfig{
			Width:  400,
			Height: 600,
		},
		Player: PlayerConfig{
			X:               180,
			Y:               500,
			Width:           40,
			Height:          40,
			Speed:           5,
			BoostMultiplier: 2,
			StartHealth:     3,
			MaxHealth:       5,
			AdminMaxHealth:  10,
		},
		Ships: ShipsConfig{
			UnlockScores: []int{0, 1500, 2000, 2500, 3000, 3500, 0, 0, 0},
		},
		Ammo: AmmoConfig{
			Max:    10,
			Reload: 10 * time.Second,
			Regen:  10 * time.Second,
		},
		Projectiles: ProjectileConfig{
			Width:        15,
			Height:       25,
			Speed:        10,
			BoostedSpeed: 15,
			Spin:         5,
			BossWidth:    10,
			BossHeight:   20,
			BossSpeed:    7,
		},
		Progression: ProgressionConfig{
			BaseSpeed:           3,
			MaxSpeed:            8,
			Acceleration:        0.0005,
			PointsPerLevel:      500,
			SpawnChanceBase:     60,
			SpawnChancePerLevel: 3,
			SpawnChanceMin:      5,
		},
		Meteors: MeteorConfig{
			HugeLevel:    15,
			HugeChance:   0.2,
			LargeLevel:   10,
			LargeChance:  0.3,
			MediumLevel:  5,
			MediumChance: 0.4,
			MaxSpin:      3,
		},
		Pickups: PickupConfig{
			HeartInterval:  15 * time.Second,
			MaxHearts:      3,
			HeartSize:      30,
			HeartSpeed:     3,
			PortalInterval: 30 * time.Second,
			MaxPortals:     1,
			PortalSize:     60,
			PortalSpeed:    2,
			PortalLevels:   3,
		},
		Abilities: AbilityConfig{
			Freeze:            3 * time.Second,
			Shield:            5 * time.Second,
			Speed:             5 * time.Second,
			Triple:            10 * time.Second,
			Window:            5 * time.Second,
			Cooldown:          15 * time.Second,
			AdminFreeze:       5 * time.Second,
			AdminFreezeChance: 0.5,
			TeleportCell:      40,
			TeleportTop:       100,
			TeleportBottom:    100,
		},
		Beam: BeamConfig{
			Duration:    2 * time.Second,
			Cooldown:    10 * time.Second,
			Width:       30,
			BossDamage:  5,
			DroneDamage: 3,
		},
		Bosses: BossConfig{
			BeamChance:       0.02,
			AggroChance:      0.01,
			SpecialChance:    0.01,
			AggroDuration:    3 * time.Second,
			BeamCooldown:     8 * time.Second,
			PostBeamShield:   2 * time.Second,
			DroneInterval:    15 * time.Second,
			DroneCap:         4,
			ProjectileDamage: 10,
		},
		Damage: DamageConfig{
			Contact:   1,
			BossBeam:  2,
			FinalBeam: 3,
			Pulse:     4,
		},
		Scoring: ScoringConfig{
			MeteorHit:        25,
			MeteorDestroy:    50,
			BossDefeat:       500,
			DroneDefeat:      100,
			ShieldMeteor:     25,
			ShieldDrone:      25,
			ShieldProjectile: 10,
			ShieldBeam:       10,
			Portal:           600,
		},
		Persistence: PersistenceConfig{
			SaveInterval: 30 * time.Second,
		},
		Admin: AdminConfig{
			Codes: map[int]string{
				7: "Gabriel0312",
				8: "Paulo12",
				9: "Victor12",
			},
		},
	}
}
