// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import "time"

// ShooterConfig contains every tunable of the shooter.
type ShooterConfig struct {
	Field       FieldConfig       `yaml:"field"`
	Player      PlayerConfig      `yaml:"player"`
	Ships       ShipsConfig       `yaml:"ships"`
	Ammo        AmmoConfig        `yaml:"ammo"`
	Projectiles ProjectileConfig  `yaml:"projectiles"`
	Progression ProgressionConfig `yaml:"progression"`
	Meteors     MeteorConfig      `yaml:"meteors"`
	Pickups     PickupConfig      `yaml:"pickups"`
	Abilities   AbilityConfig     `yaml:"abilities"`
	Beam        BeamConfig        `yaml:"beam"`
	Bosses      BossConfig        `yaml:"bosses"`
	Damage      DamageConfig      `yaml:"damage"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Persistence PersistenceConfig `yaml:"persistence"`
	Admin       AdminConfig       `yaml:"admin"`
}

// FieldConfig is the logical playfield size. The terminal view is scaled
// from it, so gameplay does not depend on the window size.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	X               float64 `yaml:"x"`
	Y               float64 `yaml:"y"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`
	BoostMultiplier float64 `yaml:"boost_multiplier"`
	StartHealth     int     `yaml:"start_health"`
	MaxHealth       int     `yaml:"max_health"`
	AdminMaxHealth  int     `yaml:"admin_max_health"`
}

// ShipsConfig defines how ships are unlocked.
type ShipsConfig struct {
	// UnlockScores is the best score needed per ship slot; 0 for slot 0
	// means always unlocked, 0 for an admin slot means password only.
	UnlockScores []int `yaml:"unlock_scores"`
}

// AmmoConfig defines the magazine.
type AmmoConfig struct {
	Max    int           `yaml:"max"`
	Reload time.Duration `yaml:"reload"`
	Regen  time.Duration `yaml:"regen"`
}

// ProjectileConfig defines player and boss shots.
type ProjectileConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BoostedSpeed float64 `yaml:"boosted_speed"`
	Spin         float64 `yaml:"spin"`
	BossWidth    float64 `yaml:"boss_width"`
	BossHeight   float64 `yaml:"boss_height"`
	BossSpeed    float64 `yaml:"boss_speed"`
}

// ProgressionConfig defines the fall speed curve, levels and spawn rate.
type ProgressionConfig struct {
	BaseSpeed           float64 `yaml:"base_speed"`
	MaxSpeed            float64 `yaml:"max_speed"`
	Acceleration        float64 `yaml:"acceleration"` // speed gained per second of play
	PointsPerLevel      int     `yaml:"points_per_level"`
	SpawnChanceBase     int     `yaml:"spawn_chance_base"`
	SpawnChancePerLevel int     `yaml:"spawn_chance_per_level"`
	SpawnChanceMin      int     `yaml:"spawn_chance_min"`
}

// MeteorConfig defines the size tier roll.
type MeteorConfig struct {
	HugeLevel    int     `yaml:"huge_level"`
	HugeChance   float64 `yaml:"huge_chance"`
	LargeLevel   int     `yaml:"large_level"`
	LargeChance  float64 `yaml:"large_chance"`
	MediumLevel  int     `yaml:"medium_level"`
	MediumChance float64 `yaml:"medium_chance"`
	MaxSpin      float64 `yaml:"max_spin"`
}

// PickupConfig defines hearts and portals.
type PickupConfig struct {
	HeartInterval  time.Duration `yaml:"heart_interval"`
	MaxHearts      int           `yaml:"max_hearts"`
	HeartSize      float64       `yaml:"heart_size"`
	HeartSpeed     float64       `yaml:"heart_speed"`
	PortalInterval time.Duration `yaml:"portal_interval"`
	MaxPortals     int           `yaml:"max_portals"`
	PortalSize     float64       `yaml:"portal_size"`
	PortalSpeed    float64       `yaml:"portal_speed"`
	PortalLevels   int           `yaml:"portal_levels"`
}

// AbilityConfig defines ship ability durations.
type AbilityConfig struct {
	Freeze            time.Duration `yaml:"freeze"`
	Shield            time.Duration `yaml:"shield"`
	Speed             time.Duration `yaml:"speed"`
	Triple            time.Duration `yaml:"triple"`
	Window            time.Duration `yaml:"window"`
	Cooldown          time.Duration `yaml:"cooldown"`
	AdminFreeze       time.Duration `yaml:"admin_freeze"`
	AdminFreezeChance float64       `yaml:"admin_freeze_chance"`
	TeleportCell      float64       `yaml:"teleport_cell"`
	TeleportTop       float64       `yaml:"teleport_top"`
	TeleportBottom    float64       `yaml:"teleport_bottom"`
}

// BeamConfig defines the player beam.
type BeamConfig struct {
	Duration    time.Duration `yaml:"duration"`
	Cooldown    time.Duration `yaml:"cooldown"`
	Width       float64       `yaml:"width"`
	BossDamage  int           `yaml:"boss_damage"`
	DroneDamage int           `yaml:"drone_damage"`
}

// BossConfig holds the boss tunables. The per-tick probabilities have no
// fixed design target and are meant to be tuned.
type BossConfig struct {
	BeamChance       float64       `yaml:"beam_chance"`
	AggroChance      float64       `yaml:"aggro_chance"`
	SpecialChance    float64       `yaml:"special_chance"`
	AggroDuration    time.Duration `yaml:"aggro_duration"`
	BeamCooldown     time.Duration `yaml:"beam_cooldown"`
	PostBeamShield   time.Duration `yaml:"post_beam_shield"`
	DroneInterval    time.Duration `yaml:"drone_interval"`
	DroneCap         int           `yaml:"drone_cap"`
	ProjectileDamage int           `yaml:"projectile_damage"`
}

// DamageConfig defines what hurts the player.
type DamageConfig struct {
	Contact   int `yaml:"contact"`
	BossBeam  int `yaml:"boss_beam"`
	FinalBeam int `yaml:"final_beam"`
	Pulse     int `yaml:"pulse"`
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	MeteorHit        int `yaml:"meteor_hit"`
	MeteorDestroy    int `yaml:"meteor_destroy"`
	BossDefeat       int `yaml:"boss_defeat"`
	DroneDefeat      int `yaml:"drone_defeat"`
	ShieldMeteor     int `yaml:"shield_meteor"`
	ShieldDrone      int `yaml:"shield_drone"`
	ShieldProjectile int `yaml:"shield_projectile"`
	ShieldBeam       int `yaml:"shield_beam"`
	Portal           int `yaml:"portal"`
}

// PersistenceConfig defines progress checkpoints.
type PersistenceConfig struct {
	SaveInterval time.Duration `yaml:"save_interval"`
}

// AdminConfig holds the unlock codes for the password-gated ships,
// keyed by 1-based ship slot.
type AdminConfig struct {
	Codes map[int]string `yaml:"codes"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values map to the
// empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
