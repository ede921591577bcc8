// Package config provides YAML-based game configuration loading for the
// starfall platform.
package config

// StarfallConfig contains all tunable configuration for the starfall game.
// Fixed per-type tables (enemy stats, weapon tables, formation shapes) live
// in the game package; this file holds only the knobs worth tuning.
type StarfallConfig struct {
	Player   PlayerConfig `yaml:"player"`
	Combat   CombatConfig `yaml:"combat"`
	Spawning SpawnConfig  `yaml:"spawning"`
}

// PlayerConfig defines the player ship parameters.
type PlayerConfig struct {
	Health        int `yaml:"health"`          // Starting (and maximum) health
	HitFlashTicks int `yaml:"hit_flash_ticks"` // Cosmetic flash duration after taking damage
}

// CombatConfig defines damage parameters for collisions and explosions.
type CombatConfig struct {
	RamDamage       int     `yaml:"ram_damage"`        // Damage to player when an enemy rams the ship
	ExplosionRadius int     `yaml:"explosion_radius"`  // Bomb area-damage radius in cells (inclusive)
	ExplosionDamage int     `yaml:"explosion_damage"`  // Damage applied to every enemy inside the radius
	EnemyFirePeriod int     `yaml:"enemy_fire_period"` // Enemy cooldown period in ticks between fire windows
	EnemyFireChance float64 `yaml:"enemy_fire_chance"` // Probability of firing on an eligible tick (0-1)
}

// SpawnConfig defines spawn-director cadences and probabilities.
type SpawnConfig struct {
	WaveDelayTicks      int     `yaml:"wave_delay_ticks"`      // Delay before the next formation after a wave clears
	PickupIntervalTicks int     `yaml:"pickup_interval_ticks"` // Pickup roll cadence in ticks
	PickupChance        float64 `yaml:"pickup_chance"`         // Probability of spawning a pickup per roll (0-1)
	FormationStartY     int     `yaml:"formation_start_y"`     // Vertical start of a new formation's center
	FormationPadding    int     `yaml:"formation_padding"`     // Horizontal padding for the random center position
}
