package config

import (
	_ "embed"
)

//go:embed defaults/starfall.yaml
var defaultStarfallYAML []byte

// DefaultStarfallConfig returns the default starfall configuration.
func DefaultStarfallConfig() StarfallConfig {
	return StarfallConfig{
		Player: PlayerConfig{
			Health:        100,
			HitFlashTicks: 10,
		},
		Combat: CombatConfig{
			RamDamage:       20,
			ExplosionRadius: 8,
			ExplosionDamage: 25,
			EnemyFirePeriod: 120,
			EnemyFireChance: 0.3,
		},
		Spawning: SpawnConfig{
			WaveDelayTicks:      90,
			PickupIntervalTicks: 180,
			PickupChance:        0.5,
			FormationStartY:     5,
			FormationPadding:    30,
		},
	}
}
