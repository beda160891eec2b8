package config

import (
	_ "embed"
)

//go:embed defaults/lawn.yaml
var defaultLawnYAML []byte

// DefaultLawnConfig returns the built-in tuning, used when no YAML is readable.
func DefaultLawnConfig() LawnConfig {
	return LawnConfig{
		Lawn: LawnGrid{
			Rows:      5,
			Cols:      9,
			CellSize:  80,
			SlotWidth: 100,
		},
		Economy: LawnEconomy{
			StartSun:      150,
			SunValue:      25,
			ShooterCost:   100,
			SunflowerCost: 50,
		},
		Plants: LawnPlants{
			Health:       100,
			FireEvery:    60,
			ProduceEvery: 300,
		},
		Zombies: LawnZombies{
			Health:      100,
			Speed:       0.3,
			AttackEvery: 60,
			BiteDamage:  20,
			SpawnEvery:  300,
		},
		Bullets: LawnBullets{
			Speed:  2,
			Damage: 20,
		},
		Suns: LawnSuns{
			Speed:      0.5,
			Radius:     15,
			SpawnEvery: 400,
			Margin:     15,
		},
	}
}
