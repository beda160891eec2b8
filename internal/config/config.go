// Package config loads the YAML tuning file for the lawn game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/lawn-defense/internal/games/lawn/sim"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// LawnConfig contains all tunable values for a run.
type LawnConfig struct {
	Lawn    LawnGrid    `yaml:"lawn"`
	Economy LawnEconomy `yaml:"economy"`
	Plants  LawnPlants  `yaml:"plants"`
	Zombies LawnZombies `yaml:"zombies"`
	Bullets LawnBullets `yaml:"bullets"`
	Suns    LawnSuns    `yaml:"suns"`
	Assets  LawnAssets  `yaml:"assets"`
}

// LawnGrid defines the playing field. Cell size is in world pixels.
type LawnGrid struct {
	Rows      int     `yaml:"rows"`
	Cols      int     `yaml:"cols"`
	CellSize  float64 `yaml:"cell_size"`
	SlotWidth float64 `yaml:"slot_width"` // toolbar slot width
}

// LawnEconomy defines sun balance and plant prices.
type LawnEconomy struct {
	StartSun      int `yaml:"start_sun"`
	SunValue      int `yaml:"sun_value"`
	ShooterCost   int `yaml:"shooter_cost"`
	SunflowerCost int `yaml:"sunflower_cost"`
}

// LawnPlants defines plant stats. Periods are in ticks.
type LawnPlants struct {
	Health       int `yaml:"health"`
	FireEvery    int `yaml:"fire_every"`
	ProduceEvery int `yaml:"produce_every"`
}

// LawnZombies defines zombie stats and the spawn period.
type LawnZombies struct {
	Health      int     `yaml:"health"`
	Speed       float64 `yaml:"speed"`
	AttackEvery int     `yaml:"attack_every"`
	BiteDamage  int     `yaml:"bite_damage"`
	SpawnEvery  int     `yaml:"spawn_every"`
}

// LawnBullets defines projectile stats.
type LawnBullets struct {
	Speed  float64 `yaml:"speed"`
	Damage int     `yaml:"damage"`
}

// LawnSuns defines falling sun behaviour.
type LawnSuns struct {
	Speed      float64 `yaml:"speed"`
	Radius     float64 `yaml:"radius"`
	SpawnEvery int     `yaml:"spawn_every"`
	Margin     float64 `yaml:"margin"`
}

// LawnAssets points the window frontend at sprite images.
// An empty dir means coloured placeholders.
type LawnAssets struct {
	Dir string `yaml:"dir"`
}

// Validate rejects values the simulation cannot run with.
func (c LawnConfig) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"lawn.rows", c.Lawn.Rows > 0},
		{"lawn.cols", c.Lawn.Cols > 0},
		{"lawn.cell_size", c.Lawn.CellSize > 0},
		{"lawn.slot_width", c.Lawn.SlotWidth > 0},
		{"economy.start_sun", c.Economy.StartSun >= 0},
		{"economy.sun_value", c.Economy.SunValue > 0},
		{"economy.shooter_cost", c.Economy.ShooterCost > 0},
		{"economy.sunflower_cost", c.Economy.SunflowerCost > 0},
		{"plants.health", c.Plants.Health > 0},
		{"plants.fire_every", c.Plants.FireEvery > 0},
		{"plants.produce_every", c.Plants.ProduceEvery > 0},
		{"zombies.health", c.Zombies.Health > 0},
		{"zombies.speed", c.Zombies.Speed > 0},
		{"zombies.attack_every", c.Zombies.AttackEvery > 0},
		{"zombies.bite_damage", c.Zombies.BiteDamage > 0},
		{"zombies.spawn_every", c.Zombies.SpawnEvery > 0},
		{"bullets.speed", c.Bullets.Speed > 0},
		{"bullets.damage", c.Bullets.Damage > 0},
		{"suns.speed", c.Suns.Speed > 0},
		{"suns.radius", c.Suns.Radius > 0},
		{"suns.spawn_every", c.Suns.SpawnEvery > 0},
		{"suns.margin", c.Suns.Margin >= 0 && 2*c.Suns.Margin < float64(c.Lawn.Cols)*c.Lawn.CellSize},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("config: %s out of range: %w", chk.name, ErrInvalid)
		}
	}
	return nil
}

// Sim converts the file layout into simulation constants.
func (c LawnConfig) Sim() sim.Config {
	return sim.Config{
		Rows:          c.Lawn.Rows,
		Cols:          c.Lawn.Cols,
		CellSize:      c.Lawn.CellSize,
		SlotWidth:     c.Lawn.SlotWidth,
		StartSun:      c.Economy.StartSun,
		SunValue:      c.Economy.SunValue,
		ShooterCost:   c.Economy.ShooterCost,
		SunflowerCost: c.Economy.SunflowerCost,
		PlantHealth:   c.Plants.Health,
		FireEvery:     c.Plants.FireEvery,
		ProduceEvery:  c.Plants.ProduceEvery,
		ZombieHealth:  c.Zombies.Health,
		ZombieSpeed:   c.Zombies.Speed,
		AttackEvery:   c.Zombies.AttackEvery,
		BiteDamage:    c.Zombies.BiteDamage,
		ZombieEvery:   c.Zombies.SpawnEvery,
		BulletSpeed:   c.Bullets.Speed,
		BulletDamage:  c.Bullets.Damage,
		SunSpeed:      c.Suns.Speed,
		SunRadius:     c.Suns.Radius,
		SunEvery:      c.Suns.SpawnEvery,
		SunMargin:     c.Suns.Margin,
	}
}
