package sim_test

import (
	"github.com/vovakirdan/lawn-defense/internal/games/lawn/sim"
)

// quietConfig returns the default lawn with the spawners pushed out of reach,
// so tests control every entity.
func quietConfig() sim.Config {
	cfg := sim.DefaultConfig()
	cfg.ZombieEvery = 1 << 30
	cfg.SunEvery = 1 << 30
	return cfg
}

// cellCenter returns the world position of the middle of a lane/column cell.
func cellCenter(cfg sim.Config, row, col int) (float64, float64) {
	return (float64(col) + 0.5) * cfg.CellSize, (float64(row+1) + 0.5) * cfg.CellSize
}

func steps(s *sim.State, n int) []sim.StepResult {
	results := make([]sim.StepResult, 0, n)
	for range n {
		results = append(results, s.Step())
	}
	return results
}
