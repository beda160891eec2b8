package sim

import "math/rand"

// State is one run of the game. All entity collections are owned here and
// iterated in insertion order.
type State struct {
	cfg Config
	rng *rand.Rand

	Tick      uint64 // Ticks advanced so far
	Phase     Phase
	SunPoints int
	Selected  Kind // Plant kind used by the next placement
	Defeated  int  // Zombies killed this run

	Plants  []Plant
	Zombies []Zombie
	Bullets []Bullet
	Suns    []Sun
}

// NewState creates a fresh run. The seed drives zombie lanes and sky sun positions.
func NewState(cfg Config, seed int64) *State {
	return &State{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		Phase:     PhaseRunning,
		SunPoints: cfg.StartSun,
		Selected:  KindShooter,
		Plants:    make([]Plant, 0, cfg.Rows*cfg.Cols),
		Zombies:   make([]Zombie, 0),
		Bullets:   make([]Bullet, 0),
		Suns:      make([]Sun, 0),
	}
}

// Config returns the constants this run was created with.
func (s *State) Config() Config {
	return s.cfg
}

// Over reports whether the run has ended.
func (s *State) Over() bool {
	return s.Phase == PhaseGameOver
}

// PlantAt returns the plant occupying the given lane and column, or nil.
func (s *State) PlantAt(row, col int) *Plant {
	for i := range s.Plants {
		if s.Plants[i].Row == row && s.Plants[i].Col == col {
			return &s.Plants[i]
		}
	}
	return nil
}

// AddZombie puts a zombie at the right edge of a lane. Used by the spawner
// and by tests that need a zombie in a known lane.
func (s *State) AddZombie(row int) *Zombie {
	cell := s.cfg.CellSize
	s.Zombies = append(s.Zombies, Zombie{
		Row:    row,
		X:      s.cfg.Width(),
		Y:      float64(row+1) * cell,
		Health: s.cfg.ZombieHealth,
	})
	return &s.Zombies[len(s.Zombies)-1]
}

// zombieInLane reports whether any zombie walks the given lane.
func (s *State) zombieInLane(row int) bool {
	for i := range s.Zombies {
		if s.Zombies[i].Row == row {
			return true
		}
	}
	return false
}
