package sim

// SpawnZombie adds one zombie in a random lane when the clock is on a
// ZombieEvery boundary. It returns the lane, or -1 if nothing spawned.
func (s *State) SpawnZombie() int {
	if s.Tick%uint64(s.cfg.ZombieEvery) != 0 {
		return -1
	}
	row := s.rng.Intn(s.cfg.Rows)
	s.AddZombie(row)
	return row
}

// SpawnSun drops one sun just below the toolbar at a random x when the clock
// is on a SunEvery boundary.
func (s *State) SpawnSun() bool {
	if s.Tick%uint64(s.cfg.SunEvery) != 0 {
		return false
	}
	span := s.cfg.Width() - 2*s.cfg.SunMargin
	s.Suns = append(s.Suns, Sun{
		X:      s.rng.Float64()*span + s.cfg.SunMargin,
		Y:      s.cfg.CellSize,
		Radius: s.cfg.SunRadius,
	})
	return true
}
