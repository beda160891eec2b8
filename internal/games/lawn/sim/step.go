package sim

// StepResult reports what happened during one tick.
type StepResult struct {
	Tick uint64

	ZombieLane   int  // Lane of the spawned zombie, -1 if none
	SkySun       bool // A sun dropped from the sky
	Hits         int
	Killed       int
	PlantsLost   int
	BulletsFired int
	SunsProduced int

	BulletsExpired int
	SunsExpired    int

	// GameOverTriggered is true only on the tick a zombie reached the house.
	GameOverTriggered bool
}

// Step advances the run by one tick. Order: clock, spawners, collisions,
// plants, bullets, zombies, suns. Once the run is over Step does nothing.
func (s *State) Step() StepResult {
	if s.Phase == PhaseGameOver {
		return StepResult{Tick: s.Tick, ZombieLane: -1}
	}

	s.Tick++
	res := StepResult{Tick: s.Tick}

	res.ZombieLane = s.SpawnZombie()
	res.SkySun = s.SpawnSun()
	res.Hits, res.Killed, res.PlantsLost = s.ResolveCollisions()

	for i := range s.Plants {
		s.Plants[i].update(s, &res)
	}

	width := s.cfg.Width()
	s.Bullets, res.BulletsExpired = advance(s.Bullets, func(b *Bullet) bool {
		b.update(s)
		return b.X <= width
	})

	reached := false
	for i := range s.Zombies {
		if s.Zombies[i].update(s) {
			reached = true
		}
	}

	height := s.cfg.Height()
	s.Suns, res.SunsExpired = advance(s.Suns, func(u *Sun) bool {
		u.update(s)
		return u.Y <= height
	})

	if reached {
		s.Phase = PhaseGameOver
		res.GameOverTriggered = true
	}
	return res
}

// advance updates every element and keeps those for which step returns true.
func advance[T any](items []T, step func(*T) bool) ([]T, int) {
	before := len(items)
	items = filter(items, step)
	return items, before - len(items)
}
