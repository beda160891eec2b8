package sim

// ResolveCollisions applies bullet hits and clears out the dead.
//
// Each bullet damages at most one zombie: the first live one, in collection
// order, whose box strictly contains the bullet. Spent bullets and killed
// zombies are removed after the pass, so no element is skipped. Plants with
// no health left are dropped last.
func (s *State) ResolveCollisions() (hits, killed, plantsLost int) {
	cell := s.cfg.CellSize
	spent := make([]bool, len(s.Bullets))
	dead := make([]bool, len(s.Zombies))

	for bi := range s.Bullets {
		b := &s.Bullets[bi]
		for zi := range s.Zombies {
			if dead[zi] {
				continue
			}
			z := &s.Zombies[zi]
			if !z.Box(cell).StrictlyContains(b.X, b.Y) {
				continue
			}
			z.Health -= s.cfg.BulletDamage
			spent[bi] = true
			hits++
			if z.Health <= 0 {
				dead[zi] = true
				killed++
			}
			break
		}
	}

	if hits > 0 {
		s.Bullets = compact(s.Bullets, spent)
	}
	if killed > 0 {
		s.Zombies = compact(s.Zombies, dead)
		s.Defeated += killed
	}

	before := len(s.Plants)
	s.Plants = filter(s.Plants, (*Plant).Alive)
	plantsLost = before - len(s.Plants)

	return hits, killed, plantsLost
}

// compact drops the elements whose index is marked, keeping order.
func compact[T any](items []T, marked []bool) []T {
	kept := items[:0]
	for i, it := range items {
		if !marked[i] {
			kept = append(kept, it)
		}
	}
	clear(items[len(kept):])
	return kept
}

// filter keeps the elements for which keep returns true, in order.
func filter[T any](items []T, keep func(*T) bool) []T {
	kept := items[:0]
	for i := range items {
		if keep(&items[i]) {
			kept = append(kept, items[i])
		}
	}
	clear(items[len(kept):])
	return kept
}
