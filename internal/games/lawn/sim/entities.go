package sim

import "github.com/vovakirdan/lawn-defense/internal/core"

// Plant is a defender fixed to one grid cell.
type Plant struct {
	Kind   Kind
	Row    int     // Lane index (0-based, toolbar excluded)
	Col    int     // Column index
	X, Y   float64 // Cell-aligned top-left corner in world units
	Health int
	Age    int // Ticks since placement
}

// Box returns the plant's footprint.
func (p *Plant) Box(cell float64) core.Box {
	return core.Box{X: p.X, Y: p.Y, W: cell, H: cell}
}

// Alive reports whether the plant still has health left.
func (p *Plant) Alive() bool {
	return p.Health > 0
}

// update ages the plant and runs its kind's action.
func (p *Plant) update(s *State, res *StepResult) {
	p.Age++
	kindRules[p.Kind].act(p, s, res)
}

// shoot fires one bullet every FireEvery ticks of age while a zombie is in the lane.
func (p *Plant) shoot(s *State, res *StepResult) {
	if p.Age%s.cfg.FireEvery != 0 || !s.zombieInLane(p.Row) {
		return
	}
	cell := s.cfg.CellSize
	s.Bullets = append(s.Bullets, Bullet{
		Row: p.Row,
		X:   p.X + cell,
		Y:   p.Y + cell/2,
	})
	res.BulletsFired++
}

// produce drops a sun on the plant every ProduceEvery ticks of age.
func (p *Plant) produce(s *State, res *StepResult) {
	if p.Age%s.cfg.ProduceEvery != 0 {
		return
	}
	s.Suns = append(s.Suns, Sun{
		X:      p.X + s.cfg.CellSize/2,
		Y:      p.Y,
		Radius: s.cfg.SunRadius,
	})
	res.SunsProduced++
}

// Zombie walks left along its lane and bites plants in its way.
type Zombie struct {
	Row       int     // Lane index, fixed for life
	X, Y      float64 // Top-left corner; Y never changes
	Health    int
	Attacking bool
	Cooldown  int // Ticks lived; bites land when this is a multiple of AttackEvery
}

// Box returns the zombie's footprint.
func (z *Zombie) Box(cell float64) core.Box {
	return core.Box{X: z.X, Y: z.Y, W: cell, H: cell}
}

// update bites the first overlapping plant in the lane or walks left.
// It reports whether the zombie reached the left edge.
//
// The cooldown counter is never reset, so bites follow the zombie's total
// age rather than the time spent attacking.
func (z *Zombie) update(s *State) bool {
	cell := s.cfg.CellSize
	z.Attacking = false

	zb := z.Box(cell)
	for i := range s.Plants {
		p := &s.Plants[i]
		if p.Row != z.Row || !zb.OverlapsX(p.Box(cell)) {
			continue
		}
		z.Attacking = true
		if z.Cooldown%s.cfg.AttackEvery == 0 {
			p.Health -= s.cfg.BiteDamage
		}
		break
	}

	if !z.Attacking {
		z.X -= s.cfg.ZombieSpeed
	}
	z.Cooldown++

	return z.X <= 0
}

// Bullet flies right along its lane.
type Bullet struct {
	Row  int
	X, Y float64
}

func (b *Bullet) update(s *State) {
	b.X += s.cfg.BulletSpeed
}

// Sun falls from the sky or a sunflower until collected.
type Sun struct {
	X, Y      float64 // Center
	Radius    float64
	Collected bool
}

func (u *Sun) update(s *State) {
	u.Y += s.cfg.SunSpeed
}

// Contains reports whether (px, py) is within the sun's click radius.
func (u *Sun) Contains(px, py float64) bool {
	dx := u.X - px
	dy := u.Y - py
	return dx*dx+dy*dy <= u.Radius*u.Radius
}
