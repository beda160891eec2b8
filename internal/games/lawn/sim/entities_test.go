package sim_test

import (
	"testing"

	"github.com/vovakirdan/lawn-defense/internal/games/lawn/sim"
)

func TestShooterFiresOnlyWithZombieInLane(t *testing.T) {
	cfg := quietConfig()
	cfg.StartSun = 1000
	s := sim.NewState(cfg, 1)

	// Shooters in lane 0 and lane 2, zombie only in lane 2
	x, y := cellCenter(cfg, 0, 0)
	if r := s.HandleClick(x, y); r.Place != sim.Placed {
		t.Fatalf("place lane 0: %v", r.Place)
	}
	x, y = cellCenter(cfg, 2, 0)
	if r := s.HandleClick(x, y); r.Place != sim.Placed {
		t.Fatalf("place lane 2: %v", r.Place)
	}
	s.AddZombie(2)

	for i, res := range steps(s, 180) {
		tick := i + 1
		want := 0
		if tick%60 == 0 {
			want = 1
		}
		if res.BulletsFired != want {
			t.Fatalf("tick %d: fired %d bullets, expected %d", tick, res.BulletsFired, want)
		}
	}

	for _, b := range s.Bullets {
		if b.Row != 2 {
			t.Errorf("bullet in lane %d, only lane 2 has a zombie", b.Row)
		}
	}
}

func TestShooterBulletOrigin(t *testing.T) {
	cfg := quietConfig()
	s := sim.NewState(cfg, 1)

	x, y := cellCenter(cfg, 1, 3)
	s.HandleClick(x, y)
	s.AddZombie(1)
	steps(s, 60)

	if len(s.Bullets) != 1 {
		t.Fatalf("expected 1 bullet, got %d", len(s.Bullets))
	}
	b := s.Bullets[0]
	// Spawned at the plant's right edge, lane middle, then moved once
	if b.X != 4*cfg.CellSize+cfg.BulletSpeed {
		t.Errorf("bullet X = %v, expected %v", b.X, 4*cfg.CellSize+cfg.BulletSpeed)
	}
	if b.Y != 2.5*cfg.CellSize {
		t.Errorf("bullet Y = %v, expected %v", b.Y, 2.5*cfg.CellSize)
	}
}

func TestSunflowerPeriodicity(t *testing.T) {
	cfg := quietConfig()
	s := sim.NewState(cfg, 1)

	s.HandleClick(150, cfg.CellSize/2) // select sunflower
	x, y := cellCenter(cfg, 0, 0)
	if r := s.HandleClick(x, y); r.Place != sim.Placed || r.Kind != sim.KindSunflower {
		t.Fatalf("expected sunflower placement, got %+v", r)
	}

	var producedAt []int
	for i, res := range steps(s, 1000) {
		for range res.SunsProduced {
			producedAt = append(producedAt, i+1)
		}
	}

	expected := []int{300, 600, 900}
	if len(producedAt) != len(expected) {
		t.Fatalf("produced %d suns at %v, expected %v", len(producedAt), producedAt, expected)
	}
	for i := range expected {
		if producedAt[i] != expected[i] {
			t.Errorf("sun %d produced at age %d, expected %d", i, producedAt[i], expected[i])
		}
	}
}

func TestZombieBitesOnTotalAge(t *testing.T) {
	cfg := quietConfig()
	s := sim.NewState(cfg, 1)

	s.HandleClick(150, cfg.CellSize/2)
	x, y := cellCenter(cfg, 0, cfg.Cols-1)
	if r := s.HandleClick(x, y); r.Place != sim.Placed {
		t.Fatalf("place: %v", r.Place)
	}
	s.AddZombie(0)

	// First update only touches the plant's edge, so the zombie walks once.
	steps(s, 1)
	if s.Zombies[0].Attacking {
		t.Fatal("zombie should not attack while only touching the plant")
	}

	steps(s, 59)
	if !s.Zombies[0].Attacking {
		t.Fatal("zombie should be attacking")
	}
	if s.Plants[0].Health != cfg.PlantHealth {
		t.Fatalf("plant bitten too early: health %d", s.Plants[0].Health)
	}

	// Counter reaches 60 on the 61st update, not 60 ticks into the attack
	steps(s, 1)
	if s.Plants[0].Health != cfg.PlantHealth-cfg.BiteDamage {
		t.Fatalf("after first bite health = %d, expected %d", s.Plants[0].Health, cfg.PlantHealth-cfg.BiteDamage)
	}

	steps(s, 240)
	if s.Plants[0].Health != 0 {
		t.Fatalf("after five bites health = %d, expected 0", s.Plants[0].Health)
	}

	res := s.Step()
	if res.PlantsLost != 1 || len(s.Plants) != 0 {
		t.Errorf("dead plant should be removed on the next tick, lost=%d plants=%d", res.PlantsLost, len(s.Plants))
	}
	if s.Zombies[0].Attacking {
		t.Error("zombie should walk again once the plant is gone")
	}
}

func TestZombieIgnoresOtherLanes(t *testing.T) {
	cfg := quietConfig()
	s := sim.NewState(cfg, 1)

	x, y := cellCenter(cfg, 3, cfg.Cols-1)
	s.HandleClick(x, y)
	s.AddZombie(1)

	steps(s, 10)
	if s.Zombies[0].Attacking {
		t.Error("zombie attacked a plant in another lane")
	}
	if s.Zombies[0].X >= cfg.Width() {
		t.Error("zombie should keep walking")
	}
}

func TestSunContains(t *testing.T) {
	u := sim.Sun{X: 100, Y: 100, Radius: 15}

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"center", 100, 100, true},
		{"on radius", 115, 100, true},
		{"diagonal inside", 110, 110, true},
		{"just outside", 115.1, 100, false},
		{"diagonal outside", 111, 111, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := u.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestKindTable(t *testing.T) {
	kinds := sim.Kinds()
	if len(kinds) != 2 || kinds[0] != sim.KindShooter || kinds[1] != sim.KindSunflower {
		t.Fatalf("unexpected toolbar order %v", kinds)
	}

	for _, k := range kinds {
		parsed, ok := sim.ParseKind(k.String())
		if !ok || parsed != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), parsed, ok)
		}
	}
	if _, ok := sim.ParseKind("wallnut"); ok {
		t.Error("unknown kind should not parse")
	}

	cfg := sim.DefaultConfig()
	if cfg.Cost(sim.KindShooter) != 100 || cfg.Cost(sim.KindSunflower) != 50 {
		t.Errorf("unexpected costs %d/%d", cfg.Cost(sim.KindShooter), cfg.Cost(sim.KindSunflower))
	}
}
