package sim_test

import (
	"math"
	"testing"

	"github.com/vovakirdan/lawn-defense/internal/games/lawn/sim"
)

func TestSpawnTiming(t *testing.T) {
	cfg := sim.DefaultConfig()
	s := sim.NewState(cfg, 7)

	for i, res := range steps(s, 1200) {
		tick := i + 1
		if spawned := res.ZombieLane >= 0; spawned != (tick%300 == 0) {
			t.Fatalf("tick %d: zombie spawned = %v", tick, spawned)
		}
		if res.ZombieLane >= cfg.Rows {
			t.Fatalf("tick %d: lane %d out of range", tick, res.ZombieLane)
		}
		if res.SkySun != (tick%400 == 0) {
			t.Fatalf("tick %d: sky sun = %v", tick, res.SkySun)
		}
	}

	if len(s.Zombies) != 4 {
		t.Errorf("expected 4 zombies after 1200 ticks, got %d", len(s.Zombies))
	}
	for _, u := range s.Suns {
		if u.X < cfg.SunMargin || u.X >= cfg.Width()-cfg.SunMargin {
			t.Errorf("sky sun at x=%v outside the margins", u.X)
		}
	}
}

func TestFirstStepDoesNotSpawn(t *testing.T) {
	s := sim.NewState(sim.DefaultConfig(), 1)
	res := s.Step()

	if res.Tick != 1 {
		t.Errorf("first tick = %d, expected 1", res.Tick)
	}
	if res.ZombieLane != -1 || res.SkySun {
		t.Error("nothing should spawn on the first tick")
	}
}

func TestZombieWalkToGameOver(t *testing.T) {
	cfg := sim.DefaultConfig()
	s := sim.NewState(cfg, 99)

	steps(s, 299)
	if len(s.Zombies) != 0 {
		t.Fatal("zombie spawned before tick 300")
	}

	res := s.Step()
	if res.ZombieLane < 0 || res.ZombieLane >= cfg.Rows {
		t.Fatalf("tick 300 should spawn a zombie in [0,%d), got lane %d", cfg.Rows, res.ZombieLane)
	}
	z := s.Zombies[0]
	if z.Y != float64(res.ZombieLane+1)*cfg.CellSize {
		t.Errorf("zombie y = %v does not match lane %d", z.Y, res.ZombieLane)
	}
	if math.Abs(z.X-(cfg.Width()-cfg.ZombieSpeed)) > 1e-9 {
		t.Errorf("zombie x after its first update = %v, expected %v", z.X, cfg.Width()-cfg.ZombieSpeed)
	}

	// 720 / 0.3 = 2400 updates; the first one happened on tick 300.
	triggered := 0
	var overAt uint64
	for !s.Over() && s.Tick < 5000 {
		r := s.Step()
		if r.GameOverTriggered {
			triggered++
			overAt = r.Tick
		}
	}

	if !s.Over() {
		t.Fatal("game never ended")
	}
	if overAt < 2698 || overAt > 2700 {
		t.Errorf("game over at tick %d, expected about 2699", overAt)
	}

	// Frozen afterwards
	tick := s.Tick
	zombies := append([]sim.Zombie(nil), s.Zombies...)
	suns := len(s.Suns)
	for _, r := range steps(s, 100) {
		if r.GameOverTriggered {
			triggered++
		}
	}

	if triggered != 1 {
		t.Errorf("game over triggered %d times, expected 1", triggered)
	}
	if s.Tick != tick {
		t.Errorf("clock advanced after game over: %d -> %d", tick, s.Tick)
	}
	for i := range zombies {
		if s.Zombies[i] != zombies[i] {
			t.Errorf("zombie %d moved after game over", i)
		}
	}
	if len(s.Suns) != suns {
		t.Error("suns changed after game over")
	}
}

func TestExactSpeedReachesEdge(t *testing.T) {
	cfg := quietConfig()
	cfg.ZombieSpeed = 0.5 // exact in binary
	s := sim.NewState(cfg, 1)
	s.AddZombie(0)

	results := steps(s, 1439)
	for _, r := range results {
		if r.GameOverTriggered {
			t.Fatal("game over too early")
		}
	}

	res := s.Step()
	if !res.GameOverTriggered || s.Zombies[0].X != 0 {
		t.Errorf("expected game over at x=0 on update 1440, x=%v", s.Zombies[0].X)
	}
}

func TestEntitiesExpireAtEdges(t *testing.T) {
	cfg := quietConfig()
	s := sim.NewState(cfg, 1)
	s.Bullets = append(s.Bullets,
		sim.Bullet{Row: 0, X: cfg.Width() - 1, Y: 120},
		sim.Bullet{Row: 0, X: 100, Y: 120},
	)
	s.Suns = append(s.Suns,
		sim.Sun{X: 100, Y: cfg.Height(), Radius: 15},
		sim.Sun{X: 100, Y: 200, Radius: 15},
	)

	res := s.Step()

	if res.BulletsExpired != 1 || len(s.Bullets) != 1 || s.Bullets[0].X != 102 {
		t.Errorf("bullets: expired=%d left=%v", res.BulletsExpired, s.Bullets)
	}
	if res.SunsExpired != 1 || len(s.Suns) != 1 || s.Suns[0].Y != 200.5 {
		t.Errorf("suns: expired=%d left=%v", res.SunsExpired, s.Suns)
	}
}

func TestShooterDefendsLane(t *testing.T) {
	cfg := quietConfig()
	s := sim.NewState(cfg, 1)

	x, y := cellCenter(cfg, 0, 0)
	s.HandleClick(x, y)
	s.AddZombie(0)

	killed := 0
	for range 3000 {
		res := s.Step()
		killed += res.Killed
		if s.Over() {
			t.Fatal("single zombie should not get past a shooter")
		}
		if killed > 0 {
			break
		}
	}

	if killed != 1 || s.Defeated != 1 {
		t.Fatalf("killed=%d defeated=%d, expected 1", killed, s.Defeated)
	}
	if len(s.Zombies) != 0 {
		t.Error("dead zombie still in play")
	}
}

func TestDeterminism(t *testing.T) {
	a := sim.NewState(sim.DefaultConfig(), 12345)
	b := sim.NewState(sim.DefaultConfig(), 12345)

	for i := range 3000 {
		ra, rb := a.Step(), b.Step()
		if ra != rb {
			t.Fatalf("tick %d: results differ: %+v vs %+v", i+1, ra, rb)
		}
	}
	if len(a.Zombies) != len(b.Zombies) || len(a.Suns) != len(b.Suns) {
		t.Fatal("entity counts differ")
	}
	for i := range a.Suns {
		if a.Suns[i] != b.Suns[i] {
			t.Errorf("sun %d differs", i)
		}
	}
}
