package sim_test

import (
	"testing"

	"github.com/vovakirdan/lawn-defense/internal/games/lawn/sim"
)

func TestEconomyPlacementAndCollection(t *testing.T) {
	cfg := quietConfig()
	s := sim.NewState(cfg, 1)

	if s.SunPoints != 150 {
		t.Fatalf("starting balance = %d, expected 150", s.SunPoints)
	}

	x, y := cellCenter(cfg, 0, 0)
	if r := s.HandleClick(x, y); r.Outcome != sim.ClickPlace || r.Place != sim.Placed {
		t.Fatalf("first shooter: %+v", r)
	}
	if s.SunPoints != 50 {
		t.Fatalf("balance after shooter = %d, expected 50", s.SunPoints)
	}

	x, y = cellCenter(cfg, 1, 0)
	if r := s.HandleClick(x, y); r.Place != sim.InsufficientFunds {
		t.Fatalf("second shooter should be rejected, got %v", r.Place)
	}
	if s.SunPoints != 50 || len(s.Plants) != 1 {
		t.Fatalf("rejected placement changed state: balance=%d plants=%d", s.SunPoints, len(s.Plants))
	}

	// Two suns later the shooter is affordable
	for range 2 {
		s.Suns = append(s.Suns, sim.Sun{X: 500, Y: 300, Radius: cfg.SunRadius})
		if r := s.HandleClick(505, 305); r.Outcome != sim.ClickCollect {
			t.Fatalf("expected collection, got %+v", r)
		}
	}
	if s.SunPoints != 100 {
		t.Fatalf("balance after two suns = %d, expected 100", s.SunPoints)
	}

	if r := s.HandleClick(x, y); r.Place != sim.Placed {
		t.Fatalf("shooter after collecting: %v", r.Place)
	}
	if s.SunPoints != 0 {
		t.Errorf("balance = %d, expected 0", s.SunPoints)
	}
}

func TestPlacementIdempotence(t *testing.T) {
	cfg := quietConfig()
	cfg.StartSun = 10000
	s := sim.NewState(cfg, 1)

	x, y := cellCenter(cfg, 2, 4)
	first := s.HandleClick(x, y)
	second := s.HandleClick(x+10, y-10) // same cell, different spot

	if first.Place != sim.Placed {
		t.Fatalf("first click: %v", first.Place)
	}
	if second.Place != sim.Occupied {
		t.Errorf("second click: %v, expected occupied", second.Place)
	}
	if len(s.Plants) != 1 {
		t.Errorf("expected 1 plant, got %d", len(s.Plants))
	}
	if s.SunPoints != 10000-cfg.ShooterCost {
		t.Errorf("balance = %d, occupied click must not charge", s.SunPoints)
	}

	p := s.PlantAt(2, 4)
	if p == nil {
		t.Fatal("PlantAt(2, 4) = nil")
	}
	if p.X != 4*cfg.CellSize || p.Y != 3*cfg.CellSize {
		t.Errorf("plant at (%v, %v), expected cell-aligned (320, 240)", p.X, p.Y)
	}
}

func TestPlaceRejectsOutsideLawn(t *testing.T) {
	cfg := quietConfig()
	s := sim.NewState(cfg, 1)

	tests := []struct {
		name     string
		x, y     float64
		expected sim.PlaceResult
	}{
		{"toolbar", 400, 10, sim.InToolbar},
		{"right of field", cfg.Width() + 5, 200, sim.OutOfBounds},
		{"below field", 100, cfg.Height() + 5, sim.OutOfBounds},
		{"negative", -1, 200, sim.OutOfBounds},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Place(tc.x, tc.y); got != tc.expected {
				t.Errorf("Place(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
	if s.SunPoints != cfg.StartSun || len(s.Plants) != 0 {
		t.Error("rejected placements must not change state")
	}
}

func TestSunCollectionRadius(t *testing.T) {
	cfg := quietConfig()
	s := sim.NewState(cfg, 1)
	s.Suns = append(s.Suns, sim.Sun{X: 300, Y: 300, Radius: 15})

	if s.Collect(316, 300) {
		t.Fatal("click outside the radius collected a sun")
	}
	if len(s.Suns) != 1 || s.SunPoints != cfg.StartSun {
		t.Fatal("missed click changed state")
	}

	if !s.Collect(310, 310) {
		t.Fatal("click inside the radius should collect")
	}
	if len(s.Suns) != 0 {
		t.Errorf("collected sun still in play")
	}
	if s.SunPoints != cfg.StartSun+25 {
		t.Errorf("balance = %d, expected %d", s.SunPoints, cfg.StartSun+25)
	}
}

func TestCollectTakesNewestOverlappingSun(t *testing.T) {
	cfg := quietConfig()
	s := sim.NewState(cfg, 1)
	s.Suns = append(s.Suns,
		sim.Sun{X: 300, Y: 300, Radius: 15},
		sim.Sun{X: 305, Y: 300, Radius: 15},
	)

	if !s.Collect(302, 300) {
		t.Fatal("expected collection")
	}
	if len(s.Suns) != 1 || s.Suns[0].X != 300 {
		t.Errorf("newest sun should be taken first, left %v", s.Suns)
	}
	if s.SunPoints != cfg.StartSun+cfg.SunValue {
		t.Errorf("only one sun should be credited, balance %d", s.SunPoints)
	}
}

func TestClickRouting(t *testing.T) {
	cfg := quietConfig()
	s := sim.NewState(cfg, 1)

	if r := s.HandleClick(150, 40); r.Outcome != sim.ClickSelect || s.Selected != sim.KindSunflower {
		t.Fatalf("toolbar slot 2: %+v, selected %v", r, s.Selected)
	}
	if r := s.HandleClick(50, 40); r.Outcome != sim.ClickSelect || s.Selected != sim.KindShooter {
		t.Fatalf("toolbar slot 1: %+v, selected %v", r, s.Selected)
	}
	if r := s.HandleClick(500, 40); r.Outcome != sim.ClickToolbar || r.Changed() {
		t.Fatalf("empty toolbar area: %+v", r)
	}
	if s.Selected != sim.KindShooter {
		t.Fatal("empty toolbar click changed the selection")
	}

	// A sun over an empty cell is collected instead of planting
	x, y := cellCenter(cfg, 2, 2)
	s.Suns = append(s.Suns, sim.Sun{X: x, Y: y, Radius: cfg.SunRadius})
	if r := s.HandleClick(x, y); r.Outcome != sim.ClickCollect {
		t.Fatalf("expected collection before placement, got %+v", r)
	}
	if len(s.Plants) != 0 {
		t.Fatal("collection click also planted")
	}

	// Next click on the same spot plants
	if r := s.HandleClick(x, y); r.Outcome != sim.ClickPlace || !r.Changed() {
		t.Fatalf("expected placement, got %+v", r)
	}

	s.Phase = sim.PhaseGameOver
	x, y = cellCenter(cfg, 0, 0)
	if r := s.HandleClick(x, y); r.Outcome != sim.ClickIgnored {
		t.Errorf("clicks after game over should be ignored, got %+v", r)
	}
	if len(s.Plants) != 1 {
		t.Error("ignored click planted")
	}
}
