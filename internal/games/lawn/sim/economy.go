package sim

import "math"

// PlaceResult tells what a placement attempt did.
type PlaceResult uint8

const (
	Placed PlaceResult = iota
	Occupied
	InsufficientFunds
	OutOfBounds
	InToolbar
)

// String returns a short description of the result.
func (r PlaceResult) String() string {
	switch r {
	case Placed:
		return "placed"
	case Occupied:
		return "occupied"
	case InsufficientFunds:
		return "insufficient funds"
	case OutOfBounds:
		return "out of bounds"
	case InToolbar:
		return "in toolbar"
	default:
		return "unknown"
	}
}

// Select makes k the kind used by the next placement.
func (s *State) Select(k Kind) bool {
	if k >= kindCount {
		return false
	}
	s.Selected = k
	return true
}

// CanAfford reports whether the balance covers a plant of kind k.
func (s *State) CanAfford(k Kind) bool {
	return s.SunPoints >= s.cfg.Cost(k)
}

// Place tries to plant the selected kind in the cell under (x, y). The balance
// only changes when the result is Placed.
func (s *State) Place(x, y float64) PlaceResult {
	cell := s.cfg.CellSize
	if x < 0 || y < 0 {
		return OutOfBounds
	}
	col := int(math.Floor(x / cell))
	screenRow := int(math.Floor(y / cell))
	if screenRow == 0 {
		return InToolbar
	}
	if col >= s.cfg.Cols || screenRow > s.cfg.Rows {
		return OutOfBounds
	}

	row := screenRow - 1
	if s.PlantAt(row, col) != nil {
		return Occupied
	}
	if !s.CanAfford(s.Selected) {
		return InsufficientFunds
	}

	s.SunPoints -= s.cfg.Cost(s.Selected)
	s.Plants = append(s.Plants, Plant{
		Kind:   s.Selected,
		Row:    row,
		Col:    col,
		X:      float64(col) * cell,
		Y:      float64(screenRow) * cell,
		Health: s.cfg.PlantHealth,
	})
	return Placed
}

// Collect picks up the most recently added sun under (x, y) and credits its
// value. At most one sun is collected per call.
func (s *State) Collect(x, y float64) bool {
	for i := len(s.Suns) - 1; i >= 0; i-- {
		if !s.Suns[i].Contains(x, y) {
			continue
		}
		s.Suns[i].Collected = true
		s.Suns = filter(s.Suns, func(u *Sun) bool { return !u.Collected })
		s.SunPoints += s.cfg.SunValue
		return true
	}
	return false
}
