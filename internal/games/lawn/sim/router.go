package sim

import "math"

// ClickOutcome is the single action a click was routed to.
type ClickOutcome uint8

const (
	ClickIgnored ClickOutcome = iota // Run is over
	ClickSelect                      // Toolbar slot picked a kind
	ClickToolbar                     // Toolbar hit outside any slot
	ClickCollect                     // A sun was collected
	ClickPlace                       // Placement attempted; see ClickResult.Place
)

// ClickResult describes how a click was handled.
type ClickResult struct {
	Outcome ClickOutcome
	Kind    Kind        // Kind selected or placement kind
	Place   PlaceResult // Valid when Outcome is ClickPlace
}

// Changed reports whether the click altered the state.
func (r ClickResult) Changed() bool {
	switch r.Outcome {
	case ClickSelect, ClickCollect:
		return true
	case ClickPlace:
		return r.Place == Placed
	default:
		return false
	}
}

// HandleClick routes a click at world position (x, y): toolbar first, then
// sun collection, then placement on the snapped cell.
func (s *State) HandleClick(x, y float64) ClickResult {
	if s.Phase == PhaseGameOver {
		return ClickResult{Outcome: ClickIgnored}
	}

	if y < s.cfg.CellSize {
		slot := int(math.Floor(x / s.cfg.SlotWidth))
		if x >= 0 && slot < int(kindCount) {
			k := Kind(slot)
			s.Select(k)
			return ClickResult{Outcome: ClickSelect, Kind: k}
		}
		return ClickResult{Outcome: ClickToolbar}
	}

	if s.Collect(x, y) {
		return ClickResult{Outcome: ClickCollect}
	}

	return ClickResult{
		Outcome: ClickPlace,
		Kind:    s.Selected,
		Place:   s.Place(x, y),
	}
}
