// Package sim is the lawn-defense simulation: plants, zombies, bullets and
// suns stepped one tick at a time. It is UI-agnostic and deterministic for a
// given seed; frontends read the exported entity slices to draw.
package sim

// Kind identifies a plant variant.
type Kind uint8

const (
	KindShooter Kind = iota
	KindSunflower
	kindCount
)

// kindRule is the per-kind behaviour table entry.
type kindRule struct {
	name  string
	label string
	act   func(p *Plant, s *State, res *StepResult)
}

var kindRules = [kindCount]kindRule{
	KindShooter:   {name: "shooter", label: "Peashooter", act: (*Plant).shoot},
	KindSunflower: {name: "sunflower", label: "Sunflower", act: (*Plant).produce},
}

// Kinds returns all plant kinds in toolbar order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind maps a kind name ("shooter", "sunflower") back to a Kind.
func ParseKind(name string) (Kind, bool) {
	for k := Kind(0); k < kindCount; k++ {
		if kindRules[k].name == name {
			return k, true
		}
	}
	return 0, false
}

// String returns the kind's short name, also used for sprite file names.
func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindRules[k].name
}

// Label returns the toolbar label for the kind.
func (k Kind) Label() string {
	if k >= kindCount {
		return "?"
	}
	return kindRules[k].label
}

// Phase is the orchestrator state.
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}
