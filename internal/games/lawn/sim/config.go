package sim

// Config holds the tunable constants of a run. A State copies it on
// creation and never changes it afterwards.
type Config struct {
	Rows     int     // Lanes, excluding the toolbar row
	Cols     int     // Columns
	CellSize float64 // Side of a square cell in world units

	StartSun      int     // Initial balance
	SunValue      int     // Points credited per collected sun
	ShooterCost   int     // Placement cost of a shooter
	SunflowerCost int     // Placement cost of a sunflower
	SlotWidth     float64 // Width of one toolbar slot

	PlantHealth  int // Starting plant health
	FireEvery    int // Shooter fires when its age is a multiple of this
	ProduceEvery int // Sunflower emits a sun when its age is a multiple of this

	ZombieHealth int     // Starting zombie health
	ZombieSpeed  float64 // Leftward movement per tick
	AttackEvery  int     // Bite when the cooldown counter is a multiple of this
	BiteDamage   int     // Plant health removed per bite
	ZombieEvery  int     // Spawn period in ticks

	BulletSpeed  float64 // Rightward movement per tick
	BulletDamage int     // Zombie health removed per hit

	SunSpeed  float64 // Fall speed per tick
	SunRadius float64 // Click radius
	SunEvery  int     // Sky spawn period in ticks
	SunMargin float64 // Horizontal margin for sky suns
}

// DefaultConfig returns the classic 5x9 lawn.
func DefaultConfig() Config {
	return Config{
		Rows:     5,
		Cols:     9,
		CellSize: 80,

		StartSun:      150,
		SunValue:      25,
		ShooterCost:   100,
		SunflowerCost: 50,
		SlotWidth:     100,

		PlantHealth:  100,
		FireEvery:    60,
		ProduceEvery: 300,

		ZombieHealth: 100,
		ZombieSpeed:  0.3,
		AttackEvery:  60,
		BiteDamage:   20,
		ZombieEvery:  300,

		BulletSpeed:  2,
		BulletDamage: 20,

		SunSpeed:  0.5,
		SunRadius: 15,
		SunEvery:  400,
		SunMargin: 15,
	}
}

// Width is the field width in world units.
func (c Config) Width() float64 {
	return float64(c.Cols) * c.CellSize
}

// Height is the field height in world units, toolbar row included.
func (c Config) Height() float64 {
	return float64(c.Rows+1) * c.CellSize
}

// Cost returns the placement cost of a kind.
func (c Config) Cost(k Kind) int {
	switch k {
	case KindShooter:
		return c.ShooterCost
	case KindSunflower:
		return c.SunflowerCost
	default:
		return 0
	}
}
