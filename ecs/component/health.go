package component

const DefaultMaxHealth = 5

// Health keeps Current within [0, Max]. Amounts are trusted to be
// non-negative.
type Health struct {
	Max     int
	Current int
}

func NewHealth(max int) *Health {
	if max <= 0 {
		max = DefaultMaxHealth
	}
	return &Health{Max: max, Current: max}
}

// Damage lowers health, stopping at zero, and returns the new value.
func (h *Health) Damage(amount int) int {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current
}

// Heal raises health, stopping at Max, and returns the new value.
func (h *Health) Heal(amount int) int {
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
	return h.Current
}

func (h *Health) IsDead() bool {
	return h.Current <= 0
}

func (h *Health) Reset() {
	h.Current = h.Max
}

var HealthComponent = NewComponent[Health]()

// HealthBar places the heart row on screen.
type HealthBar struct {
	X         float64
	Y         float64
	HeartSize float64
}

var HealthBarComponent = NewComponent[HealthBar]()
