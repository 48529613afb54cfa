package component

// TeleportConfig is one of the two fixed placements of a teleporting
// platform. X and Y are the centre.
type TeleportConfig struct {
	X          float64
	Y          float64
	W          float64
	H          float64
	Appearance string
}

// Teleport flips a platform between two prebuilt placements. The body always
// matches Active().
type Teleport struct {
	A   TeleportConfig
	B   TeleportConfig
	AtA bool

	// Cues rotate once per toggle; CueIndex belongs to this platform only.
	Cues     []string
	CueIndex int
}

func NewTeleport(a, b TeleportConfig, cues ...string) *Teleport {
	return &Teleport{A: a, B: b, AtA: true, Cues: cues}
}

func (t *Teleport) Active() TeleportConfig {
	if t.AtA {
		return t.A
	}
	return t.B
}

func (t *Teleport) Inactive() TeleportConfig {
	if t.AtA {
		return t.B
	}
	return t.A
}

// Apply writes the active placement to body.
func (t *Teleport) Apply(body Body) {
	if body == nil {
		return
	}
	cfg := t.Active()
	body.SetBounds(cfg.X, cfg.Y, cfg.W, cfg.H)
	body.SetAppearance(cfg.Appearance)
}

// Toggle switches to the other placement and returns the cue to play, or ""
// when the platform has none.
func (t *Teleport) Toggle(body Body) string {
	t.AtA = !t.AtA
	t.Apply(body)

	if len(t.Cues) == 0 {
		return ""
	}
	cue := t.Cues[t.CueIndex%len(t.Cues)]
	t.CueIndex = (t.CueIndex + 1) % len(t.Cues)
	return cue
}

// Update toggles once when edge is set. Holding the key must not arrive here
// as a second edge.
func (t *Teleport) Update(edge bool, body Body) (cue string, toggled bool) {
	if !edge {
		return "", false
	}
	return t.Toggle(body), true
}

var TeleportComponent = NewComponent[Teleport]()
