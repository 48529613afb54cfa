package component

// Action is a logical input independent of the physical key.
type Action uint8

const (
	ActionLeft Action = iota
	ActionRight
	ActionJump
	ActionTongue
	ActionTeleport
	ActionRestart
	ActionNextLevel
	actionCount
)

// Actions lists every action in order.
func Actions() []Action {
	out := make([]Action, 0, actionCount)
	for a := Action(0); a < actionCount; a++ {
		out = append(out, a)
	}
	return out
}

func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionJump:
		return "jump"
	case ActionTongue:
		return "tongue"
	case ActionTeleport:
		return "teleport"
	case ActionRestart:
		return "restart"
	case ActionNextLevel:
		return "next_level"
	default:
		return "unknown"
	}
}

// Input is one frame's snapshot. Held is level-triggered; Pressed is true
// only on the frame the action went down.
type Input struct {
	Held    [actionCount]bool
	Pressed [actionCount]bool
}

func (in *Input) IsHeld(a Action) bool {
	return a < actionCount && in.Held[a]
}

func (in *Input) JustPressed(a Action) bool {
	return a < actionCount && in.Pressed[a]
}

var InputComponent = NewComponent[Input]()
