package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/phaseshift/ecs"
	"github.com/milk9111/phaseshift/ecs/component"
)

// InputSource answers level ("held") and edge ("just pressed") queries for
// logical actions.
type InputSource interface {
	Held(a component.Action) bool
	JustPressed(a component.Action) bool
}

type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

// Update samples the source once and copies the snapshot into every Input
// component.
func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || i.source == nil || w == nil {
		return
	}

	var snapshot component.Input
	for _, a := range component.Actions() {
		snapshot.Held[a] = i.source.Held(a)
		snapshot.Pressed[a] = i.source.JustPressed(a)
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		*input = snapshot
	})
}

const stickDeadzone = 0.2

var keyBindings = map[component.Action][]ebiten.Key{
	component.ActionLeft:      {ebiten.KeyA, ebiten.KeyArrowLeft},
	component.ActionRight:     {ebiten.KeyD, ebiten.KeyArrowRight},
	component.ActionJump:      {ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp},
	component.ActionTongue:    {ebiten.KeyQ},
	component.ActionTeleport:  {ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
	component.ActionRestart:   {ebiten.KeyR},
	component.ActionNextLevel: {ebiten.KeyN},
}

var padBindings = map[component.Action]ebiten.StandardGamepadButton{
	component.ActionLeft:      ebiten.StandardGamepadButtonLeftLeft,
	component.ActionRight:     ebiten.StandardGamepadButtonLeftRight,
	component.ActionJump:      ebiten.StandardGamepadButtonRightBottom,
	component.ActionTongue:    ebiten.StandardGamepadButtonRightLeft,
	component.ActionTeleport:  ebiten.StandardGamepadButtonFrontTopRight,
	component.ActionRestart:   ebiten.StandardGamepadButtonCenterRight,
	component.ActionNextLevel: ebiten.StandardGamepadButtonCenterLeft,
}

// EbitenInput reads the keyboard and the first standard gamepad.
type EbitenInput struct {
	pads []ebiten.GamepadID
}

func NewEbitenInput() *EbitenInput {
	return &EbitenInput{}
}

func (in *EbitenInput) gamepad() (ebiten.GamepadID, bool) {
	in.pads = ebiten.AppendGamepadIDs(in.pads[:0])
	for _, id := range in.pads {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			return id, true
		}
	}
	return 0, false
}

func (in *EbitenInput) Held(a component.Action) bool {
	for _, k := range keyBindings[a] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	id, ok := in.gamepad()
	if !ok {
		return false
	}
	if b, ok := padBindings[a]; ok && ebiten.IsStandardGamepadButtonPressed(id, b) {
		return true
	}
	stick := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	switch a {
	case component.ActionLeft:
		return stick < -stickDeadzone
	case component.ActionRight:
		return stick > stickDeadzone
	}
	return false
}

func (in *EbitenInput) JustPressed(a component.Action) bool {
	for _, k := range keyBindings[a] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	id, ok := in.gamepad()
	if !ok {
		return false
	}
	b, ok := padBindings[a]
	return ok && inpututil.IsStandardGamepadButtonJustPressed(id, b)
}
