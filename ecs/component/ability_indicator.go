package component

import (
	"math"

	"github.com/milk9111/phaseshift/common"
)

type Ability uint8

const (
	AbilityTongue Ability = iota + 1
	AbilityTeleport
)

func (a Ability) String() string {
	switch a {
	case AbilityTongue:
		return "tongue"
	case AbilityTeleport:
		return "teleport"
	default:
		return "unknown"
	}
}

const EventAbilityUsed = "ability_used"

// AbilityEvent is pushed on the world queue whenever an ability fires.
type AbilityEvent struct {
	Ability Ability
}

const (
	IndicatorUp    = -math.Pi / 2
	IndicatorDown  = math.Pi / 2
	IndicatorSpeed = 0.2
)

// AbilityIndicator is a dial that eases toward the direction of the last
// ability used.
type AbilityIndicator struct {
	Current float64
	Target  float64
	Speed   float64

	X      float64
	Y      float64
	Radius float64
}

func NewAbilityIndicator(x, y, radius float64) *AbilityIndicator {
	return &AbilityIndicator{
		Current: IndicatorUp,
		Target:  IndicatorUp,
		Speed:   IndicatorSpeed,
		X:       x,
		Y:       y,
		Radius:  radius,
	}
}

func (a *AbilityIndicator) OnTongueUsed() {
	a.Target = IndicatorUp
}

func (a *AbilityIndicator) OnTeleportUsed() {
	a.Target = IndicatorDown
}

// Advance moves Current a fixed fraction of the shortest signed arc toward
// Target.
func (a *AbilityIndicator) Advance() {
	speed := a.Speed
	if speed <= 0 {
		speed = IndicatorSpeed
	}
	diff := common.WrapAngle(a.Target - a.Current)
	a.Current += diff * speed
}

var AbilityIndicatorComponent = NewComponent[AbilityIndicator]()
