package component

type Faction uint8

const (
	FactionPlayer Faction = iota + 1
	FactionEnemy
)

// Projectile damages the first opposing body it overlaps.
type Projectile struct {
	Owner  Faction
	Damage int
}

var ProjectileComponent = NewComponent[Projectile]()
