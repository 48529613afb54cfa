package component

const DefaultInvulnerableMs = 800

// Invulnerable marks an entity as immune to damage until UntilMs.
type Invulnerable struct {
	UntilMs int64
}

func (i *Invulnerable) Active(now int64) bool {
	return i != nil && now < i.UntilMs
}

var InvulnerableComponent = NewComponent[Invulnerable]()
