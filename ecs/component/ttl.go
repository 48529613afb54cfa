package component

// TTL destroys its entity, and releases its body, once the frame clock
// reaches ExpiresAtMs.
type TTL struct {
	ExpiresAtMs int64
}

var TTLComponent = NewComponent[TTL]()
