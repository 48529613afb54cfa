package component

// Renderable marks a body for the world pass. Lower layers draw first.
type Renderable struct {
	Layer int
	// Outline draws the shade border used by platforms.
	Outline bool
}

var RenderableComponent = NewComponent[Renderable]()
