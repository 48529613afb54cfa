package common

// Rect is an axis-aligned box in screen pixels with X, Y at the top-left.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// CenteredRect builds a Rect from a centre point and size.
func CenteredRect(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, Width: w, Height: h}
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.Width && py >= r.Y && py <= r.Y+r.Height
}
