package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapAngle maps a radian angle into (-π, π].
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// Normalize returns the unit vector of (x, y), or zero for a zero vector.
func Normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}

// VelocityToward aims a velocity of the given speed from (fx, fy) at (tx, ty).
func VelocityToward(fx, fy, tx, ty, speed float64) (float64, float64) {
	nx, ny := Normalize(tx-fx, ty-fy)
	return nx * speed, ny * speed
}
