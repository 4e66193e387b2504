package geo

import "math"

// Vector is a direction or offset in y-down screen space.
type Vector [2]float64

func NewVector(x, y float64) Vector {
	return Vector{x, y}
}

func (a Vector) Add(b Vector) Vector {
	return Vector{a[0] + b[0], a[1] + b[1]}
}

func (a Vector) Multiply(v float64) Vector {
	return Vector{a[0] * v, a[1] * v}
}

func (a Vector) Length() float64 {
	return math.Hypot(a[0], a[1])
}

// Unit scales a to length 1. The zero vector stays zero.
func (a Vector) Unit() Vector {
	l := a.Length()
	if l == 0 {
		return a
	}
	return a.Multiply(1 / l)
}

// Perpendicular returns a rotated 90° clockwise on screen.
func (a Vector) Perpendicular() Vector {
	return Vector{-a[1], a[0]}
}
