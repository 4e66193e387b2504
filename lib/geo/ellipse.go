package geo

import (
	"math"
)

type Ellipse struct {
	Center *Point
	Rx     float64
	Ry     float64
}

func NewEllipse(center *Point, rx, ry float64) *Ellipse {
	return &Ellipse{
		Center: center,
		Rx:     rx,
		Ry:     ry,
	}
}

// ParametricAngle converts a visual angle (the direction of the ray from the
// center) into the parametric angle t where the ray meets the ellipse at
// (Rx·cos t, Ry·sin t).
func (e Ellipse) ParametricAngle(visual float64) float64 {
	if e.Rx == e.Ry || e.Rx == 0 || e.Ry == 0 {
		return visual
	}
	return math.Atan2(e.Rx*math.Sin(visual), e.Ry*math.Cos(visual))
}

// PointAt returns the point of the ellipse hit by the ray at visual angle a.
func (e Ellipse) PointAt(a float64) *Point {
	t := e.ParametricAngle(a)
	return NewPoint(e.Center.X+e.Rx*math.Cos(t), e.Center.Y+e.Ry*math.Sin(t))
}

// Tangent returns the unit direction of travel along the ellipse at visual
// angle a, for increasing angles (clockwise on screen).
func (e Ellipse) Tangent(a float64) Vector {
	t := e.ParametricAngle(a)
	v := NewVector(-e.Rx*math.Sin(t), e.Ry*math.Cos(t))
	if v.Length() == 0 {
		return NewVector(0, 0)
	}
	return v.Unit()
}
