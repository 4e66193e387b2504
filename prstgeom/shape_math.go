package prstgeom

import (
	"math"

	"oss.terrastruct.com/prstgeom/lib/geo"
	"oss.terrastruct.com/prstgeom/lib/svg"
)

var mathShapes = family{
	name: "math",
	shapes: map[string]Generator{
		"mathPlus":     mathPlus,
		"mathMinus":    mathMinus,
		"mathMultiply": mathMultiply,
		"mathDivide":   mathDivide,
		"mathEqual":    mathEqual,
		"mathNotEqual": mathNotEqual,
	},
}

// glyphReach is the half extent of every math glyph, as a share of the box.
const glyphReach = 0.7349

func mathPlus(w, h float64, a Adjustments) PathResult {
	ss := ssOf(w, h)
	dx1, dy1 := w*glyphReach/2, h*glyphReach/2
	dx2 := ss * a.Pinned("adj1", 23520, 0, 73490) / 200000
	x1, x2, x3, x4 := w/2-dx1, w/2-dx2, w/2+dx2, w/2+dx1
	y1, y2, y3, y4 := h/2-dy1, h/2-dx2, h/2+dx2, h/2+dy1
	pc := svg.NewPath()
	pc.Polygon(
		x1, y2, x2, y2, x2, y1, x3, y1, x3, y2, x4, y2,
		x4, y3, x3, y3, x3, y4, x2, y4, x2, y3, x1, y3,
	)
	return filled(pc)
}

func mathMinus(w, h float64, a Adjustments) PathResult {
	dy1 := h * a.Pinned("adj1", 23520, 0, 100000) / 200000
	dx1 := w * glyphReach / 2
	pc := svg.NewPath()
	addRect(pc, w/2-dx1, h/2-dy1, 2*dx1, 2*dy1)
	return filled(pc)
}

// mathMultiply is one 12-vertex polygon: each diagonal arm ends in two
// flank vertices and arms meet at notches halfThickness·√2 from center.
func mathMultiply(w, h float64, a Adjustments) PathResult {
	const reach = 0.7
	half := ssOf(w, h) * a.Pinned("adj1", 23520, 0, 51965) / 200000
	c := geo.NewPoint(w/2, h/2)
	notch := half * math.Sqrt2

	arms := []geo.Vector{
		geo.NewVector(w, -h),
		geo.NewVector(w, h),
		geo.NewVector(-w, h),
		geo.NewVector(-w, -h),
	}
	notches := []geo.Vector{
		geo.NewVector(0, -1),
		geo.NewVector(1, 0),
		geo.NewVector(0, 1),
		geo.NewVector(-1, 0),
	}

	xys := make([]float64, 0, 24)
	for i, arm := range arms {
		p := c.AddVector(notches[i].Multiply(notch))
		xys = append(xys, p.X, p.Y)

		end := c.AddVector(geo.NewVector(arm[0]*reach/2, arm[1]*reach/2))
		var n geo.Vector
		if arm.Length() == 0 {
			n = geo.NewVector(0, 0)
		} else {
			n = arm.Unit().Perpendicular().Multiply(half)
		}
		before := end.AddVector(n.Multiply(-1))
		after := end.AddVector(n)
		xys = append(xys, before.X, before.Y, after.X, after.Y)
	}
	pc := svg.NewPath()
	pc.Polygon(xys...)
	return filled(pc)
}

func mathDivide(w, h float64, a Adjustments) PathResult {
	a1 := a.Pinned("adj1", 23520, 1000, 36745)
	a3 := a.Pinned("adj3", 11760, 1000, (73490-a1)/4)
	a2 := a.Pinned("adj2", 5880, 0, 73490-4*a3-a1)
	dy1 := h * a1 / 200000
	yg := h * a2 / 100000
	rad := h * a3 / 100000
	dx1 := w * glyphReach / 2

	pc := svg.NewPath()
	addEllipse(pc, w/2, h/2-dy1-yg-rad, rad, rad)
	addRect(pc, w/2-dx1, h/2-dy1, 2*dx1, 2*dy1)
	addEllipse(pc, w/2, h/2+dy1+yg+rad, rad, rad)
	return filled(pc)
}

func equalBars(pc *svg.SvgPathContext, w, h float64, a Adjustments) (float64, float64) {
	a1 := a.Pinned("adj1", 23520, 0, 36745)
	a2 := a.Pinned("adj2", 11760, 0, 100000-2*a1)
	dy1 := h * a1 / 100000
	dy2 := h * a2 / 200000
	dx1 := w * glyphReach / 2
	addRect(pc, w/2-dx1, h/2-dy2-dy1, 2*dx1, dy1)
	addRect(pc, w/2-dx1, h/2+dy2, 2*dx1, dy1)
	return dy1, dy2
}

func mathEqual(w, h float64, a Adjustments) PathResult {
	pc := svg.NewPath()
	equalBars(pc, w, h, a)
	return filled(pc)
}

func mathNotEqual(w, h float64, a Adjustments) PathResult {
	pc := svg.NewPath()
	dy1, dy2 := equalBars(pc, w, h, Adjustments{
		"adj1": int64(a.Get("adj1", 23520)),
		"adj2": int64(a.Get("adj3", 11760)),
	})

	ang := geo.Deg(geo.Pin(70, a.Degrees("adj2", 6600000), 110))
	u := geo.NewVector(math.Cos(ang), math.Sin(ang))
	reach := (dy2 + dy1) * 1.6
	if s := math.Abs(u[1]); s > 0 {
		reach /= s
	}
	n := u.Perpendicular().Multiply(dy1 / 2)
	c := geo.NewPoint(w/2, h/2)
	far := c.AddVector(u.Multiply(reach))
	near := c.AddVector(u.Multiply(-reach))
	p1, p2 := far.AddVector(n), far.AddVector(n.Multiply(-1))
	p3, p4 := near.AddVector(n.Multiply(-1)), near.AddVector(n)
	polygonCW(pc, p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y, p4.X, p4.Y)
	return filled(pc)
}
