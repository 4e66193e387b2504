package prstgeom

import (
	"fmt"
	"math"

	"oss.terrastruct.com/prstgeom/lib/geo"
	"oss.terrastruct.com/prstgeom/lib/svg"
)

var calloutShapes = family{
	name:   "callouts",
	shapes: calloutTable(),
}

func calloutTable() map[string]Generator {
	shapes := map[string]Generator{
		"wedgeRectCallout":      wedgeRectCallout,
		"wedgeRoundRectCallout": wedgeRoundRectCallout,
		"wedgeEllipseCallout":   wedgeEllipseCallout,
		"cloudCallout":          cloudCallout,
	}
	for n := 1; n <= 3; n++ {
		shapes[fmt.Sprintf("callout%d", n)] = lineCallout(n, false)
		shapes[fmt.Sprintf("borderCallout%d", n)] = lineCallout(n, false)
		shapes[fmt.Sprintf("accentCallout%d", n)] = lineCallout(n, true)
		shapes[fmt.Sprintf("accentBorderCallout%d", n)] = lineCallout(n, true)
	}
	return shapes
}

// tailTip is where the tail of a wedge callout points, relative to the box.
func tailTip(w, h float64, a Adjustments) (float64, float64) {
	return w/2 + w*a.Ratio("adj1", -20833), h/2 + h*a.Ratio("adj2", 62500)
}

type edge int

const (
	noEdge edge = iota
	topEdge
	rightEdge
	bottomEdge
	leftEdge
)

// tailBase picks the edge a tail leaves from and the two base offsets
// along it, ordered by increasing coordinate.
func tailBase(w, h, r, tx, ty float64) (edge, float64, float64) {
	dx, dy := tx-w/2, ty-h/2
	if math.Abs(dx) <= w/2 && math.Abs(dy) <= h/2 {
		return noEdge, 0, 0
	}
	base := func(span, d float64) (float64, float64) {
		lo, hi := span*2/12, span*5/12
		if d > 0 {
			lo, hi = span*7/12, span*10/12
		}
		if span-r >= r {
			lo, hi = clamp(lo, r, span-r), clamp(hi, r, span-r)
		}
		return lo, hi
	}
	if math.Abs(dy)*w > math.Abs(dx)*h {
		lo, hi := base(w, dx)
		if dy < 0 {
			return topEdge, lo, hi
		}
		return bottomEdge, lo, hi
	}
	lo, hi := base(h, dy)
	if dx < 0 {
		return leftEdge, lo, hi
	}
	return rightEdge, lo, hi
}

// addTailedRect walks a rectangle with corner radius r clockwise, pulling
// a triangular tail out to (tx, ty) from the edge that faces it.
func addTailedRect(pc *svg.SvgPathContext, w, h, r, tx, ty float64) {
	side, lo, hi := tailBase(w, h, r, tx, ty)
	round := func(stAng float64) {
		if r > 0 {
			pc.ArcToDeg(r, r, stAng, 90)
		}
	}
	pc.M(r, 0)
	if side == topEdge {
		pc.Lines(lo, 0, tx, ty, hi, 0)
	}
	pc.L(false, w-r, 0)
	round(270)
	if side == rightEdge {
		pc.Lines(w, lo, tx, ty, w, hi)
	}
	pc.L(false, w, h-r)
	round(0)
	if side == bottomEdge {
		pc.Lines(hi, h, tx, ty, lo, h)
	}
	pc.L(false, r, h)
	round(90)
	if side == leftEdge {
		pc.Lines(0, hi, tx, ty, 0, lo)
	}
	pc.L(false, 0, r)
	round(180)
	pc.Z()
}

func wedgeRectCallout(w, h float64, a Adjustments) PathResult {
	tx, ty := tailTip(w, h, a)
	pc := svg.NewPath()
	addTailedRect(pc, w, h, 0, tx, ty)
	return filled(pc)
}

func wedgeRoundRectCallout(w, h float64, a Adjustments) PathResult {
	tx, ty := tailTip(w, h, a)
	r := ssOf(w, h) * a.Pinned("adj3", 16667, 0, 50000) / 100000
	pc := svg.NewPath()
	addTailedRect(pc, w, h, r, tx, ty)
	return filled(pc)
}

func insideEllipse(w, h, x, y float64) bool {
	if w == 0 || h == 0 {
		return false
	}
	nx, ny := (x-w/2)/(w/2), (y-h/2)/(h/2)
	return nx*nx+ny*ny <= 1
}

func wedgeEllipseCallout(w, h float64, a Adjustments) PathResult {
	tx, ty := tailTip(w, h, a)
	pc := svg.NewPath()
	if insideEllipse(w, h, tx, ty) {
		addEllipse(pc, w/2, h/2, w/2, h/2)
		return filled(pc)
	}
	const half = 10.
	ang := math.Atan2(ty-h/2, tx-w/2) * 180 / math.Pi
	p := ellipsePoint(w/2, h/2, w/2, h/2, ang+half)
	pc.M(p.X, p.Y)
	pc.ArcToDeg(w/2, h/2, ang+half, 360-2*half)
	pc.L(false, tx, ty)
	pc.Z()
	return filled(pc)
}

func cloudCallout(w, h float64, a Adjustments) PathResult {
	tx, ty := tailTip(w, h, a)
	pc := svg.NewPath()
	addCloud(pc, 0, 0, w, h)
	if insideEllipse(w, h, tx, ty) {
		return filled(pc)
	}
	ss := ssOf(w, h)
	ang := math.Atan2(ty-h/2, tx-w/2)
	edgePt := ellipsePoint(w/2, h/2, w/2, h/2, ang*180/math.Pi)
	tip := geo.NewPoint(tx, ty)
	for _, b := range []struct{ t, r float64 }{
		{0.25, ss * 0.065},
		{0.6, ss * 0.045},
		{1, ss * 0.03},
	} {
		c := edgePt.Interpolate(tip, b.t)
		addEllipse(pc, c.X, c.Y, b.r, b.r)
	}
	return filled(pc)
}

// leaderDefaults are the (y, x) handle pairs of each leader vertex for line
// callouts with one, two and three segments.
var leaderDefaults = [][]int64{
	{18750, -8333, 112500, -38333},
	{18750, -8333, 18750, -16667, 112500, -46667},
	{18750, -8333, 18750, -16667, 100000, -16667, 112963, -8333},
}

// lineCallout draws a rectangular body; its leader line, and the accent bar
// of accent variants, go in the stroke-only path. Border variants share the
// geometry and differ only in how the body is stroked.
func lineCallout(segments int, accent bool) Generator {
	defaults := leaderDefaults[segments-1]
	return func(w, h float64, a Adjustments) PathResult {
		pc := svg.NewPath()
		addRect(pc, 0, 0, w, h)

		leader := make([]float64, 0, len(defaults))
		for i := 0; i+1 < len(defaults); i += 2 {
			y := h * a.Ratio(fmt.Sprintf("adj%d", i+1), defaults[i])
			x := w * a.Ratio(fmt.Sprintf("adj%d", i+2), defaults[i+1])
			leader = append(leader, x, y)
		}
		lines := svg.NewPath()
		if accent {
			lines.Polyline(leader[0], 0, leader[0], h)
		}
		lines.Polyline(leader...)
		return filled(pc).withStroke(lines)
	}
}
