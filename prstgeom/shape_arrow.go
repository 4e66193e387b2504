package prstgeom

import (
	"math"

	"oss.terrastruct.com/prstgeom/lib/geo"
	"oss.terrastruct.com/prstgeom/lib/svg"
)

var arrowShapes = family{
	name: "arrows",
	shapes: map[string]Generator{
		"rightArrow":             oriented(toRight, blockArrow),
		"leftArrow":              oriented(toLeft, blockArrow),
		"upArrow":                oriented(toUp, blockArrow),
		"downArrow":              oriented(toDown, blockArrow),
		"leftRightArrow":         oriented(toRight, doubleArrow),
		"upDownArrow":            oriented(toDown, doubleArrow),
		"quadArrow":              quadArrow,
		"leftRightUpArrow":       leftRightUpArrow,
		"leftUpArrow":            leftUpArrow,
		"bentUpArrow":            bentUpArrow,
		"bentArrow":              bentArrow,
		"uturnArrow":             uturnArrow,
		"curvedRightArrow":       oriented(toRight, curvedArrow),
		"curvedLeftArrow":        oriented(toLeft, curvedArrow),
		"curvedDownArrow":        oriented(toDown, curvedArrow),
		"curvedUpArrow":          oriented(toUp, curvedArrow),
		"stripedRightArrow":      stripedRightArrow,
		"notchedRightArrow":      notchedRightArrow,
		"homePlate":              homePlate,
		"chevron":                chevron,
		"rightArrowCallout":      oriented(toRight, arrowCallout),
		"leftArrowCallout":       oriented(toLeft, arrowCallout),
		"upArrowCallout":         oriented(toUp, arrowCallout),
		"downArrowCallout":       oriented(toDown, arrowCallout),
		"leftRightArrowCallout":  oriented(toRight, doubleArrowCallout),
		"upDownArrowCallout":     oriented(toDown, doubleArrowCallout),
		"quadArrowCallout":       quadArrowCallout,
		"circularArrow":          circularArrow,
		"leftCircularArrow":      leftCircularArrow,
		"leftRightCircularArrow": leftRightCircularArrow,
		"swooshArrow":            swooshArrow,
	},
}

// direction is where an arrow drawn pointing right ends up pointing.
type direction int

const (
	toRight direction = iota
	toLeft
	toDown
	toUp
)

func (d direction) view(pc *svg.SvgPathContext, w, h float64) view {
	switch d {
	case toLeft:
		return newView(pc, w, h, false, true, false)
	case toDown:
		return newView(pc, w, h, true, false, false)
	case toUp:
		return newView(pc, w, h, true, false, true)
	default:
		return newView(pc, w, h, false, false, false)
	}
}

// oriented turns a right-pointing formula into a generator for d.
func oriented(d direction, draw func(v view, a Adjustments)) Generator {
	return func(w, h float64, a Adjustments) PathResult {
		pc := svg.NewPath()
		draw(d.view(pc, w, h), a)
		return filled(pc)
	}
}

func blockArrow(v view, a Adjustments) {
	W, H := v.size()
	ss := ssOf(W, H)
	dy1 := H * a.Pinned("adj1", 50000, 0, 100000) / 200000
	dx1 := ss * a.Pinned("adj2", 50000, 0, maxAdj(W, ss, 100000)) / 100000
	x1 := W - dx1
	y1, y2 := H/2-dy1, H/2+dy1
	v.Polygon(0, y1, x1, y1, x1, 0, W, H/2, x1, H, x1, y2, 0, y2)
}

func doubleArrow(v view, a Adjustments) {
	W, H := v.size()
	ss := ssOf(W, H)
	dy1 := H * a.Pinned("adj1", 50000, 0, 100000) / 200000
	x1 := ss * a.Pinned("adj2", 50000, 0, maxAdj(W, ss, 50000)) / 100000
	x2 := W - x1
	y1, y2 := H/2-dy1, H/2+dy1
	v.Polygon(
		0, H/2, x1, 0, x1, y1, x2, y1, x2, 0, W, H/2,
		x2, H, x2, y2, x1, y2, x1, H,
	)
}

// crossArms returns the head length, head half width and stem half width
// shared by the multi-armed arrows.
func crossArms(w, h float64, a Adjustments, def int64) (float64, float64, float64) {
	ss := ssOf(w, h)
	a2 := a.Pinned("adj2", def, 0, 50000)
	a1 := a.Pinned("adj1", def, 0, 2*a2)
	a3 := a.Pinned("adj3", def, 0, (100000-2*a2)/2)
	return ss * a3 / 100000, ss * a2 / 100000, ss * a1 / 200000
}

func quadArrow(w, h float64, a Adjustments) PathResult {
	hl, dh, ds := crossArms(w, h, a, 22500)
	hc, vc := w/2, h/2
	pc := svg.NewPath()
	pc.Polygon(
		0, vc, hl, vc-dh, hl, vc-ds, hc-ds, vc-ds, hc-ds, hl, hc-dh, hl,
		hc, 0, hc+dh, hl, hc+ds, hl, hc+ds, vc-ds, w-hl, vc-ds, w-hl, vc-dh,
		w, vc, w-hl, vc+dh, w-hl, vc+ds, hc+ds, vc+ds, hc+ds, h-hl, hc+dh, h-hl,
		hc, h, hc-dh, h-hl, hc-ds, h-hl, hc-ds, vc+ds, hl, vc+ds, hl, vc+dh,
	)
	return filled(pc)
}

func leftRightUpArrow(w, h float64, a Adjustments) PathResult {
	hl, dh, ds := crossArms(w, h, a, 25000)
	hc, yc := w/2, h-dh
	pc := svg.NewPath()
	pc.Polygon(
		0, yc, hl, yc-dh, hl, yc-ds, hc-ds, yc-ds, hc-ds, hl, hc-dh, hl,
		hc, 0, hc+dh, hl, hc+ds, hl, hc+ds, yc-ds, w-hl, yc-ds, w-hl, yc-dh,
		w, yc, w-hl, h, w-hl, yc+ds, hl, yc+ds, hl, h,
	)
	return filled(pc)
}

func leftUpArrow(w, h float64, a Adjustments) PathResult {
	hl, dh, ds := crossArms(w, h, a, 25000)
	xc, yc := w-dh, h-dh
	pc := svg.NewPath()
	pc.Polygon(
		0, yc, hl, yc-dh, hl, yc-ds, xc-ds, yc-ds, xc-ds, hl, xc-dh, hl,
		xc, 0, w, hl, xc+ds, hl, xc+ds, yc+ds, hl, yc+ds, hl, h,
	)
	return filled(pc)
}

// bentGeometry returns the stem thickness, head half width and head
// length of the bent arrows; the stem never outgrows the head.
func bentGeometry(w, h float64, a Adjustments) (float64, float64, float64) {
	ss := ssOf(w, h)
	dh := ss * a.Pinned("adj2", 25000, 0, 50000) / 100000
	th := math.Min(ss*a.Pinned("adj1", 25000, 0, 50000)/100000, 2*dh)
	hl := ss * a.Pinned("adj3", 25000, 0, 50000) / 100000
	return th, dh, hl
}

func bentUpArrow(w, h float64, a Adjustments) PathResult {
	th, dh, hl := bentGeometry(w, h, a)
	xc := w - dh
	pc := svg.NewPath()
	pc.Polygon(
		0, h-th, xc-th/2, h-th, xc-th/2, hl, xc-dh, hl, xc, 0, w, hl,
		xc+th/2, hl, xc+th/2, h, 0, h,
	)
	return filled(pc)
}

func bentArrow(w, h float64, a Adjustments) PathResult {
	th, dh, hl := bentGeometry(w, h, a)
	yc := dh
	yT, yB := yc-th/2, yc+th/2
	rO := ssOf(w, h) * a.Pinned("adj4", 43750, 0, 100000) / 100000
	rO = math.Max(0, math.Min(rO, math.Min(w-hl, h-yT)))
	rI := math.Max(rO-th, 0)

	pc := svg.NewPath()
	pc.M(0, h)
	pc.L(false, 0, yT+rO)
	pc.ArcToDeg(rO, rO, 180, 90)
	pc.Lines(w-hl, yT, w-hl, yc-dh, w, yc, w-hl, yc+dh, w-hl, yB, th+rI, yB)
	pc.ArcToDeg(rI, rI, 270, -90)
	pc.L(false, th, h)
	pc.Z()
	return filled(pc)
}

// uturnArrow caps the head at half the width and the stem at the head
// width, so the inner barb never reaches past the left stem. The bend
// radii shrink to fit the legs.
func uturnArrow(w, h float64, a Adjustments) PathResult {
	ss := ssOf(w, h)
	aw := ss * a.Pinned("adj2", 25000, 0, maxAdj(w/4, ss, 100000)) / 100000
	th := math.Min(ss*a.Pinned("adj1", 25000, 0, 50000)/100000, 2*aw)
	hl := ss * a.Pinned("adj3", 25000, 0, maxAdj(h-th, ss, 100000)) / 100000
	yTip := geo.Pin(hl+th, h*a.Get("adj5", 75000)/100000, h)
	yBarb := yTip - hl

	xOuter := w - aw + th/2
	xInner := xOuter - th
	xTip := w - aw
	rO := ss * a.Pinned("adj4", 43750, 0, maxAdj(math.Min(xOuter/2, yBarb), ss, 100000)) / 100000
	rI := math.Max(rO-th, 0)

	pc := svg.NewPath()
	pc.M(0, h)
	pc.L(false, 0, rO)
	pc.ArcToDeg(rO, rO, 180, 90)
	pc.L(false, xOuter-rO, 0)
	pc.ArcToDeg(rO, rO, 270, 90)
	pc.Lines(xOuter, yBarb, w, yBarb, xTip, yTip, xTip-aw, yBarb, xInner, yBarb, xInner, th+rI)
	pc.ArcToDeg(rI, rI, 0, -90)
	pc.L(false, th+rI, th)
	pc.ArcToDeg(rI, rI, 270, -90)
	pc.L(false, th, h)
	pc.Z()
	return filled(pc)
}

// curvedArrow bends a band of thickness th around the left half of an
// ellipse, from its tail at the top to a head at the bottom right. The head
// points along the ellipse tangent where the band ends.
func curvedArrow(v view, a Adjustments) {
	W, H := v.size()
	ss := ssOf(W, H)
	hw := ss * a.Pinned("adj2", 50000, 0, 100000) / 100000
	hw = math.Min(hw, H)
	th := math.Min(ss*a.Pinned("adj1", 25000, 0, 50000)/100000, hw)
	hl := ss * a.Pinned("adj3", 25000, 0, maxAdj(W/2, ss, 100000)) / 100000

	yTip := H - hw/2
	rx := positive(W - hl - th/2)
	ry := positive((yTip - th/2) / 2)
	c := geo.NewPoint(W-hl, th/2+ry)
	mid := geo.NewEllipse(c, rx, ry)

	base := mid.PointAt(math.Pi / 2)
	dir := mid.Tangent(math.Pi / 2).Multiply(-1)
	n := dir.Perpendicular()
	tip := base.AddVector(dir.Multiply(hl))
	h1 := base.AddVector(n.Multiply(hw / 2))
	h2 := base.AddVector(n.Multiply(-hw / 2))

	rxO, ryO := rx+th/2, ry+th/2
	rxI, ryI := positive(rx-th/2), positive(ry-th/2)
	v.M(c.X, c.Y-ryO)
	v.ArcTo(rxO, ryO, 270, -180)
	v.L(h1.X, h1.Y)
	v.L(tip.X, tip.Y)
	v.L(h2.X, h2.Y)
	v.L(c.X, c.Y+ryI)
	v.ArcTo(rxI, ryI, 90, 180)
	v.Z()
}

func stripedRightArrow(w, h float64, a Adjustments) PathResult {
	ss := ssOf(w, h)
	dy1 := h * a.Pinned("adj1", 50000, 0, 100000) / 200000
	dx5 := ss * a.Pinned("adj2", 50000, 0, maxAdj(w, ss, 84375)) / 100000
	x4, x5 := ss*5/32, w-dx5
	y1, y2 := h/2-dy1, h/2+dy1
	pc := svg.NewPath()
	addRect(pc, 0, y1, ss/32, 2*dy1)
	addRect(pc, ss/16, y1, ss/16, 2*dy1)
	pc.Polygon(x4, y1, x5, y1, x5, 0, w, h/2, x5, h, x5, y2, x4, y2)
	return filled(pc)
}

func notchedRightArrow(w, h float64, a Adjustments) PathResult {
	ss := ssOf(w, h)
	dy1 := h * a.Pinned("adj1", 50000, 0, 100000) / 200000
	dx2 := ss * a.Pinned("adj2", 50000, 0, maxAdj(w, ss, 100000)) / 100000
	x2 := w - dx2
	x1 := 0.
	if h != 0 {
		x1 = dy1 * dx2 / (h / 2)
	}
	y1, y2 := h/2-dy1, h/2+dy1
	pc := svg.NewPath()
	pc.Polygon(0, y1, x2, y1, x2, 0, w, h/2, x2, h, x2, y2, 0, y2, x1, h/2)
	return filled(pc)
}

func homePlate(w, h float64, a Adjustments) PathResult {
	ss := ssOf(w, h)
	dx := ss * a.Pinned("adj", 50000, 0, maxAdj(w, ss, 100000)) / 100000
	pc := svg.NewPath()
	pc.Polygon(0, 0, w-dx, 0, w, h/2, w-dx, h, 0, h)
	return filled(pc)
}

func chevron(w, h float64, a Adjustments) PathResult {
	ss := ssOf(w, h)
	x1 := ss * a.Pinned("adj", 50000, 0, maxAdj(w, ss, 50000)) / 100000
	pc := svg.NewPath()
	pc.Polygon(0, 0, w-x1, 0, w, h/2, w-x1, h, 0, h, x1, h/2)
	return filled(pc)
}

// calloutArms returns the stem and head half widths and the head length of
// an arrow callout.
func calloutArms(W, H float64, a Adjustments, def int64) (float64, float64, float64) {
	ss := ssOf(W, H)
	a2 := a.Pinned("adj2", def, 0, maxAdj(H, ss, 50000))
	a1 := a.Pinned("adj1", def, 0, 2*a2)
	a3 := a.Pinned("adj3", def, 0, maxAdj(W, ss, 100000))
	return ss * a1 / 200000, ss * a2 / 100000, ss * a3 / 100000
}

func arrowCallout(v view, a Adjustments) {
	W, H := v.size()
	ds, dh, hl := calloutArms(W, H, a, 25000)
	x3 := W - hl
	xb := math.Min(W*a.Pinned("adj4", 64977, 0, 100000)/100000, x3)
	vc := H / 2
	v.Polygon(
		0, 0, xb, 0, xb, vc-ds, x3, vc-ds, x3, vc-dh, W, vc,
		x3, vc+dh, x3, vc+ds, xb, vc+ds, xb, H, 0, H,
	)
}

func doubleArrowCallout(v view, a Adjustments) {
	W, H := v.size()
	ds, dh, hl := calloutArms(W, H, a, 25000)
	half := W * a.Pinned("adj4", 48123, 0, 100000) / 200000
	hl = math.Min(hl, W/2-half)
	xl, xr := W/2-half, W/2+half
	vc := H / 2
	v.Polygon(
		0, vc, hl, vc-dh, hl, vc-ds, xl, vc-ds, xl, 0, xr, 0,
		xr, vc-ds, W-hl, vc-ds, W-hl, vc-dh, W, vc, W-hl, vc+dh, W-hl, vc+ds,
		xr, vc+ds, xr, H, xl, H, xl, vc+ds, hl, vc+ds, hl, vc+dh,
	)
}

func quadArrowCallout(w, h float64, a Adjustments) PathResult {
	ss := ssOf(w, h)
	a2 := a.Pinned("adj2", 18515, 0, 50000)
	a1 := a.Pinned("adj1", 18515, 0, 2*a2)
	a3 := a.Pinned("adj3", 18515, 0, (100000-2*a2)/2)
	ds, dh, hl := ss*a1/200000, ss*a2/100000, ss*a3/100000
	bw := a.Pinned("adj4", 48123, 0, 100000) / 200000
	hc, vc := w/2, h/2
	bx1, bx2 := math.Max(hc-w*bw, hl), math.Min(hc+w*bw, w-hl)
	by1, by2 := math.Max(vc-h*bw, hl), math.Min(vc+h*bw, h-hl)
	pc := svg.NewPath()
	pc.Polygon(
		0, vc, hl, vc-dh, hl, vc-ds, bx1, vc-ds, bx1, by1, hc-ds, by1,
		hc-ds, hl, hc-dh, hl, hc, 0, hc+dh, hl, hc+ds, hl, hc+ds, by1,
		bx2, by1, bx2, vc-ds, w-hl, vc-ds, w-hl, vc-dh, w, vc, w-hl, vc+dh,
		w-hl, vc+ds, bx2, vc+ds, bx2, by2, hc+ds, by2, hc+ds, h-hl, hc+dh, h-hl,
		hc, h, hc-dh, h-hl, hc-ds, h-hl, hc-ds, by2, bx1, by2, bx1, vc+ds,
		hl, vc+ds, hl, vc+dh,
	)
	return filled(pc)
}

// ring is a band around the ellipse inscribed in a box, described by the
// radii of its center line, its two edges and the edges of its heads.
type ring struct {
	cx, cy float64
	mx, my float64
	th, hh float64
}

func newRing(w, h float64, a Adjustments) ring {
	ss := ssOf(w, h)
	th := ss * a.Pinned("adj1", 12500, 0, 25000) / 100000
	head := ss * a.Pinned("adj5", 12500, 0, 25000) / 100000
	hh := th/2 + head/2
	return ring{
		cx: w / 2, cy: h / 2,
		mx: positive(w/2 - hh), my: positive(h/2 - hh),
		th: th, hh: hh,
	}
}

// at returns the point at angle deg on the ellipse offset by d from the
// center line.
func (r ring) at(d, deg float64) *geo.Point {
	return ellipsePoint(r.cx, r.cy, positive(r.mx+d), positive(r.my+d), deg)
}

func (r ring) arc(pc *svg.SvgPathContext, d, st, sw float64) {
	pc.ArcToDeg(positive(r.mx+d), positive(r.my+d), st, sw)
}

func lineTo(pc *svg.SvgPathContext, p *geo.Point) {
	pc.L(false, p.X, p.Y)
}

// circularSweep returns the signed sweep from st to en in degrees,
// clockwise when dir is positive.
func circularSweep(st, en float64, dir float64) float64 {
	if dir > 0 {
		return sweepCW(st, en)
	}
	return -sweepCW(en, st)
}

// singleHeaded draws a band from st sweeping sw, ending in a head that
// spans ha degrees before its tip.
func singleHeaded(w, h float64, a Adjustments, ha, st, sw float64) PathResult {
	r := newRing(w, h, a)
	dir := math.Copysign(1, sw)
	ha = math.Min(ha, math.Abs(sw))
	body := sw - dir*ha
	e1 := st + body

	pc := svg.NewPath()
	p := r.at(r.th/2, st)
	pc.M(p.X, p.Y)
	r.arc(pc, r.th/2, st, body)
	lineTo(pc, r.at(r.hh, e1))
	lineTo(pc, r.at(0, st+sw))
	lineTo(pc, r.at(-r.hh, e1))
	lineTo(pc, r.at(-r.th/2, e1))
	r.arc(pc, -r.th/2, e1, -body)
	pc.Z()
	return filled(pc)
}

func headAngle(a Adjustments, def int64) float64 {
	return geo.Pin(0, math.Abs(a.Degrees("adj2", def)), 45)
}

func circularArrow(w, h float64, a Adjustments) PathResult {
	st := normAngle(a.Degrees("adj4", 10800000))
	en := normAngle(a.Degrees("adj3", 20457681))
	return singleHeaded(w, h, a, headAngle(a, 1142319), st, circularSweep(st, en, 1))
}

func leftCircularArrow(w, h float64, a Adjustments) PathResult {
	st := normAngle(a.Degrees("adj4", 10800000))
	en := normAngle(a.Degrees("adj3", 1142319))
	return singleHeaded(w, h, a, headAngle(a, -1142319), st, circularSweep(st, en, -1))
}

func leftRightCircularArrow(w, h float64, a Adjustments) PathResult {
	r := newRing(w, h, a)
	st := normAngle(a.Degrees("adj4", 11942319))
	en := normAngle(a.Degrees("adj3", 20457681))
	sw := circularSweep(st, en, 1)
	ha := math.Min(headAngle(a, 1142319), sw/2)
	s1 := st + ha
	body := sw - 2*ha
	e1 := s1 + body

	pc := svg.NewPath()
	p := r.at(0, st)
	pc.M(p.X, p.Y)
	lineTo(pc, r.at(r.hh, s1))
	lineTo(pc, r.at(r.th/2, s1))
	r.arc(pc, r.th/2, s1, body)
	lineTo(pc, r.at(r.hh, e1))
	lineTo(pc, r.at(0, st+sw))
	lineTo(pc, r.at(-r.hh, e1))
	lineTo(pc, r.at(-r.th/2, e1))
	r.arc(pc, -r.th/2, e1, -body)
	lineTo(pc, r.at(-r.hh, s1))
	pc.Z()
	return filled(pc)
}

func swooshArrow(w, h float64, a Adjustments) PathResult {
	ss := ssOf(w, h)
	th := h * a.Pinned("adj1", 25000, 1, 50000) / 100000
	hl := math.Min(ss*a.Pinned("adj2", 16667, 0, 50000)/50000, w/2)
	hh := th
	pc := svg.NewPath()
	pc.M(0, h)
	pc.Q(false, w/2, h, w-hl, hh+th/2)
	pc.Lines(w-hl, 2*hh, w, hh, w-hl, 0, w-hl, hh-th/2)
	pc.Q(false, w/2, h-1.5*th, 0, h)
	pc.Z()
	return filled(pc)
}
