package prstgeom

import (
	"math"

	"oss.terrastruct.com/prstgeom/lib/geo"
	"oss.terrastruct.com/prstgeom/lib/svg"
)

var basicShapes = family{
	name: "basic",
	shapes: map[string]Generator{
		"triangle":              triangle,
		"rtTriangle":            rtTriangle,
		"ellipse":               ellipse,
		"diamond":               diamond,
		"parallelogram":         parallelogram,
		"trapezoid":             trapezoid,
		"nonIsoscelesTrapezoid": nonIsoscelesTrapezoid,
		"pentagon":              pentagon,
		"hexagon":               hexagon,
		"heptagon":              heptagon,
		"octagon":               octagon,
		"decagon":               decagon,
		"dodecagon":             dodecagon,
		"pie":                   pie,
		"chord":                 chord,
		"arc":                   arc,
		"blockArc":              blockArc,
		"teardrop":              teardrop,
		"frame":                 frame,
		"halfFrame":             halfFrame,
		"corner":                cornerShape,
		"diagStripe":            diagStripe,
		"plus":                  plus,
		"plaque":                plaque,
		"can":                   can,
		"cube":                  cube,
		"bevel":                 bevel,
		"donut":                 donut,
		"noSmoking":             noSmoking,
		"foldedCorner":          foldedCorner,
		"smileyFace":            smileyFace,
		"heart":                 heart,
		"lightningBolt":         lightningBolt,
		"sun":                   sun,
		"moon":                  moon,
		"cloud":                 cloud,
		"pieWedge":              pieWedge,
		"funnel":                funnel,
		"gear6":                 gear6,
		"gear9":                 gear9,
		"lineInv":               lineInv,
		"chartPlus":             chartPlus,
		"chartStar":             chartStar,
		"chartX":                chartX,
		"squareTabs":            squareTabs,
		"cornerTabs":            cornerTabs,
		"plaqueTabs":            plaqueTabs,
	},
}

func triangle(w, h float64, a Adjustments) PathResult {
	x := w * a.Pinned("adj", 50000, 0, 100000) / 100000
	pc := svg.NewPath()
	pc.Polygon(0, h, x, 0, w, h)
	return filled(pc)
}

func rtTriangle(w, h float64, _ Adjustments) PathResult {
	pc := svg.NewPath()
	pc.Polygon(0, 0, w, h, 0, h)
	return filled(pc)
}

func ellipse(w, h float64, _ Adjustments) PathResult {
	pc := svg.NewPath()
	addEllipse(pc, w/2, h/2, w/2, h/2)
	return filled(pc)
}

func diamond(w, h float64, _ Adjustments) PathResult {
	pc := svg.NewPath()
	pc.Polygon(w/2, 0, w, h/2, w/2, h, 0, h/2)
	return filled(pc)
}

// maxAdj is the handle value that makes ss·adj reach span.
func maxAdj(span, ss, scale float64) float64 {
	if ss == 0 {
		return 0
	}
	return scale * span / ss
}

func parallelogram(w, h float64, a Adjustments) PathResult {
	ss := ssOf(w, h)
	x := ss * a.Pinned("adj", 25000, 0, maxAdj(w, ss, 100000)) / 100000
	pc := svg.NewPath()
	pc.Polygon(0, h, x, 0, w, 0, w-x, h)
	return filled(pc)
}

func trapezoid(w, h float64, a Adjustments) PathResult {
	ss := ssOf(w, h)
	x := ss * a.Pinned("adj", 25000, 0, maxAdj(w, ss, 50000)) / 100000
	pc := svg.NewPath()
	pc.Polygon(0, h, x, 0, w-x, 0, w, h)
	return filled(pc)
}

func nonIsoscelesTrapezoid(w, h float64, a Adjustments) PathResult {
	ss := ssOf(w, h)
	m := maxAdj(w, ss, 50000)
	x1 := ss * a.Pinned("adj1", 25000, 0, m) / 100000
	x2 := ss * a.Pinned("adj2", 25000, 0, m) / 100000
	pc := svg.NewPath()
	pc.Polygon(0, h, x1, 0, w-x2, 0, w, h)
	return filled(pc)
}

// fittedPolygon draws a regular polygon stretched by hf and vf so that it
// fills its box, centered horizontally and at vc·vf vertically.
func fittedPolygon(w, h float64, sides int, start, hf, vf float64) *svg.SvgPathContext {
	pc := svg.NewPath()
	addPolygonOn(pc, w/2, h/2*vf, w/2*hf, h/2*vf, sides, start)
	return pc
}

func pentagon(w, h float64, a Adjustments) PathResult {
	hf := a.Get("hf", 105146) / 100000
	vf := a.Get("vf", 110557) / 100000
	return filled(fittedPolygon(w, h, 5, -math.Pi/2, hf, vf))
}

func hexagon(w, h float64, a Adjustments) PathResult {
	ss := ssOf(w, h)
	x1 := ss * a.Pinned("adj", 25000, 0, maxAdj(w, ss, 50000)) / 100000
	vf := a.Get("vf", 115470) / 100000
	dy := h / 2 * vf * math.Sin(math.Pi/3)
	pc := svg.NewPath()
	pc.Polygon(0, h/2, x1, h/2-dy, w-x1, h/2-dy, w, h/2, w-x1, h/2+dy, x1, h/2+dy)
	return filled(pc)
}

func heptagon(w, h float64, a Adjustments) PathResult {
	hf := a.Get("hf", 102572) / 100000
	vf := a.Get("vf", 105210) / 100000
	return filled(fittedPolygon(w, h, 7, -math.Pi/2, hf, vf))
}

func octagon(w, h float64, a Adjustments) PathResult {
	x1 := ssOf(w, h) * a.Pinned("adj", 29289, 0, 50000) / 100000
	pc := svg.NewPath()
	pc.Polygon(0, x1, x1, 0, w-x1, 0, w, x1, w, h-x1, w-x1, h, x1, h, 0, h-x1)
	return filled(pc)
}

func decagon(w, h float64, a Adjustments) PathResult {
	vf := a.Get("vf", 105146) / 100000
	pc := svg.NewPath()
	addPolygonOn(pc, w/2, h/2, w/2, h/2*vf, 10, 0)
	return filled(pc)
}

func dodecagon(w, h float64, _ Adjustments) PathResult {
	x1, x2, x3, x4 := w*2894/21600, w*7906/21600, w*13694/21600, w*18706/21600
	y1, y2, y3, y4 := h*2894/21600, h*7906/21600, h*13694/21600, h*18706/21600
	pc := svg.NewPath()
	pc.Polygon(
		0, y2, x1, y1, x2, 0, x3, 0, x4, y1, w, y2,
		w, y3, x4, y4, x3, h, x2, h, x1, y4, 0, y3,
	)
	return filled(pc)
}

// arcAngles returns the start angle and clockwise sweep, in degrees, of the
// arc running from adj1 to adj2.
func arcAngles(a Adjustments, st, en int64) (float64, float64) {
	stAng := normAngle(a.Degrees("adj1", st))
	enAng := normAngle(a.Degrees("adj2", en))
	return stAng, sweepCW(stAng, enAng)
}

func pie(w, h float64, a Adjustments) PathResult {
	st, sw := arcAngles(a, 0, 16200000)
	p := ellipsePoint(w/2, h/2, w/2, h/2, st)
	pc := svg.NewPath()
	pc.M(p.X, p.Y)
	pc.ArcToDeg(w/2, h/2, st, sw)
	if sw < 360 {
		pc.L(false, w/2, h/2)
	}
	pc.Z()
	return filled(pc)
}

func chord(w, h float64, a Adjustments) PathResult {
	st, sw := arcAngles(a, 2700000, 16200000)
	p := ellipsePoint(w/2, h/2, w/2, h/2, st)
	pc := svg.NewPath()
	pc.M(p.X, p.Y)
	pc.ArcToDeg(w/2, h/2, st, sw)
	pc.Z()
	return filled(pc)
}

func arc(w, h float64, a Adjustments) PathResult {
	st, sw := arcAngles(a, 16200000, 0)
	p := ellipsePoint(w/2, h/2, w/2, h/2, st)
	pc := svg.NewPath()
	pc.M(p.X, p.Y)
	pc.ArcToDeg(w/2, h/2, st, sw)
	return open(pc)
}

func blockArc(w, h float64, a Adjustments) PathResult {
	st := normAngle(a.Degrees("adj1", 10800000))
	en := normAngle(a.Degrees("adj2", 0))
	sw := sweepCW(st, en)
	dr := ssOf(w, h) * a.Pinned("adj3", 25000, 0, 50000) / 100000
	iw, ih := positive(w/2-dr), positive(h/2-dr)

	outer := ellipsePoint(w/2, h/2, w/2, h/2, st)
	inner := ellipsePoint(w/2, h/2, iw, ih, st+sw)
	pc := svg.NewPath()
	pc.M(outer.X, outer.Y)
	pc.ArcToDeg(w/2, h/2, st, sw)
	pc.L(false, inner.X, inner.Y)
	pc.ArcToDeg(iw, ih, st+sw, -sw)
	pc.Z()
	return filled(pc)
}

func teardrop(w, h float64, a Adjustments) PathResult {
	r2 := math.Sqrt2 * a.Pinned("adj", 100000, 0, 200000) / 100000
	dx := r2 * w / 2 * math.Cos(math.Pi/4)
	dy := r2 * h / 2 * math.Sin(math.Pi/4)
	x1, y1 := w/2+dx, h/2-dy
	x2, y2 := (w/2+x1)/2, (h/2+y1)/2

	pc := svg.NewPath()
	pc.M(0, h/2)
	pc.ArcToDeg(w/2, h/2, 180, 90)
	pc.Q(false, x2, 0, x1, y1)
	pc.Q(false, w, y2, w, h/2)
	pc.ArcToDeg(w/2, h/2, 0, 90)
	pc.ArcToDeg(w/2, h/2, 90, 90)
	pc.Z()
	return filled(pc)
}

func frame(w, h float64, a Adjustments) PathResult {
	x1 := ssOf(w, h) * a.Pinned("adj1", 12500, 0, 50000) / 100000
	pc := svg.NewPath()
	addRect(pc, 0, 0, w, h)
	polygonCCW(pc, x1, x1, w-x1, x1, w-x1, h-x1, x1, h-x1)
	return filled(pc)
}

func halfFrame(w, h float64, a Adjustments) PathResult {
	ss := ssOf(w, h)
	x1 := ss * a.Pinned("adj2", 33333, 0, maxAdj(w, ss, 100000)) / 100000
	g1 := 0.
	if w != 0 {
		g1 = h * x1 / w
	}
	y1 := ss * a.Pinned("adj1", 33333, 0, maxAdj(h-g1, ss, 100000)) / 100000
	x2, y2 := w, h
	if h != 0 {
		x2 = w - y1*w/h
	}
	if w != 0 {
		y2 = h - x1*h/w
	}
	pc := svg.NewPath()
	pc.Polygon(0, 0, w, 0, x2, y1, x1, y1, x1, y2, 0, h)
	return filled(pc)
}

func cornerShape(w, h float64, a Adjustments) PathResult {
	ss := ssOf(w, h)
	dy := ss * a.Pinned("adj1", 50000, 0, maxAdj(h, ss, 100000)) / 100000
	x1 := ss * a.Pinned("adj2", 50000, 0, maxAdj(w, ss, 100000)) / 100000
	pc := svg.NewPath()
	pc.Polygon(0, 0, x1, 0, x1, h-dy, w, h-dy, w, h, 0, h)
	return filled(pc)
}

func diagStripe(w, h float64, a Adjustments) PathResult {
	r := a.Pinned("adj", 50000, 0, 100000) / 100000
	pc := svg.NewPath()
	pc.Polygon(0, h*r, w*r, 0, w, 0, 0, h)
	return filled(pc)
}

func plus(w, h float64, a Adjustments) PathResult {
	x1 := ssOf(w, h) * a.Pinned("adj", 25000, 0, 50000) / 100000
	x2, y2 := w-x1, h-x1
	pc := svg.NewPath()
	pc.Polygon(
		0, x1, x1, x1, x1, 0, x2, 0, x2, x1, w, x1,
		w, y2, x2, y2, x2, h, x1, h, x1, y2, 0, y2,
	)
	return filled(pc)
}

func plaque(w, h float64, a Adjustments) PathResult {
	r := ssOf(w, h) * a.Pinned("adj", 16667, 0, 50000) / 100000
	pc := svg.NewPath()
	pc.M(0, r)
	pc.ArcToDeg(r, r, 90, -90)
	pc.L(false, w-r, 0)
	pc.ArcToDeg(r, r, 180, -90)
	pc.L(false, w, h-r)
	pc.ArcToDeg(r, r, 270, -90)
	pc.L(false, r, h)
	pc.ArcToDeg(r, r, 0, -90)
	pc.Z()
	return filled(pc)
}

func can(w, h float64, a Adjustments) PathResult {
	ss := ssOf(w, h)
	y1 := ss * a.Pinned("adj", 25000, 0, maxAdj(h, ss, 50000)) / 200000
	pc := svg.NewPath()
	pc.M(0, y1)
	pc.ArcToDeg(w/2, y1, 180, 180)
	pc.L(false, w, h-y1)
	pc.ArcToDeg(w/2, y1, 0, 180)
	pc.Z()

	rim := svg.NewPath()
	rim.M(w, y1)
	rim.ArcToDeg(w/2, y1, 0, 180)
	return filled(pc).withStroke(rim)
}

func cube(w, h float64, a Adjustments) PathResult {
	d := ssOf(w, h) * a.Pinned("adj", 25000, 0, 100000) / 100000
	pc := svg.NewPath()
	pc.Polygon(0, d, d, 0, w, 0, w, h-d, w-d, h, 0, h)

	edges := svg.NewPath()
	edges.Polyline(0, d, w-d, d, w, 0)
	edges.Polyline(w-d, d, w-d, h)
	return filled(pc).withStroke(edges)
}

func bevel(w, h float64, a Adjustments) PathResult {
	x1 := ssOf(w, h) * a.Pinned("adj", 12500, 0, 50000) / 100000
	pc := svg.NewPath()
	addRect(pc, 0, 0, w, h)

	edges := svg.NewPath()
	addRect(edges, x1, x1, w-2*x1, h-2*x1)
	edges.Polyline(0, 0, x1, x1)
	edges.Polyline(w, 0, w-x1, x1)
	edges.Polyline(w, h, w-x1, h-x1)
	edges.Polyline(0, h, x1, h-x1)
	return filled(pc).withStroke(edges)
}

func donut(w, h float64, a Adjustments) PathResult {
	dr := ssOf(w, h) * a.Pinned("adj", 25000, 0, 50000) / 100000
	pc := svg.NewPath()
	addEllipse(pc, w/2, h/2, w/2, h/2)
	iw, ih := w/2-dr, h/2-dr
	if iw > 0 && ih > 0 {
		addEllipseCCW(pc, w/2, h/2, iw, ih)
	}
	return filled(pc)
}

func noSmoking(w, h float64, a Adjustments) PathResult {
	dr := ssOf(w, h) * a.Pinned("adj", 18750, 0, 50000) / 100000
	pc := svg.NewPath()
	addEllipse(pc, w/2, h/2, w/2, h/2)

	rx, ry := w/2-dr, h/2-dr
	if rx <= 0 || ry <= 0 {
		return filled(pc)
	}
	// the bar runs from the top-left to the bottom-right, dr thick; each
	// half of the inner disc is a hole bounded by a chord and an arc
	u := geo.NewVector(w, h)
	if u.Length() == 0 {
		return filled(pc)
	}
	u = u.Unit()
	n := u.Perpendicular()
	for _, side := range []float64{1, -1} {
		qx, qy := side*n[0]*dr/2, side*n[1]*dr/2
		qa := u[0]*u[0]/(rx*rx) + u[1]*u[1]/(ry*ry)
		qb := 2 * (qx*u[0]/(rx*rx) + qy*u[1]/(ry*ry))
		qc := qx*qx/(rx*rx) + qy*qy/(ry*ry) - 1
		disc := qb*qb - 4*qa*qc
		if disc <= 0 {
			continue
		}
		t1 := (-qb - math.Sqrt(disc)) / (2 * qa)
		t2 := (-qb + math.Sqrt(disc)) / (2 * qa)
		p1x, p1y := w/2+qx+t1*u[0], h/2+qy+t1*u[1]
		p2x, p2y := w/2+qx+t2*u[0], h/2+qy+t2*u[1]
		if side > 0 {
			pc.M(p2x, p2y)
			pc.L(false, p1x, p1y)
			pc.A(false, rx, ry, 0, false, false, p2x, p2y)
		} else {
			pc.M(p1x, p1y)
			pc.L(false, p2x, p2y)
			pc.A(false, rx, ry, 0, false, false, p1x, p1y)
		}
		pc.Z()
	}
	return filled(pc)
}

func foldedCorner(w, h float64, a Adjustments) PathResult {
	dy2 := ssOf(w, h) * a.Pinned("adj", 16667, 0, 50000) / 100000
	dy1 := dy2 / 5
	x1, y2 := w-dy2, h-dy2
	x2, y1 := x1+dy1, y2+dy1
	pc := svg.NewPath()
	pc.Polygon(0, 0, w, 0, w, y2, x1, h, 0, h)

	fold := svg.NewPath()
	fold.Polyline(x1, h, x2, y1, w, y2)
	return filled(pc).withStroke(fold)
}

func smileyFace(w, h float64, a Adjustments) PathResult {
	adj := a.Pinned("adj", 4653, -4653, 4653)
	pc := svg.NewPath()
	addEllipse(pc, w/2, h/2, w/2, h/2)
	er, eh := w*1125/21600, h*1125/21600
	y1 := h * 7570 / 21600
	addEllipse(pc, w*6215/21600, y1, er, eh)
	addEllipse(pc, w*13135/21600, y1, er, eh)

	y4 := h * 16515 / 21600
	dy2 := h * adj / 100000
	dy3 := h * adj / 50000
	mouth := svg.NewPath()
	mouth.M(w*4969/21600, y4-dy2)
	mouth.Q(false, w/2, y4+dy3, w*16640/21600, y4-dy2)
	return filled(pc).withStroke(mouth)
}

func heart(w, h float64, _ Adjustments) PathResult {
	dx1, dx2 := w*49/48, w*10/48
	x1, x2, x3, x4 := w/2-dx1, w/2-dx2, w/2+dx2, w/2+dx1
	y1 := -h / 3
	pc := svg.NewPath()
	pc.M(w/2, h/4)
	pc.C(false, x3, y1, x4, h/4, w/2, h)
	pc.C(false, x1, h/4, x2, y1, w/2, h/4)
	pc.Z()
	return filled(pc)
}

// fixedPolygon scales vertices given in a 21600×21600 grid onto w×h.
func fixedPolygon(pc *svg.SvgPathContext, w, h float64, xys ...float64) {
	scaled := make([]float64, len(xys))
	for i, v := range xys {
		if i%2 == 0 {
			scaled[i] = w * v / 21600
		} else {
			scaled[i] = h * v / 21600
		}
	}
	pc.Polygon(scaled...)
}

func lightningBolt(w, h float64, _ Adjustments) PathResult {
	pc := svg.NewPath()
	fixedPolygon(pc, w, h,
		8458, 0, 12158, 6154, 10924, 6764, 15820, 11770, 14690, 12310,
		21600, 21600, 10200, 14000, 11700, 13200, 5300, 8000, 6600, 7600,
		0, 3500,
	)
	return filled(pc)
}

func sun(w, h float64, a Adjustments) PathResult {
	adj := a.Pinned("adj", 25000, 12500, 46875) / 100000
	disc := 1 - 2*adj
	base := disc + (1-disc)*0.25
	const halfWidth = 8.

	pc := svg.NewPath()
	addEllipse(pc, w/2, h/2, w/2*disc, h/2*disc)
	for i := 0; i < 8; i++ {
		ang := float64(i) * 45
		tip := ellipsePoint(w/2, h/2, w/2, h/2, ang)
		b1 := ellipsePoint(w/2, h/2, w/2*base, h/2*base, ang-halfWidth)
		b2 := ellipsePoint(w/2, h/2, w/2*base, h/2*base, ang+halfWidth)
		pc.Polygon(b1.X, b1.Y, tip.X, tip.Y, b2.X, b2.Y)
	}
	return filled(pc)
}

func moon(w, h float64, a Adjustments) PathResult {
	g0 := ssOf(w, h) * a.Pinned("adj", 50000, 0, 87500) / 100000
	pc := svg.NewPath()
	pc.M(w, h)
	pc.ArcToDeg(w, h/2, 90, 180)
	pc.ArcToDeg(positive(w-g0), h/2, 270, -180)
	pc.Z()
	return filled(pc)
}

// addCloud draws nine lobes around an ellipse inscribed in the box at
// (x, y), each a cubic whose control points bulge outward.
func addCloud(pc *svg.SvgPathContext, x, y, w, h float64) {
	const lobes = 9
	cx, cy := x+w/2, y+h/2
	rx, ry := w*0.38, h*0.36
	bx, by := w*0.16, h*0.16
	start := -100.
	at := func(i int) (float64, float64, float64, float64) {
		t := geo.Deg(start + float64(i)*360/lobes)
		c, s := math.Cos(t), math.Sin(t)
		return cx + rx*c, cy + ry*s, bx * c, by * s
	}
	px, py, _, _ := at(0)
	pc.M(px, py)
	for i := 0; i < lobes; i++ {
		x0, y0, ox0, oy0 := at(i)
		x1, y1, ox1, oy1 := at(i + 1)
		pc.C(false, x0+ox0, y0+oy0, x1+ox1, y1+oy1, x1, y1)
	}
	pc.Z()
}

func cloud(w, h float64, _ Adjustments) PathResult {
	pc := svg.NewPath()
	addCloud(pc, 0, 0, w, h)
	return filled(pc)
}

func pieWedge(w, h float64, _ Adjustments) PathResult {
	pc := svg.NewPath()
	pc.M(0, h)
	pc.ArcToDeg(w, h, 180, 90)
	pc.L(false, w, h)
	pc.Z()
	return filled(pc)
}

func funnel(w, h float64, _ Adjustments) PathResult {
	ss := ssOf(w, h)
	d := ss / 10
	t := ss / 20
	pc := svg.NewPath()
	pc.M(0, d)
	pc.ArcToDeg(w/2, d, 180, 180)
	pc.L(false, w*0.6, h-d/2)
	pc.ArcToDeg(w*0.1, d/2, 0, 180)
	pc.Z()

	iw, ih := w/2-t, d-t/2
	if iw > 0 && ih > 0 {
		addEllipseCCW(pc, w/2, d, iw, ih)
	}
	return filled(pc)
}

// addGear draws n teeth of height th around the box ellipse; toothFrac is
// the share of each tooth pitch taken by the tooth tip.
func addGear(pc *svg.SvgPathContext, w, h float64, n int, th, toothFrac float64) {
	cx, cy := w/2, h/2
	rx, ry := w/2, h/2
	ix, iy := positive(rx-th), positive(ry-th)
	pitch := 360 / float64(n)
	top := geo.Pin(0.05, toothFrac, 0.45) * pitch / 2
	root := math.Min(top*1.6, pitch/2*0.95)
	xys := make([]float64, 0, 8*n)
	for k := 0; k < n; k++ {
		phi := -90 + float64(k)*pitch
		for _, p := range []*geo.Point{
			ellipsePoint(cx, cy, ix, iy, phi-root),
			ellipsePoint(cx, cy, rx, ry, phi-top),
			ellipsePoint(cx, cy, rx, ry, phi+top),
			ellipsePoint(cx, cy, ix, iy, phi+root),
		} {
			xys = append(xys, p.X, p.Y)
		}
	}
	pc.Polygon(xys...)
}

func gear6(w, h float64, a Adjustments) PathResult {
	ss := ssOf(w, h)
	th := ss * a.Pinned("adj1", 15000, 0, 20000) / 100000
	frac := a.Pinned("adj2", 3526, 0, 5358) / 100000 * 10
	pc := svg.NewPath()
	addGear(pc, w, h, 6, th, frac)
	return filled(pc)
}

func gear9(w, h float64, a Adjustments) PathResult {
	ss := ssOf(w, h)
	th := ss * a.Pinned("adj1", 10000, 0, 20000) / 100000
	frac := a.Pinned("adj2", 1763, 0, 2679) / 100000 * 20
	pc := svg.NewPath()
	addGear(pc, w, h, 9, th, frac)
	return filled(pc)
}

func lineInv(w, h float64, _ Adjustments) PathResult {
	pc := svg.NewPath()
	pc.Polyline(0, h, w, 0)
	return open(pc)
}

func chart(w, h float64, lines func(pc *svg.SvgPathContext)) PathResult {
	detail := svg.NewPath()
	lines(detail)
	return filled(rectFallback(w, h)).withStroke(detail)
}

func chartPlus(w, h float64, _ Adjustments) PathResult {
	return chart(w, h, func(pc *svg.SvgPathContext) {
		pc.Polyline(w/2, 0, w/2, h)
		pc.Polyline(0, h/2, w, h/2)
	})
}

func chartStar(w, h float64, _ Adjustments) PathResult {
	return chart(w, h, func(pc *svg.SvgPathContext) {
		pc.Polyline(0, 0, w, h)
		pc.Polyline(0, h, w, 0)
		pc.Polyline(w/2, 0, w/2, h)
	})
}

func chartX(w, h float64, _ Adjustments) PathResult {
	return chart(w, h, func(pc *svg.SvgPathContext) {
		pc.Polyline(0, 0, w, h)
		pc.Polyline(0, h, w, 0)
	})
}

func tabSize(w, h float64) float64 {
	return math.Hypot(w, h) / 20
}

func squareTabs(w, h float64, _ Adjustments) PathResult {
	d := tabSize(w, h)
	pc := svg.NewPath()
	addRect(pc, 0, 0, d, d)
	addRect(pc, w-d, 0, d, d)
	addRect(pc, w-d, h-d, d, d)
	addRect(pc, 0, h-d, d, d)
	return filled(pc)
}

func cornerTabs(w, h float64, _ Adjustments) PathResult {
	d := tabSize(w, h)
	pc := svg.NewPath()
	pc.Polygon(0, 0, d, 0, 0, d)
	pc.Polygon(w-d, 0, w, 0, w, d)
	pc.Polygon(w, h-d, w, h, w-d, h)
	pc.Polygon(0, h-d, d, h, 0, h)
	return filled(pc)
}

func plaqueTabs(w, h float64, _ Adjustments) PathResult {
	d := tabSize(w, h)
	pc := svg.NewPath()
	pc.M(0, 0)
	pc.L(false, d, 0)
	pc.ArcToDeg(d, d, 0, 90)
	pc.Z()
	pc.M(w, 0)
	pc.L(false, w, d)
	pc.ArcToDeg(d, d, 90, 90)
	pc.Z()
	pc.M(w, h)
	pc.L(false, w-d, h)
	pc.ArcToDeg(d, d, 180, 90)
	pc.Z()
	pc.M(0, h)
	pc.L(false, 0, h-d)
	pc.ArcToDeg(d, d, 270, 90)
	pc.Z()
	return filled(pc)
}
