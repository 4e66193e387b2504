package prstgeom

import (
	"oss.terrastruct.com/prstgeom/lib/svg"
)

var decorationShapes = family{
	name: "decorative",
	shapes: map[string]Generator{
		"leftBracket":      leftBracket,
		"rightBracket":     rightBracket,
		"leftBrace":        leftBrace,
		"rightBrace":       rightBrace,
		"bracketPair":      bracketPair,
		"bracePair":        bracePair,
		"ribbon":           ribbon,
		"ribbon2":          ribbon2,
		"ellipseRibbon":    ellipseRibbon,
		"ellipseRibbon2":   ellipseRibbon2,
		"leftRightRibbon":  leftRightRibbon,
		"verticalScroll":   verticalScroll,
		"horizontalScroll": horizontalScroll,
		"wave":             wave,
		"doubleWave":       doubleWave,
	},
}

func bracketRadius(w, h float64, a Adjustments) float64 {
	ss := ssOf(w, h)
	return ss * a.Pinned("adj", 8333, 0, maxAdj(h, ss, 50000)) / 100000
}

func leftBracket(w, h float64, a Adjustments) PathResult {
	y1 := bracketRadius(w, h, a)
	pc := svg.NewPath()
	pc.M(w, 0)
	quarter(pc, 0, 0, 0, y1)
	pc.L(false, 0, h-y1)
	quarter(pc, 0, h, w, h)
	return open(pc)
}

func rightBracket(w, h float64, a Adjustments) PathResult {
	y1 := bracketRadius(w, h, a)
	pc := svg.NewPath()
	pc.M(0, 0)
	quarter(pc, w, 0, w, y1)
	pc.L(false, w, h-y1)
	quarter(pc, w, h, 0, h)
	return open(pc)
}

// addBrace draws a brace whose curls have radius r and whose point sits at
// height mid, from the top end to the bottom end. The point faces x = 0,
// or x = w when mirrored.
func addBrace(pc *svg.SvgPathContext, w, h, r, mid float64, mirrored bool) {
	x := func(v float64) float64 {
		if mirrored {
			return w - v
		}
		return v
	}
	pc.M(x(w), 0)
	quarter(pc, x(w/2), 0, x(w/2), r)
	pc.L(false, x(w/2), mid-r)
	quarter(pc, x(w/2), mid, x(0), mid)
	quarter(pc, x(w/2), mid, x(w/2), mid+r)
	pc.L(false, x(w/2), h-r)
	quarter(pc, x(w/2), h, x(w), h)
}

func braceGeometry(w, h float64, a Adjustments) (float64, float64) {
	ss := ssOf(w, h)
	r := ss * a.Pinned("adj1", 8333, 0, maxAdj(h, ss, 25000)) / 100000
	mid := h * a.Pinned("adj2", 50000, 0, 100000) / 100000
	if 2*r <= h-2*r {
		mid = clamp(mid, 2*r, h-2*r)
	}
	return r, mid
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func leftBrace(w, h float64, a Adjustments) PathResult {
	r, mid := braceGeometry(w, h, a)
	pc := svg.NewPath()
	addBrace(pc, w, h, r, mid, false)
	return open(pc)
}

func rightBrace(w, h float64, a Adjustments) PathResult {
	r, mid := braceGeometry(w, h, a)
	pc := svg.NewPath()
	addBrace(pc, w, h, r, mid, true)
	return open(pc)
}

func bracketPair(w, h float64, a Adjustments) PathResult {
	x1 := ssOf(w, h) * a.Pinned("adj", 16667, 0, 50000) / 100000
	pc := svg.NewPath()
	pc.M(x1, h)
	quarter(pc, 0, h, 0, h-x1)
	pc.L(false, 0, x1)
	quarter(pc, 0, 0, x1, 0)
	pc.M(w-x1, 0)
	quarter(pc, w, 0, w, x1)
	pc.L(false, w, h-x1)
	quarter(pc, w, h, w-x1, h)
	return open(pc)
}

func bracePair(w, h float64, a Adjustments) PathResult {
	x1 := ssOf(w, h) * a.Pinned("adj", 8333, 0, 25000) / 100000
	x2 := 2 * x1
	vc := h / 2
	pc := svg.NewPath()
	pc.M(x2, h)
	quarter(pc, x1, h, x1, h-x1)
	pc.L(false, x1, vc+x1)
	quarter(pc, x1, vc, 0, vc)
	quarter(pc, x1, vc, x1, vc-x1)
	pc.L(false, x1, x1)
	quarter(pc, x1, 0, x2, 0)

	pc.M(w-x2, 0)
	quarter(pc, w-x1, 0, w-x1, x1)
	pc.L(false, w-x1, vc-x1)
	quarter(pc, w-x1, vc, w, vc)
	quarter(pc, w-x1, vc, w-x1, vc+x1)
	pc.L(false, w-x1, h-x1)
	quarter(pc, w-x1, h, w-x2, h)
	return open(pc)
}

// ribbonWarp bends a ribbon along a parabola that sags bow at the middle.
// Horizontal edges become exact quadratic curves.
type ribbonWarp struct {
	v   view
	w   float64
	k   float64
	bow float64
}

func (r ribbonWarp) f(x float64) float64 {
	if r.w == 0 {
		return 0
	}
	t := (x - r.w/2) / (r.w / 2)
	return r.bow * (1 - t*t)
}

func (r ribbonWarp) df(x float64) float64 {
	if r.w == 0 {
		return 0
	}
	return -2 * r.bow * (x - r.w/2) / (r.w / 2 * r.w / 2)
}

func (r ribbonWarp) y(x, y float64) float64 {
	return y*r.k + r.f(x)
}

func (r ribbonWarp) polygon(xys ...float64) {
	n := len(xys) / 2
	r.v.M(xys[0], r.y(xys[0], xys[1]))
	for i := 1; i <= n; i++ {
		x0, y0 := xys[2*(i-1)], xys[2*(i-1)+1]
		x1, y1 := xys[2*(i%n)], xys[2*(i%n)+1]
		if y0 == y1 && x0 != x1 && r.bow != 0 {
			cx := (x0 + x1) / 2
			cy := r.y(x0, y0) + r.df(x0)*(x1-x0)/2
			r.v.Q(cx, cy, x1, r.y(x1, y1))
		} else if i < n {
			r.v.L(x1, r.y(x1, y1))
		}
	}
	r.v.Z()
}

// drawRibbon draws a banner whose middle panel sits low and whose tails rise
// behind it, dy above.
func drawRibbon(pc *svg.SvgPathContext, w, h, dy, cw, bow float64, flipY bool) {
	r := ribbonWarp{v: newView(pc, w, h, false, false, flipY), w: w, bow: bow, k: 1}
	if h != 0 {
		r.k = (h - bow) / h
	}
	x2, x9 := w/2-cw/2, w/2+cw/2
	w8 := w / 8
	th := h - dy
	r.polygon(0, 0, x2+w8, 0, x2+w8, th, 0, th, w8, th/2)
	r.polygon(x9-w8, 0, w, 0, w-w8, th/2, w, th, x9-w8, th)
	r.polygon(x2, dy, x9, dy, x9, h, x2, h)
}

func ribbonGeometry(w, h float64, a Adjustments, dyDef int64) (float64, float64) {
	dy := h * a.Pinned("adj1", dyDef, 0, 33333) / 100000
	cw := w * a.Pinned("adj2", 50000, 25000, 75000) / 100000
	return dy, cw
}

func ribbon(w, h float64, a Adjustments) PathResult {
	dy, cw := ribbonGeometry(w, h, a, 16667)
	pc := svg.NewPath()
	drawRibbon(pc, w, h, dy, cw, 0, false)
	return filled(pc)
}

func ribbon2(w, h float64, a Adjustments) PathResult {
	dy, cw := ribbonGeometry(w, h, a, 16667)
	pc := svg.NewPath()
	drawRibbon(pc, w, h, dy, cw, 0, true)
	return filled(pc)
}

func ellipseRibbonGeometry(w, h float64, a Adjustments) (float64, float64, float64) {
	dy, cw := ribbonGeometry(w, h, a, 25000)
	bow := h * a.Pinned("adj3", 12500, 0, 33333) / 100000
	return dy, cw, bow
}

func ellipseRibbon(w, h float64, a Adjustments) PathResult {
	dy, cw, bow := ellipseRibbonGeometry(w, h, a)
	pc := svg.NewPath()
	drawRibbon(pc, w, h, dy, cw, bow, false)
	return filled(pc)
}

func ellipseRibbon2(w, h float64, a Adjustments) PathResult {
	dy, cw, bow := ellipseRibbonGeometry(w, h, a)
	pc := svg.NewPath()
	drawRibbon(pc, w, h, dy, cw, bow, true)
	return filled(pc)
}

func leftRightRibbon(w, h float64, a Adjustments) PathResult {
	ss := ssOf(w, h)
	t := h * a.Pinned("adj1", 50000, 0, 100000) / 200000
	hl := ss * a.Pinned("adj2", 50000, 0, maxAdj(w, ss, 50000)) / 100000
	d := h * a.Pinned("adj3", 16667, 0, 50000) / 100000
	yl := (h - d) / 2
	yr := (h + d) / 2
	pc := svg.NewPath()
	polygonCW(pc,
		0, yl, hl, 0, hl, yl-t/2, w-hl, yl-t/2,
		w-hl, yl+t/2, hl, yl+t/2, hl, h-d,
	)
	polygonCW(pc,
		w, yr, w-hl, h, w-hl, yr+t/2, hl, yr+t/2,
		hl, yr-t/2, w-hl, yr-t/2, w-hl, d,
	)
	return filled(pc)
}

// scroll draws a sheet rolled at its top-right and bottom-left corners.
// Swapped, the same sheet is transposed into a vertical scroll.
func scroll(w, h float64, a Adjustments, swap bool) PathResult {
	ch := ssOf(w, h) * a.Pinned("adj", 12500, 0, 25000) / 100000
	ch2, ch4 := ch/2, ch/4
	pc := svg.NewPath()
	v := newView(pc, w, h, swap, false, false)
	W, H := v.size()
	x3, x4 := W-ch, W-ch2
	y3, y6, y7 := ch+ch2, H-ch, H-ch2
	y5 := y6 - ch2

	v.M(0, y3)
	v.ArcTo(ch2, ch2, 180, 90)
	v.L(x3, ch)
	v.L(x3, ch2)
	v.ArcTo(ch2, ch2, 180, 180)
	v.L(W, y5)
	v.ArcTo(ch2, ch2, 0, 90)
	v.L(ch, y6)
	v.L(ch, y7)
	v.ArcTo(ch2, ch2, 0, 180)
	v.Z()

	curls := svg.NewPath()
	cv := newView(curls, w, h, swap, false, false)
	cv.M(x4, ch)
	cv.ArcTo(ch4, ch4, 90, -180)
	cv.M(ch2, y6)
	cv.ArcTo(ch4, ch4, 270, 180)
	return filled(pc).withStroke(curls)
}

func horizontalScroll(w, h float64, a Adjustments) PathResult {
	return scroll(w, h, a, false)
}

func verticalScroll(w, h float64, a Adjustments) PathResult {
	return scroll(w, h, a, true)
}

// addWave draws a band whose top and bottom edges are made of S-curves of
// amplitude y1, shifted sideways by shift.
func addWave(pc *svg.SvgPathContext, w, h, y1, shift float64, periods int) {
	dy2 := y1 * 10 / 3
	dx2, dx5 := 0., 0.
	if shift > 0 {
		dx5 = shift
	} else {
		dx2 = shift
	}
	x2, x5 := -dx2, w-dx5
	x6, x10 := dx5, w+dx2
	y4 := h - y1

	seg := (x5 - x2) / float64(periods)
	pc.M(x2, y1)
	for i := 0; i < periods; i++ {
		s := x2 + float64(i)*seg
		pc.C(false, s+seg/3, y1-dy2, s+seg*2/3, y1+dy2, s+seg, y1)
	}
	pc.L(false, x10, y4)
	seg = (x10 - x6) / float64(periods)
	for i := 0; i < periods; i++ {
		s := x10 - float64(i)*seg
		pc.C(false, s-seg/3, y4+dy2, s-seg*2/3, y4-dy2, s-seg, y4)
	}
	pc.Z()
}

func wave(w, h float64, a Adjustments) PathResult {
	y1 := h * a.Pinned("adj1", 12500, 0, 20000) / 100000
	shift := w * a.Pinned("adj2", 0, -10000, 10000) / 50000
	pc := svg.NewPath()
	addWave(pc, w, h, y1, shift, 1)
	return filled(pc)
}

func doubleWave(w, h float64, a Adjustments) PathResult {
	y1 := h * a.Pinned("adj1", 6250, 0, 12500) / 100000
	shift := w * a.Pinned("adj2", 0, -10000, 10000) / 50000
	pc := svg.NewPath()
	addWave(pc, w, h, y1, shift, 2)
	return filled(pc)
}
