package prstgeom

import (
	"math"

	"oss.terrastruct.com/prstgeom/lib/geo"
	"oss.terrastruct.com/prstgeom/lib/svg"
)

// DefaultStarInnerRatio is the inner radius of every star, relative to the
// outer one, unless overridden.
const DefaultStarInnerRatio = 0.375

// RectPath returns a closed rectangle, clockwise from the top-left corner.
func RectPath(x, y, w, h float64) string {
	pc := svg.NewPath()
	addRect(pc, x, y, w, h)
	return pc.PathData()
}

// RoundedRectOutline returns a closed rectangle at the origin with
// quarter-ellipse corners of radius r. Callers clamp r to min(w, h)/2.
func RoundedRectOutline(w, h, r float64) string {
	pc := svg.NewPath()
	addRoundRect(pc, 0, 0, w, h, r)
	return pc.PathData()
}

// EllipsePath returns a closed ellipse made of two half arcs.
func EllipsePath(cx, cy, rx, ry float64) string {
	pc := svg.NewPath()
	addEllipse(pc, cx, cy, rx, ry)
	return pc.PathData()
}

// RegularPolygon returns a closed polygon inscribed in the ellipse bounded by
// w×h. Vertex i sits at startAngle + i·2π/sides radians.
func RegularPolygon(sides int, w, h, startAngle float64) string {
	pc := svg.NewPath()
	addPolygonOn(pc, w/2, h/2, w/2, h/2, sides, startAngle)
	return pc.PathData()
}

// StarPath returns a closed star polygon. See StarVertices.
func StarPath(points int, w, h, innerRatio, rotation float64) string {
	pc := svg.NewPath()
	addPoints(pc, StarVertices(points, w, h, innerRatio, rotation))
	return pc.PathData()
}

// StarVertices returns the 2·points vertices of a star inscribed in w×h,
// alternating between the outer ellipse and the inner one scaled by
// innerRatio. The first vertex points up; rotation, in 1/60000 of a degree,
// turns the star clockwise.
func StarVertices(points int, w, h, innerRatio, rotation float64) []*geo.Point {
	if points <= 0 {
		return nil
	}
	cx, cy := w/2, h/2
	base := -math.Pi/2 + geo.Deg(rotation/60000)
	step := math.Pi / float64(points)
	vertices := make([]*geo.Point, 0, 2*points)
	for i := 0; i < 2*points; i++ {
		r := 1.
		if i%2 == 1 {
			r = innerRatio
		}
		a := base + float64(i)*step
		vertices = append(vertices, geo.NewPoint(cx+cx*r*math.Cos(a), cy+cy*r*math.Sin(a)))
	}
	return vertices
}

func addRect(pc *svg.SvgPathContext, x, y, w, h float64) {
	pc.Polygon(x, y, x+w, y, x+w, y+h, x, y+h)
}

func addRoundRect(pc *svg.SvgPathContext, x, y, w, h, r float64) {
	c := corner{kind: roundCorner, r: r}
	addCornerRect(pc, x, y, w, h, c, c, c, c)
}

func addEllipse(pc *svg.SvgPathContext, cx, cy, rx, ry float64) {
	pc.M(cx+rx, cy)
	pc.A(false, rx, ry, 0, false, true, cx-rx, cy)
	pc.A(false, rx, ry, 0, false, true, cx+rx, cy)
	pc.Z()
}

// addEllipseCCW draws the ellipse counter-clockwise, which cuts a hole out
// of a clockwise figure around it.
func addEllipseCCW(pc *svg.SvgPathContext, cx, cy, rx, ry float64) {
	pc.M(cx+rx, cy)
	pc.A(false, rx, ry, 0, false, false, cx-rx, cy)
	pc.A(false, rx, ry, 0, false, false, cx+rx, cy)
	pc.Z()
}

func addPolygonOn(pc *svg.SvgPathContext, cx, cy, rx, ry float64, sides int, start float64) {
	if sides <= 0 {
		return
	}
	step := 2 * math.Pi / float64(sides)
	xys := make([]float64, 0, 2*sides)
	for i := 0; i < sides; i++ {
		a := start + float64(i)*step
		xys = append(xys, cx+rx*math.Cos(a), cy+ry*math.Sin(a))
	}
	pc.Polygon(xys...)
}

func addPoints(pc *svg.SvgPathContext, points []*geo.Point) {
	xys := make([]float64, 0, 2*len(points))
	for _, p := range points {
		xys = append(xys, p.X, p.Y)
	}
	pc.Polygon(xys...)
}

// signedArea is positive for figures that run clockwise on screen.
func signedArea(xys []float64) float64 {
	n := len(xys) / 2
	area := 0.
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += xys[2*i]*xys[2*j+1] - xys[2*j]*xys[2*i+1]
	}
	return area / 2
}

func reversed(xys []float64) []float64 {
	out := make([]float64, 0, len(xys))
	for i := len(xys) - 2; i >= 0; i -= 2 {
		out = append(out, xys[i], xys[i+1])
	}
	return out
}

// polygonCW draws a closed polygon running clockwise whatever the vertex order.
func polygonCW(pc *svg.SvgPathContext, xys ...float64) {
	if signedArea(xys) < 0 {
		xys = reversed(xys)
	}
	pc.Polygon(xys...)
}

// polygonCCW draws a closed polygon running counter-clockwise.
func polygonCCW(pc *svg.SvgPathContext, xys ...float64) {
	if signedArea(xys) > 0 {
		xys = reversed(xys)
	}
	pc.Polygon(xys...)
}

type cornerKind int

const (
	squareCorner cornerKind = iota
	snipCorner
	roundCorner
)

type corner struct {
	kind cornerKind
	r    float64
}

func (c corner) size() float64 {
	if c.kind == squareCorner || c.r < 0 {
		return 0
	}
	return c.r
}

// addCornerRect draws a rectangle clockwise from the top edge, each corner
// square, snipped or rounded.
func addCornerRect(pc *svg.SvgPathContext, x, y, w, h float64, tl, tr, br, bl corner) {
	pc.M(x+tl.size(), y)
	pc.L(false, x+w-tr.size(), y)
	turnCorner(pc, tr, x+w, y+tr.size(), 270)
	pc.L(false, x+w, y+h-br.size())
	turnCorner(pc, br, x+w-br.size(), y+h, 0)
	pc.L(false, x+bl.size(), y+h)
	turnCorner(pc, bl, x, y+h-bl.size(), 90)
	pc.L(false, x, y+tl.size())
	turnCorner(pc, tl, x+tl.size(), y, 180)
	pc.Z()
}

func turnCorner(pc *svg.SvgPathContext, c corner, x, y, stAng float64) {
	r := c.size()
	if r == 0 {
		return
	}
	switch c.kind {
	case snipCorner:
		pc.L(false, x, y)
	case roundCorner:
		pc.ArcToDeg(r, r, stAng, 90)
	}
}

// view draws in a logical frame that is transposed and/or mirrored onto
// the real w×h box, so one formula serves every orientation of a shape.
// Arc angles are in degrees.
type view struct {
	pc           *svg.SvgPathContext
	w, h         float64
	swap         bool
	flipX, flipY bool
}

func newView(pc *svg.SvgPathContext, w, h float64, swap, flipX, flipY bool) view {
	return view{pc: pc, w: w, h: h, swap: swap, flipX: flipX, flipY: flipY}
}

// size is the logical width and height.
func (v view) size() (float64, float64) {
	if v.swap {
		return v.h, v.w
	}
	return v.w, v.h
}

func (v view) pt(x, y float64) (float64, float64) {
	if v.swap {
		x, y = y, x
	}
	if v.flipX {
		x = v.w - x
	}
	if v.flipY {
		y = v.h - y
	}
	return x, y
}

func (v view) M(x, y float64) {
	v.pc.M(v.pt(x, y))
}

func (v view) L(x, y float64) {
	x, y = v.pt(x, y)
	v.pc.L(false, x, y)
}

func (v view) C(x1, y1, x2, y2, x3, y3 float64) {
	x1, y1 = v.pt(x1, y1)
	x2, y2 = v.pt(x2, y2)
	x3, y3 = v.pt(x3, y3)
	v.pc.C(false, x1, y1, x2, y2, x3, y3)
}

func (v view) Q(x1, y1, x2, y2 float64) {
	x1, y1 = v.pt(x1, y1)
	x2, y2 = v.pt(x2, y2)
	v.pc.Q(false, x1, y1, x2, y2)
}

func (v view) Z() {
	v.pc.Z()
}

func (v view) Polygon(xys ...float64) {
	if len(xys) < 2 {
		return
	}
	v.M(xys[0], xys[1])
	for i := 2; i+1 < len(xys); i += 2 {
		v.L(xys[i], xys[i+1])
	}
	v.Z()
}

func (v view) ArcTo(wR, hR, stAng, swAng float64) {
	if v.swap {
		wR, hR = hR, wR
		stAng, swAng = 90-stAng, -swAng
	}
	if v.flipX {
		stAng, swAng = 180-stAng, -swAng
	}
	if v.flipY {
		stAng, swAng = -stAng, -swAng
	}
	v.pc.ArcToDeg(wR, hR, stAng, swAng)
}

// ellipsePoint is the point at visual angle deg on the ellipse centered at
// (cx, cy).
func ellipsePoint(cx, cy, rx, ry, deg float64) *geo.Point {
	return geo.NewEllipse(geo.NewPoint(cx, cy), rx, ry).PointAt(geo.Deg(deg))
}

// quarter draws a quarter ellipse from the current point to (x, y) as one
// cubic whose control points pull toward the corner (cx, cy).
func quarter(pc *svg.SvgPathContext, cx, cy, x, y float64) {
	const k = 0.5523
	from := pc.Current
	pc.C(false,
		from.X+(cx-from.X)*k, from.Y+(cy-from.Y)*k,
		x+(cx-x)*k, y+(cy-y)*k,
		x, y,
	)
}

func ssOf(w, h float64) float64 {
	return math.Min(w, h)
}

// eps keeps inner radii strictly positive so arcs never turn inside out.
const eps = 1e-3

func positive(v float64) float64 {
	return math.Max(v, eps)
}
