package svg

import (
	"fmt"
	"math"
	"strings"

	"oss.terrastruct.com/prstgeom/lib/geo"
)

// SvgPathContext accumulates absolute path commands. Coordinates passed to
// the drawing methods are scaled by ScaleX/ScaleY and offset by TopLeft.
type SvgPathContext struct {
	Commands []string
	Start    *geo.Point
	Current  *geo.Point
	TopLeft  *geo.Point
	ScaleX   float64
	ScaleY   float64
}

// TODO probably use math.Big
func chopPrecision(f float64) float64 {
	r := math.Round(f*10000) / 10000
	if r == 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		// no "-0", "NaN" or "+Inf" in output
		return 0
	}
	return r
}

func num(f float64) string {
	return fmt.Sprintf("%v", chopPrecision(f))
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func NewSVGPathContext(tl *geo.Point, sx, sy float64) *SvgPathContext {
	return &SvgPathContext{TopLeft: tl.Copy(), ScaleX: sx, ScaleY: sy}
}

// NewPath returns a context drawing in unscaled coordinates from the origin.
func NewPath() *SvgPathContext {
	return NewSVGPathContext(geo.NewPoint(0, 0), 1, 1)
}

func (c *SvgPathContext) Relative(base *geo.Point, dx, dy float64) *geo.Point {
	return geo.NewPoint(chopPrecision(base.X+c.ScaleX*dx), chopPrecision(base.Y+c.ScaleY*dy))
}

func (c *SvgPathContext) Absolute(x, y float64) *geo.Point {
	return c.Relative(c.TopLeft, x, y)
}

func (c *SvgPathContext) point(isLowerCase bool, x, y float64) *geo.Point {
	if isLowerCase {
		return c.Relative(c.Current, x, y)
	}
	return c.Absolute(x, y)
}

// StartAt begins a new figure. A context may hold several figures.
func (c *SvgPathContext) StartAt(p *geo.Point) {
	p = geo.NewPoint(chopPrecision(p.X), chopPrecision(p.Y))
	c.Start = p.Copy()
	c.Commands = append(c.Commands, fmt.Sprintf("M %v %v", p.X, p.Y))
	c.Current = p.Copy()
}

// M is StartAt in unscaled coordinates.
func (c *SvgPathContext) M(x, y float64) {
	c.StartAt(c.Absolute(x, y))
}

func (c *SvgPathContext) Z() {
	c.Commands = append(c.Commands, "Z")
	c.Current = c.Start.Copy()
}

// L draws a line to (x, y). A line that would not move is dropped.
func (c *SvgPathContext) L(isLowerCase bool, x, y float64) {
	endPoint := c.point(isLowerCase, x, y)
	if endPoint.Equals(c.Current) {
		return
	}
	c.Commands = append(c.Commands, fmt.Sprintf("L %v %v", endPoint.X, endPoint.Y))
	c.Current = endPoint.Copy()
}

// Lines draws an absolute line to every (x, y) pair of xys.
func (c *SvgPathContext) Lines(xys ...float64) {
	for i := 0; i+1 < len(xys); i += 2 {
		c.L(false, xys[i], xys[i+1])
	}
}

// Polygon draws a closed figure through the (x, y) pairs of xys.
func (c *SvgPathContext) Polygon(xys ...float64) {
	if len(xys) < 2 {
		return
	}
	c.M(xys[0], xys[1])
	c.Lines(xys[2:]...)
	c.Z()
}

// Polyline draws an open figure through the (x, y) pairs of xys.
func (c *SvgPathContext) Polyline(xys ...float64) {
	if len(xys) < 2 {
		return
	}
	c.M(xys[0], xys[1])
	c.Lines(xys[2:]...)
}

func (c *SvgPathContext) C(isLowerCase bool, x1, y1, x2, y2, x3, y3 float64) {
	points := []*geo.Point{c.point(isLowerCase, x1, y1), c.point(isLowerCase, x2, y2), c.point(isLowerCase, x3, y3)}
	c.Commands = append(c.Commands, fmt.Sprintf(
		"C %v %v %v %v %v %v",
		points[0].X, points[0].Y,
		points[1].X, points[1].Y,
		points[2].X, points[2].Y,
	))
	c.Current = points[2].Copy()
}

func (c *SvgPathContext) Q(isLowerCase bool, x1, y1, x2, y2 float64) {
	ctrl := c.point(isLowerCase, x1, y1)
	end := c.point(isLowerCase, x2, y2)
	c.Commands = append(c.Commands, fmt.Sprintf("Q %v %v %v %v", ctrl.X, ctrl.Y, end.X, end.Y))
	c.Current = end
}

// S is the smooth cubic: its first control point mirrors the previous curve's second one.
func (c *SvgPathContext) S(isLowerCase bool, x2, y2, x3, y3 float64) {
	ctrl := c.point(isLowerCase, x2, y2)
	end := c.point(isLowerCase, x3, y3)
	c.Commands = append(c.Commands, fmt.Sprintf("S %v %v %v %v", ctrl.X, ctrl.Y, end.X, end.Y))
	c.Current = end
}

// H emits an L so output stays within M L C Q S A Z.
func (c *SvgPathContext) H(isLowerCase bool, x float64) {
	var endPoint *geo.Point
	if isLowerCase {
		endPoint = c.Relative(c.Current, x, 0)
	} else {
		endPoint = c.Absolute(x, 0)
		endPoint.Y = c.Current.Y
	}
	if endPoint.Equals(c.Current) {
		return
	}
	c.Commands = append(c.Commands, fmt.Sprintf("L %v %v", endPoint.X, endPoint.Y))
	c.Current = endPoint.Copy()
}

func (c *SvgPathContext) V(isLowerCase bool, y float64) {
	var endPoint *geo.Point
	if isLowerCase {
		endPoint = c.Relative(c.Current, 0, y)
	} else {
		endPoint = c.Absolute(0, y)
		endPoint.X = c.Current.X
	}
	if endPoint.Equals(c.Current) {
		return
	}
	c.Commands = append(c.Commands, fmt.Sprintf("L %v %v", endPoint.X, endPoint.Y))
	c.Current = endPoint.Copy()
}

// A draws an elliptical arc to (x, y) with SVG endpoint semantics.
func (c *SvgPathContext) A(isLowerCase bool, rx, ry, rotation float64, largeArc, sweep bool, x, y float64) {
	end := c.point(isLowerCase, x, y)
	if end.Equals(c.Current) {
		// an arc between equal endpoints draws nothing
		return
	}
	c.Commands = append(c.Commands, fmt.Sprintf("A %s %s %s %s %s %v %v",
		num(math.Abs(rx*c.ScaleX)), num(math.Abs(ry*c.ScaleY)), num(rotation),
		flag(largeArc), flag(sweep),
		end.X, end.Y,
	))
	c.Current = end.Copy()
}

// ArcTo continues the figure along an ellipse of radii wR, hR. The current
// point lies on the ellipse at visual angle stAng; the arc sweeps swAng
// radians (positive is clockwise on screen). Full turns are split in two
// so that start and end of every emitted arc differ.
func (c *SvgPathContext) ArcTo(wR, hR, stAng, swAng float64) {
	if swAng == 0 {
		return
	}
	if math.Abs(swAng) >= 2*math.Pi-1e-9 {
		half := math.Copysign(math.Pi, swAng)
		c.ArcTo(wR, hR, stAng, half)
		c.ArcTo(wR, hR, stAng+half, half)
		return
	}

	rx := wR * c.ScaleX
	ry := hR * c.ScaleY
	e := geo.NewEllipse(geo.NewPoint(0, 0), rx, ry)
	st := e.PointAt(stAng)
	en := e.PointAt(stAng + swAng)
	x := c.Current.X - st.X + en.X
	y := c.Current.Y - st.Y + en.Y
	end := geo.NewPoint(chopPrecision(x), chopPrecision(y))
	if end.Equals(c.Current) {
		return
	}

	if rx == 0 || ry == 0 {
		c.Commands = append(c.Commands, fmt.Sprintf("L %v %v", end.X, end.Y))
	} else {
		c.Commands = append(c.Commands, fmt.Sprintf("A %s %s 0 %s %s %v %v",
			num(math.Abs(rx)), num(math.Abs(ry)),
			flag(math.Abs(swAng) > math.Pi), flag(swAng > 0),
			end.X, end.Y,
		))
	}
	c.Current = end
}

// ArcToDeg is ArcTo with angles in degrees.
func (c *SvgPathContext) ArcToDeg(wR, hR, stAng, swAng float64) {
	c.ArcTo(wR, hR, geo.Deg(stAng), geo.Deg(swAng))
}

// Append copies the figures of other onto the end of c.
func (c *SvgPathContext) Append(other *SvgPathContext) {
	if other == nil || len(other.Commands) == 0 {
		return
	}
	c.Commands = append(c.Commands, other.Commands...)
	c.Start = other.Start
	c.Current = other.Current
}

func (c *SvgPathContext) PathData() string {
	return strings.Join(c.Commands, " ")
}
