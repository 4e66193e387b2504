package svg

import (
	"math"

	"oss.terrastruct.com/prstgeom/lib/geo"
)

// ArcToCubics converts an endpoint-parameterized elliptical arc (SVG "A")
// into cubic Bezier segments of at most 90° each. Every segment is
// {control1, control2, end}.
// https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
func ArcToCubics(from *geo.Point, rx, ry, rotationDeg float64, largeArc, sweep bool, to *geo.Point) [][3]*geo.Point {
	if from.Equals(to) {
		return nil
	}
	rx = math.Abs(rx)
	ry = math.Abs(ry)
	if rx == 0 || ry == 0 {
		return [][3]*geo.Point{{from.Interpolate(to, 1.0/3), from.Interpolate(to, 2.0/3), to.Copy()}}
	}

	phi := geo.Deg(rotationDeg)
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)

	dx2 := (from.X - to.X) / 2
	dy2 := (from.Y - to.Y) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	// scale radii up when the endpoints cannot be joined
	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1p*y1p - ry2*x1p*x1p
	den := rx2*y1p*y1p + ry2*x1p*x1p
	coef := 0.0
	if den != 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if largeArc == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	cx := cosPhi*cxp - sinPhi*cyp + (from.X+to.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (from.Y+to.Y)/2

	theta1 := vectorAngle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	dtheta := vectorAngle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)
	if !sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	} else if sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(dtheta)/(math.Pi/2) - 1e-9))
	if n < 1 {
		n = 1
	}
	delta := dtheta / float64(n)
	k := 4.0 / 3.0 * math.Tan(delta/4)

	at := func(t float64) *geo.Point {
		return geo.NewPoint(
			cx+rx*math.Cos(t)*cosPhi-ry*math.Sin(t)*sinPhi,
			cy+rx*math.Cos(t)*sinPhi+ry*math.Sin(t)*cosPhi,
		)
	}
	deriv := func(t float64) (float64, float64) {
		return -rx*math.Sin(t)*cosPhi - ry*math.Cos(t)*sinPhi,
			-rx*math.Sin(t)*sinPhi + ry*math.Cos(t)*cosPhi
	}

	segs := make([][3]*geo.Point, 0, n)
	for i := 0; i < n; i++ {
		t1 := theta1 + float64(i)*delta
		t2 := t1 + delta
		p1 := at(t1)
		p2 := at(t2)
		if i == n-1 {
			p2 = to.Copy()
		}
		d1x, d1y := deriv(t1)
		d2x, d2y := deriv(t2)
		segs = append(segs, [3]*geo.Point{
			geo.NewPoint(p1.X+k*d1x, p1.Y+k*d1y),
			geo.NewPoint(p2.X-k*d2x, p2.Y-k*d2y),
			p2,
		})
	}
	return segs
}

func vectorAngle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}
