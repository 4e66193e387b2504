package svg

import "oss.terrastruct.com/prstgeom/lib/geo"

// Flatten turns every figure of cmds into a polyline, sampling each curve
// piece at steps points. Closed figures repeat their start point at the end.
func Flatten(cmds []Command, steps int) [][]*geo.Point {
	if steps < 1 {
		steps = 1
	}
	var lines [][]*geo.Point
	var line []*geo.Point
	var cur, start, ctrl *geo.Point
	flush := func() {
		if len(line) > 1 {
			lines = append(lines, line)
		}
		line = nil
	}
	for _, c := range cmds {
		switch c.Op {
		case 'M':
			flush()
			start = c.End()
			line = []*geo.Point{start}
		case 'L':
			line = append(line, c.End())
		case 'Q':
			line = append(line, sampleQuad(cur, geo.NewPoint(c.Args[0], c.Args[1]), c.End(), steps)...)
		case 'C', 'S':
			c1, c2 := CubicControls(c, cur, ctrl)
			line = append(line, sampleCubic(cur, c1, c2, c.End(), steps)...)
			ctrl = c2
		case 'A':
			from := cur
			for _, seg := range ArcToCubics(cur, c.Args[0], c.Args[1], c.Args[2], c.Args[3] == 1, c.Args[4] == 1, c.End()) {
				line = append(line, sampleCubic(from, seg[0], seg[1], seg[2], steps)...)
				from = seg[2]
			}
		case 'Z':
			if start != nil {
				line = append(line, start)
			}
			flush()
			if start != nil {
				line = []*geo.Point{start}
			}
		}
		if c.Op != 'C' && c.Op != 'S' {
			ctrl = nil
		}
		if end := c.End(); end != nil {
			cur = end
		} else {
			cur = start
		}
	}
	flush()
	return lines
}

// CubicControls returns both control points of a C or S command. The
// first control point of S mirrors prev, the second control point of the
// curve before it.
func CubicControls(c Command, cur, prev *geo.Point) (*geo.Point, *geo.Point) {
	if c.Op == 'C' {
		return geo.NewPoint(c.Args[0], c.Args[1]), geo.NewPoint(c.Args[2], c.Args[3])
	}
	c1 := cur
	if prev != nil && cur != nil {
		c1 = geo.NewPoint(2*cur.X-prev.X, 2*cur.Y-prev.Y)
	}
	return c1, geo.NewPoint(c.Args[0], c.Args[1])
}

func sampleCubic(p0, p1, p2, p3 *geo.Point, steps int) []*geo.Point {
	out := make([]*geo.Point, 0, steps)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		mt := 1 - t
		a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
		out = append(out, geo.NewPoint(
			a*p0.X+b*p1.X+c*p2.X+d*p3.X,
			a*p0.Y+b*p1.Y+c*p2.Y+d*p3.Y,
		))
	}
	return out
}

func sampleQuad(p0, p1, p2 *geo.Point, steps int) []*geo.Point {
	out := make([]*geo.Point, 0, steps)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		mt := 1 - t
		a, b, c := mt*mt, 2*mt*t, t*t
		out = append(out, geo.NewPoint(
			a*p0.X+b*p1.X+c*p2.X,
			a*p0.Y+b*p1.Y+c*p2.Y,
		))
	}
	return out
}
