package prstraster

import (
	imgcolor "image/color"
	"math"

	"golang.org/x/image/vector"

	"oss.terrastruct.com/prstgeom/lib/color"
	"oss.terrastruct.com/prstgeom/lib/geo"
	"oss.terrastruct.com/prstgeom/lib/svg"
)

// transform maps shape units to pixels.
type transform struct {
	pad   float64
	scale float64
}

func (t transform) at(p *geo.Point) (float32, float32) {
	x, y := t.pixel(p)
	return float32(x), float32(y)
}

func (t transform) pixel(p *geo.Point) (float64, float64) {
	return (p.X + t.pad) * t.scale, (p.Y + t.pad) * t.scale
}

func fillPath(z *vector.Rasterizer, t transform, cmds []svg.Command) {
	var cur, start, ctrl *geo.Point
	open := false
	for _, c := range cmds {
		switch c.Op {
		case 'M':
			if open {
				z.ClosePath()
			}
			start = c.End()
			z.MoveTo(t.at(start))
			open = true
		case 'L':
			z.LineTo(t.at(c.End()))
		case 'Q':
			x1, y1 := t.at(geo.NewPoint(c.Args[0], c.Args[1]))
			x2, y2 := t.at(c.End())
			z.QuadTo(x1, y1, x2, y2)
		case 'C', 'S':
			c1, c2 := svg.CubicControls(c, cur, ctrl)
			cubeTo(z, t, c1, c2, c.End())
			ctrl = c2
		case 'A':
			for _, seg := range svg.ArcToCubics(cur, c.Args[0], c.Args[1], c.Args[2], c.Args[3] == 1, c.Args[4] == 1, c.End()) {
				cubeTo(z, t, seg[0], seg[1], seg[2])
			}
		case 'Z':
			z.ClosePath()
			open = false
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
	if open {
		z.ClosePath()
	}
}

func cubeTo(z *vector.Rasterizer, t transform, c1, c2, end *geo.Point) {
	x1, y1 := t.at(c1)
	x2, y2 := t.at(c2)
	x3, y3 := t.at(end)
	z.CubeTo(x1, y1, x2, y2, x3, y3)
}

// strokeLine fills a quad of half width hw around every segment of line
// and a square over every vertex so joints have no gaps. Every polygon
// winds the same way, so overlaps never cancel. It returns the number of
// segments drawn.
func strokeLine(z *vector.Rasterizer, t transform, line []*geo.Point, hw float64) int {
	n := 0
	for i, p := range line {
		x, y := t.pixel(p)
		quad(z, x-hw, y+hw, x+hw, y+hw, x+hw, y-hw, x-hw, y-hw)
		if i == 0 {
			continue
		}
		x0, y0 := t.pixel(line[i-1])
		dx, dy := x-x0, y-y0
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*hw, dx/l*hw
		quad(z, x0+nx, y0+ny, x+nx, y+ny, x-nx, y-ny, x0-nx, y0-ny)
		n++
	}
	return n
}

func quad(z *vector.Rasterizer, xys ...float64) {
	z.MoveTo(float32(xys[0]), float32(xys[1]))
	for i := 2; i+1 < len(xys); i += 2 {
		z.LineTo(float32(xys[i]), float32(xys[i+1]))
	}
	z.ClosePath()
}

func rgba(s string) (imgcolor.NRGBA, error) {
	r, g, b, a, err := color.Parse(s)
	if err != nil {
		return imgcolor.NRGBA{}, err
	}
	return imgcolor.NRGBA{R: channel(r), G: channel(g), B: channel(b), A: channel(a)}, nil
}

func channel(f float64) uint8 {
	return uint8(math.Round(geo.Pin(0, f, 1) * 255))
}
