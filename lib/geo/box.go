package geo

import "math"

// Box is an axis-aligned extent, used to bound generated paths.
type Box struct {
	TopLeft *Point
	Width   float64
	Height  float64
}

func NewBox(tl *Point, width, height float64) *Box {
	return &Box{
		TopLeft: tl,
		Width:   width,
		Height:  height,
	}
}

func (b *Box) BottomRight() *Point {
	return NewPoint(b.TopLeft.X+b.Width, b.TopLeft.Y+b.Height)
}

// Contains reports whether p lies inside b, with e of slack on every side.
func (b *Box) Contains(p *Point, e float64) bool {
	br := b.BottomRight()
	return p.X >= b.TopLeft.X-e && p.X <= br.X+e &&
		p.Y >= b.TopLeft.Y-e && p.Y <= br.Y+e
}

// Grow returns the smallest box holding b and p. A nil b grows from p.
func (b *Box) Grow(p *Point) *Box {
	if b == nil {
		return NewBox(p.Copy(), 0, 0)
	}
	br := b.BottomRight()
	minX, minY := math.Min(b.TopLeft.X, p.X), math.Min(b.TopLeft.Y, p.Y)
	maxX, maxY := math.Max(br.X, p.X), math.Max(br.Y, p.Y)
	return NewBox(NewPoint(minX, minY), maxX-minX, maxY-minY)
}
