package geo

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func NewPoint(x, y float64) *Point {
	return &Point{X: x, Y: y}
}

func (p1 *Point) Equals(p2 *Point) bool {
	if p1 == nil || p2 == nil {
		return p1 == p2
	}
	return p1.X == p2.X && p1.Y == p2.Y
}

func (p1 *Point) ApproxEquals(p2 *Point, e float64) bool {
	return PrecisionCompare(p1.X, p2.X, e) == 0 && PrecisionCompare(p1.Y, p2.Y, e) == 0
}

func (p *Point) Copy() *Point {
	return NewPoint(p.X, p.Y)
}

func (p *Point) AddVector(v Vector) *Point {
	return NewPoint(p.X+v[0], p.Y+v[1])
}

// VectorTo is the offset from p to q.
func (p *Point) VectorTo(q *Point) Vector {
	return NewVector(q.X-p.X, q.Y-p.Y)
}

// Interpolate returns the point t of the way from a to b.
func (a *Point) Interpolate(b *Point, t float64) *Point {
	return NewPoint(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t)
}
