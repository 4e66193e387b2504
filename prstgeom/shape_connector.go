package prstgeom

import "oss.terrastruct.com/prstgeom/lib/svg"

// Connectors run from the top-left to the bottom-right corner of their box
// and are never filled. The plain line is resolved by Generate.
var connectorShapes = family{
	name: "connectors",
	shapes: map[string]Generator{
		"straightConnector1": straightConnector,
		"bentConnector2":     bentConnector2,
		"bentConnector3":     bentConnector3,
		"bentConnector4":     bentConnector4,
		"bentConnector5":     bentConnector5,
		"curvedConnector2":   curvedConnector2,
		"curvedConnector3":   curvedConnector3,
		"curvedConnector4":   curvedConnector4,
		"curvedConnector5":   curvedConnector5,
	},
}

// frac returns a handle as a share of span. Connector handles are not
// pinned: a bend may sit outside the box.
func frac(a Adjustments, key string, span float64) float64 {
	return span * a.Ratio(key, 50000)
}

func straightConnector(w, h float64, _ Adjustments) PathResult {
	pc := svg.NewPath()
	pc.Polyline(0, 0, w, h)
	return open(pc)
}

func bentConnector2(w, h float64, _ Adjustments) PathResult {
	pc := svg.NewPath()
	pc.Polyline(0, 0, w, 0, w, h)
	return open(pc)
}

func bentConnector3(w, h float64, a Adjustments) PathResult {
	x1 := frac(a, "adj1", w)
	pc := svg.NewPath()
	pc.Polyline(0, 0, x1, 0, x1, h, w, h)
	return open(pc)
}

func bentConnector4(w, h float64, a Adjustments) PathResult {
	x1 := frac(a, "adj1", w)
	y2 := frac(a, "adj2", h)
	pc := svg.NewPath()
	pc.Polyline(0, 0, x1, 0, x1, y2, w, y2, w, h)
	return open(pc)
}

func bentConnector5(w, h float64, a Adjustments) PathResult {
	x1 := frac(a, "adj1", w)
	y2 := frac(a, "adj2", h)
	x3 := frac(a, "adj3", w)
	pc := svg.NewPath()
	pc.Polyline(0, 0, x1, 0, x1, y2, x3, y2, x3, h, w, h)
	return open(pc)
}

func curvedConnector2(w, h float64, _ Adjustments) PathResult {
	pc := svg.NewPath()
	pc.M(0, 0)
	pc.C(false, w/2, 0, w, h/2, w, h)
	return open(pc)
}

func curvedConnector3(w, h float64, a Adjustments) PathResult {
	x2 := frac(a, "adj1", w)
	x1 := x2 / 2
	x3 := (w + x2) / 2
	pc := svg.NewPath()
	pc.M(0, 0)
	pc.C(false, x1, 0, x2, h/4, x2, h/2)
	pc.C(false, x2, h*3/4, x3, h, w, h)
	return open(pc)
}

func curvedConnector4(w, h float64, a Adjustments) PathResult {
	x2 := frac(a, "adj1", w)
	x1 := x2 / 2
	x3 := (w + x2) / 2
	x4 := (x2 + x3) / 2
	x5 := (x3 + w) / 2
	y4 := frac(a, "adj2", h)
	y1 := y4 / 2
	y2 := y1 / 2
	y3 := (y1 + y4) / 2
	y5 := (h + y4) / 2
	pc := svg.NewPath()
	pc.M(0, 0)
	pc.C(false, x1, 0, x2, y2, x2, y1)
	pc.C(false, x2, y3, x4, y4, x3, y4)
	pc.C(false, x5, y4, w, y5, w, h)
	return open(pc)
}

func curvedConnector5(w, h float64, a Adjustments) PathResult {
	x3 := frac(a, "adj1", w)
	x6 := frac(a, "adj3", w)
	x1 := (x3 + x6) / 2
	x2 := x3 / 2
	x4 := (x3 + x1) / 2
	x5 := (x6 + x1) / 2
	x7 := (x6 + w) / 2
	y4 := frac(a, "adj2", h)
	y1 := y4 / 2
	y2 := y1 / 2
	y3 := (y1 + y4) / 2
	y5 := (h + y4) / 2
	y6 := (y5 + y4) / 2
	y7 := (y5 + h) / 2
	pc := svg.NewPath()
	pc.M(0, 0)
	pc.C(false, x2, 0, x3, y2, x3, y1)
	pc.C(false, x3, y3, x4, y4, x1, y4)
	pc.C(false, x5, y4, x6, y6, x6, y5)
	pc.C(false, x6, y7, x7, h, w, h)
	return open(pc)
}
