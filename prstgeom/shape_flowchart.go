package prstgeom

import (
	"math"

	"oss.terrastruct.com/prstgeom/lib/svg"
)

var flowChartShapes = family{
	name: "flowchart",
	shapes: map[string]Generator{
		"flowChartProcess":           flowChartProcess,
		"flowChartAlternateProcess":  flowChartAlternateProcess,
		"flowChartDecision":          diamond,
		"flowChartInputOutput":       flowChartInputOutput,
		"flowChartPredefinedProcess": flowChartPredefinedProcess,
		"flowChartInternalStorage":   flowChartInternalStorage,
		"flowChartDocument":          flowChartDocument,
		"flowChartMultidocument":     flowChartMultidocument,
		"flowChartTerminator":        flowChartTerminator,
		"flowChartPreparation":       flowChartPreparation,
		"flowChartManualInput":       flowChartManualInput,
		"flowChartManualOperation":   flowChartManualOperation,
		"flowChartConnector":         ellipse,
		"flowChartOffpageConnector":  flowChartOffpageConnector,
		"flowChartPunchedCard":       flowChartPunchedCard,
		"flowChartPunchedTape":       flowChartPunchedTape,
		"flowChartSummingJunction":   flowChartSummingJunction,
		"flowChartOr":                flowChartOr,
		"flowChartCollate":           flowChartCollate,
		"flowChartSort":              flowChartSort,
		"flowChartExtract":           flowChartExtract,
		"flowChartMerge":             flowChartMerge,
		"flowChartOnlineStorage":     flowChartOnlineStorage,
		"flowChartDelay":             flowChartDelay,
		"flowChartMagneticTape":      flowChartMagneticTape,
		"flowChartMagneticDisk":      flowChartMagneticDisk,
		"flowChartMagneticDrum":      flowChartMagneticDrum,
		"flowChartDisplay":           flowChartDisplay,
		"flowChartOfflineStorage":    flowChartOfflineStorage,
	},
}

// grid maps coordinates given on an n×n grid onto w×h.
type grid struct {
	pc   *svg.SvgPathContext
	x, y float64
}

func newGrid(w, h, n float64) grid {
	return grid{pc: svg.NewPath(), x: w / n, y: h / n}
}

func (g grid) M(x, y float64) { g.pc.M(x*g.x, y*g.y) }
func (g grid) L(x, y float64) { g.pc.L(false, x*g.x, y*g.y) }

func (g grid) C(x1, y1, x2, y2, x3, y3 float64) {
	g.pc.C(false, x1*g.x, y1*g.y, x2*g.x, y2*g.y, x3*g.x, y3*g.y)
}

func (g grid) Q(x1, y1, x2, y2 float64) {
	g.pc.Q(false, x1*g.x, y1*g.y, x2*g.x, y2*g.y)
}

func (g grid) ArcTo(wR, hR, stAng, swAng float64) {
	g.pc.ArcToDeg(wR*g.x, hR*g.y, stAng, swAng)
}

func (g grid) Polygon(xys ...float64) {
	scaled := make([]float64, len(xys))
	for i, v := range xys {
		if i%2 == 0 {
			scaled[i] = v * g.x
		} else {
			scaled[i] = v * g.y
		}
	}
	g.pc.Polygon(scaled...)
}

func flowChartProcess(w, h float64, _ Adjustments) PathResult {
	return filled(rectFallback(w, h))
}

func flowChartAlternateProcess(w, h float64, _ Adjustments) PathResult {
	pc := svg.NewPath()
	addRoundRect(pc, 0, 0, w, h, ssOf(w, h)/6)
	return filled(pc)
}

func flowChartInputOutput(w, h float64, _ Adjustments) PathResult {
	g := newGrid(w, h, 5)
	g.Polygon(0, 5, 1, 0, 5, 0, 4, 5)
	return filled(g.pc)
}

func flowChartPredefinedProcess(w, h float64, _ Adjustments) PathResult {
	bars := svg.NewPath()
	bars.Polyline(w/8, 0, w/8, h)
	bars.Polyline(w*7/8, 0, w*7/8, h)
	return filled(rectFallback(w, h)).withStroke(bars)
}

func flowChartInternalStorage(w, h float64, _ Adjustments) PathResult {
	lines := svg.NewPath()
	lines.Polyline(w/8, 0, w/8, h)
	lines.Polyline(0, h/8, w, h/8)
	return filled(rectFallback(w, h)).withStroke(lines)
}

func flowChartDocument(w, h float64, _ Adjustments) PathResult {
	g := newGrid(w, h, 21600)
	g.M(0, 0)
	g.L(21600, 0)
	g.L(21600, 17322)
	g.C(10800, 17322, 10800, 23922, 0, 20172)
	g.pc.Z()
	return filled(g.pc)
}

func flowChartMultidocument(w, h float64, _ Adjustments) PathResult {
	g := newGrid(w, h, 21600)
	g.M(0, 20782)
	g.C(9298, 23542, 9298, 18022, 18595, 18022)
	g.L(18595, 3675)
	g.L(0, 3675)
	g.pc.Z()

	g.M(1532, 3675)
	g.L(1532, 1815)
	g.L(20000, 1815)
	g.L(20000, 16252)
	g.C(19298, 16252, 18595, 16352, 18595, 16352)
	g.L(18595, 3675)
	g.pc.Z()

	g.M(2972, 1815)
	g.L(2972, 0)
	g.L(21600, 0)
	g.L(21600, 14392)
	g.C(20800, 14392, 20000, 14467, 20000, 14467)
	g.L(20000, 1815)
	g.pc.Z()
	return filled(g.pc)
}

func flowChartTerminator(w, h float64, _ Adjustments) PathResult {
	g := newGrid(w, h, 21600)
	g.M(3475, 0)
	g.L(18125, 0)
	g.ArcTo(3475, 10800, 270, 180)
	g.L(3475, 21600)
	g.ArcTo(3475, 10800, 90, 180)
	g.pc.Z()
	return filled(g.pc)
}

func flowChartPreparation(w, h float64, _ Adjustments) PathResult {
	g := newGrid(w, h, 10)
	g.Polygon(0, 5, 2, 0, 8, 0, 10, 5, 8, 10, 2, 10)
	return filled(g.pc)
}

func flowChartManualInput(w, h float64, _ Adjustments) PathResult {
	g := newGrid(w, h, 5)
	g.Polygon(0, 1, 5, 0, 5, 5, 0, 5)
	return filled(g.pc)
}

func flowChartManualOperation(w, h float64, _ Adjustments) PathResult {
	g := newGrid(w, h, 5)
	g.Polygon(0, 0, 5, 0, 4, 5, 1, 5)
	return filled(g.pc)
}

func flowChartOffpageConnector(w, h float64, _ Adjustments) PathResult {
	g := newGrid(w, h, 10)
	g.Polygon(0, 0, 10, 0, 10, 8, 5, 10, 0, 8)
	return filled(g.pc)
}

func flowChartPunchedCard(w, h float64, _ Adjustments) PathResult {
	g := newGrid(w, h, 5)
	g.Polygon(0, 1, 1, 0, 5, 0, 5, 5, 0, 5)
	return filled(g.pc)
}

func flowChartPunchedTape(w, h float64, _ Adjustments) PathResult {
	g := newGrid(w, h, 20)
	g.M(0, 2)
	g.Q(5, 6, 10, 2)
	g.Q(15, -2, 20, 2)
	g.L(20, 18)
	g.Q(15, 14, 10, 18)
	g.Q(5, 22, 0, 18)
	g.pc.Z()
	return filled(g.pc)
}

func flowChartSummingJunction(w, h float64, _ Adjustments) PathResult {
	dx, dy := w/2*math.Cos(math.Pi/4), h/2*math.Sin(math.Pi/4)
	cross := svg.NewPath()
	cross.Polyline(w/2-dx, h/2-dy, w/2+dx, h/2+dy)
	cross.Polyline(w/2+dx, h/2-dy, w/2-dx, h/2+dy)
	return ellipse(w, h, nil).withStroke(cross)
}

func flowChartOr(w, h float64, _ Adjustments) PathResult {
	cross := svg.NewPath()
	cross.Polyline(w/2, 0, w/2, h)
	cross.Polyline(0, h/2, w, h/2)
	return ellipse(w, h, nil).withStroke(cross)
}

// flowChartCollate is drawn as two touching triangles rather than one
// self-crossing outline.
func flowChartCollate(w, h float64, _ Adjustments) PathResult {
	pc := svg.NewPath()
	pc.Polygon(0, 0, w, 0, w/2, h/2)
	pc.Polygon(w/2, h/2, w, h, 0, h)
	return filled(pc)
}

func flowChartSort(w, h float64, a Adjustments) PathResult {
	line := svg.NewPath()
	line.Polyline(0, h/2, w, h/2)
	return diamond(w, h, a).withStroke(line)
}

func flowChartExtract(w, h float64, _ Adjustments) PathResult {
	pc := svg.NewPath()
	pc.Polygon(w/2, 0, w, h, 0, h)
	return filled(pc)
}

func flowChartMerge(w, h float64, _ Adjustments) PathResult {
	pc := svg.NewPath()
	pc.Polygon(0, 0, w, 0, w/2, h)
	return filled(pc)
}

func flowChartOnlineStorage(w, h float64, _ Adjustments) PathResult {
	g := newGrid(w, h, 6)
	g.M(1, 0)
	g.L(6, 0)
	g.ArcTo(1, 3, 270, -180)
	g.L(1, 6)
	g.ArcTo(1, 3, 90, 180)
	g.pc.Z()
	return filled(g.pc)
}

func flowChartDelay(w, h float64, _ Adjustments) PathResult {
	pc := svg.NewPath()
	pc.M(0, 0)
	pc.L(false, w/2, 0)
	pc.ArcToDeg(w/2, h/2, 270, 180)
	pc.L(false, 0, h)
	pc.Z()
	return filled(pc)
}

func flowChartMagneticTape(w, h float64, _ Adjustments) PathResult {
	tail := ellipsePoint(w/2, h/2, w/2, h/2, 45)
	pc := svg.NewPath()
	pc.M(w/2, h)
	pc.ArcToDeg(w/2, h/2, 90, 315)
	pc.L(false, w, tail.Y)
	pc.L(false, w, h)
	pc.Z()
	return filled(pc)
}

func flowChartMagneticDisk(w, h float64, _ Adjustments) PathResult {
	g := newGrid(w, h, 6)
	g.M(0, 1)
	g.ArcTo(3, 1, 180, 180)
	g.L(6, 5)
	g.ArcTo(3, 1, 0, 180)
	g.pc.Z()

	rim := newGrid(w, h, 6)
	rim.M(6, 1)
	rim.ArcTo(3, 1, 0, 180)
	return filled(g.pc).withStroke(rim.pc)
}

// flowChartMagneticDrum is a can lying on its side; the drum face on the
// right is stroke-only.
func flowChartMagneticDrum(w, h float64, _ Adjustments) PathResult {
	g := newGrid(w, h, 6)
	g.M(1, 0)
	g.L(5, 0)
	g.ArcTo(1, 3, 270, 180)
	g.L(1, 6)
	g.ArcTo(1, 3, 90, 180)
	g.pc.Z()

	face := newGrid(w, h, 6)
	face.M(5, 6)
	face.ArcTo(1, 3, 90, 180)
	return filled(g.pc).withStroke(face.pc)
}

func flowChartDisplay(w, h float64, _ Adjustments) PathResult {
	g := newGrid(w, h, 6)
	g.M(0, 3)
	g.L(1, 0)
	g.L(5, 0)
	g.ArcTo(1, 3, 270, 180)
	g.L(1, 6)
	g.pc.Z()
	return filled(g.pc)
}

// flowChartOfflineStorage is a downward triangle with a stroke-only bar
// across its lower part.
func flowChartOfflineStorage(w, h float64, _ Adjustments) PathResult {
	pc := svg.NewPath()
	pc.Polygon(0, 0, w, 0, w/2, h)
	bar := svg.NewPath()
	bar.Polyline(w*2/5, h*4/5, w*3/5, h*4/5)
	return filled(pc).withStroke(bar)
}
