package prstgeom

import (
	"oss.terrastruct.com/prstgeom/lib/svg"
)

var actionButtonShapes = family{
	name: "actionbuttons",
	shapes: map[string]Generator{
		"actionButtonBlank":        actionButton(nil),
		"actionButtonHome":         actionButton(homeGlyph),
		"actionButtonHelp":         actionButton(helpGlyph),
		"actionButtonInformation":  actionButton(informationGlyph),
		"actionButtonForwardNext":  actionButton(forwardGlyph),
		"actionButtonBackPrevious": actionButton(backGlyph),
		"actionButtonEnd":          actionButton(endGlyph),
		"actionButtonBeginning":    actionButton(beginningGlyph),
		"actionButtonReturn":       actionButton(returnGlyph),
		"actionButtonDocument":     actionButton(documentGlyph),
		"actionButtonSound":        actionButton(soundGlyph),
		"actionButtonMovie":        actionButton(movieGlyph),
	},
}

// glyph draws into a square of half size g centered on (cx, cy). Glyph
// figures run counter-clockwise so they are cut out of the button; detail
// lines go to the stroke path.
type glyph func(pc, stroke *svg.SvgPathContext, cx, cy, g float64)

// actionButton draws a rounded button with a glyph sized from min(w, h).
func actionButton(draw glyph) Generator {
	return func(w, h float64, _ Adjustments) PathResult {
		ss := ssOf(w, h)
		pc := svg.NewPath()
		addRoundRect(pc, 0, 0, w, h, ss/10)
		if draw == nil {
			return filled(pc)
		}
		stroke := svg.NewPath()
		draw(pc, stroke, w/2, h/2, ss*3/8)
		if len(stroke.Commands) == 0 {
			return filled(pc)
		}
		return filled(pc).withStroke(stroke)
	}
}

// at offsets pairs given in units of g from (cx, cy).
func at(cx, cy, g float64, xys ...float64) []float64 {
	out := make([]float64, len(xys))
	for i, v := range xys {
		if i%2 == 0 {
			out[i] = cx + v*g
		} else {
			out[i] = cy + v*g
		}
	}
	return out
}

func homeGlyph(pc, _ *svg.SvgPathContext, cx, cy, g float64) {
	polygonCCW(pc, at(cx, cy, g,
		0, -1, 1, 0, 0.6, 0, 0.6, 1, -0.6, 1, -0.6, 0, -1, 0,
	)...)
}

func helpGlyph(pc, _ *svg.SvgPathContext, cx, cy, g float64) {
	hy := cy - 0.3*g
	rO, rI := 0.55*g, 0.3*g
	t := rO - rI

	bottom := ellipsePoint(cx, hy, rO, rO, 90)
	pc.M(bottom.X, bottom.Y)
	pc.ArcToDeg(rO, rO, 90, -270)
	left := ellipsePoint(cx, hy, rI, rI, 180)
	pc.L(false, left.X, left.Y)
	pc.ArcToDeg(rI, rI, 180, 270)
	pc.Z()

	stemEnd := hy + rO + 0.25*g
	polygonCCW(pc, cx-t, hy+rI, cx, hy+rI, cx, stemEnd, cx-t, stemEnd)
	addEllipseCCW(pc, cx-t/2, stemEnd+0.1*g+t/2, t/2, t/2)
}

func informationGlyph(pc, _ *svg.SvgPathContext, cx, cy, g float64) {
	addEllipseCCW(pc, cx, cy, g, g)
	polygonCW(pc, at(cx, cy, g, -0.125, -0.125, 0.125, -0.125, 0.125, 0.6, -0.125, 0.6)...)
	addEllipse(pc, cx, cy-0.45*g, g/7, g/7)
}

func forwardGlyph(pc, _ *svg.SvgPathContext, cx, cy, g float64) {
	polygonCCW(pc, at(cx, cy, g, 1, 0, -1, -1, -1, 1)...)
}

func backGlyph(pc, _ *svg.SvgPathContext, cx, cy, g float64) {
	polygonCCW(pc, at(cx, cy, g, -1, 0, 1, -1, 1, 1)...)
}

func endGlyph(pc, _ *svg.SvgPathContext, cx, cy, g float64) {
	polygonCCW(pc, at(cx, cy, g, 0.5, 0, -1, -1, -1, 1)...)
	polygonCCW(pc, at(cx, cy, g, 0.625, -1, 1, -1, 1, 1, 0.625, 1)...)
}

func beginningGlyph(pc, _ *svg.SvgPathContext, cx, cy, g float64) {
	polygonCCW(pc, at(cx, cy, g, -0.5, 0, 1, -1, 1, 1)...)
	polygonCCW(pc, at(cx, cy, g, -1, -1, -0.625, -1, -0.625, 1, -1, 1)...)
}

func returnGlyph(pc, _ *svg.SvgPathContext, cx, cy, g float64) {
	polygonCCW(pc, at(cx, cy, g,
		0.5, -0.5, 1, -0.5, 1, 1, -0.5, 1, -0.5, -0.2, -0.9, -0.2,
		-0.25, -1, 0.4, -0.2, 0, -0.2, 0, 0.5, 0.5, 0.5,
	)...)
}

func documentGlyph(pc, stroke *svg.SvgPathContext, cx, cy, g float64) {
	polygonCCW(pc, at(cx, cy, g, -0.7, -1, 0.3, -1, 0.7, -0.6, 0.7, 1, -0.7, 1)...)
	stroke.Polyline(at(cx, cy, g, 0.3, -1, 0.3, -0.6, 0.7, -0.6)...)
}

func soundGlyph(pc, stroke *svg.SvgPathContext, cx, cy, g float64) {
	polygonCCW(pc, at(cx, cy, g,
		-1, -0.35, -0.4, -0.35, 0.1, -1, 0.1, 1, -0.4, 0.35, -1, 0.35,
	)...)
	stroke.Polyline(at(cx, cy, g, 0.4, -0.4, 1, -0.8)...)
	stroke.Polyline(at(cx, cy, g, 0.4, 0, 1, 0)...)
	stroke.Polyline(at(cx, cy, g, 0.4, 0.4, 1, 0.8)...)
}

func movieGlyph(pc, _ *svg.SvgPathContext, cx, cy, g float64) {
	polygonCCW(pc, at(cx, cy, g, -1, -0.5, 0.4, -0.5, 0.4, 0.5, -1, 0.5)...)
	polygonCCW(pc, at(cx, cy, g, 0.4, 0, 1, -0.5, 1, 0.5)...)
	addEllipseCCW(pc, cx-0.65*g, cy-0.75*g, 0.25*g, 0.25*g)
	addEllipseCCW(pc, cx-0.05*g, cy-0.75*g, 0.25*g, 0.25*g)
}
