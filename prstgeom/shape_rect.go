package prstgeom

import "oss.terrastruct.com/prstgeom/lib/svg"

var rectShapes = family{
	name: "rectangles",
	shapes: map[string]Generator{
		"roundRect":      roundRect,
		"snip1Rect":      snip1Rect,
		"snip2SameRect":  snip2SameRect,
		"snip2DiagRect":  snip2DiagRect,
		"snipRoundRect":  snipRoundRect,
		"round1Rect":     round1Rect,
		"round2SameRect": round2SameRect,
		"round2DiagRect": round2DiagRect,
	},
}

var square = corner{}

// cornerSize is min(w, h)·adj/100000 with adj pinned to [0, 50000].
func cornerSize(w, h float64, a Adjustments, key string, def int64) float64 {
	return ssOf(w, h) * a.Pinned(key, def, 0, 50000) / 100000
}

func cornered(w, h float64, tl, tr, br, bl corner) PathResult {
	pc := svg.NewPath()
	addCornerRect(pc, 0, 0, w, h, tl, tr, br, bl)
	return filled(pc)
}

func roundRect(w, h float64, a Adjustments) PathResult {
	r := cornerSize(w, h, a, "adj", 16667)
	if r == 0 {
		return filled(rectFallback(w, h))
	}
	pc := svg.NewPath()
	addRoundRect(pc, 0, 0, w, h, r)
	return filled(pc)
}

func snip1Rect(w, h float64, a Adjustments) PathResult {
	dx := cornerSize(w, h, a, "adj", 16667)
	return cornered(w, h, square, corner{snipCorner, dx}, square, square)
}

func snip2SameRect(w, h float64, a Adjustments) PathResult {
	top := corner{snipCorner, cornerSize(w, h, a, "adj1", 16667)}
	bottom := corner{snipCorner, cornerSize(w, h, a, "adj2", 0)}
	return cornered(w, h, top, top, bottom, bottom)
}

func snip2DiagRect(w, h float64, a Adjustments) PathResult {
	main := corner{snipCorner, cornerSize(w, h, a, "adj1", 0)}
	anti := corner{snipCorner, cornerSize(w, h, a, "adj2", 16667)}
	return cornered(w, h, main, anti, main, anti)
}

func snipRoundRect(w, h float64, a Adjustments) PathResult {
	round := corner{roundCorner, cornerSize(w, h, a, "adj1", 16667)}
	snip := corner{snipCorner, cornerSize(w, h, a, "adj2", 16667)}
	return cornered(w, h, round, snip, square, square)
}

func round1Rect(w, h float64, a Adjustments) PathResult {
	r := cornerSize(w, h, a, "adj", 16667)
	return cornered(w, h, square, corner{roundCorner, r}, square, square)
}

func round2SameRect(w, h float64, a Adjustments) PathResult {
	top := corner{roundCorner, cornerSize(w, h, a, "adj1", 16667)}
	bottom := corner{roundCorner, cornerSize(w, h, a, "adj2", 0)}
	return cornered(w, h, top, top, bottom, bottom)
}

func round2DiagRect(w, h float64, a Adjustments) PathResult {
	main := corner{roundCorner, cornerSize(w, h, a, "adj1", 16667)}
	anti := corner{roundCorner, cornerSize(w, h, a, "adj2", 0)}
	return cornered(w, h, main, anti, main, anti)
}
