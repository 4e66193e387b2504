package prstgeom

import (
	"fmt"

	"oss.terrastruct.com/prstgeom/lib/svg"
)

var starShapes = family{
	name:   "stars",
	shapes: starTable(),
}

func starTable() map[string]Generator {
	shapes := map[string]Generator{
		"irregularSeal1": irregularSeal1,
		"irregularSeal2": irregularSeal2,
	}
	for _, n := range []int{4, 5, 6, 7, 8, 10, 12, 16, 24, 32} {
		shapes[fmt.Sprintf("star%d", n)] = star(n)
	}
	return shapes
}

// star draws every point count the same way: inner radius 0.375 of the
// outer one, or adj/50000 when adj is given.
func star(points int) Generator {
	return func(w, h float64, a Adjustments) PathResult {
		ratio := DefaultStarInnerRatio
		if a.Has("adj") {
			ratio = a.Pinned("adj", 0, 0, 50000) / 50000
		}
		return PathResult{Path: StarPath(points, w, h, ratio, 0)}
	}
}

func irregularSeal1(w, h float64, _ Adjustments) PathResult {
	pc := svg.NewPath()
	fixedPolygon(pc, w, h,
		10800, 5800, 8352, 2295, 7312, 6320, 370, 2295, 4627, 7617,
		0, 8615, 3722, 11775, 135, 14587, 5667, 13937, 4762, 17617,
		7715, 14958, 8485, 21600, 10222, 14587, 12877, 19712, 13330, 14350,
		16702, 18370, 15600, 13800, 20290, 14800, 17412, 11262, 21600, 7745,
		18012, 7370, 21600, 3722, 15600, 5227, 16270, 0, 13020, 3685,
	)
	return filled(pc)
}

func irregularSeal2(w, h float64, _ Adjustments) PathResult {
	pc := svg.NewPath()
	fixedPolygon(pc, w, h,
		11462, 4342, 9722, 1887, 8550, 6382, 4502, 3625, 5270, 7393,
		1172, 8270, 3935, 11592, 0, 12877, 3330, 15370, 1285, 17825,
		4805, 18153, 5878, 21600, 7979, 18358, 8540, 21600, 10683, 17800,
		12877, 19702, 13640, 17262, 16207, 18510, 16800, 14325, 19635, 15077,
		17462, 11867, 21600, 10215, 18007, 8187, 20050, 6370, 16792, 5877,
		17537, 2590, 14340, 877,
	)
	return filled(pc)
}
