// Package prstgeom computes SVG path geometry for the preset shapes of
// office drawing markup.
package prstgeom

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"oss.terrastruct.com/prstgeom/lib/svg"
)

// Generator computes the geometry of one preset for a w×h box.
type Generator func(w, h float64, a Adjustments) PathResult

type family struct {
	name   string
	shapes map[string]Generator
}

var (
	registry map[string]Generator
	families map[string]string
	names    []string
)

func init() {
	registry = make(map[string]Generator)
	families = make(map[string]string)
	for _, f := range []family{
		rectShapes,
		basicShapes,
		starShapes,
		mathShapes,
		connectorShapes,
		decorationShapes,
		calloutShapes,
		arrowShapes,
		flowChartShapes,
		actionButtonShapes,
	} {
		for name, gen := range f.shapes {
			if _, ok := registry[name]; ok {
				panic(fmt.Sprintf("prstgeom: %s registered by %s and %s", name, families[name], f.name))
			}
			registry[name] = gen
			families[name] = f.name
		}
	}
	for name, f := range fallbacks {
		families[name] = f
	}
	names = maps.Keys(families)
	slices.Sort(names)
}

// fallbacks are resolved by Generate when the tables have no entry.
var fallbacks = map[string]string{
	"rect": "rectangles",
	"line": "connectors",
}

// Generate returns the geometry of the named preset. Unknown names report
// false, except rect and line which always resolve.
func Generate(name string, w, h float64, a Adjustments) (PathResult, bool) {
	if gen, ok := registry[name]; ok {
		return gen(w, h, a), true
	}
	switch name {
	case "rect":
		return filled(rectFallback(w, h)), true
	case "line":
		pc := svg.NewPath()
		pc.Polyline(0, 0, w, h)
		return open(pc), true
	}
	return PathResult{}, false
}

func rectFallback(w, h float64) *svg.SvgPathContext {
	pc := svg.NewPath()
	addRect(pc, 0, 0, w, h)
	return pc
}

// Has reports whether Generate resolves name.
func Has(name string) bool {
	_, ok := families[name]
	return ok
}

// Names returns every preset Generate resolves, sorted.
func Names() []string {
	return slices.Clone(names)
}

// Family returns the family a preset belongs to, or "".
func Family(name string) string {
	return families[name]
}

// Families returns the family names in gallery order.
func Families() []string {
	return []string{
		rectShapes.name,
		basicShapes.name,
		starShapes.name,
		mathShapes.name,
		connectorShapes.name,
		decorationShapes.name,
		calloutShapes.name,
		arrowShapes.name,
		flowChartShapes.name,
		actionButtonShapes.name,
	}
}
