package prstgeom

import (
	"math"

	"oss.terrastruct.com/prstgeom/lib/geo"
)

// Adjustments maps handle names (adj, adj1 … adj8) to integer values: ratios
// in 1/100000 or angles in 1/60000 of a degree. Absent handles take the
// shape's default.
type Adjustments map[string]int64

// aliases are tried in order when a handle is absent.
var aliases = map[string][]string{
	"adj":  {"val", "adj1"},
	"adj1": {"adj"},
}

func (a Adjustments) lookup(key string) (int64, bool) {
	if v, ok := a[key]; ok {
		return v, true
	}
	for _, alt := range aliases[key] {
		if v, ok := a[alt]; ok {
			return v, true
		}
	}
	return 0, false
}

// Has reports whether the handle, or one of its aliases, is set.
func (a Adjustments) Has(key string) bool {
	_, ok := a.lookup(key)
	return ok
}

// Get returns the raw handle value, or def.
func (a Adjustments) Get(key string, def int64) float64 {
	if v, ok := a.lookup(key); ok {
		return float64(v)
	}
	return float64(def)
}

// Ratio returns the handle as a fraction (100000 → 1).
func (a Adjustments) Ratio(key string, def int64) float64 {
	return a.Get(key, def) / 100000
}

// Angle returns the handle, given in 1/60000 of a degree, as radians.
func (a Adjustments) Angle(key string, def int64) float64 {
	return geo.Deg(a.Degrees(key, def))
}

// Degrees returns the handle, given in 1/60000 of a degree, as degrees.
func (a Adjustments) Degrees(key string, def int64) float64 {
	return a.Get(key, def) / 60000
}

// Pinned returns the handle clamped into [lo, hi], still in 1/100000 units.
func (a Adjustments) Pinned(key string, def int64, lo, hi float64) float64 {
	return geo.Pin(lo, a.Get(key, def), hi)
}

// normAngle folds degrees into [0, 360).
func normAngle(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// sweepCW is the clockwise sweep in (0, 360] from st to en, in degrees.
func sweepCW(st, en float64) float64 {
	sw := normAngle(en - st)
	if sw == 0 {
		sw = 360
	}
	return sw
}
