package style

import (
	"fmt"

	"oss.terrastruct.com/prstgeom/lib/color"
)

// StrokeStyle is the inline style shared by every outline.
func StrokeStyle(strokeWidth, strokeDash float64) string {
	out := "stroke-linejoin:round;stroke-linecap:round;"
	if strokeDash != 0 {
		dashSize, gapSize := DashAttributes(strokeWidth, strokeDash)
		out += fmt.Sprintf(`stroke-dasharray:%f,%f;`, dashSize, gapSize)
	}
	return out
}

// DashAttributes scales a dash setting with the stroke so thick strokes
// do not turn into dots.
func DashAttributes(strokeWidth, dashGapSize float64) (float64, float64) {
	// as the stroke width gets thicker, the dash gap gets smaller
	scale := 1 + (strokeWidth-2)/10
	if scale < 1 {
		scale = 1
	}
	dashSize := dashGapSize * scale
	gapSize := dashGapSize * 2 / scale
	return dashSize, gapSize
}

// LabelColor picks a text color that stays readable on fill.
func LabelColor(fill string) string {
	lc, err := color.LuminanceCategory(fill)
	if err != nil {
		return "#0A0F25"
	}
	switch lc {
	case "dark", "darker":
		return "#FFFFFF"
	default:
		return "#0A0F25"
	}
}
