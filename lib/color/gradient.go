package color

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Gradient is a parsed CSS linear-gradient or radial-gradient.
type Gradient struct {
	Type      string
	Direction string
	Stops     []Stop
	ID        string
}

type Stop struct {
	Color    string
	Position string
}

var gradientRegex = regexp.MustCompile(`^(linear|radial)-gradient\((.+)\)$`)

func IsGradient(color string) bool {
	return gradientRegex.MatchString(strings.TrimSpace(color))
}

func ParseGradient(cssGradient string) (Gradient, error) {
	cssGradient = strings.TrimSpace(cssGradient)
	m := gradientRegex.FindStringSubmatch(cssGradient)
	if m == nil {
		return Gradient{}, fmt.Errorf("invalid gradient syntax: %q", cssGradient)
	}

	g := Gradient{
		Type: m[1],
		ID:   GradientID(cssGradient),
	}
	params := splitParams(m[2])
	first := strings.TrimSpace(params[0])
	switch {
	case g.Type == "linear" && (strings.HasSuffix(first, "deg") || strings.HasPrefix(first, "to ")),
		g.Type == "radial" && (first == "circle" || first == "ellipse"):
		g.Direction = first
		params = params[1:]
	}
	for _, p := range params {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		stop := Stop{Color: p}
		if i := strings.LastIndexByte(p, ' '); i > 0 && isStopPosition(p[i+1:]) {
			stop = Stop{Color: strings.TrimSpace(p[:i]), Position: p[i+1:]}
		}
		g.Stops = append(g.Stops, stop)
	}
	if len(g.Stops) == 0 {
		return Gradient{}, errors.New("no color stops in gradient")
	}
	return g, nil
}

func isStopPosition(s string) bool {
	s = strings.TrimSuffix(strings.TrimSuffix(s, "%"), "px")
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// FirstColor is the color used where a gradient cannot be painted.
func (g Gradient) FirstColor() string {
	if len(g.Stops) == 0 {
		return DefaultFill
	}
	return g.Stops[0].Color
}

// splitParams splits on commas outside of parentheses so rgb(...) stops
// stay whole.
func splitParams(params string) []string {
	var parts []string
	var buf strings.Builder
	nesting := 0

	for _, r := range params {
		switch r {
		case ',':
			if nesting == 0 {
				parts = append(parts, buf.String())
				buf.Reset()
				continue
			}
		case '(':
			nesting++
		case ')':
			if nesting > 0 {
				nesting--
			}
		}
		buf.WriteRune(r)
	}
	if buf.Len() > 0 {
		parts = append(parts, buf.String())
	}
	return parts
}

// SVG returns the <linearGradient> or <radialGradient> element for g.
func (g Gradient) SVG() string {
	var sb strings.Builder
	switch g.Type {
	case "linear":
		x1, y1, x2, y2 := linearDirection(g.Direction)
		fmt.Fprintf(&sb, `<linearGradient id="%s" x1="%s" y1="%s" x2="%s" y2="%s">`, g.ID, x1, y1, x2, y2)
	default:
		fmt.Fprintf(&sb, `<radialGradient id="%s">`, g.ID)
	}
	for i, s := range g.Stops {
		offset := s.Position
		if offset == "" {
			offset = "0%"
			if len(g.Stops) > 1 {
				offset = fmt.Sprintf("%.2f%%", float64(i)/float64(len(g.Stops)-1)*100)
			}
		}
		fmt.Fprintf(&sb, `<stop offset="%s" stop-color="%s" />`, offset, s.Color)
	}
	fmt.Fprintf(&sb, `</%sGradient>`, g.Type)
	return sb.String()
}

// URL is the paint reference to use in fill or stroke attributes.
func (g Gradient) URL() string {
	return fmt.Sprintf("url('#%s')", g.ID)
}

func linearDirection(direction string) (x1, y1, x2, y2 string) {
	x1, y1, x2, y2 = "0%", "0%", "0%", "100%"

	direction = strings.TrimSpace(direction)
	if strings.HasPrefix(direction, "to ") {
		xStart, yStart := "50%", "50%"
		xEnd, yEnd := "50%", "50%"
		for _, part := range strings.Fields(strings.TrimPrefix(direction, "to ")) {
			switch part {
			case "left":
				xStart, xEnd = "100%", "0%"
			case "right":
				xStart, xEnd = "0%", "100%"
			case "top":
				yStart, yEnd = "100%", "0%"
			case "bottom":
				yStart, yEnd = "0%", "100%"
			}
		}
		return xStart, yStart, xEnd, yEnd
	}
	if strings.HasSuffix(direction, "deg") {
		angle, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(direction, "deg")), 64)
		if err == nil {
			// CSS measures clockwise from "to top"
			a := (angle - 90) * math.Pi / 180
			x1 = fmt.Sprintf("%.2f%%", 50-50*math.Cos(a))
			y1 = fmt.Sprintf("%.2f%%", 50-50*math.Sin(a))
			x2 = fmt.Sprintf("%.2f%%", 50+50*math.Cos(a))
			y2 = fmt.Sprintf("%.2f%%", 50+50*math.Sin(a))
		}
	}
	return x1, y1, x2, y2
}

func GradientID(cssGradient string) string {
	h := sha1.New()
	h.Write([]byte(cssGradient))
	return "grad-" + hex.EncodeToString(h.Sum(nil))
}
