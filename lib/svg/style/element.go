package style

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
)

// Element is a helper for writing SVG elements. Unset numeric attributes
// are math.MaxFloat64 and unset strings are empty; neither is written.
type Element struct {
	tag string

	X           float64
	Y           float64
	Width       float64
	Height      float64
	StrokeWidth float64

	D         string
	Transform string
	FillRule  string

	Fill   string
	Stroke string

	ClassName  string
	Style      string
	Attributes string

	Content string
}

func NewElement(tag string) *Element {
	return &Element{
		tag:         tag,
		X:           math.MaxFloat64,
		Y:           math.MaxFloat64,
		Width:       math.MaxFloat64,
		Height:      math.MaxFloat64,
		StrokeWidth: math.MaxFloat64,
	}
}

func (el *Element) SetTranslate(x, y float64) {
	el.Transform = fmt.Sprintf("translate(%v %v)", x, y)
}

// SetText makes s, escaped, the content of el.
func (el *Element) SetText(s string) {
	buf := new(bytes.Buffer)
	_ = xml.EscapeText(buf, []byte(s))
	el.Content = buf.String()
}

func (el *Element) Render() string {
	out := "<" + el.tag

	if el.X != math.MaxFloat64 {
		out += fmt.Sprintf(` x="%v"`, el.X)
	}
	if el.Y != math.MaxFloat64 {
		out += fmt.Sprintf(` y="%v"`, el.Y)
	}
	if el.Width != math.MaxFloat64 {
		out += fmt.Sprintf(` width="%v"`, el.Width)
	}
	if el.Height != math.MaxFloat64 {
		out += fmt.Sprintf(` height="%v"`, el.Height)
	}
	if len(el.D) > 0 {
		out += fmt.Sprintf(` d="%s"`, el.D)
	}
	if len(el.Transform) > 0 {
		out += fmt.Sprintf(` transform="%s"`, el.Transform)
	}
	if len(el.Fill) > 0 {
		out += fmt.Sprintf(` fill="%s"`, el.Fill)
	}
	if len(el.FillRule) > 0 {
		out += fmt.Sprintf(` fill-rule="%s"`, el.FillRule)
	}
	if len(el.Stroke) > 0 {
		out += fmt.Sprintf(` stroke="%s"`, el.Stroke)
	}
	if el.StrokeWidth != math.MaxFloat64 {
		out += fmt.Sprintf(` stroke-width="%v"`, el.StrokeWidth)
	}
	if len(el.ClassName) > 0 {
		out += fmt.Sprintf(` class="%s"`, el.ClassName)
	}
	if len(el.Style) > 0 {
		out += fmt.Sprintf(` style="%s"`, el.Style)
	}
	if len(el.Attributes) > 0 {
		out += fmt.Sprintf(` %s`, el.Attributes)
	}

	if len(el.Content) > 0 {
		return fmt.Sprintf("%s>%s</%s>", out, el.Content, el.tag)
	}
	return out + " />"
}
