package svg

import (
	"fmt"
	"math"
	"strconv"

	"oss.terrastruct.com/prstgeom/lib/geo"
)

// Command is one absolute path command with its numeric arguments.
type Command struct {
	Op   byte
	Args []float64
}

// arity of every command of the path mini-language.
var arity = map[byte]int{
	'M': 2,
	'L': 2,
	'C': 6,
	'Q': 4,
	'S': 4,
	'A': 7,
	'Z': 0,
}

// End returns the end point of the command, or nil for Z.
func (c Command) End() *geo.Point {
	if c.Op == 'Z' || len(c.Args) < 2 {
		return nil
	}
	return geo.NewPoint(c.Args[len(c.Args)-2], c.Args[len(c.Args)-1])
}

func (c Command) String() string {
	s := string(c.Op)
	for _, a := range c.Args {
		s += " " + strconv.FormatFloat(a, 'f', -1, 64)
	}
	return s
}

// Parse reads path data made of absolute M, L, C, Q, S, A and Z commands.
// Commands may repeat their argument groups implicitly; extra groups after
// M are treated as L.
func Parse(d string) ([]Command, error) {
	toks, err := tokenize(d)
	if err != nil {
		return nil, err
	}

	var cmds []Command
	i := 0
	for i < len(toks) {
		t := toks[i]
		if !t.isOp {
			return nil, fmt.Errorf("unexpected number %q at offset %d", t.text, t.offset)
		}
		op := t.text[0]
		n, ok := arity[op]
		if !ok {
			return nil, fmt.Errorf("unsupported command %q at offset %d", t.text, t.offset)
		}
		if len(cmds) == 0 && op != 'M' {
			return nil, fmt.Errorf("path must start with M, found %q", t.text)
		}
		i++
		if n == 0 {
			cmds = append(cmds, Command{Op: op})
			continue
		}
		groups := 0
		for i < len(toks) && !toks[i].isOp {
			if i+n > len(toks) {
				return nil, fmt.Errorf("command %c at offset %d: expected %d arguments", op, t.offset, n)
			}
			args := make([]float64, n)
			for j := 0; j < n; j++ {
				a := toks[i+j]
				if a.isOp {
					return nil, fmt.Errorf("command %c at offset %d: expected %d arguments", op, t.offset, n)
				}
				args[j] = a.value
			}
			if op == 'A' && (!isFlag(args[3]) || !isFlag(args[4])) {
				return nil, fmt.Errorf("arc at offset %d: flags must be 0 or 1", t.offset)
			}
			cop := op
			if op == 'M' && groups > 0 {
				cop = 'L'
			}
			cmds = append(cmds, Command{Op: cop, Args: args})
			groups++
			i += n
		}
		if groups == 0 {
			return nil, fmt.Errorf("command %c at offset %d: expected %d arguments", op, t.offset, n)
		}
	}
	if len(cmds) == 0 {
		return nil, fmt.Errorf("empty path")
	}
	return cmds, nil
}

func isFlag(f float64) bool {
	return f == 0 || f == 1
}

type token struct {
	text   string
	offset int
	isOp   bool
	value  float64
}

func tokenize(d string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(d) {
		ch := d[i]
		switch {
		case ch == ' ' || ch == ',' || ch == '\t' || ch == '\n' || ch == '\r':
			i++
		case (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z'):
			if ch == 'e' || ch == 'E' {
				return nil, fmt.Errorf("unexpected %q at offset %d", ch, i)
			}
			toks = append(toks, token{text: string(ch), offset: i, isOp: true})
			i++
		default:
			j := i
			if d[j] == '-' || d[j] == '+' {
				j++
			}
			for j < len(d) && (isDigit(d[j]) || d[j] == '.' || d[j] == 'e' || d[j] == 'E' ||
				((d[j] == '-' || d[j] == '+') && (d[j-1] == 'e' || d[j-1] == 'E'))) {
				j++
			}
			if j == i {
				return nil, fmt.Errorf("unexpected %q at offset %d", ch, i)
			}
			v, err := strconv.ParseFloat(d[i:j], 64)
			if err != nil {
				return nil, fmt.Errorf("bad number %q at offset %d: %w", d[i:j], i, err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("non-finite number %q at offset %d", d[i:j], i)
			}
			toks = append(toks, token{text: d[i:j], offset: i, value: v})
			i = j
		}
	}
	return toks, nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Figure is one subpath: an M followed by drawing commands.
type Figure struct {
	Start    *geo.Point
	End      *geo.Point
	Closed   bool
	Commands []Command
}

// Figures splits commands into subpaths.
func Figures(cmds []Command) []Figure {
	var figs []Figure
	for _, c := range cmds {
		if c.Op == 'M' {
			figs = append(figs, Figure{Start: c.End(), End: c.End(), Commands: []Command{c}})
			continue
		}
		if len(figs) == 0 {
			continue
		}
		f := &figs[len(figs)-1]
		f.Commands = append(f.Commands, c)
		if c.Op == 'Z' {
			f.Closed = true
			f.End = f.Start.Copy()
		} else {
			f.End = c.End()
		}
	}
	return figs
}

// Bounds returns a box holding every end and control point of cmds, with
// arcs expanded to cubics first.
func Bounds(cmds []Command) *geo.Box {
	var b *geo.Box
	var cur *geo.Point
	for _, c := range cmds {
		switch c.Op {
		case 'Z':
			continue
		case 'A':
			if cur != nil {
				for _, seg := range ArcToCubics(cur, c.Args[0], c.Args[1], c.Args[2], c.Args[3] == 1, c.Args[4] == 1, c.End()) {
					for _, p := range seg {
						b = b.Grow(p)
					}
				}
			}
		default:
			for i := 0; i+1 < len(c.Args); i += 2 {
				b = b.Grow(geo.NewPoint(c.Args[i], c.Args[i+1]))
			}
		}
		cur = c.End()
	}
	return b
}
