package prstgeom

import "oss.terrastruct.com/prstgeom/lib/svg"

// PathResult is the geometry of one preset shape.
//
// Path may hold several figures; overlapping figures combine under the
// non-zero winding rule, so a figure drawn against the outline's direction
// cuts a hole. NoFill marks open geometry meant to be stroked only.
// StrokePath, when not empty, carries interior detail lines that must be
// stroked and never filled.
type PathResult struct {
	Path       string `json:"path"`
	NoFill     bool   `json:"noFill"`
	StrokePath string `json:"strokePath,omitempty"`
}

// HasStroke reports whether r carries a secondary stroke-only path.
func (r PathResult) HasStroke() bool {
	return r.StrokePath != ""
}

func filled(pc *svg.SvgPathContext) PathResult {
	return PathResult{Path: pc.PathData()}
}

func open(pc *svg.SvgPathContext) PathResult {
	return PathResult{Path: pc.PathData(), NoFill: true}
}

func (r PathResult) withStroke(pc *svg.SvgPathContext) PathResult {
	if pc != nil {
		r.StrokePath = pc.PathData()
	}
	return r
}
