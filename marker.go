package scrollfx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Marker is a parsed scroll boundary such as "top 85%": the scroll offset at
// which a point on the trigger element meets a point on the viewport.
//
// Each side is an edge: "top", "center", "bottom", a percentage of the
// element (or viewport) height ("85%"), or pixels ("120px" or "120"), and may
// carry a relative pixel adjustment ("top+=40", "bottom-=10%").
// A lone bare number is an absolute scroll offset.
type Marker struct {
	element  edge
	viewport edge
	absolute bool
	offset   float64
}

// edge is a point along a box's height: frac*height + px.
type edge struct {
	frac float64
	px   float64
}

func (e edge) at(size float64) float64 {
	return e.frac*size + e.px
}

// ParseMarker parses a marker string.
func ParseMarker(s string) (Marker, error) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		v, err := parseFinite(fields[0])
		if err != nil {
			return Marker{}, fmt.Errorf("marker %q: want \"<element> <viewport>\" or an absolute offset", s)
		}
		return Marker{absolute: true, offset: v}, nil
	case 2:
		el, err := parseEdge(fields[0])
		if err != nil {
			return Marker{}, fmt.Errorf("marker %q: element edge: %w", s, err)
		}
		vp, err := parseEdge(fields[1])
		if err != nil {
			return Marker{}, fmt.Errorf("marker %q: viewport edge: %w", s, err)
		}
		return Marker{element: el, viewport: vp}, nil
	default:
		return Marker{}, fmt.Errorf("marker %q: want \"<element> <viewport>\" or an absolute offset", s)
	}
}

// MustParseMarker is like ParseMarker but panics on error.
func MustParseMarker(s string) Marker {
	m, err := ParseMarker(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Resolve returns the scroll offset at which the marker is met for an element
// laid out at elem inside a viewport of height viewportH.
func (m Marker) Resolve(elem Rect, viewportH float64) float64 {
	if m.absolute {
		return m.offset
	}
	return elem.Y + m.element.at(elem.Height) - m.viewport.at(viewportH)
}

func parseEdge(tok string) (edge, error) {
	base, rel := tok, ""
	if i := strings.Index(tok, "+="); i >= 0 {
		base, rel = tok[:i], tok[i+2:]
	} else if i := strings.Index(tok, "-="); i >= 0 {
		base, rel = tok[:i], "-"+tok[i+2:]
	}
	e, err := parseEdgeValue(base)
	if err != nil {
		return edge{}, err
	}
	if rel != "" {
		r, err := parseEdgeValue(rel)
		if err != nil {
			return edge{}, err
		}
		e.frac += r.frac
		e.px += r.px
	}
	return e, nil
}

func parseEdgeValue(s string) (edge, error) {
	switch s {
	case "top":
		return edge{}, nil
	case "center":
		return edge{frac: 0.5}, nil
	case "bottom":
		return edge{frac: 1}, nil
	case "":
		return edge{}, fmt.Errorf("empty edge")
	}
	if strings.HasSuffix(s, "%") {
		v, err := parseFinite(strings.TrimSuffix(s, "%"))
		if err != nil {
			return edge{}, fmt.Errorf("bad percentage %q", s)
		}
		return edge{frac: v / 100}, nil
	}
	v, err := parseFinite(strings.TrimSuffix(s, "px"))
	if err != nil {
		return edge{}, fmt.Errorf("unknown edge %q", s)
	}
	return edge{px: v}, nil
}

// parseFinite parses a float and rejects NaN and infinities, which
// strconv accepts but no scroll position can reach.
func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}
