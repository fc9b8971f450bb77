package scrollfx

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Kind selects how a descriptor maps scroll position to a property value.
type Kind uint8

const (
	kindInvalid Kind = iota
	KindScrub        // continuous, scroll-coupled value mapping
	KindReveal       // fire-once, time-based transition on crossing a boundary
)

func (k Kind) String() string {
	switch k {
	case KindScrub:
		return "scrub"
	case KindReveal:
		return "reveal"
	default:
		return "invalid"
	}
}

// Property is a bitmask of the visual properties a descriptor drives.
// Values can be combined with bitwise OR (e.g. PropertyOffset | PropertyOpacity).
type Property uint8

const (
	PropertyOffset  Property = 1 << iota // vertical visual offset (Node.OffsetY)
	PropertyOpacity                      // Node.Alpha

	propertyAll = PropertyOffset | PropertyOpacity
)

// Has reports whether every bit of q is set in p.
func (p Property) Has(q Property) bool {
	return p&q == q
}

// State is a descriptor's lifecycle state.
//
//	pending -> active -> reverted   (scrub)
//	pending -> fired  -> reverted   (reveal, or a zero-length scrub window)
type State uint8

const (
	StatePending  State = iota // registered, not yet evaluated against a scroll position
	StateActive                // scrub value is being written on every notification
	StateFired                 // boundary crossed; never re-evaluated
	StateReverted              // baseline restored and unsubscribed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateActive:
		return "active"
	case StateFired:
		return "fired"
	case StateReverted:
		return "reverted"
	default:
		return "unknown"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
