package scrollfx

import (
	"math"

	"github.com/tanema/gween/ease"
)

const (
	// DefaultStart and DefaultEnd are the markers used when a descriptor
	// leaves Start or End empty.
	DefaultStart = "top bottom"
	DefaultEnd   = "bottom top"

	// DefaultDuration is the reveal duration in seconds when Duration is zero.
	DefaultDuration float32 = 0.5
)

// Values holds one value per animatable property. Only the fields selected by
// a descriptor's Property are read or written.
type Values struct {
	Offset  float64 // Node.OffsetY
	Opacity float64 // Node.Alpha
}

func lerpValues(a, b Values, t float64) Values {
	return Values{
		Offset:  a.Offset + (b.Offset-a.Offset)*t,
		Opacity: a.Opacity + (b.Opacity-a.Opacity)*t,
	}
}

// Descriptor declares one scroll-driven effect on one node.
//
// A scrub maps progress through the window [Start, End] linearly onto
// From..To on every notification. A reveal waits until the scroll position
// passes Start, then tweens From..To over Duration with Ease, once.
//
// For reveals a nil From or To means the value the target had at registration
// (its baseline), so a From-only reveal animates into the element's resting
// state. A reveal with From set shows From immediately on registration.
type Descriptor struct {
	// Name labels the descriptor in logs.
	Name string

	// Target is the node whose properties are driven. Required.
	Target *Ref
	// Trigger is the node whose layout box the markers measure.
	// Defaults to Target.
	Trigger *Ref

	Kind     Kind
	Property Property

	From *Values
	To   *Values

	Start string
	End   string

	// Reveal only.
	Duration float32
	Ease     string
}

// compiled is a descriptor after validation, with defaults applied.
type compiled struct {
	start    Marker
	end      Marker
	point    bool // scrub whose Start and End name the same point
	duration float32
	easeFn   ease.TweenFunc
}

// Validate reports whether d can be registered. It returns an
// *InvalidDescriptorError for malformed descriptors and ErrMissingTarget when
// the Target or Trigger Ref does not resolve.
func Validate(d Descriptor) error {
	if _, err := d.compile(); err != nil {
		return err
	}
	if _, ok := d.Target.Resolve(); !ok {
		return ErrMissingTarget
	}
	if d.Trigger != nil {
		if _, ok := d.Trigger.Resolve(); !ok {
			return ErrMissingTarget
		}
	}
	return nil
}

func (d Descriptor) compile() (compiled, error) {
	var c compiled
	if d.Kind != KindScrub && d.Kind != KindReveal {
		return c, invalid("Kind", "unrecognized kind "+d.Kind.String())
	}
	if d.Property == 0 || d.Property&^propertyAll != 0 {
		return c, invalid("Property", "must select offset, opacity, or both")
	}

	start := d.Start
	if start == "" {
		start = DefaultStart
	}
	m, err := ParseMarker(start)
	if err != nil {
		return c, &InvalidDescriptorError{Field: "Start", Reason: "bad marker", Err: err}
	}
	c.start = m

	switch d.Kind {
	case KindScrub:
		if d.From == nil || d.To == nil {
			return c, invalid("From/To", "scrub needs both endpoints")
		}
		end := d.End
		if end == "" {
			end = DefaultEnd
		}
		m, err := ParseMarker(end)
		if err != nil {
			return c, &InvalidDescriptorError{Field: "End", Reason: "bad marker", Err: err}
		}
		c.end = m
		c.point = c.start == c.end
	case KindReveal:
		if d.From == nil && d.To == nil {
			return c, invalid("From/To", "reveal needs at least one endpoint")
		}
		if d.Duration < 0 || !isFinite(float64(d.Duration)) {
			return c, invalid("Duration", "must be a finite, non-negative number")
		}
		c.duration = d.Duration
		if c.duration == 0 {
			c.duration = DefaultDuration
		}
		name := d.Ease
		if name == "" {
			name = DefaultEase
		}
		fn, ok := EaseByName(name)
		if !ok {
			return c, invalid("Ease", "unknown ease "+d.Ease)
		}
		c.easeFn = fn
	}
	return c, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
