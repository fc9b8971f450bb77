package scrollfx

import (
	"strings"

	"github.com/tanema/gween/ease"
)

// DefaultEase is used by reveals that leave Ease empty.
const DefaultEase = "power1.out"

// easeFamilies maps a curve family to its in, out and in-out variants.
// The power names follow the common convention: power1 = quad, power2 = cubic,
// power3 = quart, power4 = quint.
var easeFamilies = map[string][3]ease.TweenFunc{
	"power1":  {ease.InQuad, ease.OutQuad, ease.InOutQuad},
	"quad":    {ease.InQuad, ease.OutQuad, ease.InOutQuad},
	"power2":  {ease.InCubic, ease.OutCubic, ease.InOutCubic},
	"cubic":   {ease.InCubic, ease.OutCubic, ease.InOutCubic},
	"power3":  {ease.InQuart, ease.OutQuart, ease.InOutQuart},
	"quart":   {ease.InQuart, ease.OutQuart, ease.InOutQuart},
	"power4":  {ease.InQuint, ease.OutQuint, ease.InOutQuint},
	"quint":   {ease.InQuint, ease.OutQuint, ease.InOutQuint},
	"sine":    {ease.InSine, ease.OutSine, ease.InOutSine},
	"expo":    {ease.InExpo, ease.OutExpo, ease.InOutExpo},
	"circ":    {ease.InCirc, ease.OutCirc, ease.InOutCirc},
	"back":    {ease.InBack, ease.OutBack, ease.InOutBack},
	"elastic": {ease.InElastic, ease.OutElastic, ease.InOutElastic},
	"bounce":  {ease.InBounce, ease.OutBounce, ease.InOutBounce},
}

// EaseByName resolves an easing name such as "power3.out", "sine.inOut" or
// "none" to a gween easing function. A family without a variant ("power2")
// means its out variant. Names are case-insensitive.
func EaseByName(name string) (ease.TweenFunc, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "none", "linear", "power0", "power0.in", "power0.out", "power0.inout":
		return ease.Linear, true
	}
	family, variant, _ := strings.Cut(name, ".")
	fns, ok := easeFamilies[family]
	if !ok {
		return nil, false
	}
	switch variant {
	case "in":
		return fns[0], true
	case "", "out":
		return fns[1], true
	case "inout":
		return fns[2], true
	default:
		return nil, false
	}
}
