package twine

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// Ease maps a start value, an end value and a normalized time t to the
// interpolated value. t is usually in [0, 1] but curves must accept values
// outside that range.
type Ease func(start, end, t float64) float64

// FromGween adapts a gween easing function to an Ease. The gween curve is
// evaluated over a unit duration.
func FromGween(fn ease.TweenFunc) Ease {
	return func(start, end, t float64) float64 {
		return float64(fn(float32(t), float32(start), float32(end-start), 1))
	}
}

// Linear interpolates without easing.
func Linear(start, end, t float64) float64 {
	return start + (end-start)*t
}

// Spring overshoots and oscillates into the end value. t is clamped to [0, 1].
func Spring(start, end, t float64) float64 {
	t = clamp01(t)
	t = (math.Sin(t*math.Pi*(0.2+2.5*t*t*t))*math.Pow(1-t, 2.2) + t) * (1 + 1.2*(1-t))
	return start + (end-start)*t
}

// Back, bounce and elastic curves come from gween.
var (
	BackIn       = FromGween(ease.InBack)
	BackOut      = FromGween(ease.OutBack)
	BackInOut    = FromGween(ease.InOutBack)
	BounceIn     = FromGween(ease.InBounce)
	BounceOut    = FromGween(ease.OutBounce)
	BounceInOut  = FromGween(ease.InOutBounce)
	ElasticIn    = FromGween(ease.InElastic)
	ElasticOut   = FromGween(ease.OutElastic)
	ElasticInOut = FromGween(ease.InOutElastic)

	QuadInOut  = FromGween(ease.InOutQuad)
	CubicOut   = FromGween(ease.OutCubic)
	CubicInOut = FromGween(ease.InOutCubic)
	SineInOut  = FromGween(ease.InOutSine)
)

var easeNames = map[string]Ease{
	"linear":       Linear,
	"spring":       Spring,
	"backIn":       BackIn,
	"backOut":      BackOut,
	"backInOut":    BackInOut,
	"bounceIn":     BounceIn,
	"bounceOut":    BounceOut,
	"bounceInOut":  BounceInOut,
	"elasticIn":    ElasticIn,
	"elasticOut":   ElasticOut,
	"elasticInOut": ElasticInOut,
	"quadInOut":    QuadInOut,
	"cubicOut":     CubicOut,
	"cubicInOut":   CubicInOut,
	"sineInOut":    SineInOut,
}

// EaseByName looks up an ease by its config name ("linear", "backOut",
// "bounceInOut", ...). The empty name resolves to Linear.
func EaseByName(name string) (Ease, error) {
	if name == "" {
		return Linear, nil
	}
	fn, ok := easeNames[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownEase, name)
	}
	return fn, nil
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
