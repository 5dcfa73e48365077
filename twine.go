package twine

import "errors"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default node tint.
var ColorWhite = Color{1, 1, 1, 1}

// Float implements Target. Field names are "r", "g", "b" and "a".
func (c *Color) Float(name string) (float64, bool) {
	switch name {
	case "r":
		return c.R, true
	case "g":
		return c.G, true
	case "b":
		return c.B, true
	case "a":
		return c.A, true
	}
	return 0, false
}

// SetFloat implements Target.
func (c *Color) SetFloat(name string, v float64) error {
	switch name {
	case "r":
		c.R = v
	case "g":
		c.G = v
	case "b":
		c.B = v
	case "a":
		c.A = v
	default:
		return unknownProperty(name)
	}
	return nil
}

// Vec2 is a 2D vector used for sizes.
type Vec2 struct {
	X, Y float64
}

// Float implements Target. Field names are "x" and "y".
func (v *Vec2) Float(name string) (float64, bool) {
	switch name {
	case "x":
		return v.X, true
	case "y":
		return v.Y, true
	}
	return 0, false
}

// SetFloat implements Target.
func (v *Vec2) SetFloat(name string, f float64) error {
	switch name {
	case "x":
		v.X = f
	case "y":
		v.Y = f
	default:
		return unknownProperty(name)
	}
	return nil
}

// Vec3 is a 3D vector used for positions, scales and euler rotations.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Float implements Target. Field names are "x", "y" and "z".
func (v *Vec3) Float(name string) (float64, bool) {
	switch name {
	case "x":
		return v.X, true
	case "y":
		return v.Y, true
	case "z":
		return v.Z, true
	}
	return 0, false
}

// SetFloat implements Target.
func (v *Vec3) SetFloat(name string, f float64) error {
	switch name {
	case "x":
		v.X = f
	case "y":
		v.Y = f
	case "z":
		v.Z = f
	default:
		return unknownProperty(name)
	}
	return nil
}

// Uniform returns a Vec3 with all components set to s.
func Uniform(s float64) Vec3 {
	return Vec3{s, s, s}
}

// Part names understood by the typed constructors.
const (
	PartPosition      = "position"
	PartWorldPosition = "worldPosition"
	PartScale         = "scale"
	PartRotation      = "rotation"
	PartSize          = "size"
	PartColor         = "color"
)

// Prop is one property the tween should drive to the value To.
type Prop struct {
	Name string
	To   float64
}

// P is shorthand for Prop{name, to}.
func P(name string, to float64) Prop {
	return Prop{Name: name, To: to}
}

// vec3Props expands v into x/y/z props.
func vec3Props(v Vec3) []Prop {
	return []Prop{{"x", v.X}, {"y", v.Y}, {"z", v.Z}}
}

var (
	// ErrDisposed is returned when writing to a disposed target.
	ErrDisposed = errors.New("twine: target disposed")
	// ErrUnknownProperty is returned when a target has no field with the given name.
	ErrUnknownProperty = errors.New("twine: unknown property")
	// ErrUnknownPart is returned when a container has no part with the given name.
	ErrUnknownPart = errors.New("twine: unknown part")
	// ErrUnknownEase is returned for ease names EaseByName does not know.
	ErrUnknownEase = errors.New("twine: unknown ease")
	// ErrInvalidConfig is returned by Config and preset validation.
	ErrInvalidConfig = errors.New("twine: invalid config")
)
