package twine

import (
	"fmt"
	"reflect"
)

// Target is anything with named numeric fields a tween can read and write.
//
// Targets are compared by identity to resolve conflicting tweens, so
// implementations should be pointer types.
type Target interface {
	Float(name string) (float64, bool)
	SetFloat(name string, v float64) error
}

// Container is an object whose animatable values live inside nested value
// objects (a position vector, a color). Part returns a copy of the named value;
// SetPart stores a modified copy back.
type Container interface {
	Part(name string) (Target, bool)
	SetPart(name string, part Target) error
}

// Disposable targets report when they can no longer be animated.
type Disposable interface {
	IsDisposed() bool
}

func unknownProperty(name string) error {
	return fmt.Errorf("%w %q", ErrUnknownProperty, name)
}

func unknownPart(name string) error {
	return fmt.Errorf("%w %q", ErrUnknownPart, name)
}

// isNil reports whether v is nil or a typed nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func isDisposed(v any) bool {
	d, ok := v.(Disposable)
	return ok && d.IsDisposed()
}

// binding is one interpolated property.
type binding struct {
	name    string
	start   float64
	end     float64
	current float64
}

// tweenKey identifies what a tween writes to. Two live tweens with equal keys
// conflict and the newer one wins.
type tweenKey struct {
	obj  any
	part string
}

// sink resolves where a tween's bindings are written. For container parts each
// write is a read-modify-write of a fresh copy of the part.
type sink struct {
	target    Target
	container Container
	part      string
}

func (s sink) key() tweenKey {
	if s.container != nil {
		return tweenKey{obj: s.container, part: s.part}
	}
	return tweenKey{obj: s.target}
}

func (s sink) owner() any {
	if s.container != nil {
		return s.container
	}
	return s.target
}

// open returns the Target the bindings are written into.
func (s sink) open() (Target, error) {
	if s.container == nil {
		if isDisposed(s.target) {
			return nil, ErrDisposed
		}
		return s.target, nil
	}
	if isDisposed(s.container) {
		return nil, ErrDisposed
	}
	t, ok := s.container.Part(s.part)
	if !ok {
		return nil, unknownPart(s.part)
	}
	return t, nil
}

// close stores the part back into its container. No-op for plain targets.
func (s sink) close(t Target) error {
	if s.container == nil {
		return nil
	}
	return s.container.SetPart(s.part, t)
}

// write applies fn to every binding and stores the results.
func (s sink) write(bindings []*binding, fn func(b *binding) float64) error {
	t, err := s.open()
	if err != nil {
		return err
	}
	for _, b := range bindings {
		b.current = fn(b)
		if err := t.SetFloat(b.name, b.current); err != nil {
			return err
		}
	}
	return s.close(t)
}
