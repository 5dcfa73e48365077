package twine

// To tweens the named fields of target to their To values over duration
// seconds. A duration <= 0 applies the end values at once and completes on the
// next tick.
func (s *Scheduler) To(target Target, duration float64, props []Prop, opts ...Option) *Tween {
	return s.newTween(sink{target: target}, duration, props, opts)
}

// ToPart tweens fields of the named part of c. Every write reads the part,
// modifies the copy and stores it back.
func (s *Scheduler) ToPart(c Container, part string, duration float64, props []Prop, opts ...Option) *Tween {
	return s.newTween(sink{container: c, part: part}, duration, props, opts)
}

// MoveTo moves c's local position to dest. Axes already at their destination
// are not animated.
func (s *Scheduler) MoveTo(c Container, duration float64, dest Vec3, opts ...Option) *Tween {
	return s.ToPart(c, PartPosition, duration, vec3Props(dest), opts...)
}

// MoveToWorld moves c to dest in world space.
func (s *Scheduler) MoveToWorld(c Container, duration float64, dest Vec3, opts ...Option) *Tween {
	return s.ToPart(c, PartWorldPosition, duration, vec3Props(dest), opts...)
}

// MoveBy moves c's local position by delta.
func (s *Scheduler) MoveBy(c Container, duration float64, delta Vec3, opts ...Option) *Tween {
	cur, _ := partVec3(c, PartPosition)
	return s.MoveTo(c, duration, cur.Add(delta), opts...)
}

// MoveFrom snaps c to from and moves it back to where it was.
func (s *Scheduler) MoveFrom(c Container, duration float64, from Vec3, opts ...Option) *Tween {
	return s.fromTo(c, PartPosition, duration, from, opts)
}

// ScaleTo scales c to scale.
func (s *Scheduler) ScaleTo(c Container, duration float64, scale Vec3, opts ...Option) *Tween {
	return s.ToPart(c, PartScale, duration, vec3Props(scale), opts...)
}

// ScaleToUniform scales every axis of c to scale.
func (s *Scheduler) ScaleToUniform(c Container, duration, scale float64, opts ...Option) *Tween {
	return s.ScaleTo(c, duration, Uniform(scale), opts...)
}

// ScaleFrom snaps c to a uniform scale and scales it back to its current scale.
func (s *Scheduler) ScaleFrom(c Container, duration, scale float64, opts ...Option) *Tween {
	return s.fromTo(c, PartScale, duration, Uniform(scale), opts)
}

// ScaleFromTo snaps c to a uniform from scale and scales it to to.
func (s *Scheduler) ScaleFromTo(c Container, duration, from, to float64, opts ...Option) *Tween {
	setPartVec3(c, PartScale, Uniform(from))
	return s.ScaleToUniform(c, duration, to, opts...)
}

// RotateTo rotates c to the given euler angles in degrees.
func (s *Scheduler) RotateTo(c Container, duration float64, angles Vec3, opts ...Option) *Tween {
	return s.ToPart(c, PartRotation, duration, vec3Props(angles), opts...)
}

// RotateFrom snaps c to angles and rotates it back to its current rotation.
func (s *Scheduler) RotateFrom(c Container, duration float64, angles Vec3, opts ...Option) *Tween {
	return s.fromTo(c, PartRotation, duration, angles, opts)
}

// ResizeTo resizes c to size.
func (s *Scheduler) ResizeTo(c Container, duration float64, size Vec2, opts ...Option) *Tween {
	return s.ToPart(c, PartSize, duration, []Prop{{"x", size.X}, {"y", size.Y}}, opts...)
}

// AlphaTo fades the alpha component of c's color to alpha.
func (s *Scheduler) AlphaTo(c Container, duration, alpha float64, opts ...Option) *Tween {
	return s.ToPart(c, PartColor, duration, []Prop{{"a", alpha}}, opts...)
}

// AlphaFromTo sets the alpha of c's color to from and fades it to to.
func (s *Scheduler) AlphaFromTo(c Container, duration, from, to float64, opts ...Option) *Tween {
	if canWrite(c) {
		if p, ok := c.Part(PartColor); ok && p.SetFloat("a", from) == nil {
			if err := c.SetPart(PartColor, p); err != nil && s.debug {
				s.logger.Printf("alpha from %T: %v", c, err)
			}
		}
	}
	return s.AlphaTo(c, duration, to, opts...)
}

// ColorTo tweens all four components of c's color to col.
func (s *Scheduler) ColorTo(c Container, duration float64, col Color, opts ...Option) *Tween {
	return s.ToPart(c, PartColor, duration, []Prop{{"r", col.R}, {"g", col.G}, {"b", col.B}, {"a", col.A}}, opts...)
}

// progressValue is the private target of DelayedCall and ValueRange. Each
// call gets its own, so these tweens never replace one another.
type progressValue struct {
	v float64
}

func (p *progressValue) Float(name string) (float64, bool) {
	if name != "value" {
		return 0, false
	}
	return p.v, true
}

func (p *progressValue) SetFloat(name string, v float64) error {
	if name != "value" {
		return unknownProperty(name)
	}
	p.v = v
	return nil
}

// DelayedCall runs fn after duration seconds of scheduler time.
func (s *Scheduler) DelayedCall(duration float64, fn func()) *Tween {
	t := s.To(&progressValue{}, duration, []Prop{{"value", 100}})
	t.OnComplete = fn
	return t
}

// StopDelayedCall destroys the delayed call in *handle, optionally running its
// callback first, and sets *handle to nil. No-op when *handle is nil.
func (s *Scheduler) StopDelayedCall(handle **Tween, runCallback bool) {
	if handle == nil || *handle == nil {
		return
	}
	t := *handle
	t.Destroy()
	if runCallback && t.OnComplete != nil {
		t.OnComplete()
	}
	*handle = nil
}

// ResetMode selects what Clear writes back to the target.
type ResetMode int

const (
	// ResetNone leaves the target where the tween left it.
	ResetNone ResetMode = iota
	// ResetStart restores the start values.
	ResetStart
	// ResetEnd jumps to the end values.
	ResetEnd
)

// Clear destroys the tween in *handle and sets *handle to nil. Depending on
// mode the target is first reset to the tween's start or end values.
func (s *Scheduler) Clear(handle **Tween, mode ResetMode) {
	if handle == nil || *handle == nil {
		return
	}
	t := *handle
	if !t.destroyed {
		var err error
		switch mode {
		case ResetStart:
			err = t.writeStart()
		case ResetEnd:
			err = t.writeEnd()
		}
		if err != nil && s.debug {
			s.logger.Printf("clear tween %s: %v", t.ID, err)
		}
	}
	t.Destroy()
	*handle = nil
}

// ValueRange drives fn from start to end over duration seconds. fn receives
// the interpolated value on every tick.
func (s *Scheduler) ValueRange(start, end, duration float64, fn func(v float64), opts ...Option) *Tween {
	pv := &progressValue{v: start}
	t := s.To(pv, duration, []Prop{{"value", end}}, opts...)
	if fn != nil {
		t.OnUpdate = func() { fn(pv.v) }
	}
	return t
}

// fromTo snaps part of c to from and tweens it back to its previous value.
func (s *Scheduler) fromTo(c Container, part string, duration float64, from Vec3, opts []Option) *Tween {
	cur, ok := partVec3(c, part)
	if ok {
		setPartVec3(c, part, from)
	}
	return s.ToPart(c, part, duration, vec3Props(cur), opts...)
}

func canWrite(c Container) bool {
	return !isNil(c) && !isDisposed(c)
}

// partVec3 reads an x/y/z part of c.
func partVec3(c Container, part string) (Vec3, bool) {
	if !canWrite(c) {
		return Vec3{}, false
	}
	p, ok := c.Part(part)
	if !ok {
		return Vec3{}, false
	}
	var v Vec3
	v.X, _ = p.Float("x")
	v.Y, _ = p.Float("y")
	v.Z, _ = p.Float("z")
	return v, true
}

// setPartVec3 writes v into an x/y/z part of c, ignoring fields the part lacks.
func setPartVec3(c Container, part string, v Vec3) {
	if !canWrite(c) {
		return
	}
	p, ok := c.Part(part)
	if !ok {
		return
	}
	_ = p.SetFloat("x", v.X)
	_ = p.SetFloat("y", v.Y)
	_ = p.SetFloat("z", v.Z)
	_ = c.SetPart(part, p)
}
