package twine

// Tween interpolates one or more numeric properties of a target over time.
// Tweens are created through a Scheduler and advanced by Scheduler.Tick.
//
// The callback slots hold a single function each; assigning a new one
// replaces the previous one.
type Tween struct {
	// ID uniquely identifies the tween in logs and events.
	ID string
	// Name is an optional label set with WithName.
	Name string

	// OnComplete fires once when the final repeat finishes.
	OnComplete func()
	// OnUpdate fires on every tick that writes interpolated values.
	OnUpdate func()
	// OnUpdateProgress fires when Progress changes.
	OnUpdateProgress func(progress float64)

	sched    *Scheduler
	sink     sink
	bindings []*binding
	ease     Ease

	duration    float64
	delay       float64
	repeat      int
	repeats     int
	repeatDelay float64
	yoyo        bool

	elapsed      float64
	delayElapsed float64
	repeatWait   float64
	lastProgress float64

	paused    bool
	live      bool
	completed bool
	destroyed bool
	inert     bool
}

// Duration returns the length of one pass in seconds.
func (t *Tween) Duration() float64 {
	return t.duration
}

// Progress returns the position within the current pass, clamped to [0, 1].
func (t *Tween) Progress() float64 {
	if t.duration <= 0 {
		if t.completed {
			return 1
		}
		return 0
	}
	return clamp01(t.elapsed / t.duration)
}

// IsCompleted reports whether the tween finished its final pass.
func (t *Tween) IsCompleted() bool {
	return t.completed
}

// IsActive reports whether the tween is registered with its scheduler.
func (t *Tween) IsActive() bool {
	return t.live
}

// IsPaused reports whether time is frozen for this tween.
func (t *Tween) IsPaused() bool {
	return t.paused
}

// Properties returns the names of the bound properties in insertion order.
// Properties whose end value equaled their current value at construction are
// not bound and do not appear.
func (t *Tween) Properties() []string {
	names := make([]string, len(t.bindings))
	for i, b := range t.bindings {
		names[i] = b.name
	}
	return names
}

// Pause freezes the tween's clock. Current values are still re-applied every
// tick, so Seek can scrub a paused tween.
func (t *Tween) Pause() {
	t.paused = true
}

// Resume unfreezes the tween's clock.
func (t *Tween) Resume() {
	t.paused = false
}

// Seek moves the tween to the given time within the current pass and writes
// the interpolated values immediately. It never triggers completion.
func (t *Tween) Seek(seconds float64) {
	if t.destroyed || t.duration <= 0 {
		return
	}
	if seconds < 0 {
		seconds = 0
	}
	if seconds > t.duration {
		seconds = t.duration
	}
	t.elapsed = seconds
	if err := t.writeEased(); err != nil {
		t.sched.drop(t, err)
	}
}

// Restart resets the tween to its start values and plays it from the
// beginning, re-registering it if it had already completed.
func (t *Tween) Restart() {
	if t.destroyed {
		return
	}
	if err := t.writeStart(); err != nil {
		t.sched.drop(t, err)
		return
	}
	t.elapsed = 0
	t.repeatWait = 0
	t.repeat = t.repeats
	t.paused = false
	t.completed = false
	if !t.live && t.duration > 0 {
		t.sched.Add(t)
	}
}

// Destroy removes the tween from its scheduler without firing OnComplete and
// releases its bindings. The tween must not be used afterwards.
func (t *Tween) Destroy() {
	if t.sched != nil {
		t.sched.Remove(t)
	}
	t.bindings = nil
	t.destroyed = true
}

// update advances the tween by dt. A returned error means the target can no
// longer be written and the tween must be dropped.
func (t *Tween) update(dt float64) error {
	if t.paused {
		return t.sink.write(t.bindings, func(b *binding) float64 { return b.current })
	}
	if t.repeatWait > 0 {
		t.repeatWait -= dt
		return nil
	}
	if t.delayElapsed < t.delay {
		t.delayElapsed += dt
		return nil
	}

	t.elapsed += dt
	done := t.elapsed >= t.duration

	var err error
	if done {
		err = t.writeEnd()
	} else {
		err = t.writeEased()
	}
	if err != nil {
		return err
	}

	if t.OnUpdate != nil {
		t.OnUpdate()
	}
	if t.OnUpdateProgress != nil {
		if p := t.Progress(); p != t.lastProgress {
			t.lastProgress = p
			t.OnUpdateProgress(p)
		}
	}

	if done && !t.destroyed {
		return t.complete()
	}
	return nil
}

// complete runs the end-of-pass transition. Values must already be at their
// end positions.
func (t *Tween) complete() error {
	if t.repeat == 0 {
		t.completed = true
		t.sched.Remove(t)
		t.sched.emit(EventCompleted, t)
		if t.OnComplete != nil {
			t.OnComplete()
		}
		return nil
	}
	if t.repeat > 0 {
		t.repeat--
	}
	if t.yoyo {
		for _, b := range t.bindings {
			b.start, b.end = b.end, b.start
		}
	} else if err := t.writeStart(); err != nil {
		return err
	}
	t.elapsed = 0
	t.repeatWait = t.repeatDelay
	t.sched.emit(EventRepeated, t)
	return nil
}

func (t *Tween) writeEased() error {
	p := t.elapsed / t.duration
	return t.sink.write(t.bindings, func(b *binding) float64 { return t.ease(b.start, b.end, p) })
}

func (t *Tween) writeStart() error {
	return t.sink.write(t.bindings, func(b *binding) float64 { return b.start })
}

func (t *Tween) writeEnd() error {
	return t.sink.write(t.bindings, func(b *binding) float64 { return b.end })
}
