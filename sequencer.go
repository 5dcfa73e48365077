package twine

// StepKind selects what a sequencer step does.
type StepKind int

const (
	// StepWait waits for Duration seconds.
	StepWait StepKind = iota
	// StepMove moves Target to Position over Duration seconds.
	StepMove
	// StepCall calls Fn and finishes at once.
	StepCall
	// StepAnimate starts the tween returned by Animate and waits for it.
	StepAnimate
)

// String returns the step kind name.
func (k StepKind) String() string {
	switch k {
	case StepWait:
		return "wait"
	case StepMove:
		return "move"
	case StepCall:
		return "call"
	case StepAnimate:
		return "animate"
	}
	return "unknown"
}

// Step is one entry of a Sequencer. Linked steps start together with their
// parent; the sequence moves on once all of them have finished.
type Step struct {
	Kind     StepKind
	Duration float64
	Target   Container
	Position Vec3
	Fn       func()
	Animate  func(s *Scheduler) *Tween
	Options  []Option

	// Disabled steps finish immediately without doing anything.
	Disabled bool
	Linked   []Step
}

// Wait returns a step that waits d seconds.
func Wait(d float64) Step {
	return Step{Kind: StepWait, Duration: d}
}

// MoveStep returns a step that moves c to pos.
func MoveStep(c Container, d float64, pos Vec3, opts ...Option) Step {
	return Step{Kind: StepMove, Target: c, Duration: d, Position: pos, Options: opts}
}

// Call returns a step that calls fn.
func Call(fn func()) Step {
	return Step{Kind: StepCall, Fn: fn}
}

// Animate returns a step that starts the tween built by fn and waits for it to
// complete. A nil or inert tween finishes the step at once.
func Animate(fn func(s *Scheduler) *Tween) Step {
	return Step{Kind: StepAnimate, Animate: fn}
}

// With returns a copy of st that runs linked in parallel with it.
func (st Step) With(linked ...Step) Step {
	st.Linked = append(append([]Step(nil), st.Linked...), linked...)
	return st
}

// Off returns a disabled copy of st.
func (st Step) Off() Step {
	st.Disabled = true
	return st
}

// Sequencer runs steps one after another on a Scheduler.
//
// A step whose tween is replaced by another tween on the same target never
// finishes, and the sequence stalls until Stop.
type Sequencer struct {
	// OnFinish fires after the last step finishes.
	OnFinish func()

	sched   *Scheduler
	steps   []Step
	next    int
	current int
	playing bool
	gen     int
	pending int
	handles []*Tween
}

// NewSequencer creates a stopped sequencer over steps.
func NewSequencer(s *Scheduler, steps ...Step) *Sequencer {
	return &Sequencer{sched: s, steps: steps, current: -1}
}

// Add appends steps.
func (q *Sequencer) Add(steps ...Step) {
	q.steps = append(q.steps, steps...)
}

// Len returns the number of top-level steps.
func (q *Sequencer) Len() int {
	return len(q.steps)
}

// Playing reports whether the sequence is running.
func (q *Sequencer) Playing() bool {
	return q.playing
}

// Current returns the index of the running step, or -1 when stopped.
func (q *Sequencer) Current() int {
	if !q.playing {
		return -1
	}
	return q.current
}

// Play starts the sequence, or resumes it from the step Stop interrupted.
// No-op while playing.
func (q *Sequencer) Play() {
	if q.playing {
		return
	}
	q.playing = true
	q.advance()
}

// PlayFrom stops the sequence and plays it from step i.
func (q *Sequencer) PlayFrom(i int) {
	q.Stop()
	if i < 0 {
		i = 0
	}
	q.next = i
	q.Play()
}

// Stop halts the sequence and destroys the tweens of the running step. Values
// stay where the tweens left them.
func (q *Sequencer) Stop() {
	if !q.playing {
		return
	}
	q.playing = false
	q.gen++
	q.pending = 0
	if q.current >= 0 {
		q.next = q.current
	}
	q.current = -1
	for i, t := range q.handles {
		t.Destroy()
		q.handles[i] = nil
	}
	q.handles = q.handles[:0]
}

func (q *Sequencer) advance() {
	if !q.playing {
		return
	}
	if q.next >= len(q.steps) {
		q.playing = false
		q.next = 0
		q.current = -1
		if q.OnFinish != nil {
			q.OnFinish()
		}
		return
	}
	st := q.steps[q.next]
	q.current = q.next
	q.next++
	clear(q.handles)
	q.handles = q.handles[:0]

	gen := q.gen
	q.pending = 1 + len(st.Linked)
	q.run(st, gen)
	for _, l := range st.Linked {
		q.run(l, gen)
	}
}

func (q *Sequencer) finish(gen int) {
	if gen != q.gen || !q.playing {
		return
	}
	q.pending--
	if q.pending == 0 {
		q.advance()
	}
}

func (q *Sequencer) run(st Step, gen int) {
	if gen != q.gen {
		return
	}
	if st.Disabled {
		q.finish(gen)
		return
	}
	switch st.Kind {
	case StepWait:
		q.track(q.sched.DelayedCall(st.Duration, nil), gen)
	case StepMove:
		q.track(q.sched.MoveTo(st.Target, st.Duration, st.Position, st.Options...), gen)
	case StepCall:
		if st.Fn != nil {
			st.Fn()
		}
		q.finish(gen)
	case StepAnimate:
		var t *Tween
		if st.Animate != nil {
			t = st.Animate(q.sched)
		}
		q.track(t, gen)
	default:
		q.finish(gen)
	}
}

// track waits for t to complete. Tweens that will never complete finish the
// step at once.
func (q *Sequencer) track(t *Tween, gen int) {
	if t == nil || t.inert || t.destroyed || t.completed {
		q.finish(gen)
		return
	}
	q.handles = append(q.handles, t)
	prev := t.OnComplete
	t.OnComplete = func() {
		if prev != nil {
			prev()
		}
		q.finish(gen)
	}
}
