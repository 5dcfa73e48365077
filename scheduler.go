package twine

import (
	"fmt"
	"io"
	"log"
	"os"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

const defaultTweenCap = 64

// Scheduler owns the live tweens and advances them once per frame. At most one
// live tween exists per target (or per container part); registering a newer
// one replaces the older one in place.
//
// A Scheduler is not safe for concurrent use. Create tweens, call Tick and
// control tweens from the goroutine that runs the game loop.
type Scheduler struct {
	tweens   []*Tween
	snapshot []*Tween
	deferred []*Tween
	pending  []*Tween
	active   int

	timeScale   float64
	maxDelta    float64
	defaultEase Ease
	presets     Presets

	logger *log.Logger
	debug  bool
	sink   EventSink
}

// NewScheduler creates an empty scheduler with a time scale of 1, linear
// default easing and a stderr logger.
func NewScheduler() *Scheduler {
	return &Scheduler{
		tweens:      make([]*Tween, 0, defaultTweenCap),
		snapshot:    make([]*Tween, 0, defaultTweenCap),
		timeScale:   1,
		defaultEase: Linear,
		logger:      log.New(os.Stderr, "[twine] ", 0),
	}
}

// NewSchedulerFromConfig creates a scheduler configured by cfg. When
// cfg.PresetsFile is set the presets are loaded and made available through
// Preset.
func NewSchedulerFromConfig(cfg Config) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := NewScheduler()
	s.timeScale = cfg.TimeScale
	s.maxDelta = cfg.MaxDelta
	s.debug = cfg.Debug
	s.defaultEase, _ = EaseByName(cfg.DefaultEase)
	if cfg.PresetsFile != "" {
		presets, err := LoadPresets(cfg.PresetsFile)
		if err != nil {
			return nil, err
		}
		s.presets = presets
	}
	return s, nil
}

// SetLogger replaces the diagnostics logger. A nil logger discards output.
func (s *Scheduler) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	s.logger = l
}

// SetDebugMode enables or disables debug mode. When enabled, dropped and
// replaced tweens and per-tick stats are logged.
func (s *Scheduler) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// SetEventSink sets the optional receiver of tween lifecycle events.
func (s *Scheduler) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetTimeScale multiplies every tick's delta by scale.
func (s *Scheduler) SetTimeScale(scale float64) {
	if scale < 0 {
		scale = 0
	}
	s.timeScale = scale
}

// SetPresets replaces the named presets resolved by Preset.
func (s *Scheduler) SetPresets(p Presets) {
	s.presets = p
}

// Preset returns an Option applying the named preset. Unknown names are
// logged and yield an Option that changes nothing.
func (s *Scheduler) Preset(name string) Option {
	opt, err := s.presets.Option(name)
	if err != nil {
		s.logger.Printf("preset: %v", err)
		return func(*Options) {}
	}
	return opt
}

// Len returns the number of live tweens right now.
func (s *Scheduler) Len() int {
	return len(s.tweens)
}

// ActiveCount returns the number of live tweens at the end of the last Tick.
func (s *Scheduler) ActiveCount() int {
	return s.active
}

// Add registers t. If a live tween writes to the same target or container
// part, t takes its slot and the old tween is discarded without firing its
// OnComplete.
func (s *Scheduler) Add(t *Tween) {
	if t == nil || t.live || t.destroyed || t.inert {
		return
	}
	key := t.sink.key()
	s.cancelDeferred(key)
	for i, other := range s.tweens {
		if sameKey(other.sink.key(), key) {
			other.live = false
			s.tweens[i] = t
			t.live = true
			if s.debug {
				s.logger.Printf("tween %s replaced by %s", other.ID, t.ID)
			}
			s.emit(EventReplaced, other)
			return
		}
	}
	s.tweens = append(s.tweens, t)
	t.live = true
}

// Remove unregisters t. No-op when t is not live.
func (s *Scheduler) Remove(t *Tween) {
	if t == nil || !t.live {
		return
	}
	for i, other := range s.tweens {
		if other == t {
			copy(s.tweens[i:], s.tweens[i+1:])
			s.tweens[len(s.tweens)-1] = nil
			s.tweens = s.tweens[:len(s.tweens)-1]
			break
		}
	}
	t.live = false
}

// StopAll destroys every live and pending tween without firing callbacks.
func (s *Scheduler) StopAll() {
	for _, t := range s.tweens {
		t.live = false
		t.bindings = nil
		t.destroyed = true
	}
	for _, t := range s.deferred {
		t.destroyed = true
	}
	clear(s.tweens)
	s.tweens = s.tweens[:0]
	clear(s.deferred)
	s.deferred = s.deferred[:0]
}

// Update advances all tweens by one ebiten tick. It has the signature of
// ebiten.Game.Update so it can be called straight from a game's Update.
func (s *Scheduler) Update() error {
	s.Tick(1.0 / float64(ebiten.TPS()))
	return nil
}

// Tick advances every live tween by dt seconds. Tweens are visited in reverse
// insertion order. A tween whose target can no longer be written is dropped;
// nothing a tween does can make Tick panic.
func (s *Scheduler) Tick(dt float64) {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if dt < 0 {
		dt = 0
	}
	dt *= s.timeScale
	if s.maxDelta > 0 && dt > s.maxDelta {
		dt = s.maxDelta
	}

	stats.deferred = s.flushDeferred()

	s.snapshot = append(s.snapshot[:0], s.tweens...)
	for i := len(s.snapshot) - 1; i >= 0; i-- {
		t := s.snapshot[i]
		s.snapshot[i] = nil
		if !t.live {
			continue
		}
		if err := s.step(t, dt, false); err != nil {
			s.drop(t, err)
			stats.dropped++
		}
	}
	s.snapshot = s.snapshot[:0]
	s.active = len(s.tweens)

	if s.debug {
		stats.tickTime = time.Since(t0)
		stats.live = s.active
		s.debugLog(stats)
	}
}

// newTween builds and registers a tween writing into sk.
func (s *Scheduler) newTween(sk sink, duration float64, props []Prop, opts []Option) *Tween {
	o := buildOptions(s.defaultEase, opts)
	t := &Tween{
		ID:          uuid.NewString(),
		Name:        o.Name,
		sched:       s,
		sink:        sk,
		ease:        o.Ease,
		duration:    duration,
		delay:       o.Delay,
		repeat:      o.Repeat,
		repeats:     o.Repeat,
		repeatDelay: o.RepeatDelay,
		yoyo:        o.Yoyo,
	}

	owner := sk.owner()
	if isNil(owner) {
		s.logger.Printf("cannot tween a nil target")
		return t.makeInert()
	}
	src, err := sk.open()
	if err != nil {
		s.logger.Printf("cannot tween %T: %v", owner, err)
		return t.makeInert()
	}
	for _, p := range props {
		v, ok := src.Float(p.Name)
		if !ok {
			s.logger.Printf("no property %q on %T", p.Name, src)
			continue
		}
		if v == p.To {
			continue
		}
		t.bindings = append(t.bindings, &binding{name: p.Name, start: v, end: p.To, current: v})
	}

	if duration <= 0 {
		// Applied now, completed on the next tick so callbacks assigned after
		// construction still fire.
		t.repeat = 0
		if err := t.writeEnd(); err != nil {
			s.logger.Printf("cannot tween %T: %v", owner, err)
			return t.makeInert()
		}
		s.evict(sk.key())
		s.cancelDeferred(sk.key())
		s.deferred = append(s.deferred, t)
		return t
	}

	s.Add(t)
	return t
}

func (t *Tween) makeInert() *Tween {
	t.inert = true
	t.destroyed = true
	t.bindings = nil
	return t
}

// evict removes the live tween with the given key, if any.
func (s *Scheduler) evict(key tweenKey) {
	for _, other := range s.tweens {
		if sameKey(other.sink.key(), key) {
			s.Remove(other)
			s.emit(EventReplaced, other)
			return
		}
	}
}

// cancelDeferred destroys any zero-duration tween with the given key that is
// still waiting for its completion tick.
func (s *Scheduler) cancelDeferred(key tweenKey) {
	for _, queue := range [2][]*Tween{s.deferred, s.pending} {
		for _, other := range queue {
			if other == nil || other.destroyed || !sameKey(other.sink.key(), key) {
				continue
			}
			other.bindings = nil
			other.destroyed = true
			if s.debug {
				s.logger.Printf("tween %s replaced before completing", other.ID)
			}
			s.emit(EventReplaced, other)
		}
	}
}

// flushDeferred completes zero-duration tweens created since the last tick.
func (s *Scheduler) flushDeferred() int {
	if len(s.deferred) == 0 {
		return 0
	}
	s.pending, s.deferred = s.deferred, s.pending[:0]
	n := len(s.pending)
	for i, t := range s.pending {
		s.pending[i] = nil
		if t.destroyed {
			continue
		}
		if err := s.step(t, 0, true); err != nil {
			s.drop(t, err)
		}
	}
	s.pending = s.pending[:0]
	return n
}

// step advances t by dt, or completes it when finish is set, converting a
// panic into an error.
func (s *Scheduler) step(t *Tween, dt float64, finish bool) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Printf("tween %s panicked: %v", t.ID, r)
			err = fmt.Errorf("twine: tween %s panicked: %v", t.ID, r)
		}
	}()
	if finish {
		return t.complete()
	}
	return t.update(dt)
}

// drop removes a tween whose target failed. No callback fires.
func (s *Scheduler) drop(t *Tween, err error) {
	s.Remove(t)
	if s.debug {
		s.logger.Printf("dropped tween %s: %v", t.ID, err)
	}
	s.emit(EventDropped, t)
}

func (s *Scheduler) emit(typ EventType, t *Tween) {
	if s.sink == nil {
		return
	}
	s.sink.EmitTweenEvent(TweenEvent{Type: typ, TweenID: t.ID, Name: t.Name})
}

// sameKey compares tween keys by identity. Values of non-comparable types
// never match.
func sameKey(a, b tweenKey) bool {
	if a.part != b.part {
		return false
	}
	ta := reflect.TypeOf(a.obj)
	if ta == nil || ta != reflect.TypeOf(b.obj) || !ta.Comparable() {
		return false
	}
	return a.obj == b.obj
}

// PresetDuration returns the duration of the named preset, or fallback.
func (s *Scheduler) PresetDuration(name string, fallback float64) float64 {
	return s.presets.Duration(name, fallback)
}
