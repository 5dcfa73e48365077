package twine

// Options holds the optional timeline settings of a tween.
type Options struct {
	Name        string
	Ease        Ease
	Delay       float64
	Repeat      int
	RepeatDelay float64
	Yoyo        bool
}

// Option configures a tween at construction.
type Option func(*Options)

// WithEase sets the easing curve. A nil ease keeps the default.
func WithEase(e Ease) Option {
	return func(o *Options) {
		if e != nil {
			o.Ease = e
		}
	}
}

// WithDelay waits d seconds before interpolation begins.
func WithDelay(d float64) Option {
	return func(o *Options) { o.Delay = d }
}

// WithRepeat replays the tween n more times. A negative n repeats forever.
func WithRepeat(n int) Option {
	return func(o *Options) { o.Repeat = n }
}

// WithRepeatDelay pauses d seconds between repeats.
func WithRepeatDelay(d float64) Option {
	return func(o *Options) { o.RepeatDelay = d }
}

// WithYoyo reverses direction on each repeat instead of restarting.
func WithYoyo() Option {
	return func(o *Options) { o.Yoyo = true }
}

// WithName labels the tween in logs and events.
func WithName(name string) Option {
	return func(o *Options) { o.Name = name }
}

// WithOptions copies every field of opts, replacing earlier options.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		e := o.Ease
		*o = opts
		if o.Ease == nil {
			o.Ease = e
		}
	}
}

func buildOptions(def Ease, opts []Option) Options {
	o := Options{Ease: def}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Ease == nil {
		o.Ease = Linear
	}
	return o
}
