package twine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Preset is a reusable set of tween options, usually loaded from a file.
//
//	presets:
//	  pop:
//	    ease: backOut
//	    duration: 0.35
//	  pulse:
//	    ease: sineInOut
//	    repeat: -1
//	    yoyo: true
type Preset struct {
	Ease        string  `yaml:"ease"`
	Duration    float64 `yaml:"duration"`
	Delay       float64 `yaml:"delay"`
	Repeat      int     `yaml:"repeat"`
	RepeatDelay float64 `yaml:"repeat_delay"`
	Yoyo        bool    `yaml:"yoyo"`
}

// Presets maps preset names to presets.
type Presets map[string]Preset

type presetsFile struct {
	Presets Presets `yaml:"presets"`
}

// LoadPresets reads and validates a presets file.
func LoadPresets(path string) (Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("twine: read presets: %w", err)
	}
	p, err := ParsePresets(data)
	if err != nil {
		return nil, fmt.Errorf("twine: %s: %w", path, err)
	}
	return p, nil
}

// ParsePresets decodes and validates presets from YAML.
func ParsePresets(data []byte) (Presets, error) {
	var f presetsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	for name, p := range f.Presets {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
	}
	if f.Presets == nil {
		f.Presets = Presets{}
	}
	return f.Presets, nil
}

// Validate checks the ease name and that no time is negative.
func (p Preset) Validate() error {
	if _, err := EaseByName(p.Ease); err != nil {
		return err
	}
	if p.Duration < 0 || p.Delay < 0 || p.RepeatDelay < 0 {
		return fmt.Errorf("%w: negative time", ErrInvalidConfig)
	}
	return nil
}

// Options converts p to tween options. An empty ease leaves Ease nil so the
// scheduler default applies. Duration is not an option; callers pass it to the
// constructor.
func (p Preset) Options() Options {
	var e Ease
	if p.Ease != "" {
		e, _ = EaseByName(p.Ease)
	}
	return Options{
		Ease:        e,
		Delay:       p.Delay,
		Repeat:      p.Repeat,
		RepeatDelay: p.RepeatDelay,
		Yoyo:        p.Yoyo,
	}
}

// Option returns an Option applying the named preset.
func (ps Presets) Option(name string) (Option, error) {
	p, ok := ps[name]
	if !ok {
		return nil, fmt.Errorf("twine: unknown preset %q", name)
	}
	return WithPreset(p), nil
}

// WithPreset applies p's settings, keeping any name set earlier.
func WithPreset(p Preset) Option {
	po := p.Options()
	return func(o *Options) {
		name := o.Name
		WithOptions(po)(o)
		o.Name = name
	}
}

// Duration returns the named preset's duration, or fallback when the preset
// is missing or sets none.
func (ps Presets) Duration(name string, fallback float64) float64 {
	if p, ok := ps[name]; ok && p.Duration > 0 {
		return p.Duration
	}
	return fallback
}
