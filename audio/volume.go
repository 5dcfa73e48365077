// Package audio lets twine tweens drive beep volume controls, for fades and
// ducking.
package audio

import (
	"errors"
	"sync"

	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/twine"
)

// DefaultFloor is the volume at and below which a Volume is muted.
const DefaultFloor = -6.0

// ErrNoControl is returned when a Volume wraps no effects.Volume.
var ErrNoControl = errors.New("audio: nil volume control")

// Volume adapts an *effects.Volume to twine.Target with the single field
// "volume". Writes go through the locker so they do not race the audio
// goroutine.
type Volume struct {
	ctrl   *effects.Volume
	locker sync.Locker
	floor  float64
	closed bool
}

type speakerLocker struct{}

func (speakerLocker) Lock()   { speaker.Lock() }
func (speakerLocker) Unlock() { speaker.Unlock() }

// SpeakerLocker guards writes with the beep speaker lock. Use it for
// controls whose streamer is playing on the speaker.
var SpeakerLocker sync.Locker = speakerLocker{}

// NewVolume wraps ctrl. A nil locker performs unguarded writes.
func NewVolume(ctrl *effects.Volume, locker sync.Locker) *Volume {
	return &Volume{ctrl: ctrl, locker: locker, floor: DefaultFloor}
}

// SetFloor changes the mute threshold.
func (v *Volume) SetFloor(floor float64) {
	v.floor = floor
}

// Float implements twine.Target.
func (v *Volume) Float(name string) (float64, bool) {
	if name != "volume" || v.ctrl == nil {
		return 0, false
	}
	v.lock()
	defer v.unlock()
	return v.ctrl.Volume, true
}

// SetFloat implements twine.Target. Values at or below the floor mute the
// control.
func (v *Volume) SetFloat(name string, f float64) error {
	if v.closed {
		return twine.ErrDisposed
	}
	if v.ctrl == nil {
		return ErrNoControl
	}
	if name != "volume" {
		return twine.ErrUnknownProperty
	}
	v.lock()
	v.ctrl.Volume = f
	v.ctrl.Silent = f <= v.floor
	v.unlock()
	return nil
}

// Close detaches the control. Tweens still driving it are dropped.
func (v *Volume) Close() {
	v.closed = true
}

// IsDisposed implements twine.Disposable.
func (v *Volume) IsDisposed() bool {
	return v.closed
}

func (v *Volume) lock() {
	if v.locker != nil {
		v.locker.Lock()
	}
}

func (v *Volume) unlock() {
	if v.locker != nil {
		v.locker.Unlock()
	}
}

// FadeTo tweens v to volume over duration seconds.
func FadeTo(s *twine.Scheduler, v *Volume, duration, volume float64, opts ...twine.Option) *twine.Tween {
	return s.To(v, duration, []twine.Prop{twine.P("volume", volume)}, opts...)
}

// FadeOut fades v down to its floor, muting it at the end.
func FadeOut(s *twine.Scheduler, v *Volume, duration float64, opts ...twine.Option) *twine.Tween {
	return FadeTo(s, v, duration, v.floor, opts...)
}
