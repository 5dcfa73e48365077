// Package twine is a frame-driven property tween engine for Go games built on
// [Ebitengine] or any other loop that ticks once per frame.
//
// A tween interpolates named numeric fields of a target from their current
// values to end values over a duration, with an easing curve, an optional
// delay, repeats, a repeat delay and yoyo. A [Scheduler] owns every live tween
// and advances them once per frame.
//
// # Quick start
//
//	sched := twine.NewScheduler()
//	box := twine.NewNode("box")
//
//	t := sched.MoveTo(box, 0.5, twine.Vec3{X: 200, Y: 120}, twine.WithEase(twine.BackOut))
//	t.OnComplete = func() { sched.AlphaTo(box, 0.25, 0) }
//
//	// once per frame
//	sched.Tick(dt)
//
// Inside an [ebiten.Game], [Scheduler.Update] ticks by 1/TPS:
//
//	func (g *Game) Update() error { return g.sched.Update() }
//
// # Targets
//
// Anything implementing [Target] can be tweened with [Scheduler.To]. Objects
// whose values live in nested value types (a position vector, a color)
// implement [Container]; each write copies the part, modifies it and stores it
// back. [Node] implements both.
//
// At most one tween is live per target, or per container part. Starting a new
// tween on the same target replaces the old one, whose OnComplete never fires.
//
// # Failure model
//
// Tween construction and [Scheduler.Tick] never panic and never return errors.
// A nil or disposed target is logged and yields an inert tween. A tween whose
// target fails mid-flight is silently dropped. Diagnostics go to the
// scheduler's logger; [Scheduler.SetDebugMode] adds per-tick stats.
//
// # Configuration
//
// [LoadConfig] reads scheduler settings from a file with TWINE_ environment
// overrides, and [LoadPresets] reads named option presets from YAML.
//
// # Concurrency
//
// twine is single-threaded. Create tweens, tick and control them from the
// goroutine that runs the game loop.
//
// [Ebitengine]: https://ebitengine.org
package twine
