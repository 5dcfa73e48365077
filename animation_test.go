package twine

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func run(s *Scheduler, ticks int, dt float64) {
	for i := 0; i < ticks; i++ {
		s.Tick(dt)
	}
}

func TestMoveToReachesTarget(t *testing.T) {
	s, _ := newTestScheduler(t)
	n := NewNode("pos")
	n.Position = Vec3{X: 10, Y: 20}

	tw := s.MoveTo(n, 1.0, Vec3{X: 100, Y: 200, Z: 5})
	s.Tick(0.5)
	if math.Abs(n.Position.X-55) > 1e-9 || math.Abs(n.Position.Y-110) > 1e-9 {
		t.Errorf("halfway = %+v, want (55, 110)", n.Position)
	}
	s.Tick(0.5)
	if n.Position != (Vec3{100, 200, 5}) || !tw.IsCompleted() {
		t.Errorf("position = %+v completed = %v", n.Position, tw.IsCompleted())
	}
}

func TestMoveToSkipsUnchangedAxis(t *testing.T) {
	s, _ := newTestScheduler(t)
	n := NewNode("pos")
	n.Position = Vec3{X: 1, Y: 5, Z: 0}

	tw := s.MoveTo(n, 1, Vec3{X: 10, Y: 5, Z: 0})
	props := tw.Properties()
	if len(props) != 1 || props[0] != "x" {
		t.Errorf("Properties = %v, want [x]", props)
	}
}

func TestMoveByAddsDelta(t *testing.T) {
	s, _ := newTestScheduler(t)
	n := NewNode("by")
	n.Position = Vec3{X: 3, Y: 4}
	s.MoveBy(n, 0.5, Vec3{X: 2, Y: -4, Z: 1})
	run(s, 2, 0.25)
	if n.Position != (Vec3{5, 0, 1}) {
		t.Errorf("position = %+v, want (5, 0, 1)", n.Position)
	}
}

func TestMoveFromSnapsAndReturns(t *testing.T) {
	s, _ := newTestScheduler(t)
	n := NewNode("from")
	n.Position = Vec3{X: 50, Y: 50}

	s.MoveFrom(n, 1, Vec3{X: 0, Y: 100})
	if n.Position != (Vec3{0, 100, 0}) {
		t.Fatalf("not snapped to start: %+v", n.Position)
	}
	s.Tick(0.5)
	if n.Position != (Vec3{25, 75, 0}) {
		t.Errorf("halfway = %+v, want (25, 75, 0)", n.Position)
	}
	s.Tick(0.5)
	if n.Position != (Vec3{50, 50, 0}) {
		t.Errorf("end = %+v, want original position", n.Position)
	}
}

func TestMoveToWorldUnderScaledParent(t *testing.T) {
	s, _ := newTestScheduler(t)
	parent := NewNode("parent")
	parent.Position = Vec3{X: 100}
	parent.Scale = Uniform(2)
	child := NewNode("child")
	parent.AddChild(child)

	s.MoveToWorld(child, 1, Vec3{X: 140, Y: 20})
	run(s, 2, 0.5)
	if child.WorldPosition() != (Vec3{140, 20, 0}) {
		t.Errorf("world = %+v, want (140, 20, 0)", child.WorldPosition())
	}
	if child.Position != (Vec3{20, 10, 0}) {
		t.Errorf("local = %+v, want (20, 10, 0)", child.Position)
	}
}

func TestScaleConstructors(t *testing.T) {
	tests := []struct {
		name  string
		start func(s *Scheduler, n *Node) *Tween
		snap  Vec3
		want  Vec3
	}{
		{"ScaleTo", func(s *Scheduler, n *Node) *Tween { return s.ScaleTo(n, 1, Vec3{2, 3, 4}) }, Vec3{1, 1, 1}, Vec3{2, 3, 4}},
		{"ScaleToUniform", func(s *Scheduler, n *Node) *Tween { return s.ScaleToUniform(n, 1, 3) }, Vec3{1, 1, 1}, Vec3{3, 3, 3}},
		{"ScaleFrom", func(s *Scheduler, n *Node) *Tween { return s.ScaleFrom(n, 1, 0) }, Vec3{0, 0, 0}, Vec3{1, 1, 1}},
		{"ScaleFromTo", func(s *Scheduler, n *Node) *Tween { return s.ScaleFromTo(n, 1, 0.5, 2) }, Vec3{0.5, 0.5, 0.5}, Vec3{2, 2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestScheduler(t)
			n := NewNode("scale")
			tw := tt.start(s, n)
			if n.Scale != tt.snap {
				t.Errorf("scale at start = %+v, want %+v", n.Scale, tt.snap)
			}
			run(s, 4, 0.25)
			if n.Scale != tt.want || !tw.IsCompleted() {
				t.Errorf("scale = %+v, want %+v", n.Scale, tt.want)
			}
		})
	}
}

func TestRotateToAndFrom(t *testing.T) {
	s, _ := newTestScheduler(t)
	n := NewNode("rot")
	s.RotateTo(n, 1, Vec3{Z: 90})
	s.Tick(0.5)
	if n.Rotation.Z != 45 {
		t.Errorf("Z = %v, want 45", n.Rotation.Z)
	}
	s.Tick(0.5)

	s.RotateFrom(n, 1, Vec3{Z: 0})
	if n.Rotation.Z != 0 {
		t.Fatalf("RotateFrom did not snap: %v", n.Rotation.Z)
	}
	run(s, 2, 0.5)
	if n.Rotation.Z != 90 {
		t.Errorf("Z = %v, want 90", n.Rotation.Z)
	}
}

func TestResizeTo(t *testing.T) {
	s, _ := newTestScheduler(t)
	n := NewNode("size")
	n.Size = Vec2{10, 10}
	s.ResizeTo(n, 1, Vec2{30, 20})
	s.Tick(0.5)
	if n.Size != (Vec2{20, 15}) {
		t.Errorf("size = %+v, want (20, 15)", n.Size)
	}
}

func TestAlphaAndColor(t *testing.T) {
	s, _ := newTestScheduler(t)
	n := NewNode("fade")

	s.AlphaFromTo(n, 1, 0, 1)
	if n.Color.A != 0 {
		t.Fatalf("AlphaFromTo did not snap: %v", n.Color.A)
	}
	s.Tick(0.25)
	if n.Color.A != 0.25 {
		t.Errorf("A = %v, want 0.25", n.Color.A)
	}

	// ColorTo shares the color part and replaces the fade.
	target := Color{R: 0, G: 1, B: 0.5, A: 0.5}
	s.ColorTo(n, 1, target)
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
	run(s, 4, 0.25)
	if n.Color != target {
		t.Errorf("color = %+v, want %+v", n.Color, target)
	}

	s.AlphaTo(n, 0.5, 0)
	run(s, 2, 0.25)
	if n.Color.A != 0 || n.Color.G != 1 {
		t.Errorf("color = %+v, want alpha 0 and other channels untouched", n.Color)
	}
}

// lockedColor exposes a color that cannot be stored back.
type lockedColor struct {
	c Color
}

func (l *lockedColor) Part(name string) (Target, bool) {
	if name != PartColor {
		return nil, false
	}
	c := l.c
	return &c, true
}

func (l *lockedColor) SetPart(name string, part Target) error {
	return errors.New("color is locked")
}

func TestAlphaFromToLogsFailedSnap(t *testing.T) {
	s, buf := newTestScheduler(t)
	s.SetDebugMode(true)
	l := &lockedColor{c: ColorWhite}
	s.AlphaFromTo(l, 1, 0, 0.5)
	if l.c.A != 1 {
		t.Errorf("A = %v, want unchanged", l.c.A)
	}
	if !bytes.Contains(buf.Bytes(), []byte("color is locked")) {
		t.Errorf("failed snap not logged: %q", buf.String())
	}
}

func TestNodeAlphaField(t *testing.T) {
	s, _ := newTestScheduler(t)
	n := NewNode("a")
	s.To(n, 1, []Prop{P("alpha", 0)})
	s.Tick(0.5)
	if n.Alpha != 0.5 {
		t.Errorf("Alpha = %v, want 0.5", n.Alpha)
	}
}

func TestStopDelayedCall(t *testing.T) {
	s, _ := newTestScheduler(t)
	n := 0
	h := s.DelayedCall(1, func() { n++ })
	s.StopDelayedCall(&h, false)
	if h != nil {
		t.Error("handle should be nil")
	}
	s.Tick(2)
	if n != 0 {
		t.Errorf("stopped call fired %d times", n)
	}

	h = s.DelayedCall(1, func() { n++ })
	s.StopDelayedCall(&h, true)
	s.Tick(2)
	if n != 1 {
		t.Errorf("callback ran %d times, want exactly once", n)
	}

	s.StopDelayedCall(&h, true)
	s.StopDelayedCall(nil, true)
}

func TestClearResetModes(t *testing.T) {
	tests := []struct {
		mode ResetMode
		want float64
	}{
		{ResetNone, 2.5},
		{ResetStart, 0},
		{ResetEnd, 10},
	}
	for _, tt := range tests {
		s, _ := newTestScheduler(t)
		p := &point{}
		fired := false
		tw := s.To(p, 1, []Prop{P("x", 10)})
		tw.OnComplete = func() { fired = true }
		s.Tick(0.25)

		s.Clear(&tw, tt.mode)
		if tw != nil {
			t.Errorf("mode %d: handle not cleared", tt.mode)
		}
		s.Tick(1)
		if p.x != tt.want || fired || s.Len() != 0 {
			t.Errorf("mode %d: x = %v fired = %v Len = %d", tt.mode, p.x, fired, s.Len())
		}
	}
}

func TestValueRange(t *testing.T) {
	s, _ := newTestScheduler(t)
	var got []float64
	done := false
	tw := s.ValueRange(10, 20, 1, func(v float64) { got = append(got, v) })
	tw.OnComplete = func() { done = true }
	run(s, 4, 0.25)

	want := []float64{12.5, 15, 17.5, 20}
	if len(got) != len(want) {
		t.Fatalf("values = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d = %v, want %v", i, got[i], want[i])
		}
	}
	if !done {
		t.Error("ValueRange did not complete")
	}
}

func TestConstructorsOnInvalidContainer(t *testing.T) {
	s, buf := newTestScheduler(t)
	var nilNode *Node
	dead := NewNode("dead")
	dead.Dispose()

	for _, c := range []Container{nil, nilNode, dead} {
		for _, tw := range []*Tween{
			s.MoveTo(c, 1, Vec3{X: 1}),
			s.MoveBy(c, 1, Vec3{X: 1}),
			s.MoveFrom(c, 1, Vec3{X: 1}),
			s.ScaleFrom(c, 1, 0),
			s.ScaleFromTo(c, 1, 0, 1),
			s.RotateFrom(c, 1, Vec3{}),
			s.AlphaFromTo(c, 1, 0, 1),
			s.ColorTo(c, 1, ColorWhite),
		} {
			if tw == nil || tw.IsActive() {
				t.Errorf("container %v: want inert tween", c)
			}
		}
	}
	if s.Len() != 0 || buf.Len() == 0 {
		t.Errorf("Len = %d, logged = %d bytes", s.Len(), buf.Len())
	}
}

func TestUnknownPartIsInert(t *testing.T) {
	s, _ := newTestScheduler(t)
	tw := s.ToPart(NewNode("n"), "skew", 1, []Prop{P("x", 1)})
	if tw.IsActive() {
		t.Error("unknown part should yield an inert tween")
	}
}

func TestNodeDisposedMidTween(t *testing.T) {
	s, _ := newTestScheduler(t)
	n := NewNode("n")
	fired := false
	s.MoveTo(n, 1, Vec3{X: 10}).OnComplete = func() { fired = true }
	s.Tick(0.25)
	n.Dispose()
	run(s, 4, 0.25)
	if fired || s.Len() != 0 {
		t.Errorf("fired = %v Len = %d", fired, s.Len())
	}
}
