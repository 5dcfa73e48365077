package twine

import (
	"fmt"
	"slices"
)

// nodeIDCounter is a plain counter (no atomic; twine is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is a minimal animatable scene object: a local transform, a size, a
// tint and an optional parent. Hosts that already have their own object model
// can implement Target and Container instead.
//
// As a Target a Node exposes "x", "y", "z" (local position) and "alpha".
// As a Container it exposes the parts "position", "worldPosition", "scale",
// "rotation", "size" and "color".
type Node struct {
	ID   uint32
	Name string

	Parent   *Node
	children []*Node

	Position Vec3
	Scale    Vec3
	// Rotation holds euler angles in degrees.
	Rotation Vec3
	Size     Vec2
	Color    Color
	Alpha    float64

	UserData any

	disposed bool
}

// NewNode creates a node with unit scale, white color and full alpha.
func NewNode(name string) *Node {
	return &Node{
		ID:    nextNodeID(),
		Name:  name,
		Scale: Vec3{1, 1, 1},
		Color: ColorWhite,
		Alpha: 1,
	}
}

// --- Target ---

// Float implements Target.
func (n *Node) Float(name string) (float64, bool) {
	switch name {
	case "x":
		return n.Position.X, true
	case "y":
		return n.Position.Y, true
	case "z":
		return n.Position.Z, true
	case "alpha":
		return n.Alpha, true
	}
	return 0, false
}

// SetFloat implements Target. Fails with ErrDisposed once the node is disposed.
func (n *Node) SetFloat(name string, v float64) error {
	if n.disposed {
		return ErrDisposed
	}
	switch name {
	case "x":
		n.Position.X = v
	case "y":
		n.Position.Y = v
	case "z":
		n.Position.Z = v
	case "alpha":
		n.Alpha = v
	default:
		return unknownProperty(name)
	}
	return nil
}

// --- Container ---

// Part implements Container. The returned Target is a copy.
func (n *Node) Part(name string) (Target, bool) {
	if n.disposed {
		return nil, false
	}
	switch name {
	case PartPosition:
		v := n.Position
		return &v, true
	case PartWorldPosition:
		v := n.WorldPosition()
		return &v, true
	case PartScale:
		v := n.Scale
		return &v, true
	case PartRotation:
		v := n.Rotation
		return &v, true
	case PartSize:
		v := n.Size
		return &v, true
	case PartColor:
		c := n.Color
		return &c, true
	}
	return nil, false
}

// SetPart implements Container.
func (n *Node) SetPart(name string, part Target) error {
	if n.disposed {
		return ErrDisposed
	}
	switch name {
	case PartPosition, PartWorldPosition, PartScale, PartRotation:
		v, ok := part.(*Vec3)
		if !ok {
			return fmt.Errorf("twine: part %q wants *Vec3, got %T", name, part)
		}
		switch name {
		case PartPosition:
			n.Position = *v
		case PartWorldPosition:
			n.SetWorldPosition(*v)
		case PartScale:
			n.Scale = *v
		case PartRotation:
			n.Rotation = *v
		}
	case PartSize:
		v, ok := part.(*Vec2)
		if !ok {
			return fmt.Errorf("twine: part %q wants *Vec2, got %T", name, part)
		}
		n.Size = *v
	case PartColor:
		c, ok := part.(*Color)
		if !ok {
			return fmt.Errorf("twine: part %q wants *Color, got %T", name, part)
		}
		n.Color = *c
	default:
		return unknownPart(name)
	}
	return nil
}

// --- World transform ---

// WorldPosition returns the position with every ancestor's translation and
// scale applied. Rotation is not composed.
func (n *Node) WorldPosition() Vec3 {
	if n.Parent == nil {
		return n.Position
	}
	pp := n.Parent.WorldPosition()
	ps := n.Parent.WorldScale()
	return Vec3{
		pp.X + ps.X*n.Position.X,
		pp.Y + ps.Y*n.Position.Y,
		pp.Z + ps.Z*n.Position.Z,
	}
}

// WorldScale returns the product of this node's scale and its ancestors'.
func (n *Node) WorldScale() Vec3 {
	if n.Parent == nil {
		return n.Scale
	}
	ps := n.Parent.WorldScale()
	return Vec3{ps.X * n.Scale.X, ps.Y * n.Scale.Y, ps.Z * n.Scale.Z}
}

// SetWorldPosition sets the local position so that WorldPosition returns w.
// Axes on which an ancestor has zero scale keep their local value.
func (n *Node) SetWorldPosition(w Vec3) {
	if n.Parent == nil {
		n.Position = w
		return
	}
	pp := n.Parent.WorldPosition()
	ps := n.Parent.WorldScale()
	if ps.X != 0 {
		n.Position.X = (w.X - pp.X) / ps.X
	}
	if ps.Y != 0 {
		n.Position.Y = (w.Y - pp.Y) / ps.Y
	}
	if ps.Z != 0 {
		n.Position.Z = (w.Z - pp.Z) / ps.Z
	}
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("twine: cannot add nil child")
	}
	if n.descendsFrom(child) {
		panic("twine: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.unlink(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("twine: child's parent is not this node")
	}
	n.unlink(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the direct children. Callers must not modify the slice.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Tweens still writing to a
// disposed node are dropped on their next tick.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// descendsFrom reports whether a is n or one of its ancestors.
func (n *Node) descendsFrom(a *Node) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur == a {
			return true
		}
	}
	return false
}

// unlink drops child from the child list. child.Parent is left as is.
func (n *Node) unlink(child *Node) {
	if i := slices.Index(n.children, child); i >= 0 {
		n.children = slices.Delete(n.children, i, i+1)
	}
}
