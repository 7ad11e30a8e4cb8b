package textbind

import "errors"

// Behaviour is a component with an enable/disable lifecycle. OnEnable runs
// when the component's node becomes active in a scene hierarchy (or when the
// component is added to such a node); OnDisable runs when that stops being
// true. OnEnable errors are returned to whoever caused the transition.
type Behaviour interface {
	OnEnable(n *Node) error
	OnDisable(n *Node)
}

// nodeIDCounter is a plain counter (no atomic; textbind is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is an element of the component tree. Nodes carry arbitrary
// components; components implementing Behaviour are enabled while the node
// is active in a scene's hierarchy.
type Node struct {
	ID     uint32
	Name   string
	Parent *Node

	children   []*Node
	components []any
	active     bool
	enabled    bool // Behaviours currently enabled
	scene      *Scene
	disposed   bool
}

// NewNode creates an active, detached node.
func NewNode(name string) *Node {
	return &Node{ID: nextNodeID(), Name: name, active: true}
}

// Scene returns the scene the node is attached to, or nil.
func (n *Node) Scene() *Scene {
	return n.scene
}

// Active returns the node's own active flag.
func (n *Node) Active() bool {
	return n.active
}

// ActiveInHierarchy reports whether the node and all its ancestors are
// active.
func (n *Node) ActiveInHierarchy() bool {
	for p := n; p != nil; p = p.Parent {
		if !p.active {
			return false
		}
	}
	return true
}

// Enabled reports whether the node's Behaviours are currently enabled.
func (n *Node) Enabled() bool {
	return n.enabled
}

// SetActive sets the node's active flag and enables or disables the
// Behaviours of the affected subtree.
func (n *Node) SetActive(active bool) error {
	if n.active == active {
		return nil
	}
	n.active = active
	return n.refresh()
}

// --- Tree manipulation ---

// AddChild appends child to this node's children, removing it from its
// previous parent first. Behaviours that become enabled as a result run
// OnEnable before AddChild returns; their errors are joined.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) error {
	if child == nil {
		panic("textbind: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("textbind: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if child.scene != n.scene {
		// Behaviours hold on to their scene's scheduler; rebind on move.
		_ = child.setEnabledRecursive(false)
	}
	child.Parent = n
	n.children = append(n.children, child)
	setSceneRecursive(child, n.scene)
	return child.refresh()
}

// RemoveChild detaches child from this node, disabling its subtree.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("textbind: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	setSceneRecursive(child, nil)
	_ = child.refresh() // only disables
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// --- Components ---

// AddComponent attaches c to the node. If the node is enabled and c is a
// Behaviour, c is enabled immediately and its error returned.
func (n *Node) AddComponent(c any) error {
	if c == nil {
		panic("textbind: cannot add nil component")
	}
	n.components = append(n.components, c)
	if n.enabled {
		if b, ok := c.(Behaviour); ok {
			return b.OnEnable(n)
		}
	}
	return nil
}

// RemoveComponent detaches c, disabling it first if needed. It reports
// whether c was attached.
func (n *Node) RemoveComponent(c any) bool {
	for i, existing := range n.components {
		if existing != c {
			continue
		}
		if n.enabled {
			if b, ok := c.(Behaviour); ok {
				b.OnDisable(n)
			}
		}
		copy(n.components[i:], n.components[i+1:])
		n.components[len(n.components)-1] = nil
		n.components = n.components[:len(n.components)-1]
		return true
	}
	return false
}

// Components returns the node's components. The returned slice MUST NOT be
// mutated by the caller.
func (n *Node) Components() []any {
	return n.components
}

// GetComponent returns the first component of n assignable to T.
func GetComponent[T any](n *Node) (T, bool) {
	var zero T
	if n == nil {
		return zero, false
	}
	for _, c := range n.components {
		if typed, ok := c.(T); ok {
			return typed, true
		}
	}
	return zero, false
}

// FindInParents returns the first component assignable to T on n or its
// nearest ancestor that has one.
func FindInParents[T any](n *Node) (T, bool) {
	for p := n; p != nil; p = p.Parent {
		if c, ok := GetComponent[T](p); ok {
			return c, true
		}
	}
	var zero T
	return zero, false
}

// FindInChildren returns the first component assignable to T on n or its
// descendants, searched depth-first in child order.
func FindInChildren[T any](n *Node) (T, bool) {
	if c, ok := GetComponent[T](n); ok {
		return c, true
	}
	if n != nil {
		for _, child := range n.children {
			if c, ok := FindInChildren[T](child); ok {
				return c, true
			}
		}
	}
	var zero T
	return zero, false
}

// --- Disposal ---

// Dispose removes this node from its parent, disables its Behaviours, marks
// it as disposed, and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	_ = n.setEnabledRecursive(false)
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
	n.components = nil
	n.Parent = nil
	n.scene = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// refresh brings the enabled state of n's subtree in line with whether each
// node is active in an attached scene hierarchy.
func (n *Node) refresh() error {
	want := n.scene != nil && !n.disposed && n.ActiveInHierarchy()
	return n.setEnabledRecursive(want)
}

// setEnabledRecursive enables parents before children and disables children
// before parents. A node that is itself inactive never enables.
func (n *Node) setEnabledRecursive(want bool) error {
	want = want && n.active
	var errs []error
	if want && !n.enabled {
		n.enabled = true
		for _, c := range n.components {
			if b, ok := c.(Behaviour); ok {
				if err := b.OnEnable(n); err != nil {
					errs = append(errs, err)
				}
			}
		}
	}
	for _, child := range n.children {
		if err := child.setEnabledRecursive(want); err != nil {
			errs = append(errs, err)
		}
	}
	if !want && n.enabled {
		n.enabled = false
		for i := len(n.components) - 1; i >= 0; i-- {
			if b, ok := n.components[i].(Behaviour); ok {
				b.OnDisable(n)
			}
		}
	}
	return errors.Join(errs...)
}

func setSceneRecursive(n *Node, s *Scene) {
	n.scene = s
	for _, child := range n.children {
		setSceneRecursive(child, s)
	}
}

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
