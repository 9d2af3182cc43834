// Package scene provides the retained node tree the workshop widgets render
// into.
//
// The widgets in this module are ports of slot-projected web components, so
// the scene mirrors the handful of document capabilities their contracts
// depend on: an ordered element tree, class toggling, inline visual state
// (opacity, stacking, accessibility hiding), animated transform transitions
// with end notifications, a rebindable resize observer, and asynchronous
// image loading. Everything else a browser would provide is out of scope.
//
// Nodes are not goroutine-safe; all mutation happens on the host's frame
// loop, the same single-threaded model the components were written against.
package scene

import "sort"

// Kind distinguishes element nodes from text content.
type Kind int

const (
	// KindElement is a structural node that can carry children, classes,
	// and visual state.
	KindElement Kind = iota
	// KindText is a leaf holding text content.
	KindText
)

// Node is one node in the scene tree.
type Node struct {
	// Style holds the node's inline visual state. Mutating it directly is
	// allowed; only measured-size changes have observers.
	Style Style

	kind     Kind
	tag      string
	text     string
	parent   *Node
	children []*Node
	classes  map[string]struct{}

	transform  Transform
	transition *transformTransition
	endSubs    map[int]func()
	nextSubID  int

	width, height float64
	observers     map[*ResizeObserver]struct{}

	image *imageState
}

// NewElement creates an element node with the given tag.
func NewElement(tag string) *Node {
	return &Node{
		kind:      KindElement,
		tag:       tag,
		classes:   make(map[string]struct{}),
		observers: make(map[*ResizeObserver]struct{}),
		Style:     Style{Opacity: 1},
	}
}

// NewText creates a text node.
func NewText(content string) *Node {
	n := NewElement("")
	n.kind = KindText
	n.text = content
	return n
}

// Kind returns the node kind.
func (n *Node) Kind() Kind { return n.kind }

// Tag returns the element tag. Empty for text nodes.
func (n *Node) Tag() string { return n.tag }

// Text returns the text content. Empty for element nodes.
func (n *Node) Text() string { return n.text }

// Parent returns the node's parent, or nil for a detached or root node.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the node's children in order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// ElementChildren returns the element-kind children in order. Text nodes
// are content, not structure, so tree-shape decisions ignore them.
func (n *Node) ElementChildren() []*Node {
	var out []*Node
	for _, c := range n.children {
		if c.kind == KindElement {
			out = append(out, c)
		}
	}
	return out
}

// AppendChild adds child as the last child of n. If child already has a
// parent it is moved, preserving single-parent ownership.
func (n *Node) AppendChild(child *Node) {
	if child == nil || child == n {
		return
	}
	child.detach()
	child.parent = n
	n.children = append(n.children, child)
}

// InsertBefore inserts child immediately before ref. If ref is nil or not
// a child of n, the child is appended.
func (n *Node) InsertBefore(child, ref *Node) {
	if child == nil || child == n {
		return
	}
	child.detach()
	idx := -1
	for i, c := range n.children {
		if c == ref {
			idx = i
			break
		}
	}
	if idx < 0 {
		child.parent = n
		n.children = append(n.children, child)
		return
	}
	child.parent = n
	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = child
}

// RemoveChild detaches child from n. A no-op if child is not a child of n.
func (n *Node) RemoveChild(child *Node) {
	if child == nil || child.parent != n {
		return
	}
	child.detach()
}

func (n *Node) detach() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Visit walks the subtree rooted at n in document order, calling fn for
// each node including n itself.
func (n *Node) Visit(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Visit(fn)
	}
}

// AddClass adds a class to the node.
func (n *Node) AddClass(name string) {
	n.classes[name] = struct{}{}
}

// RemoveClass removes a class from the node.
func (n *Node) RemoveClass(name string) {
	delete(n.classes, name)
}

// ToggleClass adds the class when present is true and removes it otherwise.
func (n *Node) ToggleClass(name string, present bool) {
	if present {
		n.AddClass(name)
	} else {
		n.RemoveClass(name)
	}
}

// HasClass reports whether the node carries the class.
func (n *Node) HasClass(name string) bool {
	_, ok := n.classes[name]
	return ok
}

// Classes returns the node's classes in sorted order.
func (n *Node) Classes() []string {
	out := make([]string, 0, len(n.classes))
	for c := range n.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Width returns the node's measured width.
func (n *Node) Width() float64 { return n.width }

// Height returns the node's measured height.
func (n *Node) Height() float64 { return n.height }

// SetMeasuredSize records the node's rendered box and notifies any resize
// observer watching the node when the box actually changed.
func (n *Node) SetMeasuredSize(width, height float64) {
	if n.width == width && n.height == height {
		return
	}
	n.width = width
	n.height = height
	for o := range n.observers {
		if o.fn != nil {
			o.fn(n)
		}
	}
}
