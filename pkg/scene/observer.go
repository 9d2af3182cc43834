package scene

// ResizeObserver watches a single node's measured box.
//
// Unlike its browser namesake it observes exactly one node at a time:
// Observe implicitly disconnects the previous target. That matches how the
// carousel uses it — one persistent observer per widget, rebound to the
// active slide on every transition, never accumulating registrations on
// stale slides. Disconnect must be called on widget teardown.
type ResizeObserver struct {
	fn     func(*Node)
	target *Node
}

// NewResizeObserver creates an observer invoking fn when the observed
// node's measured size changes.
func NewResizeObserver(fn func(*Node)) *ResizeObserver {
	return &ResizeObserver{fn: fn}
}

// Observe rebinds the observer to n, disconnecting any previous target.
// Observing nil is equivalent to Disconnect.
func (o *ResizeObserver) Observe(n *Node) {
	if o.target == n {
		return
	}
	o.Disconnect()
	if n == nil {
		return
	}
	o.target = n
	n.observers[o] = struct{}{}
}

// Disconnect stops observing. Safe to call repeatedly.
func (o *ResizeObserver) Disconnect() {
	if o.target == nil {
		return
	}
	delete(o.target.observers, o)
	o.target = nil
}

// Target returns the node currently observed, or nil.
func (o *ResizeObserver) Target() *Node {
	return o.target
}
