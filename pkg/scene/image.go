package scene

// imageState tracks an image node's asynchronous load.
type imageState struct {
	src        string
	loaded     bool
	intrinsicW int
	intrinsicH int
	loadSubs   map[int]func()
	nextSubID  int
}

// NewImage creates an image element node. The image starts unloaded; its
// intrinsic size arrives via CompleteLoad.
func NewImage(src string) *Node {
	n := NewElement("img")
	n.image = &imageState{
		src:      src,
		loadSubs: make(map[int]func()),
	}
	return n
}

// IsImage reports whether the node is an image element.
func (n *Node) IsImage() bool {
	return n.image != nil
}

// ImageSource returns the image source. Empty for non-image nodes.
func (n *Node) ImageSource() string {
	if n.image == nil {
		return ""
	}
	return n.image.src
}

// ImageLoaded reports whether the image's intrinsic size is known.
func (n *Node) ImageLoaded() bool {
	return n.image != nil && n.image.loaded
}

// OnLoad registers a one-shot callback for the image's load completing.
// Fires immediately (and is not retained) if the image already loaded.
// Returns a cancel function; cancelling after firing is a no-op.
func (n *Node) OnLoad(fn func()) func() {
	if n.image == nil || fn == nil {
		return func() {}
	}
	if n.image.loaded {
		fn()
		return func() {}
	}
	id := n.image.nextSubID
	n.image.nextSubID++
	n.image.loadSubs[id] = fn
	return func() {
		delete(n.image.loadSubs, id)
	}
}

// CompleteLoad resolves the image's intrinsic size and fires load
// callbacks. Subsequent calls are no-ops.
func (n *Node) CompleteLoad(intrinsicW, intrinsicH int) {
	if n.image == nil || n.image.loaded {
		return
	}
	n.image.loaded = true
	n.image.intrinsicW = intrinsicW
	n.image.intrinsicH = intrinsicH
	subs := n.image.loadSubs
	n.image.loadSubs = make(map[int]func())
	for _, fn := range subs {
		fn()
	}
}

// imageHeight scales the intrinsic size to the layout width.
func (n *Node) imageHeight(width float64) float64 {
	img := n.image
	if !img.loaded || img.intrinsicH <= 0 {
		return 0
	}
	if width <= 0 || img.intrinsicW <= 0 {
		return float64(img.intrinsicH)
	}
	return float64(img.intrinsicH) * width / float64(img.intrinsicW)
}
