package scene

// Scene owns a node tree and the frame-callback queue used to defer work
// to the next paint opportunity (the auto-sizer's measurement pass runs
// there, because content just made active may not have a final box yet).
type Scene struct {
	root   *Node
	frames []func()
}

// New creates a scene with an empty root element.
func New() *Scene {
	return &Scene{root: NewElement("root")}
}

// Root returns the scene's root element.
func (s *Scene) Root() *Node {
	return s.root
}

// RequestFrame queues fn to run on the next frame flush.
func (s *Scene) RequestFrame(fn func()) {
	if fn == nil {
		return
	}
	s.frames = append(s.frames, fn)
}

// FlushFrames runs the callbacks queued so far. Callbacks queued during
// the flush wait for the next flush, mirroring frame scheduling in the
// environment these widgets were ported from.
func (s *Scene) FlushFrames() {
	pending := s.frames
	s.frames = nil
	for _, fn := range pending {
		fn()
	}
}

// HasPendingFrames reports whether callbacks are waiting for a flush.
func (s *Scene) HasPendingFrames() bool {
	return len(s.frames) > 0
}
