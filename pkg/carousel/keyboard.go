package carousel

// Key identifies a keyboard key delivered to the focused widget.
type Key int

const (
	// KeyArrowLeft steps to the previous slide.
	KeyArrowLeft Key = iota
	// KeyArrowRight steps to the next slide.
	KeyArrowRight
)

// KeyResult indicates how a key event was handled.
type KeyResult int

const (
	// KeyIgnored indicates the event was not handled; the host should let
	// its default behavior run.
	KeyIgnored KeyResult = iota
	// KeyHandled indicates the event was consumed; the host must suppress
	// its default scroll behavior for the key.
	KeyHandled
)

// HandleKey maps arrow keys onto Previous/Next. Arrow keys are consumed
// even when the advance itself is a no-op, so key-repeat against
// single-slide content doesn't scroll the page instead.
func (c *Controller) HandleKey(k Key) KeyResult {
	switch k {
	case KeyArrowLeft:
		c.Previous()
		return KeyHandled
	case KeyArrowRight:
		c.Next()
		return KeyHandled
	default:
		return KeyIgnored
	}
}
