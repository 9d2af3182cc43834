package scene

import "time"

// Origin anchors a transform.
type Origin int

const (
	// OriginCenter anchors transforms at the node's center.
	OriginCenter Origin = iota
	// OriginLeading anchors transforms at the node's leading edge, used by
	// exiting slides so the tilt pivots where the slide leaves the stage.
	OriginLeading
)

// Style holds a node's inline visual state.
//
// Fields mirror the inline properties the ported components toggled on
// their elements. A zero Style is fully transparent; constructors set
// Opacity to 1.
type Style struct {
	// Opacity in [0, 1]. Slides fade by toggling this on the slide node
	// itself, decoupled from the wrapper's transform.
	Opacity float64

	// ZIndex orders stacked siblings. Higher is closer to the viewer.
	ZIndex int

	// Hidden marks the node hidden from assistive technology.
	Hidden bool

	// Absolute stacks the node over its siblings instead of flowing.
	Absolute bool

	// MinHeight is the minimum rendered height applied by the auto-sizer.
	MinHeight float64

	// TransitionDuration animates transform changes when positive.
	// Zero means transform changes apply immediately with no end event.
	TransitionDuration time.Duration

	// TransformOrigin anchors the node's transform.
	TransformOrigin Origin
}
