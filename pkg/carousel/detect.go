package carousel

import (
	"fmt"

	"github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/scene"
)

// Mode is the carousel's operating mode, decided once at first render.
type Mode int

const (
	// ModeNone means no slides were detected; the widget renders an empty
	// shell and every operation is a no-op.
	ModeNone Mode = iota
	// ModeContainer means slides were discovered by descending into a
	// single projected wrapper structure.
	ModeContainer
	// ModeMultiRoot means the projected top-level nodes are the slides.
	ModeMultiRoot
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeContainer:
		return "container"
	case ModeMultiRoot:
		return "multi-root"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Detection is the result of inspecting the widget's assigned content.
type Detection struct {
	// Mode is the resolved operating mode.
	Mode Mode
	// SlideParent is the branching node whose children are the slides.
	// Only set in container mode.
	SlideParent *scene.Node
	// Slides are the detected slide nodes in order.
	Slides []*scene.Node
}

// Detect resolves the operating mode from the widget's projected content.
// It is a pure function over the tree snapshot; it mutates nothing.
//
// The named drop-zone slot wins over the default slot when it has any
// assigned nodes. More than one top-level node means each is a slide
// (multi-root). Exactly one top-level node starts a descent: while the
// current node has exactly one element child, move into it; the first node
// with zero or several element children is the slide parent. A chain that
// ends with zero children, like no assigned content at all, yields no
// slides — authors see an empty shell, not an error.
func Detect(dropZone, def []*scene.Node) Detection {
	assigned := dropZone
	if len(assigned) == 0 {
		assigned = def
	}

	if len(assigned) == 0 {
		return Detection{Mode: ModeNone}
	}
	if len(assigned) > 1 {
		return Detection{Mode: ModeMultiRoot, Slides: assigned}
	}

	node := assigned[0]
	for {
		kids := node.ElementChildren()
		switch len(kids) {
		case 1:
			node = kids[0]
		case 0:
			return Detection{Mode: ModeNone}
		default:
			return Detection{Mode: ModeContainer, SlideParent: node, Slides: kids}
		}
	}
}
