package scene

import "github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/animation"

// transformTransition is one in-flight animated transform change.
type transformTransition struct {
	controller *animation.AnimationController
	target     Transform
}

// Transform returns the node's current transform. During a transition this
// is the interpolated in-flight value.
func (n *Node) Transform() Transform {
	return n.transform
}

// InTransition reports whether a transform transition is running.
func (n *Node) InTransition() bool {
	return n.transition != nil
}

// SetTransform changes the node's transform.
//
// When the node's Style.TransitionDuration is positive the change animates
// and transition-end subscriptions fire once the animation completes.
// Starting a new transform change while a transition is running interrupts
// it without firing end subscriptions, matching the cancel semantics of the
// CSS transitions this models.
func (n *Node) SetTransform(target Transform) {
	if n.transform == target && n.transition == nil {
		return
	}
	d := n.Style.TransitionDuration
	if d <= 0 {
		n.SetTransformImmediate(target)
		return
	}

	n.cancelTransition()

	ctrl := animation.NewAnimationController(d)
	ctrl.Curve = animation.EaseInOut
	tween := &animation.Tween[Transform]{
		Begin: n.transform,
		End:   target,
		Lerp:  LerpTransform,
	}
	ctrl.AddListener(func() {
		n.transform = tween.Transform(ctrl)
	})
	ctrl.AddStatusListener(func(s animation.AnimationStatus) {
		if s == animation.AnimationCompleted {
			n.finishTransition(target)
		}
	})
	n.transition = &transformTransition{controller: ctrl, target: target}
	ctrl.Forward()
}

// SetTransformImmediate applies a transform with no animation and no end
// event, cancelling any transition in flight. Used for slides forced
// straight to the hidden state.
func (n *Node) SetTransformImmediate(target Transform) {
	n.cancelTransition()
	n.transform = target
}

// OnTransitionEnd registers a callback for the next completed transform
// transition. Each subscription fires at most once and is removed after
// firing. Returns a cancel function; cancelling after the subscription has
// fired is a no-op.
func (n *Node) OnTransitionEnd(fn func()) func() {
	if n.endSubs == nil {
		n.endSubs = make(map[int]func())
	}
	id := n.nextSubID
	n.nextSubID++
	n.endSubs[id] = fn
	return func() {
		delete(n.endSubs, id)
	}
}

func (n *Node) cancelTransition() {
	if n.transition == nil {
		return
	}
	n.transition.controller.Dispose()
	n.transition = nil
}

func (n *Node) finishTransition(target Transform) {
	n.transform = target
	if n.transition != nil {
		n.transition.controller.Dispose()
		n.transition = nil
	}
	subs := n.endSubs
	n.endSubs = nil
	for _, fn := range subs {
		if fn != nil {
			fn()
		}
	}
}
