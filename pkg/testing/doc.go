// Package testing provides deterministic test infrastructure for the
// workshop widgets.
//
// Widget behavior is frame-driven: autoplay intervals, transform
// transitions, and deferred sizing passes all advance on frame boundaries.
// The [Harness] owns a scene and a [FakeClock], and pumps frames the same
// way a host loop would — drain deferred frame callbacks, then step active
// tickers — so tests can advance time explicitly and assert on the exact
// intermediate states the widget contracts promise.
//
// Typical usage:
//
//	h := cxtesting.NewHarnessWithT(t)
//	ctrl := carousel.New(cfg, carousel.Mount{Scene: h.Scene(), ...})
//	ctrl.Next()
//	h.PumpFor(time.Second) // run the exit transition to completion
package testing
