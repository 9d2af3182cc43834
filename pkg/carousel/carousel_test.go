package carousel

import (
	"testing"
	"time"

	workshoperr "github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/errors"
	"github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/scene"
	cxtesting "github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/testing"
)

func TestAutoplay_AdvancesOnInterval(t *testing.T) {
	h := cxtesting.NewHarnessWithT(t)
	cfg := DefaultConfig()
	cfg.Interval = 4 * time.Second
	c := mountContainer(h, cfg, 3)
	defer c.Dispose()

	if !c.AutoplayRunning() {
		t.Fatal("autoplay should be running")
	}

	h.PumpFor(4200 * time.Millisecond)
	if c.ActiveIndex() != 1 {
		t.Errorf("index after one period = %d, want 1", c.ActiveIndex())
	}

	h.PumpFor(4 * time.Second)
	if c.ActiveIndex() != 2 {
		t.Errorf("index after two periods = %d, want 2", c.ActiveIndex())
	}
}

func TestAutoplay_ToggleStopsAndResumes(t *testing.T) {
	h := cxtesting.NewHarnessWithT(t)
	cfg := DefaultConfig()
	cfg.Interval = time.Second
	c := mountContainer(h, cfg, 3)
	defer c.Dispose()

	c.SetAutoplay(false)
	if c.AutoplayRunning() {
		t.Fatal("autoplay still running after disable")
	}
	before := c.ActiveIndex()
	h.PumpFor(5 * time.Second)
	if c.ActiveIndex() != before {
		t.Error("disabled autoplay still advanced")
	}

	c.SetAutoplay(true)
	if !c.AutoplayRunning() {
		t.Fatal("autoplay not running after re-enable")
	}
	h.PumpFor(1100 * time.Millisecond)
	if c.ActiveIndex() == before {
		t.Error("re-enabled autoplay did not advance")
	}
}

func TestAutoplay_SetIntervalRestartsTimer(t *testing.T) {
	h := cxtesting.NewHarnessWithT(t)
	cfg := DefaultConfig()
	cfg.Interval = 10 * time.Second
	c := mountContainer(h, cfg, 3)
	defer c.Dispose()

	c.SetInterval(time.Second)
	h.PumpFor(1100 * time.Millisecond)
	if c.ActiveIndex() != 1 {
		t.Errorf("index = %d, want 1 after shortened interval", c.ActiveIndex())
	}
}

func TestAutoplay_DisabledConfigNeverStarts(t *testing.T) {
	h := cxtesting.NewHarnessWithT(t)
	c := mountContainer(h, noAutoplay(), 3)
	defer c.Dispose()

	if c.AutoplayRunning() {
		t.Error("autoplay running despite disabled config")
	}
}

func TestHandleKey_ArrowsAdvanceAndAreConsumed(t *testing.T) {
	h := cxtesting.NewHarnessWithT(t)
	c := mountMultiRoot(h, noAutoplay(), 3)
	defer c.Dispose()

	if got := c.HandleKey(KeyArrowRight); got != KeyHandled {
		t.Errorf("ArrowRight = %v, want handled", got)
	}
	if c.ActiveIndex() != 1 {
		t.Errorf("index = %d, want 1", c.ActiveIndex())
	}

	if got := c.HandleKey(KeyArrowLeft); got != KeyHandled {
		t.Errorf("ArrowLeft = %v, want handled", got)
	}
	if c.ActiveIndex() != 0 {
		t.Errorf("index = %d, want 0", c.ActiveIndex())
	}

	if got := c.HandleKey(Key(99)); got != KeyIgnored {
		t.Errorf("unknown key = %v, want ignored", got)
	}
}

func TestHandleKey_ConsumedEvenWhenAdvanceIsNoOp(t *testing.T) {
	h := cxtesting.NewHarnessWithT(t)
	c := mountContainer(h, noAutoplay(), 1)
	defer c.Dispose()

	if got := c.HandleKey(KeyArrowRight); got != KeyHandled {
		t.Error("arrow key against single slide should still be consumed")
	}
}

func TestNoContent_RendersEmptyShell(t *testing.T) {
	h := cxtesting.NewHarnessWithT(t)
	host := scene.NewElement("div")
	h.Scene().Root().AppendChild(host)

	c := New(DefaultConfig(), Mount{Scene: h.Scene(), Host: host})
	defer c.Dispose()

	if c.Mode() != ModeNone || c.SlideCount() != 0 {
		t.Errorf("mode=%v count=%d, want none/0", c.Mode(), c.SlideCount())
	}
	if c.AutoplayRunning() {
		t.Error("autoplay must not start with zero slides")
	}

	events := 0
	c.OnSlideChange(func(Event) { events++ })
	c.Next()
	c.Previous()
	if events != 0 {
		t.Error("advance against zero slides fired events")
	}
}

func TestAutoSizer_AppliesActiveSlideHeight(t *testing.T) {
	h := cxtesting.NewHarnessWithT(t)
	c := mountContainer(h, noAutoplay(), 2)
	defer c.Dispose()

	parent := c.Slides()[0].Parent()

	// The initial sizing pass is deferred to the next frame.
	if parent.Style.MinHeight != 0 {
		t.Fatal("sizing ran synchronously; must wait for next frame")
	}
	h.Pump()
	if parent.Style.MinHeight <= 0 {
		t.Error("container min-height not applied after sizing pass")
	}
}

func TestAutoSizer_RemeasuresOnImageLoad(t *testing.T) {
	h := cxtesting.NewHarnessWithT(t)

	host := scene.NewElement("div")
	h.Scene().Root().AppendChild(host)

	wrapper := scene.NewElement("div")
	parent := scene.NewElement("div")
	wrapper.AppendChild(parent)
	imgSlide := scene.NewElement("div")
	img := scene.NewImage("hero.png")
	imgSlide.AppendChild(img)
	parent.AppendChild(imgSlide)
	parent.AppendChild(scene.NewElement("div"))

	c := New(noAutoplay(), Mount{Scene: h.Scene(), Host: host, Default: []*scene.Node{wrapper}})
	defer c.Dispose()

	h.Pump()
	if parent.Style.MinHeight != 0 {
		t.Fatalf("min-height = %v before the image loaded, want 0", parent.Style.MinHeight)
	}

	img.CompleteLoad(800, 600)
	if parent.Style.MinHeight != 600 {
		t.Errorf("min-height = %v after image load, want 600", parent.Style.MinHeight)
	}
}

func TestAutoSizer_ObserverFollowsActiveSlide(t *testing.T) {
	h := cxtesting.NewHarnessWithT(t)
	c := mountContainer(h, noAutoplay(), 2)
	defer c.Dispose()

	slides := c.Slides()
	parent := slides[0].Parent()
	h.Pump()

	c.Next()
	h.PumpFor(time.Second)

	// Resizing the now-inactive slide must not drive the container.
	parent.Style.MinHeight = 0
	slides[0].SetMeasuredSize(300, 999)
	if parent.Style.MinHeight != 0 {
		t.Error("stale slide resize drove the container height")
	}

	// Resizing the active slide re-measures.
	slides[1].SetMeasuredSize(300, 50)
	if parent.Style.MinHeight <= 0 {
		t.Error("active slide resize did not re-measure")
	}
}

type panicRecorder struct {
	panics int
}

func (r *panicRecorder) HandleError(*workshoperr.Error)      {}
func (r *panicRecorder) HandlePanic(*workshoperr.PanicError) { r.panics++ }

func TestChangeListenerPanic_IsReportedAndContained(t *testing.T) {
	rec := &panicRecorder{}
	workshoperr.SetHandler(rec)
	defer workshoperr.SetHandler(nil)

	h := cxtesting.NewHarnessWithT(t)
	c := mountContainer(h, noAutoplay(), 3)
	defer c.Dispose()

	c.OnSlideChange(func(Event) { panic("subscriber bug") })
	calls := 0
	c.OnSlideChange(func(Event) { calls++ })

	c.Next()
	if c.ActiveIndex() != 1 {
		t.Error("panicking subscriber broke the advance")
	}
	if calls != 1 {
		t.Error("panicking subscriber starved its siblings")
	}
	if rec.panics != 1 {
		t.Errorf("reported panics = %d, want 1", rec.panics)
	}
}

func TestDispose_StopsAllBackgroundWork(t *testing.T) {
	h := cxtesting.NewHarnessWithT(t)
	cfg := DefaultConfig()
	cfg.Interval = time.Second
	c := mountContainer(h, cfg, 3)

	events := 0
	c.OnSlideChange(func(Event) { events++ })

	c.Dispose()
	c.Dispose() // idempotent

	h.PumpFor(5 * time.Second)
	if events != 0 {
		t.Errorf("events after dispose = %d, want 0", events)
	}
	if c.AutoplayRunning() {
		t.Error("autoplay running after dispose")
	}

	c.Next()
	if c.ActiveIndex() != 0 {
		t.Error("disposed controller advanced")
	}
}
