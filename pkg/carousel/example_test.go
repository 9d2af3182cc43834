package carousel_test

import (
	"fmt"
	"time"

	"github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/carousel"
	"github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/scene"
	cxtesting "github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/testing"
)

// This example mounts a container-mode carousel and advances it by hand.
func ExampleController() {
	h := cxtesting.NewHarness()
	defer h.Cleanup()

	host := scene.NewElement("div")
	h.Scene().Root().AppendChild(host)

	wrapper := scene.NewElement("div")
	slides := scene.NewElement("div")
	wrapper.AppendChild(slides)
	for i := 1; i <= 3; i++ {
		slide := scene.NewElement("div")
		slide.AppendChild(scene.NewText(fmt.Sprintf("Slide %d", i)))
		slides.AppendChild(slide)
	}

	cfg := carousel.DefaultConfig()
	cfg.Autoplay = false
	c := carousel.New(cfg, carousel.Mount{
		Scene:   h.Scene(),
		Host:    host,
		Default: []*scene.Node{wrapper},
	})
	defer c.Dispose()

	c.OnSlideChange(func(ev carousel.Event) {
		fmt.Printf("now showing slide %d\n", ev.Index)
	})

	c.Next()
	h.PumpFor(time.Second)
	c.Previous()

	fmt.Println("mode:", c.Mode())
	// Output:
	// now showing slide 1
	// now showing slide 0
	// mode: container
}

// This example shows autoplay driven by the deterministic test clock.
func ExampleController_autoplay() {
	h := cxtesting.NewHarness()
	defer h.Cleanup()

	host := scene.NewElement("div")
	h.Scene().Root().AppendChild(host)
	roots := []*scene.Node{
		scene.NewElement("div"),
		scene.NewElement("div"),
	}

	cfg := carousel.DefaultConfig()
	cfg.Interval = time.Second
	c := carousel.New(cfg, carousel.Mount{Scene: h.Scene(), Host: host, Default: roots})
	defer c.Dispose()

	h.PumpFor(1100 * time.Millisecond)
	fmt.Println("active:", c.ActiveIndex())
	// Output:
	// active: 1
}
