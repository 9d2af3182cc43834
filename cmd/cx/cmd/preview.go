package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/animation"
	"github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/banner"
	"github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/carousel"
	"github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/cta"
	"github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/extension"
	"github.com/dnebing/liferay-devcon-2025-advanced-cx-workshop/pkg/scene"
)

func init() {
	RegisterCommand(&Command{
		Name:  "preview",
		Short: "Preview widgets locally",
		Long: `Load a project's client-extension.yaml, mount its widgets against a
sample scene, and serve their live state as JSON.

Endpoints:
  GET  /state            Widget states (mode, active slide, autoplay, ...)
  GET  /health           Health check
  POST /advance          Advance a carousel (?widget=ID&dir=next|previous)

With --watch, the config file is reloaded and the widgets remounted
whenever client-extension.yaml changes on disk.

Examples:
  cx preview my-widgets
  cx preview my-widgets --port 9000 --watch`,
		Usage: "cx preview [directory] [--port N] [--watch]",
		Run:   runPreview,
	})
}

// frameInterval is the preview frame budget (~60fps).
const frameInterval = 16 * time.Millisecond

func runPreview(args []string) error {
	dir := "."
	port := 8642
	watch := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--watch":
			watch = true
		case arg == "--port":
			if i+1 >= len(args) {
				return fmt.Errorf("--port requires a number")
			}
			p, err := strconv.Atoi(args[i+1])
			if err != nil {
				return fmt.Errorf("invalid port %q", args[i+1])
			}
			port = p
			i++
		case strings.HasPrefix(arg, "--port="):
			p, err := strconv.Atoi(strings.TrimPrefix(arg, "--port="))
			if err != nil {
				return fmt.Errorf("invalid port %q", arg)
			}
			port = p
		case strings.HasPrefix(arg, "-"):
			return fmt.Errorf("unknown flag %q", arg)
		default:
			dir = arg
		}
	}

	app := &previewApp{dir: dir}
	if err := app.rebuild(); err != nil {
		return err
	}

	stopFrames := app.startFrameLoop()
	defer stopFrames()

	if watch {
		stopWatch, err := app.startWatcher()
		if err != nil {
			return err
		}
		defer stopWatch()
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("preview server listen: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/state", app.handleState)
	mux.HandleFunc("/health", handleHealth)
	mux.HandleFunc("/advance", app.handleAdvance)
	server := &http.Server{Handler: mux}

	actualPort := listener.Addr().(*net.TCPAddr).Port
	fmt.Printf("Previewing %s on http://localhost:%d\n", dir, actualPort)
	if watch {
		fmt.Println("Watching client-extension.yaml for changes")
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	server.Shutdown(ctx)
	app.dispose()
	return nil
}

// previewApp owns the sample scene and the mounted widgets. The mutex
// guards them against concurrent access from the frame loop, the HTTP
// handlers, and the config watcher; everything mutates between frames.
type previewApp struct {
	mu  sync.Mutex
	dir string

	scn       *scene.Scene
	carousels map[string]*carousel.Controller
	banners   map[string]*banner.Field
	ctas      map[string]*cta.Button
}

// rebuild loads client-extension.yaml and remounts every widget against a
// fresh sample scene. Called at startup and on each watched config change.
func (a *previewApp) rebuild() error {
	ext, err := extension.LoadOptional(a.dir)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.disposeLocked()
	a.scn = scene.New()
	a.carousels = make(map[string]*carousel.Controller)
	a.banners = make(map[string]*banner.Field)
	a.ctas = make(map[string]*cta.Button)

	widgets := ext.Widgets
	if len(widgets) == 0 {
		// Nothing configured; preview a default carousel anyway.
		widgets = map[string]extension.Widget{
			"carousel": {Type: extension.TypeCarousel},
		}
	}

	for id, w := range widgets {
		switch w.Type {
		case extension.TypeCarousel:
			a.carousels[id] = a.mountSampleCarousel(w.CarouselConfig())
		case extension.TypeBanner:
			a.banners[id] = banner.New(w.BannerConfig())
		case extension.TypeCTA:
			node := scene.NewElement("button")
			a.scn.Root().AppendChild(node)
			a.ctas[id] = cta.New(cta.Config{}, node)
		default:
			// Unknown widget types are preserved in the config but have
			// nothing to preview.
			fmt.Printf("  Skipping widget %q (unhandled type %q)\n", id, w.Type)
		}
	}
	return nil
}

// mountSampleCarousel builds a three-slide container-mode mount.
func (a *previewApp) mountSampleCarousel(cfg carousel.Config) *carousel.Controller {
	host := scene.NewElement("div")
	a.scn.Root().AppendChild(host)

	wrapper := scene.NewElement("div")
	parent := scene.NewElement("div")
	wrapper.AppendChild(parent)
	for i := 1; i <= 3; i++ {
		slide := scene.NewElement("div")
		slide.AppendChild(scene.NewText(fmt.Sprintf("Sample slide %d", i)))
		parent.AppendChild(slide)
	}

	return carousel.New(cfg, carousel.Mount{
		Scene:   a.scn,
		Host:    host,
		Default: []*scene.Node{wrapper},
	})
}

// startFrameLoop pumps the scene and tickers at the frame interval until
// the returned stop function is called.
func (a *previewApp) startFrameLoop() func() {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				a.mu.Lock()
				a.scn.FlushFrames()
				animation.StepTickers()
				a.mu.Unlock()
			}
		}
	}()
	return func() { close(done) }
}

// startWatcher reloads the configuration whenever client-extension.yaml
// changes.
func (a *previewApp) startWatcher() (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config watcher: %w", err)
	}
	if err := watcher.Add(a.dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("config watcher: %w", err)
	}

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != extension.FileName {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				if err := a.rebuild(); err != nil {
					fmt.Fprintf(os.Stderr, "reload failed: %v\n", err)
					continue
				}
				fmt.Println("Configuration reloaded")
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "config watcher: %v\n", err)
			}
		}
	}()

	return func() { watcher.Close() }, nil
}

func (a *previewApp) dispose() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.disposeLocked()
}

func (a *previewApp) disposeLocked() {
	for _, c := range a.carousels {
		c.Dispose()
	}
	for _, f := range a.banners {
		f.Dispose()
	}
	for _, b := range a.ctas {
		b.Dispose()
	}
	a.carousels = nil
	a.banners = nil
	a.ctas = nil
}

// widgetState is the JSON shape served by /state.
type widgetState struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	InstanceID  string `json:"instanceId,omitempty"`
	Mode        string `json:"mode,omitempty"`
	Slides      int    `json:"slides,omitempty"`
	ActiveIndex int    `json:"activeIndex"`
	Autoplay    bool   `json:"autoplay"`
	Particles   int    `json:"particles,omitempty"`
	Pulsing     bool   `json:"pulsing,omitempty"`
}

func (a *previewApp) snapshot() []widgetState {
	a.mu.Lock()
	defer a.mu.Unlock()

	var states []widgetState
	for id, c := range a.carousels {
		states = append(states, widgetState{
			ID:          id,
			Type:        extension.TypeCarousel,
			InstanceID:  c.InstanceID(),
			Mode:        c.Mode().String(),
			Slides:      c.SlideCount(),
			ActiveIndex: c.ActiveIndex(),
			Autoplay:    c.AutoplayRunning(),
		})
	}
	for id, f := range a.banners {
		states = append(states, widgetState{
			ID:        id,
			Type:      extension.TypeBanner,
			Particles: len(f.Particles()),
		})
	}
	for id, b := range a.ctas {
		states = append(states, widgetState{
			ID:      id,
			Type:    extension.TypeCTA,
			Pulsing: b.Pulsing(),
		})
	}
	return states
}

func (a *previewApp) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := struct {
		Widgets []widgetState `json:"widgets"`
	}{Widgets: a.snapshot()}

	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		http.Error(w, fmt.Sprintf("json encode error: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (a *previewApp) handleAdvance(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("widget")
	dir := r.URL.Query().Get("dir")

	a.mu.Lock()
	c, ok := a.carousels[id]
	var idx int
	if ok {
		if dir == "previous" {
			c.Previous()
		} else {
			c.Next()
		}
		idx = c.ActiveIndex()
	}
	a.mu.Unlock()

	if !ok {
		http.Error(w, fmt.Sprintf("no carousel %q", id), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"activeIndex":%d}`, idx)
}

// handleHealth returns a simple health check response.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
