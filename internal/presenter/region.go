package presenter

import "sync"

// Presenter is what application services write status to.
type Presenter interface {
	Show(s Status)
	Hide()
}

// Renderer draws the region. Render is called with the region lock held,
// so calls are serialised and observe writes in order.
type Renderer interface {
	Render(s Status, visible bool)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(s Status, visible bool)

func (f RendererFunc) Render(s Status, visible bool) { f(s, visible) }

// Region is the single display region. Last write wins.
type Region struct {
	mu       sync.Mutex
	current  Status
	visible  bool
	renderer Renderer
}

// NewRegion creates a hidden region drawn by renderer (may be nil).
func NewRegion(renderer Renderer) *Region {
	return &Region{renderer: renderer}
}

// Show replaces the region content and makes it visible.
func (r *Region) Show(s Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = s
	r.visible = true
	if r.renderer != nil {
		r.renderer.Render(s, true)
	}
}

// Hide clears and hides the region.
func (r *Region) Hide() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = Status{}
	r.visible = false
	if r.renderer != nil {
		r.renderer.Render(Status{}, false)
	}
}

// Current returns the shown status and whether the region is visible.
func (r *Region) Current() (Status, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current, r.visible
}

var _ Presenter = (*Region)(nil)
