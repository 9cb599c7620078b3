package browser

import "github.com/muurk/pokedex/internal/catalog"

// Overlay is the modal detail view. There is only ever one; opening it
// again replaces what it shows.
type Overlay struct {
	b *Browser
}

// Open fills the overlay with entry and makes it visible.
func (o *Overlay) Open(entry catalog.Entry) {
	detail := NewDetail(entry)

	o.b.mu.Lock()
	defer o.b.mu.Unlock()
	o.b.state.OverlayOpen = true
	o.b.view.ShowOverlay(detail)
}

// Close hides the overlay. Closing a hidden overlay does nothing.
func (o *Overlay) Close() {
	o.b.mu.Lock()
	defer o.b.mu.Unlock()
	if !o.b.state.OverlayOpen {
		return
	}
	o.b.state.OverlayOpen = false
	o.b.view.HideOverlay()
}

// Click handles a click delivered to the overlay. Only a click on the
// backdrop itself closes it. Click reports whether the overlay closed.
func (o *Overlay) Click(target ClickTarget) bool {
	if target != TargetRoot || !o.IsOpen() {
		return false
	}
	o.Close()
	return true
}

// IsOpen reports whether the overlay is visible.
func (o *Overlay) IsOpen() bool {
	o.b.mu.Lock()
	defer o.b.mu.Unlock()
	return o.b.state.OverlayOpen
}
