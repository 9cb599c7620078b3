package browser

// ViewState is the browser's process-wide view state. It lives as long as
// the Browser and is never persisted.
type ViewState struct {
	// Offset is the start of the most recently requested index window.
	Offset int
	// Loading is true while any operation is in flight.
	Loading bool
	// OverlayOpen is true while the detail overlay is shown.
	OverlayOpen bool
	// LoadMoreVisible mirrors the "load more" control.
	LoadMoreVisible bool
	// Query is the current search text, as typed.
	Query string
	// Category is the type filter whose results are displayed, if any.
	Category string
}

// Searching reports whether a non-empty query is active.
func (s ViewState) Searching() bool {
	return normalizeQuery(s.Query) != ""
}
