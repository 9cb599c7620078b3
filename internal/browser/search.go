package browser

import "strings"

func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Search records query as the current search text and schedules a lookup
// after the quiescence window. Calls within the window replace each other;
// only the last one executes.
func (b *Browser) Search(query string) {
	b.mu.Lock()
	b.state.Query = query
	b.mu.Unlock()

	b.search.Trigger(func() { b.runSearch(query) })
}

// SearchNow runs a search immediately, dropping any pending debounced one.
func (b *Browser) SearchNow(query string) {
	b.search.Cancel()

	b.mu.Lock()
	b.state.Query = query
	b.mu.Unlock()

	b.runSearch(query)
}

// SearchPending reports whether a debounced search is waiting or running.
func (b *Browser) SearchPending() bool {
	return b.search.Busy()
}

// runSearch resolves query as an exact identifier or name. An empty query
// returns to the default page.
func (b *Browser) runSearch(query string) {
	q := normalizeQuery(query)
	if q == "" {
		b.reset("search-reset")
		return
	}

	op := b.beginMode("search", func() {
		b.state.Category = ""
		b.view.Clear()
		b.setLoadMoreVisibleLocked(false)
	})
	defer b.finish(op)

	entry, err := b.api.Pokemon(op.ctx, q)
	if err != nil {
		b.fail(op, err, MsgNoMatch)
		return
	}
	b.appendEntry(op, entry)
}
