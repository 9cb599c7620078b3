package browser

import "strings"

// FilterByType shows up to Options.TypeLimit entries tagged with category.
//
// An active search takes precedence: the call becomes a fresh Search with
// the current query and category is ignored. An empty category returns to
// the default page.
func (b *Browser) FilterByType(category string) {
	if state := b.State(); state.Searching() {
		b.Search(state.Query)
		return
	}

	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		b.reset("filter-reset")
		return
	}

	op := b.beginMode("filter", func() {
		b.state.Category = category
		b.view.Clear()
		b.setLoadMoreVisibleLocked(false)
	})
	defer b.finish(op)

	members, err := b.api.TypeMembers(op.ctx, category)
	if err != nil {
		b.fail(op, err, MsgTypeFailed)
		return
	}

	for entry, err := range Resolve(op.ctx, b.api, members, b.opts.TypeLimit) {
		if err != nil {
			b.fail(op, err, MsgTypeFailed)
			return
		}
		if !b.appendEntry(op, entry) {
			return
		}
	}
}
