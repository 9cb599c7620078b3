package browser

import (
	"context"
	"errors"
	"iter"
	"sync/atomic"

	"github.com/muurk/pokedex/internal/catalog"
)

// ErrSequenceConsumed is yielded when a page sequence is ranged over twice.
var ErrSequenceConsumed = errors.New("page sequence already consumed")

// Resolver fetches the full record behind a summary.
type Resolver interface {
	PokemonByURL(ctx context.Context, detailURL string) (catalog.Entry, error)
}

// Resolve yields the full record of each summary in order, issuing one
// request at a time. At most limit records are resolved; limit <= 0 means
// all of them. The sequence ends after yielding the first error.
func Resolve(ctx context.Context, api Resolver, summaries []catalog.Summary, limit int) iter.Seq2[catalog.Entry, error] {
	if limit <= 0 || limit > len(summaries) {
		limit = len(summaries)
	}
	return func(yield func(catalog.Entry, error) bool) {
		for _, s := range summaries[:limit] {
			if err := ctx.Err(); err != nil {
				yield(catalog.Entry{}, err)
				return
			}
			entry, err := api.PokemonByURL(ctx, s.URL)
			if err != nil {
				yield(catalog.Entry{}, err)
				return
			}
			if !yield(entry, nil) {
				return
			}
		}
	}
}

// Page returns the entries of one index window as a lazy, single-use
// sequence: the index request is made when iteration starts, then each
// detail record is fetched as the previous one is consumed.
func (b *Browser) Page(ctx context.Context, window catalog.PageWindow) iter.Seq2[catalog.Entry, error] {
	var used atomic.Bool
	return func(yield func(catalog.Entry, error) bool) {
		if used.Swap(true) {
			yield(catalog.Entry{}, ErrSequenceConsumed)
			return
		}
		if err := window.Validate(); err != nil {
			yield(catalog.Entry{}, err)
			return
		}

		summaries, err := b.api.ListPokemon(ctx, window)
		if err != nil {
			yield(catalog.Entry{}, err)
			return
		}
		for entry, err := range Resolve(ctx, b.api, summaries, 0) {
			if !yield(entry, err) || err != nil {
				return
			}
		}
	}
}

// loadPage streams one window into the container. Cards rendered before a
// failure stay; the failure adds MsgLoadFailed after them.
func (b *Browser) loadPage(op *operation, window catalog.PageWindow) {
	for entry, err := range b.Page(op.ctx, window) {
		if err != nil {
			b.fail(op, err, MsgLoadFailed)
			return
		}
		if !b.appendEntry(op, entry) {
			return
		}
	}
}

// LoadMore advances the offset by one page and appends that page's cards
// to the container.
func (b *Browser) LoadMore() {
	var window catalog.PageWindow
	op := b.joinMode("load-more", func() {
		b.state.Offset += b.opts.PageSize
		window = catalog.PageWindow{Offset: b.state.Offset, Limit: b.opts.PageSize}
	})
	defer b.finish(op)

	b.loadPage(op, window)
}

// LoadPage renders an arbitrary window into a cleared container, starting
// a new generation. The offset is set to the window's start so LoadMore
// continues from there.
func (b *Browser) LoadPage(window catalog.PageWindow) {
	op := b.beginMode("load-page", func() {
		b.state.Offset = window.Offset
		b.state.Category = ""
		b.view.Clear()
		b.setLoadMoreVisibleLocked(true)
	})
	defer b.finish(op)

	b.loadPage(op, window)
}
