package browser

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/muurk/pokedex/internal/catalog"
	"github.com/muurk/pokedex/internal/pokeapi"
)

// fakeCatalog serves a numbered catalog of n entries named "mon-<id>".
type fakeCatalog struct {
	mu sync.Mutex

	total int
	types map[string][]int

	// failDetail makes PokemonByURL fail for this id.
	failDetail int
	failIndex  bool
	failType   bool

	// block, when set, makes Pokemon wait for release or cancellation.
	block   chan struct{}
	blocked chan struct{}

	listCalls   []catalog.PageWindow
	detailCalls []string
	lookups     []string
	typeCalls   []string
}

func newFakeCatalog(total int) *fakeCatalog {
	return &fakeCatalog{total: total, types: map[string][]int{}}
}

func detailURL(id int) string {
	return fmt.Sprintf("https://api.test/pokemon/%d/", id)
}

func fakeEntry(id int) catalog.Entry {
	return catalog.Entry{
		ID:             id,
		Name:           fmt.Sprintf("mon-%d", id),
		ImageURL:       fmt.Sprintf("https://img.test/%d.png", id),
		Types:          []string{"normal"},
		Height:         id,
		Weight:         id * 10,
		BaseExperience: id * 2,
	}
}

func (f *fakeCatalog) ListPokemon(ctx context.Context, window catalog.PageWindow) ([]catalog.Summary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls = append(f.listCalls, window)
	if f.failIndex {
		return nil, pokeapi.NewHTTPError(500, "index")
	}

	var out []catalog.Summary
	for id := window.Offset + 1; id <= window.Offset+window.Limit && id <= f.total; id++ {
		out = append(out, catalog.Summary{Name: fmt.Sprintf("mon-%d", id), URL: detailURL(id)})
	}
	return out, nil
}

func (f *fakeCatalog) PokemonByURL(ctx context.Context, u string) (catalog.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailCalls = append(f.detailCalls, u)

	var id int
	if _, err := fmt.Sscanf(u, "https://api.test/pokemon/%d/", &id); err != nil {
		return catalog.Entry{}, pokeapi.NewParseError("bad url", u, err)
	}
	if id == f.failDetail {
		return catalog.Entry{}, pokeapi.NewNetworkError("GET request failed", u, errors.New("connection reset"))
	}
	return fakeEntry(id), nil
}

func (f *fakeCatalog) Pokemon(ctx context.Context, ident string) (catalog.Entry, error) {
	f.mu.Lock()
	f.lookups = append(f.lookups, ident)
	block, blocked := f.block, f.blocked
	f.mu.Unlock()

	if block != nil {
		if blocked != nil {
			close(blocked)
		}
		select {
		case <-block:
		case <-ctx.Done():
			return catalog.Entry{}, pokeapi.NewNetworkError("GET request failed", ident, ctx.Err())
		}
	}

	id, err := strconv.Atoi(ident)
	if err != nil {
		if _, scanErr := fmt.Sscanf(ident, "mon-%d", &id); scanErr != nil {
			return catalog.Entry{}, pokeapi.NewNotFoundError(ident, 404)
		}
	}
	if id < 1 || id > f.total {
		return catalog.Entry{}, pokeapi.NewNotFoundError(ident, 404)
	}
	return fakeEntry(id), nil
}

func (f *fakeCatalog) TypeMembers(ctx context.Context, category string) ([]catalog.Summary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.typeCalls = append(f.typeCalls, category)
	if f.failType {
		return nil, pokeapi.NewHTTPError(404, category)
	}

	var out []catalog.Summary
	for _, id := range f.types[category] {
		out = append(out, catalog.Summary{Name: fmt.Sprintf("mon-%d", id), URL: detailURL(id)})
	}
	return out, nil
}

func (f *fakeCatalog) lookupCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.lookups)
}

func (f *fakeCatalog) detailCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.detailCalls)
}

// recordingView captures every View call.
type recordingView struct {
	mu sync.Mutex

	cards           []Card
	messages        []string
	clears          int
	loading         bool
	loadingHistory  []bool
	loadMoreVisible bool
	overlay         *Detail
	overlayVisible  bool
}

func (v *recordingView) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cards = nil
	v.messages = nil
	v.clears++
}

func (v *recordingView) AppendCard(card Card) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cards = append(v.cards, card)
}

func (v *recordingView) ShowMessage(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.messages = append(v.messages, msg)
}

func (v *recordingView) SetLoading(loading bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = loading
	v.loadingHistory = append(v.loadingHistory, loading)
}

func (v *recordingView) SetLoadMoreVisible(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.loadMoreVisible = visible
}

func (v *recordingView) ShowOverlay(detail Detail) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.overlay = &detail
	v.overlayVisible = true
}

func (v *recordingView) HideOverlay() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.overlayVisible = false
}

func (v *recordingView) ids() []int {
	v.mu.Lock()
	defer v.mu.Unlock()
	ids := make([]int, 0, len(v.cards))
	for _, c := range v.cards {
		ids = append(ids, c.Entry.ID)
	}
	return ids
}

func (v *recordingView) snapshot() (cards []Card, messages []string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]Card(nil), v.cards...), append([]string(nil), v.messages...)
}

func newTestBrowser(t *testing.T, api *fakeCatalog) (*Browser, *recordingView) {
	t.Helper()
	view := &recordingView{}
	b := New(api, view, Options{PageSize: 5, TypeLimit: 3, SearchDebounce: 20 * time.Millisecond})
	t.Cleanup(b.Close)
	return b, view
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

// waitIdle waits for pending searches and in-flight operations to finish.
func waitIdle(t *testing.T, b *Browser) {
	t.Helper()
	waitFor(t, "browser idle", func() bool {
		return !b.SearchPending() && !b.State().Loading
	})
}
