package browser

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/pokedex/internal/catalog"
	"github.com/muurk/pokedex/internal/debounce"
	"github.com/muurk/pokedex/internal/logging"
)

const (
	// DefaultTypeLimit caps how many members of a category are resolved.
	DefaultTypeLimit = 20

	// DefaultSearchDebounce is the search quiescence window.
	DefaultSearchDebounce = 500 * time.Millisecond
)

// Catalog is the remote collaborator. *pokeapi.Client implements it.
type Catalog interface {
	ListPokemon(ctx context.Context, window catalog.PageWindow) ([]catalog.Summary, error)
	PokemonByURL(ctx context.Context, detailURL string) (catalog.Entry, error)
	Pokemon(ctx context.Context, ident string) (catalog.Entry, error)
	TypeMembers(ctx context.Context, category string) ([]catalog.Summary, error)
}

// Options tunes page sizes and timing.
type Options struct {
	PageSize       int
	TypeLimit      int
	SearchDebounce time.Duration
}

// DefaultOptions returns the stock page size, type cap and debounce window.
func DefaultOptions() Options {
	return Options{
		PageSize:       catalog.DefaultPageSize,
		TypeLimit:      DefaultTypeLimit,
		SearchDebounce: DefaultSearchDebounce,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.PageSize <= 0 {
		o.PageSize = d.PageSize
	}
	if o.TypeLimit <= 0 {
		o.TypeLimit = d.TypeLimit
	}
	if o.SearchDebounce < 0 {
		o.SearchDebounce = d.SearchDebounce
	}
	return o
}

// Browser owns the ViewState and drives a View from catalog results.
type Browser struct {
	api  Catalog
	view View
	opts Options

	root       context.Context
	rootCancel context.CancelFunc

	mu         sync.Mutex
	state      ViewState
	inflight   int
	generation uint64
	lastErr    error
	modeCtx    context.Context
	modeCancel context.CancelFunc

	search  *debounce.Debouncer
	overlay *Overlay
}

// New creates a Browser. Nothing is fetched until Start is called.
func New(api Catalog, view View, opts Options) *Browser {
	opts = opts.withDefaults()
	root, cancel := context.WithCancel(context.Background())
	modeCtx, modeCancel := context.WithCancel(root)

	b := &Browser{
		api:        api,
		view:       view,
		opts:       opts,
		root:       root,
		rootCancel: cancel,
		modeCtx:    modeCtx,
		modeCancel: modeCancel,
		search:     debounce.New(opts.SearchDebounce),
	}
	b.overlay = &Overlay{b: b}
	return b
}

// Options returns the effective options.
func (b *Browser) Options() Options {
	return b.opts
}

// State returns a snapshot of the view state.
func (b *Browser) State() ViewState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// LastError returns the cause behind the most recent failure message of
// the current mode, or nil when the mode has not failed.
func (b *Browser) LastError() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastErr
}

// Overlay returns the detail overlay controller.
func (b *Browser) Overlay() *Overlay {
	return b.overlay
}

// Start performs the initial load of the default page.
func (b *Browser) Start() {
	b.reset("start")
}

// Close drops any pending search and cancels in-flight work.
func (b *Browser) Close() {
	b.search.Cancel()
	b.rootCancel()
}

// operation tracks one load, search or filter from start to finish.
type operation struct {
	name     string
	gen      uint64
	ctx      context.Context
	rendered int
	err      error
}

// beginMode starts a new generation, cancelling the previous one, then runs
// prepare under the state lock so its view calls are ordered before any
// result of the new generation.
func (b *Browser) beginMode(name string, prepare func()) *operation {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.modeCancel()
	b.generation++
	b.lastErr = nil
	b.modeCtx, b.modeCancel = context.WithCancel(b.root)

	return b.startLocked(name, prepare)
}

// joinMode starts an operation inside the current generation.
func (b *Browser) joinMode(name string, prepare func()) *operation {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.startLocked(name, prepare)
}

func (b *Browser) startLocked(name string, prepare func()) *operation {
	op := &operation{name: name, gen: b.generation, ctx: b.modeCtx}
	if prepare != nil {
		prepare()
	}
	b.inflight++
	if b.inflight == 1 {
		b.state.Loading = true
		b.view.SetLoading(true)
	}
	return op
}

// emit runs fn under the state lock if op still belongs to the current
// generation. It reports whether fn ran.
func (b *Browser) emit(op *operation, fn func()) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if op.gen != b.generation {
		return false
	}
	fn()
	return true
}

// fail shows msg for a failed operation unless it was superseded.
func (b *Browser) fail(op *operation, err error, msg string) {
	if op.ctx.Err() != nil {
		return
	}
	op.err = err
	b.emit(op, func() {
		b.lastErr = err
		b.view.ShowMessage(msg)
	})
}

func (b *Browser) finish(op *operation) {
	b.mu.Lock()
	b.inflight--
	if b.inflight == 0 {
		b.state.Loading = false
		b.view.SetLoading(false)
	}
	current := op.gen == b.generation
	b.mu.Unlock()

	if !current {
		logging.Debug("Operation superseded",
			zap.String("operation", op.name),
			zap.Uint64("generation", op.gen),
			zap.Int("rendered", op.rendered),
		)
		return
	}
	logging.LogOperation(op.name, op.gen, op.rendered, op.err)
}

func (b *Browser) setLoadMoreVisibleLocked(visible bool) {
	b.state.LoadMoreVisible = visible
	b.view.SetLoadMoreVisible(visible)
}

// reset returns to the default first page.
func (b *Browser) reset(name string) {
	op := b.beginMode(name, func() {
		b.state.Offset = 0
		b.state.Category = ""
		b.view.Clear()
		b.setLoadMoreVisibleLocked(true)
	})
	defer b.finish(op)

	b.loadPage(op, catalog.PageWindow{Offset: 0, Limit: b.opts.PageSize})
}
