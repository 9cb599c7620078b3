package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/pokedex/internal/browser"
	"github.com/muurk/pokedex/internal/catalog"
)

type stubCatalog struct{}

func (stubCatalog) entry(id int) catalog.Entry {
	return catalog.Entry{
		ID:     id,
		Name:   fmt.Sprintf("mon-%d", id),
		Types:  []string{"grass"},
		Height: 7,
		Weight: 69,
	}
}

func (s stubCatalog) ListPokemon(ctx context.Context, w catalog.PageWindow) ([]catalog.Summary, error) {
	var out []catalog.Summary
	for id := w.Offset + 1; id <= w.Offset+w.Limit; id++ {
		out = append(out, catalog.Summary{
			Name: fmt.Sprintf("mon-%d", id),
			URL:  fmt.Sprintf("https://api.test/pokemon/%d/", id),
		})
	}
	return out, nil
}

func (s stubCatalog) PokemonByURL(ctx context.Context, url string) (catalog.Entry, error) {
	var id int
	if _, err := fmt.Sscanf(url, "https://api.test/pokemon/%d/", &id); err != nil {
		return catalog.Entry{}, err
	}
	return s.entry(id), nil
}

func (s stubCatalog) Pokemon(ctx context.Context, ident string) (catalog.Entry, error) {
	id, err := strconv.Atoi(ident)
	if err != nil {
		return catalog.Entry{}, errors.New("not found")
	}
	return s.entry(id), nil
}

func (s stubCatalog) TypeMembers(ctx context.Context, category string) ([]catalog.Summary, error) {
	return s.ListPokemon(ctx, catalog.PageWindow{Offset: 100, Limit: 5})
}

// harness runs controller commands synchronously and feeds the messages
// they emit back into the model.
type harness struct {
	t     *testing.T
	mu    sync.Mutex
	msgs  []tea.Msg
	model Model
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{t: t}
	view := NewProgramView()
	view.attachFunc(func(msg tea.Msg) {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.msgs = append(h.msgs, msg)
	})
	b := browser.New(stubCatalog{}, view, browser.Options{
		PageSize:       3,
		TypeLimit:      2,
		SearchDebounce: 10 * time.Millisecond,
	})
	t.Cleanup(b.Close)

	h.model = NewModel(b)
	h.update(tea.WindowSizeMsg{Width: 100, Height: 40})
	h.run(call(b.Start))
	return h
}

func (h *harness) update(msg tea.Msg) tea.Cmd {
	updated, cmd := h.model.Update(msg)
	h.model = updated.(Model)
	return cmd
}

// run executes cmd and applies everything the browser emitted.
func (h *harness) run(cmd tea.Cmd) {
	h.t.Helper()
	if cmd == nil {
		h.t.Fatal("expected a command, got nil")
	}
	cmd()
	h.drain()
}

func (h *harness) drain() {
	h.mu.Lock()
	msgs := h.msgs
	h.msgs = nil
	h.mu.Unlock()
	for _, msg := range msgs {
		h.update(msg)
	}
}

func (h *harness) key(msg tea.KeyMsg) tea.Cmd {
	return h.update(msg)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestOverlayHit(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		x, y          int
		want          browser.ClickTarget
	}{
		{"top left corner", 100, 40, 0, 0, browser.TargetRoot},
		{"box origin", 100, 40, 28, 14, browser.TargetContent},
		{"box far corner", 100, 40, 71, 25, browser.TargetContent},
		{"right of box", 100, 40, 72, 14, browser.TargetRoot},
		{"below box", 100, 40, 28, 26, browser.TargetRoot},
		{"odd gap rounds up", 101, 40, 28, 14, browser.TargetRoot},
		{"odd gap origin", 101, 40, 29, 14, browser.TargetContent},
		{"box wider than screen", 30, 10, 5, 5, browser.TargetContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := overlayHit(tt.width, tt.height, 44, 12, tt.x, tt.y)
			if got != tt.want {
				t.Errorf("overlayHit(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestProgramViewForwardsCalls(t *testing.T) {
	view := NewProgramView()
	// Unattached views drop messages.
	view.Clear()

	var got []tea.Msg
	view.attachFunc(func(msg tea.Msg) { got = append(got, msg) })

	view.Clear()
	view.AppendCard(browser.Card{Name: "Bulbasaur"})
	view.ShowMessage(browser.MsgNoMatch)
	view.SetLoading(true)
	view.SetLoadMoreVisible(false)
	view.ShowOverlay(browser.Detail{Name: "Bulbasaur"})
	view.HideOverlay()

	if len(got) != 7 {
		t.Fatalf("len(msgs) = %d, want 7", len(got))
	}
	if _, ok := got[0].(clearMsg); !ok {
		t.Errorf("msgs[0] = %T, want clearMsg", got[0])
	}
	if m, ok := got[1].(cardMsg); !ok || m.card.Name != "Bulbasaur" {
		t.Errorf("msgs[1] = %#v, want card Bulbasaur", got[1])
	}
	if m, ok := got[2].(noticeMsg); !ok || m.text != browser.MsgNoMatch {
		t.Errorf("msgs[2] = %#v, want notice", got[2])
	}
	if m, ok := got[3].(loadingMsg); !ok || !m.loading {
		t.Errorf("msgs[3] = %#v, want loading true", got[3])
	}
	if m, ok := got[4].(loadMoreMsg); !ok || m.visible {
		t.Errorf("msgs[4] = %#v, want load more hidden", got[4])
	}
	if m, ok := got[5].(overlayMsg); !ok || m.detail == nil || m.detail.Name != "Bulbasaur" {
		t.Errorf("msgs[5] = %#v, want overlay detail", got[5])
	}
	if m, ok := got[6].(overlayMsg); !ok || m.detail != nil {
		t.Errorf("msgs[6] = %#v, want hidden overlay", got[6])
	}
}

func TestModelMirrorsInitialLoad(t *testing.T) {
	h := newHarness(t)

	if len(h.model.Cards) != 3 {
		t.Fatalf("len(Cards) = %d, want 3", len(h.model.Cards))
	}
	if h.model.Cards[0].Number != "#001" {
		t.Errorf("Cards[0].Number = %q, want %q", h.model.Cards[0].Number, "#001")
	}
	if !h.model.LoadMoreVisible {
		t.Error("LoadMoreVisible = false, want true")
	}
	if h.model.Loading {
		t.Error("Loading = true after load finished")
	}
	if h.model.Viewport.TotalLineCount() == 0 {
		t.Error("viewport has no content")
	}
}

func TestLoadMoreKey(t *testing.T) {
	h := newHarness(t)

	h.run(h.key(runes("m")))
	if len(h.model.Cards) != 6 {
		t.Fatalf("len(Cards) = %d, want 6", len(h.model.Cards))
	}

	h.update(loadMoreMsg{visible: false})
	if cmd := h.key(runes("m")); cmd != nil {
		t.Error("m with hidden load more returned a command")
	}
}

func TestCategoryKeysCycle(t *testing.T) {
	h := newHarness(t)

	h.run(h.key(tea.KeyMsg{Type: tea.KeyTab}))
	if h.model.Category != 1 {
		t.Errorf("Category = %d, want 1", h.model.Category)
	}
	if len(h.model.Cards) != 2 {
		t.Errorf("len(Cards) = %d, want 2 (type limit)", len(h.model.Cards))
	}
	if h.model.LoadMoreVisible {
		t.Error("LoadMoreVisible = true while filtering")
	}

	// Back to "all" restores the default page.
	h.run(h.key(tea.KeyMsg{Type: tea.KeyShiftTab}))
	if h.model.Category != 0 {
		t.Errorf("Category = %d, want 0", h.model.Category)
	}
	if len(h.model.Cards) != 3 {
		t.Errorf("len(Cards) = %d, want 3", len(h.model.Cards))
	}

	h.key(tea.KeyMsg{Type: tea.KeyShiftTab})
	if want := len(catalog.Categories); h.model.Category != want {
		t.Errorf("Category = %d, want %d (wrapped to last)", h.model.Category, want)
	}
}

func TestSelectionMovement(t *testing.T) {
	h := newHarness(t)

	h.key(tea.KeyMsg{Type: tea.KeyRight})
	if h.model.Selected != 1 {
		t.Errorf("Selected = %d, want 1", h.model.Selected)
	}
	h.key(tea.KeyMsg{Type: tea.KeyDown})
	if h.model.Selected != 2 {
		t.Errorf("Selected = %d, want 2 (clamped)", h.model.Selected)
	}
	h.key(runes("h"))
	h.key(runes("h"))
	h.key(runes("h"))
	if h.model.Selected != 0 {
		t.Errorf("Selected = %d, want 0 (clamped)", h.model.Selected)
	}
}

func TestOverlayKeysAndClicks(t *testing.T) {
	h := newHarness(t)

	h.key(tea.KeyMsg{Type: tea.KeyRight})
	h.run(h.key(tea.KeyMsg{Type: tea.KeyEnter}))
	if h.model.Detail == nil {
		t.Fatal("Detail = nil after enter")
	}
	if h.model.Detail.Name != "Mon-2" {
		t.Errorf("Detail.Name = %q, want %q", h.model.Detail.Name, "Mon-2")
	}

	// Keys other than close are swallowed, including quit.
	if cmd := h.key(runes("q")); cmd != nil {
		t.Error("q with overlay open returned a command")
	}

	box := renderDetail(*h.model.Detail)
	x := centerOffset(h.model.Width, lipgloss.Width(box)) + 1
	y := centerOffset(h.model.Height, lipgloss.Height(box)) + 1
	h.run(h.update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}))
	if h.model.Detail == nil {
		t.Fatal("click inside the overlay closed it")
	}

	h.run(h.update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}))
	if h.model.Detail != nil {
		t.Fatal("backdrop click did not close the overlay")
	}

	h.run(h.key(tea.KeyMsg{Type: tea.KeyEnter}))
	h.run(h.key(runes("x")))
	if h.model.Detail != nil {
		t.Error("x did not close the overlay")
	}
}

func TestSearchFocus(t *testing.T) {
	h := newHarness(t)

	h.key(runes("/"))
	if h.model.focus != focusSearch {
		t.Fatal("/ did not focus the search box")
	}

	// q is text while searching.
	cmd := h.key(runes("q"))
	if cmd == nil {
		t.Fatal("typing returned no command")
	}
	if h.model.Search.Value() != "q" {
		t.Errorf("Search.Value() = %q, want %q", h.model.Search.Value(), "q")
	}

	h.key(tea.KeyMsg{Type: tea.KeyEsc})
	if h.model.focus != focusGrid {
		t.Error("esc did not leave the search box")
	}
}

func TestQuitKey(t *testing.T) {
	h := newHarness(t)

	cmd := h.key(runes("q"))
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestViewRendersOverlay(t *testing.T) {
	h := newHarness(t)

	if got := h.model.View(); got == "" {
		t.Fatal("View() is empty")
	}
	h.run(h.key(tea.KeyMsg{Type: tea.KeyEnter}))
	if got := lipgloss.Height(h.model.View()); got != h.model.Height {
		t.Errorf("overlay height = %d, want %d", got, h.model.Height)
	}
}

func TestViewportFillsRemainingRows(t *testing.T) {
	h := newHarness(t)

	short := h.model.Viewport.Height
	if got := short + h.model.chromeHeight(); got != h.model.Height {
		t.Errorf("viewport %d + chrome %d = %d, want %d", short, h.model.chromeHeight(), got, h.model.Height)
	}
	if got := lipgloss.Height(h.model.View()); got != h.model.Height {
		t.Errorf("View() height = %d, want %d", got, h.model.Height)
	}

	h.key(runes("?"))
	if !h.model.Help.ShowAll {
		t.Fatal("? did not expand help")
	}
	if h.model.Viewport.Height >= short {
		t.Errorf("viewport height with full help = %d, want less than %d", h.model.Viewport.Height, short)
	}
	if got := lipgloss.Height(h.model.View()); got != h.model.Height {
		t.Errorf("View() height with full help = %d, want %d", got, h.model.Height)
	}

	h.key(runes("?"))
	if h.model.Viewport.Height != short {
		t.Errorf("viewport height after collapsing help = %d, want %d", h.model.Viewport.Height, short)
	}
}
