package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/pokedex/internal/browser"
)

// Printer is a browser.View that streams results to a writer, one line per
// card. It backs the non-interactive commands.
type Printer struct {
	out   io.Writer
	width int

	mu       sync.Mutex
	cards    int
	last     *browser.Card
	messages []string
	loadMore bool
	detail   *browser.Detail
}

// NewPrinter creates a printer writing to out at the current terminal width.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, width: GetTerminalWidth()}
}

// SetWidth sets the width used for boxed output
func (p *Printer) SetWidth(width int) *Printer {
	p.width = width
	return p
}

// Clear starts a fresh result set. Lines already written stay on screen.
func (p *Printer) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cards = 0
	p.last = nil
	p.messages = nil
}

func (p *Printer) AppendCard(card browser.Card) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cards++
	p.last = &card
	fmt.Fprintln(p.out, FormatCard(card))
}

func (p *Printer) ShowMessage(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	fmt.Fprintln(p.out, MessageStyle.Render(msg))
}

// SetLoading is a no-op; commands block until the load finishes.
func (p *Printer) SetLoading(bool) {}

func (p *Printer) SetLoadMoreVisible(visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loadMore = visible
}

func (p *Printer) ShowOverlay(detail browser.Detail) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.detail = &detail
	fmt.Fprintln(p.out, RenderDetail(detail, p.width))
}

func (p *Printer) HideOverlay() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.detail = nil
}

// Cards returns how many cards were printed since the last Clear.
func (p *Printer) Cards() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cards
}

// LastCard returns the most recently printed card since the last Clear.
func (p *Printer) LastCard() (browser.Card, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.last == nil {
		return browser.Card{}, false
	}
	return *p.last, true
}

// Messages returns the messages shown since the last Clear.
func (p *Printer) Messages() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.messages...)
}

// LoadMoreVisible reports whether another page could follow.
func (p *Printer) LoadMoreVisible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loadMore
}

// Hint prints a follow-up suggestion.
func (p *Printer) Hint(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, HintStyle.Render(fmt.Sprintf(format, args...)))
}

// FormatCard renders a card as a single line: number, name and badges.
func FormatCard(card browser.Card) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		NumberStyle.Render(card.Number),
		NameStyle.Render(card.Name),
		RenderBadges(card.Types),
	)
}
