package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/pokedex/internal/browser"
)

// Messages delivered from the browser to the program's event loop.
type (
	clearMsg    struct{}
	cardMsg     struct{ card browser.Card }
	noticeMsg   struct{ text string }
	loadingMsg  struct{ loading bool }
	loadMoreMsg struct{ visible bool }
	overlayMsg  struct{ detail *browser.Detail }
)

// ProgramView implements browser.View by forwarding every call to a
// Bubble Tea program as a message, so the container only changes on the
// program's event loop.
type ProgramView struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

// NewProgramView creates a view that drops messages until attached.
func NewProgramView() *ProgramView {
	return &ProgramView{}
}

// Attach routes messages to p.
func (v *ProgramView) Attach(p *tea.Program) {
	v.attachFunc(p.Send)
}

func (v *ProgramView) attachFunc(send func(tea.Msg)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.send = send
}

func (v *ProgramView) post(msg tea.Msg) {
	v.mu.RLock()
	send := v.send
	v.mu.RUnlock()
	if send != nil {
		send(msg)
	}
}

func (v *ProgramView) Clear() { v.post(clearMsg{}) }
func (v *ProgramView) AppendCard(c browser.Card) { v.post(cardMsg{card: c}) }
func (v *ProgramView) ShowMessage(text string) { v.post(noticeMsg{text: text}) }
func (v *ProgramView) SetLoading(loading bool) { v.post(loadingMsg{loading: loading}) }
func (v *ProgramView) SetLoadMoreVisible(b bool) { v.post(loadMoreMsg{visible: b}) }
func (v *ProgramView) HideOverlay() { v.post(overlayMsg{}) }

func (v *ProgramView) ShowOverlay(d browser.Detail) {
	v.post(overlayMsg{detail: &d})
}
