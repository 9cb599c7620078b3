package browser

import "github.com/muurk/pokedex/internal/catalog"

// RenderCard builds the summary tile for an entry. Selecting the card opens
// the detail overlay for that entry.
func (b *Browser) RenderCard(entry catalog.Entry) Card {
	return Card{
		Entry:    entry,
		Number:   entry.Number(),
		Name:     entry.Title(),
		ImageURL: entry.ImageURL,
		Types:    append([]string(nil), entry.Types...),
		Select:   func() { b.overlay.Open(entry) },
	}
}

// appendEntry renders entry into the container for op. It reports false
// when op has been superseded.
func (b *Browser) appendEntry(op *operation, entry catalog.Entry) bool {
	card := b.RenderCard(entry)
	if !b.emit(op, func() { b.view.AppendCard(card) }) {
		return false
	}
	op.rendered++
	return true
}
