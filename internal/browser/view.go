package browser

import (
	"github.com/muurk/pokedex/internal/catalog"
)

// Fixed messages shown in place of results.
const (
	MsgLoadFailed = "Failed to load Pokémon. Try again later."
	MsgNoMatch    = "❌ No Pokémon found."
	MsgTypeFailed = "❌ Failed to load Pokémon by type."
)

// View is the host boundary. Calls arrive in the order the container
// should change; implementations must not call back into the Browser
// synchronously.
type View interface {
	// Clear empties the card container, including any message.
	Clear()
	// AppendCard adds a card after the existing ones.
	AppendCard(card Card)
	// ShowMessage adds a fixed message after the existing cards.
	ShowMessage(msg string)
	SetLoading(loading bool)
	SetLoadMoreVisible(visible bool)
	ShowOverlay(detail Detail)
	HideOverlay()
}

// Card is a rendered summary tile.
type Card struct {
	Entry    catalog.Entry
	Number   string
	Name     string
	ImageURL string
	Types    []string

	// Select opens the detail overlay for this card's entry.
	Select func()
}

// Detail holds the display fields of the overlay.
type Detail struct {
	Entry      catalog.Entry
	ImageURL   string
	Name       string
	Number     string
	Height     string
	Weight     string
	Experience string
	Types      []string
}

// NewDetail formats the overlay fields for an entry.
func NewDetail(e catalog.Entry) Detail {
	return Detail{
		Entry:      e,
		ImageURL:   e.ImageURL,
		Name:       e.Title(),
		Number:     e.Number(),
		Height:     catalog.FormatHeight(e.Height),
		Weight:     catalog.FormatWeight(e.Weight),
		Experience: catalog.FormatExperience(e.BaseExperience),
		Types:      append([]string(nil), e.Types...),
	}
}

// ClickTarget identifies what a click on the overlay landed on.
type ClickTarget int

const (
	// TargetRoot is the overlay backdrop itself.
	TargetRoot ClickTarget = iota
	// TargetContent is anything inside the overlay's content box.
	TargetContent
)

func (t ClickTarget) String() string {
	if t == TargetRoot {
		return "root"
	}
	return "content"
}
