package pokeapi

import (
	"sort"

	"github.com/muurk/pokedex/internal/catalog"
)

// pageResponse is the body of GET /pokemon?offset=&limit=
type pageResponse struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []namedResource `json:"results"`
}

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// pokemonRecord is the subset of a full entry record that is displayed.
type pokemonRecord struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Height         int        `json:"height"`
	Weight         int        `json:"weight"`
	BaseExperience *int       `json:"base_experience"`
	Sprites        sprites    `json:"sprites"`
	Types          []typeSlot `json:"types"`
}

type sprites struct {
	FrontDefault *string `json:"front_default"`
}

type typeSlot struct {
	Slot int           `json:"slot"`
	Type namedResource `json:"type"`
}

// typeResponse is the body of GET /type/{category}
type typeResponse struct {
	ID      int          `json:"id"`
	Name    string       `json:"name"`
	Pokemon []typeMember `json:"pokemon"`
}

type typeMember struct {
	Slot    int           `json:"slot"`
	Pokemon namedResource `json:"pokemon"`
}

func (r pokemonRecord) toEntry() catalog.Entry {
	slots := append([]typeSlot(nil), r.Types...)
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Slot < slots[j].Slot })

	e := catalog.Entry{
		ID:     r.ID,
		Name:   r.Name,
		Height: r.Height,
		Weight: r.Weight,
		Types:  make([]string, 0, len(slots)),
	}
	for _, t := range slots {
		e.Types = append(e.Types, t.Type.Name)
	}
	if r.Sprites.FrontDefault != nil {
		e.ImageURL = *r.Sprites.FrontDefault
	}
	if r.BaseExperience != nil {
		e.BaseExperience = *r.BaseExperience
	}
	return e
}

func toSummaries(resources []namedResource) []catalog.Summary {
	out := make([]catalog.Summary, 0, len(resources))
	for _, r := range resources {
		out = append(out, catalog.Summary{Name: r.Name, URL: r.URL})
	}
	return out
}
