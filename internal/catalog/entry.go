package catalog

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Entry is one resolved catalog record.
type Entry struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	ImageURL       string   `json:"image_url,omitempty"`
	Types          []string `json:"types"`
	Height         int      `json:"height"` // decimeters
	Weight         int      `json:"weight"` // hectograms
	BaseExperience int      `json:"base_experience"`
}

// Summary is an unresolved reference to an entry, as returned by index
// pages and category member lists.
type Summary struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Number returns the padded identifier, e.g. "#025".
func (e Entry) Number() string {
	return FormatNumber(e.ID)
}

// Title returns the capitalized display name.
func (e Entry) Title() string {
	return DisplayName(e.Name)
}

// FormatNumber renders an identifier zero-padded to three digits.
// Identifiers wider than three digits are shown in full.
func FormatNumber(id int) string {
	return fmt.Sprintf("#%03d", id)
}

// DisplayName upper-cases the first letter of name and leaves the rest alone.
func DisplayName(name string) string {
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + name[size:]
}

// FormatHeight converts decimeters to meters with one decimal.
func FormatHeight(decimeters int) string {
	return fmt.Sprintf("%.1f m", float64(decimeters)/10)
}

// FormatWeight converts hectograms to kilograms with one decimal.
func FormatWeight(hectograms int) string {
	return fmt.Sprintf("%.1f kg", float64(hectograms)/10)
}

// FormatExperience renders the base experience scalar as an integer.
func FormatExperience(xp int) string {
	return fmt.Sprintf("%d XP", xp)
}
