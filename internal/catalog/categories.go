package catalog

import "strings"

// Categories lists the selectable type tags in display order.
var Categories = []string{
	"normal",
	"fire",
	"water",
	"grass",
	"electric",
	"ice",
	"fighting",
	"poison",
	"ground",
	"flying",
	"psychic",
	"bug",
	"rock",
	"ghost",
	"dragon",
	"dark",
	"steel",
	"fairy",
}

// IsCategory reports whether name is one of Categories (case-insensitive).
func IsCategory(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
