// Package urls provides centralized constants for the documentation URLs
// shown in help text and error hints.
//
// Usage:
//
//	import "github.com/muurk/pokedex/internal/urls"
//
//	fmt.Printf("For more information, see: %s\n", urls.APIDocs)
package urls
