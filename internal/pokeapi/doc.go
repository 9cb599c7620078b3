// Package pokeapi provides a read-only HTTP client for the public creature
// catalog API (https://pokeapi.co/api/v2).
//
// Four endpoints are consumed:
//
//	GET /pokemon?offset={o}&limit={l}   index page of {name, url} summaries
//	GET {detail-url}                    full record of one entry
//	GET /pokemon/{identifier}           single entry by id or exact name
//	GET /type/{category}                every entry tagged with a category
//
// Records are converted to catalog.Entry values on the way out, so callers
// never see the wire shapes.
//
// # Error Handling
//
// Every failure is an *APIError. Its Type distinguishes network, HTTP,
// parse and validation problems; Kind collapses them to the two outcomes a
// user can act on:
//
//	entry, err := client.Pokemon(ctx, "pikachu")
//	if pokeapi.IsNotFound(err) {
//	    // nothing by that name
//	}
//
// The client never retries and never caches; a failed call is reported once
// and the caller decides what to show.
package pokeapi
