// Package browser implements the catalog browser's controllers: loading
// pages, rendering cards, the detail overlay, debounced search, type
// filtering and "load more" pagination.
//
// Controllers never draw anything. They mutate a single ViewState owned by
// the Browser and push results through the View interface, which the host
// (the terminal UI, or the plain printer used by CLI commands) implements.
//
// # Operations and generations
//
// Search execution, type filtering and resetting to the default page each
// start a new generation: the previous generation's context is cancelled
// and any late result it still produces is dropped instead of rendered.
// LoadMore joins the current generation, so repeated pages keep appending
// to the same container.
//
// Detail records are resolved one request at a time, in list order, and
// each card is rendered as soon as its record arrives.
//
// # Usage
//
//	b := browser.New(pokeapi.NewClient(""), view, browser.DefaultOptions())
//	defer b.Close()
//
//	b.Start()            // default page
//	b.Search("pikachu")  // debounced
//	b.FilterByType("fire")
//	b.LoadMore()
//
// All exported methods block until their network work is finished (Search
// only schedules), so hosts call them off their event loop.
package browser
