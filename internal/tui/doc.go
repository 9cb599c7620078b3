// Package tui is the interactive terminal host for the catalog browser.
//
// The controllers in package browser never draw anything themselves; they
// call a browser.View. ProgramView implements that interface by forwarding
// each call to a running Bubble Tea program as a message, so the card grid,
// status line and detail overlay only ever change on the program's event
// loop.
//
// # Layout
//
// The screen follows the application container used throughout: a header
// with the app name, a content area and a footer with context help. The
// content area holds the search box, the category bar, a scrolling card
// grid (bubbles/viewport) and a status line with a spinner while loading.
// The detail overlay is drawn centered over a dimmed backdrop; a left
// click outside its box closes it, a click inside does not.
//
// # Usage
//
//	err := tui.Run(client, browser.DefaultOptions())
//
// # Keys
//
//   - "/" focuses the search box; typing searches after a short pause
//   - tab / shift+tab cycle the category filter through "all" and each type
//   - arrows or hjkl move the selection, enter opens the detail overlay
//   - m loads the next page when that control is shown
//   - esc or x closes the overlay, q quits
package tui
