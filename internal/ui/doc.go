// Package ui renders the non-interactive pokedex commands.
//
// Printer implements browser.View by streaming one styled line per card to
// a writer, so the same controllers that drive the interactive browser
// also drive "pokedex list", "pokedex show" and "pokedex type". Detail
// views and errors are drawn as boxes with lipgloss, sized to the terminal
// width reported by golang.org/x/term.
//
// # Usage Pattern
//
//	printer := ui.NewPrinter(os.Stdout)
//	fmt.Println(ui.NewHeader("List", "pokedex list", ui.Param{Key: "Offset", Value: "0"}))
//	b := browser.New(client, printer, opts)
//	b.LoadPage(catalog.PageWindow{Offset: 0, Limit: 20})
//
// # Logging Integration
//
// Logging is controlled via POKEDEX_LOG_LEVEL or --log-level. When unset,
// zap logging is silent so only the curated output is shown.
package ui
