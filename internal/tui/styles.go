package tui

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/pokedex/internal/version"
)

// Application branding constants
const (
	AppName   = "POKEDEX"
	SourceURL = "pokeapi.co"
)

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 48 // Minimum supported terminal width
	CardWidth        = 20 // Outer width of one card including border
	CardGap          = 1  // Columns between cards
	ModalWidth       = 44 // Outer width of the detail overlay
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#EE1515") // Red
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	ErrorColor     = lipgloss.Color("#FF5555") // Red
	WarningColor   = lipgloss.Color("#FFA500") // Orange

	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#3B4CCA") // Blue
	HighlightColor = lipgloss.Color("#FFDE00") // Yellow
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	MessageStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true).
			Padding(1, 2)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Width(CardWidth-2).
			Align(lipgloss.Center)

	SelectedCardStyle = CardStyle.
				BorderForeground(HighlightColor)

	CardNumberStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	CardNameStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(PrimaryColor).
			Padding(1, 2).
			Width(ModalWidth - 2)

	ModalKeyStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Width(12)

	ModalValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	CategoryStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(0, 1)

	SelectedCategoryStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true).
				Padding(0, 1)
)

// BuildHeaderContent creates header content with app name and API host
func BuildHeaderContent() string {
	left := TitleStyle.Render(AppName + " " + version.Version)
	right := SubtleStyle.Render(SourceURL)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// renderHeader draws the bordered title strip at the top of every screen.
func renderHeader(terminalWidth int) string {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1).
		Render(BuildHeaderContent())
}

// renderFooter draws the bordered help strip at the bottom of every screen.
func renderFooter(footerText string, terminalWidth int) string {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1).
		Render(SubtleStyle.Render(footerText))
}

// containerChrome is the number of rows the container adds around its
// content: header, footer and the outer border.
func containerChrome(footerText string, terminalWidth int) int {
	terminalWidth = max(terminalWidth, MinTerminalWidth)
	return lipgloss.Height(renderHeader(terminalWidth)) +
		lipgloss.Height(renderFooter(footerText, terminalWidth)) +
		lipgloss.NewStyle().Border(lipgloss.NormalBorder()).GetVerticalBorderSize()
}

// RenderApplicationContainer wraps a screen with the header, a footer with
// help text, and an outer border sized to the terminal.
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	if terminalWidth < MinTerminalWidth {
		terminalWidth = MinTerminalWidth
	}

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		renderHeader(terminalWidth),
		lipgloss.NewStyle().Width(terminalWidth-4).Render(content),
		renderFooter(footerText, terminalWidth),
	)

	outer := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		AlignVertical(lipgloss.Top)
	if terminalHeight > 2 {
		outer = outer.Height(terminalHeight - 2)
	}

	return outer.Render(inner)
}

// RenderModal centers modalContent on a dimmed full-screen backdrop.
func RenderModal(modalContent string, terminalWidth int, terminalHeight int) string {
	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
	)
}

// centerOffset mirrors lipgloss.Place's placement of a block of size inner
// inside outer at lipgloss.Center.
func centerOffset(outer, inner int) int {
	gap := outer - inner
	if gap <= 0 {
		return 0
	}
	return int(math.Round(float64(gap) * float64(lipgloss.Center)))
}
