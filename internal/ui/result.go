package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/pokedex/internal/browser"
	"github.com/muurk/pokedex/internal/pokeapi"
	"github.com/muurk/pokedex/internal/urls"
)

// RenderDetail renders the full detail of an entry as a key/value box.
func RenderDetail(d browser.Detail, width int) string {
	width = max(width, MinTerminalWidth)

	sprite := d.ImageURL
	if sprite == "" {
		sprite = "none"
	}

	lines := []string{
		"",
		DetailTitleStyle.Render(fmt.Sprintf("%s  %s", d.Number, d.Name)),
		"",
		detailLine("Height", d.Height),
		detailLine("Weight", d.Weight),
		detailLine("Experience", d.Experience),
		detailLine("Types", RenderBadges(d.Types)),
		detailLine("Sprite", sprite),
		"",
	}
	return DetailBoxStyle(width).Render(strings.Join(lines, "\n"))
}

func detailLine(key, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, ResultKeyStyle.Render(key+":"), ResultValueStyle.Render(value))
}

// RenderError renders a failed command with a short reason and, for API
// failures, a hint about what to check.
func RenderError(err error, width int) string {
	width = max(width, MinTerminalWidth)

	label := "FAILED"
	if pokeapi.KindOf(err) == pokeapi.KindNotFound {
		label = "NOT FOUND"
	}
	short := pokeapi.GetShortErrorMessage(err)
	lines := []string{
		"",
		ErrorTitleStyle.Render(fmt.Sprintf("%s  %s  ─  %s", FailureMarker, label, short)),
	}
	if short != err.Error() {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(ErrorColor).Width(width-8).Render(err.Error()))
	}
	if hint := troubleshootingHint(err); hint != "" {
		lines = append(lines, "", HintStyle.Render(hint))
	}
	lines = append(lines, "")

	return ErrorBoxStyle(width).Render(strings.Join(lines, "\n"))
}

func troubleshootingHint(err error) string {
	switch {
	case pokeapi.IsNotFound(err):
		return "Check the spelling or try the catalog number instead."
	case pokeapi.IsNetworkError(err):
		return "Check your connection or the --api-url setting. Heavy use is throttled, see " + urls.FairUse
	case pokeapi.IsHTTPError(err):
		return "The API refused the request. Heavy use is throttled, see " + urls.FairUse
	case pokeapi.IsParseError(err):
		return "The server returned something unexpected. Is --api-url pointing at " + urls.APIDocs + "?"
	default:
		return ""
	}
}
