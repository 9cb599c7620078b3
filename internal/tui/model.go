package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/pokedex/internal/browser"
	"github.com/muurk/pokedex/internal/catalog"
	"github.com/muurk/pokedex/internal/ui"
)

// Rows taken by everything except the card grid: outer border, header,
// footer, search box, category bar, spacer and status line.
type focusArea int

const (
	focusGrid focusArea = iota
	focusSearch
)

// Model is the browser screen. It mirrors what the controllers emit
// through ProgramView and turns key presses into controller calls.
//
// Update never calls into the Browser directly: controller calls hold the
// browser lock while emitting messages that only this event loop drains,
// so they always run inside a tea.Cmd.
type Model struct {
	browser    *browser.Browser
	categories []string

	Keys     keyMap
	Help     help.Model
	Search   textinput.Model
	Spinner  spinner.Model
	Viewport viewport.Model

	// Mirrored container state
	Cards           []browser.Card
	Notices         []string
	Loading         bool
	LoadMoreVisible bool
	Detail          *browser.Detail

	// Local UI state
	Selected int
	Category int // index into categories, 0 is "all"
	focus    focusArea
	rowTops  []int

	Width  int
	Height int
}

// NewModel creates the browser screen driving b.
func NewModel(b *browser.Browser) Model {
	input := textinput.New()
	input.Placeholder = "Search by name or number"
	input.Prompt = "🔍 "
	input.CharLimit = 64
	input.Width = 32

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return Model{
		browser:    b,
		categories: append([]string{""}, catalog.Categories...),
		Keys:       newKeyMap(),
		Help:       help.New(),
		Search:     input,
		Spinner:    s,
		Viewport:   viewport.New(MinTerminalWidth-4, 10),
	}
}

// Init starts the spinner and the initial page load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Spinner.Tick, call(m.browser.Start))
}

// call wraps a controller call in a command that produces no message.
func call(fn func()) tea.Cmd {
	return func() tea.Msg {
		fn()
		return nil
	}
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		m.resize()
		return m, nil

	case clearMsg:
		m.Cards = nil
		m.Notices = nil
		m.Selected = 0
		m.refresh()
		m.Viewport.GotoTop()
		return m, nil

	case cardMsg:
		m.Cards = append(m.Cards, msg.card)
		m.refresh()
		return m, nil

	case noticeMsg:
		m.Notices = append(m.Notices, msg.text)
		m.refresh()
		return m, nil

	case loadingMsg:
		m.Loading = msg.loading
		return m, nil

	case loadMoreMsg:
		m.LoadMoreVisible = msg.visible
		return m, nil

	case overlayMsg:
		m.Detail = msg.detail
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		if m.Detail != nil {
			if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
				return m, nil
			}
			box := renderDetail(*m.Detail)
			target := overlayHit(m.Width, m.Height, lipgloss.Width(box), lipgloss.Height(box), msg.X, msg.Y)
			overlay := m.browser.Overlay()
			return m, call(func() { overlay.Click(target) })
		}
		var cmd tea.Cmd
		m.Viewport, cmd = m.Viewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.Keys.ForceQuit) {
		return m, tea.Quit
	}

	// The overlay swallows everything except its own close keys.
	if m.Detail != nil {
		if key.Matches(msg, m.Keys.Close) {
			return m, call(m.browser.Overlay().Close)
		}
		return m, nil
	}

	if m.focus == focusSearch {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		m.resize()
	case key.Matches(msg, m.Keys.Search):
		m.focus = focusSearch
		return m, m.Search.Focus()
	case key.Matches(msg, m.Keys.NextType):
		return m.cycleCategory(1)
	case key.Matches(msg, m.Keys.PrevType):
		return m.cycleCategory(-1)
	case key.Matches(msg, m.Keys.Up):
		m.moveSelection(-m.columns())
	case key.Matches(msg, m.Keys.Down):
		m.moveSelection(m.columns())
	case key.Matches(msg, m.Keys.Left):
		m.moveSelection(-1)
	case key.Matches(msg, m.Keys.Right):
		m.moveSelection(1)
	case key.Matches(msg, m.Keys.Open):
		if m.Selected < len(m.Cards) && m.Cards[m.Selected].Select != nil {
			return m, call(m.Cards[m.Selected].Select)
		}
	case key.Matches(msg, m.Keys.More):
		if m.LoadMoreVisible {
			return m, call(m.browser.LoadMore)
		}
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.NextType):
		return m.cycleCategory(1)
	case key.Matches(msg, m.Keys.PrevType):
		return m.cycleCategory(-1)
	case key.Matches(msg, m.Keys.Blur):
		m.Search.Blur()
		m.focus = focusGrid
		return m, nil
	}

	before := m.Search.Value()
	var cmd tea.Cmd
	m.Search, cmd = m.Search.Update(msg)
	value := m.Search.Value()
	if value == before {
		return m, cmd
	}
	b := m.browser
	return m, tea.Batch(cmd, call(func() { b.Search(value) }))
}

func (m Model) cycleCategory(delta int) (tea.Model, tea.Cmd) {
	n := len(m.categories)
	m.Category = ((m.Category+delta)%n + n) % n
	category := m.categories[m.Category]
	b := m.browser
	return m, call(func() { b.FilterByType(category) })
}

func (m *Model) moveSelection(delta int) {
	if len(m.Cards) == 0 {
		return
	}
	m.Selected = max(0, min(len(m.Cards)-1, m.Selected+delta))
	m.refresh()
	m.scrollToSelection()
}

// columns returns how many cards fit side by side.
func (m Model) columns() int {
	width := max(m.Width, MinTerminalWidth) - 4
	return max(1, (width+CardGap)/(CardWidth+CardGap))
}

func (m *Model) resize() {
	m.Viewport.Width = max(m.Width, MinTerminalWidth) - 4
	m.Viewport.Height = max(3, m.Height-m.chromeHeight())
	m.refresh()
}

// chromeHeight measures every row of the screen that is not the grid.
func (m Model) chromeHeight() int {
	toolbar := lipgloss.JoinVertical(
		lipgloss.Left,
		m.Search.View(),
		m.renderCategories(),
		"",
	)
	return lipgloss.Height(toolbar) +
		lipgloss.Height(m.renderStatus()) +
		containerChrome(m.Help.View(m.Keys), m.Width)
}

// refresh re-renders the grid into the viewport.
func (m *Model) refresh() {
	content, tops := renderGrid(m.Cards, m.Notices, m.Selected, m.columns())
	m.rowTops = tops
	m.Viewport.SetContent(content)
}

func (m *Model) scrollToSelection() {
	row := m.Selected / m.columns()
	if row >= len(m.rowTops) {
		return
	}
	top := m.rowTops[row]
	bottom := m.Viewport.TotalLineCount()
	if row+1 < len(m.rowTops) {
		bottom = m.rowTops[row+1]
	}
	switch {
	case top < m.Viewport.YOffset:
		m.Viewport.SetYOffset(top)
	case bottom > m.Viewport.YOffset+m.Viewport.Height:
		m.Viewport.SetYOffset(bottom - m.Viewport.Height)
	}
}

// View renders the screen
func (m Model) View() string {
	if m.Width == 0 {
		return "Loading..."
	}
	if m.Detail != nil {
		return RenderModal(renderDetail(*m.Detail), m.Width, m.Height)
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.Search.View(),
		m.renderCategories(),
		"",
		m.Viewport.View(),
		m.renderStatus(),
	)
	return RenderApplicationContainer(content, m.Help.View(m.Keys), m.Width, m.Height)
}

func (m Model) renderStatus() string {
	var parts []string
	if m.Loading {
		parts = append(parts, m.Spinner.View()+" Loading...")
	}
	if m.LoadMoreVisible {
		parts = append(parts, SubtleStyle.Render("m: load more"))
	}
	return strings.Join(parts, "   ")
}

// renderCategories renders the category bar, scrolled so the current
// category is visible.
func (m Model) renderCategories() string {
	width := max(m.Width, MinTerminalWidth) - 8
	start := max(0, m.Category-2)

	var out []string
	used := 0
	for i := start; i < len(m.categories); i++ {
		label := m.categories[i]
		if label == "" {
			label = "all"
		}
		style := CategoryStyle
		if i == m.Category {
			style = SelectedCategoryStyle
		}
		cell := style.Render(label)
		if used+lipgloss.Width(cell) > width {
			break
		}
		used += lipgloss.Width(cell)
		out = append(out, cell)
	}

	prefix := "  "
	if start > 0 {
		prefix = "‹ "
	}
	return prefix + strings.Join(out, "")
}

func renderCard(card browser.Card, selected bool) string {
	style := CardStyle
	if selected {
		style = SelectedCardStyle
	}
	return style.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		CardNumberStyle.Render(card.Number),
		CardNameStyle.Render(card.Name),
		ui.RenderBadges(card.Types),
	))
}

// renderGrid lays cards out in rows followed by any notices. It also
// returns the first line of each card row.
func renderGrid(cards []browser.Card, notices []string, selected, columns int) (string, []int) {
	var rows []string
	var tops []int
	line := 0
	for start := 0; start < len(cards); start += columns {
		end := min(start+columns, len(cards))
		cells := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, strings.Repeat(" ", CardGap))
			}
			cells = append(cells, renderCard(cards[i], i == selected))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		tops = append(tops, line)
		line += lipgloss.Height(row)
		rows = append(rows, row)
	}
	for _, n := range notices {
		rows = append(rows, MessageStyle.Render(n))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...), tops
}

func renderDetail(d browser.Detail) string {
	field := func(k, v string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, ModalKeyStyle.Render(k), ModalValueStyle.Render(v))
	}
	sprite := d.ImageURL
	if sprite == "" {
		sprite = "none"
	}
	return ModalStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Render(d.Number+" "+d.Name),
		"",
		field("Height", d.Height),
		field("Weight", d.Weight),
		field("Experience", d.Experience),
		field("Types", ui.RenderBadges(d.Types)),
		field("Sprite", sprite),
		"",
		SubtleStyle.Render("esc/x close · click outside to dismiss"),
	))
}

// overlayHit classifies a click at (x, y) against an overlay box of
// boxWidth×boxHeight centered on a width×height screen.
func overlayHit(width, height, boxWidth, boxHeight, x, y int) browser.ClickTarget {
	left := centerOffset(width, boxWidth)
	top := centerOffset(height, boxHeight)
	if x >= left && x < left+boxWidth && y >= top && y < top+boxHeight {
		return browser.TargetContent
	}
	return browser.TargetRoot
}
