// Package statsui provides the Bubble Tea viewer for letter statistics.
package statsui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/letterstat/internal/model"
	"github.com/verte-zerg/letterstat/internal/stats"
)

const (
	tabOverview = iota
	tabLetters
	tabPairs
)

const topCount = 5

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea stats viewer.
type Model struct {
	report stats.Report

	tabs      []string
	activeTab int
	overview  viewport.Model
	tables    map[int]*table.Model
	byCount   bool

	width  int
	height int
}

// NewModel constructs a viewer over a finished report.
func NewModel(report stats.Report) *Model {
	m := &Model{
		report:   report,
		tabs:     []string{"Overview", "Letters", "Pairs"},
		overview: viewport.New(0, 0),
	}
	letters := buildTable(report.Letters, false)
	pairs := buildTable(report.Pairs, false)
	m.tables = map[int]*table.Model{
		tabLetters: &letters,
		tabPairs:   &pairs,
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l", "tab":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "s":
			m.byCount = !m.byCount
			m.tables[tabLetters].SetRows(tableRows(m.report.Letters, m.byCount))
			m.tables[tabPairs].SetRows(tableRows(m.report.Pairs, m.byCount))
			return m, nil
		case "g", "home":
			if t, ok := m.tables[m.activeTab]; ok {
				t.GotoTop()
			} else {
				m.overview.GotoTop()
			}
			return m, nil
		case "G", "end":
			if t, ok := m.tables[m.activeTab]; ok {
				t.GotoBottom()
			} else {
				m.overview.GotoBottom()
			}
			return m, nil
		default:
			var cmd tea.Cmd
			if t, ok := m.tables[m.activeTab]; ok {
				*t, cmd = t.Update(msg)
				return m, cmd
			}
			m.overview, cmd = m.overview.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(m.renderHelp(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := max(1, lipgloss.Height(activeNavStyle.Render("X")))
	headerHeight = tabsHeight + 1
	footerHeight = 1
	bodyHeight = max(1, m.height-headerHeight-footerHeight)
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.overview.Width = m.width
	m.overview.Height = bodyHeight
	m.overview.SetContent(renderOverview(m.report, m.width))
	for _, t := range m.tables {
		t.SetWidth(m.width)
		t.SetHeight(max(1, bodyHeight-1))
	}
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	if count == 0 {
		return
	}
	m.activeTab = (m.activeTab + delta + count) % count
	for tab, t := range m.tables {
		if tab == m.activeTab {
			t.Focus()
		} else {
			t.Blur()
		}
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	order := "key"
	if m.byCount {
		order = "count"
	}
	summary := fmt.Sprintf("Letters: %s  Pairs: %s  Order: %s", m.report.LettersPath, m.report.PairsPath, order)
	summary = truncateLine(summary, m.width)
	return padLines(m.renderTabs(), m.width) + "\n" + headerStyle.Render(summary)
}

func (m *Model) renderHelp() string {
	return headerStyle.Render("Nav: left/right  Scroll: up/down/pgup/pgdn  Sort: s  Quit: q")
}

func (m *Model) renderBody() string {
	t, ok := m.tables[m.activeTab]
	if !ok {
		return m.overview.View()
	}
	if len(t.Rows()) == 0 {
		return "No letters found."
	}
	return tableMutedStyle.Render(t.View())
}

func renderOverview(report stats.Report, width int) string {
	cards := []string{
		metricCard("Letters", humanize.Comma(int64(report.Letters.Total()))),
		metricCard("Distinct letters", humanize.Comma(int64(report.Letters.Len()))),
		metricCard("Pairs", humanize.Comma(int64(report.Pairs.Total()))),
		metricCard("Distinct pairs", humanize.Comma(int64(report.Pairs.Len()))),
	}
	var grid string
	if width < 80 {
		grid = strings.Join(cards, "\n")
	} else {
		grid = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}
	lines := []string{
		grid,
		"",
		"Most frequent letters: " + formatTop(stats.TopByCount(report.Letters, topCount)),
		"Most frequent pairs:   " + formatTop(stats.TopByCount(report.Pairs, topCount)),
	}
	return strings.Join(lines, "\n")
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func formatTop(top []model.LetterStat) string {
	if len(top) == 0 {
		return "-"
	}
	parts := make([]string, len(top))
	for i, e := range top {
		parts[i] = fmt.Sprintf("%s (%d)", e.Key, e.Count)
	}
	return strings.Join(parts, ", ")
}

func buildTable(c *stats.Collection, byCount bool) table.Model {
	columns := []table.Column{
		{Title: "Letter", Width: 8},
		{Title: "Count", Width: 10},
		{Title: "Share", Width: 8},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows(c, byCount)),
		table.WithHeight(1),
	)
	t.SetStyles(tableStyles())
	return t
}

func tableRows(c *stats.Collection, byCount bool) []table.Row {
	entries := c.Entries()
	if byCount {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Count > entries[j].Count
		})
	}
	total := c.Total()
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		share := 0.0
		if total > 0 {
			share = float64(e.Count) / float64(total) * 100
		}
		rows = append(rows, table.Row{
			e.Key,
			humanize.Comma(int64(e.Count)),
			fmt.Sprintf("%.1f%%", share),
		})
	}
	return rows
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}
