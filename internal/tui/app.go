// Package tui provides the interactive Bubble Tea cost dashboard.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/wcvb13/claude-code-costs/internal/cli"
	"github.com/wcvb13/claude-code-costs/internal/model"
	"github.com/wcvb13/claude-code-costs/internal/pipeline"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var tabs = []string{"Overview", "Daily", "Sessions"}

const (
	tabOverview = iota
	tabDaily
	tabSessions
)

// App is the root Bubble Tea model. All aggregates are computed once at
// construction; the dashboard is a read-only view over them.
type App struct {
	overview model.OverviewStats
	days     []model.DailyBucket
	ranked   []model.SessionSummary
	projects []model.ProjectStats

	sessTable  table.Model
	dailyTable table.Model

	activeTab int
	width     int
	height    int
}

// NewApp builds the dashboard over an already-loaded session collection.
func NewApp(sessions []model.SessionSummary, now time.Time) App {
	days := pipeline.DailySeries(sessions, now)
	ranked := pipeline.Rank(sessions)

	sessRows := make([]table.Row, 0, len(ranked))
	for i, s := range ranked {
		sessRows = append(sessRows, table.Row{
			fmt.Sprintf("%d", i+1),
			cli.Truncate(s.Title, 44),
			cli.Truncate(s.Project, 16),
			fmt.Sprintf("%d", s.Turns),
			cli.FormatUSD(s.TotalCost, 6),
			cli.FormatDate(s.StartTime),
		})
	}
	sessTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 3},
			{Title: "Conversation", Width: 46},
			{Title: "Project", Width: 16},
			{Title: "Turns", Width: 6},
			{Title: "Cost", Width: 12},
			{Title: "Date", Width: 10},
		}),
		table.WithRows(sessRows),
		table.WithFocused(true),
	)

	dailyRows := make([]table.Row, 0, len(days))
	for _, d := range days {
		dailyRows = append(dailyRows, table.Row{
			d.DateKey(),
			fmt.Sprintf("%d", d.Count),
			cli.FormatUSD(d.Cost, 4),
		})
	}
	dailyTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: 12},
			{Title: "Sessions", Width: 9},
			{Title: "Cost", Width: 12},
		}),
		table.WithRows(dailyRows),
	)

	styleTable(&sessTable)
	styleTable(&dailyTable)

	return App{
		overview:   pipeline.Overview(sessions),
		days:       days,
		ranked:     ranked,
		projects:   pipeline.AggregateProjects(sessions),
		sessTable:  sessTable,
		dailyTable: dailyTable,
	}
}

func styleTable(t *table.Model) {
	s := table.DefaultStyles()
	s.Header = s.Header.
		Foreground(cli.ColorAccent).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(cli.ColorBorder).
		BorderBottom(true)
	s.Selected = s.Selected.
		Foreground(cli.ColorText).
		Background(cli.ColorBorder).
		Bold(false)
	t.SetStyles(s)
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		h := a.height - 8
		if h < 5 {
			h = 5
		}
		a.sessTable.SetHeight(h)
		a.dailyTable.SetHeight(h)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return a, tea.Quit
		case "tab", "right", "l":
			a.activeTab = (a.activeTab + 1) % len(tabs)
			return a, nil
		case "shift+tab", "left", "h":
			a.activeTab = (a.activeTab + len(tabs) - 1) % len(tabs)
			return a, nil
		case "1", "o":
			a.activeTab = tabOverview
			return a, nil
		case "2", "d":
			a.activeTab = tabDaily
			return a, nil
		case "3", "s":
			a.activeTab = tabSessions
			return a, nil
		}
	}

	var cmd tea.Cmd
	switch a.activeTab {
	case tabDaily:
		a.dailyTable, cmd = a.dailyTable.Update(msg)
	case tabSessions:
		a.sessTable, cmd = a.sessTable.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(a.renderTabBar())
	b.WriteString("\n\n")

	switch a.activeTab {
	case tabOverview:
		b.WriteString(a.renderOverview())
	case tabDaily:
		b.WriteString(a.dailyTable.View())
	case tabSessions:
		b.WriteString(a.sessTable.View())
	}

	b.WriteString("\n\n")
	b.WriteString(cli.Muted("  tab/1-3 switch · ↑/↓ scroll · q quit"))

	return b.String()
}

func (a App) renderTabBar() string {
	activeStyle := lipgloss.NewStyle().Foreground(cli.ColorAccent).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(cli.ColorTextMuted)

	parts := make([]string, 0, len(tabs))
	for i, name := range tabs {
		if i == a.activeTab {
			parts = append(parts, activeStyle.Render(name))
		} else {
			parts = append(parts, inactiveStyle.Render(name))
		}
	}
	return "  " + strings.Join(parts, cli.Muted("  ·  "))
}

func (a App) renderOverview() string {
	labelStyle := lipgloss.NewStyle().Foreground(cli.ColorTextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(cli.ColorText).Bold(true)
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cli.ColorBorder).
		Padding(0, 2)

	card := func(label, value string) string {
		return cardStyle.Render(labelStyle.Render(label) + "\n" + valueStyle.Render(value))
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total cost", cli.FormatUSD(a.overview.TotalCost, 4)),
		" ",
		card("Sessions", cli.FormatNumber(int64(a.overview.TotalSessions))),
		" ",
		card("Avg/conversation", cli.FormatUSD(a.overview.AvgCostPerConvo, 4)),
	)

	costs := make([]float64, len(a.days))
	for i, d := range a.days {
		costs[i] = d.Cost
	}

	var b strings.Builder
	b.WriteString(cards)
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("  Last 30 days"))
	b.WriteString("\n  ")
	b.WriteString(lipgloss.NewStyle().Foreground(cli.ColorAccent).Render(cli.RenderSparkline(costs)))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("  Top projects"))
	b.WriteString("\n")
	shown := a.projects
	if len(shown) > 5 {
		shown = shown[:5]
	}
	for _, p := range shown {
		b.WriteString(fmt.Sprintf("  %-24s %s\n",
			cli.Truncate(p.Project, 24),
			valueStyle.Render(cli.FormatCost(p.Cost)),
		))
	}
	if len(shown) == 0 {
		b.WriteString(cli.Muted("  no cost-bearing sessions\n"))
	}

	return b.String()
}
