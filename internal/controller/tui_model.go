package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// generateModel drives the interactive progress view of a generation run.
type generateModel struct {
	total     int
	completed int
	current   string
	lines     []string
	summary   string
	finished  bool
	spinner   spinner.Model
	progress  progress.Model
	width     int
}

func newGenerateModel(total int) generateModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return generateModel{
		total:    total,
		spinner:  sp,
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

func (g generateModel) Init() tea.Cmd {
	return g.spinner.Tick
}

func (g generateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return g, tea.Quit
		}

	case tea.WindowSizeMsg:
		g.width = msg.Width

		g.progress.Width = msg.Width - 8
		if g.progress.Width > 60 {
			g.progress.Width = 60
		}

	case reportStartedMsg:
		g.current = msg.path

	case reportFinishedMsg:
		g.completed++
		g.current = ""
		g.lines = append(g.lines, renderResultLine(msg))

		if g.total > 0 {
			return g, g.progress.SetPercent(float64(g.completed) / float64(g.total))
		}

	case summaryMsg:
		g.finished = true
		g.summary = fmt.Sprintf("New config files created in %s", msg.resultDir)

		return g, tea.Quit

	case progress.FrameMsg:
		pm, cmd := g.progress.Update(msg)
		g.progress = pm.(progress.Model)

		return g, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		g.spinner, cmd = g.spinner.Update(msg)

		return g, cmd
	}

	return g, nil
}

func (g generateModel) View() string {
	var b strings.Builder

	for _, line := range g.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if g.finished {
		b.WriteString(summaryStyle.Render(g.summary))
		b.WriteString("\n")

		return b.String()
	}

	b.WriteString(g.progress.View())
	b.WriteString(fmt.Sprintf("  %d/%d\n", g.completed, g.total))

	if g.current != "" {
		b.WriteString(fmt.Sprintf("%s processing %s\n", g.spinner.View(), pathStyle.Render(g.current)))
	}

	return b.String()
}

func renderResultLine(msg reportFinishedMsg) string {
	status := countStyle.Render(fmt.Sprintf("%d function(s)", msg.functions))
	if msg.parseFailed {
		status = failStyle.Render("parse failed, empty filter")
	}

	return fmt.Sprintf("%s -> %s (%s)", pathStyle.Render(msg.path), msg.config, status)
}
