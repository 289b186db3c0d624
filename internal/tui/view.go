package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"StockDash/internal/kpi"
	"StockDash/internal/series"
)

// headerRows is the fixed vertical space above the chart: title, blank
// line, three form rows, status line, and the bordered KPI strip
// (border top, label, value, border bottom).
const headerRows = 10

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(series.DownColor))
	upTrend    = lipgloss.NewStyle().Foreground(lipgloss.Color(series.UpColor))
	downTrend  = lipgloss.NewStyle().Foreground(lipgloss.Color(series.DownColor))
	kpiBox     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1)
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	title := "StockDash"
	if m.resp != nil {
		title = fmt.Sprintf("StockDash - %s", m.resp.Ticker)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Ticker "))
	b.WriteString(m.inputs[fieldTicker].View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Start  "))
	b.WriteString(m.inputs[fieldStart].View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("End    "))
	b.WriteString(m.inputs[fieldEnd].View())
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(m.spin.View())
		b.WriteString(" fetching stock data...")
	case m.errMsg != "":
		b.WriteString(errStyle.Render(m.errMsg))
	default:
		b.WriteString(labelStyle.Render("enter to fetch, tab to move, esc to quit"))
	}
	b.WriteString("\n")

	if m.panel != nil {
		b.WriteString(panelView(m.panel))
		b.WriteString("\n")
	}

	if m.manager.Bound() {
		b.WriteString(m.manager.View())
	}

	return b.String()
}

// panelView lays the KPI fields out as one horizontal strip of boxes.
func panelView(p *kpi.Panel) string {
	valueStyle := downTrend
	if p.Trend == kpi.TrendPositive {
		valueStyle = upTrend
	}

	boxes := make([]string, 0, 6)
	for _, f := range p.Rows() {
		vs := lipgloss.NewStyle()
		if f.Label == "Daily Change" {
			vs = valueStyle
		}
		boxes = append(boxes, kpiBox.Render(
			labelStyle.Render(f.Label)+"\n"+vs.Render(f.Value)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}
