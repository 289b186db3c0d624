// Package tui implements the interactive dashboard: the request form,
// the KPI panel, and the candlestick chart.
//
// All state lives inside the bubbletea event loop; the only suspension
// point is the provider fetch, which runs as a tea.Cmd and reports back
// with a stockResultMsg.
package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"StockDash/internal/chart"
	"StockDash/internal/kpi"
	"StockDash/internal/model"
	"StockDash/internal/provider"
)

// StockFetcher is the provider dependency of the dashboard.
type StockFetcher interface {
	FetchStockData(ctx context.Context, req model.StockRequest) (*model.StockResponse, error)
}

const (
	fieldTicker = iota
	fieldStart
	fieldEnd
	fieldCount
)

// errFieldsRequired fails a submit before any request is issued.
const errFieldsRequired = "ticker, start date and end date are required"

// errFetchFailed is the generic transport-failure message; raw
// transport diagnostics are never shown to the user.
const errFetchFailed = "failed to fetch stock data, please try again"

// stockResultMsg carries the outcome of one fetch back into the event
// loop. seq ties it to the submit that issued it.
type stockResultMsg struct {
	seq  int
	resp *model.StockResponse
	err  error
}

// Model is the bubbletea model for the dashboard.
type Model struct {
	client  StockFetcher
	timeout time.Duration

	inputs [fieldCount]textinput.Model
	focus  int
	spin   spinner.Model

	manager *chart.Manager
	resp    *model.StockResponse
	panel   *kpi.Panel

	errMsg  string
	loading bool

	// reqSeq increases on every submit; results carrying an older
	// sequence are stale and dropped, so last-submitted wins.
	reqSeq int

	width  int
	height int
}

// New creates the dashboard model.
func New(client StockFetcher, timeout time.Duration, defaultTicker string) Model {
	m := Model{
		client:  client,
		timeout: timeout,
		manager: chart.NewManager(0, 0),
		spin:    spinner.New(spinner.WithSpinner(spinner.Dot)),
	}

	ticker := textinput.New()
	ticker.Placeholder = "AAPL"
	ticker.CharLimit = 10
	ticker.Width = 12
	ticker.SetValue(defaultTicker)
	ticker.Focus()

	start := textinput.New()
	start.Placeholder = "2024-01-01"
	start.CharLimit = 10
	start.Width = 12

	end := textinput.New()
	end.Placeholder = "2024-12-31"
	end.CharLimit = 10
	end.Width = 12

	m.inputs[fieldTicker] = ticker
	m.inputs[fieldStart] = start
	m.inputs[fieldEnd] = end
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Resize adjusts the live chart only; no series rebuild.
		m.manager.Resize(m.chartWidth(), m.chartHeight())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.manager.Close()
			return m, tea.Quit
		case "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		case "enter":
			return m.submit()
		}

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case stockResultMsg:
		if msg.seq != m.reqSeq {
			// A newer submit superseded this request.
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = userMessage(msg.err)
			m.resp = nil
			m.panel = nil
			m.manager.SetData(nil)
			return m, nil
		}
		m.errMsg = ""
		m.resp = msg.resp
		m.panel = kpi.Build(msg.resp.KPIs)
		m.manager.SetData(msg.resp)
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// submit validates the form and issues the fetch. Validation failure
// never reaches the network.
func (m Model) submit() (tea.Model, tea.Cmd) {
	ticker := strings.TrimSpace(m.inputs[fieldTicker].Value())
	start := strings.TrimSpace(m.inputs[fieldStart].Value())
	end := strings.TrimSpace(m.inputs[fieldEnd].Value())

	if ticker == "" || start == "" || end == "" {
		// Validation failures clear the dataset like any other error:
		// no stale chart may sit behind the message.
		m.errMsg = errFieldsRequired
		m.resp = nil
		m.panel = nil
		m.manager.SetData(nil)
		return m, nil
	}

	m.loading = true
	m.errMsg = ""
	m.reqSeq++

	req := model.StockRequest{Ticker: ticker, StartDate: start, EndDate: end}
	return m, tea.Batch(m.spin.Tick, fetchCmd(m.client, req, m.reqSeq, m.timeout))
}

func fetchCmd(client StockFetcher, req model.StockRequest, seq int, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		resp, err := client.FetchStockData(ctx, req)
		return stockResultMsg{seq: seq, resp: resp, err: err}
	}
}

// userMessage maps a fetch failure to what the user sees: provider
// detail verbatim, anything else the generic message.
func userMessage(err error) string {
	var se *provider.ServerError
	if errors.As(err, &se) {
		return se.Detail
	}
	return errFetchFailed
}

func (m Model) chartWidth() int {
	w := m.width - 2
	if w < 0 {
		w = 0
	}
	return w
}

func (m Model) chartHeight() int {
	h := m.height - headerRows
	if h < 0 {
		h = 0
	}
	return h
}
