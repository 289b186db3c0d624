package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"StockDash/internal/model"
	"StockDash/internal/provider"
)

type stubFetcher struct {
	resp  *model.StockResponse
	err   error
	calls int
}

func (s *stubFetcher) FetchStockData(_ context.Context, _ model.StockRequest) (*model.StockResponse, error) {
	s.calls++
	return s.resp, s.err
}

func sampleResponse(n int) *model.StockResponse {
	points := make([]model.StockDataPoint, n)
	for i := range points {
		points[i] = model.StockDataPoint{
			Date: "2024-01-02", Open: 100, High: 105, Low: 99, Close: 104, Volume: 1000,
		}
	}
	return &model.StockResponse{
		Ticker: "AAPL",
		Data:   points,
		KPIs:   &model.KPIs{CurrentPrice: 104, DailyChange: 1.2, DailyChangePct: 1.1, AvgVolume: 1000},
	}
}

func newTestModel(stub *stubFetcher) Model {
	m := New(stub, time.Second, "")
	m.inputs[fieldTicker].SetValue("AAPL")
	m.inputs[fieldStart].SetValue("2024-01-01")
	m.inputs[fieldEnd].SetValue("2024-12-31")
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return sized.(Model)
}

func pressEnter(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model), cmd
}

func TestSubmitMissingFieldFailsFast(t *testing.T) {
	stub := &stubFetcher{resp: sampleResponse(3)}
	m := newTestModel(stub)
	m.inputs[fieldStart].SetValue("")

	m, cmd := pressEnter(t, m)
	if cmd != nil {
		t.Error("validation failure must not issue a request command")
	}
	if m.loading {
		t.Error("loading must stay false")
	}
	if m.errMsg != errFieldsRequired {
		t.Errorf("errMsg = %q", m.errMsg)
	}
	if stub.calls != 0 {
		t.Errorf("provider called %d times, want 0", stub.calls)
	}
}

func TestValidationErrorClearsExistingChart(t *testing.T) {
	stub := &stubFetcher{}
	m := newTestModel(stub)
	m, _ = pressEnter(t, m)
	updated, _ := m.Update(stockResultMsg{seq: m.reqSeq, resp: sampleResponse(3)})
	m = updated.(Model)
	if !m.manager.Bound() {
		t.Fatal("expected bound chart before the failed submit")
	}
	h := m.manager.Handle()

	m.inputs[fieldStart].SetValue("")
	m, cmd := pressEnter(t, m)

	if cmd != nil {
		t.Error("validation failure must not issue a request command")
	}
	if m.errMsg != errFieldsRequired {
		t.Errorf("errMsg = %q", m.errMsg)
	}
	if m.resp != nil || m.panel != nil {
		t.Error("validation error must clear the dataset")
	}
	if m.manager.Bound() {
		t.Error("validation error must leave the chart empty")
	}
	if !h.Disposed() {
		t.Error("previous handle must be disposed")
	}
}

func TestSubmitEntersLoadingAndBindsChart(t *testing.T) {
	stub := &stubFetcher{resp: sampleResponse(5)}
	m := newTestModel(stub)

	m, cmd := pressEnter(t, m)
	if !m.loading {
		t.Error("expected loading state after submit")
	}
	if cmd == nil {
		t.Fatal("expected a fetch command")
	}

	result := fetchCmd(stub, model.StockRequest{Ticker: "AAPL"}, m.reqSeq, time.Second)()
	updated, _ := m.Update(result)
	m = updated.(Model)

	if m.loading {
		t.Error("loading must clear on success")
	}
	if m.errMsg != "" {
		t.Errorf("unexpected error: %q", m.errMsg)
	}
	if m.resp == nil || len(m.resp.Data) != 5 {
		t.Fatal("expected dataset stored")
	}
	if !m.manager.Bound() {
		t.Fatal("expected bound chart")
	}
	if m.manager.Handle().Len() != 5 {
		t.Errorf("chart bound %d candles, want 5", m.manager.Handle().Len())
	}
	if m.panel == nil {
		t.Error("expected KPI panel")
	}
}

func TestServerErrorSurfacedVerbatim(t *testing.T) {
	stub := &stubFetcher{resp: sampleResponse(5)}
	m := newTestModel(stub)
	m, _ = pressEnter(t, m)

	updated, _ := m.Update(stockResultMsg{seq: m.reqSeq, err: &provider.ServerError{Detail: "Ticker not found"}})
	m = updated.(Model)

	if m.loading {
		t.Error("loading must clear on server error")
	}
	if m.errMsg != "Ticker not found" {
		t.Errorf("errMsg = %q, want verbatim detail", m.errMsg)
	}
	if m.resp != nil || m.panel != nil {
		t.Error("dataset must be cleared on error")
	}
	if m.manager.Bound() {
		t.Error("chart must transition to empty on error")
	}
}

func TestTransportErrorGenericMessage(t *testing.T) {
	stub := &stubFetcher{}
	m := newTestModel(stub)
	m, _ = pressEnter(t, m)

	updated, _ := m.Update(stockResultMsg{seq: m.reqSeq, err: errors.New("connection refused")})
	m = updated.(Model)

	if m.errMsg != errFetchFailed {
		t.Errorf("errMsg = %q, want generic message", m.errMsg)
	}
	if m.loading || m.manager.Bound() {
		t.Error("expected cleared loading and empty chart")
	}
}

func TestErrorClearsExistingChart(t *testing.T) {
	stub := &stubFetcher{}
	m := newTestModel(stub)
	m, _ = pressEnter(t, m)
	updated, _ := m.Update(stockResultMsg{seq: m.reqSeq, resp: sampleResponse(3)})
	m = updated.(Model)
	if !m.manager.Bound() {
		t.Fatal("expected bound chart")
	}
	h := m.manager.Handle()

	m, _ = pressEnter(t, m)
	updated, _ = m.Update(stockResultMsg{seq: m.reqSeq, err: &provider.ServerError{Detail: "boom"}})
	m = updated.(Model)

	if m.manager.Bound() {
		t.Error("no stale chart may survive an error")
	}
	if !h.Disposed() {
		t.Error("previous handle must be disposed")
	}
}

func TestStaleResultDropped(t *testing.T) {
	stub := &stubFetcher{}
	m := newTestModel(stub)

	m, _ = pressEnter(t, m) // seq 1
	m, _ = pressEnter(t, m) // seq 2 supersedes

	// The first request resolves late.
	updated, _ := m.Update(stockResultMsg{seq: 1, resp: sampleResponse(3)})
	m = updated.(Model)

	if !m.loading {
		t.Error("stale result must not clear the newer request's loading state")
	}
	if m.resp != nil || m.manager.Bound() {
		t.Error("stale result must not update the dataset")
	}

	// The current request resolves.
	updated, _ = m.Update(stockResultMsg{seq: 2, resp: sampleResponse(4)})
	m = updated.(Model)
	if m.loading || !m.manager.Bound() {
		t.Error("current result must apply")
	}
	if m.manager.Handle().Len() != 4 {
		t.Errorf("chart bound %d candles, want 4", m.manager.Handle().Len())
	}
}

func TestSuccessiveFetchesDisposeExactlyOnce(t *testing.T) {
	stub := &stubFetcher{}
	m := newTestModel(stub)

	m, _ = pressEnter(t, m)
	updated, _ := m.Update(stockResultMsg{seq: m.reqSeq, resp: sampleResponse(3)})
	m = updated.(Model)
	first := m.manager.Handle()

	m, _ = pressEnter(t, m)
	updated, _ = m.Update(stockResultMsg{seq: m.reqSeq, resp: sampleResponse(6)})
	m = updated.(Model)
	second := m.manager.Handle()

	if !first.Disposed() {
		t.Error("first handle must be disposed before the second chart exists")
	}
	if second == first || second.Disposed() {
		t.Error("expected exactly one live handle after the second fetch")
	}
}

func TestWindowResizeKeepsHandle(t *testing.T) {
	stub := &stubFetcher{}
	m := newTestModel(stub)
	m, _ = pressEnter(t, m)
	updated, _ := m.Update(stockResultMsg{seq: m.reqSeq, resp: sampleResponse(3)})
	m = updated.(Model)
	h := m.manager.Handle()

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	if m.manager.Handle() != h {
		t.Error("resize must not rebuild the chart handle")
	}
}

func TestViewRendersWithoutData(t *testing.T) {
	m := newTestModel(&stubFetcher{})
	if m.View() == "" {
		t.Error("expected form view before any fetch")
	}
}
