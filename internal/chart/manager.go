package chart

import "StockDash/internal/model"

// Manager holds at most one live Handle for one viewport. Any dataset
// change disposes the current handle before a replacement is built, so
// no handle ever outlives the data it was constructed from.
type Manager struct {
	handle *Handle
	width  int
	height int
}

// NewManager creates a manager for a viewport of the given size. It
// starts in the empty state with no live handle.
func NewManager(width, height int) *Manager {
	return &Manager{width: width, height: height}
}

// SetData replaces the bound dataset. The previous handle, if any, is
// disposed first; a nil or empty response leaves the manager empty.
func (m *Manager) SetData(resp *model.StockResponse) {
	m.dispose()
	if resp == nil || len(resp.Data) == 0 {
		return
	}
	m.handle = newHandle(resp, m.width, m.height)
}

// Resize adjusts the viewport of the live handle in place. No series
// rebuild happens on resize.
func (m *Manager) Resize(width, height int) {
	m.width = width
	m.height = height
	if m.handle != nil {
		m.handle.SetSize(width, height)
	}
}

// Bound reports whether a live handle exists.
func (m *Manager) Bound() bool { return m.handle != nil }

// Handle returns the live handle, or nil when empty.
func (m *Manager) Handle() *Handle { return m.handle }

// Close disposes the live handle unconditionally. Idempotent.
func (m *Manager) Close() { m.dispose() }

// View renders the live chart, or nothing when empty.
func (m *Manager) View() string {
	if m.handle == nil {
		return ""
	}
	return m.handle.View()
}

func (m *Manager) dispose() {
	if m.handle != nil {
		m.handle.Dispose()
		m.handle = nil
	}
}
