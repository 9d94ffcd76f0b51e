// Package tui provides the interactive terminal UI for browsing invoices,
// customers and time tracking entries.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RoyalZSoftware/management-cli/internal/invoice"
	"github.com/RoyalZSoftware/management-cli/internal/service"
)

// Tab represents a view tab
type Tab int

const (
	TabInvoices Tab = iota
	TabCustomers
	TabTime
)

var tabNames = []string{"Invoices", "Customers", "Time"}

// Model is the root TUI model
type Model struct {
	services *service.Services

	activeTab Tab
	cursor    [3]int
	width     int
	height    int

	styles Styles
	keys   KeyMap
}

// New creates a new TUI model
func New(services *service.Services) Model {
	return Model{
		services: services,
		styles:   DefaultStyles(),
		keys:     DefaultKeyMap(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// rowCount returns the number of rows in the active view
func (m Model) rowCount() int {
	switch m.activeTab {
	case TabInvoices:
		return len(m.services.Invoices.List(invoice.ListOptions{}))
	case TabCustomers:
		return len(m.services.Customers.All())
	default:
		return len(m.services.Tracking.Entries())
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.activeTab = Tab((int(m.activeTab) + 1) % len(tabNames))

		case key.Matches(msg, m.keys.PrevTab):
			m.activeTab = Tab((int(m.activeTab) - 1 + len(tabNames)) % len(tabNames))

		case key.Matches(msg, m.keys.Tab1):
			m.activeTab = TabInvoices

		case key.Matches(msg, m.keys.Tab2):
			m.activeTab = TabCustomers

		case key.Matches(msg, m.keys.Tab3):
			m.activeTab = TabTime

		case key.Matches(msg, m.keys.Up):
			if m.cursor[m.activeTab] > 0 {
				m.cursor[m.activeTab]--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor[m.activeTab] < m.rowCount()-1 {
				m.cursor[m.activeTab]++
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabBar())
	b.WriteString("\n\n")

	switch m.activeTab {
	case TabInvoices:
		b.WriteString(m.renderInvoices())
	case TabCustomers:
		b.WriteString(m.renderCustomers())
	case TabTime:
		b.WriteString(m.renderTime())
	}

	b.WriteString(m.styles.StatusBar.Render("tab: switch view · j/k: navigate · q: quit"))

	return m.styles.App.Render(b.String())
}

// renderTabBar renders the tab names with the active one highlighted
func (m Model) renderTabBar() string {
	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.activeTab {
			tabs = append(tabs, m.styles.TabActive.Render(name))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(name))
		}
	}
	return strings.Join(tabs, " ")
}

// renderRow styles a row depending on whether it is selected
func (m Model) renderRow(index int, line string) string {
	cursor := "  "
	style := m.styles.RowNormal
	if index == m.cursor[m.activeTab] {
		cursor = "> "
		style = m.styles.RowSelected
	}
	return style.Render(cursor+line) + "\n"
}

// renderInvoices renders the invoice list view
func (m Model) renderInvoices() string {
	invoices := m.services.Invoices.List(invoice.ListOptions{})
	if len(invoices) == 0 {
		return m.styles.RowMuted.Render("No invoices") + "\n\n"
	}

	var b strings.Builder
	for i, inv := range invoices {
		metrics := invoice.CalculateMetrics(inv)

		status := m.styles.StatusDraft.Render("draft")
		switch {
		case inv.Canceled:
			status = m.styles.RowMuted.Render("canceled")
		case inv.Finalized:
			status = m.styles.StatusDone.Render("finalized")
		}

		line := fmt.Sprintf("#%-4d %-30s %12s %s  %s",
			inv.Number, truncate(inv.Title, 30),
			metrics.SumWithTax.StringFixed(2), m.services.Config.Currency, status)
		b.WriteString(m.renderRow(i, line))
	}
	b.WriteString("\n")
	return b.String()
}

// renderCustomers renders the customer list view
func (m Model) renderCustomers() string {
	customers := m.services.Customers.All()
	if len(customers) == 0 {
		return m.styles.RowMuted.Render("No customers") + "\n\n"
	}

	var b strings.Builder
	for i, c := range customers {
		line := fmt.Sprintf("%-30s %s", truncate(c.Name, 30), c.Email)
		b.WriteString(m.renderRow(i, line))
	}
	b.WriteString("\n")
	return b.String()
}

// renderTime renders the time tracking view
func (m Model) renderTime() string {
	var b strings.Builder

	if active := m.services.Tracking.Active(); active != nil {
		running := fmt.Sprintf("Tracking: %s (since %s)", active.Description, active.Start.Format("15:04"))
		b.WriteString(m.styles.StatusWarning.Render(running))
		b.WriteString("\n\n")
	}

	entries := m.services.Tracking.Entries()
	if len(entries) == 0 {
		return b.String() + m.styles.RowMuted.Render("No time tracking entries") + "\n\n"
	}

	for i, entry := range entries {
		duration := "running"
		if entry.End != nil {
			duration = entry.End.Sub(entry.Start).Round(time.Minute).String()
		}
		line := fmt.Sprintf("%s  %-40s %s",
			entry.Start.Format("2006-01-02 15:04"), truncate(entry.Description, 40), duration)
		b.WriteString(m.renderRow(i, line))
	}
	b.WriteString("\n")
	return b.String()
}

// truncate shortens a string for column display
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

// Run starts the TUI application
func Run(services *service.Services) error {
	model := New(services)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
