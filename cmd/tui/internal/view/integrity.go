package view

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/catasto/internal/integrity"
	"github.com/MrJamesThe3rd/catasto/internal/ledger"
)

const integrityTimeout = time.Minute

type IntegrityModel struct {
	CommonModel
	ledger   *ledger.Ledger
	verifier *integrity.Verifier

	comuni  comuneCycle
	spinner spinner.Model
	table   table.Model
	report  *integrity.Report

	running bool
	err     error
}

func NewIntegrityModel(l *ledger.Ledger, v *integrity.Verifier) IntegrityModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return IntegrityModel{
		ledger:   l,
		verifier: v,
		spinner:  s,
		table: newTable([]table.Column{
			{Title: "Kind", Width: 34},
			{Title: "ID", Width: 6},
			{Title: "Message", Width: 60},
		}),
		running: true,
	}
}

func (m IntegrityModel) Title() string { return "Integrity Check" }

func (m IntegrityModel) ShortHelp() string {
	return "Esc: back | c: comune | r: run again"
}

func (m IntegrityModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadComuniCmd(m.ledger))
}

func (m IntegrityModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case comuniLoadedMsg:
		if msg.err != nil {
			m.running = false
			m.err = msg.err

			return m, nil
		}

		m.comuni = newComuneCycle(msg.comuni, true)

		return m, m.runCmd()

	case reportMsg:
		m.running = false
		m.err = msg.err
		m.report = msg.report
		m.refreshTable()

		return m, nil

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "c":
			if m.running {
				return m, nil
			}

			m.comuni.next()

			return m.rerun()
		case "r":
			if m.running {
				return m, nil
			}

			return m.rerun()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m IntegrityModel) rerun() (tea.Model, tea.Cmd) {
	m.running = true
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.runCmd())
}

func (m IntegrityModel) View() string {
	header := fmt.Sprintf("[c] Comune: %s", activeStyle(m.comuni.label()))

	if m.running {
		return lipgloss.NewStyle().Padding(2).Render(header + "\n\n" + m.spinner.View() + " Checking ledger...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(header + "\n\n" + errorStyle(fmt.Sprintf("Error: %v", m.err)))
	}

	summary := lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render("No findings.")
	if !m.report.OK() {
		counts := m.report.Counts()
		summary = ""

		for _, k := range integrity.Kinds {
			if counts[k] > 0 {
				summary += fmt.Sprintf("%s: %d  ", k, counts[k])
			}
		}
	}

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		fmt.Sprintf("Checked at %s", m.report.CheckedAt.Format(time.DateTime)),
		lipgloss.NewStyle().PaddingBottom(1).Render(summary),
		boxed(m.table.View()),
	))
}

func (m *IntegrityModel) refreshTable() {
	if m.report == nil {
		m.table.SetRows(nil)
		return
	}

	rows := make([]table.Row, 0, len(m.report.Findings))
	for _, f := range m.report.Findings {
		rows = append(rows, table.Row{string(f.Kind), fmt.Sprint(f.EntityID), f.Message})
	}

	m.table.SetRows(rows)
}

type reportMsg struct {
	report *integrity.Report
	err    error
}

func (m IntegrityModel) runCmd() tea.Cmd {
	comuneID := m.comuni.selectedID()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), integrityTimeout)
		defer cancel()

		report, err := m.verifier.RunCheck(ctx, comuneID)

		return reportMsg{report: report, err: err}
	}
}
