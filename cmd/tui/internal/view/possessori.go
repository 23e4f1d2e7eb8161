package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
	"github.com/MrJamesThe3rd/catasto/internal/ledger"
)

type PossessoriModel struct {
	CommonModel
	ledger *ledger.Ledger

	comuni     comuneCycle
	search     textinput.Model
	searching  bool
	table      table.Model
	possessori []*catasto.Possessore

	loading bool
	err     error
	status  string
}

func NewPossessoriModel(l *ledger.Ledger) PossessoriModel {
	ti := textinput.New()
	ti.Placeholder = "cognome o nome"
	ti.CharLimit = 120
	ti.Width = 40

	return PossessoriModel{
		ledger: l,
		search: ti,
		table: newTable([]table.Column{
			{Title: "ID", Width: 6},
			{Title: "Nome completo", Width: 36},
			{Title: "Paternità", Width: 20},
			{Title: "Attivo", Width: 8},
		}),
		loading: true,
	}
}

func (m PossessoriModel) Title() string { return "Possessori" }

func (m PossessoriModel) ShortHelp() string {
	if m.searching {
		return "Enter: search | Esc: cancel"
	}

	return "Esc: back | /: search | c: comune | x: deactivate | r: refresh"
}

func (m PossessoriModel) Init() tea.Cmd {
	return loadComuniCmd(m.ledger)
}

func (m PossessoriModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case comuniLoadedMsg:
		if msg.err != nil {
			m.loading = false
			m.err = msg.err

			return m, nil
		}

		m.comuni = newComuneCycle(msg.comuni, false)

		return m, m.loadCmd()

	case possessoriLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.possessori = msg.possessori
		m.refreshTable()

		return m, nil

	case possessoreActionMsg:
		m.status = msg.status
		if msg.err != nil {
			m.status = errorStyle(msg.err.Error())
		}

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 12)
		return m, nil
	}

	if m.searching {
		return m.updateSearch(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, Back
		case "/":
			m.searching = true
			m.table.Blur()

			return m, m.search.Focus()
		case "c":
			m.comuni.next()
			return m, m.loadCmd()
		case "r":
			return m, m.loadCmd()
		case "x":
			if p := m.current(); p != nil {
				return m, m.deactivateCmd(p)
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m PossessoriModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			m.searching = false
			m.search.Blur()
			m.table.Focus()

			return m, nil
		case tea.KeyEnter:
			m.searching = false
			m.search.Blur()
			m.table.Focus()

			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	return m, cmd
}

func (m PossessoriModel) current() *catasto.Possessore {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.possessori) {
		return nil
	}

	return m.possessori[idx]
}

func (m PossessoriModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading possessori...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf("[c] Comune: %s | [/] %s", activeStyle(m.comuni.label()), m.search.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		boxed(m.table.View()),
	)

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *PossessoriModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.possessori))
	for _, p := range m.possessori {
		attivo := "sì"
		if !p.Attivo {
			attivo = "no"
		}

		rows = append(rows, table.Row{
			fmt.Sprint(p.ID),
			p.NomeCompleto,
			deref(p.Paternita),
			attivo,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type possessoriLoadedMsg struct {
	possessori []*catasto.Possessore
	err        error
}

type possessoreActionMsg struct {
	status string
	err    error
}

func (m PossessoriModel) loadCmd() tea.Cmd {
	comune := m.comuni.selected()
	filter := m.search.Value()

	return func() tea.Msg {
		if comune == nil {
			return possessoriLoadedMsg{possessori: []*catasto.Possessore{}}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		possessori, err := m.ledger.ListPossessori(ctx, comune.ID, filter)

		return possessoriLoadedMsg{possessori: possessori, err: err}
	}
}

func (m PossessoriModel) deactivateCmd(p *catasto.Possessore) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.ledger.DeactivatePossessore(ctx, p.ID); err != nil {
			return possessoreActionMsg{err: err}
		}

		return possessoreActionMsg{status: fmt.Sprintf("%s deactivated.", p.NomeCompleto)}
	}
}
