package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/catasto/internal/catasto"
	"github.com/MrJamesThe3rd/catasto/internal/ledger"
	"github.com/MrJamesThe3rd/catasto/internal/partita"
	"github.com/MrJamesThe3rd/catasto/internal/variazione"
)

type partiteState int

const (
	partiteStateBrowse partiteState = iota
	partiteStateDuplicate
	partiteStateGenealogy
)

var statoFilters = []*catasto.StatoPartita{nil, new(catasto.StatoAttiva), new(catasto.StatoInattiva)}

// duplicateForm holds the huh bindings. It lives behind a pointer so the
// bound fields survive model copies.
type duplicateForm struct {
	numero              string
	suffisso            string
	mantenerePossessori bool
	copiareImmobili     bool
}

type PartiteModel struct {
	CommonModel
	ledger *ledger.Ledger
	engine *variazione.Engine

	state   partiteState
	comuni  comuneCycle
	statoIx int

	table   table.Model
	partite []*catasto.Partita

	form      *huh.Form
	dup       *duplicateForm
	genealogy []variazione.GenealogyEntry

	loading bool
	err     error
	status  string
}

func NewPartiteModel(l *ledger.Ledger, engine *variazione.Engine) PartiteModel {
	return PartiteModel{
		ledger: l,
		engine: engine,
		table: newTable([]table.Column{
			{Title: "Partita", Width: 12},
			{Title: "Tipo", Width: 12},
			{Title: "Stato", Width: 10},
			{Title: "Impianto", Width: 12},
			{Title: "Chiusura", Width: 12},
			{Title: "Provenienza", Width: 12},
		}),
		loading: true,
	}
}

func (m PartiteModel) Title() string { return "Partite" }

func (m PartiteModel) ShortHelp() string {
	switch m.state {
	case partiteStateDuplicate:
		return "Navigate form | Esc: cancel"
	case partiteStateGenealogy:
		return "Esc: close"
	}

	return "Esc: back | c: comune | s: stato | d: duplicate | o: reopen | g: genealogy | r: refresh"
}

func (m PartiteModel) Init() tea.Cmd {
	return m.loadComuniCmd()
}

func (m PartiteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case comuniLoadedMsg:
		if msg.err != nil {
			m.loading = false
			m.err = msg.err

			return m, nil
		}

		m.comuni = newComuneCycle(msg.comuni, false)

		return m, m.loadCmd()

	case partiteLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.partite = msg.partite
		m.refreshTable()

		return m, nil

	case partitaActionMsg:
		m.status = msg.status
		if msg.err != nil {
			m.status = errorStyle(msg.err.Error())
		}

		m.state = partiteStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case genealogyLoadedMsg:
		if msg.err != nil {
			m.status = errorStyle(msg.err.Error())
			return m, nil
		}

		m.genealogy = msg.entries
		m.state = partiteStateGenealogy
		m.table.Blur()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case partiteStateDuplicate:
		return m.updateDuplicate(msg)
	case partiteStateGenealogy:
		if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
			m.state = partiteStateBrowse
			m.genealogy = nil
			m.table.Focus()
		}

		return m, nil
	}

	return m.updateBrowse(msg)
}

func (m PartiteModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "c":
			m.comuni.next()
			return m, m.loadCmd()
		case "s":
			m.statoIx = (m.statoIx + 1) % len(statoFilters)
			return m, m.loadCmd()
		case "d":
			return m.enterDuplicate()
		case "o":
			if p := m.current(); p != nil {
				return m, m.reopenCmd(p)
			}
		case "g":
			if p := m.current(); p != nil {
				return m, m.genealogyCmd(p.ID)
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m PartiteModel) current() *catasto.Partita {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.partite) {
		return nil
	}

	return m.partite[idx]
}

func (m PartiteModel) enterDuplicate() (tea.Model, tea.Cmd) {
	p := m.current()
	if p == nil {
		return m, nil
	}

	m.dup = &duplicateForm{numero: strconv.Itoa(p.Numero), mantenerePossessori: true}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Numero").
				Value(&m.dup.numero).
				Validate(func(s string) error {
					if n, err := strconv.Atoi(strings.TrimSpace(s)); err != nil || n <= 0 {
						return fmt.Errorf("numero must be a positive integer")
					}

					return nil
				}),
			huh.NewInput().
				Title("Suffisso").
				Placeholder("bis").
				Value(&m.dup.suffisso),
			huh.NewConfirm().
				Title("Keep possessori?").
				Value(&m.dup.mantenerePossessori),
			huh.NewConfirm().
				Title("Copy immobili?").
				Value(&m.dup.copiareImmobili),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = partiteStateDuplicate
	m.table.Blur()

	return m, m.form.Init()
}

func (m PartiteModel) updateDuplicate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		m.state = partiteStateBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.duplicateCmd()
}

func (m PartiteModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading partite...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	stato := "All"
	if s := statoFilters[m.statoIx]; s != nil {
		stato = string(*s)
	}

	header := fmt.Sprintf("[c] Comune: %s | [s] Stato: %s",
		activeStyle(m.comuni.label()), activeStyle(stato))

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		boxed(m.table.View()),
	)

	if panel := m.panel(); panel != "" {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content,
			lipgloss.NewStyle().
				Padding(1, 2).
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("63")).
				Width(48).
				Render(panel))
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m PartiteModel) panel() string {
	switch m.state {
	case partiteStateDuplicate:
		if p := m.current(); p != nil && m.form != nil {
			return fmt.Sprintf("Duplicate partita %s\n\n%s", p.Label(), m.form.View())
		}
	case partiteStateGenealogy:
		var b strings.Builder

		b.WriteString("Genealogy\n\n")

		for _, e := range m.genealogy {
			fmt.Fprintf(&b, "%s%s %s (%s)", strings.Repeat("  ", e.Depth), e.Direction, e.Partita.Label(), e.Partita.Stato)

			if v := e.Variazione; v != nil {
				fmt.Fprintf(&b, " via %s %s", v.Tipo, FormatDate(v.DataVariazione))
			}

			b.WriteString("\n")
		}

		return b.String()
	}

	return ""
}

func (m *PartiteModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.partite))
	for _, p := range m.partite {
		rows = append(rows, table.Row{
			p.Label(),
			string(p.Tipo),
			string(p.Stato),
			FormatDate(p.DataImpianto),
			formatDatePtr(p.DataChiusura),
			deref(p.NumeroProvenienza),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type comuniLoadedMsg struct {
	comuni []*catasto.Comune
	err    error
}

type partiteLoadedMsg struct {
	partite []*catasto.Partita
	err     error
}

type partitaActionMsg struct {
	status string
	err    error
}

type genealogyLoadedMsg struct {
	entries []variazione.GenealogyEntry
	err     error
}

func loadComuniCmd(l *ledger.Ledger) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		comuni, err := l.ListComuni(ctx, "")

		return comuniLoadedMsg{comuni: comuni, err: err}
	}
}

func (m PartiteModel) loadComuniCmd() tea.Cmd {
	return loadComuniCmd(m.ledger)
}

func (m PartiteModel) loadCmd() tea.Cmd {
	filter := catasto.PartitaFilter{
		ComuneID: m.comuni.selectedID(),
		Stato:    statoFilters[m.statoIx],
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		partite, err := m.ledger.ListPartite(ctx, filter)

		return partiteLoadedMsg{partite: partite, err: err}
	}
}

func (m PartiteModel) reopenCmd(p *catasto.Partita) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if err := m.ledger.ReopenPartita(ctx, p.ID); err != nil {
			return partitaActionMsg{err: err}
		}

		return partitaActionMsg{status: fmt.Sprintf("Partita %s reopened.", p.Label())}
	}
}

func (m PartiteModel) genealogyCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		entries, err := m.engine.Genealogy(ctx, id, 0)

		return genealogyLoadedMsg{entries: entries, err: err}
	}
}

func (m PartiteModel) duplicateCmd() tea.Cmd {
	p := m.current()
	if p == nil {
		return nil
	}

	numero, _ := strconv.Atoi(strings.TrimSpace(m.dup.numero))
	params := partita.DuplicateParams{
		Numero:              numero,
		MantenerePossessori: m.dup.mantenerePossessori,
		CopiareImmobili:     m.dup.copiareImmobili,
	}

	if s := strings.TrimSpace(m.dup.suffisso); s != "" {
		params.Suffisso = &s
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := m.ledger.DuplicatePartita(ctx, p.ID, params); err != nil {
			return partitaActionMsg{err: err}
		}

		return partitaActionMsg{status: fmt.Sprintf("Partita %s duplicated as %s.", p.Label(), catasto.PartitaLabel(numero, params.Suffisso))}
	}
}
