package view

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/catasto/internal/importer"
	"github.com/MrJamesThe3rd/catasto/internal/ledger"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateKindSelect importState = iota
	importStateFilePick
	importStateImporting
	importStateResult
)

type ImportModel struct {
	CommonModel
	ledger   *ledger.Ledger
	importer *importer.Importer

	state        importState
	filePicker   filepicker.Model
	comuni       comuneCycle
	kindOptions  []importer.Kind
	kindCursor   int
	selectedKind importer.Kind

	status string
	err    error
}

func NewImportModel(l *ledger.Ledger, imp *importer.Importer) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		ledger:      l,
		importer:    imp,
		filePicker:  fp,
		kindOptions: []importer.Kind{importer.KindPossessori, importer.KindPartite},
	}
}

func (m ImportModel) Title() string { return "Import CSV" }

func (m ImportModel) ShortHelp() string {
	if m.state == importStateKindSelect {
		return "Esc: back | c: comune | Enter: select"
	}

	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return tea.Batch(loadComuniCmd(m.ledger), m.filePicker.Init())
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case comuniLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)
			m.state = importStateResult

			return m, nil
		}

		m.comuni = newComuneCycle(msg.comuni, false)

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == importStateKindSelect {
			return m.updateKindSelect(msg)
		}

	case importResultMsg:
		m.state = importStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.status = fmt.Sprintf("Imported %d %s into %s.", msg.result.Rows, msg.result.Kind, m.comuni.label())

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		m.status = fmt.Sprintf("Importing from %s...", path)

		return m, m.importCmd(path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateFilePick:
		m.state = importStateKindSelect
		return m, nil
	case importStateResult:
		m.state = importStateKindSelect
		m.err = nil
		m.status = ""

		return m, nil
	}

	return m, Back
}

func (m ImportModel) updateKindSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		if m.kindCursor > 0 {
			m.kindCursor--
		}
	case "down":
		if m.kindCursor < len(m.kindOptions)-1 {
			m.kindCursor++
		}
	case "c":
		m.comuni.next()
	case "enter":
		if m.comuni.selected() == nil {
			m.status = "Register a comune first."
			return m, nil
		}

		m.selectedKind = m.kindOptions[m.kindCursor]
		m.state = importStateFilePick

		return m, m.filePicker.Init()
	}

	return m, nil
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateKindSelect:
		return m.viewKindSelect()
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Select %s file for %s:\n\n%s", m.selectedKind, m.comuni.label(), m.filePicker.View()),
		)
	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStateResult:
		return m.viewResult()
	}

	return ""
}

func (m ImportModel) viewKindSelect() string {
	s := fmt.Sprintf("[c] Comune: %s\n\nImport:\n\n", activeStyle(m.comuni.label()))

	for i, kind := range m.kindOptions {
		cursor := " "
		if i == m.kindCursor {
			cursor = ">"
		}

		s += fmt.Sprintf("%s %s\n", cursor, string(kind))
	}

	if m.status != "" {
		s += "\n" + errorStyle(m.status)
	}

	return lipgloss.NewStyle().Padding(2).Render(s)
}

func (m ImportModel) viewResult() string {
	color := lipgloss.Color("46")
	if m.err != nil {
		color = lipgloss.Color("196")
	}

	return lipgloss.NewStyle().Padding(2).Render(
		lipgloss.NewStyle().Foreground(color).Render(m.status) +
			"\n\n(Esc to go back)",
	)
}

type importResultMsg struct {
	result *importer.Result
	err    error
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	comune := m.comuni.selected()
	kind := m.selectedKind

	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importResultMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		var res *importer.Result

		switch kind {
		case importer.KindPartite:
			res, err = m.importer.ImportPartite(ctx, comune.ID, f)
		default:
			res, err = m.importer.ImportPossessori(ctx, comune.ID, f)
		}

		return importResultMsg{result: res, err: err}
	}
}
