package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/catasto/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/catasto/internal/app"
	"github.com/MrJamesThe3rd/catasto/internal/config"
)

type model struct {
	app *app.App

	currentView View

	partiteView    view.PartiteModel
	possessoriView view.PossessoriModel
	integrityView  view.IntegrityModel
	importView     view.ImportModel
}

type View int

const (
	ViewMenu       View = 0
	ViewPartite    View = 1
	ViewPossessori View = 2
	ViewIntegrity  View = 3
	ViewImport     View = 4
)

func initialModel(a *app.App) model {
	return model{
		app:         a,
		currentView: ViewMenu,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewPartite
				m.partiteView = view.NewPartiteModel(m.app.Ledger, m.app.Engine)

				return m, m.partiteView.Init()
			case "2":
				m.currentView = ViewPossessori
				m.possessoriView = view.NewPossessoriModel(m.app.Ledger)

				return m, m.possessoriView.Init()
			case "3":
				m.currentView = ViewIntegrity
				m.integrityView = view.NewIntegrityModel(m.app.Ledger, m.app.Verifier)

				return m, m.integrityView.Init()
			case "4":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.app.Ledger, m.app.Importer)

				return m, m.importView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewPartite:
		var newModel tea.Model
		newModel, cmd = m.partiteView.Update(msg)
		m.partiteView = newModel.(view.PartiteModel)
	case ViewPossessori:
		var newModel tea.Model
		newModel, cmd = m.possessoriView.Update(msg)
		m.possessoriView = newModel.(view.PossessoriModel)
	case ViewIntegrity:
		var newModel tea.Model
		newModel, cmd = m.integrityView.Update(msg)
		m.integrityView = newModel.(view.IntegrityModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	}

	return m, cmd
}

func (m model) View() string {
	var current view.View

	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			m.app.Config.App.Name + " TUI\n\n" +
				"1. Partite\n" +
				"2. Possessori\n" +
				"3. Integrity Check\n" +
				"4. Import CSV\n\n" +
				"q. Quit",
		)
	case ViewPartite:
		current = m.partiteView
	case ViewPossessori:
		current = m.possessoriView
	case ViewIntegrity:
		current = m.integrityView
	case ViewImport:
		current = m.importView
	default:
		return "Unknown View"
	}

	title := lipgloss.NewStyle().Bold(true).Padding(1, 1, 0).Render(current.Title())
	help := lipgloss.NewStyle().Faint(true).Padding(0, 1).Render(current.ShortHelp())

	return lipgloss.JoinVertical(lipgloss.Left, title, current.View(), help)
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// The terminal belongs to bubbletea; runner logs are discarded.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	a, err := app.New(context.Background(), cfg, logger)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	p := tea.NewProgram(initialModel(a), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
