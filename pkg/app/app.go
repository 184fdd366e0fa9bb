package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gradeit/gradeit/pkg/app/screens"
	"github.com/gradeit/gradeit/pkg/app/styles"
	"github.com/gradeit/gradeit/pkg/config"
	"github.com/gradeit/gradeit/pkg/services"
)

// App holds the process-wide wiring: one controller, one active theme.
type App struct {
	ctrl   *services.Controller
	styles *styles.Styles
}

func NewApp(cfg config.Config) *App {
	return &App{
		ctrl:   services.NewController(cfg),
		styles: styles.New(styles.Named(cfg.Theme)),
	}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(a.ctrl, a.styles)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
