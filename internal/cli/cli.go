// Package cli wires the resumeview command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"resumeview/internal/config"
	"resumeview/internal/logging"
	"resumeview/internal/store"
)

// ProgramRunner runs a Bubble Tea model to completion.
type ProgramRunner func(ctx context.Context, model tea.Model) error

// DefaultProgramRunner runs model full-screen with mouse motion reporting.
func DefaultProgramRunner(ctx context.Context, model tea.Model) error {
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

// App holds state shared by every command.
type App struct {
	configPath string
	accent     string
	cfg        *config.Config
	logger     *slog.Logger

	// Run starts the interactive view. Tests replace it.
	Run ProgramRunner
}

// NewRootCmd builds the command tree.
func NewRootCmd(app *App) *cobra.Command {
	if app.Run == nil {
		app.Run = DefaultProgramRunner
	}
	if app.logger == nil {
		app.logger = logging.Discard()
	}

	root := &cobra.Command{
		Use:   "resumeview",
		Short: "View a résumé in the terminal and rearrange its sections",
		Long: `resumeview renders a YAML or JSON résumé as two columns of sections.
Drag a section onto another with the mouse (or grab it with the keyboard)
to swap their places.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.loadConfig()
		},
	}

	root.PersistentFlags().StringVar(&app.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/resumeview/config.yaml)")
	root.PersistentFlags().StringVar(&app.accent, "accent", "", "accent colour, e.g. #239CE2 or 86")

	root.AddCommand(
		viewCmd(app),
		sectionsCmd(app),
		importCmd(app),
		listCmd(app),
		deleteCmd(app),
		exampleCmd(),
	)
	return root
}

// Execute runs the command tree with args.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := NewRootCmd(&App{})
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

func (a *App) loadConfig() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.accent != "" {
		cfg.Accent = a.accent
	}
	a.cfg = cfg
	return nil
}

// openStore opens the configured résumé library. Callers close it.
func (a *App) openStore(ctx context.Context) (*store.Store, error) {
	s, err := store.Open(ctx, a.cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return s, nil
}

func closeStore(s *store.Store) {
	if err := s.Close(); err != nil {
		slog.Error("error closing store", "error", err)
	}
}
