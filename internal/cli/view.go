package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"resumeview/internal/logging"
	"resumeview/internal/resume"
	"resumeview/internal/telemetry"
	"resumeview/internal/ui"
)

func viewCmd(app *App) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Open a résumé in the interactive viewer",
		Long: `Open a résumé file, or one stored with "resumeview import", in the
interactive two-column viewer.

Examples:
  resumeview view resume.yaml
  resumeview view --name ada
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) == 1 && name != "":
				return errors.New("give either a file or --name, not both")
			case len(args) == 0 && name == "":
				return errors.New("a file or --name is required")
			}
			return app.runView(cmd.Context(), args, name)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "open a stored résumé by name")
	return cmd
}

func (a *App) runView(ctx context.Context, args []string, name string) error {
	logger, err := logging.Init(a.cfg.LogFile)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	a.logger = logger

	doc, err := a.loadDocument(ctx, args, name)
	if err != nil {
		logger.Error("load resume failed", "error", err)
		return err
	}

	names, err := a.cfg.SectionNames()
	if err != nil {
		return err
	}
	engine, err := a.cfg.NewEngine()
	if err != nil {
		return err
	}

	tp, err := telemetry.Setup(ctx, "resumeview")
	if err != nil {
		logger.Warn("tracing disabled", "error", err)
		tp = telemetry.Noop()
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Error("tracer shutdown", "error", err)
		}
	}()

	model := ui.NewAppModel(ui.Options{
		Document:    doc,
		Names:       names,
		Engine:      engine,
		Accent:      a.cfg.Accent,
		ColumnWidth: a.cfg.ColumnWidth,
		Markdown:    a.cfg.Markdown,
		Keys:        a.cfg.KeyMappings,
		Tracer:      tp.Tracer(),
		Logger:      logger,
		Context:     ctx,
	})
	logger.Info("starting viewer", "sections", len(model.Resume.Registry()), "tracing", tp.Enabled())
	return a.Run(ctx, model.AsTeaModel())
}

func (a *App) loadDocument(ctx context.Context, args []string, name string) (resume.Document, error) {
	if name == "" {
		return resume.Load(args[0])
	}
	s, err := a.openStore(ctx)
	if err != nil {
		return nil, err
	}
	defer closeStore(s)
	return s.Get(ctx, name)
}
