// Package cmd wires the configuration, logger, store and exporters into the
// contacts-board command line.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdxmph/contacts-board/internal/config"
	"github.com/pdxmph/contacts-board/internal/contacts"
	"github.com/pdxmph/contacts-board/internal/export"
	"github.com/pdxmph/contacts-board/internal/logging"
	"github.com/pdxmph/contacts-board/internal/theme"
	"github.com/pdxmph/contacts-board/internal/tui"
)

// app carries what every subcommand needs once the config is loaded
type app struct {
	configPath string

	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	a := &app{}
	var (
		pageSize int
		mode     string
	)

	root := &cobra.Command{
		Use:   "contacts-board",
		Short: "Browse, filter and page through a contact list",
		Long: `contacts-board shows a paginated contact table in the terminal.

Search by name, email or phone, filter by access level, add placeholder
contacts, delete them, and export the visible set as a snapshot.

Run without arguments to start the interactive board.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "init-config" {
				return nil
			}
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("page-size") {
				a.cfg.UI.PageSize = pageSize
			}
			if cmd.Flags().Changed("mode") {
				a.cfg.UI.PaletteMode = mode
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.runBoard()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/.config/contacts-board/config.toml)")
	root.Flags().IntVar(&pageSize, "page-size", 5, "rows per page (5, 10 or 25)")
	root.Flags().StringVar(&mode, "mode", theme.ModeDark, "palette mode (dark or light)")

	root.AddCommand(
		newListCmd(a),
		newExportCmd(a),
		newInitConfigCmd(a),
	)
	return root
}

// Execute runs the root command until it finishes or the process is
// interrupted
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

func (a *app) setup() error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.configPath != "" {
		return config.LoadFrom(a.configPath)
	}
	return config.Load()
}

func (a *app) newStore() (*contacts.Store, error) {
	policy, err := contacts.ParseIDPolicy(a.cfg.Store.IDPolicy)
	if err != nil {
		return nil, err
	}
	return contacts.NewStore(policy, a.logger), nil
}

func (a *app) runBoard() error {
	store, err := a.newStore()
	if err != nil {
		return err
	}

	palette, err := theme.LoadProvider(a.cfg.Theme.Path)
	if err != nil {
		return err
	}

	exporter, err := export.New(a.cfg.Export.Format)
	if err != nil {
		return err
	}

	a.logger.Info("starting board",
		zap.Int("page_size", a.cfg.UI.PageSize),
		zap.String("palette_mode", a.cfg.UI.PaletteMode),
		zap.Int("palettes", palette.Modes()),
		zap.String("export_format", exporter.Name()))

	model := tui.New(tui.Options{
		Store:       store,
		Palette:     palette,
		PaletteMode: a.cfg.UI.PaletteMode,
		PageSize:    a.cfg.UI.PageSize,
		Exporter:    exporter,
		ExportDir:   a.cfg.Export.Dir,
		Logger:      a.logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running board: %w", err)
	}
	return nil
}
