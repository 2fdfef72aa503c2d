package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdxmph/contacts-board/internal/export"
	"github.com/pdxmph/contacts-board/internal/query"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		out    string
		search string
		access string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the filtered contacts to a snapshot file",
		Long: fmt.Sprintf(`Writes every contact passing the search and access filter to a new
snapshot file. Existing files are never overwritten.

Without --out the file is created in the configured export directory with a
timestamped name.

Formats:
  %s`, strings.Join(export.Describe(), "\n  ")),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkAccess(access); err != nil {
				return err
			}
			if format == "" {
				format = a.cfg.Export.Format
			}
			e, err := export.New(format)
			if err != nil {
				return err
			}

			store, err := a.newStore()
			if err != nil {
				return err
			}
			rows := query.Filtered(store.Contacts(), query.Filter{Search: search, Access: access})
			now := time.Now()

			path := out
			if path == "" {
				path, err = export.ToDir(cmd.Context(), e, a.cfg.Export.Dir, rows, now, a.logger)
				if err != nil {
					return err
				}
			} else {
				snap := export.Snapshot{ExportedAt: now, Contacts: rows}
				if err := e.Export(cmd.Context(), path, snap); err != nil {
					a.logger.Error("export failed", zap.String("path", path), zap.Error(err))
					return fmt.Errorf("exporting %s snapshot: %w", e.Name(), err)
				}
			}

			if e.Name() == "noop" {
				fmt.Fprintln(cmd.OutOrStdout(), "Export is disabled, nothing written")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d contacts to %s\n", len(rows), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "snapshot format (default from config)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file")
	cmd.Flags().StringVar(&search, "search", "", "match name, email or phone")
	cmd.Flags().StringVar(&access, "access", query.AccessAll, "access filter (all, admin, manager, user)")
	return cmd
}
