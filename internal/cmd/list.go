package cmd

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/pdxmph/contacts-board/internal/query"
)

func newListCmd(a *app) *cobra.Command {
	var (
		search   string
		access   string
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of contacts",
		Long: `Prints a page of the contact table with the same search, access filter
and pagination rules as the interactive board.

Example:
  contacts-board list --access admin
  contacts-board list --search sai --page 2 --page-size 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkAccess(access); err != nil {
				return err
			}
			if pageSize == 0 {
				pageSize = a.cfg.UI.PageSize
			}
			if pageSize < 0 {
				return fmt.Errorf("--page-size must be positive")
			}
			if page < 1 {
				return fmt.Errorf("--page starts at 1")
			}

			store, err := a.newStore()
			if err != nil {
				return err
			}

			list := store.Contacts()
			p := query.VisiblePage(list, search, access, page-1, pageSize)
			first, last := query.Bounds(p.Total, page-1, pageSize)

			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("ID", "NAME", "EMAIL", "AGE", "PHONE", "ACCESS")
			for _, c := range p.Items {
				t.Row(strconv.Itoa(c.ID), c.Name, c.Email, strconv.Itoa(c.Age), c.Phone, c.AccessLabel())
			}

			out := cmd.OutOrStdout()
			switch {
			case p.Total == 0:
				fmt.Fprintln(out, "No contacts match")
			case len(p.Items) == 0:
				fmt.Fprintf(out, "Page %d is past the last page\n", page)
			default:
				fmt.Fprintln(out, t.Render())
			}
			fmt.Fprintf(out, "%d–%d of %d (page %d of %d)\n",
				first, last, p.Total, page, max(query.PageCount(p.Total, pageSize), 1))

			s := query.Summarize(list)
			fmt.Fprintf(out, "Total: %d  Admin: %d  Manager: %d  User: %d\n", s.Total, s.Admin, s.Manager, s.User)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "match name, email or phone")
	cmd.Flags().StringVar(&access, "access", query.AccessAll, "access filter (all, admin, manager, user)")
	cmd.Flags().IntVar(&page, "page", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "rows per page (default from config)")
	return cmd
}

func checkAccess(access string) error {
	if !slices.Contains(query.AccessFilters, access) {
		return fmt.Errorf("--access %q must be one of %v", access, query.AccessFilters)
	}
	return nil
}
