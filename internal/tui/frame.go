package tui

import (
	"github.com/pdxmph/contacts-board/internal/contacts"
	"github.com/pdxmph/contacts-board/internal/query"
	"github.com/pdxmph/contacts-board/internal/theme"
)

// Row is one rendered table row
type Row struct {
	Contact  contacts.Contact
	Color    string
	Icon     theme.Icon
	Selected bool
}

// Frame is everything one render needs, derived from the store and the
// view state. It is rebuilt from scratch for every View call.
type Frame struct {
	Rows      []Row
	Summary   query.Summary
	Total     int
	Page      int
	PageSize  int
	PageCount int
	First     int
	Last      int
}

// ViewState is the transient, per-session UI state
type ViewState struct {
	Search   string
	Access   string
	Page     int
	PageSize int
	Cursor   int

	// Target is the id of the contact the row menu acts on. HasTarget is
	// false while no menu is open.
	Target    int
	HasTarget bool
}

func newViewState(pageSize int) ViewState {
	if pageSize <= 0 {
		pageSize = query.PageSizes[0]
	}
	return ViewState{
		Access:   query.AccessAll,
		PageSize: pageSize,
	}
}

func buildFrame(list []contacts.Contact, vs ViewState, tokens theme.Tokens) Frame {
	page := query.VisiblePage(list, vs.Search, vs.Access, vs.Page, vs.PageSize)
	first, last := query.Bounds(page.Total, vs.Page, vs.PageSize)

	rows := make([]Row, 0, len(page.Items))
	for i, c := range page.Items {
		rows = append(rows, Row{
			Contact:  c,
			Color:    theme.AccessColor(c.Access, tokens),
			Icon:     theme.AccessIcon(c.Access),
			Selected: i == vs.Cursor,
		})
	}

	return Frame{
		Rows:      rows,
		Summary:   query.Summarize(list),
		Total:     page.Total,
		Page:      vs.Page,
		PageSize:  vs.PageSize,
		PageCount: query.PageCount(page.Total, vs.PageSize),
		First:     first,
		Last:      last,
	}
}
