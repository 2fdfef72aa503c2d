// Package query derives the visible rows of the contact table: the search and
// access filter, the pagination window, and the per-access summary counts.
// Everything here is a pure function of its inputs and is recomputed from the
// full list on every change.
package query

import (
	"strings"

	"github.com/pdxmph/contacts-board/internal/contacts"
)

// AccessAll disables the access filter
const AccessAll = "all"

// AccessFilters lists the filter choices in cycling order
var AccessFilters = []string{
	AccessAll,
	contacts.AccessAdmin,
	contacts.AccessManager,
	contacts.AccessUser,
}

// PageSizes lists the selectable page sizes
var PageSizes = []int{5, 10, 25}

// Filter holds the search term and access filter
type Filter struct {
	Search string
	Access string
}

// Page is one window of the filtered set
type Page struct {
	Items []contacts.Contact
	// Total is the size of the filtered set before pagination.
	Total int
}

// Matches reports whether c passes the filter. Name and email match
// case-insensitively, phone matches as a literal substring.
func Matches(c contacts.Contact, f Filter) bool {
	term := strings.ToLower(f.Search)
	matchesSearch := strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.Email), term) ||
		strings.Contains(c.Phone, f.Search)

	matchesAccess := f.Access == AccessAll || c.Access == f.Access
	return matchesSearch && matchesAccess
}

// Filtered returns the contacts passing f in their original order
func Filtered(list []contacts.Contact, f Filter) []contacts.Contact {
	out := make([]contacts.Contact, 0, len(list))
	for _, c := range list {
		if Matches(c, f) {
			out = append(out, c)
		}
	}
	return out
}

// Window slices items[page*size : page*size+size], clamped to the slice. An
// out-of-range page or a non-positive size yields an empty window.
func Window(items []contacts.Contact, page, size int) []contacts.Contact {
	if page < 0 || page >= PageCount(len(items), size) {
		return []contacts.Contact{}
	}
	// page < PageCount keeps page*size below len(items), so nothing overflows
	start := page * size
	end := start + min(size, len(items)-start)
	return items[start:end:end]
}

// VisiblePage filters list and returns the requested page of the result
func VisiblePage(list []contacts.Contact, search, access string, page, size int) Page {
	matches := Filtered(list, Filter{Search: search, Access: access})
	return Page{
		Items: Window(matches, page, size),
		Total: len(matches),
	}
}

// PageCount returns ceil(total/size), or 0 when there is nothing to show
func PageCount(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	n := total / size
	if total%size != 0 {
		n++
	}
	return n
}

// LastPage returns the highest valid 0-based page index
func LastPage(total, size int) int {
	return max(PageCount(total, size)-1, 0)
}

// Bounds returns the 1-based first and last row numbers shown on a page, as
// in "6-10 of 12". Both are 0 when the page is empty.
func Bounds(total, page, size int) (first, last int) {
	if page < 0 || page >= PageCount(total, size) {
		return 0, 0
	}
	first = page*size + 1
	last = first - 1 + min(size, total-page*size)
	return first, last
}

// NextPageSize returns the size following cur in PageSizes
func NextPageSize(cur int) int {
	for i, s := range PageSizes {
		if s == cur {
			return PageSizes[(i+1)%len(PageSizes)]
		}
	}
	return PageSizes[0]
}

// NextAccessFilter returns the filter following cur in AccessFilters
func NextAccessFilter(cur string) string {
	for i, a := range AccessFilters {
		if a == cur {
			return AccessFilters[(i+1)%len(AccessFilters)]
		}
	}
	return AccessAll
}
