package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdxmph/contacts-board/internal/contacts"
)

func ids(list []contacts.Contact) []int {
	out := make([]int, 0, len(list))
	for _, c := range list {
		out = append(out, c.ID)
	}
	return out
}

func TestMatches(t *testing.T) {
	sona := contacts.Contact{Name: "Sona", Email: "Sona@gmail.com", Phone: "+91 3333333333", Access: "user"}

	tests := []struct {
		name string
		f    Filter
		want bool
	}{
		{"empty term", Filter{"", AccessAll}, true},
		{"name case-insensitive", Filter{"sON", AccessAll}, true},
		{"email case-insensitive", Filter{"SONA@GMAIL", AccessAll}, true},
		{"phone literal", Filter{"+91 33", AccessAll}, true},
		{"no match", Filter{"zzz", AccessAll}, false},
		{"access match", Filter{"", "user"}, true},
		{"access mismatch", Filter{"sona", "admin"}, false},
		{"unknown filter value", Filter{"", "guest"}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Matches(sona, tc.f))
		})
	}
}

func TestMatches_PhoneIsCaseSensitive(t *testing.T) {
	c := contacts.Contact{Name: "x", Email: "y", Phone: "ext ABC", Access: "user"}
	assert.True(t, Matches(c, Filter{"ABC", AccessAll}))
	assert.False(t, Matches(c, Filter{"abc", AccessAll}))
}

func TestVisiblePage_AdminFilter(t *testing.T) {
	page := VisiblePage(contacts.Fixtures(), "", "admin", 0, 5)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, []int{1, 4, 9}, ids(page.Items))
}

func TestVisiblePage_TotalIsFilteredSize(t *testing.T) {
	page := VisiblePage(contacts.Fixtures(), "sai", AccessAll, 0, 2)
	// Sai Teja, Sai, VinnySai
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, []int{1, 2}, ids(page.Items))
}

func TestVisiblePage_EveryItemMatches(t *testing.T) {
	list := contacts.Fixtures()
	for _, term := range []string{"", "a", "S", "gmail", "+91 9", "9999", "nobody"} {
		for _, access := range AccessFilters {
			f := Filter{Search: term, Access: access}
			page := VisiblePage(list, term, access, 0, 25)

			want := 0
			for _, c := range list {
				if Matches(c, f) {
					want++
				}
			}
			assert.Equal(t, want, page.Total, "term=%q access=%q", term, access)
			for _, c := range page.Items {
				assert.True(t, Matches(c, f), "term=%q access=%q id=%d", term, access, c.ID)
			}
		}
	}
}

func TestVisiblePage_PagesConcatenateToFilteredSet(t *testing.T) {
	list := contacts.Fixtures()
	for i := 0; i < 14; i++ {
		list = contacts.Add(list, contacts.IDPolicyLength)
	}

	for _, size := range append([]int{1, 3}, PageSizes...) {
		for _, access := range AccessFilters {
			filtered := Filtered(list, Filter{Access: access})
			total := VisiblePage(list, "", access, 0, size).Total

			var joined []contacts.Contact
			for p := 0; p < PageCount(total, size); p++ {
				joined = append(joined, VisiblePage(list, "", access, p, size).Items...)
			}
			if diff := cmp.Diff(filtered, joined); diff != "" {
				t.Fatalf("size=%d access=%s pages differ from filtered set (-want +got):\n%s", size, access, diff)
			}
		}
	}
}

func TestVisiblePage_OutOfRangeIsEmpty(t *testing.T) {
	list := contacts.Fixtures()

	for _, page := range []int{2, 3, 100, -1} {
		got := VisiblePage(list, "", AccessAll, page, 5)
		assert.NotNil(t, got.Items)
		assert.Empty(t, got.Items, "page %d", page)
		assert.Equal(t, 9, got.Total)
	}

	got := VisiblePage(list, "", AccessAll, 0, 0)
	assert.Empty(t, got.Items)
}

func TestVisiblePage_HugePageDoesNotWrap(t *testing.T) {
	list := contacts.Fixtures()
	maxInt := int(^uint(0) >> 1)

	for _, tc := range []struct{ page, size int }{
		{1 << 61, 5},
		{1 << 62, 4},
		{maxInt, 2},
		{1, maxInt},
	} {
		got := VisiblePage(list, "", AccessAll, tc.page, tc.size)
		assert.Empty(t, got.Items, "page=%d size=%d", tc.page, tc.size)
		assert.Equal(t, 9, got.Total)

		first, last := Bounds(9, tc.page, tc.size)
		assert.Zero(t, first, "page=%d size=%d", tc.page, tc.size)
		assert.Zero(t, last, "page=%d size=%d", tc.page, tc.size)
	}

	// A page size larger than any list still shows everything on page 0
	got := VisiblePage(list, "", AccessAll, 0, maxInt)
	assert.Equal(t, ids(list), ids(got.Items))
	first, last := Bounds(9, 0, maxInt)
	assert.Equal(t, 1, first)
	assert.Equal(t, 9, last)
	assert.Equal(t, 1, PageCount(9, maxInt))
}

func TestVisiblePage_EmptyStore(t *testing.T) {
	got := VisiblePage(nil, "x", AccessAll, 0, 5)
	assert.Equal(t, 0, got.Total)
	assert.Empty(t, got.Items)
}

func TestWindow_DoesNotLeakCapacity(t *testing.T) {
	list := contacts.Fixtures()
	w := Window(list, 0, 2)
	require.Len(t, w, 2)
	assert.Equal(t, 2, cap(w))
}

func TestPageCountAndBounds(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 5))
	assert.Equal(t, 1, PageCount(5, 5))
	assert.Equal(t, 2, PageCount(9, 5))
	assert.Equal(t, 0, PageCount(9, 0))

	assert.Equal(t, 0, LastPage(0, 5))
	assert.Equal(t, 1, LastPage(9, 5))

	first, last := Bounds(9, 1, 5)
	assert.Equal(t, 6, first)
	assert.Equal(t, 9, last)

	first, last = Bounds(9, 2, 5)
	assert.Zero(t, first)
	assert.Zero(t, last)
}

func TestCycling(t *testing.T) {
	assert.Equal(t, 10, NextPageSize(5))
	assert.Equal(t, 25, NextPageSize(10))
	assert.Equal(t, 5, NextPageSize(25))
	assert.Equal(t, 5, NextPageSize(7))

	assert.Equal(t, "admin", NextAccessFilter("all"))
	assert.Equal(t, "all", NextAccessFilter("user"))
	assert.Equal(t, "all", NextAccessFilter("bogus"))
}

func TestSummarize(t *testing.T) {
	list := append(contacts.Fixtures(), contacts.Contact{ID: 10, Access: "guest"})
	got := Summarize(list)
	assert.Equal(t, Summary{Total: 10, Admin: 3, Manager: 2, User: 4}, got)

	assert.Equal(t, Summary{}, Summarize(nil))
}
