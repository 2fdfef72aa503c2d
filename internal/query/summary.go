package query

import "github.com/pdxmph/contacts-board/internal/contacts"

// Summary counts the whole store by access level, ignoring any filter
type Summary struct {
	Total   int
	Admin   int
	Manager int
	User    int
}

// Summarize aggregates list into a Summary. Unknown access levels count
// toward Total only.
func Summarize(list []contacts.Contact) Summary {
	s := Summary{Total: len(list)}
	for _, c := range list {
		switch c.Access {
		case contacts.AccessAdmin:
			s.Admin++
		case contacts.AccessManager:
			s.Manager++
		case contacts.AccessUser:
			s.User++
		}
	}
	return s
}
