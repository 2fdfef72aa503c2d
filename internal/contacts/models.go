package contacts

import "strings"

// Access levels a contact can carry. Any other value is kept as-is and
// treated as unknown by the UI.
const (
	AccessAdmin   = "admin"
	AccessManager = "manager"
	AccessUser    = "user"
)

// Contact represents a person in the store
type Contact struct {
	ID     int    `toml:"id"`
	Name   string `toml:"name"`
	Email  string `toml:"email"`
	Age    int    `toml:"age"`
	Phone  string `toml:"phone"`
	Access string `toml:"access"`
}

// Initial returns the first character of the name, used as an avatar
func (c Contact) Initial() string {
	for _, r := range c.Name {
		return string(r)
	}
	return "?"
}

// AccessLabel returns the upper-cased access level for chips
func (c Contact) AccessLabel() string {
	return strings.ToUpper(c.Access)
}
