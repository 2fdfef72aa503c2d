package theme

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/pdxmph/contacts-board/internal/contacts"
)

// Icon is a symbolic icon tag; the terminal glyph is chosen by Glyph.
type Icon string

const (
	IconAdminPanel     Icon = "admin-panel"
	IconManageAccounts Icon = "manage-accounts"
	IconPersonOutline  Icon = "person-outline"
)

// Glyph returns the character drawn for the icon
func (i Icon) Glyph() string {
	switch i {
	case IconAdminPanel:
		return "⛨"
	case IconManageAccounts:
		return "⚙"
	default:
		return "☺"
	}
}

// AccessToken returns the token path used for an access level
func AccessToken(access string) string {
	switch access {
	case contacts.AccessAdmin:
		return "redAccent.500"
	case contacts.AccessManager:
		return "blueAccent.500"
	case contacts.AccessUser:
		return "greenAccent.500"
	default:
		return "grey.500"
	}
}

// AccessColor resolves the chip color for an access level
func AccessColor(access string, tokens Tokens) string {
	return Resolve(AccessToken(access), tokens)
}

// AccessIcon returns the icon for an access level
func AccessIcon(access string) Icon {
	switch access {
	case contacts.AccessAdmin:
		return IconAdminPanel
	case contacts.AccessManager:
		return IconManageAccounts
	default:
		return IconPersonOutline
	}
}

const (
	lightText = "#ffffff"
	darkText  = "#141414"
)

// Foreground picks a readable text color for the given background. Values
// that are not hex colors get white text.
func Foreground(bg string) string {
	c, err := colorful.Hex(bg)
	if err != nil {
		return lightText
	}
	r, g, b := c.LinearRgb()
	luminance := 0.2126*r + 0.7152*g + 0.0722*b
	if luminance > 0.5 {
		return darkText
	}
	return lightText
}
