package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdxmph/contacts-board/internal/query"
	"github.com/pdxmph/contacts-board/internal/theme"
)

// Column widths
const (
	colID     = 5
	colName   = 24
	colEmail  = 24
	colAge    = 5
	colPhone  = 17
	colAccess = 14
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	tokens := m.tokens()
	f := m.Frame()

	sections := []string{
		titleStyle.Render("CONTACTS"),
		subtitleStyle.Render("Manage your contacts"),
		"",
		m.renderToolbar(tokens),
		"",
		m.renderTable(f, tokens),
		m.renderPagination(f),
		"",
		renderSummary(f.Summary, tokens),
		"",
		m.renderStatus(tokens),
		m.help.View(m.keys),
	}
	view := lipgloss.JoinVertical(lipgloss.Left, sections...)

	switch m.screen {
	case modeMenu:
		return m.overlay(m.renderMenu(tokens))
	case modeConfirmDelete:
		return m.overlay(m.renderConfirmDelete(tokens))
	case modeDetails:
		return m.overlay(m.renderDetails(tokens))
	}

	return view
}

func (m Model) renderToolbar(tokens theme.Tokens) string {
	var search string
	if m.screen == modeSearch {
		search = m.search.View()
	} else if m.state.Search != "" {
		search = "⌕ " + m.state.Search
	} else {
		search = mutedStyle.Render("⌕ Search contacts... (/)")
	}

	access := "All Access"
	if m.state.Access != query.AccessAll {
		access = strings.ToUpper(m.state.Access[:1]) + m.state.Access[1:]
	}
	filter := fmt.Sprintf("Filter by Access: %s", access)

	addBg := theme.Resolve("blueAccent.500", tokens)
	add := lipgloss.NewStyle().
		Background(lipgloss.Color(addBg)).
		Foreground(lipgloss.Color(theme.Foreground(addBg))).
		Padding(0, 1).
		Render("+ ADD CONTACT (a)")

	return lipgloss.JoinHorizontal(lipgloss.Center,
		lipgloss.NewStyle().Width(36).Render(search),
		"  ",
		lipgloss.NewStyle().Width(30).Render(filter),
		"  ",
		add,
	)
}

func (m Model) renderTable(f Frame, tokens theme.Tokens) string {
	headerBg := theme.Resolve("primary.500", tokens)
	headerFg := theme.Resolve("grey.100", tokens)
	header := lipgloss.NewStyle().
		Bold(true).
		Background(lipgloss.Color(headerBg)).
		Foreground(lipgloss.Color(headerFg)).
		Render(joinCells("ID", "Name", "Email", "Age", "Phone", "Access Level"))

	lines := []string{header}
	if len(f.Rows) == 0 {
		lines = append(lines, mutedStyle.Render("  No contacts match"))
	}
	for _, r := range f.Rows {
		lines = append(lines, renderRow(r))
	}

	return borderStyle.
		BorderForeground(lipgloss.Color(theme.Resolve("primary.400", tokens))).
		Render(strings.Join(lines, "\n"))
}

func joinCells(id, name, email, age, phone, access string) string {
	cell := func(w int, s string) string {
		return lipgloss.NewStyle().Width(w).MaxWidth(w).Render(s)
	}
	return cell(colID, id) + cell(colName, name) + cell(colEmail, email) +
		cell(colAge, age) + cell(colPhone, phone) + cell(colAccess, access)
}

func renderRow(r Row) string {
	c := r.Contact
	fg := theme.Foreground(r.Color)
	badge := lipgloss.NewStyle().
		Background(lipgloss.Color(r.Color)).
		Foreground(lipgloss.Color(fg))

	avatar := badge.Render(" "+c.Initial()+" ") + " "
	chip := badge.Bold(true).Render(" " + r.Icon.Glyph() + " " + c.AccessLabel() + " ")

	line := lipgloss.NewStyle().Width(colID).Render(fmt.Sprintf("%d", c.ID)) +
		lipgloss.NewStyle().Width(colName).MaxWidth(colName).Render(avatar+c.Name) +
		lipgloss.NewStyle().Width(colEmail).MaxWidth(colEmail).Render("✉ "+c.Email) +
		lipgloss.NewStyle().Width(colAge).Render(fmt.Sprintf("%d", c.Age)) +
		lipgloss.NewStyle().Width(colPhone).MaxWidth(colPhone).Render("☎ "+c.Phone) +
		chip

	if r.Selected {
		return selectedStyle.Render("▸") + line
	}
	return " " + line
}

func (m Model) renderPagination(f Frame) string {
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = max(f.PageSize, 1)
	p.TotalPages = max(f.PageCount, 1)
	p.Page = min(f.Page, p.TotalPages-1)
	p.ActiveDot = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Render("●")
	p.InactiveDot = mutedStyle.Render("○")

	rng := fmt.Sprintf("%d–%d of %d", f.First, f.Last, f.Total)
	if f.Total == 0 {
		rng = "0 of 0"
	}
	return fmt.Sprintf(" Rows per page: %d (s)   %s   %s", f.PageSize, rng, p.View())
}

func renderSummary(s query.Summary, tokens theme.Tokens) string {
	card := func(token, title string, n int) string {
		bg := theme.Resolve(token, tokens)
		return lipgloss.NewStyle().
			Background(lipgloss.Color(bg)).
			Foreground(lipgloss.Color(theme.Foreground(bg))).
			Padding(0, 2).
			Width(22).
			Render(fmt.Sprintf("%s\n%d", title, n))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("blueAccent.500", "Total Contacts", s.Total), " ",
		card("redAccent.500", "Admin Users", s.Admin), " ",
		card("greenAccent.500", "Manager Users", s.Manager), " ",
		card("yellowAccent.500", "Regular Users", s.User),
	)
}

func (m Model) renderStatus(tokens theme.Tokens) string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Resolve("redAccent.500", tokens))).
			Render(m.status)
	}
	return mutedStyle.Render(m.status)
}

func (m Model) renderMenu(tokens theme.Tokens) string {
	c, _ := m.store.Get(m.state.Target)
	danger := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Resolve("redAccent.500", tokens)))

	lines := []string{
		fmt.Sprintf("Actions for %s", c.Name),
		"",
		"  v  View Details",
		"  e  Edit Contact",
		danger.Render("  d  Delete Contact"),
		"",
		mutedStyle.Render("Esc: close"),
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderConfirmDelete(tokens theme.Tokens) string {
	c, _ := m.store.Get(m.state.Target)
	danger := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Resolve("redAccent.500", tokens)))

	return strings.Join([]string{
		danger.Render("Delete Contact"),
		"",
		fmt.Sprintf("Delete contact '%s'? (y/n)", c.Name),
	}, "\n")
}

func (m Model) renderDetails(tokens theme.Tokens) string {
	c, _ := m.store.Get(m.state.Target)
	color := theme.AccessColor(c.Access, tokens)
	chip := lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color(theme.Foreground(color))).
		Render(" " + theme.AccessIcon(c.Access).Glyph() + " " + c.AccessLabel() + " ")

	lines := []string{
		titleStyle.Render(c.Name),
		strings.Repeat("─", 36),
		fmt.Sprintf("ID:      %d", c.ID),
		fmt.Sprintf("Email:   %s", c.Email),
		fmt.Sprintf("Age:     %d", c.Age),
		fmt.Sprintf("Phone:   %s", c.Phone),
		"Access:  " + chip,
		"",
		mutedStyle.Render("Press any key to close"),
	}
	return strings.Join(lines, "\n")
}

// overlay centers a bordered box on the screen
func (m Model) overlay(content string) string {
	box := borderStyle.
		Padding(1).
		Background(lipgloss.Color("235")).
		Render(content)

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box)
}
