package receipt

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/bibbox-fbs/internal/domain"
	"github.com/bnema/bibbox-fbs/internal/sip2"
)

// Receipt is what the kiosk shows, or prints, after an operation.
type Receipt struct {
	Title string
	Rows  []Row
	Items []Item
	// Empty is shown when there are no items.
	Empty string
}

type Row struct {
	Label string
	Value string
}

type Item struct {
	ID      string
	Title   string
	Due     string
	OK      bool
	Message string
}

type RenderOptions struct {
	// Location is used to read due dates. Nil means time.Local.
	Location *time.Location
}

// Render lays out r for the terminal.
func Render(r Receipt, opts RenderOptions) string {
	return renderView(r, opts, newStyles())
}

func renderView(r Receipt, opts RenderOptions, s styles) string {
	lines := []string{s.title.Render(r.Title)}

	for _, row := range r.Rows {
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.label.Render(row.Label+":"),
			" ",
			s.value.Render(row.Value),
		))
	}

	if len(r.Items) == 0 {
		if r.Empty != "" {
			lines = append(lines, s.section.Render(s.empty.Render(r.Empty)))
		}
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.header.MarginTop(1).Render(fmt.Sprintf("items: %d", len(r.Items))))
	for _, item := range r.Items {
		lines = append(lines, itemLine(item, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func itemLine(item Item, opts RenderOptions, s styles) string {
	mark := s.ok.Render("✓")
	if !item.OK {
		mark = s.failed.Render("✗")
	}

	name := item.ID
	if item.Title != "" {
		name = fmt.Sprintf("%s (%s)", item.Title, item.ID)
	}

	parts := []string{mark, " ", s.item.Render(name)}
	if item.Due != "" {
		parts = append(parts, " ", s.meta.Render("due "+formatDue(item.Due, opts.Location)))
	}
	if item.Message != "" {
		parts = append(parts, " ", s.meta.Render("- "+item.Message))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func formatDue(raw string, loc *time.Location) string {
	due, err := sip2.ParseTimestamp(raw, loc)
	if err != nil {
		return strings.TrimSpace(raw)
	}
	return due.Format("02 Jan 2006")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func FromLogin(result domain.LoginResult) Receipt {
	mode := "online"
	if !result.Online {
		mode = "offline (not validated)"
	}

	rows := []Row{{Label: "patron", Value: maskID(result.Username)}, {Label: "mode", Value: mode}}
	if result.PersonalName != "" {
		rows = append(rows, Row{Label: "name", Value: result.PersonalName})
	}
	return Receipt{Title: "Logged in", Rows: rows}
}

func FromLibraryStatus(status domain.LibraryStatus) Receipt {
	rows := []Row{
		{Label: "institution", Value: status.InstitutionID},
		{Label: "online", Value: yesNo(status.Online)},
	}
	if name := status.Fields["AM"]; name != "" {
		rows = append(rows, Row{Label: "library", Value: name})
	}
	return Receipt{Title: "FBS status", Rows: rows}
}

func FromPatron(patron domain.Patron) Receipt {
	rows := []Row{{Label: "patron", Value: maskID(patron.PatronID)}}
	if patron.PersonalName != "" {
		rows = append(rows, Row{Label: "name", Value: patron.PersonalName})
	}
	if patron.Email != "" {
		rows = append(rows, Row{Label: "email", Value: patron.Email})
	}
	if patron.FeeAmount != "" {
		rows = append(rows, Row{Label: "fees", Value: patron.FeeAmount})
	}
	rows = append(rows,
		Row{Label: "loans", Value: fmt.Sprint(len(patron.ChargedItems))},
		Row{Label: "overdue", Value: fmt.Sprint(len(patron.OverdueItems))},
		Row{Label: "reservations", Value: fmt.Sprint(len(patron.HoldItems))},
	)

	items := make([]Item, 0, len(patron.ChargedItems))
	overdue := map[string]bool{}
	for _, id := range patron.OverdueItems {
		overdue[id] = true
	}
	for _, id := range patron.ChargedItems {
		item := Item{ID: id, OK: !overdue[id]}
		if overdue[id] {
			item.Message = "overdue"
		}
		items = append(items, item)
	}

	return Receipt{Title: "Patron", Rows: rows, Items: items, Empty: "No loans."}
}

// FromCirculation builds the receipt of a checkout, checkin or renew session.
func FromCirculation(title string, results []domain.CirculationResult) Receipt {
	items := make([]Item, 0, len(results))
	for _, result := range results {
		items = append(items, ItemFromResult(result))
	}
	return Receipt{Title: title, Items: items, Empty: "No items."}
}

func ItemFromResult(result domain.CirculationResult) Item {
	return Item{
		ID:      result.ItemIdentifier,
		Title:   result.Title,
		Due:     result.DueDate,
		OK:      result.OK,
		Message: result.ScreenMessage,
	}
}

func FromRenewAll(result domain.RenewAllResult) Receipt {
	items := make([]Item, 0, len(result.Renewed)+len(result.Unrenewed))
	for _, id := range result.Renewed {
		items = append(items, Item{ID: id, OK: true})
	}
	for _, id := range result.Unrenewed {
		items = append(items, Item{ID: id, Message: "not renewed"})
	}
	return Receipt{Title: "Renew all", Items: items, Empty: "Nothing to renew."}
}

func FromBlock(status domain.PatronStatus) Receipt {
	rows := []Row{{Label: "patron", Value: maskID(status.PatronID)}}
	if status.ScreenMessage != "" {
		rows = append(rows, Row{Label: "message", Value: status.ScreenMessage})
	}
	return Receipt{Title: "Patron blocked", Rows: rows}
}

func maskID(id string) string {
	if len(id) <= 4 {
		return id
	}
	return strings.Repeat("*", len(id)-4) + id[len(id)-4:]
}
