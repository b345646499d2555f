package receipt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/bibbox-fbs/internal/domain"
)

func TestRenderCheckoutReceipt(t *testing.T) {
	output := Render(FromCirculation("Checkout", []domain.CirculationResult{
		{ItemIdentifier: "5010", OK: true, Title: "Dune", DueDate: "20160404    000000"},
		{ItemIdentifier: "5011", OK: false, ScreenMessage: "Item is reserved"},
	}), RenderOptions{Location: time.UTC})

	assert.Contains(t, output, "Checkout")
	assert.Contains(t, output, "items: 2")
	assert.Contains(t, output, "Dune (5010)")
	assert.Contains(t, output, "due 04 Apr 2016")
	assert.Contains(t, output, "5011")
	assert.Contains(t, output, "- Item is reserved")
}

func TestRenderKeepsUnparsableDueDate(t *testing.T) {
	output := Render(FromCirculation("Renew", []domain.CirculationResult{
		{ItemIdentifier: "5010", OK: true, DueDate: "2016-04-04"},
	}), RenderOptions{})

	assert.Contains(t, output, "due 2016-04-04")
}

func TestRenderEmptyReceipt(t *testing.T) {
	output := Render(FromRenewAll(domain.RenewAllResult{}), RenderOptions{})

	assert.Contains(t, output, "Renew all")
	assert.Contains(t, output, "Nothing to renew.")
	assert.NotContains(t, output, "items:")
}

func TestRenderLoginMasksPatron(t *testing.T) {
	output := Render(FromLogin(domain.LoginResult{Username: "1234567890", Allowed: true}), RenderOptions{})

	assert.Contains(t, output, "******7890")
	assert.NotContains(t, output, "1234567890")
	assert.Contains(t, output, "offline (not validated)")
}

func TestFromPatronMarksOverdueLoans(t *testing.T) {
	r := FromPatron(domain.Patron{
		PatronStatus: domain.PatronStatus{PatronID: "1234567890", PersonalName: "Jane Doe"},
		ChargedItems: []string{"5010", "5011"},
		OverdueItems: []string{"5011"},
	})

	assert.Equal(t, []Item{{ID: "5010", OK: true}, {ID: "5011", Message: "overdue"}}, r.Items)
	assert.Contains(t, r.Rows, Row{Label: "loans", Value: "2"})
	assert.Contains(t, r.Rows, Row{Label: "name", Value: "Jane Doe"})
}

func TestFromLibraryStatus(t *testing.T) {
	r := FromLibraryStatus(domain.LibraryStatus{
		InstitutionID: "DK-775100",
		Online:        true,
		Fields:        map[string]string{"AM": "Hovedbiblioteket"},
	})

	assert.Equal(t, []Row{
		{Label: "institution", Value: "DK-775100"},
		{Label: "online", Value: "yes"},
		{Label: "library", Value: "Hovedbiblioteket"},
	}, r.Rows)
}
