package sip2

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2016, 3, 7, 9, 4, 5, 0, time.UTC)

func newTestBuilder() Builder {
	return Builder{Agency: "DK-775100", Location: "hb", Now: func() time.Time { return fixedNow }}
}

func TestBuilderProducesOriginalWireFormat(t *testing.T) {
	t.Parallel()

	b := newTestBuilder()
	ts := "20160307    090405"

	tests := []struct {
		name string
		msg  Message
		want string
	}{
		{"sc status", b.SCStatus(), "990xxx2.00"},
		{"patron status", b.PatronStatus("1234567890", "1111"), "23009" + ts + "|AODK-775100|AA1234567890|AC|AD1111|"},
		{"patron information", b.PatronInformation("1234567890", "1111"), "63009" + ts + "YYYYYYYYY|AODK-775100|AA1234567890|AC|AD1111|"},
		{"checkout", b.Checkout("1234567890", "1111", "3846731676"), "11NN" + ts + ts + "|AODK-775100|AA1234567890|AB3846731676|AC|CH|AD1111|"},
		{"checkin", b.Checkin("3846731676"), "09N" + ts + ts + "|APhb|AODK-775100|AB3846731676|AC|CH|"},
		{"renew", b.Renew("1234567890", "1111", "3846731676"), "29NN" + ts + ts + "|AODK-775100|AA1234567890|AD1111|AB3846731676|"},
		{"renew all", b.RenewAll("1234567890", "1111"), "65" + ts + "|AODK-775100|AA1234567890|AD1111|"},
		{"block patron", b.BlockPatron("1234567890", "too many attempts"), "01N" + ts + "|AODK-775100|ALtoo many attempts|AA1234567890|AC|"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.msg.String())
		})
	}
}

func TestBuilderEmitsEmptyFieldsInLayoutOrder(t *testing.T) {
	t.Parallel()

	b := Builder{Now: func() time.Time { return fixedNow }}
	commands := []Command{
		CommandPatronStatus,
		CommandPatronInformation,
		CommandCheckout,
		CommandCheckin,
		CommandRenew,
		CommandRenewAll,
		CommandBlockPatron,
	}

	for _, cmd := range commands {
		msg, err := b.Build(cmd, Params{})
		require.NoError(t, err)

		codes, ok := Layout(cmd)
		require.True(t, ok)
		require.Len(t, msg.Fields, len(codes), "command %s", cmd)

		line := msg.String()
		variable := line[strings.Index(line, "|")+1:]
		tokens := strings.Split(strings.TrimSuffix(variable, "|"), "|")
		assert.Equal(t, codes, tokens, "command %s keeps every field, empty or not", cmd)
	}
}

func TestBuilderDoesNotValidateArguments(t *testing.T) {
	t.Parallel()

	msg := newTestBuilder().PatronStatus("not-a-number", "")
	assert.Contains(t, msg.String(), "|AAnot-a-number|AC|AD|")
}

func TestBuilderUsesSuppliedInstant(t *testing.T) {
	t.Parallel()

	at := time.Date(2020, 12, 31, 23, 59, 58, 0, time.UTC)
	msg, err := newTestBuilder().Build(CommandRenewAll, Params{At: at})
	require.NoError(t, err)
	assert.Equal(t, "20201231    235958", msg.Fixed)
}

func TestBuilderRejectsUnknownCommand(t *testing.T) {
	t.Parallel()

	_, err := newTestBuilder().Build(Command("42"), Params{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestCheckoutAndRenewCarryTwoIdenticalTimestamps(t *testing.T) {
	t.Parallel()

	b := newTestBuilder()
	for _, msg := range []Message{b.Checkout("1", "2", "3"), b.Renew("1", "2", "3")} {
		require.Len(t, msg.Fixed, 2+2*len(TimestampLayout))
		first := msg.Fixed[2 : 2+len(TimestampLayout)]
		second := msg.Fixed[2+len(TimestampLayout):]
		assert.Equal(t, first, second)
	}
}

func TestMessageFirstField(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FieldInstitutionID, newTestBuilder().Checkin("1").FirstField())
	assert.Equal(t, FieldInstitutionID, Message{Command: "42"}.FirstField())
}
