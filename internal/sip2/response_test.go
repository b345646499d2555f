package sip2

import (
	"errors"
	"testing"

	"github.com/bnema/bibbox-fbs/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReplyStartingWithExpectedField(t *testing.T) {
	t.Parallel()

	res, err := Parse("AO|AAvalid|BLY|CQY|", FieldInstitutionID)
	require.NoError(t, err)

	value, ok := res.Lookup(FieldInstitutionID)
	assert.True(t, ok)
	assert.Empty(t, value)
	assert.Equal(t, "valid", res.Get(FieldPatronID))
	assert.Equal(t, "Y", res.Get(FieldValidPatron))
	assert.Equal(t, "Y", res.Get(FieldValidPatronPassword))
	assert.False(t, res.HasError())
	assert.Empty(t, res.Error())
	assert.Empty(t, res.Code)
}

func TestParseReplyWithCodeAndFixedHeader(t *testing.T) {
	t.Parallel()

	raw := "121NUY20160307    090405AODK-775100|AA1234567890|AB3846731676|AJHeavy Water|AH20160404    235959|\r\n"
	res, err := Parse(raw, FieldInstitutionID)
	require.NoError(t, err)

	assert.Equal(t, ReplyCheckout, res.Code)
	assert.Equal(t, "1NUY20160307    090405", res.Fixed)
	assert.Equal(t, "DK-775100", res.Get(FieldInstitutionID))
	assert.Equal(t, "Heavy Water", res.Get(FieldTitle))
	assert.True(t, res.OK())
	assert.False(t, res.HasError())
}

func TestParseRejectsUnexpectedFirstField(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"AA123|AOx|", "XX|AO|", "", "garbage"} {
		res, err := Parse(raw, FieldInstitutionID)
		assert.Nil(t, res)

		var parseErr *domain.ParseError
		require.True(t, errors.As(err, &parseErr), "raw %q", raw)
		assert.Equal(t, FieldInstitutionID, parseErr.Expected)

		var remoteErr *domain.RemoteError
		assert.False(t, errors.As(err, &remoteErr))
	}
}

func TestParseRejectsMalformedField(t *testing.T) {
	t.Parallel()

	_, err := Parse("AOx|A|", FieldInstitutionID)
	var parseErr *domain.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Error(), "malformed field")
}

func TestParseToleratesTrailingEmptyTokens(t *testing.T) {
	t.Parallel()

	res, err := Parse("AOx|AAy|||", FieldInstitutionID)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"AO": "x", "AA": "y"}, res.Fields())
}

func TestParseKeepsRepeatedFields(t *testing.T) {
	t.Parallel()

	res, err := Parse("AOx|AU111|AU222|AU333|", FieldInstitutionID)
	require.NoError(t, err)
	assert.Equal(t, []string{"111", "222", "333"}, res.Values(FieldChargedItems))
	assert.Equal(t, "111", res.Get(FieldChargedItems))
}

func TestHasErrorMatchesErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       string
		wantError bool
		wantMsg   string
	}{
		{"valid patron", "AO|AA1|BLY|CQY|", false, ""},
		{"no indicators", "AO|AA1|", false, ""},
		{"invalid patron", "AO|AA1|BLN|CQN|", true, "invalid patron; invalid patron password"},
		{"invalid pin", "AO|AA1|BLY|CQN|", true, "invalid patron password"},
		{"screen message wins", "AO|AA1|BLY|CQN|AFWrong pin|AGtry again|", true, "Wrong pin; try again"},
		{"screen message alone is not an error", "AO|AA1|BLY|CQY|AFWelcome|", false, ""},
		{"checkout rejected", "120NUN20160307    090405AOx|AB1|AFItem reserved|", true, "Item reserved"},
		{"checkin rejected without message", "100NUN20160307    090405AOx|AB1|", true, "request rejected by FBS"},
		{"renew ok", "301YUN20160307    090405AOx|AB1|", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Parse(tt.raw, FieldInstitutionID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantError, res.HasError())
			assert.Equal(t, tt.wantMsg, res.Error())
			assert.Equal(t, res.HasError(), res.Error() != "")

			if tt.wantError {
				var remoteErr *domain.RemoteError
				require.ErrorAs(t, res.RemoteError(), &remoteErr)
				assert.Equal(t, tt.wantMsg, remoteErr.Message)
			} else {
				assert.NoError(t, res.RemoteError())
			}
		})
	}
}

func TestParseRejectsBrokenReplyHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		raw    string
		reason string
	}{
		{"field before institution", "24              00120160307    120000AA1234|AOhb|BLY|CQY|", ""},
		{"unknown reply code", "99garbage|AOhb|", "unknown reply code 99"},
		{"truncated checkout", "12AO", "fixed header shorter than 22"},
		{"short patron status", "24 001AOhb|BLY|", "fixed header shorter than 35"},
		{"missing ok flag", "12 NUY20160307    090405AOx|AB1|", "invalid ok flag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Parse(tt.raw, FieldInstitutionID)
			assert.Nil(t, res)

			var parseErr *domain.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, FieldInstitutionID, parseErr.Expected)
			assert.Contains(t, parseErr.Reason, tt.reason)
		})
	}
}

func TestParseKeepsWholeFixedHeader(t *testing.T) {
	t.Parallel()

	res, err := Parse("66100020001"+"20160307    090405"+"AODK-775100|BM5010|", FieldInstitutionID)
	require.NoError(t, err)

	assert.Equal(t, ReplyRenewAll, res.Code)
	assert.Equal(t, "10002000120160307    090405", res.Fixed)
	assert.True(t, res.OK())
}

func TestOKWithoutFlagIsNotOK(t *testing.T) {
	t.Parallel()

	assert.False(t, (&Response{Code: ReplyCheckout}).OK())
	assert.True(t, (&Response{Code: ReplyPatronStatus}).OK())
	assert.True(t, (&Response{}).OK())
}
