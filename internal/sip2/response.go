package sip2

import (
	"fmt"
	"strings"

	"github.com/bnema/bibbox-fbs/internal/domain"
)

// Response is a decoded FBS reply.
type Response struct {
	// Code is the two digit reply code, empty when the reply carried only
	// variable fields.
	Code string
	// Fixed is the fixed-length header between Code and the first field.
	Fixed  string
	fields []Field
}

// fixedLengths is the length of the fixed header that follows each reply
// code, up to the first variable field.
var fixedLengths = map[string]int{
	ReplyACSStatus:         34,
	ReplyPatronStatus:      35,
	ReplyPatronInformation: 59,
	ReplyCheckout:          22,
	ReplyCheckin:           22,
	ReplyRenew:             22,
	ReplyRenewAll:          27,
}

// Parse decodes raw into a Response. The variable part of raw must begin with
// firstField, optionally preceded by a known two digit reply code and its
// complete fixed header. Anything else is a *domain.ParseError.
func Parse(raw string, firstField string) (*Response, error) {
	line := strings.TrimSpace(raw)

	res := &Response{}
	variable := line
	if !strings.HasPrefix(line, firstField) {
		if len(line) < 2 || !isDigits(line[:2]) {
			return nil, &domain.ParseError{Expected: firstField, Raw: raw}
		}

		res.Code = line[:2]
		n, ok := fixedLengths[res.Code]
		if !ok {
			return nil, &domain.ParseError{Expected: firstField, Raw: raw, Reason: "unknown reply code " + res.Code}
		}
		if len(line) < 2+n {
			return nil, &domain.ParseError{Expected: firstField, Raw: raw, Reason: fmt.Sprintf("reply %s: fixed header shorter than %d characters", res.Code, n)}
		}
		res.Fixed = line[2 : 2+n]
		variable = line[2+n:]
		if !strings.HasPrefix(variable, firstField) {
			return nil, &domain.ParseError{Expected: firstField, Raw: raw}
		}
		if hasOKFlag(res.Code) && res.Fixed[0] != '0' && res.Fixed[0] != '1' {
			return nil, &domain.ParseError{Expected: firstField, Raw: raw, Reason: fmt.Sprintf("reply %s: invalid ok flag %q", res.Code, res.Fixed[0])}
		}
	}

	for _, token := range strings.Split(variable, fieldDelimiter) {
		if token == "" {
			continue
		}
		if len(token) < 2 {
			return nil, &domain.ParseError{Expected: firstField, Raw: raw, Reason: "malformed field " + token}
		}
		res.fields = append(res.fields, Field{Code: token[:2], Value: token[2:]})
	}

	return res, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// Get returns the first value of code.
func (r *Response) Get(code string) string {
	value, _ := r.Lookup(code)
	return value
}

func (r *Response) Lookup(code string) (string, bool) {
	for _, field := range r.fields {
		if field.Code == code {
			return field.Value, true
		}
	}
	return "", false
}

// Values returns every value of a repeatable code, in reply order.
func (r *Response) Values(code string) []string {
	var values []string
	for _, field := range r.fields {
		if field.Code == code {
			values = append(values, field.Value)
		}
	}
	return values
}

// Fields flattens the reply, keeping the first value of repeated codes.
func (r *Response) Fields() map[string]string {
	fields := make(map[string]string, len(r.fields))
	for _, field := range r.fields {
		if _, ok := fields[field.Code]; !ok {
			fields[field.Code] = field.Value
		}
	}
	return fields
}

// OK reports the ok flag of circulation replies. Replies of other codes are
// ok; a circulation reply without the flag is not.
func (r *Response) OK() bool {
	if !hasOKFlag(r.Code) {
		return true
	}
	return r.Fixed != "" && r.Fixed[0] == '1'
}

func hasOKFlag(code string) bool {
	switch code {
	case ReplyCheckout, ReplyCheckin, ReplyRenew, ReplyRenewAll:
		return true
	default:
		return false
	}
}

func (r *Response) HasError() bool {
	return len(r.failures()) > 0
}

// Error composes a readable message from the screen message and print line
// fields. It is empty exactly when HasError is false.
func (r *Response) Error() string {
	failures := r.failures()
	if len(failures) == 0 {
		return ""
	}

	var parts []string
	for _, code := range []string{FieldScreenMessage, FieldPrintLine} {
		for _, value := range r.Values(code) {
			if value = strings.TrimSpace(value); value != "" {
				parts = append(parts, value)
			}
		}
	}
	if len(parts) == 0 {
		parts = failures
	}
	return strings.Join(parts, "; ")
}

func (r *Response) failures() []string {
	var failures []string
	if r.Get(FieldValidPatron) == "N" {
		failures = append(failures, "invalid patron")
	}
	if r.Get(FieldValidPatronPassword) == "N" {
		failures = append(failures, "invalid patron password")
	}
	if !r.OK() {
		failures = append(failures, "request rejected by FBS")
	}
	return failures
}

// RemoteError wraps the reported failure, or returns nil for a successful
// reply.
func (r *Response) RemoteError() error {
	if !r.HasError() {
		return nil
	}
	return &domain.RemoteError{Message: r.Error(), Fields: r.Fields()}
}
