// Package sip2 builds SIP2 request lines and parses SIP2 replies as spoken
// by FBS. It performs no I/O.
package sip2

// Command is the two digit code that prefixes a request line.
type Command string

const (
	CommandSCStatus          Command = "99"
	CommandPatronStatus      Command = "23"
	CommandPatronInformation Command = "63"
	CommandCheckout          Command = "11"
	CommandCheckin           Command = "09"
	CommandRenew             Command = "29"
	CommandRenewAll          Command = "65"
	CommandBlockPatron       Command = "01"
)

// Reply codes sent back by FBS.
const (
	ReplyACSStatus         = "98"
	ReplyPatronStatus      = "24"
	ReplyPatronInformation = "64"
	ReplyCheckout          = "12"
	ReplyCheckin           = "10"
	ReplyRenew             = "30"
	ReplyRenewAll          = "66"
)

// Field codes.
const (
	FieldInstitutionID       = "AO"
	FieldPatronID            = "AA"
	FieldItemID              = "AB"
	FieldTerminalPassword    = "AC"
	FieldPatronPassword      = "AD"
	FieldPersonalName        = "AE"
	FieldScreenMessage       = "AF"
	FieldPrintLine           = "AG"
	FieldDueDate             = "AH"
	FieldTitle               = "AJ"
	FieldBlockedCardMessage  = "AL"
	FieldCurrentLocation     = "AP"
	FieldHoldItems           = "AS"
	FieldOverdueItems        = "AT"
	FieldChargedItems        = "AU"
	FieldFineItems           = "AV"
	FieldHomeAddress         = "BD"
	FieldEmail               = "BE"
	FieldValidPatron         = "BL"
	FieldRenewedItems        = "BM"
	FieldUnrenewedItems      = "BN"
	FieldFeeAmount           = "BV"
	FieldItemProperties      = "CH"
	FieldValidPatronPassword = "CQ"
)

const fieldDelimiter = "|"
