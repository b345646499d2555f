package ports

// Bus channels served by the adapters. Replies go to the per-call channels of
// the request envelope.
const (
	// ChannelLogin runs the failed login policy before authenticating.
	ChannelLogin = "fbs.login"
	// ChannelAuthenticate asks FBS directly and counts nothing. It is not
	// reachable from the UI.
	ChannelAuthenticate = "fbs.authenticate"

	ChannelStatus       = "fbs.status"
	ChannelPatron       = "fbs.patron"
	ChannelPatronStatus = "fbs.patron.status"
	ChannelCheckout     = "fbs.checkout"
	ChannelCheckin      = "fbs.checkin"
	ChannelRenew        = "fbs.renew"
	ChannelRenewAll     = "fbs.renewall"
	ChannelBlock        = "fbs.block"

	ChannelOnline      = "network.online"
	ChannelConfigFBS   = "config.fbs"
	ChannelStorageLoad = "storage.load"
	ChannelStorageSave = "storage.save"
)
