package domain

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ItemRequest struct {
	Credentials
	ItemIdentifier string `json:"itemIdentifier"`
}

type BlockRequest struct {
	Username string `json:"username"`
	Reason   string `json:"reason"`
}

type LoginResult struct {
	Username string `json:"username"`
	// Allowed is true for a validated patron, or when FBS was offline and
	// the kiosk lets the patron in unauthenticated.
	Allowed      bool   `json:"allowed"`
	Online       bool   `json:"online"`
	PersonalName string `json:"personalName,omitempty"`
}

type LibraryStatus struct {
	InstitutionID string            `json:"institutionId"`
	Online        bool              `json:"online"`
	Fields        map[string]string `json:"fields,omitempty"`
}

type PatronStatus struct {
	PatronID            string `json:"patronId"`
	PersonalName        string `json:"personalName,omitempty"`
	ValidPatron         bool   `json:"validPatron"`
	ValidPatronPassword bool   `json:"validPatronPassword"`
	ScreenMessage       string `json:"screenMessage,omitempty"`
}

type Patron struct {
	PatronStatus
	Email        string   `json:"email,omitempty"`
	HomeAddress  string   `json:"homeAddress,omitempty"`
	FeeAmount    string   `json:"feeAmount,omitempty"`
	ChargedItems []string `json:"chargedItems,omitempty"`
	HoldItems    []string `json:"holdItems,omitempty"`
	OverdueItems []string `json:"overdueItems,omitempty"`
	FineItems    []string `json:"fineItems,omitempty"`
}

type CirculationResult struct {
	ItemIdentifier string `json:"itemIdentifier"`
	OK             bool   `json:"ok"`
	Title          string `json:"title,omitempty"`
	DueDate        string `json:"dueDate,omitempty"`
	ScreenMessage  string `json:"screenMessage,omitempty"`
}

type RenewAllResult struct {
	Renewed   []string `json:"renewed"`
	Unrenewed []string `json:"unrenewed"`
}
