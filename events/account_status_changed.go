package events

import "github.com/sixbank/account-library/domain"

// AccountStatusChanged is published when an account moves between
// lifecycle states, e.g. ACTIVE to SUSPENDED.
type AccountStatusChanged struct {
	AccountNumber  string               `json:"account_number"`
	PreviousStatus domain.AccountStatus `json:"previous_status"`
	NewStatus      domain.AccountStatus `json:"new_status"`
	Metadata
}

func NewAccountStatusChanged(accountNumber string, previous, next domain.AccountStatus) AccountStatusChanged {
	return AccountStatusChanged{
		AccountNumber:  accountNumber,
		PreviousStatus: previous,
		NewStatus:      next,
		Metadata:       newMetadata(),
	}
}
