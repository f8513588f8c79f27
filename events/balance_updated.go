package events

import "github.com/shopspring/decimal"

// BalanceUpdated is published after a posting changes an account's
// balance. Amounts are exact decimals, never floats.
type BalanceUpdated struct {
	AccountNumber   string          `json:"account_number"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	NewBalance      decimal.Decimal `json:"new_balance"`
	Metadata
}

func NewBalanceUpdated(accountNumber string, previous, next decimal.Decimal) BalanceUpdated {
	return BalanceUpdated{
		AccountNumber:   accountNumber,
		PreviousBalance: previous,
		NewBalance:      next,
		Metadata:        newMetadata(),
	}
}
