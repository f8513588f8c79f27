package domain

// AccountType is the product category of an account.
type AccountType string

const (
	TypeSavings      AccountType = "SAVINGS"
	TypeCurrent      AccountType = "CURRENT"
	TypeFixedDeposit AccountType = "FIXED_DEPOSIT"
	TypeLoan         AccountType = "LOAN"
)

func AccountTypes() []AccountType {
	return []AccountType{TypeSavings, TypeCurrent, TypeFixedDeposit, TypeLoan}
}

func (t AccountType) IsValid() bool {
	switch t {
	case TypeSavings, TypeCurrent, TypeFixedDeposit, TypeLoan:
		return true
	}
	return false
}

func (t AccountType) String() string {
	return string(t)
}
