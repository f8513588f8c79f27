package domain

// LimitType names a spending or withdrawal restriction applied to an
// account. The amounts themselves live with the consuming service.
type LimitType string

const (
	LimitDailyWithdrawal   LimitType = "DAILY_WITHDRAWAL"
	LimitDailyTransfer     LimitType = "DAILY_TRANSFER"
	LimitSingleTransaction LimitType = "SINGLE_TRANSACTION"
	LimitMonthlySpending   LimitType = "MONTHLY_SPENDING"
)

func LimitTypes() []LimitType {
	return []LimitType{LimitDailyWithdrawal, LimitDailyTransfer, LimitSingleTransaction, LimitMonthlySpending}
}

func (l LimitType) IsValid() bool {
	switch l {
	case LimitDailyWithdrawal, LimitDailyTransfer, LimitSingleTransaction, LimitMonthlySpending:
		return true
	}
	return false
}

func (l LimitType) String() string {
	return string(l)
}
