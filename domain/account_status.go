// Package domain defines the closed enumeration sets shared by the
// bank's account microservices. The values are data-only contracts:
// they carry no behavior beyond well-formedness checks and serialize
// as their string spelling.
package domain

// AccountStatus is the lifecycle state of an account.
type AccountStatus string

const (
	StatusPending   AccountStatus = "PENDING"
	StatusActive    AccountStatus = "ACTIVE"
	StatusSuspended AccountStatus = "SUSPENDED"
	StatusClosed    AccountStatus = "CLOSED"
)

// AccountStatuses returns all declared statuses.
func AccountStatuses() []AccountStatus {
	return []AccountStatus{StatusPending, StatusActive, StatusSuspended, StatusClosed}
}

// IsValid reports whether s is a declared status. Use it to reject
// unknown values arriving over the wire.
func (s AccountStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusSuspended, StatusClosed:
		return true
	}
	return false
}

func (s AccountStatus) String() string {
	return string(s)
}
