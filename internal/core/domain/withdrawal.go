package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "PENDING"
	WithdrawalApproved  WithdrawalStatus = "APPROVED"
	WithdrawalRejected  WithdrawalStatus = "REJECTED"
	WithdrawalCancelled WithdrawalStatus = "CANCELLED"
)

// WithdrawalRequest links to the pending ledger hold it placed at creation.
// Approval keeps the hold as a permanent debit; rejection and cancellation
// credit the amount back.
type WithdrawalRequest struct {
	ID            uint64
	OwnerID       uint64
	Amount        decimal.Decimal
	BankName      string
	AccountNumber string
	AccountHolder string
	Status        WithdrawalStatus
	TransactionID uint64
	CreatedAt     time.Time
	ResolvedAt    *time.Time
}
