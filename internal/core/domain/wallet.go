package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type WalletRole string

const (
	WalletBuyer  WalletRole = "BUYER"
	WalletSeller WalletRole = "SELLER"
)

type TxnType string

const (
	TxnDeposit  TxnType = "DEPOSIT"
	TxnWithdraw TxnType = "WITHDRAW"
	TxnPayment  TxnType = "PAYMENT"
	TxnEarning  TxnType = "EARNING"
	TxnRefund   TxnType = "REFUND"
)

type TxnStatus string

const (
	TxnPending   TxnStatus = "PENDING"
	TxnSuccess   TxnStatus = "SUCCESS"
	TxnFailed    TxnStatus = "FAILED"
	TxnApproved  TxnStatus = "APPROVED"
	TxnRejected  TxnStatus = "REJECTED"
	TxnCancelled TxnStatus = "CANCELLED"
)

// Terminal reports whether a transaction status can no longer change.
func (s TxnStatus) Terminal() bool {
	return s != TxnPending
}

// Wallet holds the cached running balance. The balance is authoritative and is
// updated in the same database transaction as every history append.
type Wallet struct {
	ID      uint64
	OwnerID uint64
	Role    WalletRole
	Balance decimal.Decimal
}

// WalletTransaction is an append-only ledger row. Amount is signed: credits
// positive, debits negative. Only the status field ever changes after insert,
// and only PENDING rows may move.
type WalletTransaction struct {
	ID            uint64
	WalletID      uint64
	Type          TxnType
	Amount        decimal.Decimal
	Method        string
	Status        TxnStatus
	OrderID       *uint64
	ProviderTxnID *string
	CreatedAt     time.Time
}
