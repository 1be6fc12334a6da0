package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type VoucherType string

const (
	VoucherPercentage VoucherType = "PERCENTAGE"
	VoucherFixed      VoucherType = "FIXED"
)

type Voucher struct {
	ID            uint64
	Code          string
	Type          VoucherType
	Value         decimal.Decimal
	MaxDiscount   decimal.Decimal
	MinOrderValue decimal.Decimal
	StartsAt      time.Time
	EndsAt        *time.Time
	UsageLimit    int
	UsedCount     int
}

// VoucherUsage existence means the user has spent their single allowed use of
// the voucher. Unique per (UserID, VoucherID).
type VoucherUsage struct {
	UserID    uint64
	VoucherID uint64
	OrderID   uint64
	UsedAt    time.Time
}
