package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusRefunded  OrderStatus = "REFUNDED"
)

type PaymentMethod string

const (
	PaymentWallet       PaymentMethod = "WALLET"
	PaymentBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentFastpay      PaymentMethod = "FASTPAY"
	PaymentOvopay       PaymentMethod = "OVOPAY"
	PaymentZentra       PaymentMethod = "ZENTRA"
)

// GatewayMethods lists the payment methods settled asynchronously through an
// external provider redirect. Wallet and bank transfer settle in-process.
var GatewayMethods = []PaymentMethod{PaymentFastpay, PaymentOvopay, PaymentZentra}

func (m PaymentMethod) IsGateway() bool {
	for _, g := range GatewayMethods {
		if m == g {
			return true
		}
	}
	return false
}

// OrderLine snapshots the price the buyer actually paid per unit. SellerID is
// copied from the course so the revenue split survives later catalog edits.
type OrderLine struct {
	ID        uint64
	OrderID   uint64
	CourseID  uint64
	SellerID  uint64
	ListPrice decimal.Decimal
	UnitPrice decimal.Decimal
	Quantity  int
}

type Order struct {
	ID             uint64
	BuyerID        uint64
	Lines          []OrderLine
	TotalAmount    decimal.Decimal
	DiscountAmount decimal.Decimal
	FinalAmount    decimal.Decimal
	VoucherID      *uint64
	PaymentMethod  PaymentMethod
	Status         OrderStatus
	Contact        string
	CreatedAt      time.Time
	PaidAt         *time.Time
	CancelledAt    *time.Time
	RefundedAt     *time.Time
}

// Line returns the order line for courseID, or nil.
func (o *Order) Line(courseID uint64) *OrderLine {
	for i := range o.Lines {
		if o.Lines[i].CourseID == courseID {
			return &o.Lines[i]
		}
	}
	return nil
}
