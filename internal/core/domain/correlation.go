package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type CorrelationKind string

const (
	CorrelationOrder   CorrelationKind = "ORDER"
	CorrelationDeposit CorrelationKind = "DEPOSIT"
)

// GatewayCorrelation maps an opaque reference handed to a payment provider at
// redirect-build time back to the order or deposit it belongs to. Persisted
// before the buyer is redirected, looked up when the callback arrives.
type GatewayCorrelation struct {
	ID        string
	Kind      CorrelationKind
	OwnerID   uint64
	OrderID   *uint64
	Amount    decimal.Decimal
	Provider  PaymentMethod
	CreatedAt time.Time
}
