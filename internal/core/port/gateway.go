package port

import (
	"context"

	"github.com/edumart/edupay/internal/core/domain"
	"github.com/govalues/decimal"
)

// PaymentIntent describes the payment a gateway should collect. Ref is the
// correlation id registered before redirect construction; providers echo it
// back in their callback.
type PaymentIntent struct {
	Ref       string
	Amount    decimal.Decimal
	OrderInfo string
	ClientIP  string
}

type Redirect struct {
	Provider domain.PaymentMethod
	URL      string
	Ref      string
}

// CallbackResult is the provider-neutral view of an inbound callback after
// signature verification.
type CallbackResult struct {
	Provider      domain.PaymentMethod
	Ref           string
	ProviderTxnID string
	Amount        decimal.Decimal
	Success       bool
	ResultCode    string
}

//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock
type PaymentGateway interface {
	Provider() domain.PaymentMethod
	// BuildRedirect produces the signed pay URL. Implementations that call
	// out to the provider use a short timeout and report failures as
	// domain.ErrGatewayUnavailable.
	BuildRedirect(ctx context.Context, intent PaymentIntent) (*Redirect, error)
	// VerifyCallback validates the provider checksum and normalizes the raw
	// payload. A bad signature yields domain.ErrSignatureInvalid.
	VerifyCallback(params map[string]string) (*CallbackResult, error)
	// AckSuccess and AckFailure render the body the provider expects in
	// response to a callback delivery.
	AckSuccess() (int, any)
	AckFailure() (int, any)
}
