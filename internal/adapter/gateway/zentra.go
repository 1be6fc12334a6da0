package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"net/http"
	"net/url"
	"strings"

	"github.com/edumart/edupay/internal/adapter/config"
	"github.com/edumart/edupay/internal/core/domain"
	"github.com/edumart/edupay/internal/core/port"
	"github.com/govalues/decimal"
)

// Zentra computes its MAC over pipe-joined fields in a fixed order. Its
// documentation defines return code "00" as the only success signal; nothing
// else is inferred from message text.
type Zentra struct {
	appID  string
	key    []byte
	payURL string
}

func NewZentra(cfg config.Zentra) *Zentra {
	return &Zentra{
		appID:  cfg.AppID,
		key:    []byte(cfg.Key),
		payURL: cfg.PayURL,
	}
}

func (z *Zentra) Provider() domain.PaymentMethod {
	return domain.PaymentZentra
}

func (z *Zentra) BuildRedirect(_ context.Context, intent port.PaymentIntent) (*port.Redirect, error) {
	mac := hmacHex(sha256.New, z.key,
		strings.Join([]string{z.appID, intent.Ref, intent.Amount.String(), intent.OrderInfo}, "|"))

	q := url.Values{}
	q.Set("app_id", z.appID)
	q.Set("app_trans_id", intent.Ref)
	q.Set("amount", intent.Amount.String())
	q.Set("description", intent.OrderInfo)
	q.Set("mac", mac)

	return &port.Redirect{
		Provider: domain.PaymentZentra,
		URL:      z.payURL + "?" + q.Encode(),
		Ref:      intent.Ref,
	}, nil
}

func (z *Zentra) VerifyCallback(params map[string]string) (*port.CallbackResult, error) {
	got, ok := params["mac"]
	if !ok {
		return nil, domain.ErrSignatureInvalid
	}

	want := hmacHex(sha256.New, z.key,
		strings.Join([]string{
			params["app_id"],
			params["app_trans_id"],
			params["amount"],
			params["zp_trans_id"],
			params["return_code"],
		}, "|"))
	if !hmac.Equal([]byte(want), []byte(got)) {
		return nil, domain.ErrSignatureInvalid
	}
	if params["app_id"] != z.appID {
		return nil, domain.ErrSignatureInvalid
	}

	amount, err := decimal.Parse(params["amount"])
	if err != nil {
		return nil, domain.ErrCallbackMalformed
	}
	ref := params["app_trans_id"]
	txnID := params["zp_trans_id"]
	if ref == "" || txnID == "" {
		return nil, domain.ErrCallbackMalformed
	}

	code := params["return_code"]
	return &port.CallbackResult{
		Provider:      domain.PaymentZentra,
		Ref:           ref,
		ProviderTxnID: txnID,
		Amount:        amount,
		Success:       code == "00",
		ResultCode:    code,
	}, nil
}

func (z *Zentra) AckSuccess() (int, any) {
	return http.StatusOK, map[string]any{"return_code": 1, "return_message": "success"}
}

func (z *Zentra) AckFailure() (int, any) {
	return http.StatusOK, map[string]any{"return_code": -1, "return_message": "verification failed"}
}
