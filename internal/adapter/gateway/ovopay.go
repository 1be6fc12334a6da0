package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/edumart/edupay/internal/adapter/config"
	"github.com/edumart/edupay/internal/core/domain"
	"github.com/edumart/edupay/internal/core/port"
	"github.com/govalues/decimal"
)

const ovopayTimeout = 5 * time.Second

// OvoPay creates a payment session on the provider side before redirecting,
// so BuildRedirect performs a network call under a short timeout. The
// signature is HMAC-SHA256 over a fixed field ordering. Result code "0" is
// the documented success.
type OvoPay struct {
	partnerCode string
	accessKey   string
	secret      []byte
	endpoint    string
	returnURL   string
	client      *http.Client
}

func NewOvoPay(cfg config.OvoPay) *OvoPay {
	return &OvoPay{
		partnerCode: cfg.PartnerCode,
		accessKey:   cfg.AccessKey,
		secret:      []byte(cfg.Secret),
		endpoint:    cfg.Endpoint,
		returnURL:   cfg.ReturnURL,
		client:      &http.Client{Timeout: ovopayTimeout},
	}
}

func (o *OvoPay) Provider() domain.PaymentMethod {
	return domain.PaymentOvopay
}

type ovopayCreateRequest struct {
	PartnerCode string `json:"partnerCode"`
	RequestID   string `json:"requestId"`
	Amount      string `json:"amount"`
	OrderInfo   string `json:"orderInfo"`
	ReturnURL   string `json:"returnUrl"`
	Signature   string `json:"signature"`
}

type ovopayCreateResponse struct {
	PayURL     string `json:"payUrl"`
	ResultCode int    `json:"resultCode"`
	Message    string `json:"message"`
}

func (o *OvoPay) BuildRedirect(ctx context.Context, intent port.PaymentIntent) (*port.Redirect, error) {
	raw := fmt.Sprintf("accessKey=%s&amount=%s&orderInfo=%s&partnerCode=%s&requestId=%s&returnUrl=%s",
		o.accessKey, intent.Amount, intent.OrderInfo, o.partnerCode, intent.Ref, o.returnURL)

	body, err := json.Marshal(ovopayCreateRequest{
		PartnerCode: o.partnerCode,
		RequestID:   intent.Ref,
		Amount:      intent.Amount.String(),
		OrderInfo:   intent.OrderInfo,
		ReturnURL:   o.returnURL,
		Signature:   hmacHex(sha256.New, o.secret, raw),
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint+"/v2/create", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrGatewayUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: create session status %d", domain.ErrGatewayUnavailable, resp.StatusCode)
	}

	var created ovopayCreateResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrGatewayUnavailable, err)
	}
	if created.ResultCode != 0 || created.PayURL == "" {
		return nil, fmt.Errorf("%w: create session refused: %s", domain.ErrGatewayUnavailable, created.Message)
	}

	return &port.Redirect{
		Provider: domain.PaymentOvopay,
		URL:      created.PayURL,
		Ref:      intent.Ref,
	}, nil
}

func (o *OvoPay) VerifyCallback(params map[string]string) (*port.CallbackResult, error) {
	got, ok := params["signature"]
	if !ok {
		return nil, domain.ErrSignatureInvalid
	}

	raw := fmt.Sprintf("accessKey=%s&amount=%s&partnerCode=%s&requestId=%s&resultCode=%s&transId=%s",
		o.accessKey, params["amount"], params["partnerCode"], params["requestId"],
		params["resultCode"], params["transId"])
	want := hmacHex(sha256.New, o.secret, raw)
	if !hmac.Equal([]byte(want), []byte(got)) {
		return nil, domain.ErrSignatureInvalid
	}

	amount, err := decimal.Parse(params["amount"])
	if err != nil {
		return nil, domain.ErrCallbackMalformed
	}
	ref := params["requestId"]
	txnID := params["transId"]
	if ref == "" || txnID == "" {
		return nil, domain.ErrCallbackMalformed
	}

	code := params["resultCode"]
	return &port.CallbackResult{
		Provider:      domain.PaymentOvopay,
		Ref:           ref,
		ProviderTxnID: txnID,
		Amount:        amount,
		Success:       code == "0",
		ResultCode:    code,
	}, nil
}

func (o *OvoPay) AckSuccess() (int, any) {
	return http.StatusNoContent, nil
}

func (o *OvoPay) AckFailure() (int, any) {
	return http.StatusNoContent, nil
}
