// Package gateway holds one adapter per external payment provider. Every
// adapter owns its provider's parameter encoding and checksum scheme and
// normalizes callbacks into port.CallbackResult.
package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/edumart/edupay/internal/adapter/config"
	"github.com/edumart/edupay/internal/core/domain"
	"github.com/edumart/edupay/internal/core/port"
	"github.com/govalues/decimal"
)

// FastPay signs a sorted query string with HMAC-SHA512 and echoes the opaque
// reference back in its callback. Result code "00" is the documented success.
type FastPay struct {
	merchantCode string
	secret       []byte
	payURL       string
	returnURL    string
}

func NewFastPay(cfg config.FastPay) *FastPay {
	return &FastPay{
		merchantCode: cfg.MerchantCode,
		secret:       []byte(cfg.Secret),
		payURL:       cfg.PayURL,
		returnURL:    cfg.ReturnURL,
	}
}

func (f *FastPay) Provider() domain.PaymentMethod {
	return domain.PaymentFastpay
}

func (f *FastPay) BuildRedirect(_ context.Context, intent port.PaymentIntent) (*port.Redirect, error) {
	params := map[string]string{
		"fp_Version":    "2.1",
		"fp_Merchant":   f.merchantCode,
		"fp_TxnRef":     intent.Ref,
		"fp_Amount":     intent.Amount.String(),
		"fp_OrderInfo":  intent.OrderInfo,
		"fp_ReturnUrl":  f.returnURL,
		"fp_IpAddr":     intent.ClientIP,
		"fp_CreateDate": time.Now().UTC().Format("20060102150405"),
	}
	query := canonicalQuery(params)
	sig := hmacHex(sha512.New, f.secret, query)

	return &port.Redirect{
		Provider: domain.PaymentFastpay,
		URL:      f.payURL + "?" + query + "&fp_SecureHash=" + sig,
		Ref:      intent.Ref,
	}, nil
}

func (f *FastPay) VerifyCallback(params map[string]string) (*port.CallbackResult, error) {
	got, ok := params["fp_SecureHash"]
	if !ok {
		return nil, domain.ErrSignatureInvalid
	}

	signed := make(map[string]string, len(params))
	for k, v := range params {
		if k == "fp_SecureHash" || !strings.HasPrefix(k, "fp_") {
			continue
		}
		signed[k] = v
	}
	want := hmacHex(sha512.New, f.secret, canonicalQuery(signed))
	if !hmac.Equal([]byte(want), []byte(got)) {
		return nil, domain.ErrSignatureInvalid
	}

	amount, err := decimal.Parse(params["fp_Amount"])
	if err != nil {
		return nil, domain.ErrCallbackMalformed
	}
	ref := params["fp_TxnRef"]
	txnID := params["fp_TransactionNo"]
	if ref == "" || txnID == "" {
		return nil, domain.ErrCallbackMalformed
	}

	code := params["fp_ResponseCode"]
	return &port.CallbackResult{
		Provider:      domain.PaymentFastpay,
		Ref:           ref,
		ProviderTxnID: txnID,
		Amount:        amount,
		Success:       code == "00",
		ResultCode:    code,
	}, nil
}

func (f *FastPay) AckSuccess() (int, any) {
	return http.StatusOK, map[string]string{"RspCode": "00", "Message": "Confirm Success"}
}

func (f *FastPay) AckFailure() (int, any) {
	return http.StatusOK, map[string]string{"RspCode": "97", "Message": "Invalid Checksum"}
}

// canonicalQuery url-encodes the parameters in sorted key order. This ordering
// is part of the checksum contract on both directions.
func canonicalQuery(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(params[k]))
	}
	return b.String()
}
