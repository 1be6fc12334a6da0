package gateway

import (
	"context"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/edumart/edupay/internal/adapter/config"
	"github.com/edumart/edupay/internal/core/domain"
	"github.com/edumart/edupay/internal/core/port"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(t *testing.T, value int64) decimal.Decimal {
	t.Helper()
	d, err := decimal.New(value, 0)
	require.NoError(t, err)
	return d
}

func TestFastPayRedirect(t *testing.T) {
	fp := NewFastPay(config.FastPay{
		MerchantCode: "EDUMART",
		Secret:       "fastpay-secret",
		PayURL:       "https://sandbox.fastpay.example/pay",
		ReturnURL:    "https://edumart.example/return",
	})

	redirect, err := fp.BuildRedirect(context.Background(), port.PaymentIntent{
		Ref:       "ref-123",
		Amount:    amount(t, 150000),
		OrderInfo: "order 42",
		ClientIP:  "10.0.0.1",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentFastpay, redirect.Provider)
	assert.Equal(t, "ref-123", redirect.Ref)

	u, err := url.Parse(redirect.URL)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "EDUMART", q.Get("fp_Merchant"))
	assert.Equal(t, "ref-123", q.Get("fp_TxnRef"))
	assert.NotEmpty(t, q.Get("fp_SecureHash"))

	// Signature covers every fp_ parameter in sorted order.
	signed := map[string]string{}
	for k, v := range q {
		if k != "fp_SecureHash" {
			signed[k] = v[0]
		}
	}
	want := hmacHex(sha512.New, []byte("fastpay-secret"), canonicalQuery(signed))
	assert.Equal(t, want, q.Get("fp_SecureHash"))
}

func TestFastPayVerifyCallback(t *testing.T) {
	fp := NewFastPay(config.FastPay{Secret: "fastpay-secret"})

	sign := func(params map[string]string) map[string]string {
		signed := map[string]string{}
		for k, v := range params {
			signed[k] = v
		}
		signed["fp_SecureHash"] = hmacHex(sha512.New, []byte("fastpay-secret"), canonicalQuery(params))
		return signed
	}

	base := map[string]string{
		"fp_TxnRef":        "ref-123",
		"fp_TransactionNo": "FP-9000",
		"fp_Amount":        "150000",
		"fp_ResponseCode":  "00",
	}

	t.Run("Valid success callback", func(t *testing.T) {
		res, err := fp.VerifyCallback(sign(base))

		require.NoError(t, err)
		assert.Equal(t, "ref-123", res.Ref)
		assert.Equal(t, "FP-9000", res.ProviderTxnID)
		assert.True(t, res.Success)
	})

	t.Run("Declined result code", func(t *testing.T) {
		declined := map[string]string{}
		for k, v := range base {
			declined[k] = v
		}
		declined["fp_ResponseCode"] = "24"

		res, err := fp.VerifyCallback(sign(declined))

		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "24", res.ResultCode)
	})

	t.Run("Tampered amount", func(t *testing.T) {
		tampered := sign(base)
		tampered["fp_Amount"] = "1"

		_, err := fp.VerifyCallback(tampered)

		assert.ErrorIs(t, err, domain.ErrSignatureInvalid)
	})

	t.Run("Missing checksum", func(t *testing.T) {
		_, err := fp.VerifyCallback(base)

		assert.ErrorIs(t, err, domain.ErrSignatureInvalid)
	})
}

func TestOvoPayBuildRedirect(t *testing.T) {
	t.Run("Session created", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v2/create", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"payUrl":"https://pay.ovopay.example/s/abc","resultCode":0}`)
		}))
		defer srv.Close()

		o := NewOvoPay(config.OvoPay{
			PartnerCode: "EDUMART",
			AccessKey:   "ak",
			Secret:      "ovopay-secret",
			Endpoint:    srv.URL,
		})

		redirect, err := o.BuildRedirect(context.Background(), port.PaymentIntent{
			Ref:    "ref-456",
			Amount: amount(t, 99000),
		})

		require.NoError(t, err)
		assert.Equal(t, "https://pay.ovopay.example/s/abc", redirect.URL)
		assert.Equal(t, "ref-456", redirect.Ref)
	})

	t.Run("Provider refuses the session", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"resultCode":11,"message":"merchant disabled"}`)
		}))
		defer srv.Close()

		o := NewOvoPay(config.OvoPay{Endpoint: srv.URL})

		_, err := o.BuildRedirect(context.Background(), port.PaymentIntent{
			Ref:    "ref-456",
			Amount: amount(t, 99000),
		})

		assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
	})

	t.Run("Provider unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		o := NewOvoPay(config.OvoPay{Endpoint: srv.URL})

		_, err := o.BuildRedirect(context.Background(), port.PaymentIntent{
			Ref:    "ref-456",
			Amount: amount(t, 99000),
		})

		assert.ErrorIs(t, err, domain.ErrGatewayUnavailable)
	})
}

func TestOvoPayVerifyCallback(t *testing.T) {
	o := NewOvoPay(config.OvoPay{
		PartnerCode: "EDUMART",
		AccessKey:   "ak",
		Secret:      "ovopay-secret",
	})

	params := map[string]string{
		"partnerCode": "EDUMART",
		"requestId":   "ref-456",
		"transId":     "OVO-777",
		"amount":      "99000",
		"resultCode":  "0",
	}
	raw := fmt.Sprintf("accessKey=%s&amount=%s&partnerCode=%s&requestId=%s&resultCode=%s&transId=%s",
		"ak", params["amount"], params["partnerCode"], params["requestId"],
		params["resultCode"], params["transId"])
	params["signature"] = hmacHex(sha256.New, []byte("ovopay-secret"), raw)

	res, err := o.VerifyCallback(params)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentOvopay, res.Provider)
	assert.Equal(t, "ref-456", res.Ref)
	assert.Equal(t, "OVO-777", res.ProviderTxnID)
	assert.True(t, res.Success)

	params["amount"] = "1"
	_, err = o.VerifyCallback(params)
	assert.ErrorIs(t, err, domain.ErrSignatureInvalid)
}

func TestZentraVerifyCallback(t *testing.T) {
	z := NewZentra(config.Zentra{AppID: "2553", Key: "zentra-key"})

	sign := func(params map[string]string) map[string]string {
		signed := map[string]string{}
		for k, v := range params {
			signed[k] = v
		}
		signed["mac"] = hmacHex(sha256.New, []byte("zentra-key"),
			strings.Join([]string{
				params["app_id"],
				params["app_trans_id"],
				params["amount"],
				params["zp_trans_id"],
				params["return_code"],
			}, "|"))
		return signed
	}

	base := map[string]string{
		"app_id":       "2553",
		"app_trans_id": "ref-789",
		"zp_trans_id":  "ZP-1234",
		"amount":       "200000",
		"return_code":  "00",
	}

	t.Run("Valid success callback", func(t *testing.T) {
		res, err := z.VerifyCallback(sign(base))

		require.NoError(t, err)
		assert.Equal(t, domain.PaymentZentra, res.Provider)
		assert.True(t, res.Success)
	})

	t.Run("Foreign app id", func(t *testing.T) {
		foreign := map[string]string{}
		for k, v := range base {
			foreign[k] = v
		}
		foreign["app_id"] = "9999"

		_, err := z.VerifyCallback(sign(foreign))

		assert.ErrorIs(t, err, domain.ErrSignatureInvalid)
	})

	t.Run("Declined result code", func(t *testing.T) {
		declined := map[string]string{}
		for k, v := range base {
			declined[k] = v
		}
		declined["return_code"] = "-49"

		res, err := z.VerifyCallback(sign(declined))

		require.NoError(t, err)
		assert.False(t, res.Success)
	})

	t.Run("Malformed amount", func(t *testing.T) {
		bad := map[string]string{}
		for k, v := range base {
			bad[k] = v
		}
		bad["amount"] = "not-a-number"

		_, err := z.VerifyCallback(sign(bad))

		assert.ErrorIs(t, err, domain.ErrCallbackMalformed)
	})
}
