package http

import (
	"errors"

	"github.com/edumart/edupay/internal/core/domain"
	"github.com/edumart/edupay/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CallbackHandler struct {
	Handler
	service  port.Service
	gateways map[domain.PaymentMethod]port.PaymentGateway
}

func NewCallbackHandler(service port.Service, gateways []port.PaymentGateway, logger *zap.Logger) (*CallbackHandler, error) {
	gm := make(map[domain.PaymentMethod]port.PaymentGateway, len(gateways))
	for _, g := range gateways {
		gm[g.Provider()] = g
	}
	return &CallbackHandler{
		Handler:  Handler{logger: logger},
		service:  service,
		gateways: gm,
	}, nil
}

// Callback handles one provider's asynchronous payment notification. The
// provider retries until it receives its expected acknowledgement, so every
// internal discrepancy short of a storage failure still answers with the
// provider-native ack and is only visible in the logs.
func (ch *CallbackHandler) Callback(gw port.PaymentGateway) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		params := callbackParams(ctx)

		result, err := gw.VerifyCallback(params)
		if err != nil {
			// Forged or mangled payloads are dropped, never credited.
			ch.logger.Warn("callback rejected",
				zap.String("provider", string(gw.Provider())), zap.Error(err))
			status, body := gw.AckFailure()
			ch.handleSuccessWithStatus(ctx, body, status)
			return
		}

		err = ch.service.ReconcileCallback(ctx, result)
		if err != nil {
			if errors.Is(err, domain.ErrUnknownCorrelation) {
				// A retry can never resolve this one, so stop the provider
				// from redelivering it.
				ch.logger.Warn("callback without matching payment",
					zap.String("provider", string(gw.Provider())),
					zap.String("ref", result.Ref))
				status, body := gw.AckSuccess()
				ch.handleSuccessWithStatus(ctx, body, status)
				return
			}
			// Storage trouble: answer with the failure ack so the provider
			// redelivers once we are healthy again.
			ch.logger.Error("callback reconciliation failed",
				zap.String("provider", string(gw.Provider())), zap.Error(err))
			status, body := gw.AckFailure()
			ch.handleSuccessWithStatus(ctx, body, status)
			return
		}

		status, body := gw.AckSuccess()
		ch.handleSuccessWithStatus(ctx, body, status)
	}
}

// callbackParams flattens the request into the string map the verifiers
// expect. Providers deliver either query parameters or a form body.
func callbackParams(ctx *gin.Context) map[string]string {
	params := map[string]string{}
	for k, v := range ctx.Request.URL.Query() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	if err := ctx.Request.ParseForm(); err == nil {
		for k, v := range ctx.Request.PostForm {
			if len(v) > 0 {
				params[k] = v[0]
			}
		}
	}
	return params
}
