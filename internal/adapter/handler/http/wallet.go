package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/edumart/edupay/internal/core/domain"
	"github.com/edumart/edupay/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type WalletHandler struct {
	Handler
	service port.Service
}

func NewWalletHandler(service port.Service, logger *zap.Logger) (*WalletHandler, error) {
	return &WalletHandler{
		Handler: Handler{logger: logger},
		service: service,
	}, nil
}

type transactionResponse struct {
	ID            uint64          `json:"id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method,omitempty"`
	Status        string          `json:"status"`
	OrderID       *uint64         `json:"order_id,omitempty"`
	ProviderTxnID *string         `json:"provider_txn_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type walletResponse struct {
	Balance decimal.Decimal       `json:"balance"`
	History []transactionResponse `json:"history"`
}

func (wh *WalletHandler) GetWallet(ctx *gin.Context) {
	wallet, history, err := wh.service.GetWallet(ctx, getAuthPayload(ctx).UserID)
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	resp := walletResponse{Balance: wallet.Balance, History: make([]transactionResponse, 0, len(history))}
	for _, txn := range history {
		resp.History = append(resp.History, transactionResponse{
			ID:            txn.ID,
			Type:          string(txn.Type),
			Amount:        txn.Amount,
			Method:        txn.Method,
			Status:        string(txn.Status),
			OrderID:       txn.OrderID,
			ProviderTxnID: txn.ProviderTxnID,
			CreatedAt:     txn.CreatedAt,
		})
	}
	wh.handleSuccess(ctx, resp)
}

type depositRequest struct {
	Amount   float64 `json:"amount"`
	Provider string  `json:"provider"`
}

func (wh *WalletHandler) Deposit(ctx *gin.Context) {
	req := depositRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		wh.handleValidationError(ctx, err)
		return
	}

	amount, err := decimal.NewFromFloat64(req.Amount)
	if err != nil {
		wh.handleValidationError(ctx, err)
		return
	}

	redirect, err := wh.service.Deposit(ctx, getAuthPayload(ctx).UserID, amount,
		domain.PaymentMethod(req.Provider), ctx.ClientIP())
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	wh.handleSuccess(ctx, struct {
		RedirectURL string `json:"redirect_url"`
	}{RedirectURL: redirect.URL})
}

type withdrawRequest struct {
	Amount        float64 `json:"amount"`
	BankName      string  `json:"bank_name"`
	AccountNumber string  `json:"account_number"`
	AccountHolder string  `json:"account_holder"`
}

type withdrawalResponse struct {
	ID         uint64          `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
	BankName   string          `json:"bank_name"`
	CreatedAt  time.Time       `json:"created_at"`
	ResolvedAt *time.Time      `json:"resolved_at,omitempty"`
}

func newWithdrawalResponse(req *domain.WithdrawalRequest) withdrawalResponse {
	return withdrawalResponse{
		ID:         req.ID,
		Amount:     req.Amount,
		Status:     string(req.Status),
		BankName:   req.BankName,
		CreatedAt:  req.CreatedAt,
		ResolvedAt: req.ResolvedAt,
	}
}

func (wh *WalletHandler) Withdraw(ctx *gin.Context) {
	req := withdrawRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		wh.handleValidationError(ctx, err)
		return
	}

	amount, err := decimal.NewFromFloat64(req.Amount)
	if err != nil {
		wh.handleValidationError(ctx, err)
		return
	}

	created, err := wh.service.RequestWithdrawal(ctx, port.WithdrawInput{
		OwnerID:       getAuthPayload(ctx).UserID,
		Amount:        amount,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		AccountHolder: req.AccountHolder,
	})
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	wh.handleSuccessWithStatus(ctx, newWithdrawalResponse(created), http.StatusCreated)
}

func (wh *WalletHandler) CancelWithdrawal(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		wh.handleValidationError(ctx, err)
		return
	}

	req, err := wh.service.CancelWithdrawal(ctx, getAuthPayload(ctx).UserID, id)
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	wh.handleSuccess(ctx, newWithdrawalResponse(req))
}

func (wh *WalletHandler) ListWithdrawals(ctx *gin.Context) {
	list, err := wh.service.ListWithdrawals(ctx, domain.WithdrawalStatus(ctx.Query("status")))
	if err != nil {
		wh.handleError(ctx, err)
		return
	}

	result := make([]withdrawalResponse, 0, len(list))
	for _, req := range list {
		result = append(result, newWithdrawalResponse(req))
	}
	wh.handleSuccess(ctx, result)
}

func (wh *WalletHandler) ResolveWithdrawal(approve bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
		if err != nil {
			wh.handleValidationError(ctx, err)
			return
		}

		req, err := wh.service.ResolveWithdrawal(ctx, id, approve)
		if err != nil {
			wh.handleError(ctx, err)
			return
		}

		wh.handleSuccess(ctx, newWithdrawalResponse(req))
	}
}
