package port

import (
	"context"

	"github.com/edumart/edupay/internal/core/domain"
	"github.com/govalues/decimal"
)

type OrderLineInput struct {
	CourseID uint64
	Quantity int
}

type PlaceOrderInput struct {
	BuyerID       uint64
	Lines         []OrderLineInput
	VoucherCode   string
	PaymentMethod domain.PaymentMethod
	Contact       string
	ClientIP      string
}

// PlaceOrderResult carries the created order and, for gateway methods, the
// redirect the buyer must follow to settle it.
type PlaceOrderResult struct {
	Order    *domain.Order
	Redirect *Redirect
}

type WithdrawInput struct {
	OwnerID       uint64
	Amount        decimal.Decimal
	BankName      string
	AccountNumber string
	AccountHolder string
}

type Service interface {
	RegisterUser(ctx context.Context, user *domain.User) (*domain.User, error)
	LoginUser(ctx context.Context, login string, password string) (string, error)

	GetCart(ctx context.Context, ownerID uint64) ([]domain.CartItem, error)
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*PlaceOrderResult, error)
	GetOrder(ctx context.Context, requester TokenPayload, orderID uint64) (*domain.Order, error)
	ListOrders(ctx context.Context, requester TokenPayload, buyerID, limit, offset uint64) ([]*domain.Order, error)
	CancelOrder(ctx context.Context, buyerID, orderID uint64) (*domain.Order, error)
	RefundOrder(ctx context.Context, buyerID, orderID, courseID uint64) (*domain.Order, error)

	GetWallet(ctx context.Context, ownerID uint64) (*domain.Wallet, []domain.WalletTransaction, error)
	Deposit(ctx context.Context, ownerID uint64, amount decimal.Decimal, provider domain.PaymentMethod, clientIP string) (*Redirect, error)

	RequestWithdrawal(ctx context.Context, input WithdrawInput) (*domain.WithdrawalRequest, error)
	CancelWithdrawal(ctx context.Context, ownerID, requestID uint64) (*domain.WithdrawalRequest, error)
	ResolveWithdrawal(ctx context.Context, requestID uint64, approve bool) (*domain.WithdrawalRequest, error)
	ListWithdrawals(ctx context.Context, status domain.WithdrawalStatus) ([]*domain.WithdrawalRequest, error)

	ReconcileCallback(ctx context.Context, result *CallbackResult) error
}
