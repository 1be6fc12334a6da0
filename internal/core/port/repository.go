package port

import (
	"context"
	"time"

	"github.com/edumart/edupay/internal/core/domain"
)

// UpdateWalletFn mutates the wallet balance and returns the ledger rows to
// append in the same database transaction. The wallet row is locked for the
// duration of the call.
type UpdateWalletFn func(w *domain.Wallet) ([]domain.WalletTransaction, error)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// WithinTransaction runs fn against a Repository bound to a single
	// database transaction. Nested calls reuse the outer transaction.
	WithinTransaction(ctx context.Context, fn func(r Repository) error) error

	// User
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByLogin(ctx context.Context, login string) (*domain.User, error)

	// Course (read-only catalog boundary)
	GetCourse(ctx context.Context, courseID uint64) (*domain.Course, error)

	// Cart
	ListCartItems(ctx context.Context, userID uint64) ([]domain.CartItem, error)
	DeleteCartItems(ctx context.Context, userID uint64, courseIDs []uint64) error

	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID uint64) (*domain.Order, error)
	ListOrdersByBuyer(ctx context.Context, buyerID uint64, limit, offset uint64) ([]*domain.Order, error)
	// UpdateOrderStatus succeeds only when the order currently has status
	// from; otherwise it returns ErrStateConflict. This is what makes status
	// transitions one-directional.
	UpdateOrderStatus(ctx context.Context, orderID uint64, from, to domain.OrderStatus, at time.Time) error

	// Voucher
	GetVoucher(ctx context.Context, voucherID uint64) (*domain.Voucher, error)
	GetVoucherByCode(ctx context.Context, code string) (*domain.Voucher, error)
	HasVoucherUsage(ctx context.Context, voucherID, userID uint64) (bool, error)
	RecordVoucherUsage(ctx context.Context, usage *domain.VoucherUsage) error
	IncrementVoucherUsed(ctx context.Context, voucherID uint64) error

	// Wallet
	GetWalletByOwner(ctx context.Context, ownerID uint64) (*domain.Wallet, error)
	// UpdateWallet locks the wallet row, applies fn and appends the returned
	// ledger rows in one step. Appended rows come back with ids assigned.
	UpdateWallet(ctx context.Context, ownerID uint64, fn UpdateWalletFn) (*domain.Wallet, []domain.WalletTransaction, error)
	ListWalletTransactions(ctx context.Context, walletID uint64) ([]domain.WalletTransaction, error)
	GetTransactionByProviderRef(ctx context.Context, walletID uint64, provider, providerTxnID string) (*domain.WalletTransaction, error)
	UpdateTransactionStatus(ctx context.Context, txnID uint64, from, to domain.TxnStatus) error

	// Withdrawal
	CreateWithdrawal(ctx context.Context, req *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	GetWithdrawal(ctx context.Context, id uint64) (*domain.WithdrawalRequest, error)
	ListWithdrawals(ctx context.Context, status domain.WithdrawalStatus) ([]*domain.WithdrawalRequest, error)
	UpdateWithdrawalStatus(ctx context.Context, id uint64, from, to domain.WithdrawalStatus, at time.Time) error

	// Enrollment
	CreateEnrollment(ctx context.Context, e *domain.Enrollment) error
	DeleteEnrollment(ctx context.Context, studentID, courseID uint64) error

	// Gateway correlation
	CreateCorrelation(ctx context.Context, c *domain.GatewayCorrelation) error
	GetCorrelation(ctx context.Context, id string) (*domain.GatewayCorrelation, error)
}
