package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/edumart/edupay/internal/core/domain"
	"github.com/edumart/edupay/internal/core/port"
	"go.uber.org/zap"
)

// ReconcileCallback applies one verified provider callback exactly once.
// Providers deliver at least once, so the whole algorithm runs inside a single
// database transaction: the prior-success check and the unique
// (wallet, provider txn id) ledger constraint together form the idempotency
// guard. A replay either short-circuits on the check or aborts on the
// constraint, and both are reported as success to the caller.
func (s *Service) ReconcileCallback(ctx context.Context, res *port.CallbackResult) error {
	var notifyUser *domain.Notification

	err := s.repo.WithinTransaction(ctx, func(r port.Repository) error {
		corr, err := r.GetCorrelation(ctx, res.Ref)
		if err != nil {
			if errors.Is(err, domain.ErrDataNotFound) {
				return domain.ErrUnknownCorrelation
			}
			return err
		}
		if corr.Provider != res.Provider {
			return domain.ErrUnknownCorrelation
		}
		// A success naming any other amount than the one registered at
		// redirect construction must never settle anything.
		if res.Success && res.Amount.Cmp(corr.Amount) != 0 {
			s.logger.Warn("callback amount differs from the registered payment",
				zap.String("provider", string(res.Provider)),
				zap.String("ref", corr.ID),
				zap.String("registered", corr.Amount.String()),
				zap.String("reported", res.Amount.String()))
			return domain.ErrAmountMismatch
		}

		wallet, err := r.GetWalletByOwner(ctx, corr.OwnerID)
		if err != nil {
			return err
		}

		prev, err := r.GetTransactionByProviderRef(ctx, wallet.ID, string(res.Provider), res.ProviderTxnID)
		if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
			return err
		}
		if prev != nil && prev.Status.Terminal() {
			s.logger.Info("duplicate callback delivery ignored",
				zap.String("provider", string(res.Provider)),
				zap.String("provider_txn", res.ProviderTxnID))
			return nil
		}

		if !res.Success {
			return s.recordFailedSettlement(ctx, r, corr, res)
		}

		switch corr.Kind {
		case domain.CorrelationDeposit:
			notifyUser = &domain.Notification{
				UserID:  corr.OwnerID,
				Kind:    domain.NotifyOrderPaid,
				Message: "wallet deposit confirmed",
			}
			return s.applyDeposit(ctx, r, corr, res)
		case domain.CorrelationOrder:
			n, err := s.completeOrder(ctx, r, corr, res)
			if err != nil {
				return err
			}
			notifyUser = n
			return nil
		default:
			return domain.ErrUnknownCorrelation
		}
	})
	if err != nil {
		// A concurrent delivery won the unique-constraint race; the credit is
		// already applied.
		if errors.Is(err, domain.ErrConflictingData) {
			s.logger.Info("concurrent callback delivery lost the insert race",
				zap.String("provider", string(res.Provider)),
				zap.String("provider_txn", res.ProviderTxnID))
			return nil
		}
		return err
	}

	if notifyUser != nil {
		s.notify(*notifyUser)
	}
	return nil
}

func (s *Service) applyDeposit(ctx context.Context, r port.Repository,
	corr *domain.GatewayCorrelation, res *port.CallbackResult) error {
	_, _, err := r.UpdateWallet(ctx, corr.OwnerID, func(w *domain.Wallet) ([]domain.WalletTransaction, error) {
		newBalance, err := w.Balance.Add(res.Amount)
		if err != nil {
			return nil, err
		}
		w.Balance = newBalance
		ref := res.ProviderTxnID
		return []domain.WalletTransaction{{
			Type:          domain.TxnDeposit,
			Amount:        res.Amount,
			Method:        string(res.Provider),
			Status:        domain.TxnSuccess,
			ProviderTxnID: &ref,
			CreatedAt:     s.now(),
		}}, nil
	})
	return err
}

// completeOrder settles a pending gateway order: the collected funds pass
// through the buyer wallet (credit plus matching payment debit, so the ledger
// stays the sum of its terminal-success rows) and the shared settlement tail
// runs before the status flips to paid.
func (s *Service) completeOrder(ctx context.Context, r port.Repository,
	corr *domain.GatewayCorrelation, res *port.CallbackResult) (*domain.Notification, error) {
	if corr.OrderID == nil {
		return nil, domain.ErrUnknownCorrelation
	}
	order, err := r.GetOrder(ctx, *corr.OrderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderStatusPending {
		s.logger.Info("callback for order in terminal state ignored",
			zap.Uint64("order", order.ID), zap.String("status", string(order.Status)))
		return nil, nil
	}

	_, _, err = r.UpdateWallet(ctx, corr.OwnerID, func(w *domain.Wallet) ([]domain.WalletTransaction, error) {
		// Net zero: the settled amount enters and is immediately consumed by
		// the order inside the same atomic unit.
		ref := res.ProviderTxnID
		return []domain.WalletTransaction{
			{
				Type:          domain.TxnDeposit,
				Amount:        res.Amount,
				Method:        string(res.Provider),
				Status:        domain.TxnSuccess,
				ProviderTxnID: &ref,
				CreatedAt:     s.now(),
			},
			{
				Type:      domain.TxnPayment,
				Amount:    res.Amount.Neg(),
				Method:    string(res.Provider),
				Status:    domain.TxnSuccess,
				OrderID:   &order.ID,
				CreatedAt: s.now(),
			},
		}, nil
	})
	if err != nil {
		return nil, err
	}

	var voucher *domain.Voucher
	if order.VoucherID != nil {
		voucher, err = r.GetVoucher(ctx, *order.VoucherID)
		if err != nil {
			return nil, err
		}
	}

	if err := s.settleOrder(ctx, r, order, voucher); err != nil {
		return nil, err
	}
	if err := r.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusPending, domain.OrderStatusPaid, s.now()); err != nil {
		return nil, err
	}

	return &domain.Notification{
		UserID:  order.BuyerID,
		Kind:    domain.NotifyOrderPaid,
		Message: fmt.Sprintf("order %d is paid", order.ID),
	}, nil
}

// recordFailedSettlement appends a failed ledger row with no balance effect so
// the attempt is visible in the history. Pending orders stay pending.
func (s *Service) recordFailedSettlement(ctx context.Context, r port.Repository,
	corr *domain.GatewayCorrelation, res *port.CallbackResult) error {
	txnType := domain.TxnDeposit
	var orderID *uint64
	if corr.Kind == domain.CorrelationOrder {
		txnType = domain.TxnPayment
		orderID = corr.OrderID
	}
	_, _, err := r.UpdateWallet(ctx, corr.OwnerID, func(w *domain.Wallet) ([]domain.WalletTransaction, error) {
		ref := res.ProviderTxnID
		return []domain.WalletTransaction{{
			Type:          txnType,
			Amount:        res.Amount,
			Method:        string(res.Provider),
			Status:        domain.TxnFailed,
			OrderID:       orderID,
			ProviderTxnID: &ref,
			CreatedAt:     s.now(),
		}}, nil
	})
	return err
}
