package service

import (
	"context"
	"fmt"

	"github.com/edumart/edupay/internal/core/domain"
	"github.com/edumart/edupay/internal/core/port"
)

// RequestWithdrawal places a pessimistic hold: the amount leaves the balance
// immediately so it cannot be spent while the request is outstanding.
func (s *Service) RequestWithdrawal(ctx context.Context, in port.WithdrawInput) (*domain.WithdrawalRequest, error) {
	if !in.Amount.IsPos() {
		return nil, domain.ErrBadRequest
	}

	var req *domain.WithdrawalRequest
	err := s.repo.WithinTransaction(ctx, func(r port.Repository) error {
		_, txns, err := r.UpdateWallet(ctx, in.OwnerID, func(w *domain.Wallet) ([]domain.WalletTransaction, error) {
			if w.Balance.Cmp(in.Amount) < 0 {
				return nil, domain.ErrInsufficientBalance
			}
			newBalance, err := w.Balance.Sub(in.Amount)
			if err != nil {
				return nil, err
			}
			w.Balance = newBalance
			return []domain.WalletTransaction{{
				Type:      domain.TxnWithdraw,
				Amount:    in.Amount.Neg(),
				Method:    "BANK",
				Status:    domain.TxnPending,
				CreatedAt: s.now(),
			}}, nil
		})
		if err != nil {
			return err
		}

		req, err = r.CreateWithdrawal(ctx, &domain.WithdrawalRequest{
			OwnerID:       in.OwnerID,
			Amount:        in.Amount,
			BankName:      in.BankName,
			AccountNumber: in.AccountNumber,
			AccountHolder: in.AccountHolder,
			Status:        domain.WithdrawalPending,
			TransactionID: txns[0].ID,
			CreatedAt:     s.now(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

// CancelWithdrawal releases the hold. Only the original requester may cancel.
func (s *Service) CancelWithdrawal(ctx context.Context, ownerID, requestID uint64) (*domain.WithdrawalRequest, error) {
	return s.resolveWithdrawal(ctx, requestID, domain.WithdrawalCancelled, domain.TxnCancelled, &ownerID)
}

// ResolveWithdrawal is the administrator decision. Approval makes the hold a
// permanent debit; rejection releases it.
func (s *Service) ResolveWithdrawal(ctx context.Context, requestID uint64, approve bool) (*domain.WithdrawalRequest, error) {
	if approve {
		return s.resolveWithdrawal(ctx, requestID, domain.WithdrawalApproved, domain.TxnApproved, nil)
	}
	return s.resolveWithdrawal(ctx, requestID, domain.WithdrawalRejected, domain.TxnRejected, nil)
}

func (s *Service) ListWithdrawals(ctx context.Context, status domain.WithdrawalStatus) ([]*domain.WithdrawalRequest, error) {
	return s.repo.ListWithdrawals(ctx, status)
}

func (s *Service) resolveWithdrawal(ctx context.Context, requestID uint64,
	outcome domain.WithdrawalStatus, txnOutcome domain.TxnStatus, requesterID *uint64) (*domain.WithdrawalRequest, error) {
	var req *domain.WithdrawalRequest
	err := s.repo.WithinTransaction(ctx, func(r port.Repository) error {
		got, err := r.GetWithdrawal(ctx, requestID)
		if err != nil {
			return err
		}
		if requesterID != nil && got.OwnerID != *requesterID {
			return domain.ErrForbidden
		}
		if got.Status != domain.WithdrawalPending {
			return domain.ErrStateConflict
		}

		if err := r.UpdateWithdrawalStatus(ctx, got.ID, domain.WithdrawalPending, outcome, s.now()); err != nil {
			return err
		}
		if err := r.UpdateTransactionStatus(ctx, got.TransactionID, domain.TxnPending, txnOutcome); err != nil {
			return err
		}

		// Non-approval outcomes give the held amount back.
		if outcome != domain.WithdrawalApproved {
			_, _, err = r.UpdateWallet(ctx, got.OwnerID, func(w *domain.Wallet) ([]domain.WalletTransaction, error) {
				newBalance, err := w.Balance.Add(got.Amount)
				if err != nil {
					return nil, err
				}
				w.Balance = newBalance
				return nil, nil
			})
			if err != nil {
				return err
			}
		}
		req = got
		return nil
	})
	if err != nil {
		return nil, err
	}

	now := s.now()
	req.Status = outcome
	req.ResolvedAt = &now
	s.notify(domain.Notification{
		UserID:  req.OwnerID,
		Kind:    domain.NotifyWithdrawalResolved,
		Message: fmt.Sprintf("withdrawal request %d %s", req.ID, outcome),
	})
	return req, nil
}
