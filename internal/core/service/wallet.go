package service

import (
	"context"
	"fmt"

	"github.com/edumart/edupay/internal/core/domain"
	"github.com/edumart/edupay/internal/core/port"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

func (s *Service) GetWallet(ctx context.Context, ownerID uint64) (*domain.Wallet, []domain.WalletTransaction, error) {
	wallet, err := s.repo.GetWalletByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("Get wallet", zap.Error(err))
		return nil, nil, err
	}
	history, err := s.repo.ListWalletTransactions(ctx, wallet.ID)
	if err != nil {
		s.logger.Error("List wallet history", zap.Error(err))
		return nil, nil, err
	}
	return wallet, history, nil
}

// Deposit registers a correlation for a raw wallet top-up and builds the
// provider redirect. No funds move until the provider callback confirms.
func (s *Service) Deposit(ctx context.Context, ownerID uint64, amount decimal.Decimal,
	provider domain.PaymentMethod, clientIP string) (*port.Redirect, error) {
	if !amount.IsPos() {
		return nil, domain.ErrBadRequest
	}
	gw, ok := s.gateways[provider]
	if !ok {
		return nil, domain.ErrUnknownPayment
	}

	// The wallet must exist before we promise the provider a credit target.
	if _, err := s.repo.GetWalletByOwner(ctx, ownerID); err != nil {
		return nil, err
	}

	corr := &domain.GatewayCorrelation{
		ID:        uuid.NewString(),
		Kind:      domain.CorrelationDeposit,
		OwnerID:   ownerID,
		Amount:    amount,
		Provider:  provider,
		CreatedAt: s.now(),
	}
	if err := s.repo.CreateCorrelation(ctx, corr); err != nil {
		return nil, err
	}

	redirect, err := gw.BuildRedirect(ctx, port.PaymentIntent{
		Ref:       corr.ID,
		Amount:    amount,
		OrderInfo: fmt.Sprintf("wallet deposit for user %d", ownerID),
		ClientIP:  clientIP,
	})
	if err != nil {
		s.logger.Error("build deposit redirect", zap.Error(err),
			zap.String("provider", string(provider)))
		return nil, domain.ErrGatewayUnavailable
	}
	return redirect, nil
}
