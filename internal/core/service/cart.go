package service

import (
	"context"

	"github.com/edumart/edupay/internal/core/domain"
	"go.uber.org/zap"
)

// GetCart lists the saved cart lines the buyer can turn into an order.
func (s *Service) GetCart(ctx context.Context, ownerID uint64) ([]domain.CartItem, error) {
	items, err := s.repo.ListCartItems(ctx, ownerID)
	if err != nil {
		s.logger.Error("List cart items", zap.Error(err))
		return nil, err
	}
	return items, nil
}
