package service

import (
	"context"
	"fmt"

	"github.com/edumart/edupay/internal/core/domain"
	"github.com/edumart/edupay/internal/core/port"
)

// RefundOrder returns the seller-share portion of a purchased line to the
// buyer wallet. The platform margin is not refunded to either party. One shot:
// once the order is refunded every further attempt is a state conflict.
func (s *Service) RefundOrder(ctx context.Context, buyerID, orderID, courseID uint64) (*domain.Order, error) {
	var order *domain.Order
	err := s.repo.WithinTransaction(ctx, func(r port.Repository) error {
		o, err := r.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if o.BuyerID != buyerID {
			return domain.ErrForbidden
		}
		line := o.Line(courseID)
		if line == nil {
			return domain.ErrCourseNotInOrder
		}
		if o.Status != domain.OrderStatusPaid {
			return domain.ErrStateConflict
		}
		if s.now().Sub(o.CreatedAt) > RefundWindow {
			return domain.ErrRefundWindowClosed
		}

		paid, err := mulQty(line.UnitPrice, line.Quantity)
		if err != nil {
			return err
		}
		refund, err := percentOf(paid, sellerShare)
		if err != nil {
			return err
		}

		_, _, err = r.UpdateWallet(ctx, o.BuyerID, func(w *domain.Wallet) ([]domain.WalletTransaction, error) {
			newBalance, err := w.Balance.Add(refund)
			if err != nil {
				return nil, err
			}
			w.Balance = newBalance
			return []domain.WalletTransaction{{
				Type:      domain.TxnRefund,
				Amount:    refund,
				Method:    string(o.PaymentMethod),
				Status:    domain.TxnSuccess,
				OrderID:   &o.ID,
				CreatedAt: s.now(),
			}}, nil
		})
		if err != nil {
			return err
		}

		if err := r.UpdateOrderStatus(ctx, o.ID, domain.OrderStatusPaid, domain.OrderStatusRefunded, s.now()); err != nil {
			return err
		}
		if err := r.DeleteEnrollment(ctx, o.BuyerID, courseID); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	now := s.now()
	order.Status = domain.OrderStatusRefunded
	order.RefundedAt = &now
	s.notify(domain.Notification{
		UserID:  order.BuyerID,
		Kind:    domain.NotifyOrderRefunded,
		Message: fmt.Sprintf("order %d refunded", order.ID),
	})
	return order, nil
}
