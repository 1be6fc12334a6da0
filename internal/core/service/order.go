package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/edumart/edupay/internal/core/domain"
	"github.com/edumart/edupay/internal/core/port"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

// PlaceOrder creates an order as one atomic multi-record operation. Wallet and
// bank-transfer orders settle inside the transaction; gateway orders are left
// pending and a signed redirect is returned for the buyer to follow.
func (s *Service) PlaceOrder(ctx context.Context, in port.PlaceOrderInput) (*port.PlaceOrderResult, error) {
	if len(in.Lines) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	for _, l := range in.Lines {
		if l.Quantity <= 0 {
			return nil, domain.ErrBadRequest
		}
	}

	var gw port.PaymentGateway
	switch {
	case in.PaymentMethod.IsGateway():
		g, ok := s.gateways[in.PaymentMethod]
		if !ok {
			return nil, domain.ErrUnknownPayment
		}
		gw = g
	case in.PaymentMethod == domain.PaymentWallet,
		in.PaymentMethod == domain.PaymentBankTransfer:
	default:
		return nil, domain.ErrUnknownPayment
	}

	var (
		order *domain.Order
		corr  *domain.GatewayCorrelation
	)
	err := s.repo.WithinTransaction(ctx, func(r port.Repository) error {
		built, voucher, err := s.buildOrder(ctx, r, in)
		if err != nil {
			return err
		}

		switch in.PaymentMethod {
		case domain.PaymentWallet:
			now := s.now()
			built.Status = domain.OrderStatusPaid
			built.PaidAt = &now
			order, err = r.CreateOrder(ctx, built)
			if err != nil {
				return err
			}
			if err := s.debitBuyer(ctx, r, order); err != nil {
				return err
			}
			return s.settleOrder(ctx, r, order, voucher)

		case domain.PaymentBankTransfer:
			// Manual offline settlement: trusted as already confirmed.
			now := s.now()
			built.Status = domain.OrderStatusPaid
			built.PaidAt = &now
			order, err = r.CreateOrder(ctx, built)
			if err != nil {
				return err
			}
			s.logger.Info("order settled manually via bank transfer",
				zap.Uint64("order", order.ID), zap.Uint64("buyer", order.BuyerID))
			return s.settleOrder(ctx, r, order, voucher)

		default:
			built.Status = domain.OrderStatusPending
			order, err = r.CreateOrder(ctx, built)
			if err != nil {
				return err
			}
			corr = &domain.GatewayCorrelation{
				ID:        uuid.NewString(),
				Kind:      domain.CorrelationOrder,
				OwnerID:   order.BuyerID,
				OrderID:   &order.ID,
				Amount:    order.FinalAmount,
				Provider:  in.PaymentMethod,
				CreatedAt: s.now(),
			}
			return r.CreateCorrelation(ctx, corr)
		}
	})
	if err != nil {
		return nil, err
	}

	result := &port.PlaceOrderResult{Order: order}
	if gw != nil {
		redirect, err := gw.BuildRedirect(ctx, port.PaymentIntent{
			Ref:       corr.ID,
			Amount:    order.FinalAmount,
			OrderInfo: fmt.Sprintf("order %d", order.ID),
			ClientIP:  in.ClientIP,
		})
		if err != nil {
			s.logger.Error("build redirect", zap.Error(err),
				zap.String("provider", string(in.PaymentMethod)))
			return nil, domain.ErrGatewayUnavailable
		}
		result.Redirect = redirect
		s.notify(domain.Notification{
			UserID:  order.BuyerID,
			Kind:    domain.NotifyOrderAwaitingPayment,
			Message: fmt.Sprintf("order %d is awaiting payment", order.ID),
		})
		return result, nil
	}

	s.notify(domain.Notification{
		UserID:  order.BuyerID,
		Kind:    domain.NotifyOrderPaid,
		Message: fmt.Sprintf("order %d is paid", order.ID),
	})
	return result, nil
}

// buildOrder performs steps 1-3: price lines from the catalog, apply the
// voucher, derive the final amount.
func (s *Service) buildOrder(ctx context.Context, r port.Repository, in port.PlaceOrderInput) (*domain.Order, *domain.Voucher, error) {
	total := decimal.Zero
	lines := make([]domain.OrderLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		course, err := r.GetCourse(ctx, l.CourseID)
		if err != nil {
			return nil, nil, err
		}
		unit, err := listedLinePrice(course)
		if err != nil {
			return nil, nil, err
		}
		lineTotal, err := mulQty(unit, l.Quantity)
		if err != nil {
			return nil, nil, err
		}
		total, err = total.Add(lineTotal)
		if err != nil {
			return nil, nil, err
		}
		lines = append(lines, domain.OrderLine{
			CourseID:  course.ID,
			SellerID:  course.SellerID,
			ListPrice: course.Price,
			UnitPrice: unit,
			Quantity:  l.Quantity,
		})
	}

	voucher, discount, err := s.priceVoucher(ctx, r, in.VoucherCode, in.BuyerID, total)
	if err != nil {
		return nil, nil, err
	}

	final, err := total.Sub(discount)
	if err != nil {
		return nil, nil, err
	}

	order := &domain.Order{
		BuyerID:        in.BuyerID,
		Lines:          lines,
		TotalAmount:    total,
		DiscountAmount: discount,
		FinalAmount:    final,
		PaymentMethod:  in.PaymentMethod,
		Contact:        in.Contact,
		CreatedAt:      s.now(),
	}
	if voucher != nil {
		order.VoucherID = &voucher.ID
	}
	return order, voucher, nil
}

func (s *Service) debitBuyer(ctx context.Context, r port.Repository, order *domain.Order) error {
	_, _, err := r.UpdateWallet(ctx, order.BuyerID, func(w *domain.Wallet) ([]domain.WalletTransaction, error) {
		if w.Balance.Cmp(order.FinalAmount) < 0 {
			return nil, domain.ErrInsufficientBalance
		}
		newBalance, err := w.Balance.Sub(order.FinalAmount)
		if err != nil {
			return nil, err
		}
		w.Balance = newBalance

		return []domain.WalletTransaction{{
			Type:      domain.TxnPayment,
			Amount:    order.FinalAmount.Neg(),
			Method:    string(domain.PaymentWallet),
			Status:    domain.TxnSuccess,
			OrderID:   &order.ID,
			CreatedAt: s.now(),
		}}, nil
	})
	return err
}

// settleOrder performs the settlement tail shared by the immediate paths and
// the callback reconciler: seller earnings, voucher usage, cart cleanup,
// enrollment provisioning. Runs inside the caller's transaction.
func (s *Service) settleOrder(ctx context.Context, r port.Repository, order *domain.Order, voucher *domain.Voucher) error {
	for i := range order.Lines {
		line := &order.Lines[i]
		share, err := percentOf(line.ListPrice, sellerShare)
		if err != nil {
			return err
		}
		earning, err := mulQty(share, line.Quantity)
		if err != nil {
			return err
		}
		_, _, err = r.UpdateWallet(ctx, line.SellerID, func(w *domain.Wallet) ([]domain.WalletTransaction, error) {
			newBalance, err := w.Balance.Add(earning)
			if err != nil {
				return nil, err
			}
			w.Balance = newBalance
			return []domain.WalletTransaction{{
				Type:      domain.TxnEarning,
				Amount:    earning,
				Method:    string(order.PaymentMethod),
				Status:    domain.TxnSuccess,
				OrderID:   &order.ID,
				CreatedAt: s.now(),
			}}, nil
		})
		if err != nil {
			return err
		}
	}

	if err := recordVoucherUsage(ctx, r, voucher, order.BuyerID, order.ID, s.now()); err != nil {
		return err
	}

	courseIDs := make([]uint64, 0, len(order.Lines))
	for _, l := range order.Lines {
		courseIDs = append(courseIDs, l.CourseID)
	}
	if err := r.DeleteCartItems(ctx, order.BuyerID, courseIDs); err != nil {
		return err
	}

	for _, l := range order.Lines {
		err := r.CreateEnrollment(ctx, &domain.Enrollment{
			StudentID: order.BuyerID,
			CourseID:  l.CourseID,
			OrderID:   order.ID,
			CreatedAt: s.now(),
		})
		if err != nil {
			// Already enrolled: provisioning is idempotent.
			if errors.Is(err, domain.ErrConflictingData) {
				continue
			}
			return err
		}
	}

	return nil
}

func (s *Service) GetOrder(ctx context.Context, requester port.TokenPayload, orderID uint64) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerID != requester.UserID && requester.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, requester port.TokenPayload, buyerID, limit, offset uint64) ([]*domain.Order, error) {
	if buyerID != requester.UserID && requester.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	list, err := s.repo.ListOrdersByBuyer(ctx, buyerID, limit, offset)
	if err != nil {
		s.logger.Error("List orders", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *Service) CancelOrder(ctx context.Context, buyerID, orderID uint64) (*domain.Order, error) {
	var order *domain.Order
	err := s.repo.WithinTransaction(ctx, func(r port.Repository) error {
		o, err := r.GetOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if o.BuyerID != buyerID {
			return domain.ErrForbidden
		}
		if err := r.UpdateOrderStatus(ctx, o.ID, domain.OrderStatusPending, domain.OrderStatusCancelled, s.now()); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	now := s.now()
	order.Status = domain.OrderStatusCancelled
	order.CancelledAt = &now
	return order, nil
}
