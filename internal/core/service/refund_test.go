package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/edumart/edupay/internal/core/domain"
	"github.com/edumart/edupay/internal/core/port"
	"github.com/edumart/edupay/internal/core/port/mock"
	"github.com/edumart/edupay/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestService_RefundOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	const (
		buyerID  = uint64(1)
		courseID = uint64(10)
		orderID  = uint64(100)
	)
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	paidOrder := func(age time.Duration) *domain.Order {
		paidAt := now.Add(-age)
		return &domain.Order{
			ID:            orderID,
			BuyerID:       buyerID,
			Status:        domain.OrderStatusPaid,
			PaymentMethod: domain.PaymentWallet,
			CreatedAt:     now.Add(-age),
			PaidAt:        &paidAt,
			Lines: []domain.OrderLine{{
				CourseID:  courseID,
				SellerID:  2,
				ListPrice: money(t, 200000),
				UnitPrice: money(t, 200000),
				Quantity:  1,
			}},
		}
	}

	type refundTest struct {
		name     string
		courseID uint64
		mock     func(repo *mock.MockRepository, notifier *mock.MockNotifier)
		expError error
	}

	tests := []refundTest{
		{
			name:     "Refund inside the window",
			courseID: courseID,
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier) {
				inTransaction(repo)
				repo.EXPECT().GetOrder(gomock.Any(), orderID).Return(paidOrder(3*24*time.Hour), nil)
				repo.EXPECT().UpdateWallet(gomock.Any(), buyerID, gomock.Any()).DoAndReturn(
					func(ctx context.Context, owner uint64, fn port.UpdateWalletFn) (*domain.Wallet, []domain.WalletTransaction, error) {
						w := domain.Wallet{ID: 1, OwnerID: buyerID, Balance: money(t, 0)}
						txns, err := fn(&w)
						assert.NoError(t, err)
						// 70% of the paid price comes back.
						sameAmount(t, money(t, 140000), w.Balance)
						assert.Equal(t, domain.TxnRefund, txns[0].Type)
						return &w, txns, nil
					})
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), orderID,
					domain.OrderStatusPaid, domain.OrderStatusRefunded, gomock.Any()).Return(nil)
				repo.EXPECT().DeleteEnrollment(gomock.Any(), buyerID, courseID).Return(nil)
				notifier.EXPECT().Notify(gomock.Any())
			},
			expError: nil,
		},
		{
			name:     "Window closed after seven days",
			courseID: courseID,
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier) {
				inTransaction(repo)
				repo.EXPECT().GetOrder(gomock.Any(), orderID).Return(paidOrder(8*24*time.Hour), nil)
			},
			expError: domain.ErrRefundWindowClosed,
		},
		{
			name:     "Second refund attempt",
			courseID: courseID,
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier) {
				inTransaction(repo)
				o := paidOrder(3 * 24 * time.Hour)
				o.Status = domain.OrderStatusRefunded
				repo.EXPECT().GetOrder(gomock.Any(), orderID).Return(o, nil)
			},
			expError: domain.ErrStateConflict,
		},
		{
			name:     "Course not in the order",
			courseID: 99,
			mock: func(repo *mock.MockRepository, notifier *mock.MockNotifier) {
				inTransaction(repo)
				repo.EXPECT().GetOrder(gomock.Any(), orderID).Return(paidOrder(3*24*time.Hour), nil)
			},
			expError: domain.ErrCourseNotInOrder,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			notifier := mock.NewMockNotifier(mockCtrl)
			test.mock(repo, notifier)

			s, err := service.NewService(repo, ts, nil, notifier, logger)
			assert.NoError(t, err)
			s.WithClock(func() time.Time { return now })

			order, err := s.RefundOrder(context.Background(), buyerID, orderID, test.courseID)

			assert.ErrorIs(t, err, test.expError)
			if test.expError == nil {
				assert.Equal(t, domain.OrderStatusRefunded, order.Status)
				assert.NotNil(t, order.RefundedAt)
			}
		})
	}
}
