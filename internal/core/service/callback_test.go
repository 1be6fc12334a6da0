package service_test

import (
	"context"
	"testing"

	"github.com/edumart/edupay/internal/core/domain"
	"github.com/edumart/edupay/internal/core/port"
	"github.com/edumart/edupay/internal/core/port/mock"
	"github.com/edumart/edupay/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestService_ReconcileCallbackDeposit(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	const ownerID = uint64(1)
	ref := "11111111-2222-3333-4444-555555555555"
	providerTxn := "FP-424242"

	corr := domain.GatewayCorrelation{
		ID:       ref,
		Kind:     domain.CorrelationDeposit,
		OwnerID:  ownerID,
		Amount:   money(t, 50000),
		Provider: domain.PaymentFastpay,
	}
	wallet := domain.Wallet{ID: 1, OwnerID: ownerID}

	result := port.CallbackResult{
		Provider:      domain.PaymentFastpay,
		Ref:           ref,
		ProviderTxnID: providerTxn,
		Amount:        money(t, 50000),
		Success:       true,
	}

	type callbackTest struct {
		name     string
		result   port.CallbackResult
		mock     prepareMocks
		expError error
	}

	tests := []callbackTest{
		{
			name:   "First delivery credits the wallet",
			result: result,
			mock: func(repo *mock.MockRepository, gw *mock.MockPaymentGateway, notifier *mock.MockNotifier) {
				inTransaction(repo)
				repo.EXPECT().GetCorrelation(gomock.Any(), ref).Return(&corr, nil)
				repo.EXPECT().GetWalletByOwner(gomock.Any(), ownerID).Return(&wallet, nil)
				repo.EXPECT().GetTransactionByProviderRef(gomock.Any(), wallet.ID,
					string(domain.PaymentFastpay), providerTxn).Return(nil, domain.ErrDataNotFound)
				repo.EXPECT().UpdateWallet(gomock.Any(), ownerID, gomock.Any()).DoAndReturn(
					func(ctx context.Context, owner uint64, fn port.UpdateWalletFn) (*domain.Wallet, []domain.WalletTransaction, error) {
						w := domain.Wallet{ID: 1, OwnerID: ownerID, Balance: money(t, 100000)}
						txns, err := fn(&w)
						assert.NoError(t, err)
						sameAmount(t, money(t, 150000), w.Balance)
						assert.Equal(t, domain.TxnDeposit, txns[0].Type)
						assert.Equal(t, domain.TxnSuccess, txns[0].Status)
						assert.Equal(t, providerTxn, *txns[0].ProviderTxnID)
						return &w, txns, nil
					})
				notifier.EXPECT().Notify(gomock.Any())
			},
			expError: nil,
		},
		{
			name:   "Replay of an applied delivery is a no-op",
			result: result,
			mock: func(repo *mock.MockRepository, gw *mock.MockPaymentGateway, notifier *mock.MockNotifier) {
				inTransaction(repo)
				repo.EXPECT().GetCorrelation(gomock.Any(), ref).Return(&corr, nil)
				repo.EXPECT().GetWalletByOwner(gomock.Any(), ownerID).Return(&wallet, nil)
				repo.EXPECT().GetTransactionByProviderRef(gomock.Any(), wallet.ID,
					string(domain.PaymentFastpay), providerTxn).Return(
					&domain.WalletTransaction{ID: 9, Status: domain.TxnSuccess}, nil)
			},
			expError: nil,
		},
		{
			name:   "Concurrent delivery losing the insert race is a no-op",
			result: result,
			mock: func(repo *mock.MockRepository, gw *mock.MockPaymentGateway, notifier *mock.MockNotifier) {
				inTransaction(repo)
				repo.EXPECT().GetCorrelation(gomock.Any(), ref).Return(&corr, nil)
				repo.EXPECT().GetWalletByOwner(gomock.Any(), ownerID).Return(&wallet, nil)
				repo.EXPECT().GetTransactionByProviderRef(gomock.Any(), wallet.ID,
					string(domain.PaymentFastpay), providerTxn).Return(nil, domain.ErrDataNotFound)
				repo.EXPECT().UpdateWallet(gomock.Any(), ownerID, gomock.Any()).
					Return(nil, nil, domain.ErrConflictingData)
			},
			expError: nil,
		},
		{
			name:   "Unknown correlation",
			result: result,
			mock: func(repo *mock.MockRepository, gw *mock.MockPaymentGateway, notifier *mock.MockNotifier) {
				inTransaction(repo)
				repo.EXPECT().GetCorrelation(gomock.Any(), ref).Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrUnknownCorrelation,
		},
		{
			name: "Provider mismatch",
			result: port.CallbackResult{
				Provider:      domain.PaymentZentra,
				Ref:           ref,
				ProviderTxnID: providerTxn,
				Success:       true,
			},
			mock: func(repo *mock.MockRepository, gw *mock.MockPaymentGateway, notifier *mock.MockNotifier) {
				inTransaction(repo)
				repo.EXPECT().GetCorrelation(gomock.Any(), ref).Return(&corr, nil)
			},
			expError: domain.ErrUnknownCorrelation,
		},
		{
			name: "Settled amount differs from the registered payment",
			result: port.CallbackResult{
				Provider:      domain.PaymentFastpay,
				Ref:           ref,
				ProviderTxnID: providerTxn,
				Amount:        money(t, 1),
				Success:       true,
			},
			mock: func(repo *mock.MockRepository, gw *mock.MockPaymentGateway, notifier *mock.MockNotifier) {
				inTransaction(repo)
				repo.EXPECT().GetCorrelation(gomock.Any(), ref).Return(&corr, nil)
			},
			expError: domain.ErrAmountMismatch,
		},
		{
			name: "Failed result leaves the balance untouched",
			result: port.CallbackResult{
				Provider:      domain.PaymentFastpay,
				Ref:           ref,
				ProviderTxnID: providerTxn,
				Success:       false,
				ResultCode:    "24",
			},
			mock: func(repo *mock.MockRepository, gw *mock.MockPaymentGateway, notifier *mock.MockNotifier) {
				inTransaction(repo)
				repo.EXPECT().GetCorrelation(gomock.Any(), ref).Return(&corr, nil)
				repo.EXPECT().GetWalletByOwner(gomock.Any(), ownerID).Return(&wallet, nil)
				repo.EXPECT().GetTransactionByProviderRef(gomock.Any(), wallet.ID,
					string(domain.PaymentFastpay), providerTxn).Return(nil, domain.ErrDataNotFound)
				repo.EXPECT().UpdateWallet(gomock.Any(), ownerID, gomock.Any()).DoAndReturn(
					func(ctx context.Context, owner uint64, fn port.UpdateWalletFn) (*domain.Wallet, []domain.WalletTransaction, error) {
						w := domain.Wallet{ID: 1, OwnerID: ownerID, Balance: money(t, 100000)}
						txns, err := fn(&w)
						assert.NoError(t, err)
						sameAmount(t, money(t, 100000), w.Balance)
						assert.Equal(t, domain.TxnFailed, txns[0].Status)
						return &w, txns, nil
					})
			},
			expError: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			ts := mock.NewMockTokenService(mockCtrl)
			notifier := mock.NewMockNotifier(mockCtrl)
			test.mock(repo, nil, notifier)

			s, err := service.NewService(repo, ts, nil, notifier, logger)
			assert.NoError(t, err)

			res := test.result
			err = s.ReconcileCallback(context.Background(), &res)

			assert.ErrorIs(t, err, test.expError)
		})
	}
}

func TestService_ReconcileCallbackOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	const (
		buyerID  = uint64(1)
		sellerID = uint64(2)
		courseID = uint64(10)
		orderID  = uint64(100)
	)
	ref := "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
	providerTxn := "ZP-1001"

	corr := domain.GatewayCorrelation{
		ID:       ref,
		Kind:     domain.CorrelationOrder,
		OwnerID:  buyerID,
		OrderID:  ptr(orderID),
		Amount:   money(t, 150000),
		Provider: domain.PaymentZentra,
	}
	wallet := domain.Wallet{ID: 1, OwnerID: buyerID}

	repo := mock.NewMockRepository(mockCtrl)
	ts := mock.NewMockTokenService(mockCtrl)
	notifier := mock.NewMockNotifier(mockCtrl)

	order := domain.Order{
		ID:            orderID,
		BuyerID:       buyerID,
		Status:        domain.OrderStatusPending,
		PaymentMethod: domain.PaymentZentra,
		FinalAmount:   money(t, 150000),
		Lines: []domain.OrderLine{{
			CourseID:  courseID,
			SellerID:  sellerID,
			ListPrice: money(t, 150000),
			UnitPrice: money(t, 150000),
			Quantity:  1,
		}},
	}

	inTransaction(repo)
	repo.EXPECT().GetCorrelation(gomock.Any(), ref).Return(&corr, nil)
	repo.EXPECT().GetWalletByOwner(gomock.Any(), buyerID).Return(&wallet, nil)
	repo.EXPECT().GetTransactionByProviderRef(gomock.Any(), wallet.ID,
		string(domain.PaymentZentra), providerTxn).Return(nil, domain.ErrDataNotFound)
	repo.EXPECT().GetOrder(gomock.Any(), orderID).Return(&order, nil)
	repo.EXPECT().UpdateWallet(gomock.Any(), buyerID, gomock.Any()).DoAndReturn(
		func(ctx context.Context, owner uint64, fn port.UpdateWalletFn) (*domain.Wallet, []domain.WalletTransaction, error) {
			w := domain.Wallet{ID: 1, OwnerID: buyerID, Balance: money(t, 50000)}
			txns, err := fn(&w)
			assert.NoError(t, err)
			// The settlement passes through the ledger with no net effect.
			sameAmount(t, money(t, 50000), w.Balance)
			assert.Len(t, txns, 2)
			assert.Equal(t, domain.TxnDeposit, txns[0].Type)
			assert.Equal(t, domain.TxnPayment, txns[1].Type)
			sameAmount(t, money(t, 150000), txns[0].Amount)
			sameAmount(t, money(t, -150000), txns[1].Amount)
			return &w, txns, nil
		})
	repo.EXPECT().UpdateWallet(gomock.Any(), sellerID, gomock.Any()).DoAndReturn(
		func(ctx context.Context, owner uint64, fn port.UpdateWalletFn) (*domain.Wallet, []domain.WalletTransaction, error) {
			w := domain.Wallet{ID: 2, OwnerID: sellerID, Balance: money(t, 0)}
			txns, err := fn(&w)
			assert.NoError(t, err)
			sameAmount(t, money(t, 105000), w.Balance)
			return &w, txns, nil
		})
	repo.EXPECT().DeleteCartItems(gomock.Any(), buyerID, []uint64{courseID}).Return(nil)
	repo.EXPECT().CreateEnrollment(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().UpdateOrderStatus(gomock.Any(), orderID,
		domain.OrderStatusPending, domain.OrderStatusPaid, gomock.Any()).Return(nil)
	notifier.EXPECT().Notify(gomock.Any())

	s, err := service.NewService(repo, ts, nil, notifier, logger)
	assert.NoError(t, err)

	err = s.ReconcileCallback(context.Background(), &port.CallbackResult{
		Provider:      domain.PaymentZentra,
		Ref:           ref,
		ProviderTxnID: providerTxn,
		Amount:        money(t, 150000),
		Success:       true,
	})

	assert.NoError(t, err)
}

// A second pending order priced with the same voucher settles even though the
// usage row already exists from the first settlement.
func TestService_ReconcileCallbackVoucherReplay(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	const (
		buyerID   = uint64(1)
		sellerID  = uint64(2)
		courseID  = uint64(10)
		orderID   = uint64(101)
		voucherID = uint64(7)
	)
	ref := "bbbbbbbb-cccc-dddd-eeee-ffffffffffff"
	providerTxn := "ZP-1002"

	corr := domain.GatewayCorrelation{
		ID:       ref,
		Kind:     domain.CorrelationOrder,
		OwnerID:  buyerID,
		OrderID:  ptr(orderID),
		Amount:   money(t, 130000),
		Provider: domain.PaymentZentra,
	}
	wallet := domain.Wallet{ID: 1, OwnerID: buyerID}
	voucher := domain.Voucher{ID: voucherID, Code: "SAVE20", UsageLimit: 100}

	order := domain.Order{
		ID:             orderID,
		BuyerID:        buyerID,
		Status:         domain.OrderStatusPending,
		PaymentMethod:  domain.PaymentZentra,
		TotalAmount:    money(t, 150000),
		DiscountAmount: money(t, 20000),
		FinalAmount:    money(t, 130000),
		VoucherID:      ptr(voucherID),
		Lines: []domain.OrderLine{{
			CourseID:  courseID,
			SellerID:  sellerID,
			ListPrice: money(t, 150000),
			UnitPrice: money(t, 150000),
			Quantity:  1,
		}},
	}

	repo := mock.NewMockRepository(mockCtrl)
	ts := mock.NewMockTokenService(mockCtrl)
	notifier := mock.NewMockNotifier(mockCtrl)

	inTransaction(repo)
	repo.EXPECT().GetCorrelation(gomock.Any(), ref).Return(&corr, nil)
	repo.EXPECT().GetWalletByOwner(gomock.Any(), buyerID).Return(&wallet, nil)
	repo.EXPECT().GetTransactionByProviderRef(gomock.Any(), wallet.ID,
		string(domain.PaymentZentra), providerTxn).Return(nil, domain.ErrDataNotFound)
	repo.EXPECT().GetOrder(gomock.Any(), orderID).Return(&order, nil)
	repo.EXPECT().GetVoucher(gomock.Any(), voucherID).Return(&voucher, nil)
	repo.EXPECT().UpdateWallet(gomock.Any(), buyerID, gomock.Any()).DoAndReturn(
		func(ctx context.Context, owner uint64, fn port.UpdateWalletFn) (*domain.Wallet, []domain.WalletTransaction, error) {
			w := domain.Wallet{ID: 1, OwnerID: buyerID, Balance: money(t, 50000)}
			txns, err := fn(&w)
			assert.NoError(t, err)
			return &w, txns, nil
		})
	repo.EXPECT().UpdateWallet(gomock.Any(), sellerID, gomock.Any()).DoAndReturn(
		func(ctx context.Context, owner uint64, fn port.UpdateWalletFn) (*domain.Wallet, []domain.WalletTransaction, error) {
			w := domain.Wallet{ID: 2, OwnerID: sellerID, Balance: money(t, 0)}
			txns, err := fn(&w)
			assert.NoError(t, err)
			return &w, txns, nil
		})
	// The usage row from the first order's settlement is already there. The
	// settlement must keep going: the buyer paid externally.
	repo.EXPECT().RecordVoucherUsage(gomock.Any(), gomock.Any()).Return(domain.ErrConflictingData)
	repo.EXPECT().DeleteCartItems(gomock.Any(), buyerID, []uint64{courseID}).Return(nil)
	repo.EXPECT().CreateEnrollment(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().UpdateOrderStatus(gomock.Any(), orderID,
		domain.OrderStatusPending, domain.OrderStatusPaid, gomock.Any()).Return(nil)
	notifier.EXPECT().Notify(gomock.Any())

	s, err := service.NewService(repo, ts, nil, notifier, logger)
	assert.NoError(t, err)

	err = s.ReconcileCallback(context.Background(), &port.CallbackResult{
		Provider:      domain.PaymentZentra,
		Ref:           ref,
		ProviderTxnID: providerTxn,
		Amount:        money(t, 130000),
		Success:       true,
	})

	assert.NoError(t, err)
}

// A success callback understating the amount must not flip the order to paid.
func TestService_ReconcileCallbackOrderAmountMismatch(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	const buyerID = uint64(1)
	ref := "cccccccc-dddd-eeee-ffff-000000000000"

	corr := domain.GatewayCorrelation{
		ID:       ref,
		Kind:     domain.CorrelationOrder,
		OwnerID:  buyerID,
		OrderID:  ptr(uint64(100)),
		Amount:   money(t, 150000),
		Provider: domain.PaymentZentra,
	}

	repo := mock.NewMockRepository(mockCtrl)
	ts := mock.NewMockTokenService(mockCtrl)
	notifier := mock.NewMockNotifier(mockCtrl)

	inTransaction(repo)
	repo.EXPECT().GetCorrelation(gomock.Any(), ref).Return(&corr, nil)

	s, err := service.NewService(repo, ts, nil, notifier, logger)
	assert.NoError(t, err)

	err = s.ReconcileCallback(context.Background(), &port.CallbackResult{
		Provider:      domain.PaymentZentra,
		Ref:           ref,
		ProviderTxnID: "ZP-1003",
		Amount:        money(t, 1),
		Success:       true,
	})

	assert.ErrorIs(t, err, domain.ErrAmountMismatch)
}

func ptr[T any](v T) *T {
	return &v
}
