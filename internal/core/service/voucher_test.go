package service_test

import (
	"testing"
	"time"

	"github.com/edumart/edupay/internal/core/domain"
	"github.com/edumart/edupay/internal/core/service"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
)

func TestVoucherDiscount(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expired := now.Add(-time.Hour)

	percent10 := domain.Voucher{
		Type:        domain.VoucherPercentage,
		Value:       money(t, 10),
		MaxDiscount: money(t, 20000),
	}

	type discountTest struct {
		name        string
		voucher     *domain.Voucher
		total       decimal.Decimal
		usedByBuyer bool
		expDiscount decimal.Decimal
	}

	tests := []discountTest{
		{
			name:        "Percentage under cap",
			voucher:     &percent10,
			total:       money(t, 100000),
			expDiscount: money(t, 10000),
		},
		{
			name:        "Percentage hits cap",
			voucher:     &percent10,
			total:       money(t, 300000),
			expDiscount: money(t, 20000),
		},
		{
			name: "Fixed clamped to total",
			voucher: &domain.Voucher{
				Type:  domain.VoucherFixed,
				Value: money(t, 50000),
			},
			total:       money(t, 30000),
			expDiscount: money(t, 30000),
		},
		{
			name:        "Already used by buyer",
			voucher:     &percent10,
			total:       money(t, 100000),
			usedByBuyer: true,
			expDiscount: decimal.Zero,
		},
		{
			name: "Not started yet",
			voucher: &domain.Voucher{
				Type:     domain.VoucherPercentage,
				Value:    money(t, 10),
				StartsAt: now.Add(time.Hour),
			},
			total:       money(t, 100000),
			expDiscount: decimal.Zero,
		},
		{
			name: "Expired",
			voucher: &domain.Voucher{
				Type:   domain.VoucherPercentage,
				Value:  money(t, 10),
				EndsAt: &expired,
			},
			total:       money(t, 100000),
			expDiscount: decimal.Zero,
		},
		{
			name: "Usage limit exhausted",
			voucher: &domain.Voucher{
				Type:       domain.VoucherPercentage,
				Value:      money(t, 10),
				UsageLimit: 5,
				UsedCount:  5,
			},
			total:       money(t, 100000),
			expDiscount: decimal.Zero,
		},
		{
			name: "Below minimum order value",
			voucher: &domain.Voucher{
				Type:          domain.VoucherPercentage,
				Value:         money(t, 10),
				MinOrderValue: money(t, 200000),
			},
			total:       money(t, 100000),
			expDiscount: decimal.Zero,
		},
		{
			name:        "No voucher",
			voucher:     nil,
			total:       money(t, 100000),
			expDiscount: decimal.Zero,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			discount, err := service.VoucherDiscount(test.voucher, test.total, test.usedByBuyer, now)

			assert.NoError(t, err)
			sameAmount(t, test.expDiscount, discount)
		})
	}
}
