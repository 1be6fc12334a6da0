package service

import (
	"context"
	"errors"
	"time"

	"github.com/edumart/edupay/internal/core/domain"
	"github.com/edumart/edupay/internal/core/port"
	"github.com/govalues/decimal"
)

// VoucherDiscount computes the discount a voucher grants on an order total.
// Every failed precondition yields a zero discount, never an error: the
// storefront ignores inapplicable codes instead of rejecting the order.
func VoucherDiscount(v *domain.Voucher, total decimal.Decimal, usedByBuyer bool, now time.Time) (decimal.Decimal, error) {
	if v == nil || usedByBuyer {
		return decimal.Zero, nil
	}
	if now.Before(v.StartsAt) {
		return decimal.Zero, nil
	}
	if v.EndsAt != nil && now.After(*v.EndsAt) {
		return decimal.Zero, nil
	}
	if v.UsageLimit > 0 && v.UsedCount >= v.UsageLimit {
		return decimal.Zero, nil
	}
	if total.Cmp(v.MinOrderValue) < 0 {
		return decimal.Zero, nil
	}

	var discount decimal.Decimal
	switch v.Type {
	case domain.VoucherPercentage:
		d, err := total.Mul(v.Value)
		if err != nil {
			return decimal.Zero, err
		}
		d, err = d.Quo(decimal.Hundred)
		if err != nil {
			return decimal.Zero, err
		}
		if v.MaxDiscount.IsPos() && d.Cmp(v.MaxDiscount) > 0 {
			d = v.MaxDiscount
		}
		discount = d
	case domain.VoucherFixed:
		discount = v.Value
	default:
		return decimal.Zero, nil
	}

	// FinalAmount must stay non-negative.
	if discount.Cmp(total) > 0 {
		discount = total
	}
	return discount, nil
}

// priceVoucher resolves code and asks VoucherDiscount to price it. The
// returned voucher is nil whenever the discount is zero so callers never
// record usage for a code that contributed nothing.
func (s *Service) priceVoucher(ctx context.Context, r port.Repository,
	code string, buyerID uint64, total decimal.Decimal) (*domain.Voucher, decimal.Decimal, error) {
	if code == "" {
		return nil, decimal.Zero, nil
	}

	v, err := r.GetVoucherByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, decimal.Zero, nil
		}
		return nil, decimal.Zero, err
	}

	used, err := r.HasVoucherUsage(ctx, v.ID, buyerID)
	if err != nil {
		return nil, decimal.Zero, err
	}

	discount, err := VoucherDiscount(v, total, used, s.now())
	if err != nil {
		return nil, decimal.Zero, err
	}
	if !discount.IsPos() {
		return nil, decimal.Zero, nil
	}
	return v, discount, nil
}

// recordVoucherUsage persists the one-use-per-buyer fact and bumps the usage
// counter for capped vouchers. The unique (user, voucher) constraint is what
// holds under concurrent attempts.
func recordVoucherUsage(ctx context.Context, r port.Repository, v *domain.Voucher, buyerID, orderID uint64, at time.Time) error {
	if v == nil {
		return nil
	}
	err := r.RecordVoucherUsage(ctx, &domain.VoucherUsage{
		UserID:    buyerID,
		VoucherID: v.ID,
		OrderID:   orderID,
		UsedAt:    at,
	})
	if err != nil {
		// The buyer already consumed this code in an earlier settlement: a
		// second pending order priced before that settlement landed. The
		// usage and counter are on record, so the tail keeps going.
		if errors.Is(err, domain.ErrConflictingData) {
			return nil
		}
		return err
	}
	if v.UsageLimit > 0 {
		return r.IncrementVoucherUsed(ctx, v.ID)
	}
	return nil
}
