package service

import (
	"github.com/edumart/edupay/internal/core/domain"
	"github.com/govalues/decimal"
)

// SellerSharePercent is the seller's cut of a course sale. The remaining
// platform margin is retained implicitly and never credited anywhere.
const SellerSharePercent = 70

var sellerShare = decimal.MustNew(SellerSharePercent, 0)

func percentOf(amount, pct decimal.Decimal) (decimal.Decimal, error) {
	p, err := amount.Mul(pct)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return p.Quo(decimal.Hundred)
}

func mulQty(amount decimal.Decimal, qty int) (decimal.Decimal, error) {
	return amount.Mul(decimal.MustNew(int64(qty), 0))
}

// listedLinePrice is the storefront price: listed price minus the listed
// discount percentage.
func listedLinePrice(c *domain.Course) (decimal.Decimal, error) {
	if c.DiscountPercent <= 0 {
		return c.Price, nil
	}
	off, err := percentOf(c.Price, decimal.MustNew(int64(c.DiscountPercent), 0))
	if err != nil {
		return decimal.Decimal{}, err
	}
	return c.Price.Sub(off)
}
