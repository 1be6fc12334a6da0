package domain

import "github.com/govalues/decimal"

// Course is the read-only snapshot the payments core needs from the catalog:
// listed price, listed discount and the seller receiving the revenue share.
type Course struct {
	ID              uint64
	Title           string
	SellerID        uint64
	Price           decimal.Decimal
	DiscountPercent int
}

type CartItem struct {
	UserID   uint64
	CourseID uint64
	Quantity int
}
