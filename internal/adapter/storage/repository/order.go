package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/edumart/edupay/internal/core/domain"
	"github.com/edumart/edupay/internal/core/port"
)

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := r.WithinTransaction(ctx, func(pr port.Repository) error {
		tr := pr.(*Repository)

		orderSt := tr.db.QueryBuilder.
			Insert("orders").
			Columns("buyer_id", "total_amount", "discount_amount", "final_amount",
				"voucher_id", "payment_method", "status", "contact", "created_at", "paid_at").
			Values(order.BuyerID, order.TotalAmount, order.DiscountAmount, order.FinalAmount,
				order.VoucherID, order.PaymentMethod, order.Status, order.Contact,
				order.CreatedAt, order.PaidAt).
			Suffix("returning id")

		sql, args, err := orderSt.ToSql()
		if err != nil {
			return err
		}
		err = tr.q.QueryRow(ctx, sql, args...).Scan(&order.ID)
		if err != nil {
			return err
		}

		for i := range order.Lines {
			line := &order.Lines[i]
			line.OrderID = order.ID

			lineSt := tr.db.QueryBuilder.
				Insert("order_lines").
				Columns("order_id", "course_id", "seller_id", "list_price", "unit_price", "quantity").
				Values(line.OrderID, line.CourseID, line.SellerID, line.ListPrice, line.UnitPrice, line.Quantity).
				Suffix("returning id")

			sql, args, err := lineSt.ToSql()
			if err != nil {
				return err
			}
			err = tr.q.QueryRow(ctx, sql, args...).Scan(&line.ID)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return order, nil
}

const orderColumns = "id, buyer_id, total_amount, discount_amount, final_amount, " +
	"voucher_id, payment_method, status, contact, created_at, paid_at, cancelled_at, refunded_at"

func (r *Repository) GetOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}
	err = r.q.QueryRow(ctx, sql, args...).Scan(
		&order.ID,
		&order.BuyerID,
		&order.TotalAmount,
		&order.DiscountAmount,
		&order.FinalAmount,
		&order.VoucherID,
		&order.PaymentMethod,
		&order.Status,
		&order.Contact,
		&order.CreatedAt,
		&order.PaidAt,
		&order.CancelledAt,
		&order.RefundedAt,
	)
	if err != nil {
		return nil, wrapError(err)
	}

	order.Lines, err = r.orderLines(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *Repository) orderLines(ctx context.Context, orderID uint64) ([]domain.OrderLine, error) {
	statement := r.db.QueryBuilder.
		Select("id", "order_id", "course_id", "seller_id", "list_price", "unit_price", "quantity").
		From("order_lines").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapError(err)
	}
	defer rows.Close()

	lines := make([]domain.OrderLine, 0)
	for rows.Next() {
		line := domain.OrderLine{}
		err := rows.Scan(
			&line.ID,
			&line.OrderID,
			&line.CourseID,
			&line.SellerID,
			&line.ListPrice,
			&line.UnitPrice,
			&line.Quantity,
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *Repository) ListOrdersByBuyer(ctx context.Context, buyerID uint64, limit, offset uint64) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{"buyer_id": buyerID}).
		OrderBy("created_at DESC")
	if limit > 0 {
		statement = statement.Limit(limit).Offset(offset)
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapError(err)
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order := domain.Order{}
		err := rows.Scan(
			&order.ID,
			&order.BuyerID,
			&order.TotalAmount,
			&order.DiscountAmount,
			&order.FinalAmount,
			&order.VoucherID,
			&order.PaymentMethod,
			&order.Status,
			&order.Contact,
			&order.CreatedAt,
			&order.PaidAt,
			&order.CancelledAt,
			&order.RefundedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, order := range list {
		order.Lines, err = r.orderLines(ctx, order.ID)
		if err != nil {
			return nil, err
		}
	}
	return list, nil
}

// UpdateOrderStatus performs a guarded one-directional transition: the update
// matches zero rows unless the order still has the expected status.
func (r *Repository) UpdateOrderStatus(ctx context.Context, orderID uint64, from, to domain.OrderStatus, at time.Time) error {
	statement := r.db.QueryBuilder.
		Update("orders").
		Set("status", to).
		Where(sq.Eq{"id": orderID, "status": from})

	switch to {
	case domain.OrderStatusPaid:
		statement = statement.Set("paid_at", at)
	case domain.OrderStatusCancelled:
		statement = statement.Set("cancelled_at", at)
	case domain.OrderStatusRefunded:
		statement = statement.Set("refunded_at", at)
	}

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return wrapError(err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetOrder(ctx, orderID); err != nil {
			return err
		}
		return domain.ErrStateConflict
	}
	return nil
}
