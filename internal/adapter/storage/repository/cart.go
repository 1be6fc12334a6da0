package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/edumart/edupay/internal/core/domain"
)

func (r *Repository) ListCartItems(ctx context.Context, userID uint64) ([]domain.CartItem, error) {
	statement := r.db.QueryBuilder.
		Select("user_id", "course_id", "quantity").
		From("cart_items").
		Where(sq.Eq{"user_id": userID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapError(err)
	}
	defer rows.Close()

	items := make([]domain.CartItem, 0)
	for rows.Next() {
		item := domain.CartItem{}
		err := rows.Scan(&item.UserID, &item.CourseID, &item.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository) DeleteCartItems(ctx context.Context, userID uint64, courseIDs []uint64) error {
	if len(courseIDs) == 0 {
		return nil
	}

	statement := r.db.QueryBuilder.
		Delete("cart_items").
		Where(sq.Eq{"user_id": userID, "course_id": courseIDs})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.q.Exec(ctx, sql, args...)
	return wrapError(err)
}
