package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/edumart/edupay/internal/core/domain"
)

func (r *Repository) GetCourse(ctx context.Context, courseID uint64) (*domain.Course, error) {
	statement := r.db.QueryBuilder.
		Select("id", "title", "seller_id", "price", "discount_percent").
		From("courses").
		Where(sq.Eq{"id": courseID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	course := domain.Course{}
	err = r.q.QueryRow(ctx, sql, args...).Scan(
		&course.ID,
		&course.Title,
		&course.SellerID,
		&course.Price,
		&course.DiscountPercent,
	)
	if err != nil {
		return nil, wrapError(err)
	}

	return &course, nil
}
