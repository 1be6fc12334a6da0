package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/edumart/edupay/internal/core/domain"
)

func (r *Repository) CreateEnrollment(ctx context.Context, e *domain.Enrollment) error {
	statement := r.db.QueryBuilder.
		Insert("enrollments").
		Columns("student_id", "course_id", "order_id", "created_at").
		Values(e.StudentID, e.CourseID, e.OrderID, e.CreatedAt).
		Suffix("returning id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	err = r.q.QueryRow(ctx, sql, args...).Scan(&e.ID)
	return wrapError(err)
}

func (r *Repository) DeleteEnrollment(ctx context.Context, studentID, courseID uint64) error {
	statement := r.db.QueryBuilder.
		Delete("enrollments").
		Where(sq.Eq{"student_id": studentID, "course_id": courseID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return wrapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}
