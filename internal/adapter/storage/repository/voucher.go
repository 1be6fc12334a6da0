package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/edumart/edupay/internal/core/domain"
)

const voucherColumns = "id, code, type, value, max_discount, min_order_value, " +
	"starts_at, ends_at, usage_limit, used_count"

func (r *Repository) scanVoucher(row interface{ Scan(dest ...any) error }) (*domain.Voucher, error) {
	voucher := domain.Voucher{}
	err := row.Scan(
		&voucher.ID,
		&voucher.Code,
		&voucher.Type,
		&voucher.Value,
		&voucher.MaxDiscount,
		&voucher.MinOrderValue,
		&voucher.StartsAt,
		&voucher.EndsAt,
		&voucher.UsageLimit,
		&voucher.UsedCount,
	)
	if err != nil {
		return nil, wrapError(err)
	}
	return &voucher, nil
}

func (r *Repository) GetVoucher(ctx context.Context, voucherID uint64) (*domain.Voucher, error) {
	statement := r.db.QueryBuilder.
		Select(voucherColumns).
		From("vouchers").
		Where(sq.Eq{"id": voucherID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}
	return r.scanVoucher(r.q.QueryRow(ctx, sql, args...))
}

func (r *Repository) GetVoucherByCode(ctx context.Context, code string) (*domain.Voucher, error) {
	statement := r.db.QueryBuilder.
		Select(voucherColumns).
		From("vouchers").
		Where(sq.Eq{"code": code})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}
	return r.scanVoucher(r.q.QueryRow(ctx, sql, args...))
}

func (r *Repository) HasVoucherUsage(ctx context.Context, voucherID, userID uint64) (bool, error) {
	statement := r.db.QueryBuilder.
		Select("count(1)").
		From("voucher_usages").
		Where(sq.Eq{"voucher_id": voucherID, "user_id": userID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return false, err
	}

	var count int
	err = r.q.QueryRow(ctx, sql, args...).Scan(&count)
	if err != nil {
		return false, wrapError(err)
	}
	return count > 0, nil
}

func (r *Repository) RecordVoucherUsage(ctx context.Context, usage *domain.VoucherUsage) error {
	statement := r.db.QueryBuilder.
		Insert("voucher_usages").
		Columns("user_id", "voucher_id", "order_id", "used_at").
		Values(usage.UserID, usage.VoucherID, usage.OrderID, usage.UsedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.q.Exec(ctx, sql, args...)
	return wrapError(err)
}

func (r *Repository) IncrementVoucherUsed(ctx context.Context, voucherID uint64) error {
	statement := r.db.QueryBuilder.
		Update("vouchers").
		Set("used_count", sq.Expr("used_count + 1")).
		Where(sq.Eq{"id": voucherID})

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
