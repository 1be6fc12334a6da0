package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/edumart/edupay/internal/core/domain"
)

const withdrawalColumns = "id, owner_id, amount, bank_name, account_number, " +
	"account_holder, status, transaction_id, created_at, resolved_at"

func (r *Repository) CreateWithdrawal(ctx context.Context, req *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	statement := r.db.QueryBuilder.
		Insert("withdrawal_requests").
		Columns("owner_id", "amount", "bank_name", "account_number",
			"account_holder", "status", "transaction_id", "created_at").
		Values(req.OwnerID, req.Amount, req.BankName, req.AccountNumber,
			req.AccountHolder, req.Status, req.TransactionID, req.CreatedAt).
		Suffix("returning id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.q.QueryRow(ctx, sql, args...).Scan(&req.ID)
	if err != nil {
		return nil, wrapError(err)
	}
	return req, nil
}

func (r *Repository) GetWithdrawal(ctx context.Context, id uint64) (*domain.WithdrawalRequest, error) {
	statement := r.db.QueryBuilder.
		Select(withdrawalColumns).
		From("withdrawal_requests").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	req := domain.WithdrawalRequest{}
	err = r.q.QueryRow(ctx, sql, args...).Scan(
		&req.ID,
		&req.OwnerID,
		&req.Amount,
		&req.BankName,
		&req.AccountNumber,
		&req.AccountHolder,
		&req.Status,
		&req.TransactionID,
		&req.CreatedAt,
		&req.ResolvedAt,
	)
	if err != nil {
		return nil, wrapError(err)
	}
	return &req, nil
}

func (r *Repository) ListWithdrawals(ctx context.Context, status domain.WithdrawalStatus) ([]*domain.WithdrawalRequest, error) {
	statement := r.db.QueryBuilder.
		Select(withdrawalColumns).
		From("withdrawal_requests").
		OrderBy("created_at DESC")
	if status != "" {
		statement = statement.Where(sq.Eq{"status": status})
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

	list := make([]*domain.WithdrawalRequest, 0)
	for rows.Next() {
		req := domain.WithdrawalRequest{}
		err := rows.Scan(
			&req.ID,
			&req.OwnerID,
			&req.Amount,
			&req.BankName,
			&req.AccountNumber,
			&req.AccountHolder,
			&req.Status,
			&req.TransactionID,
			&req.CreatedAt,
			&req.ResolvedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) UpdateWithdrawalStatus(ctx context.Context, id uint64, from, to domain.WithdrawalStatus, at time.Time) error {
	statement := r.db.QueryBuilder.
		Update("withdrawal_requests").
		Set("status", to).
		Set("resolved_at", at).
		Where(sq.Eq{"id": id, "status": from})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return wrapError(err)
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetWithdrawal(ctx, id); err != nil {
			return err
		}
		return domain.ErrStateConflict
	}
	return nil
}
