package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/edumart/edupay/internal/core/domain"
	"github.com/edumart/edupay/internal/core/port"
)

func (r *Repository) GetWalletByOwner(ctx context.Context, ownerID uint64) (*domain.Wallet, error) {
	statement := r.db.QueryBuilder.
		Select("id", "owner_id", "role", "balance").
		From("wallets").
		Where(sq.Eq{"owner_id": ownerID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	wallet := domain.Wallet{}
	err = r.q.QueryRow(ctx, sql, args...).Scan(
		&wallet.ID,
		&wallet.OwnerID,
		&wallet.Role,
		&wallet.Balance,
	)
	if err != nil {
		return nil, wrapError(err)
	}
	return &wallet, nil
}

// UpdateWallet locks the wallet row, lets fn adjust the balance and appends
// the ledger rows fn returns, all in one transaction. The balance cache and
// the history can never diverge.
func (r *Repository) UpdateWallet(ctx context.Context, ownerID uint64, fn port.UpdateWalletFn) (*domain.Wallet, []domain.WalletTransaction, error) {
	var wallet *domain.Wallet
	var appended []domain.WalletTransaction

	err := r.WithinTransaction(ctx, func(pr port.Repository) error {
		tr := pr.(*Repository)

		statement := tr.db.QueryBuilder.
			Select("id", "owner_id", "role", "balance").
			From("wallets").
			Where(sq.Eq{"owner_id": ownerID}).
			Suffix("for update")

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		w := domain.Wallet{}
		err = tr.q.QueryRow(ctx, sql, args...).Scan(&w.ID, &w.OwnerID, &w.Role, &w.Balance)
		if err != nil {
			return wrapError(err)
		}

		txns, err := fn(&w)
		if err != nil {
			return err
		}
		if w.Balance.IsNeg() {
			return domain.ErrInsufficientBalance
		}

		update := tr.db.QueryBuilder.
			Update("wallets").
			Set("balance", w.Balance).
			Where(sq.Eq{"id": w.ID})

		sql, args, err = update.ToSql()
		if err != nil {
			return err
		}
		if _, err := tr.q.Exec(ctx, sql, args...); err != nil {
			return wrapError(err)
		}

		for i := range txns {
			txns[i].WalletID = w.ID

			insert := tr.db.QueryBuilder.
				Insert("wallet_transactions").
				Columns("wallet_id", "type", "amount", "method", "status",
					"order_id", "provider_txn_id", "created_at").
				Values(txns[i].WalletID, txns[i].Type, txns[i].Amount, txns[i].Method,
					txns[i].Status, txns[i].OrderID, txns[i].ProviderTxnID, txns[i].CreatedAt).
				Suffix("returning id")

			sql, args, err := insert.ToSql()
			if err != nil {
				return err
			}
			err = tr.q.QueryRow(ctx, sql, args...).Scan(&txns[i].ID)
			if err != nil {
				return wrapError(err)
			}
		}

		wallet = &w
		appended = txns
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return wallet, appended, nil
}

func (r *Repository) ListWalletTransactions(ctx context.Context, walletID uint64) ([]domain.WalletTransaction, error) {
	statement := r.db.QueryBuilder.
		Select("id", "wallet_id", "type", "amount", "method", "status",
			"order_id", "provider_txn_id", "created_at").
		From("wallet_transactions").
		Where(sq.Eq{"wallet_id": walletID}).
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

	list := make([]domain.WalletTransaction, 0)
	for rows.Next() {
		txn := domain.WalletTransaction{}
		err := rows.Scan(
			&txn.ID,
			&txn.WalletID,
			&txn.Type,
			&txn.Amount,
			&txn.Method,
			&txn.Status,
			&txn.OrderID,
			&txn.ProviderTxnID,
			&txn.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *Repository) GetTransactionByProviderRef(ctx context.Context, walletID uint64, provider, providerTxnID string) (*domain.WalletTransaction, error) {
	statement := r.db.QueryBuilder.
		Select("id", "wallet_id", "type", "amount", "method", "status",
			"order_id", "provider_txn_id", "created_at").
		From("wallet_transactions").
		Where(sq.Eq{"wallet_id": walletID, "method": provider, "provider_txn_id": providerTxnID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	txn := domain.WalletTransaction{}
	err = r.q.QueryRow(ctx, sql, args...).Scan(
		&txn.ID,
		&txn.WalletID,
		&txn.Type,
		&txn.Amount,
		&txn.Method,
		&txn.Status,
		&txn.OrderID,
		&txn.ProviderTxnID,
		&txn.CreatedAt,
	)
	if err != nil {
		return nil, wrapError(err)
	}
	return &txn, nil
}

// UpdateTransactionStatus moves a pending hold to its terminal state. Guarded
// the same way as order transitions.
func (r *Repository) UpdateTransactionStatus(ctx context.Context, txnID uint64, from, to domain.TxnStatus) error {
	statement := r.db.QueryBuilder.
		Update("wallet_transactions").
		Set("status", to).
		Where(sq.Eq{"id": txnID, "status": from})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return wrapError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStateConflict
	}
	return nil
}
