package repository

import (
	"context"
	"errors"

	"github.com/edumart/edupay/internal/adapter/storage"
	"github.com/edumart/edupay/internal/core/domain"
	"github.com/edumart/edupay/internal/core/port"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so every query
// method works unchanged inside and outside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository struct {
	db *storage.DB
	q  querier
	tx pgx.Tx
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db, q: db.Pool}, nil
}

// WithinTransaction runs fn against a Repository bound to one database
// transaction. Nested calls reuse the transaction already in flight, which is
// what lets the service compose ledger and order writes into a single atomic
// unit.
func (r *Repository) WithinTransaction(ctx context.Context, fn func(port.Repository) error) error {
	if r.tx != nil {
		return fn(r)
	}
	return pgx.BeginFunc(ctx, r.db.Pool, func(tx pgx.Tx) error {
		return fn(&Repository{db: r.db, q: tx, tx: tx})
	})
}

// wrapError translates driver errors into domain sentinels.
func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrDataNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return domain.ErrConflictingData
	}
	return err
}
