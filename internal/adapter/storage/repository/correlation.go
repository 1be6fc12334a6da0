package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/edumart/edupay/internal/core/domain"
)

func (r *Repository) CreateCorrelation(ctx context.Context, c *domain.GatewayCorrelation) error {
	statement := r.db.QueryBuilder.
		Insert("gateway_correlations").
		Columns("id", "kind", "owner_id", "order_id", "amount", "provider", "created_at").
		Values(c.ID, c.Kind, c.OwnerID, c.OrderID, c.Amount, c.Provider, c.CreatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.q.Exec(ctx, sql, args...)
	return wrapError(err)
}

func (r *Repository) GetCorrelation(ctx context.Context, id string) (*domain.GatewayCorrelation, error) {
	statement := r.db.QueryBuilder.
		Select("id", "kind", "owner_id", "order_id", "amount", "provider", "created_at").
		From("gateway_correlations").
		Where(sq.Eq{"id": id})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	c := domain.GatewayCorrelation{}
	err = r.q.QueryRow(ctx, sql, args...).Scan(
		&c.ID,
		&c.Kind,
		&c.OwnerID,
		&c.OrderID,
		&c.Amount,
		&c.Provider,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, wrapError(err)
	}
	return &c, nil
}
