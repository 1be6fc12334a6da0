package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/edumart/edupay/internal/core/domain"
	"github.com/edumart/edupay/internal/core/port"
	"github.com/govalues/decimal"
)

// CreateUser inserts the user together with an empty wallet: every account
// can pay or earn from the moment it exists.
func (r *Repository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	err := r.WithinTransaction(ctx, func(pr port.Repository) error {
		tr := pr.(*Repository)

		userSt := tr.db.QueryBuilder.
			Insert("users").
			Columns("login", "password", "role", "created_at").
			Values(user.Login, user.Password, user.Role, user.CreatedAt).
			Suffix("returning id")

		sql, args, err := userSt.ToSql()
		if err != nil {
			return err
		}
		err = tr.q.QueryRow(ctx, sql, args...).Scan(&user.ID)
		if err != nil {
			return err
		}

		walletRole := domain.WalletBuyer
		if user.Role == domain.RoleTeacher {
			walletRole = domain.WalletSeller
		}
		walletSt := tr.db.QueryBuilder.
			Insert("wallets").
			Columns("owner_id", "role", "balance").
			Values(user.ID, walletRole, decimal.Zero)

		sql, args, err = walletSt.ToSql()
		if err != nil {
			return err
		}
		_, err = tr.q.Exec(ctx, sql, args...)
		return err
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return user, nil
}

func (r *Repository) GetUserByLogin(ctx context.Context, login string) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Select("id", "login", "password", "role", "created_at").
		From("users").
		Where(sq.Eq{"login": login})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	user := domain.User{}
	err = r.q.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&user.Login,
		&user.Password,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, wrapError(err)
	}

	return &user, nil
}
