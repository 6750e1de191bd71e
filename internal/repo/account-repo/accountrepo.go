package accountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/adearn/adearn/internal/domain"
	"github.com/adearn/adearn/internal/pg"
)

const accountColumns = `id, email, name, password_hash, wallet_address, points, referrals, referred_by, role, status, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var acc domain.Account
	err := row.Scan(
		&acc.ID, &acc.Email, &acc.Name, &acc.PasswordHash, &acc.WalletAddress,
		&acc.Points, &acc.Referrals, &acc.ReferredBy, &acc.Role, &acc.Status, &acc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE email = $1
    `
	acc, err := scanAccount(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find account by email", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        WHERE id = $1
    `
	acc, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find account by id", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

func (r *Repository) Create(ctx context.Context, acc *domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (email, name, password_hash, wallet_address, referred_by, role, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		acc.Email, acc.Name, acc.PasswordHash, acc.WalletAddress, acc.ReferredBy, acc.Role, acc.Status,
	).Scan(&acc.ID, &acc.CreatedAt)
	if err != nil {
		zap.L().Error("can't save account", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Account, error) {
	query := `
        SELECT ` + accountColumns + `
        FROM accounts
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var acc domain.Account
		err := rows.Scan(
			&acc.ID, &acc.Email, &acc.Name, &acc.PasswordHash, &acc.WalletAddress,
			&acc.Points, &acc.Referrals, &acc.ReferredBy, &acc.Role, &acc.Status, &acc.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

func (r *Repository) UpdateProfile(ctx context.Context, id int, name, walletAddress string) (*domain.Account, error) {
	query := `
		UPDATE accounts
		SET name = $1, wallet_address = $2
		WHERE id = $3
		RETURNING ` + accountColumns + `
	`
	acc, err := scanAccount(r.db.QueryRow(ctx, query, name, walletAddress, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't update account profile", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

func (r *Repository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	query := `
		UPDATE accounts
		SET password_hash = $1
		WHERE id = $2
	`
	tag, err := r.db.Exec(ctx, query, passwordHash, id)
	if err != nil {
		zap.L().Error("can't update account password", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) SetStatus(ctx context.Context, id int, status string) (*domain.Account, error) {
	query := `
		UPDATE accounts
		SET status = $1
		WHERE id = $2
		RETURNING ` + accountColumns + `
	`
	acc, err := scanAccount(r.db.QueryRow(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't set account status", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

// AddPoints applies a relative increment so concurrent credits never lose
// updates. Returns nil when the account does not exist.
func (r *Repository) AddPoints(ctx context.Context, id int, delta int64) (*domain.Account, error) {
	query := `
		UPDATE accounts
		SET points = points + $1
		WHERE id = $2
		RETURNING ` + accountColumns + `
	`
	acc, err := scanAccount(r.db.QueryRow(ctx, query, delta, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't add points", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

// CompareAndSwapPoints writes newPoints only if the stored balance still
// equals oldPoints. Returns false when another writer got there first.
func (r *Repository) CompareAndSwapPoints(ctx context.Context, id int, oldPoints, newPoints int64) (bool, error) {
	query := `
		UPDATE accounts
		SET points = $1
		WHERE id = $2 AND points = $3
	`
	tag, err := r.db.Exec(ctx, query, newPoints, id, oldPoints)
	if err != nil {
		zap.L().Error("can't swap points", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) SetPoints(ctx context.Context, id int, points int64) (*domain.Account, error) {
	query := `
		UPDATE accounts
		SET points = $1
		WHERE id = $2
		RETURNING ` + accountColumns + `
	`
	acc, err := scanAccount(r.db.QueryRow(ctx, query, points, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't set points", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

func (r *Repository) IncrementReferrals(ctx context.Context, id int) (bool, error) {
	query := `
		UPDATE accounts
		SET referrals = referrals + 1
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't increment referrals", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
