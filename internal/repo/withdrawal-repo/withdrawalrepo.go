package withdrawalrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/adearn/adearn/internal/domain"
	"github.com/adearn/adearn/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, req *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	query := `
		INSERT INTO withdrawal_requests (id, account_id, amount, wallet_address, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		req.ID, req.AccountID, req.Amount, req.WalletAddress, req.Status, req.CreatedAt)
	if err != nil {
		zap.L().Error("can't save withdrawal request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	query := `
        SELECT id, account_id, amount, wallet_address, status, created_at
        FROM withdrawal_requests
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var req domain.WithdrawalRequest
	err := row.Scan(&req.ID, &req.AccountID, &req.Amount, &req.WalletAddress, &req.Status, &req.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find withdrawal request", zap.Error(err))
		return nil, err
	}
	return &req, nil
}

// UpdateStatus flips the request status only when it still holds fromStatus,
// so a settled request can never be settled again.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, fromStatus, toStatus string) (bool, error) {
	query := `
		UPDATE withdrawal_requests
		SET status = $1
		WHERE id = $2 AND status = $3
	`
	tag, err := r.db.Exec(ctx, query, toStatus, id, fromStatus)
	if err != nil {
		zap.L().Error("can't update withdrawal request status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) ListByAccountID(ctx context.Context, accountID int) ([]domain.WithdrawalRequest, error) {
	query := `
        SELECT id, account_id, amount, wallet_address, status, created_at
        FROM withdrawal_requests
        WHERE account_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawal requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanRequests(rows)
}

// ListByStatus returns all requests when status is empty.
func (r *Repository) ListByStatus(ctx context.Context, status string) ([]domain.WithdrawalRequest, error) {
	query := `
        SELECT id, account_id, amount, wallet_address, status, created_at
        FROM withdrawal_requests
        WHERE $1 = '' OR status = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		zap.L().Error("failed to fetch withdrawal requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return scanRequests(rows)
}

func scanRequests(rows pgx.Rows) ([]domain.WithdrawalRequest, error) {
	var requests []domain.WithdrawalRequest
	for rows.Next() {
		var req domain.WithdrawalRequest
		err := rows.Scan(&req.ID, &req.AccountID, &req.Amount, &req.WalletAddress, &req.Status, &req.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan withdrawal request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}
