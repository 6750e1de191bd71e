package accountservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/adearn/adearn/internal/domain"
	"github.com/adearn/adearn/pkg/validate"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrInvalidWalletAddress = errors.New("invalid wallet address")
	ErrInvalidStatus        = errors.New("invalid account status")
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	UpdateProfile(ctx context.Context, id int, name, walletAddress string) (*domain.Account, error)
	SetStatus(ctx context.Context, id int, status string) (*domain.Account, error)
}

type Service struct {
	accountRepo Repo
}

func New(repo Repo) *Service {
	return &Service{
		accountRepo: repo,
	}
}

func (s *Service) GetProfile(ctx context.Context, accountID int) (*domain.Account, error) {
	acc, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if acc == nil {
		return nil, ErrAccountNotFound
	}
	return acc, nil
}

// UpdateProfile changes the owner-editable fields. The wallet address may be
// cleared, but a non-empty one must look like a payout destination.
func (s *Service) UpdateProfile(ctx context.Context, accountID int, name, walletAddress string) (*domain.Account, error) {
	if walletAddress != "" && !validate.IsWalletAddress(walletAddress) {
		return nil, ErrInvalidWalletAddress
	}

	acc, err := s.accountRepo.UpdateProfile(ctx, accountID, name, walletAddress)
	if err != nil {
		zap.L().Error("failed to update profile", zap.Error(err))
		return nil, err
	}
	if acc == nil {
		return nil, ErrAccountNotFound
	}
	return acc, nil
}

func (s *Service) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list accounts", zap.Error(err))
		return nil, err
	}
	return accounts, nil
}

// SetStatus blocks or unblocks an account. Blocked accounts keep their data
// and balance; only access is cut off.
func (s *Service) SetStatus(ctx context.Context, accountID int, status string) (*domain.Account, error) {
	if status != domain.StatusActive && status != domain.StatusBlocked {
		return nil, ErrInvalidStatus
	}

	acc, err := s.accountRepo.SetStatus(ctx, accountID, status)
	if err != nil {
		zap.L().Error("failed to set account status", zap.Error(err))
		return nil, err
	}
	if acc == nil {
		return nil, ErrAccountNotFound
	}
	zap.L().Info("account status changed", zap.Int("accountID", accountID), zap.String("status", status))
	return acc, nil
}
