package adservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/adearn/adearn/internal/domain"
	"github.com/adearn/adearn/internal/service/ledgerservice"
)

var (
	ErrAdNotFound     = errors.New("ad not found")
	ErrInvalidAd      = errors.New("ad must have a title, a positive reward and a positive duration")
	ErrAccountBlocked = errors.New("account is blocked")
)

type Repo interface {
	List(ctx context.Context) ([]domain.Ad, error)
	GetByID(ctx context.Context, id int) (*domain.Ad, error)
	Create(ctx context.Context, ad *domain.Ad) (*domain.Ad, error)
	Update(ctx context.Context, ad *domain.Ad) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type AccountRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Account, error)
}

type Ledger interface {
	Credit(ctx context.Context, accountID int, amount int64, reason string) (*domain.Account, error)
}

type Service struct {
	adRepo      Repo
	accountRepo AccountRepo
	ledger      Ledger
}

func New(adRepo Repo, accountRepo AccountRepo, ledger Ledger) *Service {
	return &Service{
		adRepo:      adRepo,
		accountRepo: accountRepo,
		ledger:      ledger,
	}
}

func (s *Service) ListAds(ctx context.Context) ([]domain.Ad, error) {
	ads, err := s.adRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list ads", zap.Error(err))
		return nil, err
	}
	return ads, nil
}

// CompleteView credits the ad's reward to the viewer and returns the reward
// together with the updated account. The view timer runs client-side; the
// server only checks that the actor is an active account and the ad exists.
func (s *Service) CompleteView(ctx context.Context, accountID, adID int) (int64, *domain.Account, error) {
	ad, err := s.adRepo.GetByID(ctx, adID)
	if err != nil {
		zap.L().Error("failed to get ad", zap.Error(err))
		return 0, nil, err
	}
	if ad == nil {
		return 0, nil, ErrAdNotFound
	}

	acc, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return 0, nil, err
	}
	if acc == nil {
		return 0, nil, ledgerservice.ErrAccountNotFound
	}
	if acc.Status == domain.StatusBlocked {
		return 0, nil, ErrAccountBlocked
	}

	credited, err := s.ledger.Credit(ctx, accountID, ad.Reward, ledgerservice.ReasonAdReward)
	if err != nil {
		return 0, nil, err
	}
	return ad.Reward, credited, nil
}

func (s *Service) CreateAd(ctx context.Context, ad *domain.Ad) (*domain.Ad, error) {
	if !validAd(ad) {
		return nil, ErrInvalidAd
	}
	created, err := s.adRepo.Create(ctx, ad)
	if err != nil {
		zap.L().Error("failed to create ad", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) UpdateAd(ctx context.Context, ad *domain.Ad) error {
	if !validAd(ad) {
		return ErrInvalidAd
	}
	updated, err := s.adRepo.Update(ctx, ad)
	if err != nil {
		zap.L().Error("failed to update ad", zap.Error(err))
		return err
	}
	if !updated {
		return ErrAdNotFound
	}
	return nil
}

func (s *Service) DeleteAd(ctx context.Context, adID int) error {
	deleted, err := s.adRepo.Delete(ctx, adID)
	if err != nil {
		zap.L().Error("failed to delete ad", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrAdNotFound
	}
	return nil
}

func validAd(ad *domain.Ad) bool {
	return ad.Title != "" && ad.Reward > 0 && ad.Duration > 0
}
