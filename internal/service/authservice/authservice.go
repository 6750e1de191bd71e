package authservice

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/adearn/adearn/internal/domain"
	"github.com/adearn/adearn/pkg/auth"
)

var (
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountBlocked     = errors.New("account is blocked")
)

type Repo interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id int) (*domain.Account, error)
	Create(ctx context.Context, acc *domain.Account) (*domain.Account, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	IncrementReferrals(ctx context.Context, id int) (bool, error)
}

type Service struct {
	accountRepo Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		accountRepo: repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

// Register creates a new active account. A referral code is the referrer's
// account id; an unknown or malformed code is ignored silently, a valid one
// is recorded once and bumps the referrer's counter exactly once.
func (s *Service) Register(ctx context.Context, name, email, password, referralCode string) (*domain.Account, error) {
	existing, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find account: ", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("account already exists, email: ", zap.String("email", email))
		return nil, ErrEmailTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	var referredBy *int
	if referralCode != "" {
		if referrerID, convErr := strconv.Atoi(referralCode); convErr == nil {
			referrer, err := s.accountRepo.FindByID(ctx, referrerID)
			if err != nil {
				zap.L().Error("can't find referrer: ", zap.Error(err))
				return nil, err
			}
			if referrer != nil {
				referredBy = &referrer.ID
			}
		}
	}

	acc := &domain.Account{
		Email:        email,
		Name:         name,
		PasswordHash: hashedPassword,
		ReferredBy:   referredBy,
		Role:         domain.RoleUser,
		Status:       domain.StatusActive,
	}
	newAcc, err := s.accountRepo.Create(ctx, acc)
	if err != nil {
		zap.L().Error("can't create account: ", zap.Error(err))
		return nil, err
	}

	if referredBy != nil {
		if _, err := s.accountRepo.IncrementReferrals(ctx, *referredBy); err != nil {
			zap.L().Error("can't increment referrals: ", zap.Error(err))
			return nil, err
		}
	}

	zap.L().Info("account successfully registered", zap.String("email", email))
	return newAcc, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	acc, err := s.accountRepo.FindByEmail(ctx, email)
	if err != nil || acc == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(acc.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}
	if acc.Status == domain.StatusBlocked {
		zap.L().Info("blocked account attempted login", zap.String("email", email))
		return nil, ErrAccountBlocked
	}
	zap.L().Info("account successfully authenticated", zap.String("email", email))
	return acc, nil
}

// ChangePassword re-authenticates with the old password before storing the
// new hash.
func (s *Service) ChangePassword(ctx context.Context, accountID int, oldPassword, newPassword string) error {
	acc, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		zap.L().Error("can't find account: ", zap.Error(err))
		return err
	}
	if acc == nil {
		return ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(acc.PasswordHash, oldPassword); !ok {
		return ErrInvalidCredentials
	}

	hashedPassword, err := s.hashService.HashPassword(newPassword)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return err
	}
	if err := s.accountRepo.UpdatePassword(ctx, accountID, hashedPassword); err != nil {
		zap.L().Error("can't update password: ", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) GenerateToken(accountID int, role string) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(accountID, role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
