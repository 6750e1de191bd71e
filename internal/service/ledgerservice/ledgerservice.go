package ledgerservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adearn/adearn/internal/domain"
	"github.com/adearn/adearn/internal/pg"
	"github.com/adearn/adearn/pkg/metrics"
	"github.com/adearn/adearn/pkg/notify"
)

// maxApproveRetries bounds the compare-and-swap loop in Approve. When the
// balance keeps moving under the admin's feet the request is left pending
// and the caller gets ErrConflict to retry manually.
const maxApproveRetries = 3

const (
	ReasonAdReward   = "ad_reward"
	ReasonAdminBonus = "admin_bonus"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrRequestNotFound      = errors.New("withdrawal request not found")
	ErrInvalidAmount        = errors.New("amount must be a positive integer")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrMissingWalletAddress = errors.New("wallet address is not set")
	ErrAlreadySettled       = errors.New("withdrawal request already settled")
	ErrConflict             = errors.New("balance changed concurrently, retry")
)

// errStaleBalance aborts the approve transaction when the balance moved
// between the snapshot read and the conditional debit.
var errStaleBalance = errors.New("stale balance snapshot")

type AccountRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Account, error)
	AddPoints(ctx context.Context, id int, delta int64) (*domain.Account, error)
	CompareAndSwapPoints(ctx context.Context, id int, oldPoints, newPoints int64) (bool, error)
	SetPoints(ctx context.Context, id int, points int64) (*domain.Account, error)
}

type WithdrawalRepo interface {
	Create(ctx context.Context, req *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, fromStatus, toStatus string) (bool, error)
	ListByAccountID(ctx context.Context, accountID int) ([]domain.WithdrawalRequest, error)
	ListByStatus(ctx context.Context, status string) ([]domain.WithdrawalRequest, error)
}

// Service owns the relationship between account balances and the lifecycle
// of withdrawal requests. Balances never go below zero and a request is
// settled at most once, no matter how the callers interleave.
type Service struct {
	accountRepo    AccountRepo
	withdrawalRepo WithdrawalRepo
	txManager      pg.TXManager
	broker         *notify.Broker
}

func New(accountRepo AccountRepo, withdrawalRepo WithdrawalRepo, txManager pg.TXManager, broker *notify.Broker) *Service {
	return &Service{
		accountRepo:    accountRepo,
		withdrawalRepo: withdrawalRepo,
		txManager:      txManager,
		broker:         broker,
	}
}

// Credit adds amount to the account balance as a single relative increment,
// so concurrent credits and approvals never lose updates.
func (s *Service) Credit(ctx context.Context, accountID int, amount int64, reason string) (*domain.Account, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	acc, err := s.accountRepo.AddPoints(ctx, accountID, amount)
	if err != nil {
		zap.L().Error("failed to credit points", zap.Error(err))
		metrics.ObserveLedgerOp("credit", "error")
		return nil, err
	}
	if acc == nil {
		return nil, ErrAccountNotFound
	}

	zap.L().Info("points credited",
		zap.Int("accountID", accountID),
		zap.Int64("amount", amount),
		zap.String("reason", reason))
	metrics.ObserveLedgerOp("credit", "ok")
	s.publishBalance(acc)
	return acc, nil
}

// CreateWithdrawalRequest validates against a snapshot of the balance and
// records a pending request. Nothing is reserved: the balance may change
// before an admin approves, which is why Approve re-validates.
func (s *Service) CreateWithdrawalRequest(ctx context.Context, accountID int, amount int64) (*domain.WithdrawalRequest, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	acc, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get account", zap.Error(err))
		return nil, err
	}
	if acc == nil {
		return nil, ErrAccountNotFound
	}
	if acc.Points < amount {
		return nil, ErrInsufficientBalance
	}
	if acc.WalletAddress == "" {
		return nil, ErrMissingWalletAddress
	}

	req := &domain.WithdrawalRequest{
		ID:            uuid.New(),
		AccountID:     accountID,
		Amount:        amount,
		WalletAddress: acc.WalletAddress,
		Status:        domain.WithdrawalPending,
		CreatedAt:     time.Now(),
	}
	if _, err := s.withdrawalRepo.Create(ctx, req); err != nil {
		zap.L().Error("failed to create withdrawal request", zap.Error(err))
		metrics.ObserveLedgerOp("create_request", "error")
		return nil, err
	}

	metrics.ObserveLedgerOp("create_request", "ok")
	s.publishWithdrawal(req)
	return req, nil
}

// Approve debits the balance and completes the request as one atomic unit.
// The debit is a compare-and-swap keyed on the balance value read in the
// same attempt; a concurrent credit or approval invalidates the snapshot
// and the attempt is retried against the fresh value.
func (s *Service) Approve(ctx context.Context, requestID uuid.UUID) error {
	req, err := s.withdrawalRepo.GetByID(ctx, requestID)
	if err != nil {
		zap.L().Error("failed to get withdrawal request", zap.Error(err))
		return err
	}
	if req == nil {
		return ErrRequestNotFound
	}
	if req.Settled() {
		return ErrAlreadySettled
	}

	for attempt := 0; attempt < maxApproveRetries; attempt++ {
		acc, err := s.accountRepo.FindByID(ctx, req.AccountID)
		if err != nil {
			zap.L().Error("failed to get account", zap.Error(err))
			return err
		}
		if acc == nil {
			return ErrAccountNotFound
		}
		if acc.Points < req.Amount {
			metrics.ObserveLedgerOp("approve", "insufficient")
			return ErrInsufficientBalance
		}

		newPoints := acc.Points - req.Amount
		err = s.txManager.Begin(ctx, func(ctx context.Context) error {
			swapped, err := s.accountRepo.CompareAndSwapPoints(ctx, acc.ID, acc.Points, newPoints)
			if err != nil {
				return err
			}
			if !swapped {
				return errStaleBalance
			}
			completed, err := s.withdrawalRepo.UpdateStatus(ctx, req.ID, domain.WithdrawalPending, domain.WithdrawalCompleted)
			if err != nil {
				return err
			}
			if !completed {
				// Someone settled the request first; roll the debit back.
				return ErrAlreadySettled
			}
			return nil
		})
		switch {
		case err == nil:
			zap.L().Info("withdrawal request approved",
				zap.String("requestID", req.ID.String()),
				zap.Int("accountID", req.AccountID),
				zap.Int64("amount", req.Amount))
			metrics.ObserveLedgerOp("approve", "ok")
			acc.Points = newPoints
			s.publishBalance(acc)
			req.Status = domain.WithdrawalCompleted
			s.publishWithdrawal(req)
			return nil
		case errors.Is(err, errStaleBalance):
			continue
		default:
			if !errors.Is(err, ErrAlreadySettled) {
				zap.L().Error("failed to approve withdrawal request", zap.Error(err))
				metrics.ObserveLedgerOp("approve", "error")
			}
			return err
		}
	}

	metrics.ObserveLedgerOp("approve", "conflict")
	return ErrConflict
}

// Reject settles a pending request without touching the balance.
func (s *Service) Reject(ctx context.Context, requestID uuid.UUID) error {
	req, err := s.withdrawalRepo.GetByID(ctx, requestID)
	if err != nil {
		zap.L().Error("failed to get withdrawal request", zap.Error(err))
		return err
	}
	if req == nil {
		return ErrRequestNotFound
	}
	if req.Settled() {
		return ErrAlreadySettled
	}

	rejected, err := s.withdrawalRepo.UpdateStatus(ctx, req.ID, domain.WithdrawalPending, domain.WithdrawalRejected)
	if err != nil {
		zap.L().Error("failed to reject withdrawal request", zap.Error(err))
		metrics.ObserveLedgerOp("reject", "error")
		return err
	}
	if !rejected {
		return ErrAlreadySettled
	}

	metrics.ObserveLedgerOp("reject", "ok")
	req.Status = domain.WithdrawalRejected
	s.publishWithdrawal(req)
	return nil
}

// ResetBalance sets the balance to zero unconditionally. It is not atomic
// with pending requests: a request created before the reset will later fail
// its approval with ErrInsufficientBalance, which is the intended behavior.
func (s *Service) ResetBalance(ctx context.Context, accountID int) (*domain.Account, error) {
	acc, err := s.accountRepo.SetPoints(ctx, accountID, 0)
	if err != nil {
		zap.L().Error("failed to reset balance", zap.Error(err))
		metrics.ObserveLedgerOp("reset", "error")
		return nil, err
	}
	if acc == nil {
		return nil, ErrAccountNotFound
	}

	zap.L().Info("balance reset", zap.Int("accountID", accountID))
	metrics.ObserveLedgerOp("reset", "ok")
	s.publishBalance(acc)
	return acc, nil
}

func (s *Service) GetBalance(ctx context.Context, accountID int) (*domain.Account, error) {
	acc, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	if acc == nil {
		return nil, ErrAccountNotFound
	}
	return acc, nil
}

func (s *Service) GetWithdrawals(ctx context.Context, accountID int) ([]domain.WithdrawalRequest, error) {
	requests, err := s.withdrawalRepo.ListByAccountID(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawal requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

// ListWithdrawals returns requests across all accounts, optionally filtered
// by status. Empty status means all.
func (s *Service) ListWithdrawals(ctx context.Context, status string) ([]domain.WithdrawalRequest, error) {
	requests, err := s.withdrawalRepo.ListByStatus(ctx, status)
	if err != nil {
		zap.L().Error("failed to fetch withdrawal requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

func (s *Service) publishBalance(acc *domain.Account) {
	s.broker.Publish(notify.AccountTopic(acc.ID), notify.Event{
		Kind:      notify.KindBalance,
		AccountID: acc.ID,
		Points:    acc.Points,
	})
}

func (s *Service) publishWithdrawal(req *domain.WithdrawalRequest) {
	s.broker.Publish(notify.AccountTopic(req.AccountID), notify.Event{
		Kind:      notify.KindWithdrawal,
		AccountID: req.AccountID,
		RequestID: req.ID.String(),
		Status:    req.Status,
	})
}
