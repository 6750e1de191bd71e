package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	StatusActive  = "active"
	StatusBlocked = "blocked"
)

const (
	WithdrawalPending   = "pending"
	WithdrawalCompleted = "completed"
	WithdrawalRejected  = "rejected"
)

type Account struct {
	ID            int       `db:"id"`
	Email         string    `db:"email"`
	Name          string    `db:"name"`
	PasswordHash  string    `db:"password_hash"`
	WalletAddress string    `db:"wallet_address"`
	Points        int64     `db:"points"`
	Referrals     int       `db:"referrals"`
	ReferredBy    *int      `db:"referred_by"`
	Role          string    `db:"role"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
}

type WithdrawalRequest struct {
	ID            uuid.UUID `db:"id"`
	AccountID     int       `db:"account_id"`
	Amount        int64     `db:"amount"`
	WalletAddress string    `db:"wallet_address"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
}

// Settled reports whether the request reached a terminal status.
func (w *WithdrawalRequest) Settled() bool {
	return w.Status != WithdrawalPending
}

type Ad struct {
	ID       int    `db:"id"`
	Title    string `db:"title"`
	Reward   int64  `db:"reward"`
	Duration int    `db:"duration"`
	URL      string `db:"url"`
}
