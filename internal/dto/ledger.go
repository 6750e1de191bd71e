package dto

import "time"

type BalanceResponseDTO struct {
	Points int64 `json:"points" example:"500"`
}

type WithdrawalCreateRequestDTO struct {
	Amount int64 `json:"amount" example:"100"`
}

type WithdrawalResponseDTO struct {
	ID            string    `json:"id" example:"6ba7b810-9dad-11d1-80b4-00c04fd430c8"`
	Amount        int64     `json:"amount" example:"100"`
	WalletAddress string    `json:"wallet_address" example:"0xDEADBEEF00112233"`
	Status        string    `json:"status" example:"pending"`
	CreatedAt     time.Time `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}

type AdminWithdrawalResponseDTO struct {
	ID            string    `json:"id" example:"6ba7b810-9dad-11d1-80b4-00c04fd430c8"`
	AccountID     int       `json:"account_id" example:"1"`
	Amount        int64     `json:"amount" example:"100"`
	WalletAddress string    `json:"wallet_address" example:"0xDEADBEEF00112233"`
	Status        string    `json:"status" example:"pending"`
	CreatedAt     time.Time `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}
