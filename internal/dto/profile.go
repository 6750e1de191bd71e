package dto

type ProfileResponseDTO struct {
	ID            int    `json:"id" example:"1"`
	Name          string `json:"name" example:"Alice"`
	Email         string `json:"email" example:"alice@example.com"`
	WalletAddress string `json:"wallet_address" example:"0xDEADBEEF00112233"`
	Points        int64  `json:"points" example:"500"`
	Referrals     int    `json:"referrals" example:"3"`
}

type ProfileUpdateRequestDTO struct {
	Name          string `json:"name" validate:"required,min=1,max=100" example:"Alice"`
	WalletAddress string `json:"wallet_address" example:"0xDEADBEEF00112233"`
}

type ReferralResponseDTO struct {
	Code      string `json:"code" example:"1"`
	Link      string `json:"link" example:"http://localhost:8080/?ref=1"`
	Referrals int    `json:"referrals" example:"3"`
}
