package dto

type AdminAccountResponseDTO struct {
	ID        int    `json:"id" example:"1"`
	Name      string `json:"name" example:"Alice"`
	Email     string `json:"email" example:"alice@example.com"`
	Points    int64  `json:"points" example:"500"`
	Referrals int    `json:"referrals" example:"3"`
	Role      string `json:"role" example:"user"`
	Status    string `json:"status" example:"active"`
}

type BonusRequestDTO struct {
	Amount int64 `json:"amount" validate:"required,gt=0" example:"50"`
}
