package dto

type RegisterRequestDTO struct {
	Name         string `json:"name" validate:"required,min=1,max=100" example:"Alice"`
	Email        string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password     string `json:"password" validate:"required,min=8"`
	ReferralCode string `json:"referral_code,omitempty" example:"42"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}

type ChangePasswordRequestDTO struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}
