package dto

type AdResponseDTO struct {
	ID       int    `json:"id" example:"1"`
	Title    string `json:"title" example:"Modern Web Solutions"`
	Reward   int64  `json:"reward" example:"10"`
	Duration int    `json:"duration" example:"15"`
	URL      string `json:"url" example:"https://example.com"`
}

type AdSaveRequestDTO struct {
	Title    string `json:"title" validate:"required" example:"Modern Web Solutions"`
	Reward   int64  `json:"reward" validate:"required,gt=0" example:"10"`
	Duration int    `json:"duration" validate:"required,gt=0" example:"15"`
	URL      string `json:"url" example:"https://example.com"`
}

type AdViewResponseDTO struct {
	Reward int64 `json:"reward" example:"10"`
	Points int64 `json:"points" example:"510"`
}
