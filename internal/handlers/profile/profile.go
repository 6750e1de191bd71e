package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/adearn/adearn/internal/domain"
	"github.com/adearn/adearn/internal/dto"
	"github.com/adearn/adearn/internal/service/accountservice"
	"github.com/adearn/adearn/pkg/auth"
	"github.com/adearn/adearn/pkg/utils"
)

type Service interface {
	GetProfile(ctx context.Context, accountID int) (*domain.Account, error)
	UpdateProfile(ctx context.Context, accountID int, name, walletAddress string) (*domain.Account, error)
}

type ProfileHandler struct {
	accountService  Service
	referralBaseURL string
}

func New(accountService Service, referralBaseURL string) *ProfileHandler {
	return &ProfileHandler{
		accountService:  accountService,
		referralBaseURL: referralBaseURL,
	}
}

// GetProfile godoc
//
//	@Summary		Get own profile
//	@Description	Retrieve the authenticated account's profile.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO	"Profile"
//	@Failure		401	{object}	utils.Response			"Not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	acc, err := h.accountService.GetProfile(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProfileDTO(acc))
}

// UpdateProfile godoc
//
//	@Summary		Update own profile
//	@Description	Update the authenticated account's display name and payout wallet address.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ProfileUpdateRequestDTO	true	"Profile update payload"
//	@Success		200		{object}	dto.ProfileResponseDTO		"Updated profile"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"Not authorized"
//	@Failure		422		{object}	utils.Response				"Invalid wallet address"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/user/profile [put]
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	var req dto.ProfileUpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Name is required")
		return
	}

	acc, err := h.accountService.UpdateProfile(r.Context(), accountID, req.Name, req.WalletAddress)
	if err != nil {
		if errors.Is(err, accountservice.ErrInvalidWalletAddress) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toProfileDTO(acc))
}

// GetReferral godoc
//
//	@Summary		Get referral link
//	@Description	Get the authenticated account's referral code, sharable link and referral count.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ReferralResponseDTO	"Referral info"
//	@Failure		401	{object}	utils.Response			"Not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/referral [get]
func (h *ProfileHandler) GetReferral(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	acc, err := h.accountService.GetProfile(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	code := strconv.Itoa(acc.ID)
	utils.RespondWithJSON(w, http.StatusOK, dto.ReferralResponseDTO{
		Code:      code,
		Link:      fmt.Sprintf("%s/?ref=%s", h.referralBaseURL, code),
		Referrals: acc.Referrals,
	})
}

func toProfileDTO(acc *domain.Account) dto.ProfileResponseDTO {
	return dto.ProfileResponseDTO{
		ID:            acc.ID,
		Name:          acc.Name,
		Email:         acc.Email,
		WalletAddress: acc.WalletAddress,
		Points:        acc.Points,
		Referrals:     acc.Referrals,
	}
}
