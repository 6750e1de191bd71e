package ads

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/adearn/adearn/internal/domain"
	"github.com/adearn/adearn/internal/dto"
	"github.com/adearn/adearn/internal/service/adservice"
	"github.com/adearn/adearn/internal/service/ledgerservice"
	"github.com/adearn/adearn/pkg/auth"
	"github.com/adearn/adearn/pkg/utils"
)

type Service interface {
	ListAds(ctx context.Context) ([]domain.Ad, error)
	CompleteView(ctx context.Context, accountID, adID int) (int64, *domain.Account, error)
}

type AdsHandler struct {
	adService Service
}

func New(adService Service) *AdsHandler {
	return &AdsHandler{
		adService: adService,
	}
}

// ListAds godoc
//
//	@Summary		List available ads
//	@Description	Get all ads with their rewards and view durations.
//	@Tags			Ads
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.AdResponseDTO	"Available ads"
//	@Failure		401	{object}	utils.Response		"Not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/ads [get]
func (h *AdsHandler) ListAds(w http.ResponseWriter, r *http.Request) {
	adList, err := h.adService.ListAds(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.AdResponseDTO, len(adList))
	for i, ad := range adList {
		response[i] = dto.AdResponseDTO{
			ID:       ad.ID,
			Title:    ad.Title,
			Reward:   ad.Reward,
			Duration: ad.Duration,
			URL:      ad.URL,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CompleteView godoc
//
//	@Summary		Complete an ad view
//	@Description	Credit the ad's reward to the authenticated account after the view timer finished.
//	@Tags			Ads
//	@Security		BearerAuth
//	@Produce		json
//	@Param			adID	path		int					true	"Ad ID"
//	@Success		200		{object}	dto.AdViewResponseDTO	"Reward credited"
//	@Failure		401		{object}	utils.Response		"Not authorized"
//	@Failure		403		{object}	utils.Response		"Account is blocked"
//	@Failure		404		{object}	utils.Response		"Ad not found"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/ads/{adID}/complete [post]
func (h *AdsHandler) CompleteView(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	adID, err := strconv.Atoi(chi.URLParam(r, "adID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ad id")
		return
	}

	reward, acc, err := h.adService.CompleteView(r.Context(), accountID, adID)
	if err != nil {
		switch {
		case errors.Is(err, adservice.ErrAdNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, adservice.ErrAccountBlocked):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, ledgerservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdViewResponseDTO{
		Reward: reward,
		Points: acc.Points,
	})
}
