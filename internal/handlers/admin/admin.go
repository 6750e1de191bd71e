package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/adearn/adearn/internal/domain"
	"github.com/adearn/adearn/internal/dto"
	"github.com/adearn/adearn/internal/service/accountservice"
	"github.com/adearn/adearn/internal/service/adservice"
	"github.com/adearn/adearn/internal/service/ledgerservice"
	"github.com/adearn/adearn/pkg/utils"
)

type AccountService interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	SetStatus(ctx context.Context, accountID int, status string) (*domain.Account, error)
}

type LedgerService interface {
	Credit(ctx context.Context, accountID int, amount int64, reason string) (*domain.Account, error)
	ResetBalance(ctx context.Context, accountID int) (*domain.Account, error)
	Approve(ctx context.Context, requestID uuid.UUID) error
	Reject(ctx context.Context, requestID uuid.UUID) error
	ListWithdrawals(ctx context.Context, status string) ([]domain.WithdrawalRequest, error)
}

type AdService interface {
	CreateAd(ctx context.Context, ad *domain.Ad) (*domain.Ad, error)
	UpdateAd(ctx context.Context, ad *domain.Ad) error
	DeleteAd(ctx context.Context, adID int) error
}

type AdminHandler struct {
	accountService AccountService
	ledgerService  LedgerService
	adService      AdService
}

func New(accountService AccountService, ledgerService LedgerService, adService AdService) *AdminHandler {
	return &AdminHandler{
		accountService: accountService,
		ledgerService:  ledgerService,
		adService:      adService,
	}
}

// ListAccounts godoc
//
//	@Summary		List accounts
//	@Description	List all registered accounts with balances and statuses.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.AdminAccountResponseDTO	"Accounts"
//	@Failure		403	{object}	utils.Response				"Forbidden"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/users [get]
func (h *AdminHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.ListAccounts(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.AdminAccountResponseDTO, len(accounts))
	for i, acc := range accounts {
		response[i] = dto.AdminAccountResponseDTO{
			ID:        acc.ID,
			Name:      acc.Name,
			Email:     acc.Email,
			Points:    acc.Points,
			Referrals: acc.Referrals,
			Role:      acc.Role,
			Status:    acc.Status,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// BlockAccount godoc
//
//	@Summary		Block an account
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Account ID"
//	@Success		200	{object}	utils.Response	"Account blocked"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id}/block [post]
func (h *AdminHandler) BlockAccount(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, domain.StatusBlocked)
}

// UnblockAccount godoc
//
//	@Summary		Unblock an account
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Account ID"
//	@Success		200	{object}	utils.Response	"Account unblocked"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/users/{id}/unblock [post]
func (h *AdminHandler) UnblockAccount(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, domain.StatusActive)
}

func (h *AdminHandler) setStatus(w http.ResponseWriter, r *http.Request, status string) {
	accountID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	_, err = h.accountService.SetStatus(r.Context(), accountID, status)
	if err != nil {
		if errors.Is(err, accountservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Account " + status})
}

// AddBonus godoc
//
//	@Summary		Credit bonus points
//	@Description	Credit the given amount of points to an account.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Account ID"
//	@Param			request	body		dto.BonusRequestDTO	true	"Bonus payload"
//	@Success		200		{object}	dto.BalanceResponseDTO	"New balance"
//	@Failure		403		{object}	utils.Response		"Forbidden"
//	@Failure		404		{object}	utils.Response		"Account not found"
//	@Failure		422		{object}	utils.Response		"Invalid amount"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/admin/users/{id}/bonus [post]
func (h *AdminHandler) AddBonus(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	var req dto.BonusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	acc, err := h.ledgerService.Credit(r.Context(), accountID, req.Amount, ledgerservice.ReasonAdminBonus)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, ledgerservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Points: acc.Points})
}

// ResetPoints godoc
//
//	@Summary		Reset an account's balance to zero
//	@Description	Unconditional reset. A withdrawal request created before the reset will fail its later approval on insufficient balance.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Account ID"
//	@Success		200	{object}	dto.BalanceResponseDTO	"New balance"
//	@Failure		403	{object}	utils.Response			"Forbidden"
//	@Failure		404	{object}	utils.Response			"Account not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/users/{id}/reset [post]
func (h *AdminHandler) ResetPoints(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	acc, err := h.ledgerService.ResetBalance(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, ledgerservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Points: acc.Points})
}

// CreateAd godoc
//
//	@Summary		Create an ad
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AdSaveRequestDTO	true	"Ad payload"
//	@Success		200		{object}	dto.AdResponseDTO		"Created ad"
//	@Failure		403		{object}	utils.Response			"Forbidden"
//	@Failure		422		{object}	utils.Response			"Invalid ad"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/ads [post]
func (h *AdminHandler) CreateAd(w http.ResponseWriter, r *http.Request) {
	var req dto.AdSaveRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ad := &domain.Ad{
		Title:    req.Title,
		Reward:   req.Reward,
		Duration: req.Duration,
		URL:      req.URL,
	}
	created, err := h.adService.CreateAd(r.Context(), ad)
	if err != nil {
		if errors.Is(err, adservice.ErrInvalidAd) {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdResponseDTO{
		ID:       created.ID,
		Title:    created.Title,
		Reward:   created.Reward,
		Duration: created.Duration,
		URL:      created.URL,
	})
}

// UpdateAd godoc
//
//	@Summary		Update an ad
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Ad ID"
//	@Param			request	body		dto.AdSaveRequestDTO	true	"Ad payload"
//	@Success		200		{object}	utils.Response			"Ad updated"
//	@Failure		403		{object}	utils.Response			"Forbidden"
//	@Failure		404		{object}	utils.Response			"Ad not found"
//	@Failure		422		{object}	utils.Response			"Invalid ad"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/ads/{id} [put]
func (h *AdminHandler) UpdateAd(w http.ResponseWriter, r *http.Request) {
	adID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ad id")
		return
	}

	var req dto.AdSaveRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ad := &domain.Ad{
		ID:       adID,
		Title:    req.Title,
		Reward:   req.Reward,
		Duration: req.Duration,
		URL:      req.URL,
	}
	if err := h.adService.UpdateAd(r.Context(), ad); err != nil {
		switch {
		case errors.Is(err, adservice.ErrAdNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, adservice.ErrInvalidAd):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Ad updated"})
}

// DeleteAd godoc
//
//	@Summary		Delete an ad
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Ad ID"
//	@Success		200	{object}	utils.Response	"Ad deleted"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Ad not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/ads/{id} [delete]
func (h *AdminHandler) DeleteAd(w http.ResponseWriter, r *http.Request) {
	adID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ad id")
		return
	}

	if err := h.adService.DeleteAd(r.Context(), adID); err != nil {
		if errors.Is(err, adservice.ErrAdNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Ad deleted"})
}

// ListWithdrawals godoc
//
//	@Summary		List withdrawal requests
//	@Description	List withdrawal requests across all accounts, optionally filtered by status.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"Filter by status"	Enums(pending, completed, rejected)
//	@Success		200		{array}		dto.AdminWithdrawalResponseDTO	"Withdrawal requests"
//	@Failure		403		{object}	utils.Response					"Forbidden"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/withdrawals [get]
func (h *AdminHandler) ListWithdrawals(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	switch status {
	case "", domain.WithdrawalPending, domain.WithdrawalCompleted, domain.WithdrawalRejected:
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid status filter")
		return
	}

	requests, err := h.ledgerService.ListWithdrawals(r.Context(), status)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.AdminWithdrawalResponseDTO, len(requests))
	for i, req := range requests {
		response[i] = dto.AdminWithdrawalResponseDTO{
			ID:            req.ID.String(),
			AccountID:     req.AccountID,
			Amount:        req.Amount,
			WalletAddress: req.WalletAddress,
			Status:        req.Status,
			CreatedAt:     req.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ApproveWithdrawal godoc
//
//	@Summary		Approve a withdrawal request
//	@Description	Atomically debit the account and complete the request. Fails without side effects when the balance is insufficient or the request is already settled.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string			true	"Request ID"
//	@Success		200	{object}	utils.Response	"Request approved"
//	@Failure		402	{object}	utils.Response	"Insufficient balance"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		409	{object}	utils.Response	"Already settled or concurrent conflict"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/approve [post]
func (h *AdminHandler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	requestID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}

	if err := h.ledgerService.Approve(r.Context(), requestID); err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrRequestNotFound),
			errors.Is(err, ledgerservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ledgerservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, ledgerservice.ErrAlreadySettled),
			errors.Is(err, ledgerservice.ErrConflict):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Request approved"})
}

// RejectWithdrawal godoc
//
//	@Summary		Reject a withdrawal request
//	@Description	Settle a pending request as rejected. The balance is not touched.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string			true	"Request ID"
//	@Success		200	{object}	utils.Response	"Request rejected"
//	@Failure		403	{object}	utils.Response	"Forbidden"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Failure		409	{object}	utils.Response	"Already settled"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/reject [post]
func (h *AdminHandler) RejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	requestID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}

	if err := h.ledgerService.Reject(r.Context(), requestID); err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrRequestNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ledgerservice.ErrAlreadySettled):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Request rejected"})
}
