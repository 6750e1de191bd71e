package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/adearn/adearn/internal/domain"
	"github.com/adearn/adearn/internal/dto"
	"github.com/adearn/adearn/internal/service/ledgerservice"
	"github.com/adearn/adearn/pkg/auth"
	"github.com/adearn/adearn/pkg/notify"
	"github.com/adearn/adearn/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, accountID int) (*domain.Account, error)
	CreateWithdrawalRequest(ctx context.Context, accountID int, amount int64) (*domain.WithdrawalRequest, error)
	GetWithdrawals(ctx context.Context, accountID int) ([]domain.WithdrawalRequest, error)
}

type LedgerHandler struct {
	ledgerService Service
	broker        *notify.Broker
}

func New(ledgerService Service, broker *notify.Broker) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
		broker:        broker,
	}
}

// GetBalance godoc
//
//	@Summary		Get current point balance
//	@Description	Retrieve the current point balance for the authenticated account.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current point balance"
//	@Failure		401	{object}	utils.Response			"Not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *LedgerHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	acc, err := h.ledgerService.GetBalance(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Points: acc.Points,
	})
}

// CreateWithdrawal godoc
//
//	@Summary		Request points withdrawal
//	@Description	Create a pending withdrawal request against the current balance. The balance is not debited until an admin approves.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawalCreateRequestDTO	true	"Withdrawal request payload"
//	@Success		200		{object}	dto.WithdrawalResponseDTO		"Created request"
//	@Failure		400		{object}	utils.Response					"Wallet address not set"
//	@Failure		401		{object}	utils.Response					"Not authorized"
//	@Failure		402		{object}	utils.Response					"Insufficient balance"
//	@Failure		422		{object}	utils.Response					"Invalid amount"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/user/withdrawals [post]
func (h *LedgerHandler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	var req dto.WithdrawalCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.ledgerService.CreateWithdrawalRequest(r.Context(), accountID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, ledgerservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, ledgerservice.ErrMissingWalletAddress):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WithdrawalResponseDTO{
		ID:            created.ID.String(),
		Amount:        created.Amount,
		WalletAddress: created.WalletAddress,
		Status:        created.Status,
		CreatedAt:     created.CreatedAt,
	})
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawal history
//	@Description	Get withdrawal requests of the authenticated account, newest first.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO	"Withdrawal history"
//	@Success		204	{string}	string						"No withdrawals"
//	@Failure		401	{object}	utils.Response				"Not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/withdrawals [get]
func (h *LedgerHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	requests, err := h.ledgerService.GetWithdrawals(r.Context(), accountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}

	if len(requests) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	response := make([]dto.WithdrawalResponseDTO, len(requests))
	for i, req := range requests {
		response[i] = dto.WithdrawalResponseDTO{
			ID:            req.ID.String(),
			Amount:        req.Amount,
			WalletAddress: req.WalletAddress,
			Status:        req.Status,
			CreatedAt:     req.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Events godoc
//
//	@Summary		Live balance and withdrawal updates
//	@Description	Server-sent event stream of balance and withdrawal changes for the authenticated account.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		text/event-stream
//	@Success		200	{string}	string	"Event stream"
//	@Failure		401	{object}	utils.Response	"Not authorized"
//	@Router			/api/user/balance/events [get]
func (h *LedgerHandler) Events(w http.ResponseWriter, r *http.Request) {
	accountID := r.Context().Value(auth.AccountIDKey).(int)

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondWithError(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	events, cancel := h.broker.Subscribe(notify.AccountTopic(accountID))
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, open := <-events:
			if !open {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
