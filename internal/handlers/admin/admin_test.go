package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/adearn/adearn/internal/domain"
	"github.com/adearn/adearn/internal/dto"
	"github.com/adearn/adearn/internal/service/accountservice"
	"github.com/adearn/adearn/internal/service/adservice"
	"github.com/adearn/adearn/internal/service/ledgerservice"
	"github.com/adearn/adearn/pkg/auth"
)

func NewMock(t *testing.T) (*AdminHandler, *MockAccountService, *MockLedgerService, *MockAdService) {
	ctrl := gomock.NewController(t)
	accountService := NewMockAccountService(ctrl)
	ledgerService := NewMockLedgerService(ctrl)
	adService := NewMockAdService(ctrl)
	handler := New(accountService, ledgerService, adService)
	return handler, accountService, ledgerService, adService
}

func adminCtx(params map[string]string) context.Context {
	ctx := context.WithValue(context.Background(), auth.AccountIDKey, 99)
	ctx = context.WithValue(ctx, auth.RoleKey, domain.RoleAdmin)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return context.WithValue(ctx, chi.RouteCtxKey, rctx)
}

func TestListAccountsHandler(t *testing.T) {
	handler, accountService, _, _ := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func(ctx context.Context)
		expectedCode int
		expectedBody []dto.AdminAccountResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func(ctx context.Context) {
				accountService.EXPECT().
					ListAccounts(ctx).
					Return([]domain.Account{
						{ID: 1, Name: "Alice", Email: "alice@example.com", Points: 150, Referrals: 3, Role: domain.RoleUser, Status: domain.StatusActive},
						{ID: 2, Name: "Bob", Email: "bob@example.com", Points: 20, Role: domain.RoleUser, Status: domain.StatusBlocked},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.AdminAccountResponseDTO{
				{ID: 1, Name: "Alice", Email: "alice@example.com", Points: 150, Referrals: 3, Role: domain.RoleUser, Status: domain.StatusActive},
				{ID: 2, Name: "Bob", Email: "bob@example.com", Points: 20, Role: domain.RoleUser, Status: domain.StatusBlocked},
			},
		},
		{
			name: "Internal server error",
			prepareMock: func(ctx context.Context) {
				accountService.EXPECT().
					ListAccounts(ctx).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := adminCtx(nil)
			tt.prepareMock(ctx)

			r := httptest.NewRequest(http.MethodGet, "/users", nil)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.ListAccounts(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.AdminAccountResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestBlockAccountHandler(t *testing.T) {
	handler, accountService, _, _ := NewMock(t)

	tests := []struct {
		name          string
		accountID     string
		prepareMock   func(ctx context.Context)
		expectedCode  int
		expectedError string
	}{
		{
			name:      "Successful block",
			accountID: "1",
			prepareMock: func(ctx context.Context) {
				accountService.EXPECT().
					SetStatus(ctx, 1, domain.StatusBlocked).
					Return(&domain.Account{ID: 1, Status: domain.StatusBlocked}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid account id",
			accountID:     "abc",
			prepareMock:   func(ctx context.Context) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid account id",
		},
		{
			name:      "Account not found",
			accountID: "999",
			prepareMock: func(ctx context.Context) {
				accountService.EXPECT().
					SetStatus(ctx, 999, domain.StatusBlocked).
					Return(nil, accountservice.ErrAccountNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: accountservice.ErrAccountNotFound.Error(),
		},
		{
			name:      "Internal server error",
			accountID: "1",
			prepareMock: func(ctx context.Context) {
				accountService.EXPECT().
					SetStatus(ctx, 1, domain.StatusBlocked).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := adminCtx(map[string]string{"id": tt.accountID})
			tt.prepareMock(ctx)

			r := httptest.NewRequest(http.MethodPost, "/users/"+tt.accountID+"/block", nil)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.BlockAccount(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestUnblockAccountHandler(t *testing.T) {
	handler, accountService, _, _ := NewMock(t)

	ctx := adminCtx(map[string]string{"id": "2"})
	accountService.EXPECT().
		SetStatus(ctx, 2, domain.StatusActive).
		Return(&domain.Account{ID: 2, Status: domain.StatusActive}, nil)

	r := httptest.NewRequest(http.MethodPost, "/users/2/unblock", nil)
	r = r.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.UnblockAccount(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), domain.StatusActive)
}

func TestAddBonusHandler(t *testing.T) {
	handler, _, ledgerService, _ := NewMock(t)

	tests := []struct {
		name          string
		accountID     string
		body          string
		prepareMock   func(ctx context.Context)
		expectedCode  int
		expectedError string
	}{
		{
			name:      "Successful bonus",
			accountID: "1",
			body:      `{"amount":50}`,
			prepareMock: func(ctx context.Context) {
				ledgerService.EXPECT().
					Credit(ctx, 1, int64(50), ledgerservice.ReasonAdminBonus).
					Return(&domain.Account{ID: 1, Points: 200}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid account id",
			accountID:     "abc",
			body:          `{"amount":50}`,
			prepareMock:   func(ctx context.Context) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid account id",
		},
		{
			name:          "Invalid request body",
			accountID:     "1",
			body:          `{"amount":invalid}`,
			prepareMock:   func(ctx context.Context) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:      "Invalid amount",
			accountID: "1",
			body:      `{"amount":-5}`,
			prepareMock: func(ctx context.Context) {
				ledgerService.EXPECT().
					Credit(ctx, 1, int64(-5), ledgerservice.ReasonAdminBonus).
					Return(nil, ledgerservice.ErrInvalidAmount)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: ledgerservice.ErrInvalidAmount.Error(),
		},
		{
			name:      "Account not found",
			accountID: "999",
			body:      `{"amount":50}`,
			prepareMock: func(ctx context.Context) {
				ledgerService.EXPECT().
					Credit(ctx, 999, int64(50), ledgerservice.ReasonAdminBonus).
					Return(nil, ledgerservice.ErrAccountNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: ledgerservice.ErrAccountNotFound.Error(),
		},
		{
			name:      "Internal server error",
			accountID: "1",
			body:      `{"amount":50}`,
			prepareMock: func(ctx context.Context) {
				ledgerService.EXPECT().
					Credit(ctx, 1, int64(50), ledgerservice.ReasonAdminBonus).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := adminCtx(map[string]string{"id": tt.accountID})
			tt.prepareMock(ctx)

			r := httptest.NewRequest(http.MethodPost, "/users/"+tt.accountID+"/bonus", bytes.NewBufferString(tt.body))
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.AddBonus(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, int64(200), body.Points)
			}
		})
	}
}

func TestResetPointsHandler(t *testing.T) {
	handler, _, ledgerService, _ := NewMock(t)

	tests := []struct {
		name          string
		accountID     string
		prepareMock   func(ctx context.Context)
		expectedCode  int
		expectedError string
	}{
		{
			name:      "Successful reset",
			accountID: "1",
			prepareMock: func(ctx context.Context) {
				ledgerService.EXPECT().
					ResetBalance(ctx, 1).
					Return(&domain.Account{ID: 1, Points: 0}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:      "Account not found",
			accountID: "999",
			prepareMock: func(ctx context.Context) {
				ledgerService.EXPECT().
					ResetBalance(ctx, 999).
					Return(nil, ledgerservice.ErrAccountNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: ledgerservice.ErrAccountNotFound.Error(),
		},
		{
			name:      "Internal server error",
			accountID: "1",
			prepareMock: func(ctx context.Context) {
				ledgerService.EXPECT().
					ResetBalance(ctx, 1).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := adminCtx(map[string]string{"id": tt.accountID})
			tt.prepareMock(ctx)

			r := httptest.NewRequest(http.MethodPost, "/users/"+tt.accountID+"/reset", nil)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.ResetPoints(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, int64(0), body.Points)
			}
		})
	}
}

func TestCreateAdHandler(t *testing.T) {
	handler, _, _, adService := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func(ctx context.Context)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful creation",
			body: `{"title":"Modern Web Solutions","reward":10,"duration":15,"url":"https://example.com"}`,
			prepareMock: func(ctx context.Context) {
				adService.EXPECT().
					CreateAd(ctx, &domain.Ad{Title: "Modern Web Solutions", Reward: 10, Duration: 15, URL: "https://example.com"}).
					Return(&domain.Ad{ID: 1, Title: "Modern Web Solutions", Reward: 10, Duration: 15, URL: "https://example.com"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"title":invalid}`,
			prepareMock:   func(ctx context.Context) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Invalid ad",
			body: `{"title":"","reward":-1,"duration":0}`,
			prepareMock: func(ctx context.Context) {
				adService.EXPECT().
					CreateAd(ctx, &domain.Ad{Reward: -1}).
					Return(nil, adservice.ErrInvalidAd)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: adservice.ErrInvalidAd.Error(),
		},
		{
			name: "Internal server error",
			body: `{"title":"Modern Web Solutions","reward":10,"duration":15}`,
			prepareMock: func(ctx context.Context) {
				adService.EXPECT().
					CreateAd(ctx, &domain.Ad{Title: "Modern Web Solutions", Reward: 10, Duration: 15}).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := adminCtx(nil)
			tt.prepareMock(ctx)

			r := httptest.NewRequest(http.MethodPost, "/ads", bytes.NewBufferString(tt.body))
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.CreateAd(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.AdResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, 1, body.ID)
			}
		})
	}
}

func TestUpdateAdHandler(t *testing.T) {
	handler, _, _, adService := NewMock(t)

	tests := []struct {
		name          string
		adID          string
		body          string
		prepareMock   func(ctx context.Context)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful update",
			adID: "1",
			body: `{"title":"Cloud Backup","reward":25,"duration":30,"url":"https://example.org"}`,
			prepareMock: func(ctx context.Context) {
				adService.EXPECT().
					UpdateAd(ctx, &domain.Ad{ID: 1, Title: "Cloud Backup", Reward: 25, Duration: 30, URL: "https://example.org"}).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid ad id",
			adID:          "abc",
			body:          `{"title":"Cloud Backup","reward":25,"duration":30}`,
			prepareMock:   func(ctx context.Context) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid ad id",
		},
		{
			name: "Ad not found",
			adID: "999",
			body: `{"title":"Cloud Backup","reward":25,"duration":30}`,
			prepareMock: func(ctx context.Context) {
				adService.EXPECT().
					UpdateAd(ctx, &domain.Ad{ID: 999, Title: "Cloud Backup", Reward: 25, Duration: 30}).
					Return(adservice.ErrAdNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: adservice.ErrAdNotFound.Error(),
		},
		{
			name: "Invalid ad",
			adID: "1",
			body: `{"title":"","reward":0,"duration":0}`,
			prepareMock: func(ctx context.Context) {
				adService.EXPECT().
					UpdateAd(ctx, &domain.Ad{ID: 1}).
					Return(adservice.ErrInvalidAd)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: adservice.ErrInvalidAd.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := adminCtx(map[string]string{"id": tt.adID})
			tt.prepareMock(ctx)

			r := httptest.NewRequest(http.MethodPut, "/ads/"+tt.adID, bytes.NewBufferString(tt.body))
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.UpdateAd(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestDeleteAdHandler(t *testing.T) {
	handler, _, _, adService := NewMock(t)

	tests := []struct {
		name          string
		adID          string
		prepareMock   func(ctx context.Context)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful deletion",
			adID: "1",
			prepareMock: func(ctx context.Context) {
				adService.EXPECT().
					DeleteAd(ctx, 1).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Ad not found",
			adID: "999",
			prepareMock: func(ctx context.Context) {
				adService.EXPECT().
					DeleteAd(ctx, 999).
					Return(adservice.ErrAdNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: adservice.ErrAdNotFound.Error(),
		},
		{
			name: "Internal server error",
			adID: "1",
			prepareMock: func(ctx context.Context) {
				adService.EXPECT().
					DeleteAd(ctx, 1).
					Return(errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := adminCtx(map[string]string{"id": tt.adID})
			tt.prepareMock(ctx)

			r := httptest.NewRequest(http.MethodDelete, "/ads/"+tt.adID, nil)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.DeleteAd(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestListWithdrawalsHandler(t *testing.T) {
	handler, _, ledgerService, _ := NewMock(t)
	requestID := uuid.New()
	now := time.Now()

	tests := []struct {
		name          string
		query         string
		prepareMock   func(ctx context.Context)
		expectedCode  int
		expectedError string
		expectedLen   int
	}{
		{
			name:  "All requests",
			query: "",
			prepareMock: func(ctx context.Context) {
				ledgerService.EXPECT().
					ListWithdrawals(ctx, "").
					Return([]domain.WithdrawalRequest{
						{ID: requestID, AccountID: 1, Amount: 60, WalletAddress: "wallet-abc-123", Status: domain.WithdrawalPending, CreatedAt: now},
						{ID: uuid.New(), AccountID: 2, Amount: 30, WalletAddress: "wallet-def-456", Status: domain.WithdrawalCompleted, CreatedAt: now},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:  "Filtered by pending",
			query: "?status=pending",
			prepareMock: func(ctx context.Context) {
				ledgerService.EXPECT().
					ListWithdrawals(ctx, domain.WithdrawalPending).
					Return([]domain.WithdrawalRequest{
						{ID: requestID, AccountID: 1, Amount: 60, WalletAddress: "wallet-abc-123", Status: domain.WithdrawalPending, CreatedAt: now},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:          "Invalid status filter",
			query:         "?status=bogus",
			prepareMock:   func(ctx context.Context) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid status filter",
		},
		{
			name:  "Internal server error",
			query: "",
			prepareMock: func(ctx context.Context) {
				ledgerService.EXPECT().
					ListWithdrawals(ctx, "").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := adminCtx(nil)
			tt.prepareMock(ctx)

			r := httptest.NewRequest(http.MethodGet, "/withdrawals"+tt.query, nil)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.ListWithdrawals(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body []dto.AdminWithdrawalResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}

func TestApproveWithdrawalHandler(t *testing.T) {
	handler, _, ledgerService, _ := NewMock(t)
	requestID := uuid.New()

	tests := []struct {
		name          string
		requestID     string
		prepareMock   func(ctx context.Context)
		expectedCode  int
		expectedError string
	}{
		{
			name:      "Successful approval",
			requestID: requestID.String(),
			prepareMock: func(ctx context.Context) {
				ledgerService.EXPECT().
					Approve(ctx, requestID).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request id",
			requestID:     "not-a-uuid",
			prepareMock:   func(ctx context.Context) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request id",
		},
		{
			name:      "Request not found",
			requestID: requestID.String(),
			prepareMock: func(ctx context.Context) {
				ledgerService.EXPECT().
					Approve(ctx, requestID).
					Return(ledgerservice.ErrRequestNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: ledgerservice.ErrRequestNotFound.Error(),
		},
		{
			name:      "Insufficient balance",
			requestID: requestID.String(),
			prepareMock: func(ctx context.Context) {
				ledgerService.EXPECT().
					Approve(ctx, requestID).
					Return(ledgerservice.ErrInsufficientBalance)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: ledgerservice.ErrInsufficientBalance.Error(),
		},
		{
			name:      "Already settled",
			requestID: requestID.String(),
			prepareMock: func(ctx context.Context) {
				ledgerService.EXPECT().
					Approve(ctx, requestID).
					Return(ledgerservice.ErrAlreadySettled)
			},
			expectedCode:  http.StatusConflict,
			expectedError: ledgerservice.ErrAlreadySettled.Error(),
		},
		{
			name:      "Concurrent conflict",
			requestID: requestID.String(),
			prepareMock: func(ctx context.Context) {
				ledgerService.EXPECT().
					Approve(ctx, requestID).
					Return(ledgerservice.ErrConflict)
			},
			expectedCode:  http.StatusConflict,
			expectedError: ledgerservice.ErrConflict.Error(),
		},
		{
			name:      "Internal server error",
			requestID: requestID.String(),
			prepareMock: func(ctx context.Context) {
				ledgerService.EXPECT().
					Approve(ctx, requestID).
					Return(errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := adminCtx(map[string]string{"id": tt.requestID})
			tt.prepareMock(ctx)

			r := httptest.NewRequest(http.MethodPost, "/withdrawals/"+tt.requestID+"/approve", nil)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.ApproveWithdrawal(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestRejectWithdrawalHandler(t *testing.T) {
	handler, _, ledgerService, _ := NewMock(t)
	requestID := uuid.New()

	tests := []struct {
		name          string
		requestID     string
		prepareMock   func(ctx context.Context)
		expectedCode  int
		expectedError string
	}{
		{
			name:      "Successful rejection",
			requestID: requestID.String(),
			prepareMock: func(ctx context.Context) {
				ledgerService.EXPECT().
					Reject(ctx, requestID).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request id",
			requestID:     "not-a-uuid",
			prepareMock:   func(ctx context.Context) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request id",
		},
		{
			name:      "Request not found",
			requestID: requestID.String(),
			prepareMock: func(ctx context.Context) {
				ledgerService.EXPECT().
					Reject(ctx, requestID).
					Return(ledgerservice.ErrRequestNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: ledgerservice.ErrRequestNotFound.Error(),
		},
		{
			name:      "Already settled",
			requestID: requestID.String(),
			prepareMock: func(ctx context.Context) {
				ledgerService.EXPECT().
					Reject(ctx, requestID).
					Return(ledgerservice.ErrAlreadySettled)
			},
			expectedCode:  http.StatusConflict,
			expectedError: ledgerservice.ErrAlreadySettled.Error(),
		},
		{
			name:      "Internal server error",
			requestID: requestID.String(),
			prepareMock: func(ctx context.Context) {
				ledgerService.EXPECT().
					Reject(ctx, requestID).
					Return(errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := adminCtx(map[string]string{"id": tt.requestID})
			tt.prepareMock(ctx)

			r := httptest.NewRequest(http.MethodPost, "/withdrawals/"+tt.requestID+"/reject", nil)
			r = r.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.RejectWithdrawal(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}
